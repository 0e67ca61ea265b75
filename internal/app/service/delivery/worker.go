package delivery

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hazelshop/admin-backend/internal/app/service/notification"
	cfgpkg "github.com/hazelshop/admin-backend/pkg/config"
)

var attemptsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: "notification",
		Name:      "delivery_attempts_total",
		Help:      "Delivery attempts recorded, partitioned by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(attemptsTotal)
}

// Worker drains retry-eligible notifications on a fixed interval: for every
// pending record it invokes the sender and books the outcome through the
// tracker. It holds no retry state of its own; eligibility lives entirely in
// the tracker's pending query.
type Worker struct {
	tracker *notification.Tracker
	sender  Sender
	cfg     *cfgpkg.Config
	log     *zap.SugaredLogger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewWorker(tracker *notification.Tracker, sender Sender, cfg *cfgpkg.Config, log *zap.SugaredLogger) *Worker {
	return &Worker{tracker: tracker, sender: sender, cfg: cfg, log: log}
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)
	interval := w.cfg.Notification.WorkerInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain performs one pass over the pending set.
func (w *Worker) drain(ctx context.Context) {
	batch := w.cfg.Notification.WorkerBatch
	if batch <= 0 {
		batch = 100
	}
	pending, err := w.tracker.ListPending(ctx, w.cfg.Notification.MaxRetries, batch)
	if err != nil {
		w.log.Errorw("failed to list pending notifications", "err", err)
		return
	}
	for _, record := range pending {
		outcome := notification.OutcomeSuccess
		if err := w.sender.Send(ctx, record); err != nil {
			w.log.Warnw("delivery attempt failed", "id", record.ID, "err", err)
			outcome = notification.OutcomeFailure
		}
		if _, err := w.tracker.RecordAttempt(ctx, record.ID, outcome); err != nil {
			w.log.Errorw("failed to record delivery attempt", "id", record.ID, "err", err)
			continue
		}
		attemptsTotal.WithLabelValues(string(outcome)).Inc()
	}
}

func runWorker(lc fx.Lifecycle, w *Worker) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			w.cancel = cancel
			w.done = make(chan struct{})
			w.log.Infow("starting delivery worker",
				"interval", w.cfg.Notification.WorkerInterval,
				"max_retries", w.cfg.Notification.MaxRetries)
			go w.run(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			w.log.Infow("stopping delivery worker")
			w.cancel()
			select {
			case <-w.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

var Module = fx.Options(
	fx.Provide(NewSender),
	fx.Provide(NewWorker),
	fx.Invoke(runWorker),
)
