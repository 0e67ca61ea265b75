package delivery

import (
	"context"

	"go.uber.org/zap"

	"github.com/hazelshop/admin-backend/internal/models"
	cfgpkg "github.com/hazelshop/admin-backend/pkg/config"
	"github.com/hazelshop/admin-backend/pkg/logctx"
)

// Sender performs the actual transport of one notification. It reports the
// outcome; it never mutates the record. Timeouts and cancellation of the
// transport are the sender's own concern.
type Sender interface {
	Send(ctx context.Context, n *models.Notification) error
}

// logSender writes the notification to the log instead of a real transport.
// Used in dev and as the default until an SMTP/push sender is plugged in.
type logSender struct {
	log *zap.SugaredLogger
}

func (s *logSender) Send(ctx context.Context, n *models.Notification) error {
	logctx.FromCtx(ctx, s.log).Infow("delivering notification",
		"id", n.ID, "channel", n.Channel, "category", n.Category, "email", n.EmailAddress)
	return nil
}

func NewSender(cfg *cfgpkg.Config, log *zap.SugaredLogger) Sender {
	switch cfg.Notification.Sender {
	case "log", "":
		return &logSender{log: log}
	default:
		log.Warnw("unknown notification sender, falling back to log", "sender", cfg.Notification.Sender)
		return &logSender{log: log}
	}
}
