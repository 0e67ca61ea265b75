package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/hazelshop/admin-backend/pkg/config"
)

// StatusChangedEvent is emitted after an order or payment status change has
// been accepted and persisted.
type StatusChangedEvent struct {
	Domain   string    `json:"domain"`
	EntityID string    `json:"entity_id"`
	MemberID string    `json:"member_id"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	At       time.Time `json:"at"`
}

type Publisher interface {
	PublishStatusChanged(ctx context.Context, e StatusChangedEvent) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	topic  string
	log    *zap.SugaredLogger
}

func newKafkaPublisher(brokers []string, topic string, log *zap.SugaredLogger) *kafkaPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	log.Infow("kafka publisher initialized", "brokers", brokers, "topic", topic)
	return &kafkaPublisher{writer: writer, topic: topic, log: log}
}

func (p *kafkaPublisher) PublishStatusChanged(ctx context.Context, e StatusChangedEvent) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(e.EntityID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to produce status event: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// nopPublisher only logs; used when no brokers are configured (local dev, tests).
type nopPublisher struct {
	log *zap.SugaredLogger
}

func (p *nopPublisher) PublishStatusChanged(_ context.Context, e StatusChangedEvent) error {
	p.log.Infow("status change (events disabled)",
		"domain", e.Domain, "entity_id", e.EntityID, "from", e.From, "to", e.To)
	return nil
}

func NewPublisher(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config) Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Infow("kafka brokers not configured, events disabled")
		return &nopPublisher{log: log}
	}
	p := newKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Infow("closing kafka publisher")
			return p.Close()
		},
	})
	return p
}

var Module = fx.Options(
	fx.Provide(NewPublisher),
)
