package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/predialtech/financing-service/internal/domain/event"
	pkgkafka "github.com/predialtech/financing-service/pkg/kafka"
)

// EventPublisher implements port.EventPublisher by writing events to Kafka.
type EventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewEventPublisher creates a publisher targeting the given Kafka producer
// and topic.
func NewEventPublisher(producer *pkgkafka.Producer, topic string, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serialises and sends domain events to Kafka.
func (p *EventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	messages := make([]pkgkafka.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(envelope{
			EventID:       evt.EventID(),
			EventType:     evt.EventType(),
			AggregateID:   evt.AggregateID(),
			AggregateType: evt.AggregateType(),
			TenantID:      evt.TenantID(),
			OccurredAt:    evt.OccurredAt().Format("2006-01-02T15:04:05.000Z07:00"),
			Payload:       evt,
		})
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.DebugContext(ctx, "publishing domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"tenant_id", evt.TenantID(),
			"topic", p.topic,
			"payload_size", len(payload),
		)

		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"event_id":   evt.EventID(),
				"tenant_id":  evt.TenantID(),
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish events to topic %s: %w", p.topic, err)
	}
	return nil
}

// envelope carries the event metadata alongside the event-specific payload,
// so consumers never depend on each event struct exporting base fields.
type envelope struct {
	EventID       string `json:"event_id"`
	EventType     string `json:"event_type"`
	AggregateID   string `json:"aggregate_id"`
	AggregateType string `json:"aggregate_type"`
	TenantID      string `json:"tenant_id"`
	OccurredAt    string `json:"occurred_at"`
	Payload       any    `json:"payload"`
}
