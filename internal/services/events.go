package services

import (
	"context"
	"encoding/json"

	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes finalized financial events to Kafka.
// Publishing is best-effort: a broker failure never fails the financial
// operation that produced the event.
type EventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(kafkaWriter KafkaWriter) *EventPublisher {
	return &EventPublisher{kafkaWriter: kafkaWriter}
}

// Publish sends a transaction event keyed by its id.
func (p *EventPublisher) Publish(ctx context.Context, event models.TransactionEvent) {
	if p == nil || p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "transaction_id", event.TransactionID, "operation", event.Operation, "amount", event.Amount)
	}
}
