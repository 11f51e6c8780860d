// Package events publishes booking lifecycle events to Kafka. The stream is
// optional: a nil Publisher is a no-op, and one is only constructed when
// brokers are configured.
package events

import (
	"context"
	"encoding/json"
	"time"

	"cleanbook/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeBookingCreated  = "booking.created"
	TypeBookingUpdated  = "booking.updated"
	TypeCleanerAssigned = "booking.cleaner_assigned"
	TypeBookingDeleted  = "booking.deleted"
)

// Header keys attached to every event.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// BookingEvent is the payload published for every lifecycle change, keyed by
// booking id so events for one booking stay ordered within a partition.
type BookingEvent struct {
	BookingID      string    `json:"bookingId"`
	BookingStatus  string    `json:"bookingStatus,omitempty"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	CleanerID      string    `json:"cleanerId,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type Publisher struct {
	writer *kafka.Writer
	source string
	log    *logger.Logger
}

// NewPublisher returns nil when no brokers are configured; callers treat a
// nil Publisher as disabled.
func NewPublisher(brokers []string, topic string, source string, log *logger.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // hash by key for per-booking ordering
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka writer error", "message", msg, "args", args)
		}),
	}

	log.Info("Booking event publisher enabled", "brokers", brokers, "topic", topic)
	return &Publisher{writer: writer, source: source, log: log}
}

// Publish emits one lifecycle event. Failures are logged and swallowed:
// event publishing never fails the primary mutation.
func (p *Publisher) Publish(ctx context.Context, eventType string, event BookingEvent) {
	if p == nil {
		return
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to encode booking event", "event_type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.NewString())},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(p.source)},
			{Key: HeaderTimestamp, Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
