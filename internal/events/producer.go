package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TypeBookingCreated   = "booking_created"
	TypeBookingApproved  = "booking_approved"
	TypeBookingRejected  = "booking_rejected"
	TypeBookingCancelled = "booking_cancelled"
	TypeBookingConfirmed = "booking_confirmed"
)

// BookingEvent is the wire shape published for every booking transition.
type BookingEvent struct {
	Type            string    `json:"type"`
	BookingID       int32     `json:"booking_id"`
	CourtID         int32     `json:"court_id"`
	UserUID         string    `json:"user_uid"`
	Date            string    `json:"date"`
	Slots           []string  `json:"slots"`
	TotalPriceCents int32     `json:"total_price_cents"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
