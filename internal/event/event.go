// Package event announces booking lifecycle changes on kafka.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/shared/breaker"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

const breakerName = "kafka-events"

type Type string

const (
	BookingCreated    Type = "booking.created"
	BookingCheckedOut Type = "booking.checked_out"
	BookingCancelled  Type = "booking.cancelled"
	PaymentRecorded   Type = "payment.recorded"
)

type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	BookingID  int       `json:"booking_id,omitempty"`
	GuestID    int       `json:"guest_id"`
	RoomNumber int       `json:"room_number,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	Reason     string    `json:"reason,omitempty"`
}

// New stamps an event with a fresh ID and the current time.
func New(eventType Type, guestID int) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Now(),
		GuestID:    guestID,
	}
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type kafkaPublisher struct {
	client  kafka.Client
	topic   string
	breaker *gobreaker.CircuitBreaker
	otel    otel.Otel
}

type noopPublisher struct{}

// NewPublisher returns a publisher that drops events when client is nil.
func NewPublisher(config *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if client == nil {
		return noopPublisher{}
	}

	return &kafkaPublisher{
		client:  client,
		topic:   config.Kafka.Topic,
		breaker: breaker.New(breakerName),
		otel:    otel,
	}
}

func (noopPublisher) Publish(context.Context, ...Event) error {
	return nil
}

// Publish keys messages by guest so that one guest's events stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	messages := make([]kafka.Message, len(events))
	for i, e := range events {
		messages[i] = kafka.Message{Key: strconv.Itoa(e.GuestID), Value: e}
	}

	_, err = p.breaker.Execute(func() (any, error) {
		return nil, p.client.SendMessages(ctx, p.topic, messages...)
	})
	if err != nil {
		log.Error().Err(err).Str("topic", p.topic).Int("count", len(events)).Msg("failed to publish events")

		return fmt.Errorf("failed to publish events: %w", err)
	}

	return nil
}
