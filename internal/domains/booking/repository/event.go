package repository

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rimbest/config"
	"rimbest/infras/kafka"
	"rimbest/infras/otel"
	"rimbest/internal/domains/booking/model"
	"rimbest/shared/constant"

	"github.com/rs/zerolog/log"
)

// Event publishes booking state changes keyed by booking number, so every
// event of one booking lands on the same partition.
type Event interface {
	Publish(ctx context.Context, event model.Event) error
}

type eventImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewEvent(client kafka.Client, cfg *config.Config, otel otel.Otel) Event {
	return &eventImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (e *eventImpl) topic(eventType string) string {
	switch eventType {
	case model.EventBookingConfirmed:
		return e.cfg.Kafka.Topics.BookingConfirmed
	case model.EventBookingCancelled:
		return e.cfg.Kafka.Topics.BookingCancelled
	default:
		return ""
	}
}

func (e *eventImpl) Publish(ctx context.Context, event model.Event) (err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !e.cfg.Kafka.Enable {
		log.Debug().Str("type", event.Type).Msg("kafka disabled, booking event dropped")

		return nil
	}

	topic := e.topic(event.Type)

	scope.SetAttributes(map[string]any{
		"event.type":  event.Type,
		"event.topic": topic,
	})

	if err = e.client.SendMessages(ctx, topic, kafka.Message{Key: event.BookingNumber, Value: event}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	return nil
}
