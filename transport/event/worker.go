package event

import (
	"context"
	"fmt"
	"rimbest/config"
	"rimbest/infras/kafka"
	"rimbest/infras/otel"
	bookingModel "rimbest/internal/domains/booking/model"
	ticketService "rimbest/internal/domains/ticket/service"
	"rimbest/shared/constant"
	"rimbest/shared/logger"

	"github.com/rs/zerolog"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

// Worker archives a receipt for every confirmed booking and records
// cancellations. It runs until ctx is done.
type Worker struct {
	Config *config.Config
	Kafka  kafka.Client
	Ticket ticketService.Ticket
	Otel   otel.Otel

	log zerolog.Logger
}

func New(cfg *config.Config, client kafka.Client, ticket ticketService.Ticket, otel otel.Otel) *Worker {
	return &Worker{
		Config: cfg,
		Kafka:  client,
		Ticket: ticket,
		Otel:   otel,
		log:    logger.Component("ticket-worker"),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	if !w.Config.Kafka.Enable {
		return fmt.Errorf("kafka is disabled, nothing to consume")
	}

	group, ctx := errgroup.WithContext(ctx)
	topics := w.Config.Kafka.Topics

	group.Go(func() error {
		return w.Kafka.Consume(ctx, w.Config.Kafka.ConsumerGroup, topics.BookingConfirmed, w.HandleConfirmed)
	})

	group.Go(func() error {
		return w.Kafka.Consume(ctx, w.Config.Kafka.ConsumerGroup, topics.BookingCancelled, w.HandleCancelled)
	})

	w.log.Info().Strs("topics", []string{topics.BookingConfirmed, topics.BookingCancelled}).Msg("Ticket worker started.")

	if err := group.Wait(); err != nil {
		return fmt.Errorf("consumer stopped: %w", err)
	}

	return nil
}

// HandleConfirmed renders and archives the receipt of a confirmed booking.
func (w *Worker) HandleConfirmed(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := w.Otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleConfirmed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[bookingModel.Event](message)
	if err != nil {
		return err
	}

	scope.SetAttributes(map[string]any{
		"event.id":       event.ID,
		"booking.number": event.BookingNumber,
	})

	artifact, err := w.Ticket.Generate(ctx, event.Booking, event.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to generate ticket for %s: %w", event.BookingNumber, err)
	}

	receipt, err := w.Ticket.Archive(ctx, artifact)
	if err != nil {
		return fmt.Errorf("failed to archive ticket for %s: %w", event.BookingNumber, err)
	}

	w.log.Info().
		Str("booking_number", receipt.BookingNumber).
		Str("object_url", receipt.ObjectURL).
		Msg("Ticket archived.")

	return nil
}

func (w *Worker) HandleCancelled(ctx context.Context, message kafkaGo.Message) (err error) {
	_, scope := w.Otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleCancelled")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[bookingModel.Event](message)
	if err != nil {
		return err
	}

	w.log.Info().
		Str("booking_number", event.BookingNumber).
		Int64("user_id", event.UserID).
		Time("occurred_at", event.OccurredAt).
		Msg("Booking cancelled.")

	return nil
}
