package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"rimbest/config"
	"rimbest/infras/kafka"
	kafkaMocks "rimbest/infras/kafka/mocks"
	"rimbest/infras/otel/mocks"
	bookingModel "rimbest/internal/domains/booking/model"
	ticketMocks "rimbest/internal/domains/ticket/mocks"
	ticketModel "rimbest/internal/domains/ticket/model"
	"rimbest/transport/event"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func message(t *testing.T, e bookingModel.Event) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(e)
	require.NoError(t, err)

	return kafkaGo.Message{Key: []byte(e.BookingNumber), Value: value}
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.ConsumerGroup = "rimbest-ticket-worker"
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"
	cfg.Kafka.Topics.BookingCancelled = "booking.cancelled"

	return cfg
}

func TestWorker_HandleConfirmed(t *testing.T) {
	occurredAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	confirmed := bookingModel.NewEvent(bookingModel.EventBookingConfirmed, bookingModel.Booking{ID: 42, BookingNumber: "RB-000042"}, 7, occurredAt)
	artifact := ticketModel.Artifact{FileName: "recu_RB-000042_x_2024-03-01.pdf", BookingID: 42, BookingNumber: "RB-000042"}

	tests := []struct {
		name      string
		message   func(t *testing.T) kafkaGo.Message
		setupMock func(ticket *ticketMocks.MockTicketService)
		wantErr   bool
	}{
		{
			name:    "generates and archives",
			message: func(t *testing.T) kafkaGo.Message { return message(t, confirmed) },
			setupMock: func(ticket *ticketMocks.MockTicketService) {
				ticket.EXPECT().
					Generate(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b bookingModel.Booking, issuedAt time.Time) (ticketModel.Artifact, error) {
						assert.Equal(t, int64(42), b.ID)
						assert.True(t, occurredAt.Equal(issuedAt))

						return artifact, nil
					})
				ticket.EXPECT().Archive(gomock.Any(), artifact).Return(ticketModel.Receipt{BookingNumber: "RB-000042"}, nil)
			},
		},
		{
			name:      "malformed payload",
			message:   func(*testing.T) kafkaGo.Message { return kafkaGo.Message{Value: []byte("{")} },
			setupMock: func(ticket *ticketMocks.MockTicketService) {},
			wantErr:   true,
		},
		{
			name:    "archive failure is reported",
			message: func(t *testing.T) kafkaGo.Message { return message(t, confirmed) },
			setupMock: func(ticket *ticketMocks.MockTicketService) {
				ticket.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(artifact, nil)
				ticket.EXPECT().Archive(gomock.Any(), artifact).Return(ticketModel.Receipt{}, errors.New("bucket missing"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ticket := ticketMocks.NewMockTicketService(ctrl)
			tt.setupMock(ticket)

			worker := event.New(newConfig(), kafkaMocks.NewMockClient(ctrl), ticket, mocks.NewOtel())
			err := worker.HandleConfirmed(context.Background(), tt.message(t))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestWorker_Run(t *testing.T) {
	t.Run("kafka disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := newConfig()
		cfg.Kafka.Enable = false

		worker := event.New(cfg, kafkaMocks.NewMockClient(ctrl), ticketMocks.NewMockTicketService(ctrl), mocks.NewOtel())

		assert.Error(t, worker.Run(context.Background()))
	})

	t.Run("consumes both topics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := kafkaMocks.NewMockClient(ctrl)
		client.EXPECT().Consume(gomock.Any(), "rimbest-ticket-worker", "booking.confirmed", gomock.Any()).Return(nil)
		client.EXPECT().Consume(gomock.Any(), "rimbest-ticket-worker", "booking.cancelled", gomock.Any()).Return(nil)

		worker := event.New(newConfig(), client, ticketMocks.NewMockTicketService(ctrl), mocks.NewOtel())

		assert.NoError(t, worker.Run(context.Background()))
	})

	t.Run("consumer failure stops the worker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := kafkaMocks.NewMockClient(ctrl)
		client.EXPECT().Consume(gomock.Any(), gomock.Any(), "booking.confirmed", gomock.Any()).Return(errors.New("topic name cannot be empty"))
		client.EXPECT().
			Consume(gomock.Any(), gomock.Any(), "booking.cancelled", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string, _ kafka.Handler) error {
				<-ctx.Done()

				return nil
			})

		worker := event.New(newConfig(), client, ticketMocks.NewMockTicketService(ctrl), mocks.NewOtel())

		assert.Error(t, worker.Run(context.Background()))
	})
}
