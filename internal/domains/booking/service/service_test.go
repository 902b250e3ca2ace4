package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rimbest/config"
	"rimbest/infras/otel/mocks"
	authModel "rimbest/internal/domains/auth/model"
	bookingMocks "rimbest/internal/domains/booking/mocks"
	"rimbest/internal/domains/booking/model"
	"rimbest/internal/domains/booking/model/dto"
	"rimbest/internal/domains/booking/service"
	ticketMocks "rimbest/internal/domains/ticket/mocks"
	ticketModel "rimbest/internal/domains/ticket/model"
	"rimbest/shared/clock"
	gDto "rimbest/shared/dto"
	"rimbest/shared/environment"
	"rimbest/shared/failure"
	"rimbest/shared/timezone"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

var session = authModel.Session{Token: "token-abc", UserID: 7, Username: "amine"}

func booking(id int64, status string, departureIn time.Duration, bookedAt time.Time) model.Booking {
	return model.Booking{
		ID:            id,
		BookingDate:   timezone.NewDateTime(bookedAt),
		TotalPrice:    12500,
		Status:        status,
		PaymentStatus: model.PaymentStatusPaid,
		Tickets: []model.Ticket{{
			ID:            id * 10,
			PassengerName: "Aminetou",
			Flight: &model.TicketFlight{
				FlightNumber:  fmt.Sprintf("RB%d", id),
				DepartureCity: "Nouakchott",
				ArrivalCity:   "Atar",
				DepartureTime: timezone.NewDateTime(now.Add(departureIn)),
			},
		}},
	}
}

type fixture struct {
	repo   *bookingMocks.MockBooking
	event  *bookingMocks.MockEvent
	ticket *ticketMocks.MockTicketService
	svc    service.Booking
}

func newFixture(t *testing.T, env *environment.Environment) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}

	f := fixture{
		repo:   bookingMocks.NewMockBooking(ctrl),
		event:  bookingMocks.NewMockEvent(ctrl),
		ticket: ticketMocks.NewMockTicketService(ctrl),
	}
	f.svc = service.New(f.repo, f.event, f.ticket, env, cfg, clock.NewFake(now), mocks.NewOtel())

	return f
}

func TestBookingService_GetAll(t *testing.T) {
	bookings := []model.Booking{
		booking(1, model.StatusConfirmed, 72*time.Hour, now.Add(-72*time.Hour)),
		booking(2, model.StatusCancelled, 72*time.Hour, now.Add(-24*time.Hour)),
		booking(3, model.StatusConfirmed, 24*time.Hour, now.Add(-48*time.Hour)),
	}

	tests := []struct {
		name       string
		req        dto.ListRequest
		setupMock  func(f fixture)
		wantIDs    []int64
		wantCancel []bool
		wantTotal  int
		wantErr    bool
	}{
		{
			name: "all statuses newest first",
			req:  dto.ListRequest{Status: model.StatusAll, QueryParams: gDto.QueryParams{Page: 1, Limit: 10}},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetAll(gomock.Any(), "token-abc").Return(bookings, nil)
			},
			wantIDs:    []int64{2, 3, 1},
			wantCancel: []bool{false, false, true},
			wantTotal:  3,
		},
		{
			name: "status filter",
			req:  dto.ListRequest{Status: "confirmed", QueryParams: gDto.QueryParams{Page: 1, Limit: 10}},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetAll(gomock.Any(), "token-abc").Return(bookings, nil)
			},
			wantIDs:    []int64{3, 1},
			wantCancel: []bool{false, true},
			wantTotal:  2,
		},
		{
			name: "search by derived number",
			req:  dto.ListRequest{Search: "RB-000001", QueryParams: gDto.QueryParams{Page: 1, Limit: 10}},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetAll(gomock.Any(), "token-abc").Return(bookings, nil)
			},
			wantIDs:    []int64{1},
			wantCancel: []bool{true},
			wantTotal:  1,
		},
		{
			name: "second page",
			req:  dto.ListRequest{QueryParams: gDto.QueryParams{Page: 2, Limit: 2}},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetAll(gomock.Any(), "token-abc").Return(bookings, nil)
			},
			wantIDs:    []int64{1},
			wantCancel: []bool{true},
			wantTotal:  3,
		},
		{
			name: "remote failure",
			req:  dto.ListRequest{QueryParams: gDto.QueryParams{Page: 1, Limit: 10}},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetAll(gomock.Any(), "token-abc").Return(nil, failure.Connectivity())
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, environment.Production())
			tt.setupMock(f)

			res, err := f.svc.GetAll(context.Background(), session, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.KindConnectivity, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			require.Len(t, res.Bookings, len(tt.wantIDs))

			for i, b := range res.Bookings {
				assert.Equal(t, tt.wantIDs[i], b.ID)
				assert.Equal(t, tt.wantCancel[i], b.CanCancel)
			}

			assert.Equal(t, tt.wantTotal, res.Pagination.TotalItems)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	f := newFixture(t, environment.Production())

	f.repo.EXPECT().
		Get(gomock.Any(), "token-abc", int64(34)).
		Return(booking(34, model.StatusConfirmed, 48*time.Hour, now), nil)

	res, err := f.svc.Get(context.Background(), session, 34)

	require.NoError(t, err)
	assert.Equal(t, "RB-000034", res.BookingNumber)
	assert.True(t, res.CanCancel)
	assert.True(t, res.Paid)
	assert.Equal(t, "MRU", res.Currency)
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantMsg   string
	}{
		{
			name: "eligible booking is cancelled and announced",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "token-abc", int64(34)).
					Return(booking(34, model.StatusConfirmed, 72*time.Hour, now), nil)
				f.repo.EXPECT().Cancel(gomock.Any(), "token-abc", int64(34)).Return(nil)
				f.event.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event model.Event) error {
						assert.Equal(t, model.EventBookingCancelled, event.Type)
						assert.Equal(t, model.StatusCancelled, event.Booking.Status)
						assert.Equal(t, int64(7), event.UserID)

						return nil
					})
			},
		},
		{
			name: "publish failure does not fail the cancel",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "token-abc", int64(34)).
					Return(booking(34, model.StatusConfirmed, 72*time.Hour, now), nil)
				f.repo.EXPECT().Cancel(gomock.Any(), "token-abc", int64(34)).Return(nil)
				f.event.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "already cancelled never reaches the remote",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "token-abc", int64(34)).
					Return(booking(34, model.StatusCancelled, 72*time.Hour, now), nil)
			},
			wantKind: failure.KindBusinessRule,
			wantMsg:  "This booking is already cancelled.",
		},
		{
			name: "inside the 48 hour window",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "token-abc", int64(34)).
					Return(booking(34, model.StatusConfirmed, 48*time.Hour-time.Second, now), nil)
			},
			wantKind: failure.KindBusinessRule,
			wantMsg:  "Bookings can only be cancelled at least 48 hours before departure.",
		},
		{
			name: "server rejection is shown verbatim",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "token-abc", int64(34)).
					Return(booking(34, model.StatusConfirmed, 72*time.Hour, now), nil)
				f.repo.EXPECT().Cancel(gomock.Any(), "token-abc", int64(34)).
					Return(fmt.Errorf("failed to cancel booking 34: %w", failure.BusinessRule("too late")))
			},
			wantKind: failure.KindBusinessRule,
			wantMsg:  "too late",
		},
		{
			name: "expired session",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "token-abc", int64(34)).
					Return(model.Booking{}, failure.Unauthorized(failure.MessageAuth))
			},
			wantKind: failure.KindAuth,
			wantMsg:  failure.MessageAuth,
		},
		{
			name: "no response from the server",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "token-abc", int64(34)).
					Return(booking(34, model.StatusConfirmed, 72*time.Hour, now), nil)
				f.repo.EXPECT().Cancel(gomock.Any(), "token-abc", int64(34)).Return(failure.Connectivity())
			},
			wantKind: failure.KindConnectivity,
			wantMsg:  failure.MessageConnectivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, environment.Production())
			tt.setupMock(f)

			res, err := f.svc.Cancel(context.Background(), session, 34)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.Equal(t, tt.wantMsg, failure.GetMessage(err))
				assert.Empty(t, res.Status)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, dto.CancellationResponse{
				BookingID:     34,
				BookingNumber: "RB-000034",
				RefundAmount:  12500,
				Currency:      "MRU",
				Status:        model.StatusCancelled,
			}, res)
		})
	}
}

func TestBookingService_Ticket(t *testing.T) {
	f := newFixture(t, environment.Production())
	b := booking(34, model.StatusConfirmed, 72*time.Hour, now)
	artifact := ticketModel.Artifact{FileName: "recu_RB-000034_aminetou_2024-03-01.pdf", Content: []byte("%PDF-1.3")}

	f.repo.EXPECT().Get(gomock.Any(), "token-abc", int64(34)).Return(b, nil)
	f.ticket.EXPECT().Generate(gomock.Any(), b, now).Return(artifact, nil)

	res, err := f.svc.Ticket(context.Background(), session, 34)

	require.NoError(t, err)
	assert.Equal(t, artifact, res)
}
