package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"rimbest/config"
	"rimbest/infras/otel"
	authModel "rimbest/internal/domains/auth/model"
	"rimbest/internal/domains/booking/model"
	"rimbest/internal/domains/booking/model/dto"
	"rimbest/internal/domains/booking/repository"
	ticketModel "rimbest/internal/domains/ticket/model"
	ticketService "rimbest/internal/domains/ticket/service"
	"rimbest/shared"
	"rimbest/shared/clock"
	"rimbest/shared/constant"
	"rimbest/shared/environment"
	"rimbest/shared/failure"
	"slices"

	"github.com/rs/zerolog/log"
)

const (
	messageAlreadyCancelled = "This booking is already cancelled."
	messageTooLate          = "Bookings can only be cancelled at least 48 hours before departure."
)

// Booking manages the signed in user's bookings. Eligibility is computed on
// every read and never cached.
type Booking interface {
	GetAll(ctx context.Context, session authModel.Session, req dto.ListRequest) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, session authModel.Session, id int64) (dto.BookingResponse, error)
	Cancel(ctx context.Context, session authModel.Session, id int64) (dto.CancellationResponse, error)
	Ticket(ctx context.Context, session authModel.Session, id int64) (ticketModel.Artifact, error)
}

type serviceImpl struct {
	repo   repository.Booking
	event  repository.Event
	ticket ticketService.Ticket
	env    *environment.Environment
	cfg    *config.Config
	clock  clock.Clock
	otel   otel.Otel
}

func New(
	repo repository.Booking,
	event repository.Event,
	ticket ticketService.Ticket,
	env *environment.Environment,
	cfg *config.Config,
	clock clock.Clock,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:   repo,
		event:  event,
		ticket: ticket,
		env:    env,
		cfg:    cfg,
		clock:  clock,
		otel:   otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, session authModel.Session, req dto.ListRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, session.Token)
	if err != nil {
		log.Error().Err(err).Int64("userId", session.UserID).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	filter := req.ToFilter()

	matched := make([]model.Booking, 0, len(models))
	for _, mod := range models {
		if filter.Match(mod) {
			matched = append(matched, mod)
		}
	}

	slices.SortStableFunc(matched, model.CompareRecent)

	res.FromModels(shared.Paginate(matched, req.Page, req.Limit), len(matched), req.QueryParams, s.clock.Now())

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, session authModel.Session, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	mod, err := s.repo.Get(ctx, session.Token, id)
	if err != nil {
		log.Error().Err(err).Int64("bookingId", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.FromModel(mod, s.clock.Now())

	return res, nil
}

// Cancel re-reads the booking so eligibility is judged on the server's state,
// and refuses ineligible bookings without calling the remote cancel.
func (s *serviceImpl) Cancel(ctx context.Context, session authModel.Session, id int64) (res dto.CancellationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, session.Token, id)
	if err != nil {
		log.Error().Err(err).Int64("bookingId", id).Msg("failed to get booking before cancel")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.IsCancelled() {
		return res, failure.BusinessRule(messageAlreadyCancelled)
	}

	if !model.CanCancel(booking, s.clock.Now()) {
		return res, failure.BusinessRule(messageTooLate)
	}

	if err = s.repo.Cancel(ctx, session.Token, id); err != nil {
		if !s.bypassCancel(ctx, err) {
			log.Error().Err(err).Int64("bookingId", id).Msg("failed to cancel booking")

			return res, fmt.Errorf("failed to cancel booking: %w", err)
		}

		err = nil
	}

	if err = booking.Cancel(); err != nil {
		return res, err
	}

	res.FromModel(model.NewCancellationResult(booking))

	s.publish(ctx, model.EventBookingCancelled, booking, session.UserID)

	log.Info().Str("bookingNumber", booking.Number()).Int64("userId", session.UserID).Msg("booking cancelled")

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking, userID int64) {
	c := context.WithoutCancel(ctx)

	if err := s.event.Publish(c, model.NewEvent(eventType, booking, userID, s.clock.Now())); err != nil {
		log.Warn().Err(err).Str("type", eventType).Str("bookingNumber", booking.Number()).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) Ticket(ctx context.Context, session authModel.Session, id int64) (res ticketModel.Artifact, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingTicket")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, session.Token, id)
	if err != nil {
		log.Error().Err(err).Int64("bookingId", id).Msg("failed to get booking for ticket")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res, err = s.ticket.Generate(ctx, booking, s.clock.Now())
	if err != nil {
		return res, fmt.Errorf("failed to generate ticket: %w", err)
	}

	return res, nil
}
