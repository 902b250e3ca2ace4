package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Payment=MockPaymentService

import (
	"context"
	"fmt"
	"rimbest/config"
	"rimbest/infras/otel"
	authModel "rimbest/internal/domains/auth/model"
	bookingModel "rimbest/internal/domains/booking/model"
	bookingRepo "rimbest/internal/domains/booking/repository"
	flightModel "rimbest/internal/domains/flight/model"
	"rimbest/internal/domains/payment/model"
	"rimbest/internal/domains/payment/model/dto"
	"rimbest/shared/clock"
	"rimbest/shared/constant"
	"rimbest/shared/environment"
	"rimbest/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultConfirmAttempts = 3
	defaultConfirmInterval = 500 * time.Millisecond
)

// Payment validates card input and turns a validated submission into a
// booking. No gateway is integrated: a charge is the remote booking itself.
type Payment interface {
	Validate(ctx context.Context, req dto.PaymentRequest) error
	Charge(ctx context.Context, session authModel.Session, flight flightModel.Flight, passenger bookingModel.Passenger) (model.Charge, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	env         *environment.Environment
	cfg         *config.Config
	clock       clock.Clock
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, env *environment.Environment, cfg *config.Config, clock clock.Clock, otel otel.Otel) Payment {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		env:         env,
		cfg:         cfg,
		clock:       clock,
		otel:        otel,
	}
}

func (s *serviceImpl) Validate(ctx context.Context, req dto.PaymentRequest) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidatePayment")
	defer scope.End()

	if s.env.PaymentTestMode() {
		relaxed := dto.NewRelaxed(req)

		return validator.ValidateStruct(&relaxed) //nolint:wrapcheck
	}

	return validator.ValidateStruct(&req) //nolint:wrapcheck
}

func (s *serviceImpl) Charge(
	ctx context.Context,
	session authModel.Session,
	flight flightModel.Flight,
	passenger bookingModel.Passenger,
) (res model.Charge, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Charge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("flight.id", flight.ID)

	if s.env.PaymentTestMode() {
		booking, err := s.simulate(flight, passenger)
		if err != nil {
			return res, err
		}

		log.Warn().Int64("bookingId", booking.ID).Msg("payment simulated, remote API not called")

		return model.Charge{Booking: booking, Confirmed: true, Simulated: true}, nil
	}

	booking, err := s.bookingRepo.Create(ctx, session.Token, bookingModel.BookingRequest{
		FlightID:   flight.ID,
		Passengers: []bookingModel.Passenger{passenger},
	})
	if err != nil {
		log.Error().Err(err).Int64("flightId", flight.ID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking = s.confirm(ctx, session, booking)

	return model.Charge{Booking: booking, Confirmed: booking.IsPaid()}, nil
}

// confirm asks the server for the payment status until it reports PAID or
// the attempts run out. Polling failures keep the last known booking.
func (s *serviceImpl) confirm(ctx context.Context, session authModel.Session, booking bookingModel.Booking) bookingModel.Booking {
	attempts := s.cfg.Payment.ConfirmAttempts
	if attempts <= 0 {
		attempts = defaultConfirmAttempts
	}

	interval := time.Duration(s.cfg.Payment.ConfirmIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultConfirmInterval
	}

	for attempt := 1; attempt <= attempts && !booking.IsPaid(); attempt++ {
		select {
		case <-ctx.Done():
			return booking
		case <-s.clock.After(interval):
		}

		latest, err := s.bookingRepo.Get(ctx, session.Token, booking.ID)
		if err != nil {
			log.Warn().Err(err).Int64("bookingId", booking.ID).Int("attempt", attempt).Msg("failed to confirm payment status")

			return booking
		}

		booking = latest
	}

	if !booking.IsPaid() {
		log.Warn().Int64("bookingId", booking.ID).Str("paymentStatus", booking.PaymentStatus).Msg("payment not confirmed by server")
	}

	return booking
}
