package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Wizard=MockWizardService

import (
	"context"
	"errors"
	"fmt"
	"math"
	"rimbest/config"
	"rimbest/infras/otel"
	authModel "rimbest/internal/domains/auth/model"
	bookingModel "rimbest/internal/domains/booking/model"
	bookingRepo "rimbest/internal/domains/booking/repository"
	flightRepo "rimbest/internal/domains/flight/repository"
	paymentDto "rimbest/internal/domains/payment/model/dto"
	paymentService "rimbest/internal/domains/payment/service"
	ticketModel "rimbest/internal/domains/ticket/model"
	ticketService "rimbest/internal/domains/ticket/service"
	"rimbest/internal/domains/wizard/model"
	"rimbest/internal/domains/wizard/model/dto"
	"rimbest/shared/cache"
	"rimbest/shared/clock"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"rimbest/shared/validator"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheWizard     = "wizard:"
	cacheWizardLock = "wizard:lock:"

	defaultTTLSeconds     = 1800
	defaultLockTTLSeconds = 30

	defaultRemoteTimeout   = 15 * time.Second
	defaultConfirmAttempts = 3
	defaultConfirmInterval = 500 * time.Millisecond

	messageNotFound      = "Booking session not found or expired."
	messageSoldOut       = "This flight has no seats left."
	messagePaymentFailed = "Payment failed. Please try again."
	messageInProgress    = "A payment is already being processed for this booking."
)

// Wizard drives a booking from passenger details to a confirmed ticket.
// State lives in redis and belongs to the user who started it.
type Wizard interface {
	Start(ctx context.Context, session authModel.Session, req dto.StartRequest) (dto.WizardResponse, error)
	Get(ctx context.Context, session authModel.Session, id string) (dto.WizardResponse, error)
	SubmitPassenger(ctx context.Context, session authModel.Session, id string, req dto.PassengerRequest) (dto.WizardResponse, error)
	Back(ctx context.Context, session authModel.Session, id string) (dto.WizardResponse, error)
	SubmitPayment(ctx context.Context, session authModel.Session, id string, req paymentDto.PaymentRequest) (dto.WizardResponse, error)
	Ticket(ctx context.Context, session authModel.Session, id string) (ticketModel.Artifact, error)
}

type serviceImpl struct {
	flightRepo flightRepo.Flight
	payment    paymentService.Payment
	ticket     ticketService.Ticket
	event      bookingRepo.Event
	cache      cache.RedisCache
	cfg        *config.Config
	clock      clock.Clock
	otel       otel.Otel
}

func New(
	flightRepo flightRepo.Flight,
	payment paymentService.Payment,
	ticket ticketService.Ticket,
	event bookingRepo.Event,
	cache cache.RedisCache,
	cfg *config.Config,
	clock clock.Clock,
	otel otel.Otel,
) Wizard {
	return &serviceImpl{
		flightRepo: flightRepo,
		payment:    payment,
		ticket:     ticket,
		event:      event,
		cache:      cache,
		cfg:        cfg,
		clock:      clock,
		otel:       otel,
	}
}

func (s *serviceImpl) ttl() int {
	if s.cfg.Wizard.TTLSeconds > 0 {
		return s.cfg.Wizard.TTLSeconds
	}

	return defaultTTLSeconds
}

// lockTTL never drops below the longest a charge can run: the create call
// plus every confirmation poll, each bounded by the remote timeout.
func (s *serviceImpl) lockTTL() int {
	ttl := s.cfg.Wizard.LockTTLSeconds
	if ttl <= 0 {
		ttl = defaultLockTTLSeconds
	}

	return max(ttl, int(math.Ceil(s.chargeBudget().Seconds())))
}

func (s *serviceImpl) chargeBudget() time.Duration {
	timeout := time.Duration(s.cfg.Remote.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}

	attempts := s.cfg.Payment.ConfirmAttempts
	if attempts <= 0 {
		attempts = defaultConfirmAttempts
	}

	interval := time.Duration(s.cfg.Payment.ConfirmIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultConfirmInterval
	}

	return timeout*time.Duration(attempts+1) + interval*time.Duration(attempts)
}

func (s *serviceImpl) response(w model.Wizard) (res dto.WizardResponse) {
	res.FromModel(w, s.clock.Now())

	return res
}

// load returns the wizard only to its owner. Someone else's wizard is
// reported exactly like a missing one.
func (s *serviceImpl) load(ctx context.Context, session authModel.Session, id string) (w model.Wizard, err error) {
	if err = s.cache.Get(ctx, cacheWizard+id, &w); err != nil {
		if errors.Is(err, cache.Nil) {
			return w, failure.NotFound(messageNotFound)
		}

		log.Error().Err(err).Str("wizardId", id).Msg("failed to load wizard")

		return w, fmt.Errorf("failed to load wizard: %w", err)
	}

	if !w.OwnedBy(session.UserID) {
		log.Warn().Str("wizardId", id).Int64("userId", session.UserID).Msg("wizard requested by another user")

		return model.Wizard{}, failure.NotFound(messageNotFound)
	}

	return w, nil
}

// store keeps the wizard until its original expiry.
func (s *serviceImpl) store(ctx context.Context, w model.Wizard) error {
	remaining := int(w.ExpiresAt.Sub(s.clock.Now()).Seconds())
	if remaining <= 0 {
		return failure.NotFound(messageNotFound)
	}

	if err := s.cache.Save(ctx, cacheWizard+w.ID, w, remaining); err != nil {
		log.Error().Err(err).Str("wizardId", w.ID).Msg("failed to save wizard")

		return fmt.Errorf("failed to save wizard: %w", err)
	}

	return nil
}

// Start loads the flight before anything is stored, so a failed start
// leaves no wizard behind.
func (s *serviceImpl) Start(ctx context.Context, session authModel.Session, req dto.StartRequest) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartWizard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	flightID, err := req.ToFlightID()
	if err != nil {
		return res, err
	}

	flight, err := s.flightRepo.Get(ctx, flightID)
	if err != nil {
		log.Error().Err(err).Int64("flightId", flightID).Msg("failed to get flight for wizard")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if !flight.HasSeats() {
		return res, failure.BusinessRule(messageSoldOut)
	}

	w := model.New(uuid.NewString(), session.UserID, flight, s.clock.Now(), time.Duration(s.ttl())*time.Second)

	if err = s.store(ctx, w); err != nil {
		return res, err
	}

	scope.SetAttribute("wizard.id", w.ID)

	return s.response(w), nil
}

func (s *serviceImpl) Get(ctx context.Context, session authModel.Session, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWizard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.load(ctx, session, id)
	if err != nil {
		return res, err
	}

	return s.response(w), nil
}

func (s *serviceImpl) SubmitPassenger(
	ctx context.Context,
	session authModel.Session,
	id string,
	req dto.PassengerRequest,
) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitPassenger")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	w, err := s.load(ctx, session, id)
	if err != nil {
		return res, err
	}

	if err = w.SubmitPassenger(req.ToModel()); err != nil {
		return res, err
	}

	if err = s.store(ctx, w); err != nil {
		return res, err
	}

	return s.response(w), nil
}

func (s *serviceImpl) Back(ctx context.Context, session authModel.Session, id string) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BackWizard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.load(ctx, session, id)
	if err != nil {
		return res, err
	}

	if err = w.Back(); err != nil {
		return res, err
	}

	if err = s.store(ctx, w); err != nil {
		return res, err
	}

	return s.response(w), nil
}

// SubmitPayment charges at most once per wizard. A concurrent submission is
// refused while the lock is held, and a completed wizard answers with its
// booking instead of charging again.
func (s *serviceImpl) SubmitPayment(
	ctx context.Context,
	session authModel.Session,
	id string,
	req paymentDto.PaymentRequest,
) (res dto.WizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.load(ctx, session, id)
	if err != nil {
		return res, err
	}

	if w.Completed() {
		return s.response(w), nil
	}

	if err = w.CanPay(); err != nil {
		return res, err
	}

	if err = s.payment.Validate(ctx, req); err != nil {
		return res, err //nolint:wrapcheck
	}

	lockKey, token := cacheWizardLock+id, uuid.NewString()

	acquired, err := s.cache.Acquire(ctx, lockKey, token, s.lockTTL())
	if err != nil {
		return res, failure.WithMessage(err, messagePaymentFailed)
	}

	if !acquired {
		return res, failure.Conflict(messageInProgress)
	}

	defer func() {
		released, relErr := s.cache.Release(context.WithoutCancel(ctx), lockKey, token)
		if relErr != nil {
			log.Warn().Err(relErr).Str("wizardId", id).Msg("failed to release payment lock")
		} else if !released {
			log.Warn().Str("wizardId", id).Msg("payment lock expired before release")
		}
	}()

	// Another submission may have completed between the first read and the lock.
	if w, err = s.load(ctx, session, id); err != nil {
		return res, err
	}

	if w.Completed() {
		return s.response(w), nil
	}

	charge, err := s.payment.Charge(ctx, session, w.Flight, w.Passenger.ToBookingPassenger())
	if err != nil {
		log.Error().Err(err).Str("wizardId", id).Msg("failed to charge wizard")

		if failure.Is(err, failure.KindAuth) {
			return res, err
		}

		return res, failure.WithMessage(err, messagePaymentFailed)
	}

	if err = w.Complete(charge.Booking, charge.Confirmed); err != nil {
		return res, err
	}

	if err = s.store(ctx, w); err != nil {
		log.Error().Err(err).Int64("bookingId", charge.Booking.ID).Msg("booking created but wizard not saved")
	}

	s.publish(ctx, charge.Booking, session.UserID)

	log.Info().
		Str("wizardId", id).
		Str("bookingNumber", charge.Booking.Number()).
		Bool("confirmed", charge.Confirmed).
		Bool("simulated", charge.Simulated).
		Msg("booking completed")

	return s.response(w), nil
}

func (s *serviceImpl) publish(ctx context.Context, booking bookingModel.Booking, userID int64) {
	event := bookingModel.NewEvent(bookingModel.EventBookingConfirmed, booking, userID, s.clock.Now())

	if err := s.event.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Warn().Err(err).Str("bookingNumber", booking.Number()).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) Ticket(ctx context.Context, session authModel.Session, id string) (res ticketModel.Artifact, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WizardTicket")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w, err := s.load(ctx, session, id)
	if err != nil {
		return res, err
	}

	booking, err := w.ConfirmedBooking()
	if err != nil {
		return res, err
	}

	res, err = s.ticket.Generate(ctx, booking, s.clock.Now())
	if err != nil {
		return res, fmt.Errorf("failed to generate ticket: %w", err)
	}

	return res, nil
}
