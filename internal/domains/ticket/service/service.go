package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Ticket=MockTicketService

import (
	"context"
	"fmt"
	"path"
	"rimbest/config"
	"rimbest/infras/otel"
	"rimbest/infras/s3"
	bookingModel "rimbest/internal/domains/booking/model"
	"rimbest/internal/domains/ticket/layout"
	"rimbest/internal/domains/ticket/model"
	"rimbest/internal/domains/ticket/repository"
	"rimbest/shared/clock"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultIssuer    = "RimBest Airways"
	defaultDirectory = "tickets"

	labelTitle           = "title"
	labelSeatPlaceholder = "seatPlaceholder"
	labelPaid            = "paid"
	labelPending         = "pending"
	labelTaxes           = "taxesIncluded"
	labelStatusPrefix    = "status."

	messageNoTicket = "This booking has no ticket to print."
)

// Ticket renders receipts and archives them.
type Ticket interface {
	Generate(ctx context.Context, booking bookingModel.Booking, issuedAt time.Time) (model.Artifact, error)
	Archive(ctx context.Context, artifact model.Artifact) (model.Receipt, error)
}

type serviceImpl struct {
	repo  repository.Receipt
	s3    s3.S3
	cfg   *config.Config
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Receipt, s3 s3.S3, cfg *config.Config, clock clock.Clock, otel otel.Otel) Ticket {
	return &serviceImpl{
		repo:  repo,
		s3:    s3,
		cfg:   cfg,
		clock: clock,
		otel:  otel,
	}
}

func (s *serviceImpl) issuer() string {
	if s.cfg.Ticket.Issuer != "" {
		return s.cfg.Ticket.Issuer
	}

	return defaultIssuer
}

// Generate takes only data, so the same booking and issue time always give
// the same bytes. A booking without tickets produces nothing.
func (s *serviceImpl) Generate(ctx context.Context, booking bookingModel.Booking, issuedAt time.Time) (res model.Artifact, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateTicket")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ticket, ok := booking.PrimaryTicket()
	if !ok {
		return res, failure.BusinessRule(messageNoTicket)
	}

	tpl, err := layout.Default()
	if err != nil {
		log.Error().Err(err).Msg("failed to load ticket layout")

		return res, fmt.Errorf("failed to load ticket layout: %w", err)
	}

	number := booking.Number()
	title := tpl.Label(labelTitle, "Receipt")

	content, err := tpl.Render(s.values(tpl, booking, ticket, issuedAt), layout.Metadata{
		Title:     title + " - " + number,
		Subject:   title,
		Author:    s.issuer(),
		CreatedAt: issuedAt,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingNumber", number).Msg("failed to render ticket")

		return res, fmt.Errorf("failed to render ticket: %w", err)
	}

	scope.SetAttribute("ticket.size", len(content))

	return model.Artifact{
		FileName:      model.FileName(number, ticket.PassengerName, issuedAt),
		BookingID:     booking.ID,
		BookingNumber: number,
		Content:       content,
	}, nil
}

func (s *serviceImpl) values(tpl *layout.Layout, booking bookingModel.Booking, ticket bookingModel.Ticket, issuedAt time.Time) map[string]string {
	seat := strings.TrimSpace(ticket.SeatNumber)
	if seat == "" {
		seat = tpl.Label(labelSeatPlaceholder, missingValue)
	}

	status := strings.ToUpper(strings.TrimSpace(ticket.Status))
	if status == "" {
		status = strings.ToUpper(booking.Status)
	}

	badge := tpl.Label(labelPaid, bookingModel.PaymentStatusPaid)
	if !booking.IsPaid() {
		badge = tpl.Label(labelPending, bookingModel.PaymentStatusPending)
	}

	values := map[string]string{
		"issuer":         s.issuer(),
		"title":          tpl.Label(labelTitle, ""),
		"issueDate":      formatDate(issuedAt),
		"bookingNumber":  booking.Number(),
		"passengerName":  ticket.PassengerName,
		"passengerEmail": ticket.PassengerEmail,
		"flightNumber":   missingValue,
		"departureCity":  missingValue,
		"arrivalCity":    missingValue,
		"departureDate":  missingValue,
		"departureTime":  missingValue,
		"arrivalTime":    missingValue,
		"seatNumber":     seat,
		"ticketStatus":   tpl.Label(labelStatusPrefix+status, status),
		"ticketPrice":    formatPrice(ticket.Price),
		"subtotal":       formatPrice(booking.TotalPrice),
		"taxes":          tpl.Label(labelTaxes, ""),
		"total":          formatPrice(booking.TotalPrice),
		"paymentBadge":   badge,
	}

	if flight := ticket.Flight; flight != nil {
		values["flightNumber"] = flight.FlightNumber
		values["departureCity"] = flight.DepartureCity
		values["arrivalCity"] = flight.ArrivalCity
		values["departureDate"] = formatDate(flight.DepartureTime.Time)
		values["departureTime"] = formatClock(flight.DepartureTime.Time)
		values["arrivalTime"] = formatClock(flight.ArrivalTime.Time)
	}

	return values
}

// Archive uploads the artifact and records it. The upload is removed again
// when the ledger write fails, so the bucket never holds unrecorded tickets.
func (s *serviceImpl) Archive(ctx context.Context, artifact model.Artifact) (res model.Receipt, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ArchiveTicket")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.cfg.Ticket.ArchiveEnable {
		return res, failure.Unimplemented("ticket archive is disabled")
	}

	directory := s.cfg.Ticket.Directory
	if directory == "" {
		directory = defaultDirectory
	}

	directory = path.Join(directory, artifact.BookingNumber)

	url, err := s.s3.Upload(ctx, directory, artifact.FileName, constant.ContentTypePDF, artifact.Content)
	if err != nil {
		log.Error().Err(err).Str("bookingNumber", artifact.BookingNumber).Msg("failed to upload ticket")

		return res, fmt.Errorf("failed to upload ticket: %w", err)
	}

	receipt := model.Receipt{
		ID:            uuid.NewString(),
		BookingID:     artifact.BookingID,
		BookingNumber: artifact.BookingNumber,
		FileName:      artifact.FileName,
		ObjectURL:     url,
		CreatedAt:     s.clock.Now(),
	}

	if err = s.repo.Insert(ctx, receipt); err != nil {
		log.Error().Err(err).Str("bookingNumber", artifact.BookingNumber).Msg("failed to record ticket receipt")

		if delErr := s.s3.Delete(ctx, directory, artifact.FileName); delErr != nil {
			log.Error().Err(delErr).Str("url", url).Msg("failed to remove unrecorded ticket")
		}

		return res, fmt.Errorf("failed to record ticket receipt: %w", err)
	}

	log.Info().Str("bookingNumber", artifact.BookingNumber).Str("url", url).Msg("ticket archived")

	return receipt, nil
}
