package booking

import (
	"net/http"
	"rimbest/infras/otel"
	authModel "rimbest/internal/domains/auth/model"
	"rimbest/internal/domains/booking/model/dto"
	"rimbest/internal/domains/booking/service"
	"rimbest/shared/constant"
	gDto "rimbest/shared/dto"
	"rimbest/shared/validator"
	"rimbest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}/cancel", handler.CancelBooking)
		routerGroup.Get("/{id}/ticket", handler.DownloadTicket)
	})
}

// GetBookings lists the bookings of the signed in user.
// @Summary Get my bookings
// @Description Most recent first. Filter by status (all, confirmed, pending, cancelled) and free text.
// @Tags Booking
// @Produce json
// @Param status query string false "Booking status, all by default"
// @Param q query string false "Matches booking number, passenger, flight number or cities"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetBookingsResponse
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	session, err := authModel.RequireSession(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.ListRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, session, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", session.UserID).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	session, id, err := target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, session, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a booking.
// @Summary Cancel a booking
// @Description Allowed until 48 hours before departure. The refund is decided by the booking server.
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.CancellationResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	session, id, err := target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Cancel(ctx, session, id)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("booking_id", id).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled " + res.BookingNumber)

	response.WithJSON(w, http.StatusOK, res)
}

// DownloadTicket renders the booking receipt.
// @Summary Download the ticket
// @Tags Booking
// @Produce application/pdf
// @Param id path int true "Booking ID"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/ticket [get]
// @Security BearerAuth
func (handler *Handler) DownloadTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadTicket")
	defer scope.End()

	session, id, err := target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	artifact, err := handler.service.Ticket(ctx, session, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to generate ticket")

		response.WithError(w, err)

		return
	}

	response.WithPDF(w, artifact.FileName, artifact.Content)
}

func target(r *http.Request) (authModel.Session, int64, error) {
	session, err := authModel.RequireSession(r.Context())
	if err != nil {
		return session, 0, err
	}

	id, err := gDto.PathID(r)

	return session, id, err
}
