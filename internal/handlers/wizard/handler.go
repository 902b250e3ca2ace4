package wizard

import (
	"net/http"
	"rimbest/infras/otel"
	authModel "rimbest/internal/domains/auth/model"
	paymentDto "rimbest/internal/domains/payment/model/dto"
	"rimbest/internal/domains/wizard/model/dto"
	"rimbest/internal/domains/wizard/service"
	"rimbest/shared/constant"
	gDto "rimbest/shared/dto"
	"rimbest/shared/validator"
	"rimbest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wizard
	otel    otel.Otel
}

func New(service service.Wizard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/wizards", func(r chi.Router) {
		r.Post("/", handler.Start)
		r.Get("/{id}", handler.GetWizard)
		r.Post("/{id}/passenger", handler.SubmitPassenger)
		r.Post("/{id}/back", handler.Back)
		r.Post("/{id}/payment", handler.SubmitPayment)
		r.Get("/{id}/ticket", handler.Ticket)
	})
}

// Start opens a booking wizard
// @Summary Start booking a flight
// @Description Open a three step wizard for the chosen flight. The wizard expires after a period of inactivity.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body dto.StartRequest true "Start Request"
// @Success 201 {object} dto.WizardResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards [post]
// @Security BearerAuth
func (handler *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Start")
	defer scope.End()

	session, err := authModel.RequireSession(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.StartRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Start(ctx, session, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start wizard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wizard started")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetWizard returns the wizard state
// @Summary Get a booking wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} dto.WizardResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWizard")
	defer scope.End()

	session, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, session, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitPassenger stores the passenger details
// @Summary Submit passenger details
// @Description Step one. Only the first invalid field is reported.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param request body dto.PassengerRequest true "Passenger"
// @Success 200 {object} dto.WizardResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/passenger [post]
// @Security BearerAuth
func (handler *Handler) SubmitPassenger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitPassenger")
	defer scope.End()

	session, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.PassengerRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.SubmitPassenger(ctx, session, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("wizard_id", id).Msg("failed to submit passenger")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Back returns to the previous step
// @Summary Go back one step
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} dto.WizardResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/back [post]
// @Security BearerAuth
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	session, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Back(ctx, session, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitPayment pays for the booking
// @Summary Submit payment
// @Description Step two. Creates the booking and waits for the payment confirmation. Submitting again after success returns the same booking.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard ID"
// @Param request body paymentDto.PaymentRequest true "Card details"
// @Success 200 {object} dto.WizardResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/wizards/{id}/payment [post]
// @Security BearerAuth
func (handler *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitPayment")
	defer scope.End()

	session, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := paymentDto.PaymentRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.SubmitPayment(ctx, session, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("wizard_id", id).Stringer("card", req).Msg("failed to submit payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment submitted")

	response.WithJSON(w, http.StatusOK, res)
}

// Ticket downloads the receipt of a completed wizard
// @Summary Download the ticket
// @Tags Wizard
// @Produce application/pdf
// @Param id path string true "Wizard ID"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/ticket [get]
// @Security BearerAuth
func (handler *Handler) Ticket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Ticket")
	defer scope.End()

	session, id, err := handler.target(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	artifact, err := handler.service.Ticket(ctx, session, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("wizard_id", id).Msg("failed to generate ticket")

		response.WithError(w, err)

		return
	}

	response.WithPDF(w, artifact.FileName, artifact.Content)
}

func (handler *Handler) target(r *http.Request) (authModel.Session, string, error) {
	session, err := authModel.RequireSession(r.Context())
	if err != nil {
		return session, "", err
	}

	id, err := gDto.PathString(r)

	return session, id, err
}
