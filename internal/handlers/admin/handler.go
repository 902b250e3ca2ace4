package admin

import (
	"net/http"
	"rimbest/infras/otel"
	authModel "rimbest/internal/domains/auth/model"
	"rimbest/internal/domains/admin/service"
	"rimbest/shared/constant"
	"rimbest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", handler.GetStats)
		r.Get("/users", handler.GetUsers)
		r.Get("/revenue/monthly", handler.GetMonthlyRevenue)
	})
}

// GetStats godoc
// @Summary Dashboard figures
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	session, err := authModel.RequireSession(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetStats(ctx, session)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetUsers godoc
// @Summary List users
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.GetUsersResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	session, err := authModel.RequireSession(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetUsers(ctx, session)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMonthlyRevenue godoc
// @Summary Revenue per month
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.RevenueResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/revenue/monthly [get]
// @Security BearerAuth
func (handler *Handler) GetMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlyRevenue")
	defer scope.End()

	session, err := authModel.RequireSession(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetMonthlyRevenue(ctx, session)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly revenue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
