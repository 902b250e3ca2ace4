package flight

import (
	"net/http"
	"rimbest/infras/otel"
	"rimbest/internal/domains/flight/model/dto"
	"rimbest/internal/domains/flight/service"
	"rimbest/shared/constant"
	gDto "rimbest/shared/dto"
	"rimbest/shared/validator"
	"rimbest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/flights", func(r chi.Router) {
		r.Get("/", handler.Search)
		r.Get("/{id}", handler.GetFlight)
	})
	r.Get("/airlines", handler.GetAirlines)
}

// Search lists the flights matching the given criteria
// @Summary Search flights
// @Description Filter the catalog by route, date and price. Sort is one of time, price or destination.
// @Tags Flight
// @Produce json
// @Param departureCity query string false "Departure city, case insensitive"
// @Param arrivalCity query string false "Arrival city, case insensitive"
// @Param departureDate query string false "Departure date (YYYY-MM-DD)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sort query string false "Sort key (time, price, destination)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/flights [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	req := dto.SearchRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate search criteria")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search flights")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetFlight returns a single flight
// @Summary Get a flight by ID
// @Tags Flight
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} dto.FlightResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/flights/{id} [get]
func (handler *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlight")
	defer scope.End()

	id, err := gDto.PathID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("flight_id", id).Msg("failed to get flight")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAirlines lists the airlines
// @Summary List airlines
// @Tags Flight
// @Produce json
// @Success 200 {object} dto.GetAirlinesResponse
// @Failure 503 {object} response.Error
// @Router /v1/airlines [get]
func (handler *Handler) GetAirlines(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAirlines")
	defer scope.End()

	res, err := handler.service.GetAirlines(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get airlines")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
