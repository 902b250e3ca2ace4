package router

import (
	"net/http"
	"rimbest/config"
	"rimbest/internal/handlers/admin"
	"rimbest/internal/handlers/auth"
	"rimbest/internal/handlers/booking"
	"rimbest/internal/handlers/flight"
	"rimbest/internal/handlers/wizard"
	"rimbest/shared/constant"
	"rimbest/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "rimbest/docs"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Flight  flight.Handler
	Wizard  wizard.Handler
	Booking booking.Handler
	Admin   admin.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every route on router. Middlewares that must see
// preflight requests are installed on the root, the rest only on /v1.
func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(r.cors())
	}

	router.Use(r.App.RequestID, r.App.Tracing)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Group(func(protected chi.Router) {
		protected.Use(r.App.RateLimit(), r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		protected.Route("/v1", func(routerGroup chi.Router) {
			r.DomainHandlers.Auth.Router(routerGroup)
			r.DomainHandlers.Flight.Router(routerGroup)
			r.DomainHandlers.Wizard.Router(routerGroup)
			r.DomainHandlers.Booking.Router(routerGroup)
			r.DomainHandlers.Admin.Router(routerGroup)
		})
	})
}

func (r *Router) cors() func(http.Handler) http.Handler {
	cfg := r.Config.App.CORS

	return cors.Handler(cors.Options{
		AllowedOrigins:   withDefault(cfg.AllowedOrigins, constant.Asterix),
		AllowedMethods:   withDefault(cfg.AllowedMethods, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions),
		AllowedHeaders:   withDefault(cfg.AllowedHeaders, constant.RequestHeaderAuthorization, constant.RequestHeaderContentType, constant.RequestHeaderAPIKey),
		ExposedHeaders:   []string{constant.RequestHeaderContentDisposition, constant.RequestHeaderRequestID, constant.RequestHeaderRateLimitRemaining},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAgeSeconds,
	})
}

func withDefault(values []string, defaults ...string) []string {
	if len(values) == 0 {
		return defaults
	}

	return values
}

func New(cfg *config.Config, domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
