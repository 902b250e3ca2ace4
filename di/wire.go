//go:build wireinject
// +build wireinject

package di

import (
	"rimbest/config"
	"rimbest/infras/jwt"
	"rimbest/infras/kafka"
	"rimbest/infras/otel"
	"rimbest/infras/postgres"
	"rimbest/infras/redis"
	"rimbest/infras/restapi"
	"rimbest/infras/s3"
	"rimbest/permissions"
	"rimbest/shared/cache"
	"rimbest/shared/clock"
	"rimbest/shared/environment"
	"rimbest/transport/event"
	"rimbest/transport/http"
	"rimbest/transport/http/middleware"
	"rimbest/transport/http/router"

	"github.com/google/wire"

	adminRepository "rimbest/internal/domains/admin/repository"
	adminService "rimbest/internal/domains/admin/service"
	authRepository "rimbest/internal/domains/auth/repository"
	authService "rimbest/internal/domains/auth/service"
	bookingRepository "rimbest/internal/domains/booking/repository"
	bookingService "rimbest/internal/domains/booking/service"
	flightRepository "rimbest/internal/domains/flight/repository"
	flightService "rimbest/internal/domains/flight/service"
	paymentService "rimbest/internal/domains/payment/service"
	ticketRepository "rimbest/internal/domains/ticket/repository"
	ticketService "rimbest/internal/domains/ticket/service"
	wizardService "rimbest/internal/domains/wizard/service"

	adminHandler "rimbest/internal/handlers/admin"
	authHandler "rimbest/internal/handlers/auth"
	bookingHandler "rimbest/internal/handlers/booking"
	flightHandler "rimbest/internal/handlers/flight"
	wizardHandler "rimbest/internal/handlers/wizard"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	restapi.New,
	kafka.New,
	postgres.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.Real,
	environment.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewEvent,
	bookingService.New,
)

var ticketDomain = wire.NewSet(
	ticketRepository.New,
	ticketService.New,
)

var domains = wire.NewSet(
	authDomain,
	flightDomain,
	bookingDomain,
	ticketDomain,
	paymentService.New,
	wizardService.New,
	adminRepository.New,
	adminService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	flightHandler.New,
	wizardHandler.New,
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *event.Worker {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		postgres.New,
		s3.New,
		clock.Real,
		ticketDomain,
		event.New,
	)

	return &event.Worker{}
}

func InitializeTicket() ticketService.Ticket {
	wire.Build(
		config.Get,
		otel.New,
		postgres.New,
		s3.New,
		clock.Real,
		ticketDomain,
	)

	return nil
}
