//go:build wireinject
// +build wireinject

package di

import (
	"petcare/config"
	"petcare/infras/genai"
	"petcare/infras/jwt"
	"petcare/infras/kafka"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/infras/redis"
	"petcare/shared/cache"
	"petcare/shared/timezone"
	"petcare/transport/http"
	"petcare/transport/http/middleware"
	"petcare/transport/http/router"

	adminService "petcare/internal/domains/admin/service"
	assistantService "petcare/internal/domains/assistant/service"
	bookingEvent "petcare/internal/domains/booking/event"
	bookingReference "petcare/internal/domains/booking/reference"
	bookingRepository "petcare/internal/domains/booking/repository"
	bookingService "petcare/internal/domains/booking/service"
	catalogRepository "petcare/internal/domains/catalog/repository"
	catalogService "petcare/internal/domains/catalog/service"

	adminHandler "petcare/internal/handlers/admin"
	assistantHandler "petcare/internal/handlers/assistant"
	bookingHandler "petcare/internal/handlers/booking"
	catalogHandler "petcare/internal/handlers/catalog"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	timezone.NewClock,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	genai.New,
	provideClosers,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.NewServiceBooking,
	bookingRepository.NewRoomBooking,
	bookingReference.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var assistantDomain = wire.NewSet(
	assistantService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	adminDomain,
	catalogDomain,
	assistantDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	adminHandler.New,
	catalogHandler.New,
	assistantHandler.New,
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
