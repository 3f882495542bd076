//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"transbook/config"
	"transbook/infras/otel"
	"transbook/infras/postgres"
	"transbook/infras/redis"
	"transbook/shared/cache"
	"transbook/transport/http"
	"transbook/transport/http/middleware"
	"transbook/transport/http/router"

	authService "transbook/internal/domains/auth/service"
	bookingRepository "transbook/internal/domains/booking/repository"
	bookingService "transbook/internal/domains/booking/service"
	driverRepository "transbook/internal/domains/driver/repository"
	driverService "transbook/internal/domains/driver/service"
	userRepository "transbook/internal/domains/user/repository"
	userService "transbook/internal/domains/user/service"
	vehicleRepository "transbook/internal/domains/vehicle/repository"
	vehicleService "transbook/internal/domains/vehicle/service"

	authHandler "transbook/internal/handlers/auth"
	bookingHandler "transbook/internal/handlers/booking"
	driverHandler "transbook/internal/handlers/driver"
	userHandler "transbook/internal/handlers/user"
	vehicleHandler "transbook/internal/handlers/vehicle"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.NewFallbackCredentials,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var vehicleDomain = wire.NewSet(
	vehicleRepository.New,
	vehicleService.New,
)

var driverDomain = wire.NewSet(
	driverRepository.New,
	driverService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	bookingDomain,
	vehicleDomain,
	driverDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	vehicleHandler.New,
	userHandler.New,
	driverHandler.New,
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
