//go:build wireinject
// +build wireinject

package di

import (
	"hotelbook/config"
	"hotelbook/infras/jwt"
	"hotelbook/infras/kafka"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/infras/razorpay"
	"hotelbook/infras/redis"
	"hotelbook/infras/s3"
	"hotelbook/internal/worker"
	"hotelbook/permissions"
	"hotelbook/shared/cache"
	"hotelbook/shared/clock"
	"hotelbook/shared/transaction"
	"hotelbook/transport/http"
	"hotelbook/transport/http/middleware"
	"hotelbook/transport/http/router"

	"github.com/google/wire"

	authService "hotelbook/internal/domains/auth/service"
	availabilityService "hotelbook/internal/domains/availability/service"
	bookingRepository "hotelbook/internal/domains/booking/repository"
	bookingService "hotelbook/internal/domains/booking/service"
	channelRepository "hotelbook/internal/domains/channel/repository"
	channelService "hotelbook/internal/domains/channel/service"
	inventoryRepository "hotelbook/internal/domains/inventory/repository"
	inventoryService "hotelbook/internal/domains/inventory/service"
	loyaltyRepository "hotelbook/internal/domains/loyalty/repository"
	loyaltyService "hotelbook/internal/domains/loyalty/service"
	ratePlanRepository "hotelbook/internal/domains/rateplan/repository"
	ratePlanService "hotelbook/internal/domains/rateplan/service"
	roomTypeRepository "hotelbook/internal/domains/roomtype/repository"
	roomTypeService "hotelbook/internal/domains/roomtype/service"
	userRepository "hotelbook/internal/domains/user/repository"
	userService "hotelbook/internal/domains/user/service"

	authHandler "hotelbook/internal/handlers/auth"
	availabilityHandler "hotelbook/internal/handlers/availability"
	bookingHandler "hotelbook/internal/handlers/booking"
	channelHandler "hotelbook/internal/handlers/channel"
	inventoryHandler "hotelbook/internal/handlers/inventory"
	loyaltyHandler "hotelbook/internal/handlers/loyalty"
	ratePlanHandler "hotelbook/internal/handlers/rateplan"
	roomTypeHandler "hotelbook/internal/handlers/roomtype"
	userHandler "hotelbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	razorpay.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
	transaction.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var ratePlanDomain = wire.NewSet(
	ratePlanRepository.New,
	ratePlanService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var loyaltyDomain = wire.NewSet(
	loyaltyRepository.New,
	loyaltyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var channelDomain = wire.NewSet(
	channelRepository.NewMapping,
	channelRepository.NewPayload,
	provideRegistry,
	channelService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomTypeDomain,
	inventoryDomain,
	ratePlanDomain,
	availabilityDomain,
	loyaltyDomain,
	bookingDomain,
	channelDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomTypeHandler.New,
	inventoryHandler.New,
	ratePlanHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	loyaltyHandler.New,
	channelHandler.New,
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

func InitializeWorker() *worker.Worker {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		razorpay.New,
		sharedHelpers,
		userRepository.New,
		roomTypeRepository.New,
		inventoryRepository.New,
		availabilityDomain,
		loyaltyDomain,
		bookingDomain,
		channelDomain,
		worker.New,
	)

	return &worker.Worker{}
}
