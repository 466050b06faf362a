//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/internal/event"
	"hotel/internal/store"
	"hotel/shared/cache"
	"hotel/shared/random"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	"hotel/transport/scheduler"

	bookingService "hotel/internal/domains/booking/service"
	datastoreService "hotel/internal/domains/datastore/service"
	guestService "hotel/internal/domains/guest/service"
	paymentService "hotel/internal/domains/payment/service"
	roomService "hotel/internal/domains/room/service"

	bookingHandler "hotel/internal/handlers/booking"
	datastoreHandler "hotel/internal/handlers/datastore"
	guestHandler "hotel/internal/handlers/guest"
	paymentHandler "hotel/internal/handlers/payment"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	random.New,
	event.NewPublisher,
)

var dataStore = wire.NewSet(
	store.NewPersister,
	store.New,
)

var domains = wire.NewSet(
	roomService.New,
	guestService.New,
	bookingService.New,
	paymentService.New,
	datastoreService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	datastoreHandler.New,
	router.New,
)

func InitializeService() (*App, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		dataStore,
		domains,
		routing,
		http.New,
		scheduler.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil, nil
}
