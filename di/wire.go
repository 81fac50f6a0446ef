//go:build wireinject
// +build wireinject

package di

import (
	"tandoor/config"
	"tandoor/infras/mailer"
	"tandoor/infras/otel"
	"tandoor/infras/postgres"
	"tandoor/infras/redis"
	"tandoor/shared/cache"
	"tandoor/transport/http"
	"tandoor/transport/http/middleware"
	"tandoor/transport/http/router"

	contactRepository "tandoor/internal/domains/contact/repository"
	contactService "tandoor/internal/domains/contact/service"
	menuRepository "tandoor/internal/domains/menu/repository"
	menuService "tandoor/internal/domains/menu/service"
	reservationRepository "tandoor/internal/domains/reservation/repository"
	reservationService "tandoor/internal/domains/reservation/service"

	adminHandler "tandoor/internal/handlers/admin"
	contactHandler "tandoor/internal/handlers/contact"
	menuHandler "tandoor/internal/handlers/menu"
	reservationHandler "tandoor/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	menuDomain,
	reservationDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	menuHandler.New,
	reservationHandler.New,
	contactHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
