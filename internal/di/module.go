package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/loyaltyhub/internal/adapter/promo"
	"github.com/polkiloo/loyaltyhub/internal/app"
	"github.com/polkiloo/loyaltyhub/internal/config"
	"github.com/polkiloo/loyaltyhub/internal/logger"
	"github.com/polkiloo/loyaltyhub/internal/pkg/session"
	"github.com/polkiloo/loyaltyhub/internal/seed"
	"github.com/polkiloo/loyaltyhub/internal/server/http/router"
	"github.com/polkiloo/loyaltyhub/internal/storage/postgres"
	"github.com/polkiloo/loyaltyhub/internal/storage/rediscache"
	"github.com/polkiloo/loyaltyhub/internal/usecase"
)

// Module assembles the full application graph. Options passed in are
// appended last so tests can replace any provided component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		session.Module,
		postgres.Module,
		rediscache.Module,
		promo.Module,
		usecase.Module,
		router.Module,
		app.Module,
		seed.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
