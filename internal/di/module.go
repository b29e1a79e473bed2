package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storeratings/internal/app"
	"github.com/polkiloo/storeratings/internal/config"
	"github.com/polkiloo/storeratings/internal/logger"
	"github.com/polkiloo/storeratings/internal/pkg/auth"
	"github.com/polkiloo/storeratings/internal/server/http/handlers"
	"github.com/polkiloo/storeratings/internal/server/http/router"
	"github.com/polkiloo/storeratings/internal/storage/postgres"
	"github.com/polkiloo/storeratings/internal/usecase"
)

// Module assembles the full application graph. Extra options are appended last so tests can fx.Replace parts of it.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.RatingsFacade) handlers.RatingsFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
