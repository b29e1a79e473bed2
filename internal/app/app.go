package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/storeratings/internal/config"
	"github.com/polkiloo/storeratings/internal/domain/repository"
	"github.com/polkiloo/storeratings/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewRatingsFacade,
		newHTTPServer,
		newStatsSampler,
		func(f *RatingsFacade) AdminBootstrapper { return f },
	),
	fx.Invoke(registerLifecycle),
)

// AdminBootstrapper creates the initial administrator account.
type AdminBootstrapper interface {
	EnsureAdmin(ctx context.Context, name, email, password string) (bool, error)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

type samplerParams struct {
	fx.In

	Config *config.Config
	Stats  repository.StatsRepository
	Logger *slog.Logger
}

func newStatsSampler(p samplerParams) *worker.StatsSampler {
	return worker.NewStatsSampler(p.Stats, p.Config.StatsInterval, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Sampler    *worker.StatsSampler
	Admin      AdminBootstrapper
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := bootstrapAdmin(ctx, p.Admin, p.Config, p.Logger); err != nil {
				return err
			}

			if p.Sampler != nil {
				p.Sampler.Start(context.WithoutCancel(ctx))
			}

			p.Logger.Info("starting storeratings", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if p.Sampler != nil {
				p.Sampler.Stop()
			}
			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("storeratings stopped")
			return nil
		},
	})
}

func bootstrapAdmin(ctx context.Context, admin AdminBootstrapper, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AdminEmail == "" || admin == nil {
		return nil
	}
	name := cfg.AdminName
	if name == "" {
		name = "System Administrator"
	}
	created, err := admin.EnsureAdmin(ctx, name, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		logger.Info("administrator account created", slog.String("email", cfg.AdminEmail))
	}
	return nil
}
