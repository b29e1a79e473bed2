package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/storeratings/internal/server/http/handlers"
	"github.com/polkiloo/storeratings/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RatingsFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	storeHandler := handlers.NewStoreHandler(facade, facade)
	ratingHandler := handlers.NewRatingHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Health)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(middleware.AuthRequired(facade))
	secured.PUT("/auth/password", authHandler.ChangePassword)
	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/users", userHandler.List)
	secured.POST("/users", userHandler.Create)

	secured.GET("/stores", storeHandler.List)
	secured.POST("/stores", storeHandler.Create)
	secured.GET("/stores/:id/stats", storeHandler.Stats)
	secured.GET("/stores/:id/rating", storeHandler.MyRating)

	secured.POST("/ratings", ratingHandler.Submit)

	secured.GET("/stats/admin", statsHandler.Platform)
	secured.GET("/stats/store", statsHandler.Owner)

	return engine
}
