package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loyaltyhub/internal/server/http/handlers"
	"github.com/polkiloo/loyaltyhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LoyaltyFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	rewardHandler := handlers.NewRewardHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)

	api := engine.Group("/api")
	api.POST("/session", sessionHandler.Create)

	loyalty := api.Group("/loyalty")
	loyalty.GET("/users", userHandler.List)
	loyalty.GET("/users/:id/activities", userHandler.Activities)
	loyalty.GET("/rewards", rewardHandler.List)
	loyalty.GET("/rewards/featured", rewardHandler.Featured)
	loyalty.GET("/rewards/:id", rewardHandler.Get)
	loyalty.GET("/stats", statsHandler.Get)

	loyaltyAuth := loyalty.Group("")
	loyaltyAuth.Use(middleware.SessionRequired(facade))
	loyaltyAuth.GET("/me", userHandler.Me)
	loyaltyAuth.POST("/redeem", rewardHandler.Redeem)

	cart := api.Group("/cart")
	cart.POST("/price", cartHandler.Price)

	cartAuth := cart.Group("")
	cartAuth.Use(middleware.SessionRequired(facade))
	cartAuth.POST("/checkout", cartHandler.Checkout)

	return engine
}
