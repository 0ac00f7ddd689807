package http

import (
	"time"

	"idle_garden/internal/config"
	"idle_garden/internal/http/handlers"
	"idle_garden/internal/http/middleware"
	"idle_garden/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, handlers.HandlerConfig{
		GoogleClientID: cfg.GoogleClientID,
		DevMode:        cfg.DevMode,
	})
	healthHandler := handlers.NewHealthHandler(db, version)

	apiRateWindow := time.Duration(cfg.APIRateWindow) * time.Second
	gameRateWindow := time.Duration(cfg.GameRateWindow) * time.Second

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))

	// Auth
	api.POST("/auth/google", h.GoogleAuth)
	api.GET("/auth/profile", middleware.JWT(), h.AuthProfile)
	api.GET("/auth/status", middleware.JWT(), h.AuthStatus)

	// Users
	api.POST("/users", h.CreateUser)
	api.GET("/users/:userId", middleware.JWT(), h.GetUser)
	api.PATCH("/users/:userId", middleware.JWT(), h.UpdateUser)
	api.GET("/users/:userId/state", middleware.JWT(), h.GetGameState)
	api.POST("/users/:userId/login", middleware.JWT(), h.TouchLogin)

	// Game actions (per-user rate limited on top of the per-IP limiter)
	game := api.Group("/game")
	game.Use(middleware.JWT(), middleware.GameRateLimit(cfg.GameRateLimit, gameRateWindow))
	game.POST("/plant", h.Plant)
	game.POST("/click", h.Click)
	game.POST("/sell", h.Sell)

	// Ad boosts
	api.GET("/ads/status", middleware.JWT(), h.AdStatus)
	api.POST("/ads/reward", middleware.JWT(), middleware.GameRateLimit(cfg.GameRateLimit, gameRateWindow), h.ClaimAdReward)

	// Catalog
	api.GET("/seeds", h.ListSeeds)
	api.GET("/seeds/available", middleware.JWT(), h.AvailableSeeds)
	api.GET("/seeds/:seedId", h.GetSeed)
	api.GET("/locations", h.ListLocations)
	api.GET("/locations/available", middleware.JWT(), h.AvailableLocations)
	api.GET("/locations/:locationId", h.GetLocation)
	api.POST("/locations/buy", middleware.JWT(), h.BuyLocation)
	api.POST("/locations/select", middleware.JWT(), h.SelectLocation)

	// Garden state feed
	r.GET("/ws/garden", ws.HandleGardenFeed(h.UserService))
}
