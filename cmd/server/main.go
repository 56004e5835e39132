package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bellapizza/bellapizza-backend/config"
	"github.com/bellapizza/bellapizza-backend/internal/app/controller"
	"github.com/bellapizza/bellapizza-backend/internal/app/repository"
	"github.com/bellapizza/bellapizza-backend/internal/app/service"
	"github.com/bellapizza/bellapizza-backend/internal/db"
	"github.com/bellapizza/bellapizza-backend/internal/middleware"
	"github.com/bellapizza/bellapizza-backend/internal/router"
	"github.com/bellapizza/bellapizza-backend/pkg/logger"
	"github.com/bellapizza/bellapizza-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Bella Pizza Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations and seed the starter menu
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs refresh token revocation. Without it sessions still work,
	// but logout cannot invalidate refresh tokens early.
	var revoker service.TokenRevoker
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, token revocation disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close redis connection", err)
			}
		}()
		revoker = redis.NewTokenBlacklist(redis.GetClient())
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	pizzaRepo := repository.NewPizzaRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		revoker,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	catalogService := service.NewCatalogService(pizzaRepo)
	cartService := service.NewCartService(cartRepo, pizzaRepo)
	checkoutService := service.NewCheckoutService(db.GetDB(), userRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	pizzaController := controller.NewPizzaController(catalogService)
	cartController := controller.NewCartController(cartService)
	checkoutController := controller.NewCheckoutController(checkoutService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		pizzaController,
		cartController,
		checkoutController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
