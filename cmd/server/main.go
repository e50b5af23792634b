package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chocolog/chocolog-backend/config"
	"github.com/chocolog/chocolog-backend/internal/app/controller"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/internal/app/service"
	"github.com/chocolog/chocolog-backend/internal/db"
	"github.com/chocolog/chocolog-backend/internal/middleware"
	"github.com/chocolog/chocolog-backend/internal/router"
	"github.com/chocolog/chocolog-backend/internal/scheduler"
	"github.com/chocolog/chocolog-backend/internal/storage"
	"github.com/chocolog/chocolog-backend/internal/websocket"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"github.com/chocolog/chocolog-backend/pkg/redis"
	"github.com/chocolog/chocolog-backend/pkg/util"
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

	logger.Info("Starting CHOCOLOG Backend Server", map[string]interface{}{
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

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs the logout token blacklist; the server still runs
	// without it, logout just becomes a client-side concern.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Failed to connect to Redis, token blacklist disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		defer redis.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	brandRepo := repository.NewBrandRepository(db.GetDB())
	chocolateRepo := repository.NewChocolateRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	commentRepo := repository.NewCommentRepository(db.GetDB())
	placeRepo := repository.NewPlaceRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	userService := service.NewUserService(userRepo)
	brandService := service.NewBrandService(brandRepo)
	chocolateService := service.NewChocolateService(chocolateRepo, brandRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	placesClient := util.NewPlacesClient(cfg.Google.MapsAPIKey)
	placeService := service.NewPlaceService(placeRepo, placesClient)
	reviewService := service.NewReviewService(reviewRepo, chocolateRepo, placeService)
	commentService := service.NewCommentService(commentRepo, reviewRepo)

	// S3 storage for presigned image uploads
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Activity feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.JWT.AccessTokenExpiry)
	userController := controller.NewUserController(userService)
	brandController := controller.NewBrandController(brandService)
	chocolateController := controller.NewChocolateController(chocolateService)
	categoryController := controller.NewCategoryController(categoryService)
	reviewController := controller.NewReviewController(reviewService, hub)
	commentController := controller.NewCommentController(commentService, hub)
	placeController := controller.NewPlaceController(placeService)
	uploadController := controller.NewUploadController(s3Storage)
	activityController := controller.NewActivityController(hub)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Nightly refresh of cached place details
	placeScheduler := scheduler.NewPlaceRefreshScheduler(placeService)
	if err := placeScheduler.Start(); err != nil {
		logger.Warn("Failed to start place refresh scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		defer placeScheduler.Stop()
	}

	// Setup router
	r := router.NewRouter(
		authController,
		userController,
		brandController,
		chocolateController,
		categoryController,
		reviewController,
		commentController,
		placeController,
		uploadController,
		activityController,
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
