package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hcanhquan/royalvietnam-backend/config"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/controller"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/repository"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/service"
	"github.com/hcanhquan/royalvietnam-backend/internal/db"
	"github.com/hcanhquan/royalvietnam-backend/internal/middleware"
	"github.com/hcanhquan/royalvietnam-backend/internal/router"
	"github.com/hcanhquan/royalvietnam-backend/internal/scheduler"
	"github.com/hcanhquan/royalvietnam-backend/internal/session"
	"github.com/hcanhquan/royalvietnam-backend/internal/storage"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"github.com/hcanhquan/royalvietnam-backend/pkg/redis"
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

	logger.Info("Starting Royal Vietnam Backend Server", map[string]interface{}{
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

	// Run migrations and seed the admin account
	if err := db.Migrate(cfg.Auth.SeedAdminUsername, cfg.Auth.SeedAdminPassword); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Session store: in-process by default, Redis when configured
	var sessions session.Store
	if cfg.Auth.SessionStore == "redis" {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to connect to Redis for session store", err)
		}
		defer redis.Close()
		sessions = session.NewRedisStore(redis.GetClient())
	} else {
		sessions = session.NewMemoryStore()
	}

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository(db.GetDB())
	accountRepo := repository.NewAccountRepository(db.GetDB())
	documentRepo := repository.NewDocumentRepository(db.GetDB())
	adminRepo := repository.NewAdminRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(adminRepo, sessions, cfg.Auth.EmployeePassword)
	businessService := service.NewBusinessService(businessRepo, accountRepo, cfg.Auth.DeletePassword)
	accountService := service.NewAccountService(accountRepo, businessRepo)
	documentService := service.NewDocumentService(documentRepo, businessRepo, cfg.Auth.DeletePassword)
	exportService := service.NewExportService(businessRepo)

	// Object storage for signed PDFs
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	businessController := controller.NewBusinessController(businessService, exportService)
	accountController := controller.NewAccountController(accountService)
	documentController := controller.NewDocumentController(documentService)
	uploadController := controller.NewUploadController(s3Storage)
	systemController := controller.NewSystemController(db.GetDB(), &cfg.Auth)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessions)

	// Daily reminder for signing tokens nearing expiry
	tokenScheduler := scheduler.NewTokenExpiryScheduler(accountRepo)
	if err := tokenScheduler.Start(); err != nil {
		logger.Error("Failed to start token expiry scheduler", err)
	}
	defer tokenScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		businessController,
		accountController,
		documentController,
		uploadController,
		systemController,
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
