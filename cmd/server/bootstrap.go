package main

import (
	"github.com/renohub/backend/internal/config"
	"github.com/renohub/backend/internal/handlers"
	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/internal/utils"
	"github.com/renohub/backend/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg                 *config.Config
	notificationService *services.NotificationService
	taskQueue           services.TaskQueue
	worker              *services.Worker
	authHandler         *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize audit logger
	services.InitAuditLogger(models.GetDB())

	// Initialize task queue (uses Redis if enabled, otherwise sync mode)
	notificationService := services.NewNotificationService(models.GetDB())
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(notificationService.Dispatch)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(notificationService.Dispatch)
			worker.Start()
		}
	}

	// Start nightly maintenance jobs
	services.StartMaintenanceScheduler(models.GetDB(), cfg, notificationService)

	// Create default coach account
	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateCoachIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create default coach")
	}

	return &appServices{
		cfg:                 cfg,
		notificationService: notificationService,
		taskQueue:           taskQueue,
		worker:              worker,
		authHandler:         authHandler,
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	services.StopMaintenanceScheduler()
	logger.Info().Msg("All schedulers stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}
