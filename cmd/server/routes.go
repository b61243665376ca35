package main

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/handlers"
	"github.com/renohub/backend/internal/middleware"
	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	db := models.GetDB()

	// Rate limiter for credential routes
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
		}

		// SSE Events (public route with internal token validation)
		sseHandler := handlers.NewSSEHandler(services.GetSSEHub())
		api.GET("/events/notifications", sseHandler.StreamNotifications)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(db), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			// Projects
			projectHandler := handlers.NewProjectHandler(db)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.Get)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)

			// Team directory (read for anyone with project access,
			// writes are owner-checked in the handler)
			teamHandler := handlers.NewTeamMemberHandler(db)
			protected.GET("/projects/:id/team", teamHandler.List)
			protected.POST("/projects/:id/team", teamHandler.Add)
			protected.DELETE("/projects/:id/team/:memberID", teamHandler.Remove)

			// Statements of work (reads and owner decisions)
			sowHandler := handlers.NewSOWHandler(db, svc.notificationService)
			protected.GET("/sows/:id", sowHandler.Get)
			protected.GET("/projects/:id/sows", sowHandler.ListByProject)
			protected.POST("/sows/:id/approve", sowHandler.Approve)
			protected.POST("/sows/:id/decline", sowHandler.Decline)

			// Bids (reads and owner acceptance)
			bidHandler := handlers.NewBidHandler(db, svc.notificationService)
			protected.GET("/sows/:id/bids", bidHandler.ListBySOW)
			protected.POST("/bids/:id/accept", bidHandler.Accept)

			// Project messages
			messageHandler := handlers.NewMessageHandler(db)
			protected.GET("/projects/:id/messages", messageHandler.List)
			protected.POST("/projects/:id/messages", messageHandler.Post)

			// Notifications
			notificationHandler := handlers.NewNotificationHandler(db)
			protected.GET("/notifications", notificationHandler.List)
			protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			protected.POST("/notifications/:id/read", notificationHandler.MarkRead)
			protected.POST("/notifications/read-all", notificationHandler.MarkAllRead)
		}

		// Coach only routes
		coach := api.Group("")
		coach.Use(middleware.AuthRequired(db), middleware.CoachRequired(db), middleware.AuditLog())
		{
			sowHandler := handlers.NewSOWHandler(db, svc.notificationService)
			coach.POST("/sows", sowHandler.Create)
			coach.POST("/sows/:id/submit", sowHandler.Submit)
			coach.POST("/sows/:id/complete", sowHandler.Complete)

			userHandler := handlers.NewUserHandler(db, svc.cfg)
			coach.GET("/users", userHandler.List)
			coach.PUT("/users/:id/role", userHandler.UpdateRole)
		}

		// Service pro only routes
		servicePro := api.Group("")
		servicePro.Use(middleware.AuthRequired(db), middleware.ServiceProRequired(db), middleware.AuditLog())
		{
			bidHandler := handlers.NewBidHandler(db, svc.notificationService)
			servicePro.POST("/bids", bidHandler.Place)
		}
	}
}
