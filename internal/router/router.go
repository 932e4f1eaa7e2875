package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/lostfound-app/backend/internal/handlers"
	"github.com/lostfound-app/backend/internal/middleware"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/lostfound-app/backend/internal/services"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// pgdb is nil when the in-memory storage driver is active.
func SetupRoutes(e *echo.Echo, repos repositories.Repositories, pgdb *gorm.DB) {
	if pgdb != nil {
		err := pgdb.AutoMigrate(
			&models.User{},
			&models.Claim{},
			&models.ChatMessage{},
			&models.Meeting{},
			&models.Notification{},
		)
		if err != nil {
			log.Fatalf("Failed to auto migrate models: %v", err)
		}
		log.Println("PostgreSQL auto-migrations completed for all models.")
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Services ---
	notificationService := services.NewNotificationService(repos.Notifications)
	moderationService := services.NewModerationService(repos.Posts, notificationService)
	claimService := services.NewClaimService(repos.Posts, repos.Claims, repos.ChatMessages, notificationService, moderationService)
	chatService := services.NewChatService(repos.ChatMessages, repos.Meetings)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(repos.Users)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// Post routes
	postHandler := handlers.NewPostHandler(repos.Posts, moderationService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Claim routes
	claimHandler := handlers.NewClaimHandler(claimService, repos.Claims, repos.Posts)
	claimHandler.RegisterClaimRoutes(api)
	log.Println("Claim routes configured.")

	// Chat routes
	chatHandler := handlers.NewChatHandler(chatService)
	chatHandler.RegisterChatRoutes(api)
	log.Println("Chat routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Admin routes (require the admin role flag)
	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.Use(middleware.AdminOnlyMiddleware())
	adminHandler := handlers.NewAdminHandler(repos.Posts, moderationService)
	adminHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
}
