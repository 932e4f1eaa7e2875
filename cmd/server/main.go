package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/lostfound-app/backend/internal/repositories"
	"github.com/lostfound-app/backend/internal/router"
	"github.com/lostfound-app/backend/internal/store"
	"github.com/lostfound-app/backend/pkg/config"
	"github.com/lostfound-app/backend/validators"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Select a storage driver: the in-memory store by default, the
	// persistent stores when configured.
	var repos repositories.Repositories
	var pgdb *gorm.DB
	switch cfg.StorageDriver {
	case "postgres":
		db, err := cfg.InitDB()
		if err != nil {
			log.Fatalf("Failed to initialize databases: %v", err)
		}
		defer db.CloseDB()

		pgdb = db.Postgres
		repos = repositories.Repositories{
			Users:         repositories.NewPostgresUserRepository(pgdb),
			Posts:         repositories.NewMongoPostRepository(db.Mongo.Database(cfg.MongoDatabase)),
			Claims:        repositories.NewPostgresClaimRepository(pgdb),
			ChatMessages:  repositories.NewPostgresChatMessageRepository(pgdb),
			Meetings:      repositories.NewPostgresMeetingRepository(pgdb),
			Notifications: repositories.NewPostgresNotificationRepository(pgdb),
		}
		log.Println("Using persistent storage (PostgreSQL + MongoDB).")
	default:
		repos = store.NewMemoryStore().Repositories()
		log.Println("Using in-memory storage.")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, repos, pgdb)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
