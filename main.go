package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"motogarage-api/config"
	"motogarage-api/database"
	"motogarage-api/middleware"
	"motogarage-api/routes"
	"motogarage-api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed directory with sample shops (development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Object storage is optional: without credentials the API runs with
	// document storage disabled instead of refusing to start.
	var store services.ObjectStore
	if cfg.StorageEndpoint != "" && cfg.StorageAccessKey != "" {
		minioStore, err := services.NewMinioStore(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize object storage: %v", err)
		} else {
			store = minioStore
		}
	}

	emailService := services.NewEmailService(cfg)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS and security headers
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, store)

	// Start server
	log.Printf("Starting MotoGarage API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
