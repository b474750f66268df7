package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"motogarage-api/config"
	"motogarage-api/controllers"
	"motogarage-api/middleware"
	"motogarage-api/services"
)

// SetupCORS allows browser clients to call the API from any origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, store services.ObjectStore) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	shopController := controllers.NewShopController(db)
	motorcycleController := controllers.NewMotorcycleController(db)
	bookingController := controllers.NewBookingController(db, emailService)
	documentController := controllers.NewDocumentController(db, services.NewDocumentService(db, store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited against credential stuffing)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(20, 5))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Shop directory (public)
	shops := v1.Group("/shops")
	{
		shops.GET("/", shopController.GetShops)
		shops.GET("/stats", shopController.GetStats)
		shops.GET("/countries", shopController.GetCountries)
		shops.GET("/cities", shopController.GetCities)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
		}

		// Motorcycle routes
		motorcycles := protected.Group("/motorcycles")
		{
			motorcycles.GET("/", motorcycleController.GetMotorcycles)
			motorcycles.POST("/", motorcycleController.CreateMotorcycle)
			motorcycles.PUT("/:id", motorcycleController.UpdateMotorcycle)
			motorcycles.DELETE("/:id", motorcycleController.DeleteMotorcycle)

			// Service document routes
			motorcycles.GET("/:id/documents", documentController.GetDocuments)
			motorcycles.POST("/:id/documents", documentController.UploadDocument)
			motorcycles.GET("/:id/documents/:docID/download", documentController.DownloadDocument)
			motorcycles.PUT("/:id/documents/:docID/favorite", documentController.SetFavorite)
			motorcycles.DELETE("/:id/documents/:docID", documentController.DeleteDocument)
		}

		// Booking request routes
		bookings := protected.Group("/bookings")
		{
			bookings.GET("/", bookingController.GetBookings)
			bookings.POST("/", bookingController.CreateBooking)
			bookings.PUT("/:id/cancel", bookingController.CancelBooking)
			bookings.DELETE("/:id", bookingController.DeleteBooking)
		}
	}
}
