package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abraham-translation/abraham-translation-api/config"
	"github.com/abraham-translation/abraham-translation-api/controllers"
	"github.com/abraham-translation/abraham-translation-api/middleware"
	"github.com/abraham-translation/abraham-translation-api/models"
	"github.com/abraham-translation/abraham-translation-api/services"
)

func main() {
	log.Println("Starting Abraham Translation Service API...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Client{},
		&models.TranslationOrder{},
		&models.OrderFile{},
		&models.OrderStatusHistory{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize document storage
	if _, err := services.InitS3Service(); err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Initialize email delivery
	services.InitEmailService(cfg)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.SiteBaseURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

		api.POST("/orders/submit", controllers.SubmitOrder)
		api.GET("/orders/track", controllers.TrackOrders)
		api.POST("/payments/process", controllers.ProcessPayment)
		api.GET("/files/download", controllers.DownloadFile)
		api.POST("/emails/test", controllers.SendTestEmails)

		// Staff endpoints require a valid Auth0 token
		admin := api.Group("/admin", middleware.EnsureValidToken(cfg))
		{
			admin.GET("/orders", controllers.ListOrders)
			admin.POST("/orders/update", controllers.UpdateOrder)
			admin.GET("/stats", controllers.GetStats)
		}
	}

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Abraham Translation Service API is running",
	})
}
