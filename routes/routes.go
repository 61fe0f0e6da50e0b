package routes

import (
	"NeoVax/cache"
	"NeoVax/config"
	"NeoVax/controllers"
	"NeoVax/handlers"
	"NeoVax/middlewares"
	"NeoVax/repositories"
	"NeoVax/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Unknown paths and unsupported methods get a JSON body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
	})
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	// Initialize repositories, services, and handlers
	vaccineRepo := repositories.NewVaccineRepository(cache)
	newbornRepo := repositories.NewNewbornRepository(cache)
	scheduleRepo := repositories.NewScheduleRepository()
	recordRepo := repositories.NewRecordRepository()
	inventoryRepo := repositories.NewInventoryRepository()
	dashboardRepo := repositories.NewDashboardRepository()
	userRepo := repositories.NewUserRepository(db, cache)

	vaccineService := services.NewVaccineService(vaccineRepo)
	newbornService := services.NewNewbornService(newbornRepo, vaccineRepo)
	scheduleService := services.NewScheduleService(scheduleRepo)
	recordService := services.NewRecordService(recordRepo)
	inventoryService := services.NewInventoryService(inventoryRepo, vaccineRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)
	userService := services.NewUserService(userRepo)

	vaccineHandler := handlers.NewVaccineHandler(vaccineService)
	newbornHandler := handlers.NewNewbornHandler(newbornService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	recordHandler := handlers.NewRecordHandler(recordService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	authHandler := handlers.NewAuthHandler(userService)

	// Register routes
	controllers.SetupClinicRoutes(
		router,
		vaccineHandler,
		newbornHandler,
		scheduleHandler,
		recordHandler,
		inventoryHandler,
		dashboardHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
