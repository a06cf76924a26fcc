package main

import (
	"log"
	"time"

	"snipr-be/internal/cache"
	"snipr-be/internal/config"
	"snipr-be/internal/controllers"
	"snipr-be/internal/database"
	"snipr-be/internal/middleware"
	"snipr-be/internal/repository"
	"snipr-be/internal/service"
	"snipr-be/internal/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	urlRepo := repository.NewURLRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Initialize token service
	tokenService := token.NewService(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenTTL)*time.Second,
		time.Duration(cfg.RefreshTokenTTL)*time.Hour,
	)

	// Initialize services
	blacklistService := service.NewBlacklistService(tokenRepo, tokenService)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	urlService := service.NewURLService(
		urlRepo,
		cacheClient,
		cfg.BaseURL,
		time.Duration(cfg.DefaultURLTTL)*time.Hour,
		cfg.ShortCodeLength,
	)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, blacklistService, tokenService)
	userController := controllers.NewUserController(userService)
	shortenerController := controllers.NewShortenerController(urlService)
	qrcodeController := controllers.NewQRCodeController(cfg.BaseURL)

	// Authentication gate
	authMiddleware := middleware.NewAuthMiddleware(tokenService, blacklistService, userRepo)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authController.Signup)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
			auth.GET("/access_token", authMiddleware.RequireRefreshToken(), authController.NewAccessToken)
			auth.GET("/me", authMiddleware.RequireAccessToken(), authController.Me)
		}

		users := api.Group("/users")
		{
			users.GET("", userController.List)
			users.GET("/:id", userController.Get)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
		}

		urls := api.Group("/urls")
		{
			urls.POST("", authMiddleware.RequireAccessToken(), shortenerController.CreateShortURL)
			urls.GET("", authMiddleware.RequireAccessToken(), shortenerController.GetUserURLs)

			// Public: redirect and QR code
			urls.GET("/:shortCode", shortenerController.RedirectToURL)
			urls.GET("/:shortCode/qr", qrcodeController.GenerateQRCode)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
