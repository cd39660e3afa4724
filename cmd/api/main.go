// main.go
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/instasave/instasave-api/analysis"
	"github.com/instasave/instasave-api/auth"
	"github.com/instasave/instasave-api/categories"
	"github.com/instasave/instasave-api/internal/platform"
	"github.com/instasave/instasave-api/models"
	"github.com/instasave/instasave-api/videos"
)

type Server struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Analyzer *analysis.Analyzer
	Router   *gin.Engine
}

func NewServer() (*Server, error) {
	// Use the shared connection initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()
	analyzer := analysis.New(platform.NewAnalysisConfig())

	if err := db.AutoMigrate(&models.User{}, &models.Session{}, &models.Category{}, &models.Video{}); err != nil {
		return nil, err
	}

	// Create Gin router with CORS middleware
	router := gin.Default()

	// Add database to context middleware
	router.Use(func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	})

	// Add CORS middleware for the frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", os.Getenv("FRONTEND_URL"))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	server := &Server{
		DB:       db,
		Redis:    rdb,
		Analyzer: analyzer,
		Router:   router,
	}

	// Setup routes
	server.setupRoutes()

	return server, nil
}

func (s *Server) setupRoutes() {
	// Health check (no auth required)
	s.Router.GET("/health", func(c *gin.Context) {
		sqlDB, err := s.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Create handlers
	authHandler := auth.NewHandler(s.DB)
	categoryHandler := categories.NewHandler(s.DB)
	videoHandler := videos.NewHandler(s.DB, s.Redis, s.Analyzer)

	// Root route - no auth needed
	s.Router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "InstaSave API v1"})
	})

	// Auth routes (public - no auth middleware)
	authRoutes := s.Router.Group("/auth")
	{
		authRoutes.GET("/google", authHandler.InitiateGoogleLogin)
		authRoutes.GET("/google/callback", authHandler.GoogleCallback)
		authRoutes.POST("/logout", authHandler.Logout)

		// Protected auth route - requires auth middleware
		authRoutes.GET("/me", auth.AuthMiddleware(), authHandler.GetCurrentUser)
	}

	// Protected routes that require authentication
	protected := s.Router.Group("")
	protected.Use(auth.AuthMiddleware())
	{
		categoryRoutes := protected.Group("/categories")
		{
			categoryRoutes.POST("", categoryHandler.CreateCategory)
			categoryRoutes.GET("", categoryHandler.GetUserCategories)
			categoryRoutes.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		videoRoutes := protected.Group("/videos")
		{
			videoRoutes.POST("", videoHandler.CreateVideo)
			videoRoutes.GET("", videoHandler.GetUserVideos)
			videoRoutes.PATCH("/:id/favorite", videoHandler.ToggleFavorite)
			videoRoutes.DELETE("/:id", videoHandler.DeleteVideo)
			videoRoutes.POST("/quicksave", videoHandler.QuickSave)
			videoRoutes.POST("/analyze", videoHandler.AnalyzeURL)
			videoRoutes.POST("/suggest-category", videoHandler.SuggestCategory)
		}
	}
}

func (s *Server) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	return s.Router.Run(":" + port)
}

func main() {
	server, err := NewServer()
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	if err := server.Run(); err != nil {
		log.Fatal("Failed to run server:", err)
	}
}
