package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fyyur/config"
	"fyyur/internal/handlers"
	"fyyur/internal/logging"
	"fyyur/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	v1 := r.Group("/v1")
	{
		v1.GET("/health", handlers.Health)

		venues := v1.Group("/venues")
		{
			venues.GET("", handlers.ListVenues)
			venues.POST("/search", handlers.SearchVenues)
			venues.GET("/:id", handlers.GetVenue)
			venues.POST("", handlers.CreateVenue)
			venues.PUT("/:id", handlers.UpdateVenue)
			venues.DELETE("/:id", handlers.DeleteVenue)
		}

		artists := v1.Group("/artists")
		{
			artists.GET("", handlers.ListArtists)
			artists.POST("/search", handlers.SearchArtists)
			artists.GET("/:id", handlers.GetArtist)
			artists.POST("", handlers.CreateArtist)
			artists.PUT("/:id", handlers.UpdateArtist)
			artists.DELETE("/:id", handlers.DeleteArtist)
		}

		shows := v1.Group("/shows")
		{
			shows.GET("", handlers.ListShows)
			shows.POST("", handlers.CreateShow)
		}
	}
}
