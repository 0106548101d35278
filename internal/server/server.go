package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gravadigital/marquee-api/internal/config"
	"github.com/gravadigital/marquee-api/internal/handlers"
	"github.com/gravadigital/marquee-api/internal/logger"
	"github.com/gravadigital/marquee-api/internal/services"
	"github.com/gravadigital/marquee-api/internal/storage/objectstore"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	container  *postgres.Container
	images     objectstore.ImageStore
}

// New creates a new server instance. The image store may be nil, in which
// case the upload routes are not registered.
func New(cfg *config.Config, container *postgres.Container, images objectstore.ImageStore) *Server {
	return &Server{
		config:    cfg,
		container: container,
		images:    images,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		// Timeouts seguros según estándares de Go
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware básico
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(requestID())

	corsConfig := cors.DefaultConfig()
	if s.config.CORS.AllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
	}
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	router.Use(cors.New(corsConfig))

	// Inicializar servicios
	venueService := services.NewVenueService(s.container.Venues(), s.container.Artists())
	artistService := services.NewArtistService(s.container.Artists(), s.container.Venues())
	showService := services.NewShowService(s.container.Shows())

	// Inicializar handlers
	venueHandler := handlers.NewVenueHandler(venueService)
	artistHandler := handlers.NewArtistHandler(artistService)
	showHandler := handlers.NewShowHandler(showService)

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		if err := s.container.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Marquee API is running",
			"status":  "healthy",
		})
	})

	venues := router.Group("/venues")
	{
		venues.GET("", venueHandler.ListAreas)
		venues.POST("", venueHandler.Create)
		venues.POST("/search", venueHandler.Search)
		venues.GET("/:id", venueHandler.Get)
		venues.POST("/:id/edit", venueHandler.Update)
		venues.DELETE("/:id", venueHandler.Delete)
	}

	artists := router.Group("/artists")
	{
		artists.GET("", artistHandler.List)
		artists.POST("", artistHandler.Create)
		artists.POST("/search", artistHandler.Search)
		artists.GET("/:id", artistHandler.Get)
		artists.POST("/:id/edit", artistHandler.Update)
		artists.DELETE("/:id", artistHandler.Delete)
	}

	shows := router.Group("/shows")
	{
		shows.GET("", showHandler.List)
		shows.POST("", showHandler.Create)
	}

	if s.images != nil {
		mediaHandler := handlers.NewMediaHandler(s.images, venueService, artistService, s.config.Media.MaxSize)
		venues.POST("/:id/image", mediaHandler.UploadVenueImage)
		artists.POST("/:id/image", mediaHandler.UploadArtistImage)
	}

	return router
}

// requestID tags every request with a unique id for log correlation
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
