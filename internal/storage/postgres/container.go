package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/gravadigital/marquee-api/internal/config"
	"github.com/gravadigital/marquee-api/internal/logger"
)

// Container aggregates the repositories over a single database connection.
// Its lifetime is owned by the composing application; core logic only ever
// sees the repository interfaces.
type Container struct {
	db         *gorm.DB
	log        *log.Logger
	venueRepo  VenueRepository
	artistRepo ArtistRepository
	showRepo   ShowRepository
}

// NewContainer connects, migrates and initializes all repositories
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Repository("postgres_container")
	log.Info("Initializing PostgreSQL repository container...")

	db, err := Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	container := NewContainerWithDB(db)

	if err := container.Health(); err != nil {
		log.Error("Container health check failed", "error", err)
		return nil, fmt.Errorf("container health check failed: %w", err)
	}

	log.Info("PostgreSQL repository container initialized successfully")
	return container, nil
}

// NewContainerWithDB creates a container around an existing connection
func NewContainerWithDB(db *gorm.DB) *Container {
	return &Container{
		db:         db,
		log:        logger.Repository("postgres_container"),
		venueRepo:  NewPostgresVenueRepository(db),
		artistRepo: NewPostgresArtistRepository(db),
		showRepo:   NewPostgresShowRepository(db),
	}
}

// Venues returns the venue repository
func (c *Container) Venues() VenueRepository {
	return c.venueRepo
}

// Artists returns the artist repository
func (c *Container) Artists() ArtistRepository {
	return c.artistRepo
}

// Shows returns the show repository
func (c *Container) Shows() ShowRepository {
	return c.showRepo
}

// Health performs a health check on the database connection
func (c *Container) Health() error {
	if err := HealthCheck(c.db); err != nil {
		c.log.Error("Database health check failed", "error", err)
		return fmt.Errorf("database health check failed: %w", err)
	}

	metrics := GetDatabaseMetrics(c.db)
	c.log.Debug("Database connection metrics",
		"open_connections", metrics.OpenConnections,
		"in_use_connections", metrics.InUseConnections,
		"idle_connections", metrics.IdleConnections)

	return nil
}

// Close releases the underlying database connection
func (c *Container) Close() error {
	return Close(c.db)
}
