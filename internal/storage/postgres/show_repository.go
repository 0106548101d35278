package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/gravadigital/marquee-api/internal/domain/show"
	"github.com/gravadigital/marquee-api/internal/logger"
)

// PostgresShowRepository implements ShowRepository using GORM
type PostgresShowRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresShowRepository creates a new PostgreSQL show repository
func NewPostgresShowRepository(db *gorm.DB) *PostgresShowRepository {
	return &PostgresShowRepository{
		db:  db,
		log: logger.Repository("show"),
	}
}

func (r *PostgresShowRepository) Create(s *show.Show) error {
	r.log.Debug("Creating show", "artist_id", s.ArtistID, "venue_id", s.VenueID, "start_time", s.StartTime)

	if err := s.Validate(); err != nil {
		r.log.Error("Show validation failed", "error", err)
		return fmt.Errorf("show validation failed: %w", err)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(s).Error
	})
	if err != nil {
		r.log.Error("Failed to create show", "error", err, "artist_id", s.ArtistID, "venue_id", s.VenueID)
		return fmt.Errorf("failed to create show: %w", translateError(err))
	}

	r.log.Info("Show created successfully", "id", s.ID, "artist_id", s.ArtistID, "venue_id", s.VenueID)
	return nil
}

func (r *PostgresShowRepository) GetByID(id uint) (*show.Show, error) {
	r.log.Debug("retrieving show by ID", "show_id", id)

	var s show.Show
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get show by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get show by ID: %w", err)
	}

	return &s, nil
}

// ListNewestFirst returns every show ordered newest id first, joined with
// its venue and artist so the listing carries the denormalized names.
func (r *PostgresShowRepository) ListNewestFirst() ([]show.Listing, error) {
	var listings []show.Listing
	err := r.db.Model(&show.Show{}).
		Select("shows.id, shows.venue_id, venues.name AS venue_name, shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.id DESC").
		Scan(&listings).Error
	if err != nil {
		r.log.Error("Failed to list shows", "error", err)
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	r.log.Debug("Retrieved show listings", "count", len(listings))
	return listings, nil
}
