package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/gravadigital/marquee-api/internal/domain/show"
	"github.com/gravadigital/marquee-api/internal/domain/venue"
	"github.com/gravadigital/marquee-api/internal/logger"
)

// PostgresVenueRepository implements VenueRepository using GORM
type PostgresVenueRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresVenueRepository creates a new PostgreSQL venue repository
func NewPostgresVenueRepository(db *gorm.DB) *PostgresVenueRepository {
	return &PostgresVenueRepository{
		db:  db,
		log: logger.Repository("venue"),
	}
}

func (r *PostgresVenueRepository) Create(v *venue.Venue) error {
	r.log.Debug("Creating venue", "name", v.Name, "city", v.City)

	if err := v.Validate(); err != nil {
		r.log.Error("Venue validation failed", "error", err)
		return fmt.Errorf("venue validation failed: %w", err)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(v).Error
	})
	if err != nil {
		r.log.Error("Failed to create venue", "error", err, "name", v.Name)
		return fmt.Errorf("failed to create venue: %w", translateError(err))
	}

	r.log.Info("Venue created successfully", "id", v.ID, "name", v.Name)
	return nil
}

func (r *PostgresVenueRepository) GetByID(id uint) (*venue.Venue, error) {
	r.log.Debug("retrieving venue by ID", "venue_id", id)

	var v venue.Venue
	if err := r.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get venue by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get venue by ID: %w", err)
	}

	return &v, nil
}

func (r *PostgresVenueRepository) GetByIDWithShows(id uint) (*venue.Venue, error) {
	r.log.Debug("retrieving venue with shows", "venue_id", id)

	var v venue.Venue
	if err := r.db.Preload("Shows").First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get venue with shows", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get venue with shows: %w", err)
	}

	return &v, nil
}

// GetAllOrderedByLocation returns every venue ordered by (state, city), the
// primary order the area grouping walks.
func (r *PostgresVenueRepository) GetAllOrderedByLocation() ([]*venue.Venue, error) {
	var venues []*venue.Venue
	if err := r.db.Order("state, city").Find(&venues).Error; err != nil {
		r.log.Error("Failed to get venues ordered by location", "error", err)
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	r.log.Debug("Retrieved venues ordered by location", "count", len(venues))
	return venues, nil
}

// SearchByName returns every venue whose name contains the term,
// case-insensitive, in storage-default order.
func (r *PostgresVenueRepository) SearchByName(term string) ([]*venue.Venue, error) {
	var venues []*venue.Venue
	if err := r.db.Where("name ILIKE ?", "%"+term+"%").Find(&venues).Error; err != nil {
		r.log.Error("Failed to search venues by name", "term", term, "error", err)
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}

	r.log.Debug("Venue search completed", "term", term, "count", len(venues))
	return venues, nil
}

// CountUpcomingShows counts shows at the venue strictly after the given instant
func (r *PostgresVenueRepository) CountUpcomingShows(venueID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&show.Show{}).
		Where("venue_id = ? AND start_time > ?", venueID, now).
		Count(&count).Error
	if err != nil {
		r.log.Error("Failed to count upcoming shows", "venue_id", venueID, "error", err)
		return 0, fmt.Errorf("failed to count upcoming shows: %w", err)
	}

	return count, nil
}

func (r *PostgresVenueRepository) Update(v *venue.Venue) error {
	r.log.Debug("Updating venue", "id", v.ID, "name", v.Name)

	if err := v.Validate(); err != nil {
		r.log.Error("Venue validation failed", "error", err)
		return fmt.Errorf("venue validation failed: %w", err)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing venue.Venue
		if err := tx.First(&existing, v.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to check venue existence: %w", err)
		}
		return tx.Save(v).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.log.Warn("Venue not found for update", "id", v.ID)
			return ErrNotFound
		}
		r.log.Error("Failed to update venue", "error", err, "id", v.ID)
		return fmt.Errorf("failed to update venue: %w", translateError(err))
	}

	r.log.Info("Venue updated successfully", "id", v.ID, "name", v.Name)
	return nil
}

// Delete removes the venue; the ON DELETE CASCADE constraint removes its
// shows in the same transaction.
func (r *PostgresVenueRepository) Delete(id uint) error {
	r.log.Debug("deleting venue", "venue_id", id)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var v venue.Venue
		if err := tx.First(&v, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to check venue existence: %w", err)
		}
		return tx.Delete(&v).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.log.Warn("attempted to delete non-existent venue", "venue_id", id)
			return ErrNotFound
		}
		r.log.Error("failed to delete venue", "venue_id", id, "error", err)
		return fmt.Errorf("failed to delete venue: %w", translateError(err))
	}

	r.log.Info("Venue deleted successfully", "id", id)
	return nil
}
