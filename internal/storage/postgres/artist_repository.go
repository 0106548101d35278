package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/gravadigital/marquee-api/internal/domain/artist"
	"github.com/gravadigital/marquee-api/internal/logger"
)

// PostgresArtistRepository implements ArtistRepository using GORM
type PostgresArtistRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresArtistRepository creates a new PostgreSQL artist repository
func NewPostgresArtistRepository(db *gorm.DB) *PostgresArtistRepository {
	return &PostgresArtistRepository{
		db:  db,
		log: logger.Repository("artist"),
	}
}

func (r *PostgresArtistRepository) Create(a *artist.Artist) error {
	r.log.Debug("Creating artist", "name", a.Name, "city", a.City)

	if err := a.Validate(); err != nil {
		r.log.Error("Artist validation failed", "error", err)
		return fmt.Errorf("artist validation failed: %w", err)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(a).Error
	})
	if err != nil {
		r.log.Error("Failed to create artist", "error", err, "name", a.Name)
		return fmt.Errorf("failed to create artist: %w", translateError(err))
	}

	r.log.Info("Artist created successfully", "id", a.ID, "name", a.Name)
	return nil
}

func (r *PostgresArtistRepository) GetByID(id uint) (*artist.Artist, error) {
	r.log.Debug("retrieving artist by ID", "artist_id", id)

	var a artist.Artist
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get artist by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get artist by ID: %w", err)
	}

	return &a, nil
}

func (r *PostgresArtistRepository) GetByIDWithShows(id uint) (*artist.Artist, error) {
	r.log.Debug("retrieving artist with shows", "artist_id", id)

	var a artist.Artist
	if err := r.db.Preload("Shows").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get artist with shows", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get artist with shows: %w", err)
	}

	return &a, nil
}

// GetAllRefs returns (id, name) for every artist, newest id first
func (r *PostgresArtistRepository) GetAllRefs() ([]artist.Ref, error) {
	var refs []artist.Ref
	err := r.db.Model(&artist.Artist{}).
		Select("id, name").
		Order("id DESC").
		Find(&refs).Error
	if err != nil {
		r.log.Error("Failed to get artist refs", "error", err)
		return nil, fmt.Errorf("failed to get artists: %w", err)
	}

	r.log.Debug("Retrieved artist refs", "count", len(refs))
	return refs, nil
}

// SearchByName returns every artist whose name contains the term,
// case-insensitive, in storage-default order.
func (r *PostgresArtistRepository) SearchByName(term string) ([]*artist.Artist, error) {
	var artists []*artist.Artist
	if err := r.db.Where("name ILIKE ?", "%"+term+"%").Find(&artists).Error; err != nil {
		r.log.Error("Failed to search artists by name", "term", term, "error", err)
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	r.log.Debug("Artist search completed", "term", term, "count", len(artists))
	return artists, nil
}

func (r *PostgresArtistRepository) Update(a *artist.Artist) error {
	r.log.Debug("Updating artist", "id", a.ID, "name", a.Name)

	if err := a.Validate(); err != nil {
		r.log.Error("Artist validation failed", "error", err)
		return fmt.Errorf("artist validation failed: %w", err)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing artist.Artist
		if err := tx.First(&existing, a.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to check artist existence: %w", err)
		}
		return tx.Save(a).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.log.Warn("Artist not found for update", "id", a.ID)
			return ErrNotFound
		}
		r.log.Error("Failed to update artist", "error", err, "id", a.ID)
		return fmt.Errorf("failed to update artist: %w", translateError(err))
	}

	r.log.Info("Artist updated successfully", "id", a.ID, "name", a.Name)
	return nil
}

// Delete removes the artist; the ON DELETE CASCADE constraint removes its
// shows in the same transaction.
func (r *PostgresArtistRepository) Delete(id uint) error {
	r.log.Debug("deleting artist", "artist_id", id)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var a artist.Artist
		if err := tx.First(&a, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to check artist existence: %w", err)
		}
		return tx.Delete(&a).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.log.Warn("attempted to delete non-existent artist", "artist_id", id)
			return ErrNotFound
		}
		r.log.Error("failed to delete artist", "artist_id", id, "error", err)
		return fmt.Errorf("failed to delete artist: %w", translateError(err))
	}

	r.log.Info("Artist deleted successfully", "id", id)
	return nil
}
