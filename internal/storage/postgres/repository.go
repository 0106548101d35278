package postgres

import (
	"time"

	"github.com/gravadigital/marquee-api/internal/domain/artist"
	"github.com/gravadigital/marquee-api/internal/domain/show"
	"github.com/gravadigital/marquee-api/internal/domain/venue"
)

// VenueRepository defines the storage operations for venues
type VenueRepository interface {
	Create(v *venue.Venue) error
	GetByID(id uint) (*venue.Venue, error)
	GetByIDWithShows(id uint) (*venue.Venue, error)
	GetAllOrderedByLocation() ([]*venue.Venue, error)
	SearchByName(term string) ([]*venue.Venue, error)
	CountUpcomingShows(venueID uint, now time.Time) (int64, error)
	Update(v *venue.Venue) error
	Delete(id uint) error
}

// ArtistRepository defines the storage operations for artists
type ArtistRepository interface {
	Create(a *artist.Artist) error
	GetByID(id uint) (*artist.Artist, error)
	GetByIDWithShows(id uint) (*artist.Artist, error)
	GetAllRefs() ([]artist.Ref, error)
	SearchByName(term string) ([]*artist.Artist, error)
	Update(a *artist.Artist) error
	Delete(id uint) error
}

// ShowRepository defines the storage operations for shows. Shows are never
// updated in place and are only removed by cascade from venues or artists.
type ShowRepository interface {
	Create(s *show.Show) error
	GetByID(id uint) (*show.Show, error)
	ListNewestFirst() ([]show.Listing, error)
}
