package migrations

import (
	"github.com/gravadigital/marquee-api/internal/domain/artist"
	"github.com/gravadigital/marquee-api/internal/domain/show"
	"github.com/gravadigital/marquee-api/internal/domain/venue"
)

// AllModels returns every model managed by AutoMigrate, parents first so
// the shows foreign keys have something to point at.
func AllModels() []interface{} {
	return []interface{}{
		&venue.Venue{},
		&artist.Artist{},
		&show.Show{},
	}
}
