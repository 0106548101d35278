package migrations

import "gorm.io/gorm"

// migration002Up creates the indexes the aggregation queries lean on:
// the (state, city) walk for the venues page, case-insensitive name
// search for both directories, and the start_time comparisons on shows.
func migration002Up(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_venues_state_city ON venues (state, city)",
		"CREATE INDEX IF NOT EXISTS idx_venues_name_lower ON venues (LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_artists_name_lower ON artists (LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_shows_venue_start ON shows (venue_id, start_time)",
		"CREATE INDEX IF NOT EXISTS idx_shows_artist_start ON shows (artist_id, start_time)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration002Down drops the indexes
func migration002Down(db *gorm.DB) error {
	indexes := []string{
		"DROP INDEX IF EXISTS idx_venues_state_city",
		"DROP INDEX IF EXISTS idx_venues_name_lower",
		"DROP INDEX IF EXISTS idx_artists_name_lower",
		"DROP INDEX IF EXISTS idx_shows_venue_start",
		"DROP INDEX IF EXISTS idx_shows_artist_start",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}

	return nil
}
