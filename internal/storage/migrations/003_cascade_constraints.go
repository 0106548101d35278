package migrations

import "gorm.io/gorm"

// migration003Up makes the show foreign keys cascade on delete. AutoMigrate
// already declares the constraints from the association tags; this migration
// rebuilds them explicitly so the cascade holds even on databases created
// before the tags existed.
func migration003Up(db *gorm.DB) error {
	statements := []string{
		"ALTER TABLE shows DROP CONSTRAINT IF EXISTS fk_venues_shows",
		"ALTER TABLE shows DROP CONSTRAINT IF EXISTS fk_artists_shows",
		`ALTER TABLE shows ADD CONSTRAINT fk_venues_shows
            FOREIGN KEY (venue_id) REFERENCES venues (id) ON DELETE CASCADE`,
		`ALTER TABLE shows ADD CONSTRAINT fk_artists_shows
            FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE CASCADE`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration003Down restores plain foreign keys without the cascade
func migration003Down(db *gorm.DB) error {
	statements := []string{
		"ALTER TABLE shows DROP CONSTRAINT IF EXISTS fk_venues_shows",
		"ALTER TABLE shows DROP CONSTRAINT IF EXISTS fk_artists_shows",
		`ALTER TABLE shows ADD CONSTRAINT fk_venues_shows
            FOREIGN KEY (venue_id) REFERENCES venues (id)`,
		`ALTER TABLE shows ADD CONSTRAINT fk_artists_shows
            FOREIGN KEY (artist_id) REFERENCES artists (id)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
