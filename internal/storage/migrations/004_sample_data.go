package migrations

import "gorm.io/gorm"

// migration004Up inserts sample data for testing and development
func migration004Up(db *gorm.DB) error {
	venuesSQL := `
        INSERT INTO venues (id, name, city, state, address, phone, genres, facebook_link, image_link, website_link, seeking_talent, description) VALUES
            (1, 'The Musical Hop', 'San Francisco', 'CA', '1015 Folsom Street', '123-123-1234',
             'Jazz,Reggae,Swing,Classical,Folk',
             'https://www.facebook.com/TheMusicalHop',
             'https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60',
             'https://www.themusicalhop.com',
             true, 'We are on the lookout for a local artist to play every two weeks. Please call us.'),
            (2, 'The Dueling Pianos Bar', 'New York', 'NY', '335 Delancey Street', '914-003-1132',
             'Classical,R&B,Hip-Hop',
             'https://www.facebook.com/theduelingpianos',
             'https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80',
             'https://www.theduelingpianos.com',
             false, NULL),
            (3, 'Park Square Live Music & Coffee', 'San Francisco', 'CA', '34 Whiskey Moore Ave', '415-000-1234',
             'Rock n Roll,Jazz,Classical,Folk',
             'https://www.facebook.com/ParkSquareLiveMusicAndCoffee',
             'https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80',
             'https://www.parksquarelivemusicandcoffee.com',
             false, NULL)
        ON CONFLICT (id) DO NOTHING
    `

	if err := db.Exec(venuesSQL).Error; err != nil {
		return err
	}

	artistsSQL := `
        INSERT INTO artists (id, name, city, state, phone, genres, facebook_link, image_link, website_link, seeking_venue, description) VALUES
            (4, 'Guns N Petals', 'San Francisco', 'CA', '326-123-5000',
             'Rock n Roll',
             'https://www.facebook.com/GunsNPetals',
             'https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80',
             'https://www.gunsnpetalsband.com',
             true, 'Looking for shows to perform at in the San Francisco Bay Area!'),
            (5, 'Matt Quevedo', 'New York', 'NY', '300-400-5000',
             'Jazz',
             'https://www.facebook.com/mattquevedo923251523',
             'https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80',
             NULL, false, NULL),
            (6, 'The Wild Sax Band', 'San Francisco', 'CA', '432-325-5432',
             'Jazz,Classical',
             NULL,
             'https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80',
             NULL, false, NULL)
        ON CONFLICT (id) DO NOTHING
    `

	if err := db.Exec(artistsSQL).Error; err != nil {
		return err
	}

	showsSQL := `
        INSERT INTO shows (id, artist_id, venue_id, start_time) VALUES
            (1, 4, 1, '2019-05-21 21:30:00'),
            (2, 5, 3, '2019-06-15 23:00:00'),
            (3, 6, 3, '2035-04-01 20:00:00'),
            (4, 6, 3, '2035-04-08 20:00:00'),
            (5, 6, 3, '2035-04-15 20:00:00')
        ON CONFLICT (id) DO NOTHING
    `

	if err := db.Exec(showsSQL).Error; err != nil {
		return err
	}

	// Keep the sequences past the fixed sample ids
	sequencesSQL := []string{
		"SELECT setval(pg_get_serial_sequence('venues', 'id'), GREATEST((SELECT MAX(id) FROM venues), 1))",
		"SELECT setval(pg_get_serial_sequence('artists', 'id'), GREATEST((SELECT MAX(id) FROM artists), 1))",
		"SELECT setval(pg_get_serial_sequence('shows', 'id'), GREATEST((SELECT MAX(id) FROM shows), 1))",
	}

	for _, stmt := range sequencesSQL {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration004Down removes the sample data
func migration004Down(db *gorm.DB) error {
	statements := []string{
		"DELETE FROM shows WHERE id BETWEEN 1 AND 5",
		"DELETE FROM artists WHERE id IN (4, 5, 6)",
		"DELETE FROM venues WHERE id IN (1, 2, 3)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
