package show

import (
	"fmt"
	"time"
)

// Show represents a scheduled performance linking one artist to one venue.
// It carries only the foreign keys; the venue and artist packages own the
// association side so this package stays import-cycle free.
type Show struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ArtistID  uint      `json:"artist_id" gorm:"not null;index"`
	VenueID   uint      `json:"venue_id" gorm:"not null;index"`
	StartTime time.Time `json:"start_time" gorm:"not null;index"`
}

// TableName overrides the table name used by GORM
func (Show) TableName() string {
	return "shows"
}

// NewShow creates a new show with the given references and start time
func NewShow(artistID, venueID uint, startTime time.Time) *Show {
	return &Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}
}

// IsUpcoming reports whether the show starts at or after the given instant
func (s *Show) IsUpcoming(now time.Time) bool {
	return !s.StartTime.Before(now)
}

// Validate checks if the show data is valid
func (s *Show) Validate() error {
	if s.ArtistID == 0 {
		return fmt.Errorf("artist_id is required")
	}
	if s.VenueID == 0 {
		return fmt.Errorf("venue_id is required")
	}
	if s.StartTime.IsZero() {
		return fmt.Errorf("start_time is required")
	}
	return nil
}

// Listing is the denormalized read model for the shows index page: every
// show with its venue name, artist name and artist image resolved.
type Listing struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}
