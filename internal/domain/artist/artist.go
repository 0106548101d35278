package artist

import (
	"fmt"

	"github.com/gravadigital/marquee-api/internal/domain/common"
	"github.com/gravadigital/marquee-api/internal/domain/show"
)

// Artist represents a performer or band that can be booked at venues
type Artist struct {
	ID           uint             `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string           `json:"name" gorm:"not null"`
	City         string           `json:"city" gorm:"size:120"`
	State        string           `json:"state" gorm:"size:120"`
	Phone        string           `json:"phone" gorm:"size:120"`
	Genres       common.GenreList `json:"genres"`
	FacebookLink string           `json:"facebook_link" gorm:"size:120"`
	ImageLink    string           `json:"image_link" gorm:"size:500"`
	WebsiteLink  string           `json:"website_link" gorm:"size:120"`
	SeekingVenue bool             `json:"seeking_venue" gorm:"default:false"`
	Description  string           `json:"seeking_description" gorm:"size:200"`

	Shows []show.Show `json:"-" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM
func (Artist) TableName() string {
	return "artists"
}

// Validate checks if the artist data is valid
func (a *Artist) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Ref is the (id, name) pair used by the artists index page
type Ref struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ShowInfo is an artist-page show record enriched with the hosting venue
type ShowInfo struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// Detail decorates an artist with its shows split into past and upcoming
type Detail struct {
	Artist
	PastShows          []ShowInfo `json:"past_shows"`
	UpcomingShows      []ShowInfo `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}
