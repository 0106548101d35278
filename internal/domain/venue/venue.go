package venue

import (
	"fmt"

	"github.com/gravadigital/marquee-api/internal/domain/common"
	"github.com/gravadigital/marquee-api/internal/domain/show"
)

// Venue represents a physical venue that hosts shows
type Venue struct {
	ID            uint             `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string           `json:"name" gorm:"not null"`
	City          string           `json:"city" gorm:"size:120"`
	State         string           `json:"state" gorm:"size:120"`
	Address       string           `json:"address" gorm:"size:120"`
	Phone         string           `json:"phone" gorm:"size:120"`
	Genres        common.GenreList `json:"genres"`
	FacebookLink  string           `json:"facebook_link" gorm:"size:120"`
	ImageLink     string           `json:"image_link" gorm:"size:500"`
	WebsiteLink   string           `json:"website_link" gorm:"size:120"`
	SeekingTalent bool             `json:"seeking_talent" gorm:"default:false"`
	Description   string           `json:"seeking_description" gorm:"size:200"`

	Shows []show.Show `json:"-" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM
func (Venue) TableName() string {
	return "venues"
}

// Validate checks if the venue data is valid
func (v *Venue) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Summary is the per-venue entry inside a city/state area listing
type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// Area groups every venue sharing a (city, state) pair
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// ShowInfo is a venue-page show record enriched with the performing artist
type ShowInfo struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Detail decorates a venue with its shows split into past and upcoming
type Detail struct {
	Venue
	PastShows          []ShowInfo `json:"past_shows"`
	UpcomingShows      []ShowInfo `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}
