// Package forms binds and validates the listing forms for venues, artists
// and shows. Validation failures never reach the storage layer; handlers
// only hand validated forms to the services.
package forms

import (
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gravadigital/marquee-api/internal/domain/artist"
	"github.com/gravadigital/marquee-api/internal/domain/show"
	"github.com/gravadigital/marquee-api/internal/domain/venue"
)

var phonePattern = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// FieldErrors maps a field name to its validation message
type FieldErrors map[string]string

func collectErrors(err error) FieldErrors {
	fieldErrors := FieldErrors{}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		fieldErrors["form"] = err.Error()
		return fieldErrors
	}

	for _, fe := range validateErrs {
		switch fe.Tag() {
		case "required":
			fieldErrors[fe.Field()] = "is required"
		case "phone":
			fieldErrors[fe.Field()] = "must match the pattern 123-456-7890"
		case "url":
			fieldErrors[fe.Field()] = "must be a valid URL"
		default:
			fieldErrors[fe.Field()] = "is invalid"
		}
	}

	return fieldErrors
}

// VenueForm carries the raw venue listing fields
type VenueForm struct {
	Name               string   `form:"name" json:"name" validate:"required"`
	City               string   `form:"city" json:"city" validate:"required"`
	State              string   `form:"state" json:"state" validate:"required"`
	Address            string   `form:"address" json:"address" validate:"required"`
	Phone              string   `form:"phone" json:"phone" validate:"omitempty,phone"`
	Genres             []string `form:"genres" json:"genres" validate:"required"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"omitempty,url"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// Validate checks the field-level constraints
func (f *VenueForm) Validate() (bool, FieldErrors) {
	if err := validate.Struct(f); err != nil {
		return false, collectErrors(err)
	}
	return true, nil
}

// ToVenue builds a venue model from the validated form
func (f *VenueForm) ToVenue() *venue.Venue {
	return &venue.Venue{
		Name:          f.Name,
		City:          f.City,
		State:         f.State,
		Address:       f.Address,
		Phone:         f.Phone,
		Genres:        f.Genres,
		FacebookLink:  f.FacebookLink,
		ImageLink:     f.ImageLink,
		WebsiteLink:   f.WebsiteLink,
		SeekingTalent: f.SeekingTalent,
		Description:   f.SeekingDescription,
	}
}

// Apply overwrites every mutable field of an existing venue
func (f *VenueForm) Apply(v *venue.Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Genres = f.Genres
	v.FacebookLink = f.FacebookLink
	v.ImageLink = f.ImageLink
	v.WebsiteLink = f.WebsiteLink
	v.SeekingTalent = f.SeekingTalent
	v.Description = f.SeekingDescription
}

// ArtistForm carries the raw artist listing fields
type ArtistForm struct {
	Name               string   `form:"name" json:"name" validate:"required"`
	City               string   `form:"city" json:"city" validate:"required"`
	State              string   `form:"state" json:"state" validate:"required"`
	Phone              string   `form:"phone" json:"phone" validate:"omitempty,phone"`
	Genres             []string `form:"genres" json:"genres" validate:"required"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"omitempty,url"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// Validate checks the field-level constraints
func (f *ArtistForm) Validate() (bool, FieldErrors) {
	if err := validate.Struct(f); err != nil {
		return false, collectErrors(err)
	}
	return true, nil
}

// ToArtist builds an artist model from the validated form
func (f *ArtistForm) ToArtist() *artist.Artist {
	return &artist.Artist{
		Name:         f.Name,
		City:         f.City,
		State:        f.State,
		Phone:        f.Phone,
		Genres:       f.Genres,
		FacebookLink: f.FacebookLink,
		ImageLink:    f.ImageLink,
		WebsiteLink:  f.WebsiteLink,
		SeekingVenue: f.SeekingVenue,
		Description:  f.SeekingDescription,
	}
}

// Apply overwrites every mutable field of an existing artist
func (f *ArtistForm) Apply(a *artist.Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = f.Genres
	a.FacebookLink = f.FacebookLink
	a.ImageLink = f.ImageLink
	a.WebsiteLink = f.WebsiteLink
	a.SeekingVenue = f.SeekingVenue
	a.Description = f.SeekingDescription
}

// ShowForm carries the raw show listing fields
type ShowForm struct {
	ArtistID  uint      `form:"artist_id" json:"artist_id" validate:"required"`
	VenueID   uint      `form:"venue_id" json:"venue_id" validate:"required"`
	StartTime time.Time `form:"start_time" json:"start_time" time_format:"2006-01-02 15:04:05" validate:"required"`
}

// Validate checks the field-level constraints
func (f *ShowForm) Validate() (bool, FieldErrors) {
	if err := validate.Struct(f); err != nil {
		return false, collectErrors(err)
	}
	return true, nil
}

// ToShow builds a show model from the validated form
func (f *ShowForm) ToShow() *show.Show {
	return show.NewShow(f.ArtistID, f.VenueID, f.StartTime)
}
