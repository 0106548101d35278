package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenueForm() *VenueForm {
	return &VenueForm{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae"},
	}
}

func TestVenueFormValid(t *testing.T) {
	ok, fieldErrors := validVenueForm().Validate()
	assert.True(t, ok)
	assert.Empty(t, fieldErrors)
}

func TestVenueFormRequiredFields(t *testing.T) {
	form := &VenueForm{}
	ok, fieldErrors := form.Validate()

	require.False(t, ok)
	assert.Equal(t, "is required", fieldErrors["Name"])
	assert.Equal(t, "is required", fieldErrors["City"])
	assert.Equal(t, "is required", fieldErrors["State"])
	assert.Equal(t, "is required", fieldErrors["Address"])
	assert.Equal(t, "is required", fieldErrors["Genres"])
}

func TestVenueFormPhoneRule(t *testing.T) {
	form := validVenueForm()

	for _, bad := range []string{"1231231234", "123-123-123", "abc-def-ghij", "123 123 1234"} {
		form.Phone = bad
		ok, fieldErrors := form.Validate()
		require.False(t, ok, "phone %q should be rejected", bad)
		assert.Contains(t, fieldErrors, "Phone")
	}

	// phone is optional, only validated when present
	form.Phone = ""
	ok, _ := form.Validate()
	assert.True(t, ok)
}

func TestVenueFormLinkRules(t *testing.T) {
	form := validVenueForm()
	form.FacebookLink = "not-a-url"
	ok, fieldErrors := form.Validate()
	require.False(t, ok)
	assert.Equal(t, "must be a valid URL", fieldErrors["FacebookLink"])

	form.FacebookLink = "https://www.facebook.com/themusicalhop"
	form.WebsiteLink = "https://www.themusicalhop.com"
	form.ImageLink = "https://example.com/hop.jpg"
	ok, _ = form.Validate()
	assert.True(t, ok)
}

func TestVenueFormToVenueAndApply(t *testing.T) {
	form := validVenueForm()
	form.SeekingTalent = true
	form.SeekingDescription = "Looking for local jazz acts"

	v := form.ToVenue()
	assert.Equal(t, form.Name, v.Name)
	assert.Equal(t, form.Address, v.Address)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, form.SeekingDescription, v.Description)

	form.Name = "Renamed Hop"
	form.SeekingTalent = false
	form.Apply(v)
	assert.Equal(t, "Renamed Hop", v.Name)
	assert.False(t, v.SeekingTalent)
}

func TestArtistFormRequiredFields(t *testing.T) {
	form := &ArtistForm{}
	ok, fieldErrors := form.Validate()

	require.False(t, ok)
	assert.Equal(t, "is required", fieldErrors["Name"])
	assert.Equal(t, "is required", fieldErrors["City"])
	assert.Equal(t, "is required", fieldErrors["State"])
	assert.Equal(t, "is required", fieldErrors["Genres"])
	assert.NotContains(t, fieldErrors, "Address")
}

func TestArtistFormValid(t *testing.T) {
	form := &ArtistForm{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		SeekingVenue: true,
	}

	ok, fieldErrors := form.Validate()
	assert.True(t, ok)
	assert.Empty(t, fieldErrors)

	a := form.ToArtist()
	assert.Equal(t, "Guns N Petals", a.Name)
	assert.True(t, a.SeekingVenue)
}

func TestShowFormRequiredFields(t *testing.T) {
	form := &ShowForm{}
	ok, fieldErrors := form.Validate()

	require.False(t, ok)
	assert.Contains(t, fieldErrors, "ArtistID")
	assert.Contains(t, fieldErrors, "VenueID")
	assert.Contains(t, fieldErrors, "StartTime")
}

func TestShowFormToShow(t *testing.T) {
	start := time.Date(2026, 12, 24, 21, 0, 0, 0, time.UTC)
	form := &ShowForm{ArtistID: 4, VenueID: 1, StartTime: start}

	ok, _ := form.Validate()
	require.True(t, ok)

	sh := form.ToShow()
	assert.Equal(t, uint(4), sh.ArtistID)
	assert.Equal(t, uint(1), sh.VenueID)
	assert.True(t, sh.StartTime.Equal(start))
}
