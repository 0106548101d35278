package services

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/marquee-api/internal/domain/venue"
	"github.com/gravadigital/marquee-api/internal/forms"
	"github.com/gravadigital/marquee-api/internal/logger"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

// VenueService owns the venue directory: the area grouping, name search,
// the past/upcoming show split and the validated mutations.
type VenueService struct {
	venueRepo  postgres.VenueRepository
	artistRepo postgres.ArtistRepository
	log        *log.Logger
}

// NewVenueService creates a new venue service
func NewVenueService(venueRepo postgres.VenueRepository, artistRepo postgres.ArtistRepository) *VenueService {
	return &VenueService{
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		log:        logger.Service("venue"),
	}
}

// ListAreas returns every venue grouped by (city, state) in (state, city)
// order, each venue annotated with its upcoming-show count. A new group
// opens whenever the pair differs from the previous row's pair, so the
// grouping follows the primary query order without merging across gaps.
func (s *VenueService) ListAreas(now time.Time) ([]venue.Area, error) {
	venues, err := s.venueRepo.GetAllOrderedByLocation()
	if err != nil {
		return nil, err
	}

	areas := make([]venue.Area, 0)
	for _, v := range venues {
		count, err := s.venueRepo.CountUpcomingShows(v.ID, now)
		if err != nil {
			return nil, err
		}

		n := len(areas)
		if n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, venue.Area{City: v.City, State: v.State})
			n++
		}

		areas[n-1].Venues = append(areas[n-1].Venues, venue.Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: count,
		})
	}

	s.log.Debug("Grouped venues by area", "venues", len(venues), "areas", len(areas))
	return areas, nil
}

// Search returns every venue whose name contains the term, case-insensitive
func (s *VenueService) Search(term string) (SearchResults, error) {
	venues, err := s.venueRepo.SearchByName(term)
	if err != nil {
		return SearchResults{}, err
	}

	results := SearchResults{Data: make([]SearchItem, 0, len(venues))}
	for _, v := range venues {
		results.Data = append(results.Data, SearchItem{ID: v.ID, Name: v.Name})
	}
	results.Count = len(results.Data)

	return results, nil
}

// Get returns the venue decorated with its shows split into past and
// upcoming buckets. Each show resolves its own performing artist through
// the show's artist_id, so every show lands in exactly one bucket with the
// right counterpart.
func (s *VenueService) Get(id uint, now time.Time) (*venue.Detail, error) {
	v, err := s.venueRepo.GetByIDWithShows(id)
	if err != nil {
		return nil, err
	}

	detail := &venue.Detail{
		Venue:         *v,
		PastShows:     make([]venue.ShowInfo, 0),
		UpcomingShows: make([]venue.ShowInfo, 0),
	}

	for _, sh := range v.Shows {
		performer, err := s.artistRepo.GetByID(sh.ArtistID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve artist for show %d: %w", sh.ID, err)
		}

		info := venue.ShowInfo{
			ArtistID:        performer.ID,
			ArtistName:      performer.Name,
			ArtistImageLink: performer.ImageLink,
			StartTime:       sh.StartTime.Format(time.RFC3339),
		}

		if sh.IsUpcoming(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, info)
		} else {
			detail.PastShows = append(detail.PastShows, info)
		}
	}

	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	detail.PastShowsCount = len(detail.PastShows)

	return detail, nil
}

// Create persists a new venue from a validated form
func (s *VenueService) Create(form *forms.VenueForm) (*venue.Venue, error) {
	v := form.ToVenue()
	if err := s.venueRepo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update overwrites every mutable field of an existing venue from a
// validated form. Returns ErrNotFound when the id does not resolve.
func (s *VenueService) Update(id uint, form *forms.VenueForm) (*venue.Venue, error) {
	v, err := s.venueRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	form.Apply(v)
	if err := s.venueRepo.Update(v); err != nil {
		return nil, err
	}

	return v, nil
}

// Delete removes the venue and, by cascade, all of its shows. The venue
// name is returned for the outcome message.
func (s *VenueService) Delete(id uint) (string, error) {
	v, err := s.venueRepo.GetByID(id)
	if err != nil {
		return "", err
	}

	if err := s.venueRepo.Delete(id); err != nil {
		return v.Name, err
	}

	return v.Name, nil
}

// SetImageLink persists a new image URL for the venue
func (s *VenueService) SetImageLink(id uint, url string) error {
	v, err := s.venueRepo.GetByID(id)
	if err != nil {
		return err
	}

	v.ImageLink = url
	return s.venueRepo.Update(v)
}
