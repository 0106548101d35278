package services

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/marquee-api/internal/domain/artist"
	"github.com/gravadigital/marquee-api/internal/forms"
	"github.com/gravadigital/marquee-api/internal/logger"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

// ArtistService owns the artist directory: the index listing, name search,
// the past/upcoming show split and the validated mutations.
type ArtistService struct {
	artistRepo postgres.ArtistRepository
	venueRepo  postgres.VenueRepository
	log        *log.Logger
}

// NewArtistService creates a new artist service
func NewArtistService(artistRepo postgres.ArtistRepository, venueRepo postgres.VenueRepository) *ArtistService {
	return &ArtistService{
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		log:        logger.Service("artist"),
	}
}

// List returns (id, name) for every artist, newest id first
func (s *ArtistService) List() ([]artist.Ref, error) {
	return s.artistRepo.GetAllRefs()
}

// Search returns every artist whose name contains the term, case-insensitive
func (s *ArtistService) Search(term string) (SearchResults, error) {
	artists, err := s.artistRepo.SearchByName(term)
	if err != nil {
		return SearchResults{}, err
	}

	results := SearchResults{Data: make([]SearchItem, 0, len(artists))}
	for _, a := range artists {
		results.Data = append(results.Data, SearchItem{ID: a.ID, Name: a.Name})
	}
	results.Count = len(results.Data)

	return results, nil
}

// Get returns the artist decorated with its shows split into past and
// upcoming buckets, each show resolving its own hosting venue through the
// show's venue_id.
func (s *ArtistService) Get(id uint, now time.Time) (*artist.Detail, error) {
	a, err := s.artistRepo.GetByIDWithShows(id)
	if err != nil {
		return nil, err
	}

	detail := &artist.Detail{
		Artist:        *a,
		PastShows:     make([]artist.ShowInfo, 0),
		UpcomingShows: make([]artist.ShowInfo, 0),
	}

	for _, sh := range a.Shows {
		host, err := s.venueRepo.GetByID(sh.VenueID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve venue for show %d: %w", sh.ID, err)
		}

		info := artist.ShowInfo{
			VenueID:        host.ID,
			VenueName:      host.Name,
			VenueImageLink: host.ImageLink,
			StartTime:      sh.StartTime.Format(time.RFC3339),
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

// Create persists a new artist from a validated form
func (s *ArtistService) Create(form *forms.ArtistForm) (*artist.Artist, error) {
	a := form.ToArtist()
	if err := s.artistRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update overwrites every mutable field of an existing artist from a
// validated form. Returns ErrNotFound when the id does not resolve.
func (s *ArtistService) Update(id uint, form *forms.ArtistForm) (*artist.Artist, error) {
	a, err := s.artistRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	form.Apply(a)
	if err := s.artistRepo.Update(a); err != nil {
		return nil, err
	}

	return a, nil
}

// Delete removes the artist and, by cascade, all of its shows. The artist
// name is returned for the outcome message.
func (s *ArtistService) Delete(id uint) (string, error) {
	a, err := s.artistRepo.GetByID(id)
	if err != nil {
		return "", err
	}

	if err := s.artistRepo.Delete(id); err != nil {
		return a.Name, err
	}

	return a.Name, nil
}

// SetImageLink persists a new image URL for the artist
func (s *ArtistService) SetImageLink(id uint, url string) error {
	a, err := s.artistRepo.GetByID(id)
	if err != nil {
		return err
	}

	a.ImageLink = url
	return s.artistRepo.Update(a)
}
