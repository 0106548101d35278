package services

import (
	"github.com/charmbracelet/log"

	"github.com/gravadigital/marquee-api/internal/domain/show"
	"github.com/gravadigital/marquee-api/internal/forms"
	"github.com/gravadigital/marquee-api/internal/logger"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

// ShowService owns the shows index and show creation. Shows are never
// updated and only disappear by cascade from venue or artist deletion.
type ShowService struct {
	showRepo postgres.ShowRepository
	log      *log.Logger
}

// NewShowService creates a new show service
func NewShowService(showRepo postgres.ShowRepository) *ShowService {
	return &ShowService{
		showRepo: showRepo,
		log:      logger.Service("show"),
	}
}

// List returns every show newest id first with the venue and artist
// details denormalized onto each row.
func (s *ShowService) List() ([]show.Listing, error) {
	return s.showRepo.ListNewestFirst()
}

// Create persists a new show from a validated form. Creating against a
// missing venue or artist surfaces as ErrForeignKey from the repository.
func (s *ShowService) Create(form *forms.ShowForm) (*show.Show, error) {
	sh := form.ToShow()
	if err := s.showRepo.Create(sh); err != nil {
		return nil, err
	}
	return sh, nil
}
