package services

import (
	"sort"
	"strings"
	"time"

	"github.com/gravadigital/marquee-api/internal/domain/artist"
	"github.com/gravadigital/marquee-api/internal/domain/show"
	"github.com/gravadigital/marquee-api/internal/domain/venue"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

// fakeStore is an in-memory stand-in for the three repositories sharing one
// show table, so cascade deletes behave like the real schema.
type fakeStore struct {
	venues  []*venue.Venue
	artists []*artist.Artist
	shows   []*show.Show

	nextVenueID  uint
	nextArtistID uint
	nextShowID   uint

	failVenueWrite  error
	failArtistWrite error
	failShowWrite   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextVenueID: 1, nextArtistID: 1, nextShowID: 1}
}

func (f *fakeStore) addVenue(v *venue.Venue) *venue.Venue {
	if v.ID == 0 {
		v.ID = f.nextVenueID
	}
	if v.ID >= f.nextVenueID {
		f.nextVenueID = v.ID + 1
	}
	f.venues = append(f.venues, v)
	return v
}

func (f *fakeStore) addArtist(a *artist.Artist) *artist.Artist {
	if a.ID == 0 {
		a.ID = f.nextArtistID
	}
	if a.ID >= f.nextArtistID {
		f.nextArtistID = a.ID + 1
	}
	f.artists = append(f.artists, a)
	return a
}

func (f *fakeStore) addShow(artistID, venueID uint, start time.Time) *show.Show {
	s := &show.Show{ID: f.nextShowID, ArtistID: artistID, VenueID: venueID, StartTime: start}
	f.nextShowID++
	f.shows = append(f.shows, s)
	return s
}

func (f *fakeStore) showsForVenue(id uint) []show.Show {
	var out []show.Show
	for _, s := range f.shows {
		if s.VenueID == id {
			out = append(out, *s)
		}
	}
	return out
}

func (f *fakeStore) showsForArtist(id uint) []show.Show {
	var out []show.Show
	for _, s := range f.shows {
		if s.ArtistID == id {
			out = append(out, *s)
		}
	}
	return out
}

// fakeVenueRepo implements postgres.VenueRepository over the fakeStore
type fakeVenueRepo struct{ store *fakeStore }

var _ postgres.VenueRepository = (*fakeVenueRepo)(nil)

func (r *fakeVenueRepo) Create(v *venue.Venue) error {
	if err := r.store.failVenueWrite; err != nil {
		return err
	}
	r.store.addVenue(v)
	return nil
}

func (r *fakeVenueRepo) GetByID(id uint) (*venue.Venue, error) {
	for _, v := range r.store.venues {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *fakeVenueRepo) GetByIDWithShows(id uint) (*venue.Venue, error) {
	v, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	v.Shows = r.store.showsForVenue(id)
	return v, nil
}

func (r *fakeVenueRepo) GetAllOrderedByLocation() ([]*venue.Venue, error) {
	out := make([]*venue.Venue, len(r.store.venues))
	copy(out, r.store.venues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].City < out[j].City
	})
	return out, nil
}

func (r *fakeVenueRepo) SearchByName(term string) ([]*venue.Venue, error) {
	var out []*venue.Venue
	for _, v := range r.store.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVenueRepo) CountUpcomingShows(venueID uint, now time.Time) (int64, error) {
	var count int64
	for _, s := range r.store.shows {
		if s.VenueID == venueID && s.StartTime.After(now) {
			count++
		}
	}
	return count, nil
}

func (r *fakeVenueRepo) Update(v *venue.Venue) error {
	if err := r.store.failVenueWrite; err != nil {
		return err
	}
	for i, existing := range r.store.venues {
		if existing.ID == v.ID {
			copied := *v
			r.store.venues[i] = &copied
			return nil
		}
	}
	return postgres.ErrNotFound
}

func (r *fakeVenueRepo) Delete(id uint) error {
	if err := r.store.failVenueWrite; err != nil {
		return err
	}
	for i, v := range r.store.venues {
		if v.ID == id {
			r.store.venues = append(r.store.venues[:i], r.store.venues[i+1:]...)
			kept := r.store.shows[:0]
			for _, s := range r.store.shows {
				if s.VenueID != id {
					kept = append(kept, s)
				}
			}
			r.store.shows = kept
			return nil
		}
	}
	return postgres.ErrNotFound
}

// fakeArtistRepo implements postgres.ArtistRepository over the fakeStore
type fakeArtistRepo struct{ store *fakeStore }

var _ postgres.ArtistRepository = (*fakeArtistRepo)(nil)

func (r *fakeArtistRepo) Create(a *artist.Artist) error {
	if err := r.store.failArtistWrite; err != nil {
		return err
	}
	r.store.addArtist(a)
	return nil
}

func (r *fakeArtistRepo) GetByID(id uint) (*artist.Artist, error) {
	for _, a := range r.store.artists {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *fakeArtistRepo) GetByIDWithShows(id uint) (*artist.Artist, error) {
	a, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	a.Shows = r.store.showsForArtist(id)
	return a, nil
}

func (r *fakeArtistRepo) GetAllRefs() ([]artist.Ref, error) {
	out := make([]artist.Ref, 0, len(r.store.artists))
	for _, a := range r.store.artists {
		out = append(out, artist.Ref{ID: a.ID, Name: a.Name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeArtistRepo) SearchByName(term string) ([]*artist.Artist, error) {
	var out []*artist.Artist
	for _, a := range r.store.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeArtistRepo) Update(a *artist.Artist) error {
	if err := r.store.failArtistWrite; err != nil {
		return err
	}
	for i, existing := range r.store.artists {
		if existing.ID == a.ID {
			copied := *a
			r.store.artists[i] = &copied
			return nil
		}
	}
	return postgres.ErrNotFound
}

func (r *fakeArtistRepo) Delete(id uint) error {
	if err := r.store.failArtistWrite; err != nil {
		return err
	}
	for i, a := range r.store.artists {
		if a.ID == id {
			r.store.artists = append(r.store.artists[:i], r.store.artists[i+1:]...)
			kept := r.store.shows[:0]
			for _, s := range r.store.shows {
				if s.ArtistID != id {
					kept = append(kept, s)
				}
			}
			r.store.shows = kept
			return nil
		}
	}
	return postgres.ErrNotFound
}

// fakeShowRepo implements postgres.ShowRepository over the fakeStore
type fakeShowRepo struct{ store *fakeStore }

var _ postgres.ShowRepository = (*fakeShowRepo)(nil)

func (r *fakeShowRepo) Create(s *show.Show) error {
	if err := r.store.failShowWrite; err != nil {
		return err
	}
	if _, err := (&fakeArtistRepo{r.store}).GetByID(s.ArtistID); err != nil {
		return postgres.ErrForeignKey
	}
	if _, err := (&fakeVenueRepo{r.store}).GetByID(s.VenueID); err != nil {
		return postgres.ErrForeignKey
	}
	created := r.store.addShow(s.ArtistID, s.VenueID, s.StartTime)
	s.ID = created.ID
	return nil
}

func (r *fakeShowRepo) GetByID(id uint) (*show.Show, error) {
	for _, s := range r.store.shows {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *fakeShowRepo) ListNewestFirst() ([]show.Listing, error) {
	venueRepo := &fakeVenueRepo{r.store}
	artistRepo := &fakeArtistRepo{r.store}

	out := make([]show.Listing, 0, len(r.store.shows))
	for _, s := range r.store.shows {
		v, err := venueRepo.GetByID(s.VenueID)
		if err != nil {
			return nil, err
		}
		a, err := artistRepo.GetByID(s.ArtistID)
		if err != nil {
			return nil, err
		}
		out = append(out, show.Listing{
			ID:              s.ID,
			VenueID:         v.ID,
			VenueName:       v.Name,
			ArtistID:        a.ID,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			StartTime:       s.StartTime,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
