package handlers

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/marquee-api/internal/domain/artist"
	"github.com/gravadigital/marquee-api/internal/domain/show"
	"github.com/gravadigital/marquee-api/internal/domain/venue"
	"github.com/gravadigital/marquee-api/internal/services"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memStore backs the fake repositories with shared slices so foreign keys
// and cascades behave like the real schema.
type memStore struct {
	venues  []*venue.Venue
	artists []*artist.Artist
	shows   []*show.Show
	nextID  uint

	failWrites error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) seedVenue(v *venue.Venue) *venue.Venue {
	v.ID = m.nextID
	m.nextID++
	m.venues = append(m.venues, v)
	return v
}

func (m *memStore) seedArtist(a *artist.Artist) *artist.Artist {
	a.ID = m.nextID
	m.nextID++
	m.artists = append(m.artists, a)
	return a
}

func (m *memStore) seedShow(artistID, venueID uint, start time.Time) *show.Show {
	s := &show.Show{ID: m.nextID, ArtistID: artistID, VenueID: venueID, StartTime: start}
	m.nextID++
	m.shows = append(m.shows, s)
	return s
}

type memVenueRepo struct{ store *memStore }

var _ postgres.VenueRepository = (*memVenueRepo)(nil)

func (r *memVenueRepo) Create(v *venue.Venue) error {
	if r.store.failWrites != nil {
		return r.store.failWrites
	}
	r.store.seedVenue(v)
	return nil
}

func (r *memVenueRepo) GetByID(id uint) (*venue.Venue, error) {
	for _, v := range r.store.venues {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *memVenueRepo) GetByIDWithShows(id uint) (*venue.Venue, error) {
	v, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, s := range r.store.shows {
		if s.VenueID == id {
			v.Shows = append(v.Shows, *s)
		}
	}
	return v, nil
}

func (r *memVenueRepo) GetAllOrderedByLocation() ([]*venue.Venue, error) {
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

func (r *memVenueRepo) SearchByName(term string) ([]*venue.Venue, error) {
	var out []*venue.Venue
	for _, v := range r.store.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVenueRepo) CountUpcomingShows(venueID uint, now time.Time) (int64, error) {
	var count int64
	for _, s := range r.store.shows {
		if s.VenueID == venueID && s.StartTime.After(now) {
			count++
		}
	}
	return count, nil
}

func (r *memVenueRepo) Update(v *venue.Venue) error {
	if r.store.failWrites != nil {
		return r.store.failWrites
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

func (r *memVenueRepo) Delete(id uint) error {
	if r.store.failWrites != nil {
		return r.store.failWrites
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

type memArtistRepo struct{ store *memStore }

var _ postgres.ArtistRepository = (*memArtistRepo)(nil)

func (r *memArtistRepo) Create(a *artist.Artist) error {
	if r.store.failWrites != nil {
		return r.store.failWrites
	}
	r.store.seedArtist(a)
	return nil
}

func (r *memArtistRepo) GetByID(id uint) (*artist.Artist, error) {
	for _, a := range r.store.artists {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *memArtistRepo) GetByIDWithShows(id uint) (*artist.Artist, error) {
	a, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, s := range r.store.shows {
		if s.ArtistID == id {
			a.Shows = append(a.Shows, *s)
		}
	}
	return a, nil
}

func (r *memArtistRepo) GetAllRefs() ([]artist.Ref, error) {
	out := make([]artist.Ref, 0, len(r.store.artists))
	for _, a := range r.store.artists {
		out = append(out, artist.Ref{ID: a.ID, Name: a.Name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memArtistRepo) SearchByName(term string) ([]*artist.Artist, error) {
	var out []*artist.Artist
	for _, a := range r.store.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memArtistRepo) Update(a *artist.Artist) error {
	if r.store.failWrites != nil {
		return r.store.failWrites
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

func (r *memArtistRepo) Delete(id uint) error {
	if r.store.failWrites != nil {
		return r.store.failWrites
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

type memShowRepo struct{ store *memStore }

var _ postgres.ShowRepository = (*memShowRepo)(nil)

func (r *memShowRepo) Create(s *show.Show) error {
	if r.store.failWrites != nil {
		return r.store.failWrites
	}
	if _, err := (&memArtistRepo{r.store}).GetByID(s.ArtistID); err != nil {
		return postgres.ErrForeignKey
	}
	if _, err := (&memVenueRepo{r.store}).GetByID(s.VenueID); err != nil {
		return postgres.ErrForeignKey
	}
	created := r.store.seedShow(s.ArtistID, s.VenueID, s.StartTime)
	s.ID = created.ID
	return nil
}

func (r *memShowRepo) GetByID(id uint) (*show.Show, error) {
	for _, s := range r.store.shows {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *memShowRepo) ListNewestFirst() ([]show.Listing, error) {
	out := make([]show.Listing, 0, len(r.store.shows))
	for _, s := range r.store.shows {
		v, err := (&memVenueRepo{r.store}).GetByID(s.VenueID)
		if err != nil {
			return nil, err
		}
		a, err := (&memArtistRepo{r.store}).GetByID(s.ArtistID)
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

// newTestRouter wires the real services and handlers over the in-memory
// store with the same routes the server registers.
func newTestRouter(store *memStore) *gin.Engine {
	venueService := services.NewVenueService(&memVenueRepo{store}, &memArtistRepo{store})
	artistService := services.NewArtistService(&memArtistRepo{store}, &memVenueRepo{store})
	showService := services.NewShowService(&memShowRepo{store})

	venueHandler := NewVenueHandler(venueService)
	artistHandler := NewArtistHandler(artistService)
	showHandler := NewShowHandler(showService)

	router := gin.New()

	venues := router.Group("/venues")
	{
		venues.GET("", venueHandler.ListAreas)
		venues.POST("", venueHandler.Create)
		venues.POST("/search", venueHandler.Search)
		venues.GET("/:id", venueHandler.Get)
		venues.POST("/:id/edit", venueHandler.Update)
		venues.DELETE("/:id", venueHandler.Delete)
	}

	artists := router.Group("/artists")
	{
		artists.GET("", artistHandler.List)
		artists.POST("", artistHandler.Create)
		artists.POST("/search", artistHandler.Search)
		artists.GET("/:id", artistHandler.Get)
		artists.POST("/:id/edit", artistHandler.Update)
		artists.DELETE("/:id", artistHandler.Delete)
	}

	shows := router.Group("/shows")
	{
		shows.GET("", showHandler.List)
		shows.POST("", showHandler.Create)
	}

	return router
}

func doJSON(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doForm(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doRequest(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
