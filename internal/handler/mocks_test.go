package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/view"
	"github.com/Eursukkul/booking-microservice/directory-service/web"
)

// --- Mock VenueService ---

type mockVenueService struct {
	directoryFn func(ctx context.Context) ([]dto.LocationGroup, error)
	searchFn    func(ctx context.Context, term string) (dto.SearchResult, error)
	getFn       func(ctx context.Context, id uint) (*dto.VenueDetail, error)
	getFormFn   func(ctx context.Context, id uint) (dto.VenueForm, error)
	createFn    func(ctx context.Context, form dto.VenueForm) (*models.Venue, error)
	updateFn    func(ctx context.Context, id uint, form dto.VenueForm) (*models.Venue, error)
	deleteFn    func(ctx context.Context, id uint) (string, error)
}

func (m *mockVenueService) Directory(ctx context.Context) ([]dto.LocationGroup, error) {
	return m.directoryFn(ctx)
}
func (m *mockVenueService) RefreshDirectory(ctx context.Context) error { return nil }
func (m *mockVenueService) SearchVenues(ctx context.Context, term string) (dto.SearchResult, error) {
	return m.searchFn(ctx, term)
}
func (m *mockVenueService) GetVenue(ctx context.Context, id uint) (*dto.VenueDetail, error) {
	return m.getFn(ctx, id)
}
func (m *mockVenueService) GetVenueForm(ctx context.Context, id uint) (dto.VenueForm, error) {
	return m.getFormFn(ctx, id)
}
func (m *mockVenueService) CreateVenue(ctx context.Context, form dto.VenueForm) (*models.Venue, error) {
	return m.createFn(ctx, form)
}
func (m *mockVenueService) UpdateVenue(ctx context.Context, id uint, form dto.VenueForm) (*models.Venue, error) {
	return m.updateFn(ctx, id, form)
}
func (m *mockVenueService) DeleteVenue(ctx context.Context, id uint) (string, error) {
	return m.deleteFn(ctx, id)
}

// --- Mock ArtistService ---

type mockArtistService struct {
	listFn    func(ctx context.Context) ([]dto.ArtistListItem, error)
	searchFn  func(ctx context.Context, term string) (dto.SearchResult, error)
	getFn     func(ctx context.Context, id uint) (*dto.ArtistDetail, error)
	getFormFn func(ctx context.Context, id uint) (dto.ArtistForm, error)
	createFn  func(ctx context.Context, form dto.ArtistForm) (*models.Artist, error)
	updateFn  func(ctx context.Context, id uint, form dto.ArtistForm) (*models.Artist, error)
}

func (m *mockArtistService) ListArtists(ctx context.Context) ([]dto.ArtistListItem, error) {
	return m.listFn(ctx)
}
func (m *mockArtistService) SearchArtists(ctx context.Context, term string) (dto.SearchResult, error) {
	return m.searchFn(ctx, term)
}
func (m *mockArtistService) GetArtist(ctx context.Context, id uint) (*dto.ArtistDetail, error) {
	return m.getFn(ctx, id)
}
func (m *mockArtistService) GetArtistForm(ctx context.Context, id uint) (dto.ArtistForm, error) {
	return m.getFormFn(ctx, id)
}
func (m *mockArtistService) CreateArtist(ctx context.Context, form dto.ArtistForm) (*models.Artist, error) {
	return m.createFn(ctx, form)
}
func (m *mockArtistService) UpdateArtist(ctx context.Context, id uint, form dto.ArtistForm) (*models.Artist, error) {
	return m.updateFn(ctx, id, form)
}

// --- Mock ShowService ---

type mockShowService struct {
	listFn   func(ctx context.Context) ([]dto.ShowListing, error)
	createFn func(ctx context.Context, form dto.ShowForm) (*models.Show, error)
}

func (m *mockShowService) ListShows(ctx context.Context) ([]dto.ShowListing, error) {
	return m.listFn(ctx)
}
func (m *mockShowService) CreateShow(ctx context.Context, form dto.ShowForm) (*models.Show, error) {
	return m.createFn(ctx, form)
}

// --- Helpers ---

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	renderer, err := view.NewRenderer(web.Templates())
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	return e
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}
