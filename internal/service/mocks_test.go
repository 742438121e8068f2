package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

// --- Mock Transactor ---

// mockTransactor runs fn directly with a nil handle; the mocked repositories
// never touch it. rollbacks counts transactions that returned an error.
type mockTransactor struct {
	calls     int
	rollbacks int
}

func (m *mockTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	m.calls++
	err := fn(nil)
	if err != nil {
		m.rollbacks++
	}
	return err
}

// --- Mock VenueRepository ---

type mockVenueRepo struct {
	createFn            func(ctx context.Context, venue *models.Venue) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Venue, error)
	findAllByLocationFn func(ctx context.Context) ([]models.Venue, error)
	searchFn            func(ctx context.Context, term string) ([]models.Venue, error)
	saveFn              func(ctx context.Context, venue *models.Venue) error
	deleteFn            func(ctx context.Context, id uint) error
}

func (m *mockVenueRepo) Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return m.createFn(ctx, venue)
}
func (m *mockVenueRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockVenueRepo) FindAllByLocation(ctx context.Context, tx *gorm.DB) ([]models.Venue, error) {
	return m.findAllByLocationFn(ctx)
}
func (m *mockVenueRepo) Search(ctx context.Context, tx *gorm.DB, term string) ([]models.Venue, error) {
	return m.searchFn(ctx, term)
}
func (m *mockVenueRepo) Save(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return m.saveFn(ctx, venue)
}
func (m *mockVenueRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock ArtistRepository ---

type mockArtistRepo struct {
	createFn   func(ctx context.Context, artist *models.Artist) error
	findByIDFn func(ctx context.Context, id uint) (*models.Artist, error)
	findAllFn  func(ctx context.Context) ([]models.Artist, error)
	searchFn   func(ctx context.Context, term string) ([]models.Artist, error)
	saveFn     func(ctx context.Context, artist *models.Artist) error
}

func (m *mockArtistRepo) Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return m.createFn(ctx, artist)
}
func (m *mockArtistRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockArtistRepo) FindAll(ctx context.Context, tx *gorm.DB) ([]models.Artist, error) {
	return m.findAllFn(ctx)
}
func (m *mockArtistRepo) Search(ctx context.Context, tx *gorm.DB, term string) ([]models.Artist, error) {
	return m.searchFn(ctx, term)
}
func (m *mockArtistRepo) Save(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return m.saveFn(ctx, artist)
}

// --- Mock ShowRepository ---

type mockShowRepo struct {
	createFn                func(ctx context.Context, show *models.Show) error
	findAllWithPartiesFn    func(ctx context.Context) ([]models.Show, error)
	findByVenueWithArtistFn func(ctx context.Context, venueID uint) ([]models.Show, error)
	findByArtistWithVenueFn func(ctx context.Context, artistID uint) ([]models.Show, error)
	countByVenueFn          func(ctx context.Context, term string, now time.Time) (map[uint]int64, error)
	countByArtistFn         func(ctx context.Context, term string, now time.Time) (map[uint]int64, error)
	deleteByVenueFn         func(ctx context.Context, venueID uint) (int64, error)
}

func (m *mockShowRepo) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return m.createFn(ctx, show)
}
func (m *mockShowRepo) FindAllWithParties(ctx context.Context, tx *gorm.DB) ([]models.Show, error) {
	return m.findAllWithPartiesFn(ctx)
}
func (m *mockShowRepo) FindByVenueWithArtist(ctx context.Context, tx *gorm.DB, venueID uint) ([]models.Show, error) {
	return m.findByVenueWithArtistFn(ctx, venueID)
}
func (m *mockShowRepo) FindByArtistWithVenue(ctx context.Context, tx *gorm.DB, artistID uint) ([]models.Show, error) {
	return m.findByArtistWithVenueFn(ctx, artistID)
}
func (m *mockShowRepo) CountUpcomingByVenue(ctx context.Context, tx *gorm.DB, term string, now time.Time) (map[uint]int64, error) {
	return m.countByVenueFn(ctx, term, now)
}
func (m *mockShowRepo) CountUpcomingByArtist(ctx context.Context, tx *gorm.DB, term string, now time.Time) (map[uint]int64, error) {
	return m.countByArtistFn(ctx, term, now)
}
func (m *mockShowRepo) DeleteByVenue(ctx context.Context, tx *gorm.DB, venueID uint) (int64, error) {
	return m.deleteByVenueFn(ctx, venueID)
}

// --- Mock side effects ---

type published struct {
	routingKey string
	payload    any
}

type mockPublisher struct {
	events []published
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	m.events = append(m.events, published{routingKey: routingKey, payload: payload})
	return m.err
}

type mockCache struct {
	version     int64
	groups      []dto.LocationGroup
	hit         bool
	sets        int
	setVersion  int64
	invalidates int
	// beforeSet runs between the build and the store, standing in for a
	// concurrent writer.
	beforeSet func()
}

func (m *mockCache) Version(ctx context.Context) (int64, error) {
	return m.version, nil
}
func (m *mockCache) Get(ctx context.Context, version int64) ([]dto.LocationGroup, bool, error) {
	if version != m.setVersion {
		return nil, false, nil
	}
	return m.groups, m.hit, nil
}
func (m *mockCache) Set(ctx context.Context, version int64, groups []dto.LocationGroup) error {
	if m.beforeSet != nil {
		m.beforeSet()
	}
	m.sets++
	m.setVersion = version
	m.groups = groups
	m.hit = true
	return nil
}
func (m *mockCache) Invalidate(ctx context.Context) error {
	m.invalidates++
	m.version++
	return nil
}
