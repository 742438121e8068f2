package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

type ShowRepository interface {
	Create(ctx context.Context, tx *gorm.DB, show *models.Show) error
	FindAllWithParties(ctx context.Context, tx *gorm.DB) ([]models.Show, error)
	FindByVenueWithArtist(ctx context.Context, tx *gorm.DB, venueID uint) ([]models.Show, error)
	FindByArtistWithVenue(ctx context.Context, tx *gorm.DB, artistID uint) ([]models.Show, error)
	CountUpcomingByVenue(ctx context.Context, tx *gorm.DB, term string, now time.Time) (map[uint]int64, error)
	CountUpcomingByArtist(ctx context.Context, tx *gorm.DB, term string, now time.Time) (map[uint]int64, error)
	DeleteByVenue(ctx context.Context, tx *gorm.DB, venueID uint) (int64, error)
}

type showRepository struct{}

func NewShowRepository() ShowRepository {
	return &showRepository{}
}

func (r *showRepository) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return tx.WithContext(ctx).Create(show).Error
}

func (r *showRepository) FindAllWithParties(ctx context.Context, tx *gorm.DB) ([]models.Show, error) {
	var shows []models.Show
	if err := tx.WithContext(ctx).
		Joins("Venue").
		Joins("Artist").
		Order("shows.start_time ASC, shows.id ASC").
		Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByVenueWithArtist(ctx context.Context, tx *gorm.DB, venueID uint) ([]models.Show, error) {
	var shows []models.Show
	if err := tx.WithContext(ctx).
		Joins("Artist").
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time ASC, shows.id ASC").
		Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByArtistWithVenue(ctx context.Context, tx *gorm.DB, artistID uint) ([]models.Show, error) {
	var shows []models.Show
	if err := tx.WithContext(ctx).
		Joins("Venue").
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time ASC, shows.id ASC").
		Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

type upcomingCount struct {
	OwnerID uint
	Total   int64
}

// CountUpcomingByVenue counts shows starting at or after now for each venue
// matching term the way Search does. An empty term counts every venue.
// Venues without upcoming shows are absent from the map.
func (r *showRepository) CountUpcomingByVenue(ctx context.Context, tx *gorm.DB, term string, now time.Time) (map[uint]int64, error) {
	return countUpcoming(tx.WithContext(ctx), "venue_id", "venues", term, now)
}

func (r *showRepository) CountUpcomingByArtist(ctx context.Context, tx *gorm.DB, term string, now time.Time) (map[uint]int64, error) {
	return countUpcoming(tx.WithContext(ctx), "artist_id", "artists", term, now)
}

func countUpcoming(db *gorm.DB, column, ownerTable, term string, now time.Time) (map[uint]int64, error) {
	var rows []upcomingCount
	if err := upcomingCountQuery(db, column, ownerTable, term, now).Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}

// upcomingCountQuery filters owners with a subquery so the number of bind
// parameters stays fixed however many owners match.
func upcomingCountQuery(db *gorm.DB, column, ownerTable, term string, now time.Time) *gorm.DB {
	q := db.Model(&models.Show{}).
		Select("shows."+column+" AS owner_id, COUNT(*) AS total").
		Where("shows.start_time >= ?", now)
	if term != "" {
		owners := db.Session(&gorm.Session{NewDB: true}).
			Table(ownerTable).
			Select("id").
			Scopes(matchNameCityState(ownerTable, term))
		q = q.Where("shows."+column+" IN (?)", owners)
	}
	return q.Group("shows." + column)
}

func (r *showRepository) DeleteByVenue(ctx context.Context, tx *gorm.DB, venueID uint) (int64, error) {
	result := tx.WithContext(ctx).Where("venue_id = ?", venueID).Delete(&models.Show{})
	return result.RowsAffected, result.Error
}
