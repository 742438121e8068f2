package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

type VenueRepository interface {
	Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error)
	FindAllByLocation(ctx context.Context, tx *gorm.DB) ([]models.Venue, error)
	Search(ctx context.Context, tx *gorm.DB, term string) ([]models.Venue, error)
	Save(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type venueRepository struct{}

func NewVenueRepository() VenueRepository {
	return &venueRepository{}
}

func (r *venueRepository) Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := tx.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// FindAllByLocation returns every venue ordered by state, city, then id so
// that venues sharing a location are adjacent.
func (r *venueRepository) FindAllByLocation(ctx context.Context, tx *gorm.DB) ([]models.Venue, error) {
	var venues []models.Venue
	if err := tx.WithContext(ctx).
		Order("state ASC, city ASC, id ASC").
		Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Search(ctx context.Context, tx *gorm.DB, term string) ([]models.Venue, error) {
	var venues []models.Venue
	if err := tx.WithContext(ctx).
		Scopes(matchNameCityState("venues", term)).
		Order("id ASC").
		Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Save(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Save(venue).Error
}

func (r *venueRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	result := tx.WithContext(ctx).Delete(&models.Venue{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
