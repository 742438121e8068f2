package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

type ArtistRepository interface {
	Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error)
	FindAll(ctx context.Context, tx *gorm.DB) ([]models.Artist, error)
	Search(ctx context.Context, tx *gorm.DB, term string) ([]models.Artist, error)
	Save(ctx context.Context, tx *gorm.DB, artist *models.Artist) error
}

type artistRepository struct{}

func NewArtistRepository() ArtistRepository {
	return &artistRepository{}
}

func (r *artistRepository) Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return tx.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := tx.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context, tx *gorm.DB) ([]models.Artist, error) {
	var artists []models.Artist
	if err := tx.WithContext(ctx).Select("id", "name").Order("id ASC").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Search(ctx context.Context, tx *gorm.DB, term string) ([]models.Artist, error) {
	var artists []models.Artist
	if err := tx.WithContext(ctx).
		Scopes(matchNameCityState("artists", term)).
		Order("id ASC").
		Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Save(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return tx.WithContext(ctx).Save(artist).Error
}
