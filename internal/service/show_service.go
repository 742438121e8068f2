package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/database"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]dto.ShowListing, error)
	CreateShow(ctx context.Context, form dto.ShowForm) (*models.Show, error)
}

type showService struct {
	tx      database.Transactor
	shows   repository.ShowRepository
	venues  repository.VenueRepository
	artists repository.ArtistRepository
	notify  notifier
}

// NewShowService wires the show operations. cache and publisher may be nil.
func NewShowService(
	tx database.Transactor,
	shows repository.ShowRepository,
	venues repository.VenueRepository,
	artists repository.ArtistRepository,
	cache DirectoryCache,
	publisher EventPublisher,
) ShowService {
	return &showService{
		tx:      tx,
		shows:   shows,
		venues:  venues,
		artists: artists,
		notify:  notifier{cache: cache, publisher: publisher},
	}
}

func (s *showService) ListShows(ctx context.Context) ([]dto.ShowListing, error) {
	var listings []dto.ShowListing
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		shows, err := s.shows.FindAllWithParties(ctx, tx)
		if err != nil {
			return err
		}
		listings = make([]dto.ShowListing, len(shows))
		for i := range shows {
			listings[i] = dto.ToShowListing(&shows[i])
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return listings, nil
}

// CreateShow validates the form, checks that both parties exist and inserts
// the show. A missing artist or venue is reported as a field error.
func (s *showService) CreateShow(ctx context.Context, form dto.ShowForm) (*models.Show, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	show, err := form.ToModel()
	if err != nil {
		return nil, &ValidationError{Fields: dto.FieldErrors{{Field: "form", Message: err.Error()}}}
	}

	err = s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var missing dto.FieldErrors
		if _, err := s.artists.FindByID(ctx, tx, show.ArtistID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			missing = append(missing, dto.FieldError{Field: "artist_id", Message: "no artist with this id"})
		}
		if _, err := s.venues.FindByID(ctx, tx, show.VenueID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			missing = append(missing, dto.FieldError{Field: "venue_id", Message: "no venue with this id"})
		}
		if len(missing) > 0 {
			return &ValidationError{Fields: missing}
		}
		if err := s.shows.Create(ctx, tx, show); err != nil {
			return &PersistenceError{Op: "create show", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, classifyWriteErr(err, "create show")
	}

	s.notify.committed(ctx, RoutingShowCreated, ShowEvent{
		ID:        show.ID,
		ArtistID:  show.ArtistID,
		VenueID:   show.VenueID,
		StartTime: show.StartTime,
	}, true)
	return show, nil
}
