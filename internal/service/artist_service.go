package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/database"
)

type ArtistService interface {
	ListArtists(ctx context.Context) ([]dto.ArtistListItem, error)
	SearchArtists(ctx context.Context, term string) (dto.SearchResult, error)
	GetArtist(ctx context.Context, id uint) (*dto.ArtistDetail, error)
	GetArtistForm(ctx context.Context, id uint) (dto.ArtistForm, error)
	CreateArtist(ctx context.Context, form dto.ArtistForm) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id uint, form dto.ArtistForm) (*models.Artist, error)
}

type artistService struct {
	tx      database.Transactor
	artists repository.ArtistRepository
	shows   repository.ShowRepository
	notify  notifier
	now     func() time.Time
}

// NewArtistService wires the artist operations. publisher may be nil.
func NewArtistService(
	tx database.Transactor,
	artists repository.ArtistRepository,
	shows repository.ShowRepository,
	publisher EventPublisher,
) ArtistService {
	return &artistService{
		tx:      tx,
		artists: artists,
		shows:   shows,
		notify:  notifier{publisher: publisher},
		now:     time.Now,
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]dto.ArtistListItem, error) {
	var items []dto.ArtistListItem
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		artists, err := s.artists.FindAll(ctx, tx)
		if err != nil {
			return err
		}
		items = make([]dto.ArtistListItem, len(artists))
		for i, a := range artists {
			items[i] = dto.ArtistListItem{ID: a.ID, Name: a.Name}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return items, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (dto.SearchResult, error) {
	var result dto.SearchResult
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		artists, err := s.artists.Search(ctx, tx, term)
		if err != nil {
			return err
		}
		counts, err := s.shows.CountUpcomingByArtist(ctx, tx, term, s.now())
		if err != nil {
			return err
		}
		result = summarize(artists,
			func(a models.Artist) uint { return a.ID },
			func(a models.Artist) string { return a.Name },
			counts)
		return nil
	})
	if err != nil {
		return dto.SearchResult{}, fmt.Errorf("search artists: %w", err)
	}
	return result, nil
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*dto.ArtistDetail, error) {
	var detail dto.ArtistDetail
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		artist, err := s.artists.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		shows, err := s.shows.FindByArtistWithVenue(ctx, tx, id)
		if err != nil {
			return err
		}
		past, upcoming := PartitionArtistShows(shows, s.now())
		detail = dto.ToArtistDetail(artist, past, upcoming)
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err, "get artist")
	}
	return &detail, nil
}

func (s *artistService) GetArtistForm(ctx context.Context, id uint) (dto.ArtistForm, error) {
	var form dto.ArtistForm
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		artist, err := s.artists.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		form = dto.ArtistFormFrom(artist)
		return nil
	})
	if err != nil {
		return dto.ArtistForm{}, notFoundOr(err, "load artist")
	}
	return form, nil
}

func (s *artistService) CreateArtist(ctx context.Context, form dto.ArtistForm) (*models.Artist, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	artist := &models.Artist{}
	form.Apply(artist)

	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return s.artists.Create(ctx, tx, artist)
	})
	if err != nil {
		return nil, &PersistenceError{Op: "create artist", Err: err}
	}

	s.notify.committed(ctx, RoutingArtistCreated, artistEvent(artist), false)
	return artist, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, form dto.ArtistForm) (*models.Artist, error) {
	var artist *models.Artist
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		existing, err := s.artists.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if errs := form.Validate(); len(errs) > 0 {
			return &ValidationError{Fields: errs}
		}
		form.Apply(existing)
		if err := s.artists.Save(ctx, tx, existing); err != nil {
			return &PersistenceError{Op: "update artist", Err: err}
		}
		artist = existing
		return nil
	})
	if err != nil {
		return nil, classifyWriteErr(err, "update artist")
	}

	s.notify.committed(ctx, RoutingArtistUpdated, artistEvent(artist), false)
	return artist, nil
}

func artistEvent(a *models.Artist) EntityEvent {
	return EntityEvent{ID: a.ID, Name: a.Name, City: a.City, State: a.State}
}
