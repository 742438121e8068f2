package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/database"
)

type VenueService interface {
	Directory(ctx context.Context) ([]dto.LocationGroup, error)
	RefreshDirectory(ctx context.Context) error
	SearchVenues(ctx context.Context, term string) (dto.SearchResult, error)
	GetVenue(ctx context.Context, id uint) (*dto.VenueDetail, error)
	GetVenueForm(ctx context.Context, id uint) (dto.VenueForm, error)
	CreateVenue(ctx context.Context, form dto.VenueForm) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id uint, form dto.VenueForm) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) (string, error)
}

type venueService struct {
	tx     database.Transactor
	venues repository.VenueRepository
	shows  repository.ShowRepository
	cache  DirectoryCache
	notify notifier
	now    func() time.Time
}

// NewVenueService wires the venue operations. cache and publisher may be nil.
func NewVenueService(
	tx database.Transactor,
	venues repository.VenueRepository,
	shows repository.ShowRepository,
	cache DirectoryCache,
	publisher EventPublisher,
) VenueService {
	return &venueService{
		tx:     tx,
		venues: venues,
		shows:  shows,
		cache:  cache,
		notify: notifier{cache: cache, publisher: publisher},
		now:    time.Now,
	}
}

func (s *venueService) Directory(ctx context.Context) ([]dto.LocationGroup, error) {
	if s.cache == nil {
		return s.buildDirectory(ctx)
	}

	version, err := s.cache.Version(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("directory cache read failed")
		return s.buildDirectory(ctx)
	}
	groups, ok, err := s.cache.Get(ctx, version)
	if err != nil {
		log.Warn().Err(err).Msg("directory cache read failed")
	} else if ok {
		return groups, nil
	}

	groups, err = s.buildDirectory(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, version, groups); err != nil {
		log.Warn().Err(err).Msg("directory cache write failed")
	}
	return groups, nil
}

// RefreshDirectory recomputes the directory and stores it in the cache.
func (s *venueService) RefreshDirectory(ctx context.Context) error {
	if s.cache == nil {
		_, err := s.buildDirectory(ctx)
		return err
	}
	version, err := s.cache.Version(ctx)
	if err != nil {
		return fmt.Errorf("read directory version: %w", err)
	}
	groups, err := s.buildDirectory(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, version, groups)
}

func (s *venueService) buildDirectory(ctx context.Context) ([]dto.LocationGroup, error) {
	var groups []dto.LocationGroup
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		venues, err := s.venues.FindAllByLocation(ctx, tx)
		if err != nil {
			return err
		}
		counts, err := s.shows.CountUpcomingByVenue(ctx, tx, "", s.now())
		if err != nil {
			return err
		}
		groups = GroupByLocation(venues, counts)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build venue directory: %w", err)
	}
	return groups, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (dto.SearchResult, error) {
	var result dto.SearchResult
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		venues, err := s.venues.Search(ctx, tx, term)
		if err != nil {
			return err
		}
		counts, err := s.shows.CountUpcomingByVenue(ctx, tx, term, s.now())
		if err != nil {
			return err
		}
		result = summarize(venues,
			func(v models.Venue) uint { return v.ID },
			func(v models.Venue) string { return v.Name },
			counts)
		return nil
	})
	if err != nil {
		return dto.SearchResult{}, fmt.Errorf("search venues: %w", err)
	}
	return result, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*dto.VenueDetail, error) {
	var detail dto.VenueDetail
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		venue, err := s.venues.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		shows, err := s.shows.FindByVenueWithArtist(ctx, tx, id)
		if err != nil {
			return err
		}
		past, upcoming := PartitionVenueShows(shows, s.now())
		detail = dto.ToVenueDetail(venue, past, upcoming)
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err, "get venue")
	}
	return &detail, nil
}

func (s *venueService) GetVenueForm(ctx context.Context, id uint) (dto.VenueForm, error) {
	var form dto.VenueForm
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		venue, err := s.venues.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		form = dto.VenueFormFrom(venue)
		return nil
	})
	if err != nil {
		return dto.VenueForm{}, notFoundOr(err, "load venue")
	}
	return form, nil
}

func (s *venueService) CreateVenue(ctx context.Context, form dto.VenueForm) (*models.Venue, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	venue := &models.Venue{}
	form.Apply(venue)

	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return s.venues.Create(ctx, tx, venue)
	})
	if err != nil {
		return nil, &PersistenceError{Op: "create venue", Err: err}
	}

	s.notify.committed(ctx, RoutingVenueCreated, venueEvent(venue), true)
	return venue, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, form dto.VenueForm) (*models.Venue, error) {
	var venue *models.Venue
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		existing, err := s.venues.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if errs := form.Validate(); len(errs) > 0 {
			return &ValidationError{Fields: errs}
		}
		form.Apply(existing)
		if err := s.venues.Save(ctx, tx, existing); err != nil {
			return &PersistenceError{Op: "update venue", Err: err}
		}
		venue = existing
		return nil
	})
	if err != nil {
		return nil, classifyWriteErr(err, "update venue")
	}

	s.notify.committed(ctx, RoutingVenueUpdated, venueEvent(venue), true)
	return venue, nil
}

// DeleteVenue removes the venue and every show it hosts in one transaction
// and returns the deleted venue's name.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) (string, error) {
	var venue *models.Venue
	err := s.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		existing, err := s.venues.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		removed, err := s.shows.DeleteByVenue(ctx, tx, id)
		if err != nil {
			return &PersistenceError{Op: "delete venue shows", Err: err}
		}
		if err := s.venues.Delete(ctx, tx, id); err != nil {
			return &PersistenceError{Op: "delete venue", Err: err}
		}
		log.Info().Uint("venue_id", id).Int64("shows_removed", removed).Msg("venue deleted")
		venue = existing
		return nil
	})
	if err != nil {
		return "", classifyWriteErr(err, "delete venue")
	}

	s.notify.committed(ctx, RoutingVenueDeleted, EntityEvent{ID: venue.ID, Name: venue.Name}, true)
	return venue.Name, nil
}

func venueEvent(v *models.Venue) EntityEvent {
	return EntityEvent{ID: v.ID, Name: v.Name, City: v.City, State: v.State}
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// classifyWriteErr maps an error returned from a write transaction onto the
// service error taxonomy.
func classifyWriteErr(err error, op string) error {
	var validationErr *ValidationError
	var persistenceErr *PersistenceError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && !errors.As(err, &persistenceErr):
		return ErrNotFound
	case errors.As(err, &validationErr):
		return validationErr
	case errors.As(err, &persistenceErr):
		return persistenceErr
	default:
		return &PersistenceError{Op: op, Err: err}
	}
}
