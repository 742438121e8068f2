package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
)

const (
	RoutingVenueCreated  = "venue.created"
	RoutingVenueUpdated  = "venue.updated"
	RoutingVenueDeleted  = "venue.deleted"
	RoutingArtistCreated = "artist.created"
	RoutingArtistUpdated = "artist.updated"
	RoutingShowCreated   = "show.created"
)

// EventPublisher announces committed writes to other services.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// DirectoryCache stores the venue directory between writes.
// Snapshots are stored under the version read before they were built;
// Invalidate moves readers to a new version.
type DirectoryCache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64) ([]dto.LocationGroup, bool, error)
	Set(ctx context.Context, version int64, groups []dto.LocationGroup) error
	Invalidate(ctx context.Context) error
}

type EntityEvent struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

type ShowEvent struct {
	ID        uint      `json:"id"`
	ArtistID  uint      `json:"artist_id"`
	VenueID   uint      `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// notifier runs the side effects of a committed write. Failures are logged
// and never undo the write.
type notifier struct {
	cache     DirectoryCache
	publisher EventPublisher
}

func (n notifier) committed(ctx context.Context, routingKey string, payload any, invalidateDirectory bool) {
	if invalidateDirectory && n.cache != nil {
		if err := n.cache.Invalidate(ctx); err != nil {
			log.Warn().Err(err).Str("routing_key", routingKey).Msg("directory cache invalidation failed")
		}
	}
	if n.publisher != nil {
		if err := n.publisher.Publish(ctx, routingKey, payload); err != nil {
			log.Warn().Err(err).Str("routing_key", routingKey).Msg("publish domain event failed")
		}
	}
}
