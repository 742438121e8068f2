package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/cache"
)

const (
	DirectoryKey        = "directory:venues"
	DirectoryVersionKey = "directory:venues:version"

	// MaxDirectoryTTL bounds how long upcoming counts can lag behind shows
	// whose start time has passed.
	MaxDirectoryTTL = time.Minute
)

// DirectoryCache keeps the grouped venue directory in a key/value store.
// Entries are keyed by a version that Invalidate bumps, so a snapshot built
// before a write can never be stored where readers look after it.
type DirectoryCache struct {
	store cache.Store
	ttl   time.Duration
}

func NewDirectoryCache(store cache.Store, ttl time.Duration) *DirectoryCache {
	if ttl <= 0 || ttl > MaxDirectoryTTL {
		ttl = MaxDirectoryTTL
	}
	return &DirectoryCache{store: store, ttl: ttl}
}

func versionKey(version int64) string {
	return fmt.Sprintf("%s:v%d", DirectoryKey, version)
}

// Version returns the current directory version; zero before the first
// invalidation.
func (c *DirectoryCache) Version(ctx context.Context) (int64, error) {
	var version int64
	if _, err := c.store.Get(ctx, DirectoryVersionKey, &version); err != nil {
		return 0, err
	}
	return version, nil
}

func (c *DirectoryCache) Get(ctx context.Context, version int64) ([]dto.LocationGroup, bool, error) {
	var groups []dto.LocationGroup
	found, err := c.store.Get(ctx, versionKey(version), &groups)
	if err != nil || !found {
		return nil, false, err
	}
	if groups == nil {
		groups = []dto.LocationGroup{}
	}
	return groups, true, nil
}

func (c *DirectoryCache) Set(ctx context.Context, version int64, groups []dto.LocationGroup) error {
	return c.store.Set(ctx, versionKey(version), groups, c.ttl)
}

func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	_, err := c.store.Incr(ctx, DirectoryVersionKey)
	return err
}
