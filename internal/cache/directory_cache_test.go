package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
)

// memoryStore mimics the redis store: values go through JSON.
type memoryStore struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memoryStore) Incr(ctx context.Context, key string) (int64, error) {
	var n int64
	if raw, ok := m.data[key]; ok {
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, err
		}
	}
	n++
	m.data[key], _ = json.Marshal(n)
	return n, nil
}

func TestDirectoryCache_SetThenGet(t *testing.T) {
	store := newMemoryStore()
	c := NewDirectoryCache(store, 30*time.Second)
	groups := []dto.LocationGroup{{
		City:   "San Francisco",
		State:  "CA",
		Venues: []dto.Summary{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0}},
	}}
	ctx := context.Background()

	version, err := c.Version(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, version, groups))
	got, ok, err := c.Get(ctx, version)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, groups, got)
	assert.Equal(t, 30*time.Second, store.ttls[DirectoryKey+":v0"])
}

func TestDirectoryCache_TTLIsCapped(t *testing.T) {
	store := newMemoryStore()
	c := NewDirectoryCache(store, time.Hour)

	require.NoError(t, c.Set(context.Background(), 0, []dto.LocationGroup{}))

	assert.Equal(t, MaxDirectoryTTL, store.ttls[DirectoryKey+":v0"])
}

func TestDirectoryCache_Miss(t *testing.T) {
	c := NewDirectoryCache(newMemoryStore(), time.Minute)

	got, ok, err := c.Get(context.Background(), 0)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestDirectoryCache_EmptyDirectoryIsAHit(t *testing.T) {
	c := NewDirectoryCache(newMemoryStore(), time.Minute)
	require.NoError(t, c.Set(context.Background(), 0, []dto.LocationGroup{}))

	got, ok, err := c.Get(context.Background(), 0)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestDirectoryCache_StoreError(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("connection refused")
	c := NewDirectoryCache(store, time.Minute)

	_, err := c.Version(context.Background())
	assert.Error(t, err)

	_, ok, err := c.Get(context.Background(), 0)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDirectoryCache_InvalidateMovesToNewVersion(t *testing.T) {
	c := NewDirectoryCache(newMemoryStore(), time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, 0, []dto.LocationGroup{{City: "x"}}))

	require.NoError(t, c.Invalidate(ctx))

	version, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	_, ok, _ := c.Get(ctx, version)
	assert.False(t, ok)

	// a snapshot started before the invalidation lands on the old version
	require.NoError(t, c.Set(ctx, 0, []dto.LocationGroup{{City: "stale"}}))
	_, ok, _ = c.Get(ctx, version)
	assert.False(t, ok)
}
