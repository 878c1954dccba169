package store

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"spbu-monitor-backend/internal/model"
)

// Store defines read access to station snapshots.
type Store interface {
	ListStations(ctx context.Context) ([]model.StationSummary, error)
	GetStation(ctx context.Context, id int64) (*model.Station, error)
}

const listKey = "stations"

// cachedStore reuses snapshots fetched from the wrapped store for a short time.
type cachedStore struct {
	src   Store
	cache *cache.Cache
}

// NewCachedStore wraps src with an in-memory snapshot cache. A non-positive
// ttl disables caching and returns src unchanged.
func NewCachedStore(src Store, ttl time.Duration) Store {
	if ttl <= 0 {
		return src
	}
	return &cachedStore{
		src:   src,
		cache: cache.New(ttl, 2*ttl),
	}
}

// ListStations returns the cached station list, fetching it on a miss.
func (s *cachedStore) ListStations(ctx context.Context) ([]model.StationSummary, error) {
	if v, found := s.cache.Get(listKey); found {
		return v.([]model.StationSummary), nil
	}
	stations, err := s.src.ListStations(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(listKey, stations)
	return stations, nil
}

// GetStation returns the cached station snapshot, fetching it on a miss.
// Failures are never cached.
func (s *cachedStore) GetStation(ctx context.Context, id int64) (*model.Station, error) {
	key := stationKey(id)
	if v, found := s.cache.Get(key); found {
		log.WithField("station_id", id).Debug("station snapshot served from cache")
		return v.(*model.Station), nil
	}
	station, err := s.src.GetStation(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, station)
	return station, nil
}

func stationKey(id int64) string {
	return "station:" + strconv.FormatInt(id, 10)
}
