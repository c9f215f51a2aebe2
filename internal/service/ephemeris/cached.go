package ephemeris

import (
	"context"
	"encoding/json"
	"time"

	"AstroServe/internal/domain/models"
	"AstroServe/internal/domain/service"
	"AstroServe/pkg/cache"
)

// Cached memoizes an ephemeris behind a cache.Service. The engine is a pure
// function of its inputs, so entries never go stale; the TTL only bounds
// memory.
type Cached struct {
	inner service.Ephemeris
	cache cache.Service
	ttl   time.Duration
}

// NewCached wraps an ephemeris with a cache layer.
func NewCached(inner service.Ephemeris, c cache.Service, ttl time.Duration) *Cached {
	return &Cached{inner: inner, cache: c, ttl: ttl}
}

var _ service.Ephemeris = (*Cached)(nil)

func (c *Cached) Compute(ctx context.Context, t time.Time, lat, lon float64, hs models.HouseSystem) (*service.EphemerisResult, error) {
	key := cache.GenerateKeyWithParams("ephem:sample", t.UTC().Unix(), lat, lon, string(hs))

	var raw string
	if err := c.cache.Get(ctx, key, &raw); err == nil {
		var res service.EphemerisResult
		if jsonErr := json.Unmarshal([]byte(raw), &res); jsonErr == nil {
			return &res, nil
		}
	}

	res, err := c.inner.Compute(ctx, t, lat, lon, hs)
	if err != nil {
		return nil, err
	}
	if data, jsonErr := json.Marshal(res); jsonErr == nil {
		_ = c.cache.Set(ctx, key, string(data), c.ttl)
	}
	return res, nil
}

func (c *Cached) Positions(ctx context.Context, t time.Time) ([]models.CelestialPosition, error) {
	key := cache.GenerateKeyWithParams("ephem:positions", t.UTC().Unix())

	var raw string
	if err := c.cache.Get(ctx, key, &raw); err == nil {
		var positions []models.CelestialPosition
		if jsonErr := json.Unmarshal([]byte(raw), &positions); jsonErr == nil {
			return positions, nil
		}
	}

	positions, err := c.inner.Positions(ctx, t)
	if err != nil {
		return nil, err
	}
	if data, jsonErr := json.Marshal(positions); jsonErr == nil {
		_ = c.cache.Set(ctx, key, string(data), c.ttl)
	}
	return positions, nil
}
