package ephemeris

import (
	"context"
	"reflect"
	"testing"
	"time"

	"AstroServe/internal/domain/models"
	"AstroServe/pkg/cache"
)

func TestCachedComputeRoundTrip(t *testing.T) {
	mc := cache.NewMemoryCache()
	defer mc.Close()
	cached := NewCached(New(), mc, time.Hour)
	ctx := context.Background()

	when := time.Date(1990, 3, 15, 14, 30, 0, 0, time.UTC)
	first, err := cached.Compute(ctx, when, -23.5505, -46.6333, models.Placidus)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	second, err := cached.Compute(ctx, when, -23.5505, -46.6333, models.Placidus)
	if err != nil {
		t.Fatalf("cached compute: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached sample differs from computed sample")
	}
}

func TestCachedPositionsKeyedByInstant(t *testing.T) {
	mc := cache.NewMemoryCache()
	defer mc.Close()
	cached := NewCached(New(), mc, time.Hour)
	ctx := context.Background()

	t1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	p1, err := cached.Positions(ctx, t1)
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	p2, err := cached.Positions(ctx, t2)
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	// A day apart the Moon has moved by several degrees; identical results
	// would mean the cache key ignores the timestamp.
	moon1, moon2 := p1[models.Moon], p2[models.Moon]
	if moon1.Longitude == moon2.Longitude {
		t.Fatalf("moon longitude identical across days: %v", moon1.Longitude)
	}
}
