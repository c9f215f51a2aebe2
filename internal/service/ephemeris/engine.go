package ephemeris

import (
	"context"
	"fmt"
	"math"
	"time"

	"AstroServe/internal/domain/models"
	"AstroServe/internal/domain/service"
	"AstroServe/internal/services/astro"
)

// The Keplerian element tables are fitted for 1800-2050; outside that span the
// engine refuses to compute rather than degrade silently.
const (
	minYear = 1800
	maxYear = 2050
)

// speedStep is the finite-difference interval (days) for daily motion.
const speedStep = 0.5

// Engine computes celestial positions and house cusps from the built-in
// analytic series. It is a pure function of its inputs and safe for
// concurrent use; there is no internal state.
type Engine struct{}

// New creates the ephemeris engine.
func New() *Engine { return &Engine{} }

var _ service.Ephemeris = (*Engine)(nil)

// Compute returns the full sample for one instant, location and house system.
func (e *Engine) Compute(ctx context.Context, t time.Time, lat, lon float64, hs models.HouseSystem) (*service.EphemerisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkRange(t); err != nil {
		return nil, err
	}
	if lat < -90 || lat > 90 {
		return nil, models.NewInvalidInput("latitude", fmt.Sprintf("latitude %.4f out of range", lat))
	}
	if lon < -180 || lon > 180 {
		return nil, models.NewInvalidInput("longitude", fmt.Sprintf("longitude %.4f out of range", lon))
	}

	jd := julianDay(t)
	eps := obliquity(centuries(jd))
	ra := ramc(jd, lon)

	mc := mcLongitude(ra, eps)
	asc := ascendantAt(ra, lat, eps)
	// the ascendant always trails the midheaven by less than half a circle
	if astro.Normalize(asc-mc) >= 180 {
		asc = astro.Normalize(asc + 180)
	}

	houseCusps, err := cusps(hs, ra, lat, eps, asc, mc)
	if err != nil {
		return nil, err
	}

	return &service.EphemerisResult{
		Positions: positionsAt(jd),
		Ascendant: asc,
		Midheaven: mc,
		Cusps:     houseCusps,
	}, nil
}

// Positions returns only the ten body positions, unplaced.
func (e *Engine) Positions(ctx context.Context, t time.Time) ([]models.CelestialPosition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkRange(t); err != nil {
		return nil, err
	}
	return positionsAt(julianDay(t)), nil
}

func checkRange(t time.Time) error {
	y := t.UTC().Year()
	if y < minYear || y > maxYear {
		return models.NewEphemerisUnavailable(
			fmt.Sprintf("timestamp %s outside supported range %d-%d", t.UTC().Format(time.RFC3339), minYear, maxYear), nil)
	}
	return nil
}

func positionsAt(jd float64) []models.CelestialPosition {
	bodies := models.Bodies()
	positions := make([]models.CelestialPosition, 0, len(bodies))
	for _, body := range bodies {
		lon0, lat0 := bodyEcliptic(body, jd)
		lon1, _ := bodyEcliptic(body, jd+speedStep)
		speed := signedDelta(lon1-lon0) / speedStep

		lon0 = astro.Normalize(lon0)
		sign, degree := astro.SignDegree(lon0)
		positions = append(positions, models.CelestialPosition{
			Body:       body,
			Sign:       sign,
			Degree:     degree,
			Longitude:  lon0,
			Latitude:   lat0,
			Speed:      speed,
			Retrograde: speed < 0,
		})
	}
	return positions
}

// bodyEcliptic dispatches between the lunar series and the planetary elements.
func bodyEcliptic(body models.Body, jd float64) (lon, lat float64) {
	t := centuries(jd)
	if body == models.Moon {
		return moonPosition(t)
	}
	return geocentricEcliptic(body, t)
}

// signedDelta maps a longitude difference to (-180,180].
func signedDelta(d float64) float64 {
	d = math.Mod(d+540, 360) - 180
	if d == -180 {
		d = 180
	}
	return d
}
