package service

import (
	"context"
	"time"

	"AstroServe/internal/domain/models"
)

// EphemerisResult is the raw sample the engine produces for one instant and
// place: the ten body positions (unplaced, house 0), the chart angles and the
// twelve cusp longitudes for the requested house system.
type EphemerisResult struct {
	Positions []models.CelestialPosition `json:"positions"`
	Ascendant float64                    `json:"ascendant"`
	Midheaven float64                    `json:"midheaven"`
	Cusps     [12]float64                `json:"cusps"`
}

// Ephemeris is the collaborator that turns a UTC instant and geographic
// coordinates into celestial positions and house cusps. Implementations must
// be pure functions of their inputs and safe for concurrent use.
type Ephemeris interface {
	// Compute returns the full sample for a timestamp, location and house
	// system. Fails with models.KindEphemerisUnavailable when the instant is
	// outside the engine's supported range.
	Compute(ctx context.Context, t time.Time, lat, lon float64, hs models.HouseSystem) (*EphemerisResult, error)

	// Positions returns only the body positions for a timestamp, with no
	// house placement. Used for transiting and current positions.
	Positions(ctx context.Context, t time.Time) ([]models.CelestialPosition, error)
}
