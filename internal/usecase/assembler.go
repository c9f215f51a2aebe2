package usecase

import (
	"context"
	"fmt"
	"time"

	"AstroServe/internal/domain/models"
	"AstroServe/internal/domain/repository"
	domsvc "AstroServe/internal/domain/service"
	"AstroServe/internal/services/astro"
	"AstroServe/pkg/util"
)

// ChartSpec is a fully resolved request for one chart: timestamp parsed,
// house system and orbs defaulted and validated.
type ChartSpec struct {
	Subject     string
	Time        time.Time
	Latitude    float64
	Longitude   float64
	HouseSystem models.HouseSystem
	Orbs        models.AspectConfig
}

// Assembler builds complete natal charts from ephemeris samples. Stateless
// apart from read-only defaults; safe for concurrent use.
type Assembler struct {
	ephem     domsvc.Ephemeris
	metrics   repository.Metrics
	defaultHS models.HouseSystem
	orbs      models.AspectConfig
}

func NewAssembler(ephem domsvc.Ephemeris, metrics repository.Metrics, defaultHS models.HouseSystem, orbs models.AspectConfig) *Assembler {
	return &Assembler{ephem: ephem, metrics: metrics, defaultHS: defaultHS, orbs: orbs}
}

// Resolve turns raw birth data into a ChartSpec, applying configured defaults
// for house system and orbs. All input errors surface as InvalidInput.
func (a *Assembler) Resolve(req models.BirthData) (ChartSpec, error) {
	ts, ok := util.ParseTime(req.BirthUTC)
	if !ok {
		return ChartSpec{}, models.NewInvalidInput("birth_datetime_utc",
			fmt.Sprintf("cannot parse %q as an ISO-8601 UTC timestamp", req.BirthUTC))
	}

	for name := range req.Orbs {
		if _, ok := models.AspectAngles[models.AspectKind(name)]; !ok {
			return ChartSpec{}, models.NewInvalidInput("orbs",
				fmt.Sprintf("unknown aspect %q", name))
		}
	}

	hs := a.defaultHS
	if req.HouseSystem != "" {
		parsed, err := models.ParseHouseSystem(req.HouseSystem)
		if err != nil {
			return ChartSpec{}, err
		}
		hs = parsed
	}

	return ChartSpec{
		Subject:     req.Name,
		Time:        ts.UTC(),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		HouseSystem: hs,
		Orbs:        a.orbs.Merge(req.Orbs),
	}, nil
}

// Assemble retrieves the ephemeris sample, places every body into its house
// and detects the natal aspects.
func (a *Assembler) Assemble(ctx context.Context, spec ChartSpec) (*models.Chart, error) {
	start := time.Now()
	sample, err := a.ephem.Compute(ctx, spec.Time, spec.Latitude, spec.Longitude, spec.HouseSystem)
	a.metrics.RecordLatency("ephemeris_compute", time.Since(start).Seconds())
	if err != nil {
		a.metrics.RecordError(string(models.KindOf(err)))
		return nil, fmt.Errorf("ephemeris compute: %w", err)
	}

	positions := make([]models.CelestialPosition, len(sample.Positions))
	copy(positions, sample.Positions)
	for i := range positions {
		house, err := astro.Place(positions[i].Longitude, sample.Cusps)
		if err != nil {
			a.metrics.RecordError(string(models.KindInvalidHouseData))
			return nil, fmt.Errorf("place %s: %w", positions[i].Body, err)
		}
		positions[i].House = house
	}

	aspects := astro.NatalAspects(positions, spec.Orbs)
	a.metrics.RecordChart("natal")
	a.metrics.RecordAspects("natal", len(aspects))

	return &models.Chart{
		Subject:     spec.Subject,
		Timestamp:   spec.Time,
		Latitude:    spec.Latitude,
		Longitude:   spec.Longitude,
		HouseSystem: spec.HouseSystem,
		Positions:   positions,
		Ascendant:   anglePoint("Ascendant", sample.Ascendant, 1),
		Midheaven:   anglePoint("Midheaven", sample.Midheaven, 10),
		Houses:      cuspList(sample.Cusps),
		Aspects:     aspects,
	}, nil
}

// Positions returns the unplaced body positions for an arbitrary instant,
// used by the transit and current-sky endpoints.
func (a *Assembler) Positions(ctx context.Context, t time.Time) ([]models.CelestialPosition, error) {
	start := time.Now()
	positions, err := a.ephem.Positions(ctx, t)
	a.metrics.RecordLatency("ephemeris_positions", time.Since(start).Seconds())
	if err != nil {
		a.metrics.RecordError(string(models.KindOf(err)))
		return nil, fmt.Errorf("ephemeris positions: %w", err)
	}
	return positions, nil
}

// Orbs exposes the resolved default orbs for callers that cross two charts.
func (a *Assembler) Orbs() models.AspectConfig { return a.orbs }

func anglePoint(name string, lon float64, house int) models.AnglePoint {
	sign, degree := astro.SignDegree(lon)
	return models.AnglePoint{
		Name:      name,
		Sign:      sign,
		Degree:    degree,
		Longitude: astro.Normalize(lon),
		House:     house,
	}
}

func cuspList(cusps [12]float64) []models.HouseCusp {
	out := make([]models.HouseCusp, 12)
	for i, lon := range cusps {
		sign, degree := astro.SignDegree(lon)
		out[i] = models.HouseCusp{
			House:     i + 1,
			Sign:      sign,
			Degree:    degree,
			Longitude: astro.Normalize(lon),
		}
	}
	return out
}
