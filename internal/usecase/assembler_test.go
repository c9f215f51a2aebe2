package usecase

import (
	"context"
	"testing"
	"time"

	"AstroServe/internal/domain/models"
	"AstroServe/internal/domain/service"
	"AstroServe/internal/services/astro"
)

// fakeEphemeris produces a deterministic sky: bodies spread 36 degrees apart
// starting at baseLon, equal cusps from the ascendant.
type fakeEphemeris struct {
	baseLon   float64
	ascendant float64
	err       error
}

func (f *fakeEphemeris) Compute(_ context.Context, _ time.Time, _, _ float64, _ models.HouseSystem) (*service.EphemerisResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := &service.EphemerisResult{
		Positions: f.positions(),
		Ascendant: f.ascendant,
		Midheaven: astro.Normalize(f.ascendant + 270),
	}
	for i := 0; i < 12; i++ {
		res.Cusps[i] = astro.Normalize(f.ascendant + float64(i)*30)
	}
	return res, nil
}

func (f *fakeEphemeris) Positions(_ context.Context, _ time.Time) ([]models.CelestialPosition, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.positions(), nil
}

func (f *fakeEphemeris) positions() []models.CelestialPosition {
	out := make([]models.CelestialPosition, 0, models.BodyCount)
	for i, body := range models.Bodies() {
		lon := astro.Normalize(f.baseLon + float64(i)*36)
		sign, degree := astro.SignDegree(lon)
		out = append(out, models.CelestialPosition{
			Body: body, Sign: sign, Degree: degree, Longitude: lon, Speed: 0.5,
		})
	}
	return out
}

type noopMetrics struct{}

func (noopMetrics) RecordChart(string)           {}
func (noopMetrics) RecordAspects(string, int)    {}
func (noopMetrics) RecordError(string)           {}
func (noopMetrics) RecordLatency(string, float64) {}

func newTestAssembler(f *fakeEphemeris) *Assembler {
	return NewAssembler(f, noopMetrics{}, models.Placidus, models.DefaultAspectConfig())
}

func birthData() models.BirthData {
	return models.BirthData{
		Name:     "Maria Silva",
		BirthUTC: "1990-03-15T14:30:00Z",
		Latitude: -23.5505, Longitude: -46.6333,
	}
}

func TestResolveDefaults(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{})
	spec, err := asm.Resolve(birthData())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if spec.HouseSystem != models.Placidus {
		t.Fatalf("house system = %s, want configured default placidus", spec.HouseSystem)
	}
	if spec.Orbs[models.Square] != 7 {
		t.Fatalf("square orb = %v, want default 7", spec.Orbs[models.Square])
	}
	if !spec.Time.Equal(time.Date(1990, 3, 15, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %v", spec.Time)
	}
}

func TestResolveOrbOverride(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{})
	req := birthData()
	req.Orbs = map[string]float64{"conjunction": 3.5}
	spec, err := asm.Resolve(req)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if spec.Orbs[models.Conjunction] != 3.5 {
		t.Fatalf("conjunction orb = %v, want override 3.5", spec.Orbs[models.Conjunction])
	}
	if spec.Orbs[models.Sextile] != 6 {
		t.Fatalf("sextile orb = %v, want untouched default 6", spec.Orbs[models.Sextile])
	}
}

func TestResolveUnknownAspectOrb(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{})
	req := birthData()
	req.Orbs = map[string]float64{"quintile": 2}
	_, err := asm.Resolve(req)
	if models.KindOf(err) != models.KindInvalidInput {
		t.Fatalf("expected invalid input for unknown aspect, got %v", err)
	}
}

func TestResolveBadTimestamp(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{})
	req := birthData()
	req.BirthUTC = "15/03/1990"
	_, err := asm.Resolve(req)
	if models.KindOf(err) != models.KindInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestResolveUnsupportedHouseSystem(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{})
	req := birthData()
	req.HouseSystem = "topocentric"
	_, err := asm.Resolve(req)
	if models.KindOf(err) != models.KindInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestAssembleShape(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{baseLon: 5, ascendant: 100})
	spec, err := asm.Resolve(birthData())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	chart, err := asm.Assemble(context.Background(), spec)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if len(chart.Positions) != models.BodyCount {
		t.Fatalf("got %d positions, want %d", len(chart.Positions), models.BodyCount)
	}
	if len(chart.Houses) != 12 {
		t.Fatalf("got %d houses, want 12", len(chart.Houses))
	}
	for _, p := range chart.Positions {
		if p.House < 1 || p.House > 12 {
			t.Fatalf("%s placed in house %d", p.Body, p.House)
		}
	}
	if chart.Ascendant.Longitude != 100 || chart.Ascendant.House != 1 {
		t.Fatalf("ascendant = %+v", chart.Ascendant)
	}
	if chart.Midheaven.Longitude != 10 || chart.Midheaven.House != 10 {
		t.Fatalf("midheaven = %+v", chart.Midheaven)
	}
	for _, a := range chart.Aspects {
		if a.Orb > spec.Orbs[a.Kind] {
			t.Fatalf("aspect %+v exceeds configured orb %v", a, spec.Orbs[a.Kind])
		}
	}
}

func TestAssembleEphemerisFailure(t *testing.T) {
	failing := &fakeEphemeris{err: models.NewEphemerisUnavailable("out of range", nil)}
	asm := newTestAssembler(failing)
	spec, _ := asm.Resolve(birthData())
	chart, err := asm.Assemble(context.Background(), spec)
	if models.KindOf(err) != models.KindEphemerisUnavailable {
		t.Fatalf("expected ephemeris unavailable, got %v", err)
	}
	if chart != nil {
		t.Fatalf("no partial chart may be returned, got %+v", chart)
	}
}

func TestAssembleRejectsBadCusps(t *testing.T) {
	bad := &fakeEphemeris{baseLon: 5, ascendant: 100}
	asm := NewAssembler(&badCuspEphemeris{bad}, noopMetrics{}, models.Placidus, models.DefaultAspectConfig())
	spec, _ := asm.Resolve(birthData())
	_, err := asm.Assemble(context.Background(), spec)
	if models.KindOf(err) != models.KindInvalidHouseData {
		t.Fatalf("expected invalid house data, got %v", err)
	}
}

// badCuspEphemeris corrupts cusp monotonicity.
type badCuspEphemeris struct{ *fakeEphemeris }

func (b *badCuspEphemeris) Compute(ctx context.Context, t time.Time, lat, lon float64, hs models.HouseSystem) (*service.EphemerisResult, error) {
	res, err := b.fakeEphemeris.Compute(ctx, t, lat, lon, hs)
	if err != nil {
		return nil, err
	}
	res.Cusps[3], res.Cusps[4] = res.Cusps[4], res.Cusps[3]
	return res, nil
}
