package astro

import (
	"math"
	"testing"

	"AstroServe/internal/domain/models"
)

func TestDetectConjunction(t *testing.T) {
	m, ok := Detect(10, 14, models.DefaultAspectConfig())
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Kind != models.Conjunction {
		t.Fatalf("kind = %s, want conjunction", m.Kind)
	}
	if math.Abs(m.Orb-4) > 1e-9 {
		t.Fatalf("orb = %v, want 4", m.Orb)
	}
}

func TestDetectAcrossWraparound(t *testing.T) {
	m, ok := Detect(355, 2, models.DefaultAspectConfig())
	if !ok || m.Kind != models.Conjunction {
		t.Fatalf("expected conjunction across 0, got %+v ok=%v", m, ok)
	}
	if math.Abs(m.Separation-7) > 1e-9 {
		t.Fatalf("separation = %v, want 7", m.Separation)
	}
}

func TestDetectWraparoundOutsideOrb(t *testing.T) {
	// 355 and 5 sit 10 degrees apart, beyond the default conjunction orb of 8.
	if m, ok := Detect(355, 5, models.DefaultAspectConfig()); ok {
		t.Fatalf("expected no aspect at separation 10, got %+v", m)
	}
}

func TestDetectSymmetric(t *testing.T) {
	cfg := models.DefaultAspectConfig()
	cases := [][2]float64{{0, 62}, {10, 101}, {300, 65}, {355, 172}}
	for _, c := range cases {
		ab, okAB := Detect(c[0], c[1], cfg)
		ba, okBA := Detect(c[1], c[0], cfg)
		if okAB != okBA || ab != ba {
			t.Fatalf("Detect(%v,%v)=%+v/%v but Detect(%v,%v)=%+v/%v",
				c[0], c[1], ab, okAB, c[1], c[0], ba, okBA)
		}
	}
}

func TestDetectNoAspect(t *testing.T) {
	if m, ok := Detect(0, 40, models.DefaultAspectConfig()); ok {
		t.Fatalf("expected no aspect at 40 deg, got %+v", m)
	}
}

func TestDetectTieBreakSmallestDeviation(t *testing.T) {
	// orbs wide enough that 75 deg matches both sextile (dev 15) and square
	// (dev 15): deviations tie, the tighter-orb sextile must win
	cfg := models.AspectConfig{models.Sextile: 15, models.Square: 16}
	m, ok := Detect(0, 75, cfg)
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Kind != models.Sextile {
		t.Fatalf("kind = %s, want sextile (tighter orb wins the tie)", m.Kind)
	}

	// at 74 deg the sextile deviation (14) is strictly smaller
	m, ok = Detect(0, 74, cfg)
	if !ok || m.Kind != models.Sextile {
		t.Fatalf("kind = %s ok=%v, want sextile by smallest deviation", m.Kind, ok)
	}
	// at 80 deg the square deviation (10) beats the sextile's (20)
	cfg = models.AspectConfig{models.Sextile: 25, models.Square: 25}
	m, ok = Detect(0, 80, cfg)
	if !ok || m.Kind != models.Square {
		t.Fatalf("kind = %s ok=%v, want square by smallest deviation", m.Kind, ok)
	}
}

func TestDetectDisabledKind(t *testing.T) {
	cfg := models.AspectConfig{models.Square: 7}
	if m, ok := Detect(0, 3, cfg); ok {
		t.Fatalf("conjunction should be disabled, got %+v", m)
	}
}

func TestClassifyApplying(t *testing.T) {
	// faster body behind the slower one, closing a conjunction
	if p := Classify(10, 1.2, 15, 0.1, 0); p != models.Applying {
		t.Fatalf("phase = %s, want applying", p)
	}
	// past exact and pulling away
	if p := Classify(16, 1.2, 15, 0.1, 0); p != models.Separating {
		t.Fatalf("phase = %s, want separating", p)
	}
}

func TestClassifyStationary(t *testing.T) {
	if p := Classify(10, 0, 130, 0, 120); p != models.Exact {
		t.Fatalf("phase = %s, want exact", p)
	}
}

func testPositions(lons ...float64) []models.CelestialPosition {
	ps := make([]models.CelestialPosition, len(lons))
	for i, lon := range lons {
		ps[i] = models.CelestialPosition{Body: models.Body(i), Longitude: lon, Speed: 0.5}
	}
	return ps
}

func TestNatalAspectsPairsOnce(t *testing.T) {
	// three bodies in mutual conjunction: exactly 3 unordered pairs
	got := NatalAspects(testPositions(10, 12, 14), models.DefaultAspectConfig())
	if len(got) != 3 {
		t.Fatalf("aspect count = %d, want 3", len(got))
	}
	for _, a := range got {
		if a.Body1 == a.Body2 {
			t.Fatalf("self-pair leaked: %+v", a)
		}
		if a.Orb > models.DefaultAspectConfig()[a.Kind] {
			t.Fatalf("orb %v exceeds configured maximum for %s", a.Orb, a.Kind)
		}
	}
}

func TestCrossAspectsIncludesSameBody(t *testing.T) {
	first := testPositions(10, 100)
	second := testPositions(10, 100)
	got := CrossAspects(first, second, models.DefaultAspectConfig())
	// pairs: (0,0) conj, (0,1) square, (1,0) square, (1,1) conj
	if len(got) != 4 {
		t.Fatalf("aspect count = %d, want 4", len(got))
	}
	sameBody := 0
	for _, a := range got {
		if a.Body1 == a.Body2 {
			sameBody++
			if a.Kind != models.Conjunction || a.Orb != 0 {
				t.Fatalf("same-body pair should be an exact conjunction, got %+v", a)
			}
		}
	}
	if sameBody != 2 {
		t.Fatalf("same-body aspects = %d, want 2", sameBody)
	}
}
