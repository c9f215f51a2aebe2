package usecase

import (
	"context"
	"testing"
	"time"

	"AstroServe/internal/domain/models"
)

func TestSynastryIdenticalSubjects(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{baseLon: 5, ascendant: 100})
	cmp := NewComparator(asm, noopMetrics{})

	spec, err := asm.Resolve(birthData())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	report, err := cmp.Synastry(context.Background(), spec, spec)
	if err != nil {
		t.Fatalf("Synastry: %v", err)
	}

	// Same sky against itself: every body forms an exact conjunction with
	// its own counterpart.
	for _, body := range models.Bodies() {
		found := false
		for _, a := range report.Aspects {
			if a.Body1 == body && a.Body2 == body {
				if a.Kind != models.Conjunction || a.Orb != 0 {
					t.Fatalf("%s self-pair: got %s orb %v, want exact conjunction", body, a.Kind, a.Orb)
				}
				found = true
			}
		}
		if !found {
			t.Fatalf("missing self-pair conjunction for %s", body)
		}
	}
	if report.Chart1.Subject != "Maria Silva" || report.Chart2.Subject != "Maria Silva" {
		t.Fatalf("subjects not carried through: %q / %q", report.Chart1.Subject, report.Chart2.Subject)
	}
}

func TestSynastryCrossGridDirection(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{baseLon: 0, ascendant: 100})
	cmp := NewComparator(asm, noopMetrics{})

	spec1, _ := asm.Resolve(birthData())
	req2 := birthData()
	req2.Name = "Joao Santos"
	spec2, _ := asm.Resolve(req2)

	report, err := cmp.Synastry(context.Background(), spec1, spec2)
	if err != nil {
		t.Fatalf("Synastry: %v", err)
	}
	for _, a := range report.Aspects {
		if a.Chart1 != "Maria Silva" || a.Chart2 != "Joao Santos" {
			t.Fatalf("aspect owners %q/%q, want person1/person2 order", a.Chart1, a.Chart2)
		}
	}
}

func TestCompositeIdenticalSubjects(t *testing.T) {
	fake := &fakeEphemeris{baseLon: 5, ascendant: 100}
	asm := newTestAssembler(fake)
	cmp := NewComparator(asm, noopMetrics{})

	spec, _ := asm.Resolve(birthData())
	composite, err := cmp.Composite(context.Background(), spec, spec)
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}

	// Midpoint of a chart with itself reproduces the chart.
	natal, _ := asm.Assemble(context.Background(), spec)
	for i, p := range composite.Positions {
		if p.Longitude != natal.Positions[i].Longitude {
			t.Fatalf("%s composite longitude %v, want natal %v", p.Body, p.Longitude, natal.Positions[i].Longitude)
		}
		if p.House != natal.Positions[i].House {
			t.Fatalf("%s composite house %d, want natal %d", p.Body, p.House, natal.Positions[i].House)
		}
	}
	if composite.Ascendant.Longitude != natal.Ascendant.Longitude {
		t.Fatalf("composite ascendant %v, want %v", composite.Ascendant.Longitude, natal.Ascendant.Longitude)
	}
	if len(composite.Houses) != 12 {
		t.Fatalf("composite has %d houses", len(composite.Houses))
	}
}

func TestCompositeMidpointsDistinctSubjects(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{baseLon: 0, ascendant: 100})
	cmp := NewComparator(asm, noopMetrics{})

	spec1, _ := asm.Resolve(birthData())
	spec2 := spec1
	spec2.Subject = "Joao Santos"

	composite, err := cmp.Composite(context.Background(), spec1, spec2)
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	if composite.Subject1 != "Maria Silva" || composite.Subject2 != "Joao Santos" {
		t.Fatalf("subjects = %q/%q", composite.Subject1, composite.Subject2)
	}
	if len(composite.Positions) != models.BodyCount {
		t.Fatalf("got %d composite positions", len(composite.Positions))
	}
}

func TestTransitsUnplacedPositions(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{baseLon: 5, ascendant: 100})
	cmp := NewComparator(asm, noopMetrics{})

	spec, _ := asm.Resolve(birthData())
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	report, err := cmp.Transits(context.Background(), spec, at)
	if err != nil {
		t.Fatalf("Transits: %v", err)
	}
	if !report.Timestamp.Equal(at) {
		t.Fatalf("timestamp = %v, want %v", report.Timestamp, at)
	}
	for _, p := range report.Positions {
		if p.House != 0 {
			t.Fatalf("transiting %s carries house %d, want unplaced", p.Body, p.House)
		}
	}
	for _, a := range report.Aspects {
		if a.Chart1 != "transit" || a.Chart2 != "Maria Silva" {
			t.Fatalf("transit aspect owners %q/%q", a.Chart1, a.Chart2)
		}
	}
}

func TestTransitsEphemerisFailure(t *testing.T) {
	asm := newTestAssembler(&fakeEphemeris{err: models.NewEphemerisUnavailable("out of range", nil)})
	cmp := NewComparator(asm, noopMetrics{})
	spec, _ := asm.Resolve(birthData())
	_, err := cmp.Transits(context.Background(), spec, time.Now())
	if models.KindOf(err) != models.KindEphemerisUnavailable {
		t.Fatalf("expected ephemeris unavailable, got %v", err)
	}
}
