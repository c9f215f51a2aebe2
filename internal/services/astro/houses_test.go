package astro

import (
	"testing"

	"AstroServe/internal/domain/models"
)

func equalCusps(asc float64) [12]float64 {
	var cusps [12]float64
	for i := 0; i < 12; i++ {
		cusps[i] = Normalize(asc + float64(i)*30)
	}
	return cusps
}

func TestPlaceEqualHouses(t *testing.T) {
	cusps := equalCusps(0)
	cases := []struct {
		lon   float64
		house int
	}{
		{0, 1},
		{29.999, 1},
		{30, 2},
		{185, 7},
		{359.5, 12},
	}
	for _, c := range cases {
		got, err := Place(c.lon, cusps)
		if err != nil {
			t.Fatalf("Place(%v): %v", c.lon, err)
		}
		if got != c.house {
			t.Fatalf("Place(%v) = %d, want %d", c.lon, got, c.house)
		}
	}
}

func TestPlaceWraparoundArc(t *testing.T) {
	// asc at 30: house 11 spans 330..0 across Aries, house 12 spans 0..30
	cusps := equalCusps(30)
	got, err := Place(15, cusps)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got != 12 {
		t.Fatalf("Place(15) = %d, want 12", got)
	}
}

func TestPlaceOnCusp(t *testing.T) {
	// a longitude exactly on a cusp belongs to the house that cusp opens
	cusps := equalCusps(10)
	got, err := Place(40, cusps)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got != 2 {
		t.Fatalf("Place(40) = %d, want 2", got)
	}
}

func TestPlaceUnevenCusps(t *testing.T) {
	// Placidus-like uneven arcs crossing 0 Aries
	cusps := [12]float64{310, 345, 15, 40, 62, 85, 130, 165, 195, 220, 242, 265}
	got, err := Place(350, cusps)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got != 2 {
		t.Fatalf("Place(350) = %d, want 2", got)
	}
	got, err = Place(5, cusps)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got != 2 {
		t.Fatalf("Place(5) = %d, want 2", got)
	}
}

func TestPlaceRejectsNonMonotonicCusps(t *testing.T) {
	cusps := [12]float64{0, 60, 30, 90, 120, 150, 180, 210, 240, 270, 300, 330}
	_, err := Place(45, cusps)
	if err == nil {
		t.Fatalf("expected error for non-monotonic cusps")
	}
	if models.KindOf(err) != models.KindInvalidHouseData {
		t.Fatalf("unexpected error kind: %v", err)
	}
}

func TestPlaceRejectsCoincidingCusps(t *testing.T) {
	cusps := equalCusps(0)
	cusps[5] = cusps[4]
	if _, err := Place(45, cusps); models.KindOf(err) != models.KindInvalidHouseData {
		t.Fatalf("expected invalid house data, got %v", err)
	}
}
