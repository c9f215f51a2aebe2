package astro

import (
	"math"
	"testing"
)

func TestMidpointIdentity(t *testing.T) {
	for _, lon := range []float64{0, 45.5, 180, 359.9} {
		if got := Midpoint(lon, lon); got != lon {
			t.Fatalf("Midpoint(%v,%v) = %v, want %v", lon, lon, got, lon)
		}
	}
}

func TestMidpointShorterArc(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{10, 350, 0},   // crosses 0 Aries, not 180
		{350, 10, 0},   // order must not matter
		{10, 20, 15},   // plain average on the short arc
		{0, 180, 90},   // antipodal, either midpoint valid; plain average used
		{100, 140, 120},
		{200, 160, 180},
		{300, 40, 350},
	}
	for _, c := range cases {
		got := Midpoint(c.a, c.b)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("Midpoint(%v,%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestMidpointInRange(t *testing.T) {
	for a := 0.0; a < 360; a += 17 {
		for b := 0.0; b < 360; b += 23 {
			got := Midpoint(a, b)
			if got < 0 || got >= 360 {
				t.Fatalf("Midpoint(%v,%v) = %v, outside [0,360)", a, b, got)
			}
		}
	}
}
