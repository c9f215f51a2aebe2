package astro

import (
	"math"
	"testing"
)

func TestNormalizeRange(t *testing.T) {
	for _, in := range []float64{0, 359.9999, 360, 720.5, -1, -360, -725, 123.456, -1e-15} {
		got := Normalize(in)
		if got < 0 || got >= 360 {
			t.Fatalf("Normalize(%v) = %v, outside [0,360)", in, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []float64{-450, -90, 0, 45, 359.5, 361, 1000} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %v: %v != %v", in, twice, once)
		}
	}
}

func TestNormalizeNegative(t *testing.T) {
	if got := Normalize(-90); got != 270 {
		t.Fatalf("Normalize(-90) = %v, want 270", got)
	}
	if got := Normalize(-360); got != 0 {
		t.Fatalf("Normalize(-360) = %v, want 0", got)
	}
}

func TestSeparationSymmetric(t *testing.T) {
	cases := [][2]float64{{0, 0}, {10, 350}, {90, 270}, {359, 1}, {123.4, 300.2}}
	for _, c := range cases {
		ab := Separation(c[0], c[1])
		ba := Separation(c[1], c[0])
		if ab != ba {
			t.Fatalf("Separation(%v,%v)=%v but Separation(%v,%v)=%v", c[0], c[1], ab, c[1], c[0], ba)
		}
		if ab < 0 || ab > 180 {
			t.Fatalf("Separation(%v,%v)=%v, outside [0,180]", c[0], c[1], ab)
		}
	}
}

func TestSeparationWraparound(t *testing.T) {
	if got := Separation(10, 350); math.Abs(got-20) > 1e-9 {
		t.Fatalf("Separation(10,350) = %v, want 20", got)
	}
	if got := Separation(0, 180); got != 180 {
		t.Fatalf("Separation(0,180) = %v, want 180", got)
	}
}

func TestSignDegree(t *testing.T) {
	cases := []struct {
		lon    float64
		sign   int
		degree float64
	}{
		{0, 0, 0},
		{15.5, 0, 15.5},
		{30, 1, 0},
		{123.4, 4, 3.4},
		{359.9, 11, 29.9},
		{-10, 11, 20}, // normalized before classification
	}
	for _, c := range cases {
		sign, deg := SignDegree(c.lon)
		if int(sign) != c.sign || math.Abs(deg-c.degree) > 1e-9 {
			t.Fatalf("SignDegree(%v) = (%d, %v), want (%d, %v)", c.lon, sign, deg, c.sign, c.degree)
		}
	}
}
