package astro

import "math"

// Normalize reduces an angle in degrees to [0,360).
func Normalize(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	// tiny negatives can round up to exactly 360
	if m >= 360 {
		m -= 360
	}
	return m
}

// Separation is the shortest angular distance between two longitudes, [0,180].
func Separation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
