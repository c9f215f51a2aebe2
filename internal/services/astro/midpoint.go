package astro

import "math"

// Midpoint returns the shorter-arc midpoint of two ecliptic longitudes. The
// naive average lands on the longer arc whenever the normalized longitudes
// differ by more than 180°, so that case is rotated by half a circle.
func Midpoint(a, b float64) float64 {
	a, b = Normalize(a), Normalize(b)
	mid := (a + b) / 2
	if math.Abs(a-b) > 180 {
		mid += 180
	}
	return Normalize(mid)
}
