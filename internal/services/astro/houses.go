package astro

import (
	"fmt"

	"AstroServe/internal/domain/models"
)

// ValidateCusps checks that the twelve cusps run around the circle exactly
// once: walking consecutive pairs, exactly one pair may cross the 360°→0°
// boundary and no arc may be empty.
func ValidateCusps(cusps [12]float64) error {
	wraps := 0
	for i := 0; i < 12; i++ {
		start := Normalize(cusps[i])
		end := Normalize(cusps[(i+1)%12])
		if start == end {
			return models.NewInvalidHouseData(fmt.Sprintf("cusp %d and %d coincide at %.4f", i+1, (i+1)%12+1, start))
		}
		if end < start {
			wraps++
		}
	}
	if wraps != 1 {
		return models.NewInvalidHouseData(fmt.Sprintf("cusps are not monotonic around the circle (%d wraparounds)", wraps))
	}
	return nil
}

// Place returns the house (1-12) whose arc contains the longitude. The arc of
// house i spans from cusp i to the next cusp in the increasing direction.
func Place(longitude float64, cusps [12]float64) (int, error) {
	if err := ValidateCusps(cusps); err != nil {
		return 0, err
	}

	lon := Normalize(longitude)
	for i := 0; i < 12; i++ {
		start := Normalize(cusps[i])
		end := Normalize(cusps[(i+1)%12])
		if start < end {
			if lon >= start && lon < end {
				return i + 1, nil
			}
		} else {
			// the one arc crossing 0° Aries
			if lon >= start || lon < end {
				return i + 1, nil
			}
		}
	}
	// unreachable once cusps validate: the arcs tile the circle
	return 0, models.NewInvalidHouseData(fmt.Sprintf("no house arc contains longitude %.4f", lon))
}
