package astro

import (
	"math"

	"AstroServe/internal/domain/models"
)

// stationarySpeed is the |degrees/day| below which a body counts as standing
// still for applying/separating classification.
const stationarySpeed = 1e-6

// Match is the best aspect found between two longitudes, if any.
type Match struct {
	Kind       models.AspectKind
	Separation float64
	Orb        float64 // deviation from the exact angle actually consumed
}

// Detect evaluates one pair of longitudes against every configured aspect
// kind. When several kinds fall within orb (possible only with overlapping orb
// ranges at boundary angles) the smallest deviation wins; on a deviation tie
// the kind with the tighter orb threshold wins.
func Detect(lonA, lonB float64, cfg models.AspectConfig) (Match, bool) {
	sep := Separation(lonA, lonB)

	var best Match
	bestMaxOrb := 0.0
	found := false
	for _, kind := range models.AspectKinds() {
		maxOrb, ok := cfg[kind]
		if !ok || maxOrb <= 0 {
			continue
		}
		dev := math.Abs(sep - models.AspectAngles[kind])
		if dev > maxOrb {
			continue
		}
		if !found || dev < best.Orb || (dev == best.Orb && maxOrb < bestMaxOrb) {
			best = Match{Kind: kind, Separation: sep, Orb: dev}
			bestMaxOrb = maxOrb
			found = true
		}
	}
	return best, found
}

// Classify reports whether an aspect is tightening (applying) or loosening
// (separating) by comparing today's deviation from the exact angle with the
// deviation after one day of motion at current speeds. Two stationary bodies
// yield Exact.
func Classify(lonA, speedA, lonB, speedB, exactAngle float64) models.Phase {
	if math.Abs(speedA) < stationarySpeed && math.Abs(speedB) < stationarySpeed {
		return models.Exact
	}
	now := math.Abs(Separation(lonA, lonB) - exactAngle)
	next := math.Abs(Separation(lonA+speedA, lonB+speedB) - exactAngle)
	if next < now {
		return models.Applying
	}
	return models.Separating
}

// NatalAspects detects aspects among all distinct body pairs of one chart.
// Each unordered pair is evaluated once; self-pairs are excluded.
func NatalAspects(positions []models.CelestialPosition, cfg models.AspectConfig) []models.Aspect {
	aspects := make([]models.Aspect, 0)
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			a, b := positions[i], positions[j]
			if a.Body == b.Body {
				continue
			}
			m, ok := Detect(a.Longitude, b.Longitude, cfg)
			if !ok {
				continue
			}
			aspects = append(aspects, models.Aspect{
				Body1:      a.Body,
				Body2:      b.Body,
				Kind:       m.Kind,
				Separation: m.Separation,
				Orb:        m.Orb,
				Phase:      Classify(a.Longitude, a.Speed, b.Longitude, b.Speed, models.AspectAngles[m.Kind]),
			})
		}
	}
	return aspects
}

// CrossAspects detects aspects for every body of the first set against every
// body of the second, same-body pairs included (person1 Sun vs person2 Sun).
func CrossAspects(first, second []models.CelestialPosition, cfg models.AspectConfig) []models.Aspect {
	aspects := make([]models.Aspect, 0)
	for _, a := range first {
		for _, b := range second {
			m, ok := Detect(a.Longitude, b.Longitude, cfg)
			if !ok {
				continue
			}
			aspects = append(aspects, models.Aspect{
				Body1:      a.Body,
				Body2:      b.Body,
				Kind:       m.Kind,
				Separation: m.Separation,
				Orb:        m.Orb,
				Phase:      Classify(a.Longitude, a.Speed, b.Longitude, b.Speed, models.AspectAngles[m.Kind]),
			})
		}
	}
	return aspects
}
