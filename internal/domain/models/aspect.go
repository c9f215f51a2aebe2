package models

// AspectKind names one of the five major aspects.
type AspectKind string

const (
	Conjunction AspectKind = "conjunction"
	Sextile     AspectKind = "sextile"
	Square      AspectKind = "square"
	Trine       AspectKind = "trine"
	Opposition  AspectKind = "opposition"
)

// AspectAngles maps each aspect kind to its exact angle in degrees.
var AspectAngles = map[AspectKind]float64{
	Conjunction: 0,
	Sextile:     60,
	Square:      90,
	Trine:       120,
	Opposition:  180,
}

// AspectKinds returns the aspect kinds in ascending angle order.
func AspectKinds() []AspectKind {
	return []AspectKind{Conjunction, Sextile, Square, Trine, Opposition}
}

// AspectConfig maps aspect kind to its maximum orb in degrees. A zero or
// missing entry disables detection of that kind.
type AspectConfig map[AspectKind]float64

// DefaultAspectConfig returns the stock orbs used when a request carries no
// overrides: conjunction/opposition/trine 8, square 7, sextile 6.
func DefaultAspectConfig() AspectConfig {
	return AspectConfig{
		Conjunction: 8,
		Opposition:  8,
		Trine:       8,
		Square:      7,
		Sextile:     6,
	}
}

// Merge returns a copy of c with non-zero overrides applied on top.
func (c AspectConfig) Merge(overrides map[string]float64) AspectConfig {
	merged := make(AspectConfig, len(c))
	for k, v := range c {
		merged[k] = v
	}
	for name, orb := range overrides {
		if orb > 0 {
			merged[AspectKind(name)] = orb
		}
	}
	return merged
}

// Phase tells whether an aspect is tightening or loosening over time.
type Phase string

const (
	Applying   Phase = "applying"
	Separating Phase = "separating"
	// Exact marks aspects between two stationary bodies, which are neither
	// applying nor separating.
	Exact Phase = "exact"
)

// Aspect is a detected angular relationship between two bodies.
type Aspect struct {
	Body1      Body       `json:"planet1"`
	Body2      Body       `json:"planet2"`
	Kind       AspectKind `json:"aspect_type"`
	Separation float64    `json:"separation"`
	Orb        float64    `json:"orb"`
	Phase      Phase      `json:"phase"`
}
