package models

import "time"

// CelestialPosition is the computed placement of one body at one instant.
// Immutable once produced by the ephemeris engine.
type CelestialPosition struct {
	Body       Body    `json:"planet"`
	Sign       Sign    `json:"sign"`
	Degree     float64 `json:"degree"`          // degree within sign, [0,30)
	Longitude  float64 `json:"absolute_degree"` // ecliptic longitude, [0,360)
	Latitude   float64 `json:"latitude"`        // ecliptic latitude
	Speed      float64 `json:"speed"`           // degrees/day; negative while retrograde
	House      int     `json:"house"`           // 1-12, 0 when not placed
	Retrograde bool    `json:"retrograde"`
}

// HouseCusp is the start of one house arc.
type HouseCusp struct {
	House     int     `json:"house"` // 1-12, cusp 1 = Ascendant
	Sign      Sign    `json:"sign"`
	Degree    float64 `json:"degree"`
	Longitude float64 `json:"absolute_degree"`
}

// AnglePoint is a chart angle (Ascendant or Midheaven) reported in the same
// shape as a body position.
type AnglePoint struct {
	Name      string  `json:"name"`
	Sign      Sign    `json:"sign"`
	Degree    float64 `json:"degree"`
	Longitude float64 `json:"absolute_degree"`
	House     int     `json:"house"`
}

// Chart is one fully assembled natal chart. Charts are built once per request
// and never mutated afterwards; nothing outlives the response.
type Chart struct {
	Subject     string              `json:"name"`
	Timestamp   time.Time           `json:"timestamp_utc"`
	Latitude    float64             `json:"latitude"`
	Longitude   float64             `json:"longitude"`
	HouseSystem HouseSystem         `json:"house_system"`
	Positions   []CelestialPosition `json:"planets"`
	Ascendant   AnglePoint          `json:"ascendant"`
	Midheaven   AnglePoint          `json:"midheaven"`
	Houses      []HouseCusp         `json:"houses"`
	Aspects     []Aspect            `json:"aspects"`
}

// Position returns the chart's position for a body, nil if absent.
func (c *Chart) Position(b Body) *CelestialPosition {
	for i := range c.Positions {
		if c.Positions[i].Body == b {
			return &c.Positions[i]
		}
	}
	return nil
}

// CompositeChart is a Chart-like structure built from per-body shorter-arc
// midpoints of two source charts.
type CompositeChart struct {
	Subject1  string              `json:"person1_name"`
	Subject2  string              `json:"person2_name"`
	Positions []CelestialPosition `json:"planets"`
	Ascendant AnglePoint          `json:"ascendant"`
	Midheaven AnglePoint          `json:"midheaven"`
	Houses    []HouseCusp         `json:"houses"`
	Aspects   []Aspect            `json:"aspects"`
}

// SynastryAspect annotates a cross-chart aspect with chart ownership: Body1
// always belongs to the first chart, Body2 to the second.
type SynastryAspect struct {
	Aspect
	Chart1 string `json:"person1"`
	Chart2 string `json:"person2"`
}

// SynastryReport pairs two charts with their cross-aspects.
type SynastryReport struct {
	Chart1  *Chart           `json:"person1_chart"`
	Chart2  *Chart           `json:"person2_chart"`
	Aspects []SynastryAspect `json:"synastry_aspects"`
}

// TransitReport relates transiting positions at one instant to a natal chart.
type TransitReport struct {
	Natal     *Chart              `json:"natal_chart"`
	Timestamp time.Time           `json:"transit_timestamp_utc"`
	Positions []CelestialPosition `json:"transit_planets"`
	Aspects   []SynastryAspect    `json:"transit_aspects"`
}
