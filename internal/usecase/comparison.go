package usecase

import (
	"context"
	"fmt"
	"time"

	"AstroServe/internal/domain/models"
	"AstroServe/internal/domain/repository"
	"AstroServe/internal/services/astro"
)

// Comparator derives relationships between two charts: synastry cross-aspects,
// composite midpoint charts and transit contacts against a natal chart.
type Comparator struct {
	asm     *Assembler
	metrics repository.Metrics
}

func NewComparator(asm *Assembler, metrics repository.Metrics) *Comparator {
	return &Comparator{asm: asm, metrics: metrics}
}

// Synastry assembles both charts independently and crosses every body of the
// first against every body of the second, same-body pairs included. Houses
// stay each subject's own; no re-placement happens.
func (c *Comparator) Synastry(ctx context.Context, spec1, spec2 ChartSpec) (*models.SynastryReport, error) {
	chart1, err := c.asm.Assemble(ctx, spec1)
	if err != nil {
		return nil, fmt.Errorf("chart for %s: %w", spec1.Subject, err)
	}
	chart2, err := c.asm.Assemble(ctx, spec2)
	if err != nil {
		return nil, fmt.Errorf("chart for %s: %w", spec2.Subject, err)
	}

	cross := astro.CrossAspects(chart1.Positions, chart2.Positions, spec1.Orbs)
	c.metrics.RecordChart("synastry")
	c.metrics.RecordAspects("synastry", len(cross))

	return &models.SynastryReport{
		Chart1:  chart1,
		Chart2:  chart2,
		Aspects: annotate(cross, chart1.Subject, chart2.Subject),
	}, nil
}

// Composite builds the relationship chart from shorter-arc midpoints of the
// two subjects' bodies, angles and house cusps, then places houses and
// detects aspects on the midpoint set exactly as for a natal chart.
func (c *Comparator) Composite(ctx context.Context, spec1, spec2 ChartSpec) (*models.CompositeChart, error) {
	chart1, err := c.asm.Assemble(ctx, spec1)
	if err != nil {
		return nil, fmt.Errorf("chart for %s: %w", spec1.Subject, err)
	}
	chart2, err := c.asm.Assemble(ctx, spec2)
	if err != nil {
		return nil, fmt.Errorf("chart for %s: %w", spec2.Subject, err)
	}

	var cusps [12]float64
	for i := range cusps {
		cusps[i] = astro.Midpoint(chart1.Houses[i].Longitude, chart2.Houses[i].Longitude)
	}

	positions := make([]models.CelestialPosition, 0, models.BodyCount)
	for _, body := range models.Bodies() {
		p1, p2 := chart1.Position(body), chart2.Position(body)
		if p1 == nil || p2 == nil {
			return nil, models.NewEphemerisUnavailable(fmt.Sprintf("missing %s in source chart", body), nil)
		}
		mid := astro.Midpoint(p1.Longitude, p2.Longitude)
		house, err := astro.Place(mid, cusps)
		if err != nil {
			c.metrics.RecordError(string(models.KindInvalidHouseData))
			return nil, fmt.Errorf("place composite %s: %w", body, err)
		}
		sign, degree := astro.SignDegree(mid)
		positions = append(positions, models.CelestialPosition{
			Body:      body,
			Sign:      sign,
			Degree:    degree,
			Longitude: mid,
			House:     house,
		})
	}

	aspects := astro.NatalAspects(positions, spec1.Orbs)
	c.metrics.RecordChart("composite")
	c.metrics.RecordAspects("composite", len(aspects))

	return &models.CompositeChart{
		Subject1:  chart1.Subject,
		Subject2:  chart2.Subject,
		Positions: positions,
		Ascendant: anglePoint("Ascendant", astro.Midpoint(chart1.Ascendant.Longitude, chart2.Ascendant.Longitude), 1),
		Midheaven: anglePoint("Midheaven", astro.Midpoint(chart1.Midheaven.Longitude, chart2.Midheaven.Longitude), 10),
		Houses:    cuspList(cusps),
		Aspects:   aspects,
	}, nil
}

// Transits crosses the sky at one instant against a natal chart. Transiting
// positions are reported unplaced (house 0) since they have no birth location.
func (c *Comparator) Transits(ctx context.Context, natal ChartSpec, at time.Time) (*models.TransitReport, error) {
	chart, err := c.asm.Assemble(ctx, natal)
	if err != nil {
		return nil, fmt.Errorf("natal chart: %w", err)
	}

	transiting, err := c.asm.Positions(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("transit positions: %w", err)
	}

	cross := astro.CrossAspects(transiting, chart.Positions, natal.Orbs)
	c.metrics.RecordChart("transits")
	c.metrics.RecordAspects("transits", len(cross))

	return &models.TransitReport{
		Natal:     chart,
		Timestamp: at.UTC(),
		Positions: transiting,
		Aspects:   annotate(cross, "transit", chart.Subject),
	}, nil
}

func annotate(aspects []models.Aspect, owner1, owner2 string) []models.SynastryAspect {
	out := make([]models.SynastryAspect, len(aspects))
	for i, a := range aspects {
		out[i] = models.SynastryAspect{Aspect: a, Chart1: owner1, Chart2: owner2}
	}
	return out
}
