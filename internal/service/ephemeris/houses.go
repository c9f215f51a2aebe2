package ephemeris

import (
	"fmt"
	"math"

	"AstroServe/internal/domain/models"
	"AstroServe/internal/services/astro"
)

// obliquity returns the mean obliquity of the ecliptic in degrees at T
// centuries from J2000.
func obliquity(t float64) float64 {
	return 23.43929111 - 0.013004167*t - 1.64e-7*t*t
}

// ramc returns the right ascension of the midheaven (local sidereal time in
// degrees) for a Julian day and geographic longitude (east positive).
func ramc(jd, geoLon float64) float64 {
	t := centuries(jd)
	gmst := 280.46061837 + 360.98564736629*(jd-j2000) + 0.000387933*t*t
	return astro.Normalize(gmst + geoLon)
}

// mcLongitude converts the RAMC to the ecliptic longitude culminating on the
// meridian.
func mcLongitude(ramcDeg, eps float64) float64 {
	r := ramcDeg * degToRad
	e := eps * degToRad
	return astro.Normalize(math.Atan2(math.Sin(r), math.Cos(r)*math.Cos(e)) / degToRad)
}

// ascendantAt returns the ecliptic degree rising in the east for a given RAMC
// and latitude. This is also the kernel of the quadrant house systems, which
// reuse it with substitute RAMCs and pole latitudes.
func ascendantAt(ramcDeg, lat, eps float64) float64 {
	r := ramcDeg * degToRad
	f := lat * degToRad
	e := eps * degToRad
	lon := math.Atan2(math.Cos(r), -(math.Sin(r)*math.Cos(e) + math.Tan(f)*math.Sin(e)))
	return astro.Normalize(lon / degToRad)
}

// raToEcliptic returns the ecliptic longitude of the equator point with right
// ascension ra.
func raToEcliptic(ra, eps float64) float64 {
	r := ra * degToRad
	e := eps * degToRad
	return astro.Normalize(math.Atan2(math.Sin(r), math.Cos(r)*math.Cos(e)) / degToRad)
}

// declinationOf returns the declination of an ecliptic point (zero latitude).
func declinationOf(lon, eps float64) float64 {
	return math.Asin(math.Sin(eps*degToRad)*math.Sin(lon*degToRad)) / degToRad
}

// cusps dispatches to the strategy for the requested house system. asc and mc
// are the already-computed chart angles.
func cusps(hs models.HouseSystem, ramcDeg, lat, eps, asc, mc float64) ([12]float64, error) {
	switch hs {
	case models.Equal:
		return equalCusps(asc), nil
	case models.WholeSign:
		return wholeSignCusps(asc), nil
	case models.Porphyrius:
		return porphyryCusps(asc, mc), nil
	case models.Regiomontanus:
		return regiomontanusCusps(ramcDeg, lat, eps, asc, mc), nil
	case models.Campanus:
		return campanusCusps(ramcDeg, lat, eps, asc, mc), nil
	case models.Koch:
		return kochCusps(ramcDeg, lat, eps, mc)
	case models.Placidus:
		return placidusCusps(ramcDeg, lat, eps, asc, mc)
	default:
		return [12]float64{}, models.NewInvalidInput("house_system", fmt.Sprintf("unsupported house system %q", hs))
	}
}

func equalCusps(asc float64) [12]float64 {
	var c [12]float64
	for i := 0; i < 12; i++ {
		c[i] = astro.Normalize(asc + float64(i)*30)
	}
	return c
}

func wholeSignCusps(asc float64) [12]float64 {
	start := math.Floor(astro.Normalize(asc)/30) * 30
	var c [12]float64
	for i := 0; i < 12; i++ {
		c[i] = astro.Normalize(start + float64(i)*30)
	}
	return c
}

// porphyryCusps trisects each quadrant between the four angles.
func porphyryCusps(asc, mc float64) [12]float64 {
	var c [12]float64
	ic := astro.Normalize(mc + 180)
	quadAscIC := astro.Normalize(ic - asc)    // houses 1-3
	quadMCAsc := astro.Normalize(asc - mc)    // houses 10-12

	c[0] = astro.Normalize(asc)
	c[1] = astro.Normalize(asc + quadAscIC/3)
	c[2] = astro.Normalize(asc + 2*quadAscIC/3)
	c[3] = ic
	c[9] = astro.Normalize(mc)
	c[10] = astro.Normalize(mc + quadMCAsc/3)
	c[11] = astro.Normalize(mc + 2*quadMCAsc/3)
	for i := 4; i <= 8; i++ {
		c[i] = astro.Normalize(c[(i+6)%12] + 180)
	}
	return c
}

// assembleQuadrant fills houses 4-9 of a quadrant system by opposition: cusp 4
// opposes the MC, 5-9 oppose 11, 12, 1, 2, 3.
func assembleQuadrant(asc, mc, c11, c12, c2, c3 float64) [12]float64 {
	var c [12]float64
	c[0] = astro.Normalize(asc)
	c[1] = astro.Normalize(c2)
	c[2] = astro.Normalize(c3)
	c[9] = astro.Normalize(mc)
	c[10] = astro.Normalize(c11)
	c[11] = astro.Normalize(c12)
	for i := 3; i <= 8; i++ {
		c[i] = astro.Normalize(c[(i+6)%12] + 180)
	}
	return c
}

// regiomontanusCusps projects equal 30-degree arcs of the celestial equator
// through circles anchored at the horizon's north and south points.
func regiomontanusCusps(ramcDeg, lat, eps, asc, mc float64) [12]float64 {
	cusp := func(h float64) float64 {
		pole := math.Atan(math.Tan(lat*degToRad)*math.Sin(h*degToRad)) / degToRad
		return ascendantAt(ramcDeg+h-90, pole, eps)
	}
	return assembleQuadrant(asc, mc, cusp(30), cusp(60), cusp(120), cusp(150))
}

// campanusCusps divides the prime vertical into equal arcs.
func campanusCusps(ramcDeg, lat, eps, asc, mc float64) [12]float64 {
	f := lat * degToRad
	cusp := func(h float64) float64 {
		hr := h * degToRad
		pole := math.Asin(math.Sin(f)*math.Sin(hr)) / degToRad
		ra := ramcDeg + 90 - math.Atan2(math.Cos(hr), math.Sin(hr)*math.Cos(f))/degToRad
		return ascendantAt(ra-90, pole, eps)
	}
	return assembleQuadrant(asc, mc, cusp(30), cusp(60), cusp(120), cusp(150))
}

// kochCusps offsets the equatorial divisions by thirds of the MC degree's
// ascensional difference. Fails inside the polar circles where the culminating
// degree never rises.
func kochCusps(ramcDeg, lat, eps, mc float64) ([12]float64, error) {
	decMC := declinationOf(mc, eps)
	x := math.Tan(lat*degToRad) * math.Tan(decMC*degToRad)
	if math.Abs(x) >= 1 {
		return [12]float64{}, models.NewEphemerisUnavailable(
			fmt.Sprintf("koch houses undefined at latitude %.2f", lat), nil)
	}
	ad := math.Asin(x) / degToRad

	asc := ascendantAt(ramcDeg, lat, eps)
	c11 := ascendantAt(ramcDeg+30-2*ad/3-90, lat, eps)
	c12 := ascendantAt(ramcDeg+60-ad/3-90, lat, eps)
	c2 := ascendantAt(ramcDeg+120+ad/3-90, lat, eps)
	c3 := ascendantAt(ramcDeg+150+2*ad/3-90, lat, eps)
	return assembleQuadrant(asc, mc, c11, c12, c2, c3), nil
}

// placidusCusps finds the degrees whose hour angles trisect their own diurnal
// or nocturnal semi-arcs, by fixed-point iteration on the cusp's declination.
func placidusCusps(ramcDeg, lat, eps, asc, mc float64) ([12]float64, error) {
	tanLat := math.Tan(lat * degToRad)

	// f is the semi-arc fraction, nocturnal selects the arc below the horizon
	solve := func(offset, f float64, nocturnal bool) (float64, error) {
		lon := raToEcliptic(ramcDeg+offset, eps)
		for n := 0; n < 30; n++ {
			dec := declinationOf(lon, eps)
			x := tanLat * math.Tan(dec*degToRad)
			if math.Abs(x) >= 1 {
				return 0, models.NewEphemerisUnavailable(
					fmt.Sprintf("placidus houses undefined at latitude %.2f", lat), nil)
			}
			ad := math.Asin(x) / degToRad
			var ra float64
			if nocturnal {
				ra = ramcDeg + 180 - f*(90-ad)
			} else {
				ra = ramcDeg + f*(90+ad)
			}
			next := raToEcliptic(ra, eps)
			if astro.Separation(next, lon) < 1e-7 {
				return next, nil
			}
			lon = next
		}
		return lon, nil
	}

	c11, err := solve(30, 1.0/3, false)
	if err != nil {
		return [12]float64{}, err
	}
	c12, err := solve(60, 2.0/3, false)
	if err != nil {
		return [12]float64{}, err
	}
	c2, err := solve(120, 2.0/3, true)
	if err != nil {
		return [12]float64{}, err
	}
	c3, err := solve(150, 1.0/3, true)
	if err != nil {
		return [12]float64{}, err
	}
	return assembleQuadrant(asc, mc, c11, c12, c2, c3), nil
}
