package ephemeris

import (
	"math"

	"AstroServe/internal/domain/models"
)

// Keplerian mean elements and centennial rates for the major planets,
// heliocentric ecliptic frame of J2000, valid 1800-2050 (JPL approximate
// elements, Standish). Angles in degrees, semi-major axis in AU.
type elements struct {
	a, aDot         float64 // semi-major axis
	e, eDot         float64 // eccentricity
	i, iDot         float64 // inclination
	l, lDot         float64 // mean longitude
	peri, periDot   float64 // longitude of perihelion
	node, nodeDot   float64 // longitude of ascending node
}

var planetElements = map[models.Body]elements{
	models.Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	models.Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	models.Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	models.Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	models.Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	models.Uranus: {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
		313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	models.Neptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
		-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
	models.Pluto: {39.48211675, -0.00031596, 0.24882730, 0.00005170, 17.14001206, 0.00004818,
		238.92903833, 145.20780515, 224.06891629, -0.04062942, 110.30393684, -0.01183482},
}

// earthMoonBary drives both the Sun's geocentric position and the
// heliocentric-to-geocentric conversion for the planets.
var earthMoonBary = elements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
	100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}

const degToRad = math.Pi / 180

// solveKepler iterates E - e*sin(E) = M (radians) to the fixed tolerance used
// by the JPL approximation notes.
func solveKepler(m, e float64) float64 {
	ecc := e * 180 / math.Pi
	mDeg := m / degToRad
	eDeg := mDeg + ecc*math.Sin(m)
	for n := 0; n < 20; n++ {
		dm := mDeg - (eDeg - ecc*math.Sin(eDeg*degToRad))
		de := dm / (1 - e*math.Cos(eDeg*degToRad))
		eDeg += de
		if math.Abs(de) < 1e-8 {
			break
		}
	}
	return eDeg * degToRad
}

// heliocentric returns the J2000 ecliptic position vector (AU) for a body's
// elements at T Julian centuries from J2000.
func (el elements) heliocentric(t float64) (x, y, z float64) {
	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	inc := (el.i + el.iDot*t) * degToRad
	l := el.l + el.lDot*t
	peri := el.peri + el.periDot*t
	node := el.node + el.nodeDot*t

	omega := (peri - node) * degToRad
	nodeR := node * degToRad
	m := math.Mod(l-peri, 360) * degToRad

	ecc := solveKepler(m, e)
	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cw, sw := math.Cos(omega), math.Sin(omega)
	co, so := math.Cos(nodeR), math.Sin(nodeR)
	ci, si := math.Cos(inc), math.Sin(inc)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// geocentricEcliptic returns the geocentric ecliptic longitude and latitude
// (degrees) of a planet at T centuries, by differencing its heliocentric
// vector with Earth's.
func geocentricEcliptic(body models.Body, t float64) (lon, lat float64) {
	ex, ey, ez := earthMoonBary.heliocentric(t)
	if body == models.Sun {
		return eclipticOf(-ex, -ey, -ez)
	}
	px, py, pz := planetElements[body].heliocentric(t)
	return eclipticOf(px-ex, py-ey, pz-ez)
}

func eclipticOf(x, y, z float64) (lon, lat float64) {
	lon = math.Atan2(y, x) / degToRad
	lat = math.Atan2(z, math.Hypot(x, y)) / degToRad
	return lon, lat
}

// moonPosition returns the geocentric ecliptic longitude and latitude of the
// Moon (degrees) from the principal terms of the lunar theory. Good to a few
// arcminutes, ample for sign, house and orb work.
func moonPosition(t float64) (lon, lat float64) {
	lp := 218.3164477 + 481267.88123421*t // mean longitude
	d := 297.8501921 + 445267.1114034*t   // mean elongation
	ms := 357.5291092 + 35999.0502909*t   // sun mean anomaly
	mm := 134.9633964 + 477198.8675055*t  // moon mean anomaly
	f := 93.2720950 + 483202.0175233*t    // argument of latitude

	sin := func(deg float64) float64 { return math.Sin(deg * degToRad) }

	lon = lp +
		6.288774*sin(mm) +
		1.274027*sin(2*d-mm) +
		0.658314*sin(2*d) +
		0.213618*sin(2*mm) -
		0.185116*sin(ms) -
		0.114332*sin(2*f) +
		0.058793*sin(2*d-2*mm) +
		0.057066*sin(2*d-ms-mm) +
		0.053322*sin(2*d+mm) +
		0.045758*sin(2*d-ms) -
		0.040923*sin(ms-mm) -
		0.034720*sin(d) -
		0.030383*sin(ms+mm)

	lat = 5.128122*sin(f) +
		0.280602*sin(mm+f) +
		0.277693*sin(mm-f) +
		0.173237*sin(2*d-f) +
		0.055413*sin(2*d+f-mm) +
		0.046271*sin(2*d-f-mm)

	return lon, lat
}
