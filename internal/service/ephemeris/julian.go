package ephemeris

import "time"

// j2000 is the Julian day of the J2000.0 epoch.
const j2000 = 2451545.0

// julianDay converts a UTC instant to a Julian day number.
func julianDay(t time.Time) float64 {
	t = t.UTC()
	y, m := t.Year(), int(t.Month())
	d := float64(t.Day()) +
		(float64(t.Hour())+float64(t.Minute())/60+float64(t.Second())/3600+float64(t.Nanosecond())/3.6e12)/24

	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4
	return float64(int(365.25*float64(y+4716))) + float64(int(30.6001*float64(m+1))) + d + float64(b) - 1524.5
}

// centuries returns Julian centuries since J2000.0.
func centuries(jd float64) float64 {
	return (jd - j2000) / 36525
}
