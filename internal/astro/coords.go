// Package astro provides astronomical coordinate transformations and sky math.
package astro

import (
	"math"
	"time"
)

// j2000 is the Julian Date of the J2000.0 epoch (January 1, 2000, 12:00 UTC).
const j2000 = 2451545.0

// obliquityDeg is Earth's axial tilt used for ecliptic conversions. A fixed
// approximation, not epoch-corrected, so projected ecliptic curves stay
// consistent across all charts.
const obliquityDeg = 23.4

// JulianDate converts a UTC time to a Julian Date, fractional day included.
// Uses the truncation-based Gregorian algorithm; the caller must supply a
// plausible calendar date, there is no bounds checking.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(int(t.Month()))
	d := float64(t.Day())

	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9

	c := math.Trunc((m - 14) / 12)
	jd := d - 32075 +
		math.Trunc(1461*(y+4800+c)/4) +
		math.Trunc(367*(m-2-c*12)/12) -
		math.Trunc(3*math.Trunc((y+4900+c)/100)/4)

	return jd + (float64(t.Hour())-12)/24 +
		float64(t.Minute())/1440 + sec/86400
}

// EarthRotationAngle returns the ERA in radians for a UTC time, from the IAU
// expression ERA = 2pi*(0.7790572732640 + 1.00273781191135448*UT1) with UT1
// the Julian-date offset since J2000.0. The angle is not normalized; only its
// trigonometric functions are ever used.
func EarthRotationAngle(t time.Time) float64 {
	ut1 := JulianDate(t) - j2000
	return 2 * math.Pi * (0.7790572732640 + 1.00273781191135448*ut1)
}

// EquatorialToHorizontal converts equatorial coordinates (RA/Dec, degrees) to
// horizontal coordinates (altitude/azimuth, degrees) for a given observer.
// Azimuth is measured with a two-argument arctangent so the quadrant is always
// correct; altitude uses arcsine, valid on [-90, 90].
func EquatorialToHorizontal(raDeg, decDeg float64, obs *Observer) (altDeg, azDeg float64) {
	era := EarthRotationAngle(obs.Time())
	lat := obs.Lat()

	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	ra, dec := degToRad(raDeg), degToRad(decDeg)

	// Local hour angle
	h := -ra + obs.Lon() + era

	az := math.Atan2(math.Sin(h), math.Cos(h)*sinLat-math.Tan(dec)*cosLat)
	alt := math.Asin(math.Sin(dec)*sinLat + math.Cos(dec)*math.Cos(h)*cosLat)

	return radToDeg(alt), radToDeg(az)
}

// EquatorialToHorizontalAll converts whole RA/Dec tables at once. The observer
// frame is evaluated a single time and applied element-wise, so the result is
// identical to calling EquatorialToHorizontal per element.
func EquatorialToHorizontalAll(raDeg, decDeg []float64, obs *Observer) (altDeg, azDeg []float64) {
	era := EarthRotationAngle(obs.Time())
	lat, lon := obs.Lat(), obs.Lon()
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)

	altDeg = make([]float64, len(raDeg))
	azDeg = make([]float64, len(raDeg))
	for i := range raDeg {
		ra, dec := degToRad(raDeg[i]), degToRad(decDeg[i])
		h := -ra + lon + era
		azDeg[i] = radToDeg(math.Atan2(math.Sin(h), math.Cos(h)*sinLat-math.Tan(dec)*cosLat))
		altDeg[i] = radToDeg(math.Asin(math.Sin(dec)*sinLat + math.Cos(dec)*math.Cos(h)*cosLat))
	}
	return altDeg, azDeg
}

// EclipticToEquatorial converts ecliptic longitude/latitude to RA/Dec.
// All angles are in degrees. The rotation is about the x-axis by the fixed
// obliquity constant.
func EclipticToEquatorial(lonDeg, latDeg float64) (raDeg, decDeg float64) {
	eps := degToRad(obliquityDeg)
	cosE, sinE := math.Cos(eps), math.Sin(eps)
	lon, lat := degToRad(lonDeg), degToRad(latDeg)

	ra := math.Atan2(cosE*math.Sin(lon)-sinE*math.Tan(lat), math.Cos(lon))
	dec := math.Asin(cosE*math.Sin(lat) + sinE*math.Cos(lat)*math.Sin(lon))

	return radToDeg(ra), radToDeg(dec)
}

// EclipticToEquatorialAll is the element-wise slice form of EclipticToEquatorial.
func EclipticToEquatorialAll(lonDeg, latDeg []float64) (raDeg, decDeg []float64) {
	raDeg = make([]float64, len(lonDeg))
	decDeg = make([]float64, len(lonDeg))
	for i := range lonDeg {
		raDeg[i], decDeg[i] = EclipticToEquatorial(lonDeg[i], latDeg[i])
	}
	return raDeg, decDeg
}

// EclipticCurve returns n equally spaced points along the ecliptic (latitude
// zero, longitudes spanning [0, 360]) converted to RA/Dec, for display as a
// dotted curve on cards and maps.
func EclipticCurve(n int) (raDeg, decDeg []float64) {
	lon := make([]float64, n)
	lat := make([]float64, n)
	for i := range lon {
		lon[i] = 360 * float64(i) / float64(n-1)
	}
	return EclipticToEquatorialAll(lon, lat)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
