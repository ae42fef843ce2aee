package astro

import "math"

// sqrt2 shortens the Gall projection constants.
var sqrt2 = math.Sqrt(2)

// Projector projects spherical directions onto the plane tangent at a fixed
// center point. The zero value is not useful; construct with Stereographic.
type Projector struct {
	// Unit 3-vector of the tangent point.
	xc, yc, zc float64
}

// Stereographic returns a projector about the tangent point (phi, theta), in
// degrees. Theta is the angle from the equatorial plane (declination or
// altitude), phi the angle from the x-axis (right ascension or azimuth).
//
// Projection is computed with direct 3-vector algebra against the tangent
// point's local basis, so there are no trigonometric case splits and no
// singularities except exactly opposite the tangent point and, for the local
// basis itself, a tangent point exactly at a pole. In those degenerate cases
// the results are non-finite and the caller must omit them from any layout.
func Stereographic(phiDeg, thetaDeg float64) Projector {
	phi, theta := degToRad(phiDeg), degToRad(thetaDeg)
	return Projector{
		xc: math.Cos(phi) * math.Cos(theta),
		yc: math.Sin(phi) * math.Cos(theta),
		zc: math.Sin(theta),
	}
}

// Project maps one (phi, theta) direction, in degrees, to plane coordinates.
func (p Projector) Project(phiDeg, thetaDeg float64) (x, y float64) {
	phi, theta := degToRad(phiDeg), degToRad(thetaDeg)
	px := math.Cos(phi) * math.Cos(theta)
	py := math.Sin(phi) * math.Cos(theta)
	pz := math.Sin(theta)

	t0 := 1 / math.Sqrt(p.xc*p.xc+p.yc*p.yc)
	t1 := px * p.xc
	t2 := math.Sqrt(1 - p.zc*p.zc)
	t3 := t0 * t2
	t4 := py * p.yc
	t5 := 1 / (t1*t3 + t3*t4 + pz*p.zc + 1)
	t6 := t0 * p.zc

	return t0 * t5 * (px*p.yc - p.xc*py), -t5 * (t1*t6 - t2*pz + t4*t6)
}

// ProjectAll maps whole coordinate tables element-wise, preserving non-finite
// values where the projection degenerates.
func (p Projector) ProjectAll(phiDeg, thetaDeg []float64) (xs, ys []float64) {
	xs = make([]float64, len(phiDeg))
	ys = make([]float64, len(phiDeg))
	for i := range phiDeg {
		xs[i], ys[i] = p.Project(phiDeg[i], thetaDeg[i])
	}
	return xs, ys
}

// StereographicPolar projects (RA, Dec), in degrees, about the north pole:
// the plane radius is tan(45deg - dec/2). The pole itself lands on the origin.
// Used for polar sky maps where the closed form avoids the generic 3-vector
// path.
func StereographicPolar(raDeg, decDeg float64) (x, y float64) {
	ra, dec := degToRad(raDeg), degToRad(decDeg)
	r := math.Tan(math.Pi/4 - dec/2)
	return r * math.Cos(ra), r * math.Sin(ra)
}

// StereographicPolarAll is the element-wise slice form of StereographicPolar.
func StereographicPolarAll(raDeg, decDeg []float64) (xs, ys []float64) {
	xs = make([]float64, len(raDeg))
	ys = make([]float64, len(raDeg))
	for i := range raDeg {
		xs[i], ys[i] = StereographicPolar(raDeg[i], decDeg[i])
	}
	return xs, ys
}

// StereoRadius returns the plane radius spanned by an angular field of view
// at the tangent point: tan(fov/4).
func StereoRadius(fovDeg float64) float64 {
	return math.Tan(degToRad(fovDeg) / 4)
}

// Gall computes the Gall stereographic projection: equirectangular in RA,
// stereographic in Dec, minimizing distortion along the celestial equator.
// RA is taken as a continuous angle; take it modulo 360 beforehand if the
// input can wrap.
func Gall(raDeg, decDeg float64) (x, y float64) {
	ra, dec := degToRad(raDeg), degToRad(decDeg)
	return ra / sqrt2, (1 + sqrt2/2) * math.Tan(dec/2)
}

// GallAll is the element-wise slice form of Gall.
func GallAll(raDeg, decDeg []float64) (xs, ys []float64) {
	xs = make([]float64, len(raDeg))
	ys = make([]float64, len(raDeg))
	for i := range raDeg {
		xs[i], ys[i] = Gall(raDeg[i], decDeg[i])
	}
	return xs, ys
}

// GallDims returns the plane width and height spanned by the given angular
// extents of a Gall projection.
func GallDims(raFOVDeg, decFOVDeg float64) (w, h float64) {
	raFOV, decFOV := degToRad(raFOVDeg), degToRad(decFOVDeg)
	return raFOV / sqrt2, 2 * (1 + sqrt2/2) * math.Tan(decFOV/4)
}

// GallVertical returns the y component of the Gall projection for a
// declination in degrees. Needed separately for grid-line placement.
func GallVertical(decDeg float64) float64 {
	return (1 + sqrt2/2) * math.Tan(degToRad(decDeg)/2)
}

// GallHorizontal returns the x component of the Gall projection for a right
// ascension in degrees.
func GallHorizontal(raDeg float64) float64 {
	return degToRad(raDeg) / sqrt2
}
