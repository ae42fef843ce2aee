// Package chart turns the star catalogue into drawn constellation cards and
// sky maps.
package chart

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/litescript/ls-starcards/internal/astro"
	"github.com/litescript/ls-starcards/internal/catalog"
)

// ErrUnknownConstellation reports a constellation id with no member stars in
// the catalogue.
var ErrUnknownConstellation = errors.New("unknown constellation")

// eclipticSamples is the number of points used to draw the ecliptic curve.
const eclipticSamples = 100

// Frame is a constellation-centered projection of the whole catalogue. The
// member bounding box is centered on the origin and spans
// [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
type Frame struct {
	X, Y []float64 // one point per catalogue row

	EclipticX, EclipticY []float64

	HalfWidth, HalfHeight float64

	// NorthAngle is the angle between the frame's vertical and the
	// direction of the celestial north pole, clockwise positive. Zero
	// when the frame is drawn north up.
	NorthAngle float64
}

// ProjectConstellation builds a stereographic projection tangent at the
// constellation's brightest member and centered on the member bounding box.
// With bestAspect the frame is rotated to minimize the width over height
// ratio of the members; otherwise north points up.
func ProjectConstellation(cat *catalog.Catalog, id string, bestAspect bool) (*Frame, error) {
	rows := cat.MemberRows(id)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConstellation, id)
	}

	brightest := rows[0]
	for _, i := range rows {
		if cat.Mag[i] < cat.Mag[brightest] {
			brightest = i
		}
	}
	proj := astro.Stereographic(cat.RA[brightest], cat.Dec[brightest])

	f := &Frame{}
	f.X, f.Y = proj.ProjectAll(cat.RA, cat.Dec)

	eclRA, eclDec := astro.EclipticCurve(eclipticSamples)
	f.EclipticX, f.EclipticY = proj.ProjectAll(eclRA, eclDec)

	// The pole is not infinitely distant on the sphere, so taking straight
	// up as north is wrong for shapes near the pole. Project it and carry
	// it through every transform below.
	northX, northY := proj.Project(0, 90)

	center := func() {
		memberX, memberY := pick(f.X, rows), pick(f.Y, rows)
		cx := (floats.Max(memberX) + floats.Min(memberX)) / 2
		cy := (floats.Max(memberY) + floats.Min(memberY)) / 2
		floats.AddConst(-cx, f.X)
		floats.AddConst(-cy, f.Y)
		floats.AddConst(-cx, f.EclipticX)
		floats.AddConst(-cy, f.EclipticY)
		northX -= cx
		northY -= cy
	}
	center()

	f.NorthAngle = math.Atan2(northX, northY)
	rot := f.NorthAngle

	if bestAspect {
		if a, ok := bestAspectAngle(pick(f.X, rows), pick(f.Y, rows), f.NorthAngle); ok {
			rot = a
		}
	}

	rotate(f.X, f.Y, rot)
	rotate(f.EclipticX, f.EclipticY, rot)
	northX, northY = rotatePoint(northX, northY, rot)

	if bestAspect {
		// The center may have moved a lot, and with it the north
		// direction.
		center()
	}
	f.NorthAngle = math.Atan2(northX, northY)

	memberX, memberY := pick(f.X, rows), pick(f.Y, rows)
	f.HalfWidth = floats.Max(memberX)
	f.HalfHeight = floats.Max(memberY)
	return f, nil
}

// bestAspectAngle scans rotations in 5 degree steps, starting 45 degrees
// left of north up and sweeping half a turn, and returns the one whose
// rotated bounding box has the smallest width over height ratio. A
// degenerate bounding box reports no angle.
func bestAspectAngle(x, y []float64, northAngle float64) (float64, bool) {
	if floats.Max(x)-floats.Min(x) == 0 || floats.Max(y)-floats.Min(y) == 0 {
		return 0, false
	}

	xr := make([]float64, len(x))
	yr := make([]float64, len(y))
	best, bestAR := 0.0, math.Inf(1)
	for i := 0; i < 36; i++ {
		a := (45-5*float64(i))*math.Pi/180 + northAngle
		copy(xr, x)
		copy(yr, y)
		rotate(xr, yr, a)
		ar := (floats.Max(xr) - floats.Min(xr)) / (floats.Max(yr) - floats.Min(yr))
		if ar < bestAR {
			best, bestAR = a, ar
		}
	}
	return best, true
}

func rotate(x, y []float64, alpha float64) {
	sin, cos := math.Sincos(alpha)
	for i := range x {
		x[i], y[i] = cos*x[i]-sin*y[i], sin*x[i]+cos*y[i]
	}
}

func rotatePoint(x, y, alpha float64) (float64, float64) {
	sin, cos := math.Sincos(alpha)
	return cos*x - sin*y, sin*x + cos*y
}

func pick(v []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = v[r]
	}
	return out
}
