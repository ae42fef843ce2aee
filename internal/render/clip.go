// Package render draws charts onto gonum/plot vg canvases and writes them
// out as PNG, SVG or PDF.
package render

import "math"

// Polyline is an open polyline in chart coordinates.
type Polyline struct {
	X, Y []float64
}

// SplitFinite breaks a polyline at non-finite vertices. Projections send
// points near the antipode to Inf or NaN and the runs on either side are
// still drawable.
func SplitFinite(x, y []float64) []Polyline {
	var out []Polyline
	var cur Polyline
	flush := func() {
		if len(cur.X) >= 2 {
			out = append(out, cur)
		}
		cur = Polyline{}
	}
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			flush()
			continue
		}
		cur.X = append(cur.X, x[i])
		cur.Y = append(cur.Y, y[i])
	}
	flush()
	return out
}

// ClipRect clips a polyline to the axis-aligned rectangle
// [-halfW, halfW] x [-halfH, halfH] centered on the origin.
func ClipRect(x, y []float64, halfW, halfH float64) []Polyline {
	return clip(x, y, func(x1, y1, dx, dy float64) (float64, float64, bool) {
		t0, t1 := 0.0, 1.0
		edges := [4][2]float64{
			{-dx, x1 + halfW},
			{dx, halfW - x1},
			{-dy, y1 + halfH},
			{dy, halfH - y1},
		}
		for _, e := range edges {
			p, q := e[0], e[1]
			if p == 0 {
				if q < 0 {
					return 0, 0, false
				}
				continue
			}
			t := q / p
			if p < 0 {
				if t > t1 {
					return 0, 0, false
				}
				if t > t0 {
					t0 = t
				}
			} else {
				if t < t0 {
					return 0, 0, false
				}
				if t < t1 {
					t1 = t
				}
			}
		}
		return t0, t1, true
	})
}

// ClipCircle clips a polyline to the disc of radius r centered on the
// origin.
func ClipCircle(x, y []float64, r float64) []Polyline {
	return clip(x, y, func(x1, y1, dx, dy float64) (float64, float64, bool) {
		a := dx*dx + dy*dy
		c := x1*x1 + y1*y1 - r*r
		if a == 0 {
			if c > 0 {
				return 0, 0, false
			}
			return 0, 1, true
		}
		b := 2 * (x1*dx + y1*dy)
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, 0, false
		}
		s := math.Sqrt(disc)
		t0 := (-b - s) / (2 * a)
		t1 := (-b + s) / (2 * a)
		if t0 < 0 {
			t0 = 0
		}
		if t1 > 1 {
			t1 = 1
		}
		if t0 >= t1 {
			return 0, 0, false
		}
		return t0, t1, true
	})
}

// clip runs a per-segment visible-interval predicate over every finite run
// of the polyline, joining consecutive visible segments back into runs.
func clip(x, y []float64, interval func(x1, y1, dx, dy float64) (t0, t1 float64, ok bool)) []Polyline {
	var out []Polyline
	for _, run := range SplitFinite(x, y) {
		var cur Polyline
		open := false
		flush := func() {
			if len(cur.X) >= 2 {
				out = append(out, cur)
			}
			cur = Polyline{}
			open = false
		}
		for i := 0; i+1 < len(run.X); i++ {
			x1, y1 := run.X[i], run.Y[i]
			dx, dy := run.X[i+1]-x1, run.Y[i+1]-y1
			t0, t1, ok := interval(x1, y1, dx, dy)
			if !ok {
				flush()
				continue
			}
			if t0 > 0 || !open {
				flush()
				cur.X = append(cur.X, x1+t0*dx)
				cur.Y = append(cur.Y, y1+t0*dy)
				open = true
			}
			cur.X = append(cur.X, x1+t1*dx)
			cur.Y = append(cur.Y, y1+t1*dy)
			if t1 < 1 {
				flush()
			}
		}
		flush()
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
