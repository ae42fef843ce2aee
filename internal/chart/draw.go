package chart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/litescript/ls-starcards/internal/catalog"
	"github.com/litescript/ls-starcards/internal/render"
)

// mapper converts chart coordinates to canvas points. Sky maps mirror the x
// axis so that east appears on the left, matching the sky seen from below.
type mapper struct {
	scale   float64 // vg lengths per chart unit
	cx, cy  vg.Length
	mirrorX bool
}

func (m mapper) pt(x, y float64) vg.Point {
	dx := vg.Length(x * m.scale)
	if m.mirrorX {
		dx = -dx
	}
	return vg.Point{X: m.cx + dx, Y: m.cy + vg.Length(y*m.scale)}
}

func (m mapper) length(v float64) vg.Length { return vg.Length(v * m.scale) }

func (m mapper) points(p render.Polyline) []vg.Point {
	pts := make([]vg.Point, len(p.X))
	for i := range p.X {
		pts[i] = m.pt(p.X[i], p.Y[i])
	}
	return pts
}

// strokeClipped strokes a polyline clipped by clip, which splits it into the
// visible runs.
func strokeClipped(c draw.Canvas, m mapper, sty draw.LineStyle, x, y []float64, clip func(x, y []float64) []render.Polyline) {
	for _, run := range clip(x, y) {
		render.StrokePolyline(c, sty, m.points(run))
	}
}

// linePoints gathers the frame coordinates of a polyline of HIP ids. Stars
// missing from the catalogue become non-finite points, which the clipping
// step drops while keeping the runs around them.
func linePoints(cat *catalog.Catalog, x, y []float64, line []int) ([]float64, []float64) {
	px := make([]float64, len(line))
	py := make([]float64, len(line))
	for i, hip := range line {
		if r, ok := cat.Row(hip); ok {
			px[i], py[i] = x[r], y[r]
		} else {
			px[i], py[i] = math.NaN(), math.NaN()
		}
	}
	return px, py
}

// starRadius converts a display-size scalar to a marker radius. The scalar
// scales a disc area, so the radius grows with its square root.
func starRadius(size, markerScale float64) vg.Length {
	return vg.Points(math.Sqrt(markerScale * size / math.Pi))
}

// meanPos returns the centroid of the given catalogue rows in frame
// coordinates.
func meanPos(x, y []float64, rows []int) (float64, float64) {
	if len(rows) == 0 {
		return math.NaN(), math.NaN()
	}
	var sx, sy float64
	for _, r := range rows {
		sx += x[r]
		sy += y[r]
	}
	n := float64(len(rows))
	return sx / n, sy / n
}

// catRows maps HIP ids to catalogue rows, dropping the unknown ones.
func catRows(cat *catalog.Catalog, hips []int) []int {
	var rows []int
	for _, hip := range hips {
		if r, ok := cat.Row(hip); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

// cardinalPos is the position of the i-th cardinal marker (north first,
// clockwise on the sphere) on a ring of radius r.
func cardinalPos(r float64, i int) (float64, float64) {
	theta := float64(i) * math.Pi / 2
	sin, cos := math.Sincos(theta)
	return r * sin, r * cos
}

func hipName(names map[string]string, hip int) (string, bool) {
	s, ok := names[strconv.Itoa(hip)]
	return s, ok
}
