package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/litescript/ls-starcards/internal/astro"
	"github.com/litescript/ls-starcards/internal/catalog"
	"github.com/litescript/ls-starcards/internal/render"
)

// Pole selects the hemisphere of a polar map.
type Pole int

const (
	NorthPole Pole = iota
	SouthPole
)

func (p Pole) String() string {
	if p == SouthPole {
		return "S"
	}
	return "N"
}

// ParsePole maps "N" or "S" to a Pole.
func ParsePole(s string) (Pole, error) {
	switch s {
	case "N", "n":
		return NorthPole, nil
	case "S", "s":
		return SouthPole, nil
	}
	return 0, fmt.Errorf("unknown pole %q, want N or S", s)
}

// PolarMapOptions selects what is drawn on a polar map.
type PolarMapOptions struct {
	Pole Pole
	FOV  float64 // total field of view in degrees, default 100

	Lines     bool
	Grid      bool
	Asterisms bool
	Helpers   bool

	Names     bool
	Parts     bool
	StarNames bool

	LimitingMag float64
	StarSize    float64 // marker scaling, 45 when zero

	FontSizes [3]float64
}

func (o *PolarMapOptions) defaults() {
	if o.FOV == 0 {
		o.FOV = 100
	}
	if o.StarSize == 0 {
		o.StarSize = 45
	}
	if o.FontSizes == ([3]float64{}) {
		o.FontSizes = [3]float64{5, 6, 7}
	}
}

// DrawPolarMap draws a pole-centered stereographic map onto a square
// canvas. The northern map is mirrored left to right so that right
// ascension grows counterclockwise, matching the sky overhead.
func DrawPolarMap(c draw.Canvas, cat *catalog.Catalog, set *catalog.Set, names map[string]string,
	pal Palette, opts PolarMapOptions) {

	opts.defaults()

	// Southern declinations flip sign so the map is always drawn around
	// the projection's north pole.
	flip := 1.0
	if opts.Pole == SouthPole {
		flip = -1
	}

	mapRadius := astro.StereoRadius(opts.FOV)
	half := (c.Max.X - c.Min.X) / 2
	if h := (c.Max.Y - c.Min.Y) / 2; h < half {
		half = h
	}
	m := mapper{
		scale:   float64(half) / mapRadius,
		cx:      (c.Min.X + c.Max.X) / 2,
		cy:      (c.Min.Y + c.Max.Y) / 2,
		mirrorX: opts.Pole == NorthPole,
	}
	clipDisc := func(x, y []float64) []render.Polyline {
		return render.ClipCircle(x, y, mapRadius)
	}

	render.FillCircle(c, pal.Sky, m.cx, m.cy, m.length(mapRadius))

	eclRA, eclDec := astro.EclipticCurve(eclipticSamples)
	for i := range eclDec {
		eclDec[i] *= flip
	}
	eclX, eclY := astro.StereographicPolarAll(eclRA, eclDec)
	eclSty := draw.LineStyle{
		Color:  alpha(pal.Ecliptic, 0.7),
		Width:  vg.Points(0.4),
		Dashes: []vg.Length{vg.Points(3), vg.Points(3)},
	}
	strokeClipped(c, m, eclSty, eclX, eclY, clipDisc)

	dec := make([]float64, cat.Len())
	for i := range dec {
		dec[i] = flip * cat.Dec[i]
	}
	starsX, starsY := astro.StereographicPolarAll(cat.RA, dec)

	if opts.Lines {
		sty := draw.LineStyle{Color: alpha(pal.Star, 0.8), Width: vg.Points(0.5)}
		for _, id := range set.MainIDs {
			for _, line := range set.Constellations[id].Lines {
				px, py := linePoints(cat, starsX, starsY, line)
				strokeClipped(c, m, sty, px, py, clipDisc)
			}
		}
	}
	if opts.Asterisms {
		sty := draw.LineStyle{Color: pal.Asterisms, Width: vg.Points(0.9)}
		for _, con := range set.Asterisms {
			for _, line := range con.Lines {
				px, py := linePoints(cat, starsX, starsY, line)
				strokeClipped(c, m, sty, px, py, clipDisc)
			}
		}
	}
	if opts.Helpers {
		sty := draw.LineStyle{
			Color:  pal.Helpers,
			Width:  vg.Points(0.7),
			Dashes: []vg.Length{vg.Points(3), vg.Points(2)},
		}
		for _, con := range set.Helpers {
			for _, line := range con.Lines {
				px, py := linePoints(cat, starsX, starsY, line)
				strokeClipped(c, m, sty, px, py, clipDisc)
			}
		}
	}

	for i := 0; i < cat.Len(); i++ {
		if starsX[i]*starsX[i]+starsY[i]*starsY[i] >= mapRadius*mapRadius {
			continue
		}
		p := m.pt(starsX[i], starsY[i])
		r := starRadius(cat.Size[i], opts.StarSize)
		if cat.Constellation[i] == "" {
			if cat.Mag[i] <= opts.LimitingMag {
				render.FillCircle(c, pal.Star, p.X, p.Y, r)
			}
			continue
		}
		render.FillCircle(c, pal.Sky, p.X, p.Y, 1.073*r)
		render.FillCircle(c, alpha(pal.Star, 0.8), p.X, p.Y, r)
	}

	if opts.Grid {
		drawPolarGrid(c, m, pal, opts, mapRadius)
	}

	small := render.TextStyle(pal.StarLabels, vg.Length(opts.FontSizes[0]), text.XCenter, text.YBottom)
	partSty := render.TextStyle(pal.PartLabels, vg.Length(opts.FontSizes[0]), text.XCenter, text.YCenter)
	large := render.TextStyle(pal.NameLabels, vg.Length(opts.FontSizes[2]), text.XCenter, text.YCenter)

	labelInside := func(sty text.Style, x, y float64, s string) {
		if x*x+y*y < mapRadius*mapRadius {
			p := m.pt(x, y)
			render.Label(c, sty, p.X, p.Y, s)
		}
	}

	if opts.Names {
		for _, id := range set.MainIDs {
			if name, ok := names[id]; ok {
				x, y := meanPos(starsX, starsY, catRows(cat, set.Constellations[id].Stars))
				labelInside(large, x, y, name)
			}
		}
	}
	if opts.Parts {
		for id, con := range set.Constellations {
			if id[0] != '.' {
				continue
			}
			if name, ok := names[id]; ok {
				x, y := meanPos(starsX, starsY, catRows(cat, con.Stars))
				labelInside(partSty, x, y, name)
			}
		}
	}
	if opts.Asterisms {
		sty := render.TextStyle(pal.AsterismLabels, vg.Length(opts.FontSizes[2]), text.XCenter, text.YCenter)
		for id, con := range set.Asterisms {
			if name, ok := names[id]; ok {
				x, y := meanPos(starsX, starsY, catRows(cat, con.Stars))
				labelInside(sty, x, y, name)
			}
		}
	}
	if opts.StarNames {
		for _, hip := range set.NamedStars {
			name, ok := hipName(names, hip)
			if !ok {
				continue
			}
			if r, found := cat.Row(hip); found {
				labelInside(small, starsX[r], starsY[r], name)
			}
		}
	}
}

// drawPolarGrid draws hour spokes from the inner parallel to the rim and
// declination circles every ten degrees.
func drawPolarGrid(c draw.Canvas, m mapper, pal Palette, opts PolarMapOptions, mapRadius float64) {
	dotted := draw.LineStyle{
		Color:  alpha(pal.Grid, 0.8),
		Width:  vg.Points(0.6),
		Dashes: []vg.Length{vg.Points(1), vg.Points(2)},
	}
	gridLabel := render.TextStyle(alpha(pal.Grid, 0.8), vg.Length(opts.FontSizes[0]), text.XCenter, text.YCenter)

	// Hour spokes start away from the pole to keep the center clean.
	inner := astro.StereoRadius(2 * 10)
	for hour := 1; hour <= 24; hour++ {
		theta := float64(hour) * math.Pi / 12
		sin, cos := math.Sincos(theta)
		render.StrokePolyline(c, dotted, []vg.Point{
			m.pt(inner*cos, inner*sin),
			m.pt(mapRadius*cos, mapRadius*sin),
		})
		p := m.pt(0.97*mapRadius*cos, 0.97*mapRadius*sin)
		render.Label(c, gridLabel, p.X, p.Y, fmt.Sprintf("%d h", hour))
	}

	decLabel := render.TextStyle(alpha(pal.Grid, 0.8), vg.Length(opts.FontSizes[0]), text.XCenter, text.YBottom)
	for fov := 10.0; fov < opts.FOV/2; fov += 10 {
		r := astro.StereoRadius(2 * fov)
		render.StrokeCircle(c, dotted, m.cx, m.cy, m.length(r))
		p := m.pt(r, 0)
		render.Label(c, decLabel, p.X, p.Y, fmt.Sprintf("%.0f° %s", 90-fov, opts.Pole))
	}
}
