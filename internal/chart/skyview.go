package chart

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/litescript/ls-starcards/internal/astro"
	"github.com/litescript/ls-starcards/internal/catalog"
	"github.com/litescript/ls-starcards/internal/render"
)

// SkyViewOptions selects what is drawn on the observer's sky view.
type SkyViewOptions struct {
	FOV float64 // field of view in degrees, 190 shows a little past the horizon

	Lines     bool
	Asterisms bool
	Helpers   bool

	StarColors bool
	Names      bool
	Parts      bool
	StarNames  bool

	LimitingMag float64
	StarSize    float64 // marker scaling, 50 when zero

	FontSizes [3]float64 // small, medium, large label sizes in points
}

func (o *SkyViewOptions) defaults() {
	if o.FOV == 0 {
		o.FOV = 190
	}
	if o.StarSize == 0 {
		o.StarSize = 50
	}
	if o.FontSizes == ([3]float64{}) {
		o.FontSizes = [3]float64{5, 6, 7}
	}
}

// DrawSkyView draws an alt-az map of the sky above the observer onto a
// square canvas. The view is mirrored left to right, as star maps are read
// facing up.
func DrawSkyView(c draw.Canvas, cat *catalog.Catalog, set *catalog.Set, names map[string]string,
	obs *astro.Observer, pal Palette, opts SkyViewOptions) {

	opts.defaults()

	// The map has unit radius; the sky disc sits just inside the compass
	// ring.
	const innerRadius = 0.95

	half := (c.Max.X - c.Min.X) / 2
	if h := (c.Max.Y - c.Min.Y) / 2; h < half {
		half = h
	}
	m := mapper{
		scale:   float64(half),
		cx:      (c.Min.X + c.Max.X) / 2,
		cy:      (c.Min.Y + c.Max.Y) / 2,
		mirrorX: true,
	}
	clipDisc := func(x, y []float64) []render.Polyline {
		return render.ClipCircle(x, y, innerRadius)
	}

	rScale := innerRadius / astro.StereoRadius(opts.FOV)
	zenith := astro.Stereographic(0, 90)

	render.FillCircle(c, pal.Sky, m.cx, m.cy, m.length(innerRadius))

	horizonSty := draw.LineStyle{
		Color:  pal.Horizon,
		Width:  vg.Points(0.8),
		Dashes: []vg.Length{vg.Points(4), vg.Points(3)},
	}
	render.StrokeCircle(c, horizonSty, m.cx, m.cy, m.length(astro.StereoRadius(180)*rScale))

	project := func(raDeg, decDeg []float64) ([]float64, []float64) {
		alt, az := astro.EquatorialToHorizontalAll(raDeg, decDeg, obs)
		x, y := zenith.ProjectAll(az, alt)
		for i := range x {
			x[i] *= rScale
			y[i] *= rScale
		}
		return x, y
	}

	eclRA, eclDec := astro.EclipticCurve(eclipticSamples)
	eclX, eclY := project(eclRA, eclDec)
	eclSty := draw.LineStyle{
		Color:  alpha(pal.Ecliptic, 0.7),
		Width:  vg.Points(0.4),
		Dashes: []vg.Length{vg.Points(3), vg.Points(3)},
	}
	strokeClipped(c, m, eclSty, eclX, eclY, clipDisc)

	starsX, starsY := project(cat.RA, cat.Dec)

	if opts.Lines {
		sty := draw.LineStyle{Color: alpha(pal.Lines, 0.8), Width: vg.Points(0.5)}
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

	inDisc := func(i int) bool {
		return starsX[i]*starsX[i]+starsY[i]*starsY[i] < innerRadius*innerRadius
	}
	for i := 0; i < cat.Len(); i++ {
		if !inDisc(i) {
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
		clr := pal.Star
		if opts.StarColors {
			clr = catalog.BVColor(cat.BV[i])
		}
		render.FillCircle(c, pal.Sky, p.X, p.Y, 1.073*r)
		render.FillCircle(c, clr, p.X, p.Y, r)
	}

	drawCompass(c, m, pal, innerRadius)

	labelInside := func(sty text.Style, x, y float64, s string) {
		if x*x+y*y < innerRadius*innerRadius {
			p := m.pt(x, y)
			render.Label(c, sty, p.X, p.Y, s)
		}
	}
	small := render.TextStyle(pal.PartLabels, vg.Length(opts.FontSizes[0]), text.XCenter, text.YCenter)
	medium := render.TextStyle(pal.StarLabels, vg.Length(opts.FontSizes[1]), text.XCenter, text.YBottom)
	large := render.TextStyle(pal.NameLabels, vg.Length(opts.FontSizes[2]), text.XCenter, text.YCenter)

	if opts.Names {
		for _, id := range set.MainIDs {
			name, ok := names[id]
			if !ok {
				continue
			}
			x, y := meanPos(starsX, starsY, catRows(cat, set.Constellations[id].Stars))
			labelInside(large, x, y, name)
		}
	}
	if opts.Parts {
		for id, con := range set.Constellations {
			if id[0] != '.' {
				continue
			}
			name, ok := names[id]
			if !ok {
				continue
			}
			x, y := meanPos(starsX, starsY, catRows(cat, con.Stars))
			labelInside(small, x, y, name)
		}
	}
	if opts.Asterisms {
		sty := render.TextStyle(pal.AsterismLabels, vg.Length(opts.FontSizes[1]), text.XCenter, text.YCenter)
		for id, con := range set.Asterisms {
			name, ok := names[id]
			if !ok {
				continue
			}
			x, y := meanPos(starsX, starsY, catRows(cat, con.Stars))
			labelInside(sty, x, y, name)
		}
	}
	if opts.StarNames {
		for _, hip := range set.NamedStars {
			name, ok := hipName(names, hip)
			if !ok {
				continue
			}
			if r, found := cat.Row(hip); found {
				labelInside(medium, starsX[r], starsY[r], name)
			}
		}
	}
}

// drawCompass draws the outer ring and the four cardinal markers. East sits
// on the left because of the mirrored x axis.
func drawCompass(c draw.Canvas, m mapper, pal Palette, innerRadius float64) {
	ringSty := draw.LineStyle{
		Color: pal.MapBorder,
		Width: m.length(0.99 - innerRadius),
	}
	render.StrokeCircle(c, ringSty, m.cx, m.cy, m.length((0.99+innerRadius)/2))

	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	for i, letter := range []string{"N", "E", "S", "W"} {
		x, y := cardinalPos(0.97, i)
		p := m.pt(x, y)
		render.FillCircle(c, white, p.X, p.Y, vg.Points(5))
		sty := render.TextStyle(pal.Cardinal, vg.Points(7), text.XCenter, text.YCenter)
		render.Label(c, sty, p.X, p.Y, letter)
	}
}
