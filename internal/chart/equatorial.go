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

// EquatorialMapOptions selects what is drawn on the all-sky equatorial map.
type EquatorialMapOptions struct {
	MaxWidth  float64 // inches, default 10
	MaxHeight float64 // inches, default 8
	Overlap   float64 // degrees repeated on both edges, default 40
	DecFOV    float64 // vertical field of view in degrees, default 150

	Lines     bool
	Grid      bool
	Asterisms bool
	Helpers   bool

	Names     bool
	Parts     bool
	StarNames bool

	LimitingMag float64
	StarSize    float64 // marker scaling, 50 when zero

	FontSizes [3]float64
}

func (o *EquatorialMapOptions) defaults() {
	if o.MaxWidth == 0 {
		o.MaxWidth = 10
	}
	if o.MaxHeight == 0 {
		o.MaxHeight = 8
	}
	if o.Overlap == 0 {
		o.Overlap = 40
	}
	if o.DecFOV == 0 {
		o.DecFOV = 150
	}
	if o.StarSize == 0 {
		o.StarSize = 50
	}
	if o.FontSizes == ([3]float64{}) {
		o.FontSizes = [3]float64{5, 6, 7}
	}
}

// EquatorialMapSize returns the page size for the map: the largest size with
// the projection's aspect ratio that fits inside the option's maximums.
func EquatorialMapSize(opts EquatorialMapOptions) (w, h vg.Length) {
	opts.defaults()
	cw, ch := astro.GallDims(360+opts.Overlap, opts.DecFOV)
	scale := math.Min(opts.MaxWidth/cw, opts.MaxHeight/ch)
	return vg.Length(cw*scale) * vg.Inch, vg.Length(ch*scale) * vg.Inch
}

// DrawEquatorialMap draws a Gall stereographic projection of the whole sky
// band around the equator. The opts.Overlap degrees around the zero hour
// are drawn on both edges so every constellation appears whole somewhere.
// Right ascension grows leftward, as on the sky.
func DrawEquatorialMap(c draw.Canvas, cat *catalog.Catalog, set *catalog.Set, names map[string]string,
	pal Palette, opts EquatorialMapOptions) {

	opts.defaults()

	halfOverlap := opts.Overlap / 2
	xMin := astro.GallHorizontal(-halfOverlap)
	xMax := astro.GallHorizontal(360 + halfOverlap)
	xMid := (xMin + xMax) / 2
	halfW := (xMax - xMin) / 2
	halfH := astro.GallVertical(opts.DecFOV / 2)

	m := mapper{
		scale:   float64(c.Max.X-c.Min.X) / (2 * halfW),
		cx:      (c.Min.X + c.Max.X) / 2,
		cy:      (c.Min.Y + c.Max.Y) / 2,
		mirrorX: true,
	}
	clipRect := func(x, y []float64) []render.Polyline {
		return render.ClipRect(x, y, halfW, halfH)
	}

	c.FillPolygon(pal.Sky, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y}, {X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y}, {X: c.Min.X, Y: c.Max.Y},
	})

	// The ecliptic is drawn from an unwrapped right ascension run so the
	// curve crosses the zero hour without jumping, then repeated shifted
	// by a turn on either side to cover the overlap bands.
	eclRA, eclDec := astro.EclipticCurve(eclipticSamples)
	unwrapRA(eclRA)
	eclSty := draw.LineStyle{
		Color:  alpha(pal.Ecliptic, 0.9),
		Width:  vg.Points(0.7),
		Dashes: []vg.Length{vg.Points(1), vg.Points(2)},
	}
	for _, shift := range []float64{-360, 0, 360} {
		x := make([]float64, len(eclRA))
		y := make([]float64, len(eclRA))
		for i := range eclRA {
			x[i], y[i] = astro.Gall(eclRA[i]+shift, eclDec[i])
			x[i] -= xMid
		}
		strokeClipped(c, m, eclSty, x, y, clipRect)
	}

	gallSegments := func(sty draw.LineStyle, line []int) {
		for s := 0; s+1 < len(line); s++ {
			ra1, dec1, ok1 := starRADec(cat, line[s])
			ra2, dec2, ok2 := starRADec(cat, line[s+1])
			if !ok1 || !ok2 {
				continue
			}
			// Take the short way around the sphere, then draw the
			// segment wherever a shifted copy lands on the map.
			if ra2-ra1 > 180 {
				ra2 -= 360
			} else if ra1-ra2 > 180 {
				ra2 += 360
			}
			for _, shift := range []float64{-360, 0, 360} {
				x1, y1 := astro.Gall(ra1+shift, dec1)
				x2, y2 := astro.Gall(ra2+shift, dec2)
				strokeClipped(c, m, sty,
					[]float64{x1 - xMid, x2 - xMid}, []float64{y1, y2}, clipRect)
			}
		}
	}

	if opts.Lines {
		sty := draw.LineStyle{Color: alpha(pal.Lines, 0.8), Width: vg.Points(0.5)}
		for _, id := range set.MainIDs {
			for _, line := range set.Constellations[id].Lines {
				gallSegments(sty, line)
			}
		}
	}
	if opts.Asterisms {
		sty := draw.LineStyle{Color: pal.Asterisms, Width: vg.Points(0.9)}
		for _, con := range set.Asterisms {
			for _, line := range con.Lines {
				gallSegments(sty, line)
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
				gallSegments(sty, line)
			}
		}
	}

	for i := 0; i < cat.Len(); i++ {
		if math.Abs(astro.GallVertical(cat.Dec[i])) > halfH {
			continue
		}
		background := cat.Constellation[i] == ""
		if background && cat.Mag[i] > opts.LimitingMag {
			continue
		}
		r := starRadius(cat.Size[i], opts.StarSize)
		for _, ra := range wrapRAs(cat.RA[i], halfOverlap) {
			x, y := astro.Gall(ra, cat.Dec[i])
			x -= xMid
			if x < -halfW || x > halfW {
				continue
			}
			p := m.pt(x, y)
			if background {
				render.FillCircle(c, pal.Star, p.X, p.Y, r)
				continue
			}
			render.FillCircle(c, pal.Sky, p.X, p.Y, 1.073*r)
			render.FillCircle(c, alpha(pal.Star, 0.8), p.X, p.Y, r)
		}
	}

	if opts.Grid {
		drawEquatorialGrid(c, m, pal, opts, halfOverlap, xMid, halfW, halfH)
	}

	small := render.TextStyle(pal.PartLabels, vg.Length(opts.FontSizes[0]), text.XCenter, text.YCenter)
	medium := render.TextStyle(pal.StarLabels, vg.Length(opts.FontSizes[1]), text.XCenter, text.YBottom)
	large := render.TextStyle(pal.NameLabels, vg.Length(opts.FontSizes[2]), text.XCenter, text.YCenter)

	labelAt := func(sty text.Style, x, y float64, s string) {
		if x >= -halfW && x <= halfW && y >= -halfH && y <= halfH {
			p := m.pt(x, y)
			render.Label(c, sty, p.X, p.Y, s)
		}
	}

	if opts.Names {
		for _, id := range set.MainIDs {
			if name, ok := names[id]; ok {
				x, y := meanGallPos(cat, set.Constellations[id].Stars, xMid)
				labelAt(large, x, y, name)
			}
		}
	}
	if opts.Parts {
		for id, con := range set.Constellations {
			if id[0] != '.' {
				continue
			}
			if name, ok := names[id]; ok {
				x, y := meanGallPos(cat, con.Stars, xMid)
				labelAt(small, x, y, name)
			}
		}
	}
	if opts.Asterisms {
		sty := render.TextStyle(pal.AsterismLabels, vg.Length(opts.FontSizes[1]), text.XCenter, text.YCenter)
		for id, con := range set.Asterisms {
			if name, ok := names[id]; ok {
				x, y := meanGallPos(cat, con.Stars, xMid)
				labelAt(sty, x, y, name)
			}
		}
	}
	if opts.StarNames {
		for _, hip := range set.NamedStars {
			name, ok := hipName(names, hip)
			if !ok {
				continue
			}
			if ra, dec, found := starRADec(cat, hip); found {
				x, y := astro.Gall(ra, dec)
				labelAt(medium, x-xMid, y, name)
			}
		}
	}
}

// drawEquatorialGrid draws hour lines of right ascension and declination
// parallels every ten degrees.
func drawEquatorialGrid(c draw.Canvas, m mapper, pal Palette, opts EquatorialMapOptions,
	halfOverlap, xMid, halfW, halfH float64) {

	grid := alpha(pal.Grid, 0.5)
	dotted := draw.LineStyle{
		Color:  grid,
		Width:  vg.Points(0.4),
		Dashes: []vg.Length{vg.Points(1), vg.Points(2)},
	}
	gridLabel := render.TextStyle(grid, vg.Length(opts.FontSizes[0]), text.XCenter, text.YBottom)
	edgeLabel := render.TextStyle(grid, vg.Length(opts.FontSizes[0]), text.XLeft, text.YBottom)

	for hour := 0; hour <= 24; hour++ {
		x := astro.GallHorizontal(15*float64(hour)) - xMid
		render.StrokePolyline(c, dotted, []vg.Point{m.pt(x, -halfH), m.pt(x, halfH)})
		p := m.pt(x, -halfH)
		render.Label(c, gridLabel, p.X, p.Y, fmt.Sprintf("%d h", hour))
	}

	// Declination parallels; the equator gets a solid line. Labels hug the
	// left edge, which is the high right ascension side.
	for dec := 0; dec < 75; dec += 10 {
		sty := dotted
		if dec == 0 {
			sty = draw.LineStyle{Color: grid, Width: vg.Points(0.5)}
		}
		for _, sign := range []float64{1, -1} {
			y := sign * astro.GallVertical(float64(dec))
			if y > halfH || (dec == 0 && sign < 0) {
				continue
			}
			render.StrokePolyline(c, sty, []vg.Point{m.pt(halfW, y), m.pt(-halfW, y)})
			hemi := "N"
			if sign < 0 {
				hemi = "S"
			}
			p := m.pt(halfW, y)
			render.Label(c, edgeLabel, p.X, p.Y, fmt.Sprintf(" %d° %s ", dec, hemi))
		}
	}
}

// wrapRAs normalizes ra to [0, 360) and returns every copy of it that can
// land on the map, overlap bands included.
func wrapRAs(ra, halfOverlap float64) []float64 {
	ra = math.Mod(ra, 360)
	if ra < 0 {
		ra += 360
	}
	ras := []float64{ra}
	if ra < halfOverlap {
		ras = append(ras, ra+360)
	}
	if ra > 360-halfOverlap {
		ras = append(ras, ra-360)
	}
	return ras
}

// unwrapRA removes the 360 degree jumps from a sampled curve in place.
func unwrapRA(ra []float64) {
	offset := 0.0
	for i := 1; i < len(ra); i++ {
		ra[i] += offset
		switch {
		case ra[i]-ra[i-1] > 180:
			ra[i] -= 360
			offset -= 360
		case ra[i-1]-ra[i] > 180:
			ra[i] += 360
			offset += 360
		}
	}
}

// meanGallPos is the centroid of the stars on the Gall map. Shapes crossing
// the zero hour are averaged the short way around.
func meanGallPos(cat *catalog.Catalog, hips []int, xMid float64) (float64, float64) {
	rows := catRows(cat, hips)
	if len(rows) == 0 {
		return math.NaN(), math.NaN()
	}
	ras := make([]float64, len(rows))
	span := func() float64 {
		lo, hi := ras[0], ras[0]
		for _, v := range ras {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		return hi - lo
	}
	for i, r := range rows {
		ras[i] = math.Mod(cat.RA[r], 360)
		if ras[i] < 0 {
			ras[i] += 360
		}
	}
	if span() > 180 {
		for i := range ras {
			if ras[i] > 180 {
				ras[i] -= 360
			}
		}
	}
	var sx, sy float64
	for i, r := range rows {
		x, y := astro.Gall(ras[i], cat.Dec[r])
		sx += x
		sy += y
	}
	n := float64(len(rows))
	return sx/n - xMid, sy / n
}

// starRADec looks up a star's equatorial coordinates by HIP id.
func starRADec(cat *catalog.Catalog, hip int) (ra, dec float64, ok bool) {
	r, found := cat.Row(hip)
	if !found {
		return 0, 0, false
	}
	return cat.RA[r], cat.Dec[r], true
}
