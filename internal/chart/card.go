package chart

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/litescript/ls-starcards/internal/catalog"
	"github.com/litescript/ls-starcards/internal/render"
)

// DefaultStarSize is the marker scaling used on the cards.
const DefaultStarSize = 100

// CardOptions selects what is drawn on a constellation card.
type CardOptions struct {
	Lines      bool // constellation lines, ecliptic and north indicator
	BestAspect bool // rotate the shape to fill the card
	StarColors bool // true star colors instead of plain white
	Parts      bool // diagram part labels
	StarNames  bool // named star labels

	LimitingMag float64
	StarSize    float64 // marker scaling, DefaultStarSize when zero
}

// DrawCard draws one constellation card onto the canvas. The canvas is
// expected to have the template's aspect ratio, bleed included.
func DrawCard(c draw.Canvas, cat *catalog.Catalog, set *catalog.Set, names map[string]string,
	id string, tpl Template, pal Palette, opts CardOptions) error {

	f, err := ProjectConstellation(cat, id, opts.BestAspect)
	if err != nil {
		return err
	}

	starSize := opts.StarSize
	if starSize == 0 {
		starSize = DefaultStarSize
	}
	lineW := vg.Points(starSize * 0.0055)

	xSpan, ySpan := f.HalfWidth, f.HalfHeight
	// Single stars and straight lines have a degenerate bounding box; give
	// them a fixed field of a few degrees instead.
	if xSpan <= 0 {
		xSpan = 0.05
	}
	if ySpan <= 0 {
		ySpan = 0.05
	}
	xSpan, ySpan = tpl.FitSpans(xSpan, ySpan)

	halfW := vg.Length(tpl.Width/2+tpl.Bleed) * vg.Inch
	halfH := vg.Length(tpl.Height/2+tpl.Bleed) * vg.Inch
	m := mapper{
		scale: float64(halfH) / ySpan,
		cx:    (c.Min.X + c.Max.X) / 2,
		cy:    (c.Min.Y + c.Max.Y) / 2,
	}
	clipRect := func(x, y []float64) []render.Polyline {
		return render.ClipRect(x, y, xSpan, ySpan)
	}

	// Card background. With a bleed the corners stay square so the cut
	// line lands inside solid color.
	corner := vg.Length(tpl.Corner) * vg.Inch
	if tpl.Bleed > 0 {
		corner = 0
	}
	render.FillRoundedRect(c, pal.Sky, vg.Rectangle{
		Min: vg.Point{X: m.cx - halfW, Y: m.cy - halfH},
		Max: vg.Point{X: m.cx + halfW, Y: m.cy + halfH},
	}, corner)

	if opts.Lines {
		for _, other := range set.MainIDs {
			clr := pal.Lines
			if other != id {
				clr = alpha(pal.Lines, 0.5)
			}
			sty := draw.LineStyle{Color: clr, Width: lineW}
			for _, line := range set.Constellations[other].Lines {
				px, py := linePoints(cat, f.X, f.Y, line)
				strokeClipped(c, m, sty, px, py, clipRect)
			}
		}

		eclSty := draw.LineStyle{
			Color:  pal.Ecliptic,
			Width:  1.2 * lineW,
			Dashes: []vg.Length{lineW, 2 * lineW},
		}
		strokeClipped(c, m, eclSty, f.EclipticX, f.EclipticY, clipRect)
	}

	inPlot := func(i int) bool {
		return f.X[i] >= -xSpan && f.X[i] <= xSpan && f.Y[i] >= -ySpan && f.Y[i] <= ySpan
	}
	starColor := func(i int, fade float64) color.RGBA {
		clr := pal.Star
		if opts.StarColors {
			clr = catalog.BVColor(cat.BV[i])
		}
		if fade < 1 {
			clr = alpha(clr, fade)
		}
		return clr
	}

	for i := 0; i < cat.Len(); i++ {
		if !inPlot(i) {
			continue
		}
		p := m.pt(f.X[i], f.Y[i])
		r := starRadius(cat.Size[i], starSize)
		switch {
		case cat.Constellation[i] == "":
			if cat.Mag[i] <= opts.LimitingMag {
				render.FillCircle(c, starColor(i, 0.7), p.X, p.Y, r)
			}
		case cat.Constellation[i] == id:
			// A blank disc under the star stops the lines short of it.
			render.FillCircle(c, pal.Sky, p.X, p.Y, 1.073*r)
			render.FillCircle(c, starColor(i, 1), p.X, p.Y, r)
		default:
			render.FillCircle(c, pal.Sky, p.X, p.Y, 1.073*r)
			render.FillCircle(c, starColor(i, 0.8), p.X, p.Y, r)
		}
	}

	if opts.Lines {
		drawNorthIndicator(c, m, f.NorthAngle, tpl, pal, halfW, halfH)
	}

	if opts.StarNames {
		sty := render.TextStyle(pal.StarLabels, vg.Points(10), text.XCenter, text.YTop)
		for _, hip := range set.Constellations[id].Stars {
			name, ok := hipName(names, hip)
			if !ok {
				continue
			}
			if r, found := cat.Row(hip); found {
				p := m.pt(f.X[r], f.Y[r])
				render.Label(c, sty, p.X, p.Y, name)
			}
		}
	}

	if opts.Parts {
		sty := render.TextStyle(pal.PartLabels, vg.Points(8), text.XCenter, text.YCenter)
		for _, part := range set.Parts(id) {
			name, ok := names[part]
			if !ok {
				continue
			}
			rows := catRows(cat, set.Constellations[part].Stars)
			x, y := meanPos(f.X, f.Y, rows)
			p := m.pt(x, y)
			render.Label(c, sty, p.X, p.Y, name)
		}
	}

	return nil
}

// drawNorthIndicator draws the pole marker near the card edge closest to
// the north direction.
func drawNorthIndicator(c draw.Canvas, m mapper, northAngle float64, tpl Template, pal Palette, halfW, halfH vg.Length) {
	space := vg.Length(0.7*tpl.Pad+tpl.Bleed) * vg.Inch
	x, y := tpl.NorthIndicatorPos(northAngle, float64(halfW-space), float64(halfH-space))
	px, py := m.cx+vg.Length(x), m.cy+vg.Length(y)

	render.FillCircle(c, color.RGBA{0xff, 0xff, 0xff, 0xff}, px, py, vg.Points(6))
	sty := render.TextStyle(pal.Cardinal, vg.Points(9), text.XCenter, text.YCenter)
	sty.Rotation = -northAngle
	render.Label(c, sty, px, py, "N")
}
