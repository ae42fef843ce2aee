package chart

import (
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/litescript/ls-starcards/internal/render"
)

// DrawCardback draws a card back with the constellation name inside a
// framed box. main and accent pick the color scheme; names missing from the
// translation table fall back to the id.
func DrawCardback(c draw.Canvas, names map[string]string, id string, tpl Template,
	main, accent color.RGBA) {

	halfW := vg.Length(tpl.Width/2+tpl.Bleed) * vg.Inch
	halfH := vg.Length(tpl.Height/2+tpl.Bleed) * vg.Inch
	cx := (c.Min.X + c.Max.X) / 2
	cy := (c.Min.Y + c.Max.Y) / 2

	corner := vg.Length(tpl.Corner) * vg.Inch
	if tpl.Bleed > 0 {
		corner = 0
	}
	render.FillRoundedRect(c, main, vg.Rectangle{
		Min: vg.Point{X: cx - halfW, Y: cy - halfH},
		Max: vg.Point{X: cx + halfW, Y: cy + halfH},
	}, corner)

	// A thin inner frame stands in for the printed back artwork.
	frame := vg.Length(tpl.Pad) * vg.Inch
	render.StrokeCircle(c, draw.LineStyle{Color: accent, Width: vg.Points(1.5)},
		cx, cy, halfH-frame-vg.Length(tpl.Height/4)*vg.Inch)

	name := id
	if s, ok := names[id]; ok {
		name = s
	}

	// Name box. The template measures from the bottom left of the cut
	// line, bleed excluded.
	boxMinX := cx - vg.Length(tpl.Width/2-tpl.TextX)*vg.Inch
	boxMinY := cy - vg.Length(tpl.Height/2-tpl.TextY)*vg.Inch
	boxW := vg.Length(tpl.TextBoxW) * vg.Inch
	boxH := vg.Length(tpl.TextBoxH) * vg.Inch

	size := fitFontSize(name, boxW, boxH)
	sty := render.TextStyle(accent, size, text.XCenter, text.YCenter)
	lines := strings.Split(name, "\n")
	lineH := size * 1.2
	top := boxMinY + boxH/2 + lineH*vg.Length(len(lines)-1)/2
	for i, line := range lines {
		render.Label(c, sty, boxMinX+boxW/2, top-lineH*vg.Length(i), line)
	}

	strokeRoundedRect(c, draw.LineStyle{Color: accent, Width: vg.Points(1)}, vg.Rectangle{
		Min: vg.Point{X: boxMinX, Y: boxMinY},
		Max: vg.Point{X: boxMinX + boxW, Y: boxMinY + boxH},
	}, vg.Length(tpl.TextCorner)*vg.Inch)
}

// fitFontSize scales the name to fill the text box, estimating the width
// from the character count and capping the growth so short names do not
// balloon.
func fitFontSize(name string, boxW, boxH vg.Length) vg.Length {
	base := vg.Points(12)
	longest := 0
	lines := strings.Split(name, "\n")
	for _, line := range lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	if longest == 0 {
		return base
	}
	// Liberation Sans averages about half the em size per glyph.
	wScale := float64(boxW) / (0.5 * float64(base) * float64(longest))
	hScale := float64(boxH) / (1.2 * float64(base) * float64(len(lines)))
	scale := wScale
	if hScale < scale {
		scale = hScale
	}
	if scale > 3 {
		scale = 3
	}
	return vg.Length(float64(base) * scale)
}

func strokeRoundedRect(c draw.Canvas, sty draw.LineStyle, rect vg.Rectangle, corner vg.Length) {
	min, max := rect.Min, rect.Max
	var p vg.Path
	p.Move(vg.Point{X: min.X + corner, Y: min.Y})
	p.Line(vg.Point{X: max.X - corner, Y: min.Y})
	p.Arc(vg.Point{X: max.X - corner, Y: min.Y + corner}, corner, -math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: max.X, Y: max.Y - corner})
	p.Arc(vg.Point{X: max.X - corner, Y: max.Y - corner}, corner, 0, math.Pi/2)
	p.Line(vg.Point{X: min.X + corner, Y: max.Y})
	p.Arc(vg.Point{X: min.X + corner, Y: max.Y - corner}, corner, math.Pi/2, math.Pi/2)
	p.Line(vg.Point{X: min.X, Y: min.Y + corner})
	p.Arc(vg.Point{X: min.X + corner, Y: min.Y + corner}, corner, math.Pi, math.Pi/2)
	p.Close()
	c.SetColor(sty.Color)
	c.SetLineWidth(sty.Width)
	c.SetLineDash(sty.Dashes, sty.DashOffs)
	c.Stroke(p)
}
