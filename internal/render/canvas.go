package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func circlePath(x, y, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: x + r, Y: y})
	p.Arc(vg.Point{X: x, Y: y}, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// FillCircle fills a disc of radius r centered on (x, y).
func FillCircle(c draw.Canvas, clr color.Color, x, y, r vg.Length) {
	c.SetColor(clr)
	c.Fill(circlePath(x, y, r))
}

// StrokeCircle strokes a circle of radius r centered on (x, y).
func StrokeCircle(c draw.Canvas, sty draw.LineStyle, x, y, r vg.Length) {
	c.SetColor(sty.Color)
	c.SetLineWidth(sty.Width)
	c.SetLineDash(sty.Dashes, sty.DashOffs)
	c.Stroke(circlePath(x, y, r))
}

// StrokePolyline strokes an open polyline. Fewer than two points draws
// nothing.
func StrokePolyline(c draw.Canvas, sty draw.LineStyle, pts []vg.Point) {
	if len(pts) < 2 {
		return
	}
	c.StrokeLines(sty, pts)
}

// FillRoundedRect fills a rectangle with quarter-circle corners of radius
// corner.
func FillRoundedRect(c draw.Canvas, clr color.Color, rect vg.Rectangle, corner vg.Length) {
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
	c.SetColor(clr)
	c.Fill(p)
}

// TextStyle builds a Liberation Sans text style with the given color, size
// and alignment.
func TextStyle(clr color.Color, size vg.Length, xa text.XAlignment, ya text.YAlignment) text.Style {
	return text.Style{
		Color: clr,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Size:     size,
		},
		XAlign:  xa,
		YAlign:  ya,
		Handler: text.Plain{Fonts: font.DefaultCache},
	}
}

// Label draws a text label at (x, y) honoring the style's alignment.
// Multi-line labels stack downward.
func Label(c draw.Canvas, sty text.Style, x, y vg.Length, s string) {
	c.FillText(sty, vg.Point{X: x, Y: y}, s)
}
