package chart

import (
	"fmt"
	"math"
)

// Template describes the card geometry. All lengths are in inches.
type Template struct {
	Name   string
	Width  float64
	Height float64
	Pad    float64 // border kept free of the constellation
	Corner float64 // corner radius, zero for square corners
	Bleed  float64 // extra printing margin outside the cut line

	// Name box on the cardback.
	TextX, TextY        float64
	TextBoxW, TextBoxH  float64
	TextPad, TextCorner float64
}

// TarotRound is the default tarot-sized card with rounded corners.
func TarotRound() Template {
	return Template{
		Name:   "tarot-round",
		Width:  2.75,
		Height: 4.75,
		Pad:    0.25,
		Corner: 0.2,

		TextX: 0.4, TextY: 3.6,
		TextBoxW: 2.75 - 2*0.4, TextBoxH: 0.8,
		TextPad: 0.2, TextCorner: 0.3,
	}
}

// TarotSquare is the tarot-sized card with square corners.
func TarotSquare() Template {
	t := TarotRound()
	t.Name = "tarot-square"
	t.Corner = 0
	t.TextCorner = 0.05
	return t
}

// ParseTemplate maps a format name to its card template.
func ParseTemplate(name string) (Template, error) {
	switch name {
	case "tarot-round":
		return TarotRound(), nil
	case "tarot-square":
		return TarotSquare(), nil
	}
	return Template{}, fmt.Errorf("unknown card format %q", name)
}

// CardAspect is the width over height ratio of the whole card.
func (t Template) CardAspect() float64 { return t.Width / t.Height }

// PlotAspect is the width over height ratio of the area inside the padding,
// the part fully occupied by the constellation.
func (t Template) PlotAspect() float64 {
	return (t.Width - 2*t.Pad) / (t.Height - 2*t.Pad)
}

// FitSpans grows the member half-spans so the plot area exactly contains the
// constellation and the full card keeps the template aspect ratio. Whichever
// axis is narrower than the card gets padded and the other is stretched to
// match.
func (t Template) FitSpans(xSpan, ySpan float64) (float64, float64) {
	if xSpan/ySpan < t.PlotAspect() {
		ySpan *= 1 + 2*(t.Pad+t.Bleed)/t.Height
		xSpan = ySpan * t.CardAspect()
	} else {
		xSpan *= 1 + 2*(t.Pad+t.Bleed)/t.Width
		ySpan = xSpan / t.CardAspect()
	}
	return xSpan, ySpan
}

// NorthIndicatorPos places the north indicator on the card edge closest to
// the pole direction. plotW and plotH are the half extents of the usable
// edge band; the returned point is in the same units.
func (t Template) NorthIndicatorPos(northAngle, plotW, plotH float64) (x, y float64) {
	cardAngle := math.Atan(plotW / plotH)
	switch {
	case northAngle <= -cardAngle:
		return -plotW, -plotW / math.Tan(northAngle)
	case northAngle >= cardAngle:
		return plotW, plotW / math.Tan(northAngle)
	default:
		return plotH * math.Tan(northAngle), plotH
	}
}
