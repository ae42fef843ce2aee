package chart

import (
	"math"
	"testing"
)

func TestTemplates(t *testing.T) {
	round := TarotRound()
	if got := round.CardAspect(); math.Abs(got-2.75/4.75) > 1e-12 {
		t.Errorf("CardAspect = %v, want %v", got, 2.75/4.75)
	}
	if got := round.PlotAspect(); math.Abs(got-2.25/4.25) > 1e-12 {
		t.Errorf("PlotAspect = %v, want %v", got, 2.25/4.25)
	}

	square := TarotSquare()
	if square.Corner != 0 {
		t.Errorf("square corner = %v, want 0", square.Corner)
	}
	if square.Width != round.Width || square.Height != round.Height {
		t.Error("square and round cards should share dimensions")
	}

	if _, err := ParseTemplate("tarot-round"); err != nil {
		t.Errorf("ParseTemplate(tarot-round): %v", err)
	}
	if _, err := ParseTemplate("poker"); err == nil {
		t.Error("ParseTemplate(poker): want error")
	}
}

func TestFitSpans(t *testing.T) {
	tpl := TarotRound()

	// A tall shape gets padded vertically and stretched to the card width.
	x, y := tpl.FitSpans(0.1, 1)
	wantY := 1 + 2*tpl.Pad/tpl.Height
	if math.Abs(y-wantY) > 1e-12 {
		t.Errorf("tall shape ySpan = %v, want %v", y, wantY)
	}
	if math.Abs(x/y-tpl.CardAspect()) > 1e-12 {
		t.Errorf("tall shape aspect = %v, want %v", x/y, tpl.CardAspect())
	}

	// A wide shape gets padded horizontally.
	x, y = tpl.FitSpans(1, 0.1)
	wantX := 1 + 2*tpl.Pad/tpl.Width
	if math.Abs(x-wantX) > 1e-12 {
		t.Errorf("wide shape xSpan = %v, want %v", x, wantX)
	}
	if math.Abs(x/y-tpl.CardAspect()) > 1e-12 {
		t.Errorf("wide shape aspect = %v, want %v", x/y, tpl.CardAspect())
	}

	// Bleed widens the padding band.
	bled := tpl
	bled.Bleed = 0.125
	_, yb := bled.FitSpans(0.1, 1)
	if yb <= wantY {
		t.Errorf("bleed did not grow the span: %v <= %v", yb, wantY)
	}
}

func TestNorthIndicatorPos(t *testing.T) {
	tpl := TarotRound()
	plotW, plotH := 1.0, 2.0
	cardAngle := math.Atan(plotW / plotH)

	tests := []struct {
		name  string
		angle float64
		wantX float64
		wantY float64
	}{
		{"straight up", 0, 0, plotH},
		{"slightly east", 0.2, plotH * math.Tan(0.2), plotH},
		{"right edge", 1.0, plotW, plotW / math.Tan(1.0)},
		{"left edge", -1.0, -plotW, plotW / math.Tan(1.0)},
		{"exact corner", cardAngle, plotW, plotW / math.Tan(cardAngle)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tpl.NorthIndicatorPos(tt.angle, plotW, plotH)
			if math.Abs(x-tt.wantX) > 1e-12 || math.Abs(y-tt.wantY) > 1e-12 {
				t.Errorf("pos = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
