package chart

import "image/color"

// Palette holds the colors shared by the cards and the sky maps.
type Palette struct {
	Sky            color.RGBA
	Star           color.RGBA
	Lines          color.RGBA
	Ecliptic       color.RGBA
	Horizon        color.RGBA
	Cardinal       color.RGBA
	Grid           color.RGBA
	Asterisms      color.RGBA
	Helpers        color.RGBA
	MapBorder      color.RGBA
	StarLabels     color.RGBA
	NameLabels     color.RGBA
	PartLabels     color.RGBA
	AsterismLabels color.RGBA

	Cardback1 color.RGBA
	Cardback2 color.RGBA
	Accent    color.RGBA
}

// DefaultPalette is a white-on-midnight scheme.
func DefaultPalette() Palette {
	return Palette{
		Sky:            color.RGBA{0x03, 0x01, 0x2d, 0xff}, // midnight
		Star:           color.RGBA{0xff, 0xff, 0xff, 0xff},
		Lines:          color.RGBA{0xff, 0xff, 0xff, 0xff},
		Ecliptic:       color.RGBA{0xdc, 0x14, 0x3c, 0xff}, // crimson
		Horizon:        color.RGBA{0xff, 0xff, 0xff, 0xff},
		Cardinal:       color.RGBA{0x8b, 0x00, 0x00, 0xff}, // dark red
		Grid:           color.RGBA{0xff, 0xff, 0x00, 0xff},
		Asterisms:      color.RGBA{0x32, 0xcd, 0x32, 0xff}, // lime green
		Helpers:        color.RGBA{0xff, 0x7f, 0x50, 0xff}, // coral
		MapBorder:      color.RGBA{0xfa, 0xc2, 0x05, 0xff}, // gold
		StarLabels:     color.RGBA{0xff, 0xd7, 0x00, 0xff},
		NameLabels:     color.RGBA{0x00, 0xff, 0xff, 0xff},
		PartLabels:     color.RGBA{0xee, 0x82, 0xee, 0xff}, // violet
		AsterismLabels: color.RGBA{0x00, 0xff, 0x00, 0xff},

		Cardback1: color.RGBA{0x19, 0x19, 0x70, 0xff}, // midnight blue
		Cardback2: color.RGBA{0x80, 0x00, 0x00, 0xff}, // maroon
		Accent:    color.RGBA{0xb8, 0x86, 0x0b, 0xff}, // dark goldenrod
	}
}

// alpha scales a color's opacity by a in [0, 1], premultiplying the
// channels the way image/color expects.
func alpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
