// Package deck assembles complete card sets and arranges them on printable
// sheets.
package deck

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/litescript/ls-starcards/internal/catalog"
	"github.com/litescript/ls-starcards/internal/chart"
	"github.com/litescript/ls-starcards/internal/render"
)

// A4 paper size in inches.
const (
	sheetW = 8.27
	sheetH = 11.69
)

// Options configure how the deck is drawn.
type Options struct {
	Format   render.Format // format of individual card files
	DPI      int
	Template chart.Template
	Palette  chart.Palette
	Card     chart.CardOptions

	// CutHelpers draws alignment marks on the sheet borders.
	CutHelpers bool
}

// cardFaces returns the four faces of one constellation's card set in print
// order: two backs, the bare sky and the full diagram.
func cardFaces(cat *catalog.Catalog, set *catalog.Set, names map[string]string,
	id string, opts Options) []func(draw.Canvas) error {

	back := func(main, accent color.RGBA) func(draw.Canvas) error {
		return func(c draw.Canvas) error {
			chart.DrawCardback(c, names, id, opts.Template, main, accent)
			return nil
		}
	}
	front := func(lines bool) func(draw.Canvas) error {
		o := opts.Card
		o.Lines = lines
		if !lines {
			// The bare face is the quiz side: no lines, no labels.
			o.Parts = false
			o.StarNames = false
		}
		return func(c draw.Canvas) error {
			return chart.DrawCard(c, cat, set, names, id, opts.Template, opts.Palette, o)
		}
	}

	pal := opts.Palette
	return []func(draw.Canvas) error{
		back(pal.Cardback1, pal.Accent),
		back(pal.Cardback2, pal.Accent),
		front(false),
		front(true),
	}
}

// WriteCardSet writes the four cards of one constellation into dir, one
// file per face.
func WriteCardSet(dir, id string, cat *catalog.Catalog, set *catalog.Set,
	names map[string]string, opts Options) error {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("card set dir: %w", err)
	}

	tpl := opts.Template
	w := vg.Length(tpl.Width+2*tpl.Bleed) * vg.Inch
	h := vg.Length(tpl.Height+2*tpl.Bleed) * vg.Inch

	suffixes := []string{"back_1", "back_2", "bare_3", "lines_4"}
	for i, face := range cardFaces(cat, set, names, id, opts) {
		page := render.NewPage(opts.Format, w, h, opts.DPI)
		if err := face(page.Canvas); err != nil {
			return err
		}
		name := fmt.Sprintf("%s_%s%s", id, suffixes[i], opts.Format.Ext())
		if err := page.WriteFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// placement is one card face assigned to a sheet cell.
type placement struct {
	face  func(draw.Canvas) error
	x, y  int
	bleed bool // backs extend into the bleed for cut tolerance
}

// WriteSheets draws the card sets of the given constellations onto A4
// sheets arranged for duplex printing and writes a single PDF. Backs and
// fronts alternate pages so each pair prints front and back of the same
// cards.
func WriteSheets(path string, ids []string, cat *catalog.Catalog, set *catalog.Set,
	names map[string]string, opts Options) error {

	tpl := opts.Template
	cw, ch := tpl.Width, tpl.Height
	hw, hh := sheetW/2, sheetH/2
	pad := min((hw-cw)/3, (hh-ch)/3)
	xPos := [2]float64{hw - cw - pad, hw + pad} // from the left edge
	yPos := [2]float64{hh + pad + ch, hh - pad} // top edge of the cell, from the bottom

	// Two card sets share a pair of pages: four backs on the first, the
	// matching four fronts on the second.
	var pages [][]placement
	n := 0
	for _, id := range ids {
		for f, face := range cardFaces(cat, set, names, id, opts) {
			i := n % 8
			page := (n/8)*2 + (i%4)/2
			for page >= len(pages) {
				pages = append(pages, nil)
			}
			pages[page] = append(pages[page], placement{
				face:  face,
				x:     i % 2,
				y:     i / 4,
				bleed: f < 2,
			})
			n++
		}
	}
	if len(pages)%2 == 1 {
		pages = append(pages, nil) // keep the duplex pairing intact
	}

	sheet := render.NewPage(render.PDF, sheetW*vg.Inch, sheetH*vg.Inch, opts.DPI)
	for p, cards := range pages {
		if p > 0 {
			sheet.NextPage()
		}
		drawCross(sheet.Canvas)

		for _, pl := range cards {
			rect := vg.Rectangle{
				Min: vg.Point{X: vg.Length(xPos[pl.x]) * vg.Inch, Y: vg.Length(yPos[pl.y]-ch) * vg.Inch},
				Max: vg.Point{X: vg.Length(xPos[pl.x]+cw) * vg.Inch, Y: vg.Length(yPos[pl.y]) * vg.Inch},
			}
			if pl.bleed {
				b := vg.Length(tpl.Bleed) * vg.Inch
				rect.Min.X -= b
				rect.Min.Y -= b
				rect.Max.X += b
				rect.Max.Y += b
			}
			sub := sheet.Canvas
			sub.Rectangle = rect
			if err := pl.face(sub); err != nil {
				return err
			}
		}

		// Fronts pages get the cutting marks; the backs bleed over the
		// cut line anyway.
		if opts.CutHelpers && p%2 == 1 {
			drawCutHelpers(sheet.Canvas, cw, ch, pad)
		}
	}

	if err := sheet.WriteFile(path); err != nil {
		return err
	}
	return nil
}

var cutGray = color.RGBA{150, 150, 150, 255}

// drawCross draws the central fold lines of a sheet.
func drawCross(c draw.Canvas) {
	sty := draw.LineStyle{Color: cutGray, Width: vg.Points(0.5)}
	hw := sheetW / 2 * vg.Inch
	hh := sheetH / 2 * vg.Inch
	render.StrokePolyline(c, sty, []vg.Point{{X: 0, Y: hh}, {X: sheetW * vg.Inch, Y: hh}})
	render.StrokePolyline(c, sty, []vg.Point{{X: hw, Y: 0}, {X: hw, Y: sheetH * vg.Inch}})
}

// drawCutHelpers draws short alignment ticks at the sheet borders matching
// the card edges.
func drawCutHelpers(c draw.Canvas, cw, ch, pad float64) {
	sty := draw.LineStyle{Color: cutGray, Width: vg.Points(0.5)}
	hw, hh := sheetW/2, sheetH/2
	l := vg.Length(1.5*pad) * vg.Inch
	W := sheetW * vg.Inch
	H := sheetH * vg.Inch

	for _, x := range []float64{hw - cw - pad, hw - pad, hw + pad, hw + pad + cw} {
		vx := vg.Length(x) * vg.Inch
		render.StrokePolyline(c, sty, []vg.Point{{X: vx, Y: H - l}, {X: vx, Y: H}})
		render.StrokePolyline(c, sty, []vg.Point{{X: vx, Y: 0}, {X: vx, Y: l}})
		mid := vg.Length(hh) * vg.Inch
		half := vg.Length(pad/2) * vg.Inch
		render.StrokePolyline(c, sty, []vg.Point{{X: vx, Y: mid - half}, {X: vx, Y: mid + half}})
	}
	for _, y := range []float64{hh - ch - pad, hh - pad, hh + pad, hh + pad + ch} {
		vy := vg.Length(y) * vg.Inch
		render.StrokePolyline(c, sty, []vg.Point{{X: 0, Y: vy}, {X: l, Y: vy}})
		render.StrokePolyline(c, sty, []vg.Point{{X: W - l, Y: vy}, {X: W, Y: vy}})
		mid := vg.Length(hw) * vg.Inch
		half := vg.Length(pad/2) * vg.Inch
		render.StrokePolyline(c, sty, []vg.Point{{X: mid - half, Y: vy}, {X: mid + half, Y: vy}})
	}
}
