package render

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format is an output image format.
type Format int

const (
	PNG Format = iota
	SVG
	PDF
)

// ParseFormat maps a format name (or file extension) to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png", ".png":
		return PNG, nil
	case "svg", ".svg":
		return SVG, nil
	case "pdf", ".pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("unknown output format %q", s)
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string { return "." + f.String() }

// Page is a drawing surface bound to one output format.
type Page struct {
	Canvas draw.Canvas

	format Format
	wt     io.WriterTo
	pdf    *vgpdf.Canvas
}

// NewPage allocates a drawing surface of the given size. dpi only affects
// raster output.
func NewPage(format Format, w, h vg.Length, dpi int) *Page {
	p := &Page{format: format}
	switch format {
	case SVG:
		c := vgsvg.New(w, h)
		p.Canvas = draw.New(c)
		p.wt = c
	case PDF:
		c := vgpdf.New(w, h)
		p.Canvas = draw.New(c)
		p.wt = c
		p.pdf = c
	default:
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
		p.Canvas = draw.New(c)
		p.wt = vgimg.PngCanvas{Canvas: c}
	}
	return p
}

// NextPage starts a new sheet and reports whether the format supports
// pagination. Only PDF output does.
func (p *Page) NextPage() bool {
	if p.pdf == nil {
		return false
	}
	p.pdf.NextPage()
	return true
}

// WriteTo writes the rendered page(s) to w.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	return p.wt.WriteTo(w)
}

// WriteFile writes the rendered page(s) to path.
func (p *Page) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
