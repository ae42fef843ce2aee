package render

import (
	"bytes"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".png", PNG, false},
		{"svg", SVG, false},
		{"pdf", PDF, false},
		{".pdf", PDF, false},
		{"jpg", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatExt(t *testing.T) {
	if got := PNG.Ext(); got != ".png" {
		t.Errorf("PNG.Ext() = %q", got)
	}
	if got := PDF.Ext(); got != ".pdf" {
		t.Errorf("PDF.Ext() = %q", got)
	}
}

func TestPageWrite(t *testing.T) {
	for _, format := range []Format{PNG, SVG, PDF} {
		p := NewPage(format, 2*vg.Inch, 2*vg.Inch, 72)
		if format == PDF && !p.NextPage() {
			t.Errorf("%v: NextPage() = false, want pagination", format)
		}
		if format != PDF && p.NextPage() {
			t.Errorf("%v: NextPage() = true for single-page format", format)
		}
		var buf bytes.Buffer
		if _, err := p.WriteTo(&buf); err != nil {
			t.Errorf("%v: WriteTo: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("%v: empty output", format)
		}
	}
}
