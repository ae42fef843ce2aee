package chart

import (
	"math"
	"testing"

	"github.com/litescript/ls-starcards/internal/astro"
)

func TestWrapRAs(t *testing.T) {
	tests := []struct {
		name string
		ra   float64
		want []float64
	}{
		{"middle of the map", 180, []float64{180}},
		{"low edge duplicated high", 5, []float64{5, 365}},
		{"high edge duplicated low", 355, []float64{355, -5}},
		{"negative input normalized", -5, []float64{355, -5}},
		{"full turn normalized", 365, []float64{5, 365}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapRAs(tt.ra, 20)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapRAs(%v) = %v, want %v", tt.ra, got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("wrapRAs(%v)[%d] = %v, want %v", tt.ra, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnwrapRA(t *testing.T) {
	ra := []float64{350, 355, 2, 8, 355, 350}
	unwrapRA(ra)
	want := []float64{350, 355, 362, 368, 355, 350}
	for i := range ra {
		if math.Abs(ra[i]-want[i]) > 1e-12 {
			t.Errorf("unwrapRA[%d] = %v, want %v", i, ra[i], want[i])
		}
	}

	// Already continuous runs stay untouched.
	ra = []float64{10, 20, 30}
	unwrapRA(ra)
	if ra[0] != 10 || ra[1] != 20 || ra[2] != 30 {
		t.Errorf("continuous run changed: %v", ra)
	}
}

func TestMeanGallPos(t *testing.T) {
	cat, _ := testSky(t)

	// Stars 1, 2, 3 sit near 2h of right ascension; the centroid must land
	// between them, not on the far side of the sphere.
	x, _ := meanGallPos(cat, []int{1, 2, 3}, 0)
	lo := astro.GallHorizontal(28)
	hi := astro.GallHorizontal(32)
	if x < lo || x > hi {
		t.Errorf("centroid x = %v outside member range [%v, %v]", x, lo, hi)
	}

	// Unknown stars only: no position.
	x, y := meanGallPos(cat, []int{999}, 0)
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("centroid of unknown stars = (%v, %v), want NaN", x, y)
	}
}
