package render

import (
	"math"
	"testing"
)

func polyClose(t *testing.T, got Polyline, wantX, wantY []float64, tol float64) {
	t.Helper()
	if len(got.X) != len(wantX) {
		t.Fatalf("got %d points, want %d (x=%v)", len(got.X), len(wantX), got.X)
	}
	for i := range wantX {
		if math.Abs(got.X[i]-wantX[i]) > tol || math.Abs(got.Y[i]-wantY[i]) > tol {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, got.X[i], got.Y[i], wantX[i], wantY[i])
		}
	}
}

func TestSplitFinite(t *testing.T) {
	x := []float64{0, 1, math.NaN(), 2, 3, 4, math.Inf(1), 5}
	y := []float64{0, 0, 0, 1, 1, 1, 1, 1}
	runs := SplitFinite(x, y)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	polyClose(t, runs[0], []float64{0, 1}, []float64{0, 0}, 0)
	polyClose(t, runs[1], []float64{2, 3, 4}, []float64{1, 1, 1}, 0)

	// A lone finite point between gaps is not a drawable run.
	if got := SplitFinite([]float64{math.NaN(), 1, math.NaN()}, []float64{0, 0, 0}); len(got) != 0 {
		t.Errorf("single point run kept: %v", got)
	}
}

func TestClipRect(t *testing.T) {
	tests := []struct {
		name         string
		x, y         []float64
		wantX, wantY []float64
	}{
		{
			"inside untouched",
			[]float64{-1, 0, 1}, []float64{0, 0.5, 0},
			[]float64{-1, 0, 1}, []float64{0, 0.5, 0},
		},
		{
			"crossing segment trimmed",
			[]float64{0, 4}, []float64{0, 0},
			[]float64{0, 2}, []float64{0, 0},
		},
		{
			"entering segment trimmed",
			[]float64{-4, 0}, []float64{0, 0},
			[]float64{-2, 0}, []float64{0, 0},
		},
		{
			"diagonal corner exit",
			[]float64{0, 4}, []float64{0, 4},
			[]float64{0, 1}, []float64{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipRect(tt.x, tt.y, 2, 1)
			if len(got) != 1 {
				t.Fatalf("got %d polylines, want 1", len(got))
			}
			polyClose(t, got[0], tt.wantX, tt.wantY, 1e-12)
		})
	}

	if got := ClipRect([]float64{3, 4}, []float64{0, 0}, 2, 1); len(got) != 0 {
		t.Errorf("fully outside polyline kept: %v", got)
	}
}

func TestClipRect_Reenter(t *testing.T) {
	// Leaves through the right edge and comes back: two separate runs.
	x := []float64{0, 4, 4, 0}
	y := []float64{-0.5, -0.5, 0.5, 0.5}
	got := ClipRect(x, y, 2, 1)
	if len(got) != 2 {
		t.Fatalf("got %d polylines, want 2", len(got))
	}
	polyClose(t, got[0], []float64{0, 2}, []float64{-0.5, -0.5}, 1e-12)
	polyClose(t, got[1], []float64{2, 0}, []float64{0.5, 0.5}, 1e-12)
}

func TestClipCircle(t *testing.T) {
	got := ClipCircle([]float64{-5, 5}, []float64{0, 0}, 2)
	if len(got) != 1 {
		t.Fatalf("got %d polylines, want 1", len(got))
	}
	polyClose(t, got[0], []float64{-2, 2}, []float64{0, 0}, 1e-12)

	// Chord at y = 1 in the unit-radius-2 disc ends at x = +-sqrt(3).
	got = ClipCircle([]float64{-5, 5}, []float64{1, 1}, 2)
	if len(got) != 1 {
		t.Fatalf("got %d polylines, want 1", len(got))
	}
	s := math.Sqrt(3)
	polyClose(t, got[0], []float64{-s, s}, []float64{1, 1}, 1e-12)

	if got := ClipCircle([]float64{-5, 5}, []float64{3, 3}, 2); len(got) != 0 {
		t.Errorf("line missing the disc kept: %v", got)
	}

	// Inside polyline with a zero-length segment stays whole.
	got = ClipCircle([]float64{0, 1, 1}, []float64{0, 0, 0}, 2)
	if len(got) != 1 {
		t.Fatalf("got %d polylines, want 1", len(got))
	}
}
