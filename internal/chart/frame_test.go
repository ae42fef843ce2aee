package chart

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litescript/ls-starcards/internal/catalog"
)

// testSky loads a small catalogue with one triangle constellation near
// (30, 10) and a lone-star constellation, plus a background star.
func testSky(t *testing.T) (*catalog.Catalog, *catalog.Set) {
	t.Helper()

	row := func(hip, ra, dec, mag string) string {
		fields := make([]string, 40)
		fields[1] = hip
		fields[3] = ra
		fields[4] = dec
		fields[5] = mag
		fields[37] = "0.5"
		return strings.Join(fields, "|")
	}
	lines := []string{
		row("1", "02 00 00.00", "+10 00 00.0", "1.0"),
		row("2", "02 08 00.00", "+12 00 00.0", "2.0"),
		row("3", "01 52 00.00", "+12 00 00.0", "3.0"),
		row("4", "03 00 00.00", "+45 00 00.0", "2.5"),
		row("5", "12 00 00.00", "-30 00 00.0", "4.0"),
	}
	path := filepath.Join(t.TempDir(), "hip_main.dat")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := catalog.LoadStars(path)
	if err != nil {
		t.Fatal(err)
	}

	set := &catalog.Set{
		Constellations: map[string]catalog.Constellation{
			"Tri":  {ID: "Tri", Lines: [][]int{{1, 2, 3}}, Stars: []int{1, 2, 3}},
			"Solo": {ID: "Solo", Lines: [][]int{{4}}, Stars: []int{4}},
		},
		MainIDs: []string{"Tri", "Solo"},
	}
	cat.Annotate(set)
	return cat, set
}

func memberSpans(cat *catalog.Catalog, f *Frame, id string) (xSpan, ySpan float64) {
	rows := cat.MemberRows(id)
	x, y := pick(f.X, rows), pick(f.Y, rows)
	minX, maxX := x[0], x[0]
	minY, maxY := y[0], y[0]
	for i := range x {
		minX, maxX = math.Min(minX, x[i]), math.Max(maxX, x[i])
		minY, maxY = math.Min(minY, y[i]), math.Max(maxY, y[i])
	}
	return maxX - minX, maxY - minY
}

func TestProjectConstellation_NorthUp(t *testing.T) {
	cat, _ := testSky(t)

	f, err := ProjectConstellation(cat, "Tri", false)
	if err != nil {
		t.Fatal(err)
	}

	// North up means the pole direction has been rotated onto the
	// vertical.
	if math.Abs(f.NorthAngle) > 1e-9 {
		t.Errorf("NorthAngle = %v, want 0", f.NorthAngle)
	}
	if f.HalfWidth <= 0 || f.HalfHeight <= 0 {
		t.Errorf("spans = %v, %v, want positive", f.HalfWidth, f.HalfHeight)
	}
	if len(f.X) != cat.Len() {
		t.Errorf("projected %d stars, want %d", len(f.X), cat.Len())
	}
	if len(f.EclipticX) != eclipticSamples {
		t.Errorf("ecliptic has %d points, want %d", len(f.EclipticX), eclipticSamples)
	}
}

func TestProjectConstellation_BestAspect(t *testing.T) {
	cat, _ := testSky(t)

	northUp, err := ProjectConstellation(cat, "Tri", false)
	if err != nil {
		t.Fatal(err)
	}
	best, err := ProjectConstellation(cat, "Tri", true)
	if err != nil {
		t.Fatal(err)
	}

	// The search includes the north-up angle, so it can never do worse.
	x0, y0 := memberSpans(cat, northUp, "Tri")
	x1, y1 := memberSpans(cat, best, "Tri")
	if x1/y1 > x0/y0+1e-9 {
		t.Errorf("best aspect ratio %v worse than north up %v", x1/y1, x0/y0)
	}

	// Best aspect recenters the members on the origin.
	rows := cat.MemberRows("Tri")
	x, y := pick(best.X, rows), pick(best.Y, rows)
	minX, maxX := x[0], x[0]
	minY, maxY := y[0], y[0]
	for i := range x {
		minX, maxX = math.Min(minX, x[i]), math.Max(maxX, x[i])
		minY, maxY = math.Min(minY, y[i]), math.Max(maxY, y[i])
	}
	if math.Abs(minX+maxX) > 1e-12 || math.Abs(minY+maxY) > 1e-12 {
		t.Errorf("member box not centered: x [%v, %v], y [%v, %v]", minX, maxX, minY, maxY)
	}
}

func TestProjectConstellation_SingleStar(t *testing.T) {
	cat, _ := testSky(t)

	f, err := ProjectConstellation(cat, "Solo", true)
	if err != nil {
		t.Fatal(err)
	}
	if f.HalfWidth != 0 || f.HalfHeight != 0 {
		t.Errorf("spans = %v, %v, want 0, 0", f.HalfWidth, f.HalfHeight)
	}
	if math.IsNaN(f.NorthAngle) {
		t.Error("NorthAngle is NaN")
	}
}

func TestProjectConstellation_Unknown(t *testing.T) {
	cat, _ := testSky(t)
	if _, err := ProjectConstellation(cat, "Nope", false); !errors.Is(err, ErrUnknownConstellation) {
		t.Errorf("err = %v, want ErrUnknownConstellation", err)
	}
}

func TestRotate(t *testing.T) {
	x := []float64{1, 0}
	y := []float64{0, 1}
	rotate(x, y, math.Pi/2)
	if math.Abs(x[0]) > 1e-15 || math.Abs(y[0]-1) > 1e-15 {
		t.Errorf("rotate (1,0) by 90 = (%v, %v), want (0, 1)", x[0], y[0])
	}
	if math.Abs(x[1]+1) > 1e-15 || math.Abs(y[1]) > 1e-15 {
		t.Errorf("rotate (0,1) by 90 = (%v, %v), want (-1, 0)", x[1], y[1])
	}
}
