package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litescript/ls-starcards/internal/catalog"
	"github.com/litescript/ls-starcards/internal/chart"
	"github.com/litescript/ls-starcards/internal/render"
)

func testSky(t *testing.T) (*catalog.Catalog, *catalog.Set, map[string]string) {
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
			"Tri": {ID: "Tri", Lines: [][]int{{1, 2, 3}}, Stars: []int{1, 2, 3}},
		},
		MainIDs: []string{"Tri"},
	}
	cat.Annotate(set)
	names := map[string]string{"Tri": "Triangle"}
	return cat, set, names
}

func testOptions() Options {
	return Options{
		Format:   render.PNG,
		DPI:      72,
		Template: chart.TarotRound(),
		Palette:  chart.DefaultPalette(),
		Card: chart.CardOptions{
			BestAspect:  true,
			Parts:       true,
			StarNames:   true,
			LimitingMag: 6,
		},
		CutHelpers: true,
	}
}

func TestWriteCardSet(t *testing.T) {
	cat, set, names := testSky(t)
	dir := filepath.Join(t.TempDir(), "cards")

	if err := WriteCardSet(dir, "Tri", cat, set, names, testOptions()); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Tri_back_1.png", "Tri_back_2.png", "Tri_bare_3.png", "Tri_lines_4.png"} {
		info, err := os.Stat(filepath.Join(dir, want))
		if err != nil {
			t.Errorf("missing %s: %v", want, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", want)
		}
	}
}

func TestWriteCardSet_UnknownID(t *testing.T) {
	cat, set, names := testSky(t)
	err := WriteCardSet(t.TempDir(), "Nope", cat, set, names, testOptions())
	if err == nil {
		t.Fatal("want error for unknown constellation")
	}
}

func TestWriteSheets(t *testing.T) {
	cat, set, names := testSky(t)
	path := filepath.Join(t.TempDir(), "deck.pdf")

	if err := WriteSheets(path, set.MainIDs, cat, set, names, testOptions()); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("deck.pdf is empty")
	}
}
