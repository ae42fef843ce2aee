package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const indexFixture = `{
  "constellations": [
    {"id": "CON modern And", "lines": [[677, 746], [746, 1000]]},
    {"id": "CON modern .And", "lines": [[677, 3092]]},
    {"id": "CON modern Cet", "lines": [[746, 3419]]}
  ],
  "asterisms": [
    {"id": "AST modern Summer Triangle", "lines": [[91262, 97649, 102098]]},
    {"id": "AST modern HR pointers", "lines": [[11767, 677]]}
  ],
  "common_names": {
    "HIP 11767": [{"english": "Polaris"}],
    "HIP 677": [{"english": "Alpheratz"}],
    "CON modern And": [{"english": "Andromeda"}]
  }
}`

func writeIndex(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConstellations(t *testing.T) {
	set, err := LoadConstellations(writeIndex(t, indexFixture))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"And", "Cet"}; !reflect.DeepEqual(set.MainIDs, want) {
		t.Errorf("MainIDs = %v, want %v", set.MainIDs, want)
	}

	and, ok := set.Constellations["And"]
	if !ok {
		t.Fatal("missing constellation And")
	}
	if want := []int{677, 746, 1000}; !reflect.DeepEqual(and.Stars, want) {
		t.Errorf("And.Stars = %v, want %v", and.Stars, want)
	}
	if len(and.Lines) != 2 {
		t.Errorf("And.Lines has %d polylines, want 2", len(and.Lines))
	}

	if _, ok := set.Constellations[".And"]; !ok {
		t.Error("diagram part .And not kept")
	}
	if got := set.Parts("And"); !reflect.DeepEqual(got, []string{".And"}) {
		t.Errorf("Parts(And) = %v, want [.And]", got)
	}
	if got := set.Parts("Cet"); got != nil {
		t.Errorf("Parts(Cet) = %v, want none", got)
	}

	if _, ok := set.Asterisms["Summer Triangle"]; !ok {
		t.Error("missing asterism Summer Triangle")
	}
	if _, ok := set.Helpers["HR pointers"]; !ok {
		t.Error("HR-prefixed asterism not routed to Helpers")
	}
	if _, ok := set.Asterisms["HR pointers"]; ok {
		t.Error("HR-prefixed asterism left among asterisms")
	}

	if want := []int{677, 11767}; !reflect.DeepEqual(set.NamedStars, want) {
		t.Errorf("NamedStars = %v, want %v", set.NamedStars, want)
	}
}

func TestLoadConstellations_Errors(t *testing.T) {
	if _, err := LoadConstellations(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file: want error")
	}
	if _, err := LoadConstellations(writeIndex(t, "{not json")); err == nil {
		t.Error("malformed index: want error")
	}
	if _, err := LoadConstellations(writeIndex(t, `{"constellations": []}`)); err == nil {
		t.Error("empty index: want error")
	}
}

func TestStripCultureID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"CON modern And", "And"},
		{"CON modern .And", ".And"},
		{"AST modern Summer Triangle", "Summer Triangle"},
		{"bare", "bare"},
	}
	for _, tt := range tests {
		if got := stripCultureID(tt.in); got != tt.want {
			t.Errorf("stripCultureID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
