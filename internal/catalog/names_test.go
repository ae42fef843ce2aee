package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const namesFixture = `ID,english,german
And,Andromeda,Andromeda
.And,"the chained\nprincess","die angekettete\nPrinzessin"
677,Alpheratz,Alpheratz
`

func writeNames(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.csv")
	if err := os.WriteFile(path, []byte(namesFixture), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadNames(t *testing.T) {
	names, err := LoadNames(writeNames(t), "English") // header match ignores case
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 3 {
		t.Fatalf("got %d names, want 3", len(names))
	}
	if got := names["And"]; got != "Andromeda" {
		t.Errorf("names[And] = %q, want Andromeda", got)
	}
	if got := names[".And"]; got != "the chained\nprincess" {
		t.Errorf(`names[.And] = %q, literal \n should become a newline`, got)
	}
	if got := names["677"]; got != "Alpheratz" {
		t.Errorf("names[677] = %q, want Alpheratz", got)
	}
}

func TestLoadNames_Errors(t *testing.T) {
	if _, err := LoadNames(filepath.Join(t.TempDir(), "missing.csv"), "english"); err == nil {
		t.Error("missing file: want error")
	}
	if _, err := LoadNames(writeNames(t), "klingon"); err == nil {
		t.Error("unknown language column: want error")
	}
}
