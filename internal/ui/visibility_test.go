package ui

import (
	"strings"
	"testing"
)

func TestVisibilityReport(t *testing.T) {
	cat, set, names := testSky(t)

	// At 69 N the +30..+33 stars are circumpolar and the -22..-20 pair
	// straddles the southern visibility bound.
	got := RenderVisibilityReport(cat, set, names, 69)

	for _, want := range []string{
		"69.0° N",
		"Aaa", "First Shape",
		"circumpolar",
		"partly visible",
		"1 circumpolar, 2 visible, 1 partly, 0 never",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "First\nShape") {
		t.Error("name newline not flattened")
	}
}

func TestVisibilityReport_SouthernObserver(t *testing.T) {
	cat, set, names := testSky(t)

	got := RenderVisibilityReport(cat, set, names, -30)
	if !strings.Contains(got, "30.0° S") {
		t.Errorf("missing southern header:\n%s", got)
	}
	if !strings.Contains(got, "0 never") {
		t.Errorf("all fixtures are visible from 30 S:\n%s", got)
	}
}
