package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-starcards/internal/catalog"
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
		row("4", "06 00 00.00", "-20 00 00.0", "1.5"),
		row("5", "06 10 00.00", "-22 00 00.0", "2.5"),
		row("6", "12 00 00.00", "+30 00 00.0", "0.5"),
		row("7", "12 20 00.00", "+33 00 00.0", "3.5"),
		row("8", "18 00 00.00", "+05 00 00.0", "2.2"),
		row("9", "18 30 00.00", "+08 00 00.0", "4.5"),
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
			"Aaa": {ID: "Aaa", Lines: [][]int{{1, 2, 3}}, Stars: []int{1, 2, 3}},
			"Bbb": {ID: "Bbb", Lines: [][]int{{4, 5}}, Stars: []int{4, 5}},
			"Ccc": {ID: "Ccc", Lines: [][]int{{6, 7}}, Stars: []int{6, 7}},
			"Ddd": {ID: "Ddd", Lines: [][]int{{8, 9}}, Stars: []int{8, 9}},
		},
		MainIDs: []string{"Aaa", "Bbb", "Ccc", "Ddd"},
	}
	cat.Annotate(set)
	names := map[string]string{"Aaa": "First\nShape", "Bbb": "Second", "Ccc": "Third", "Ddd": "Fourth"}
	return cat, set, names
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		t := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
		return t
	}
}

func TestQuiz_AnswerAndAdvance(t *testing.T) {
	cat, set, names := testSky(t)
	m := NewQuizModel(cat, set, names, 1)
	if m.err != nil {
		t.Fatal(m.err)
	}
	if len(m.round.options) != quizOptions {
		t.Fatalf("round has %d options, want %d", len(m.round.options), quizOptions)
	}

	// Answer with the correct option selected.
	next, _ := m.Update(key(string('1' + byte(m.round.answer))))
	m = next.(QuizModel)
	if !m.answered {
		t.Fatal("model not answered after number key")
	}
	if m.score != 1 || m.total != 1 {
		t.Errorf("score = %d/%d, want 1/1", m.score, m.total)
	}

	view := m.View()
	if !strings.Contains(view, "✓") {
		t.Error("revealed view missing the correct marker")
	}
	if !strings.Contains(view, "Score: 1/1") {
		t.Error("view missing the score line")
	}

	// Advance to a fresh round.
	next, _ = m.Update(key("enter"))
	m = next.(QuizModel)
	if m.answered {
		t.Error("model still answered after advancing")
	}
	if m.total != 1 {
		t.Errorf("total = %d, want 1", m.total)
	}
}

func TestQuiz_WrongAnswer(t *testing.T) {
	cat, set, names := testSky(t)
	m := NewQuizModel(cat, set, names, 2)

	wrong := (m.round.answer + 1) % quizOptions
	next, _ := m.Update(key(string('1' + byte(wrong))))
	m = next.(QuizModel)
	if m.score != 0 || m.total != 1 {
		t.Errorf("score = %d/%d, want 0/1", m.score, m.total)
	}
	if view := m.View(); !strings.Contains(view, "✗") {
		t.Error("revealed view missing the wrong marker")
	}
}

func TestQuiz_LinesOnlyAfterReveal(t *testing.T) {
	cat, set, names := testSky(t)
	m := NewQuizModel(cat, set, names, 3)

	if strings.ContainsRune(m.View(), glyphLine) {
		t.Error("lines visible before the answer")
	}
	next, _ := m.Update(key("1"))
	m = next.(QuizModel)
	if !strings.ContainsRune(m.View(), glyphLine) {
		t.Error("lines not revealed after the answer")
	}
}

func TestQuiz_TooFewConstellations(t *testing.T) {
	cat, set, names := testSky(t)
	set.MainIDs = set.MainIDs[:2]
	m := NewQuizModel(cat, set, names, 1)
	if m.err == nil {
		t.Fatal("want error with fewer constellations than options")
	}
	if !strings.Contains(m.View(), "Error") {
		t.Error("view does not surface the error")
	}
}

func TestQuiz_Quit(t *testing.T) {
	cat, set, names := testSky(t)
	m := NewQuizModel(cat, set, names, 1)

	next, cmd := m.Update(key("q"))
	m = next.(QuizModel)
	if cmd == nil {
		t.Fatal("quit did not produce a command")
	}
	if !strings.Contains(m.View(), "Final score") {
		t.Error("quitting view missing the final score")
	}
}
