// Package ui provides the constellation quiz terminal interface using
// Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starcards/internal/catalog"
	"github.com/litescript/ls-starcards/internal/chart"
	"github.com/litescript/ls-starcards/internal/version"
)

// Styles for the quiz
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	lineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Star glyphs by magnitude class
const (
	glyphStarBright = '✶' // class 0-1
	glyphStarMedium = '✸' // class 2-3
	glyphStarDim    = '·' // class 4+
	glyphLine       = '•'
)

const quizOptions = 4

// quizRound is one question: a constellation shape and four candidate
// names.
type quizRound struct {
	id      string
	options []string
	answer  int
	frame   *chart.Frame
}

// QuizModel is a guess-the-constellation game. The shape is drawn as a
// star field; the connecting lines are revealed with the answer.
type QuizModel struct {
	width  int
	height int

	cat   *catalog.Catalog
	set   *catalog.Set
	names map[string]string
	rng   *rand.Rand

	round    quizRound
	cursor   int
	answered bool
	chosen   int
	score    int
	total    int
	quitting bool
	err      error
}

// NewQuizModel creates a quiz over all main constellations.
func NewQuizModel(cat *catalog.Catalog, set *catalog.Set, names map[string]string, seed int64) QuizModel {
	m := QuizModel{
		cat:   cat,
		set:   set,
		names: names,
		rng:   rand.New(rand.NewSource(seed)),
	}
	m.round, m.err = m.nextRound()
	return m
}

func (m QuizModel) nextRound() (quizRound, error) {
	ids := m.set.MainIDs
	if len(ids) < quizOptions {
		return quizRound{}, fmt.Errorf("need at least %d constellations, have %d", quizOptions, len(ids))
	}

	perm := m.rng.Perm(len(ids))
	options := make([]string, quizOptions)
	for i := range options {
		options[i] = ids[perm[i]]
	}
	answer := m.rng.Intn(quizOptions)

	frame, err := chart.ProjectConstellation(m.cat, options[answer], true)
	if err != nil {
		return quizRound{}, err
	}
	return quizRound{
		id:      options[answer],
		options: options,
		answer:  answer,
		frame:   frame,
	}, nil
}

// Init implements the Bubble Tea model interface.
func (m QuizModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if !m.answered && m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if !m.answered && m.cursor < quizOptions-1 {
				m.cursor++
			}

		case "1", "2", "3", "4":
			if !m.answered {
				m.cursor = int(key[0] - '1')
				m = m.answer()
			}

		case "enter", " ":
			if m.answered {
				m = m.advance()
			} else {
				m = m.answer()
			}

		case "n":
			if m.answered {
				m = m.advance()
			}
		}
	}

	return m, nil
}

func (m QuizModel) answer() QuizModel {
	m.answered = true
	m.chosen = m.cursor
	m.total++
	if m.chosen == m.round.answer {
		m.score++
	}
	return m
}

func (m QuizModel) advance() QuizModel {
	m.answered = false
	m.cursor = 0
	m.round, m.err = m.nextRound()
	return m
}

// View renders the quiz.
func (m QuizModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Final score: %d/%d\n", m.score, m.total)
	}
	if m.err != nil {
		return wrongStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Which constellation is this?"))
	b.WriteString("\n\n")
	b.WriteString(m.renderField())
	b.WriteString("\n")

	for i, id := range m.round.options {
		label := fmt.Sprintf("%d. %s", i+1, m.displayName(id))
		switch {
		case m.answered && i == m.round.answer:
			label = correctStyle.Render(label + "  ✓")
		case m.answered && i == m.chosen:
			label = wrongStyle.Render(label + "  ✗")
		case !m.answered && i == m.cursor:
			label = selectedStyle.Render(label)
		default:
			label = optionStyle.Render(label)
		}
		b.WriteString("  " + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d/%d", m.score, m.total)))
	b.WriteString("\n")
	if m.answered {
		b.WriteString(helpStyle.Render("enter/n: next  q: quit  v" + version.Version))
	} else {
		b.WriteString(helpStyle.Render("1-4 or j/k + enter: answer  q: quit  v" + version.Version))
	}
	b.WriteString("\n")
	return b.String()
}

// displayName strips manual line breaks from card labels for terminal
// display.
func (m QuizModel) displayName(id string) string {
	name, ok := m.names[id]
	if !ok {
		return id
	}
	return strings.ReplaceAll(name, "\n", " ")
}

// fieldSize returns the character grid dimensions for the star field.
func (m QuizModel) fieldSize() (int, int) {
	w, h := m.width-4, m.height-12
	if w < 20 {
		w = 40
	}
	if h < 8 {
		h = 16
	}
	if w > 72 {
		w = 72
	}
	if h > 24 {
		h = 24
	}
	return w, h
}

// renderField draws the constellation members on a character grid. After
// the answer the connecting lines are revealed.
func (m QuizModel) renderField() string {
	w, h := m.fieldSize()
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	f := m.round.frame
	rows := m.cat.MemberRows(m.round.id)

	// Terminal cells are about twice as tall as wide; squash the y axis
	// so the shape keeps its proportion.
	spanX, spanY := f.HalfWidth, f.HalfHeight
	if spanX <= 0 {
		spanX = 0.05
	}
	if spanY <= 0 {
		spanY = 0.05
	}
	scale := math.Min(float64(w-1)/(2*spanX), float64(h-1)/(2*spanY))

	cell := func(r int) (int, int) {
		cx := int(math.Round(float64(w)/2 + f.X[r]*scale))
		cy := int(math.Round(float64(h)/2 - f.Y[r]*scale*0.95))
		return cx, cy
	}
	inGrid := func(x, y int) bool { return x >= 0 && x < w && y >= 0 && y < h }

	if m.answered {
		for _, line := range m.set.Constellations[m.round.id].Lines {
			for s := 0; s+1 < len(line); s++ {
				r1, ok1 := m.cat.Row(line[s])
				r2, ok2 := m.cat.Row(line[s+1])
				if !ok1 || !ok2 {
					continue
				}
				x1, y1 := cell(r1)
				x2, y2 := cell(r2)
				for _, p := range bresenham(x1, y1, x2, y2) {
					if inGrid(p[0], p[1]) && grid[p[1]][p[0]] == ' ' {
						grid[p[1]][p[0]] = glyphLine
					}
				}
			}
		}
	}

	for _, r := range rows {
		x, y := cell(r)
		if !inGrid(x, y) {
			continue
		}
		switch {
		case m.cat.Class[r] <= 1:
			grid[y][x] = glyphStarBright
		case m.cat.Class[r] <= 3:
			grid[y][x] = glyphStarMedium
		default:
			grid[y][x] = glyphStarDim
		}
	}

	var b strings.Builder
	for _, row := range grid {
		for _, r := range row {
			switch r {
			case glyphLine:
				b.WriteString(lineStyle.Render(string(r)))
			case glyphStarDim:
				b.WriteString(dimStarStyle.Render(string(r)))
			case ' ':
				b.WriteRune(' ')
			default:
				b.WriteString(starStyle.Render(string(r)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// bresenham returns the grid cells of the segment from (x1, y1) to
// (x2, y2), endpoints included.
func bresenham(x1, y1, x2, y2 int) [][2]int {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy

	var cells [][2]int
	for {
		cells = append(cells, [2]int{x1, y1})
		if x1 == x2 && y1 == y2 {
			return cells
		}
		if 2*e >= dy {
			if x1 == x2 {
				return cells
			}
			e += dy
			x1 += sx
		}
		if 2*e <= dx {
			if y1 == y2 {
				return cells
			}
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
