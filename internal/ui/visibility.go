package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starcards/internal/astro"
	"github.com/litescript/ls-starcards/internal/catalog"
)

// Visibility display colors
const (
	colorVisAlways = "#7CFC00" // lawn green - circumpolar
	colorVisFull   = "#FFD700" // gold - fully visible at some hour
	colorVisPartly = "#FF6347" // tomato - only partly above the horizon
	colorVisNever  = "#444444" // dark gray - never rises
)

func visibilityStyle(v astro.Visibility) lipgloss.Style {
	switch v {
	case astro.Circumpolar:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorVisAlways))
	case astro.Visible:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorVisFull))
	case astro.PartlyVisible:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorVisPartly))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorVisNever))
	}
}

// RenderVisibilityReport lists every constellation with its visibility from
// the given latitude. Format:
//
//	And   Andromeda            circumpolar     [-21.1, +51.3]
//	Cru   Southern Cross       not visible     [-64.0, -55.7]
func RenderVisibilityReport(cat *catalog.Catalog, set *catalog.Set, names map[string]string, latDeg float64) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	headStyle := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	hemi := "N"
	if latDeg < 0 {
		hemi = "S"
	}
	b.WriteString(headStyle.Render(fmt.Sprintf("Constellation visibility at %.1f° %s", absf(latDeg), hemi)))
	b.WriteString("\n\n")

	counts := make(map[astro.Visibility]int)
	for _, id := range set.MainIDs {
		rows := cat.MemberRows(id)
		if len(rows) == 0 {
			continue
		}
		south, north := cat.DecRange(rows)
		v := astro.Classify(latDeg, south, north)
		counts[v]++

		name := id
		if s, ok := names[id]; ok {
			name = strings.ReplaceAll(s, "\n", " ")
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-5s", id)))
		b.WriteString(fmt.Sprintf(" %-24s ", name))
		b.WriteString(visibilityStyle(v).Render(fmt.Sprintf("%-13s", v)))
		b.WriteString(fmt.Sprintf("  [%+.1f°, %+.1f°]\n", south, north))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d circumpolar, %d visible, %d partly, %d never\n",
		counts[astro.Circumpolar], counts[astro.Visible],
		counts[astro.PartlyVisible], counts[astro.NotVisible]))
	return b.String()
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
