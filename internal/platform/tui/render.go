package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps colour pairs to lipgloss styles.
type styleCache map[colorPair]lipgloss.Style

func (sc styleCache) style(p colorPair) lipgloss.Style {
	if s, ok := sc[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !p.fg.IsNone() {
		s = s.Foreground(lipgloss.Color(p.fg.Hex()))
	}
	if !p.bg.IsNone() {
		s = s.Background(lipgloss.Color(p.bg.Hex()))
	}
	sc[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, make(styleCache))
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.FG, cell.BG}

			// Collect consecutive cells with same colours
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.fg.IsNone() && start.bg.IsNone() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
