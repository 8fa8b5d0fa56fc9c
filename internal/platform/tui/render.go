package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong-clone/internal/core"
)

// styles caches one lipgloss style per cell color.
var styles sync.Map // core.RGBA -> lipgloss.Style

func styleFor(c core.RGBA) lipgloss.Style {
	if s, ok := styles.Load(c); ok {
		return s.(lipgloss.Style)
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styles.Store(c, s)
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color
			blank := true

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != ' ' {
					blank = false
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Runs of spaces need no color
			if blank {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
