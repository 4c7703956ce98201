package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Tile text colors: dark on the two lightest tiles, light on the rest.
const (
	tileTextDark  = lipgloss.Color("#776e65")
	tileTextLight = lipgloss.Color("#f9f6f2")
)

func tileStyle(bg string, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(fg).Bold(true)
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorFrame:     lipgloss.NewStyle().Foreground(lipgloss.Color("#bbada0")),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#cdc1b4")),
	core.ColorAccent:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ea580c")).Bold(true),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true),
	core.ColorTile2:     tileStyle("#eee4da", tileTextDark),
	core.ColorTile4:     tileStyle("#ede0c8", tileTextDark),
	core.ColorTile8:     tileStyle("#f2b179", tileTextLight),
	core.ColorTile16:    tileStyle("#f59563", tileTextLight),
	core.ColorTile32:    tileStyle("#f67c5f", tileTextLight),
	core.ColorTile64:    tileStyle("#f65e3b", tileTextLight),
	core.ColorTile128:   tileStyle("#edcf72", tileTextLight),
	core.ColorTile256:   tileStyle("#edcc61", tileTextLight),
	core.ColorTile512:   tileStyle("#edc850", tileTextLight),
	core.ColorTile1024:  tileStyle("#edc53f", tileTextLight),
	core.ColorTile2048:  tileStyle("#edc22e", tileTextLight),
	core.ColorTileSuper: tileStyle("#3c3a32", tileTextLight),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
