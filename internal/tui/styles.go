package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tilesvg/internal/svg"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	hoverFg   = lipgloss.Color("#FFA500")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	hoverStyle = lipgloss.NewStyle().Foreground(hoverFg)
)

// strokeStyles caches one lipgloss style per style tag, coloured like the
// SVG output.
type strokeStyles struct {
	palette svg.Palette
	cache   map[string]lipgloss.Style
}

func newStrokeStyles(p svg.Palette) *strokeStyles {
	return &strokeStyles{palette: p, cache: map[string]lipgloss.Style{}}
}

func (s *strokeStyles) style(tag string) lipgloss.Style {
	if st, ok := s.cache[tag]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(s.palette.Stroke(tag)))
	s.cache[tag] = st
	return st
}
