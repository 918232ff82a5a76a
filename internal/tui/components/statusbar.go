package components

import (
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and a status message on the right.
func RenderStatusBar(width int, hints, status string, isError bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	statusStyle := style
	if isError {
		statusStyle = statusStyle.Foreground(t.Error)
	} else {
		statusStyle = statusStyle.Foreground(t.Accent)
	}

	left := " " + hints
	right := ""
	if status != "" {
		right = status + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left) +
		style.Render(strings.Repeat(" ", padding)) +
		statusStyle.Render(right)
}
