package components

import (
	"fmt"

	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForProgress returns the bar color for how far along a goal is.
func ColorForProgress(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.AccentBright
	case pct >= 0.5:
		return t.Money
	case pct >= 0.2:
		return t.Goal
	default:
		return t.Warn
	}
}

// GoalProgress renders a labeled progress bar for the share of the goal
// already saved. pct is clamped to [0, 1].
func GoalProgress(label string, pct float64, width int) string {
	t := theme.Active
	pct = min(max(pct, 0), 1)

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	barW := max(width-lipgloss.Width(label)-len(pctStr)-2, 4)

	color := ColorForProgress(pct)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(pctStr)
}
