package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/tui/components"
	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStatsTab(cw int) string {
	t := theme.Active
	stats := a.history.Statistics()

	avg := model.NoGoal
	if stats.TotalCalculations > 0 {
		avg = cli.FormatMonths(stats.AverageMonths)
	}

	metrics := []components.Metric{
		{Label: "Calculations", Value: cli.FormatNumber(int64(stats.TotalCalculations))},
		{Label: "Most common goal", Value: stats.MostCommonGoal},
		{Label: "Total planned", Value: a.money.Format(stats.TotalAmount)},
		{Label: "Average term", Value: avg, Note: "last " + cli.FormatTimestamp(stats.LastCalculation)},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, t.AccentBright, cw))
	b.WriteString("\n")

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	moneyStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface)

	var goals strings.Builder
	for i, g := range model.Goals {
		if i > 0 {
			goals.WriteString("\n")
		}
		s := g.Suggested()
		goals.WriteString(nameStyle.Render(fmt.Sprintf("%s %-12s", g.Icon, g.Name)))
		goals.WriteString(moneyStyle.Render(fmt.Sprintf(" %16s", a.money.Format(s.TotalCost))))
		goals.WriteString(hintStyle.Render(fmt.Sprintf("   start %s, then %s a month",
			a.money.Format(s.InitialAmount), a.money.Format(s.MonthlySave))))
	}
	b.WriteString(components.ContentCard("Goal presets", goals.String(), cw))

	return b.String()
}
