package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/planner"
	"github.com/theirongolddev/dreamcalc/internal/tui/components"
	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const chartHeight = 8

func (a App) renderPlanTab(cw int) string {
	t := theme.Active

	if a.form != nil {
		return components.FocusedCard("New plan", a.form.View(), cw)
	}

	if a.pending != nil {
		spin := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return components.ContentCard("", a.spinner.View()+spin.Render(" Calculating..."), cw)
	}

	if a.plan == nil {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return components.ContentCard("", muted.Render("Press n to plan a goal."), cw)
	}

	return a.renderPlanResult(*a.plan, cw)
}

func (a App) renderPlanResult(pv planView, cw int) string {
	t := theme.Active
	r := pv.result

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Background).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Background)

	var b strings.Builder
	b.WriteString(titleStyle.Render(" " + pv.name))
	b.WriteString(msgStyle.Render("  " + r.Analysis.Message))
	b.WriteString("\n")

	metrics := []components.Metric{
		{Label: "Goal date", Value: cli.FormatGoalDate(r)},
		{Label: "Term", Value: cli.FormatMonths(r.Months), Note: cli.FormatYears(r.Years)},
		{Label: "Still needed", Value: a.money.Format(r.Remaining)},
		{Label: "Will save", Value: a.money.Format(r.TotalSaved)},
	}
	if r.ExtraSaved > 0 {
		metrics[3].Note = "+" + a.money.Format(r.ExtraSaved) + " surplus"
	}
	if r.IsAlreadyReached {
		metrics = metrics[:1]
		metrics = append(metrics, components.Metric{Label: "Goal cost", Value: a.money.Format(pv.input.TotalCost)})
	}
	b.WriteString(components.MetricCardRow(metrics, t.Money, cw))
	b.WriteString("\n")

	split := planner.Split(pv.input)
	inner := components.CardInnerWidth(cw)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	progressBody := components.GoalProgress("Saved", planner.Progress(pv.input), inner) + "\n" +
		dim.Render(fmt.Sprintf("Have %s · Remaining %s", a.money.Format(split.Have), a.money.Format(split.Remaining)))
	b.WriteString(components.ContentCard("Progress", progressBody, cw))
	b.WriteString("\n")

	if len(pv.series.Savings) > 0 {
		b.WriteString(components.ContentCard("Savings by month", components.SavingsChart(pv.series, inner, chartHeight), cw))
		b.WriteString("\n")
	}

	widths := components.LayoutRow(cw, 2)
	advice := components.ContentCard("Advice", a.renderTips(r.Analysis.Tips, components.CardInnerWidth(widths[0])), widths[0])
	whatIf := components.ContentCard("What if", a.renderScenarios(r.Analysis.Scenarios, components.CardInnerWidth(widths[1])), widths[1])
	b.WriteString(components.CardRow([]string{advice, whatIf}))

	if pv.inflation != nil {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Inflation", a.renderInflation(*pv.inflation), cw))
	}

	return b.String()
}

func (a App) renderTips(tips []string, width int) string {
	t := theme.Active
	tipStyle := lipgloss.NewStyle().Foreground(t.Tip).Background(t.Surface).Width(width)
	if len(tips) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("Keep it up.")
	}
	lines := make([]string, len(tips))
	for i, tip := range tips {
		lines[i] = tipStyle.Render("• " + tip)
	}
	return strings.Join(lines, "\n")
}

func (a App) renderScenarios(scenarios []model.Scenario, width int) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(width)
	benefitStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface)

	if len(scenarios) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("Nothing would make this faster.")
	}

	var b strings.Builder
	for i, sc := range scenarios {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(truncStr(sc.Title, width)))
		b.WriteString("\n")
		desc := sc.Description
		if sc.Kind == model.ScenarioIncreasedContribution {
			desc = fmt.Sprintf("%s (%s a month)", desc, a.money.Format(sc.NewMonthlyAmount))
		}
		b.WriteString(descStyle.Render(desc))
		if sc.Benefit != "" {
			b.WriteString("\n")
			b.WriteString(benefitStyle.Render(truncStr(sc.Benefit, width)))
		}
	}
	return b.String()
}

func (a App) renderInflation(r model.InflationResult) string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface).Bold(true)
	note := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	return label.Render("Future cost ") + value.Render(a.money.Format(r.FutureCost)) +
		label.Render("   Adjusted term ") + value.Render(cli.FormatMonths(r.AdjustedMonths)) + "\n" +
		note.Render(r.Note)
}
