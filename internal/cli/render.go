package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/planner"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	moneyStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	dateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow)

	tipStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left-aligned, the rest right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}

	cells := func(row []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if i == 0 {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			b.WriteString(dimStyle.Render("│"))
		}
		return b.String() + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(cells(t.Headers, headerStyle))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		b.WriteString(cells(row, valueStyle))
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderPlan renders the full result card of a plan: key figures, progress,
// the savings curve, the analysis message, tips, and scenarios.
func RenderPlan(name string, in model.PlanInput, r model.PlanResult, money Money) string {
	var b strings.Builder

	b.WriteString(RenderTitle(name))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Goal cost", moneyStyle.Render(money.Format(in.TotalCost)))
	row("You have", moneyStyle.Render(money.Format(in.InitialAmount)))
	row("Monthly", moneyStyle.Render(money.Format(in.MonthlySave)))
	row("Goal date", dateStyle.Render(FormatGoalDate(r)))
	if !r.IsAlreadyReached {
		row("Time needed", valueStyle.Render(FormatMonths(r.Months)+" ("+FormatYears(r.Years)+")"))
		row("Still needed", valueStyle.Render(money.Format(r.Remaining)))
		row("Will save", valueStyle.Render(money.Format(r.TotalSaved)))
		if r.ExtraSaved > 0 {
			row("Surplus", mutedStyle.Render(money.Format(r.ExtraSaved)))
		}
	}
	row("Progress", RenderProgressBar(planner.Progress(in), 30))

	if !r.IsAlreadyReached && r.Months > 0 {
		series := planner.SampledProgressSeries(in, r.Months, sparklinePoints)
		row("Savings curve", tipStyle.Render(RenderSparkline(series.Savings)))
	}

	b.WriteString("\n  ")
	b.WriteString(valueStyle.Render(r.Analysis.Message))
	b.WriteString("\n")

	if len(r.Analysis.Tips) > 0 {
		b.WriteString("\n  ")
		b.WriteString(headerStyle.Render("Tips"))
		b.WriteString("\n")
		for _, tip := range r.Analysis.Tips {
			b.WriteString("  ")
			b.WriteString(tipStyle.Render("• " + tip))
			b.WriteString("\n")
		}
	}

	if len(r.Analysis.Scenarios) > 0 {
		b.WriteString("\n  ")
		b.WriteString(headerStyle.Render("What if"))
		b.WriteString("\n")
		for _, sc := range r.Analysis.Scenarios {
			b.WriteString("  ")
			b.WriteString(valueStyle.Bold(true).Render(sc.Title))
			if sc.Benefit != "" {
				b.WriteString("  ")
				b.WriteString(moneyStyle.Render(sc.Benefit))
			}
			b.WriteString("\n    ")
			b.WriteString(mutedStyle.Render(sc.Description))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderInflation renders the inflation adjustment below a plan.
func RenderInflation(r model.InflationResult, money Money) string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("Inflation"))
	b.WriteString("\n  ")
	b.WriteString(labelStyle.Render("Future cost"))
	b.WriteString(warnStyle.Render(money.Format(r.FutureCost)))
	b.WriteString("\n  ")
	b.WriteString(labelStyle.Render("Adjusted term"))
	b.WriteString(valueStyle.Render(FormatMonths(r.AdjustedMonths)))
	if r.AdjustedMonths > r.OriginalMonths {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" (+%d)", r.AdjustedMonths-r.OriginalMonths)))
	}
	b.WriteString("\n  ")
	b.WriteString(mutedStyle.Render(r.Note))
	b.WriteString("\n")
	return b.String()
}

// RenderStats renders the history statistics block.
func RenderStats(s model.Statistics, money Money) string {
	avg := "—"
	if s.TotalCalculations > 0 {
		avg = FormatMonths(s.AverageMonths)
	}
	return RenderTable(Table{
		Title: "Statistics",
		Rows: [][]string{
			{"Calculations", FormatNumber(int64(s.TotalCalculations))},
			{"Most common goal", s.MostCommonGoal},
			{"Total planned", money.Format(s.TotalAmount)},
			{"Average term", avg},
			{"Last calculation", FormatTimestamp(s.LastCalculation)},
		},
	})
}

// RenderGoals renders the preset goal catalog.
func RenderGoals(goals []model.Goal, money Money) string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{g.Type, g.Icon + " " + g.Name, g.Hint, money.Format(g.BasePrice)})
	}
	return RenderTable(Table{
		Title:   "Goals",
		Headers: []string{"Type", "Goal", "Hint", "Suggested cost"},
		Rows:    rows,
	})
}

// PrintHistoryTable writes the history log, newest first, as a table.
func PrintHistoryTable(w io.Writer, records []model.CalculationRecord, money Money) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No calculations yet.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "When", "Goal", "Cost", "Monthly", "Term", "Goal date"})

	var total float64
	for _, rec := range records {
		total += rec.Input.TotalCost
		t.AppendRow(table.Row{
			text.FgHiBlack.Sprint(shortID(rec.ID)),
			FormatTimestamp(rec.Timestamp),
			rec.DreamName,
			money.Format(rec.Input.TotalCost),
			money.Format(rec.Input.MonthlySave),
			FormatDuration(rec.Result.Months),
			FormatRecordDate(rec.Result.GoalDate),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", text.Bold.Sprintf("%d saved", len(records)), text.Bold.Sprint(money.Format(total)), "", "", ""})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	t.Render()
}

// RenderProgressBar renders a text progress bar for a 0-1 fraction.
func RenderProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)
	filled := min(int(fraction*float64(width)), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", moneyStyle.Render(bar), mutedStyle.Render(FormatPercent(fraction)))
}

// sparklinePoints is the width of the savings curve in a plan card.
const sparklinePoints = 40

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
