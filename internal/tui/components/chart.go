package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var chartBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SavingsChart renders the accumulated savings of a plan as a column chart
// with the goal amount as the top gridline. Months are sampled down to fit
// width; the final month is always shown.
func SavingsChart(s model.Series, width, height int) string {
	if len(s.Savings) == 0 || len(s.Goal) == 0 {
		return ""
	}
	t := theme.Active

	goal := s.Goal[0]
	if goal <= 0 {
		goal = 1
	}
	height = max(height, 3)

	yLabelW := max(len(compactAmount(goal)), 1) + 1
	chartW := max(width-yLabelW-1, 5)

	values, labels := sampleSeries(s.Savings, s.Labels, chartW)

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface)
	goalStyle := lipgloss.NewStyle().Foreground(t.Goal).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := goal * float64(row) / float64(height)
		rowBottom := goal * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = compactAmount(goal)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for _, v := range values {
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render("█"))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(max(idx, 1), 8)
				b.WriteString(barStyle.Render(string(chartBlocks[idx])))
			case row == height:
				b.WriteString(goalStyle.Render("─"))
			default:
				b.WriteString(blankStyle.Render(" "))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", len(values))))

	if len(labels) > 0 {
		first, last := labels[0], labels[len(labels)-1]
		gap := len(values) - len(first) - len(last)
		b.WriteString("\n")
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		if gap > 0 && len(labels) > 1 {
			b.WriteString(axisStyle.Render(first + strings.Repeat(" ", gap) + last))
		} else {
			b.WriteString(axisStyle.Render(last))
		}
	}

	return b.String()
}

// sampleSeries picks at most n evenly spaced points, keeping the first and last.
func sampleSeries(values []float64, labels []string, n int) ([]float64, []string) {
	if len(values) <= n || n < 2 {
		return values, labels
	}
	outV := make([]float64, n)
	var outL []string
	if len(labels) == len(values) {
		outL = make([]string, n)
	}
	for i := range outV {
		src := i * (len(values) - 1) / (n - 1)
		outV[i] = values[src]
		if outL != nil {
			outL[i] = labels[src]
		}
	}
	return outV, outL
}

// compactAmount renders an axis label like 100k or 1.5M.
func compactAmount(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
