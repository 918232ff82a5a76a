package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/tui/components"
	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateHistoryKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.cursor < len(a.records)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g":
		a.cursor = 0
	case "G":
		a.cursor = max(len(a.records)-1, 0)
	case "d", "delete":
		if rec, ok := a.selected(); ok {
			a.history.Delete(rec.ID)
			a.records = a.history.List()
			a.cursor = min(a.cursor, max(len(a.records)-1, 0))
			a.status = fmt.Sprintf("Deleted %q", rec.DreamName)
			a.statusErr = false
		}
	case "C":
		if len(a.records) > 0 {
			a.confirmClear = true
		}
	case "enter":
		if rec, ok := a.selected(); ok {
			return a, a.openForm(valuesFromRecord(rec, goalTypeForName(rec.DreamName)))
		}
	}
	return a, nil
}

func (a App) selected() (model.CalculationRecord, bool) {
	if a.cursor < 0 || a.cursor >= len(a.records) {
		return model.CalculationRecord{}, false
	}
	return a.records[a.cursor], true
}

// goalTypeForName maps a stored dream name back to its preset, falling back
// to the custom goal.
func goalTypeForName(name string) string {
	for _, g := range model.Goals {
		if g.Name == name {
			return g.Type
		}
	}
	return model.CustomGoalType
}

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active

	if len(a.records) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return components.ContentCard("History", muted.Render("No calculations yet."), cw)
	}

	inner := components.CardInnerWidth(cw)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	costW, termW, dateW, whenW := 14, 8, 18, 17
	nameW := max(inner-costW-termW-dateW-whenW-6, 8)

	row := func(name, cost, term, date, when string) string {
		return fmt.Sprintf(" %-*s %*s %*s %*s %*s",
			nameW, truncStr(name, nameW), costW, cost, termW, term, dateW, date, whenW, when)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(row("Goal", "Cost", "Term", "Goal date", "When")))
	b.WriteString("\n")

	visible := max(h-6, 1)
	offset := 0
	if a.cursor >= visible {
		offset = a.cursor - visible + 1
	}
	end := min(offset+visible, len(a.records))

	for i := offset; i < end; i++ {
		rec := a.records[i]
		line := row(
			rec.DreamName,
			a.money.Format(rec.Input.TotalCost),
			cli.FormatDuration(rec.Result.Months),
			cli.FormatRecordDate(rec.Result.GoalDate),
			cli.FormatTimestamp(rec.Timestamp),
		)
		line = lipgloss.NewStyle().Width(inner).Render(line)
		if i == a.cursor {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf(" %d of %d", a.cursor+1, len(a.records))))

	title := "History"
	if a.confirmClear {
		title = "History · clear all? (y/n)"
	}
	return components.ContentCard(title, b.String(), cw)
}
