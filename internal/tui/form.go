package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/planner"

	"github.com/charmbracelet/huh"
)

// planValues holds the raw plan form fields. Amount fields left blank are
// filled from the selected goal's suggestion.
type planValues struct {
	goal    string
	name    string
	cost    string
	initial string
	monthly string
}

func valuesFromRecord(rec model.CalculationRecord, goalType string) planValues {
	return planValues{
		goal:    goalType,
		name:    rec.DreamName,
		cost:    formatAmountField(rec.Input.TotalCost),
		initial: formatAmountField(rec.Input.InitialAmount),
		monthly: formatAmountField(rec.Input.MonthlySave),
	}
}

func formatAmountField(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseAmount accepts digits with optional thousands separators. A blank
// field reports ok=false.
func parseAmount(s string) (v float64, ok bool, err error) {
	s = strings.NewReplacer(",", "", " ", "", "_", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, errors.New("enter a number")
	}
	if v < 0 {
		return 0, false, errors.New("must not be negative")
	}
	return v, true, nil
}

func validateAmountField(s string) error {
	_, _, err := parseAmount(s)
	return err
}

// resolve turns the form values into the dream name and plan input,
// autofilling blank amounts from the goal preset, and validates the result.
func (v planValues) resolve() (string, model.PlanInput, error) {
	goal := model.GoalByType(v.goal)
	in := goal.Suggested()

	fields := []struct {
		raw string
		dst *float64
	}{
		{v.cost, &in.TotalCost},
		{v.initial, &in.InitialAmount},
		{v.monthly, &in.MonthlySave},
	}
	for _, f := range fields {
		amount, ok, err := parseAmount(f.raw)
		if err != nil {
			return "", in, err
		}
		if ok {
			*f.dst = amount
		}
	}

	if err := planner.Validate(in); err != nil {
		return "", in, err
	}

	name := strings.TrimSpace(v.name)
	if name == "" && !goal.IsCustom() {
		name = goal.Name
	}
	return name, in, nil
}

func newPlanForm(vals *planValues, money cli.Money) *huh.Form {
	options := make([]huh.Option[string], len(model.Goals))
	for i, g := range model.Goals {
		label := fmt.Sprintf("%s %s  (%s)", g.Icon, g.Name, g.Hint)
		options[i] = huh.NewOption(label, g.Type)
	}

	hint := func(field string) string {
		g := model.GoalByType(vals.goal)
		s := g.Suggested()
		switch field {
		case "cost":
			return "blank = " + money.Format(s.TotalCost)
		case "initial":
			return "blank = " + money.Format(s.InitialAmount)
		default:
			return "blank = " + money.Format(s.MonthlySave)
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you saving for?").
				Options(options...).
				Value(&vals.goal),
			huh.NewInput().
				Title("Name").
				Description("Optional. Shown in history.").
				CharLimit(60).
				Value(&vals.name),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Goal cost").
				DescriptionFunc(func() string { return hint("cost") }, &vals.goal).
				Validate(validateAmountField).
				Value(&vals.cost),
			huh.NewInput().
				Title("Already saved").
				DescriptionFunc(func() string { return hint("initial") }, &vals.goal).
				Validate(validateAmountField).
				Value(&vals.initial),
			huh.NewInput().
				Title("Monthly contribution").
				DescriptionFunc(func() string { return hint("monthly") }, &vals.goal).
				Validate(validateAmountField).
				Value(&vals.monthly),
		),
	).WithShowHelp(true).WithTheme(huh.ThemeCharm())
}
