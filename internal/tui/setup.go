package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/theirongolddev/dreamcalc/internal/config"
	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues binds the first-run setup form fields.
type SetupValues struct {
	Currency    string
	DefaultGoal string
	Theme       string
	Backend     string
	Inflation   string
}

// SetupValuesFrom pre-fills the setup form from cfg.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Currency:    cfg.General.Currency,
		DefaultGoal: cfg.General.DefaultGoal,
		Theme:       cfg.Appearance.Theme,
		Backend:     cfg.Storage.Backend,
		Inflation:   strconv.FormatFloat(cfg.Calculation.InflationPercent, 'f', -1, 64),
	}
}

// Apply copies the form values into cfg.
func (v SetupValues) Apply(cfg *config.Config) error {
	cfg.General.Currency = strings.ToUpper(strings.TrimSpace(v.Currency))
	cfg.General.DefaultGoal = v.DefaultGoal
	cfg.Appearance.Theme = v.Theme
	cfg.Storage.Backend = v.Backend

	pct, err := parseInflation(v.Inflation)
	if err != nil {
		return err
	}
	cfg.Calculation.InflationPercent = pct
	return nil
}

func validateCurrency(s string) error {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return errors.New("use a 3-letter code like TJS or USD")
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return errors.New("use a 3-letter code like TJS or USD")
		}
	}
	return nil
}

func parseInflation(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, nil
	}
	pct, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("inflation %q: enter a percentage", s)
	}
	if pct < 0 || pct > 100 {
		return 0, fmt.Errorf("inflation %q: must be between 0 and 100", s)
	}
	return pct, nil
}

// NewSetupForm builds the setup wizard bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	goals := make([]huh.Option[string], len(model.Goals))
	for i, g := range model.Goals {
		goals[i] = huh.NewOption(g.Icon+" "+g.Name, g.Type)
	}

	themes := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themes[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to dreamcalc").
				Description("Plan how long it takes to save for a goal.\nA few settings first; run `dreamcalc setup` to change them later."),
			huh.NewInput().
				Title("Currency code").
				Description("Shown after every amount").
				CharLimit(3).
				Validate(validateCurrency).
				Value(&vals.Currency),
			huh.NewSelect[string]().
				Title("Default goal").
				Options(goals...).
				Value(&vals.DefaultGoal),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&vals.Theme),
			huh.NewSelect[string]().
				Title("Keep history").
				Options(
					huh.NewOption("On disk (SQLite)", config.BackendSQLite),
					huh.NewOption("This session only", config.BackendMemory),
				).
				Value(&vals.Backend),
			huh.NewInput().
				Title("Annual inflation %").
				Description("0 to ignore inflation").
				Validate(func(s string) error {
					_, err := parseInflation(s)
					return err
				}).
				Value(&vals.Inflation),
		),
	).WithShowHelp(true).WithTheme(huh.ThemeCharm())
}
