package cmd

import (
	"fmt"

	"github.com/theirongolddev/dreamcalc/internal/config"
	"github.com/theirongolddev/dreamcalc/internal/tui"
	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive planner",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	a := openApp()
	defer a.close()

	theme.SetActive(a.cfg.Appearance.Theme)

	// Background fills need ANSI output even when the profile probe says Ascii.
	lipgloss.SetColorProfile(termenv.TrueColor)

	model := tui.NewApp(tui.Options{
		Calculator: a.calc,
		History:    a.history,
		Money:      a.money,
		Config:     a.cfg,
		NeedSetup:  !config.Exists(),
		SaveConfig: config.Save,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
