// Package tui provides the interactive Bubble Tea planner for dreamcalc.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/config"
	"github.com/theirongolddev/dreamcalc/internal/history"
	"github.com/theirongolddev/dreamcalc/internal/model"
	"github.com/theirongolddev/dreamcalc/internal/planner"
	"github.com/theirongolddev/dreamcalc/internal/tui/components"
	"github.com/theirongolddev/dreamcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// History is the calculation log the TUI reads and appends to.
type History interface {
	Record(dreamName string, in model.PlanInput, result model.PlanResult) model.CalculationRecord
	List() []model.CalculationRecord
	Delete(id string)
	Clear()
	Statistics() model.Statistics
}

// Options configures a new App.
type Options struct {
	Calculator *planner.Calculator
	History    History
	Money      cli.Money
	Config     config.Config

	// NeedSetup shows the setup wizard before the planner.
	NeedSetup bool
	// SaveConfig persists the config after setup; nil skips saving.
	SaveConfig func(config.Config) error
}

// calcTickMsg fires when the calculation delay for request seq has elapsed.
type calcTickMsg struct {
	seq int
}

// recordedMsg is sent once a finished plan has been written to history.
type recordedMsg struct {
	record model.CalculationRecord
}

type calcRequest struct {
	seq   int
	name  string
	input model.PlanInput
}

// planView is a computed plan ready for display.
type planView struct {
	name      string
	input     model.PlanInput
	result    model.PlanResult
	series    model.Series
	inflation *model.InflationResult
}

const (
	tabPlan = iota
	tabHistory
	tabStats
)

// App is the root Bubble Tea model.
type App struct {
	calc       *planner.Calculator
	history    History
	money      cli.Money
	cfg        config.Config
	saveConfig func(config.Config) error
	delay      time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string
	statusErr bool

	// Plan form; nil when the result is shown
	form *huh.Form
	vals *planValues

	// Pending calculation. A newer request replaces it and its tick is
	// ignored when it arrives.
	calcSeq int
	pending *calcRequest
	spinner spinner.Model
	plan    *planView

	// History tab
	records      []model.CalculationRecord
	cursor       int
	confirmClear bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5

	// chartPoints caps the savings series kept for the chart.
	chartPoints = 2 * maxContentWidth
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	calc := opts.Calculator
	if calc == nil {
		calc = planner.New(planner.WithCurrency(opts.Money.Code))
	}

	a := App{
		calc:       calc,
		history:    opts.History,
		money:      opts.Money,
		cfg:        opts.Config,
		saveConfig: opts.SaveConfig,
		delay:      time.Duration(opts.Config.Calculation.DelayMs) * time.Millisecond,
		spinner:    sp,
		needSetup:  opts.NeedSetup,
		vals:       &planValues{goal: opts.Config.General.DefaultGoal},
	}
	if a.vals.goal == "" {
		a.vals.goal = model.GoalByType("").Type
	}
	a.records = a.history.List()
	a.form = newPlanForm(a.vals, a.money)

	if a.needSetup {
		vals := SetupValuesFrom(opts.Config)
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	} else if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// schedule starts the calculation delay for a new request, superseding any
// pending one.
func (a *App) schedule(name string, in model.PlanInput) tea.Cmd {
	a.calcSeq++
	seq := a.calcSeq
	a.pending = &calcRequest{seq: seq, name: name, input: in}
	a.form = nil
	a.activeTab = tabPlan
	a.status = ""

	return tea.Batch(
		a.spinner.Tick,
		tea.Tick(a.delay, func(time.Time) tea.Msg {
			return calcTickMsg{seq: seq}
		}),
	)
}

// finish computes the pending request, shows it, then hands it to history.
func (a *App) finish() tea.Cmd {
	req := *a.pending
	a.pending = nil

	result := a.calc.ComputePlan(req.input)
	pv := &planView{name: req.name, input: req.input, result: result}
	if pv.name == "" {
		pv.name = history.DefaultDreamName
	}
	if !result.IsAlreadyReached {
		pv.series = planner.SampledProgressSeries(req.input, result.Months, chartPoints)
		if pct := a.cfg.Calculation.InflationPercent; pct > 0 {
			inf := a.calc.ApplyInflation(req.input.TotalCost, req.input.MonthlySave, result.Months, pct)
			pv.inflation = &inf
		}
	}
	a.plan = pv

	return recordCmd(a.history, req.name, req.input, result)
}

func recordCmd(h History, name string, in model.PlanInput, result model.PlanResult) tea.Cmd {
	return func() tea.Msg {
		return recordedMsg{record: h.Record(name, in, result)}
	}
}

// openForm shows the plan form, pre-filled with vals.
func (a *App) openForm(vals planValues) tea.Cmd {
	*a.vals = vals
	a.form = newPlanForm(a.vals, a.money)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.contentWidth()-4, 80))
	}
	a.activeTab = tabPlan
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.form != nil {
			a.form = a.form.WithWidth(min(a.contentWidth()-4, 80))
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.needSetup {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.activeTab == tabPlan && a.form != nil {
			return a.updatePlanForm(msg)
		}
		return a.updateKeys(msg)

	case calcTickMsg:
		if a.pending == nil || msg.seq != a.pending.seq {
			return a, nil
		}
		return a, a.finish()

	case recordedMsg:
		a.records = a.history.List()
		a.cursor = 0
		a.status = "Saved to history"
		a.statusErr = false
		return a, nil

	case spinner.TickMsg:
		if a.pending != nil {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.) to the active form
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.form != nil {
		return a.updatePlanForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.confirmClear {
		a.confirmClear = false
		if key == "y" || key == "Y" {
			a.history.Clear()
			a.records = a.history.List()
			a.cursor = 0
			a.status = "History cleared"
			a.statusErr = false
		}
		return a, nil
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}
	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabPlan:
		return a.updatePlanKeys(key)
	case tabHistory:
		return a.updateHistoryKeys(key)
	}
	return a, nil
}

func (a App) updatePlanKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "e", "enter":
		return a, a.openForm(*a.vals)
	case "r":
		if a.plan != nil {
			name := a.plan.name
			if name == history.DefaultDreamName {
				name = ""
			}
			return a, a.schedule(name, a.plan.input)
		}
	}
	return a, nil
}

func (a App) updatePlanForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.form = nil
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		name, in, err := a.vals.resolve()
		if err != nil {
			a.status = err.Error()
			a.statusErr = true
			return a, a.openForm(*a.vals)
		}
		return a, a.schedule(name, in)
	case huh.StateAborted:
		a.form = nil
		return a, nil
	}
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, a.openForm(planValues{goal: a.cfg.General.DefaultGoal})
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, a.form.Init()
	}
	return a, cmd
}

func (a *App) applySetup() {
	cfg := a.cfg
	if err := a.setupVals.Apply(&cfg); err != nil {
		a.status = err.Error()
		a.statusErr = true
		return
	}
	a.cfg = cfg
	theme.SetActive(cfg.Appearance.Theme)
	a.money = cli.NewMoney(cfg.General.Currency, cfg.General.Locale)
	a.calc = planner.New(planner.WithCurrency(cfg.General.Currency))

	if a.saveConfig != nil {
		if err := a.saveConfig(cfg); err != nil {
			a.status = fmt.Sprintf("Could not save config: %s", err)
			a.statusErr = true
			return
		}
	}
	a.status = "Settings saved"
	a.statusErr = false
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabHistory && a.cursor > 0 {
			a.cursor--
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabHistory && a.cursor < len(a.records)-1 {
			a.cursor++
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same widths used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  dreamcalc needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Tip).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"p h s", "Plan / History / Stats"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move in history"},
		}},
		{"Plan", []struct{ key, desc string }{
			{"n", "New plan"},
			{"r", "Recalculate"},
			{"Esc", "Close the form"},
		}},
		{"History", []struct{ key, desc string }{
			{"Enter", "Load into the form"},
			{"d", "Delete entry"},
			{"C", "Clear all"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-7s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch {
	case a.confirmClear:
		return "Clear all history? [y]es / any key to cancel"
	case a.activeTab == tabPlan && a.form != nil:
		return "[enter]next  [shift+tab]back  [esc]close  [ctrl+c]quit"
	case a.activeTab == tabPlan:
		return "[n]ew  [r]ecalc  [?]help  [q]uit"
	case a.activeTab == tabHistory:
		return "[j/k]move  [enter]load  [d]elete  [C]lear  [q]uit"
	}
	return "[?]help  [q]uit"
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.hints(), a.status, a.statusErr)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabPlan:
		content = a.renderPlanTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabStats:
		content = a.renderStatsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
