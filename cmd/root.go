// Package cmd implements the dreamcalc CLI commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/dreamcalc/internal/cli"
	"github.com/theirongolddev/dreamcalc/internal/config"
	"github.com/theirongolddev/dreamcalc/internal/history"
	"github.com/theirongolddev/dreamcalc/internal/planner"
	"github.com/theirongolddev/dreamcalc/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagDataDir   string
	flagCurrency  string
	flagNoPersist bool
	flagQuiet     bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "dreamcalc",
	Short: "Savings goal planner",
	Long:  "Plan how long it takes to save for a goal, see what would get you there sooner, and keep a history of your plans.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory for the history database (default $XDG_DATA_HOME/dreamcalc)")
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Currency code shown with amounts (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoPersist, "no-persist", false, "Keep history in memory for this run only")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details")
}

func setupLogging() {
	level := zerolog.WarnLevel
	switch {
	case flagQuiet:
		level = zerolog.Disabled
	case flagVerbose:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

// app holds the components a command works with. Commands build it with
// openApp and must call close when done.
type app struct {
	cfg     config.Config
	calc    *planner.Calculator
	money   cli.Money
	history *history.Store
	close   func()
}

// loadConfig reads the config file and applies flag overrides. A broken
// config file is reported and defaults are used.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Str("path", config.Path()).Msg("using default config")
		cfg = config.DefaultConfig()
	}
	if flagCurrency != "" {
		cfg.General.Currency = flagCurrency
	}
	if flagNoPersist {
		cfg.Storage.Backend = config.BackendMemory
	}
	return cfg
}

func openApp() *app {
	cfg := loadConfig()
	logger := log.With().Str("component", "history").Logger()

	storage, closeFn := openStorage(cfg)

	return &app{
		cfg:     cfg,
		calc:    newCalculator(cfg),
		money:   cli.NewMoney(cfg.General.Currency, cfg.General.Locale),
		history: history.New(storage, history.WithLogger(logger)),
		close:   closeFn,
	}
}

func newCalculator(cfg config.Config) *planner.Calculator {
	return planner.New(planner.WithCurrency(cfg.General.Currency))
}

// openStorage returns the configured history backend. When the database
// cannot be opened the history lives in memory for this run.
func openStorage(cfg config.Config) (history.Storage, func()) {
	if cfg.Storage.Backend == config.BackendMemory {
		log.Debug().Msg("history kept in memory")
		return store.NewMemory(), func() {}
	}

	path := config.HistoryPath(cfg, flagDataDir)
	db, err := store.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("history database unavailable, keeping history in memory")
		return store.NewMemory(), func() {}
	}
	log.Debug().Str("path", path).Msg("history database opened")

	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("closing history database")
		}
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
