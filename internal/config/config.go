// Package config loads and saves the dreamcalc TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all dreamcalc configuration.
type Config struct {
	General     GeneralConfig     `toml:"general"`
	Storage     StorageConfig     `toml:"storage"`
	Calculation CalculationConfig `toml:"calculation"`
	Appearance  AppearanceConfig  `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency    string `toml:"currency"`
	Locale      string `toml:"locale"`
	DefaultGoal string `toml:"default_goal"`
}

// StorageConfig selects where the history is persisted.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path,omitempty"`
}

// CalculationConfig tunes how plans are computed and shown.
type CalculationConfig struct {
	DelayMs          int     `toml:"delay_ms"`
	InflationPercent float64 `toml:"inflation_percent"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:    "TJS",
			Locale:      "en",
			DefaultGoal: "car",
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
		},
		Calculation: CalculationConfig{
			DelayMs: 300,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dreamcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dreamcalc")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "dreamcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dreamcalc")
}

// HistoryPath returns the SQLite database path for cfg, honoring storage.path.
func HistoryPath(cfg Config, dataDir string) string {
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}
	if dataDir == "" {
		dataDir = DataDir()
	}
	return filepath.Join(dataDir, "dreamcalc.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", c.Storage.Backend, BackendSQLite, BackendMemory)
	}
	if c.Calculation.DelayMs < 0 {
		return fmt.Errorf("calculation.delay_ms must not be negative, got %d", c.Calculation.DelayMs)
	}
	if p := c.Calculation.InflationPercent; !(p >= 0 && p <= 100) {
		return fmt.Errorf("calculation.inflation_percent must be between 0 and 100, got %v", p)
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's config file
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
