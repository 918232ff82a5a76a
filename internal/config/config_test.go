package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveToLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dreamcalc", "config.toml")

	cfg := DefaultConfig()
	cfg.General.Currency = "USD"
	cfg.Storage.Backend = BackendMemory
	cfg.Calculation.InflationPercent = 7.5

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("perm = %o, want 600", perm)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != cfg {
		t.Errorf("loaded %+v, want %+v", got, cfg)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general]\ncurrency = \"EUR\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.General.Currency)
	}
	if cfg.Calculation.DelayMs != 300 {
		t.Errorf("DelayMs = %d, want default 300", cfg.Calculation.DelayMs)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want default sqlite", cfg.Storage.Backend)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", "[general\n", "parsing config"},
		{"unknown backend", "[storage]\nbackend = \"redis\"\n", "unknown storage backend"},
		{"negative delay", "[calculation]\ndelay_ms = -1\n", "delay_ms"},
		{"nan inflation", "[calculation]\ninflation_percent = nan\n", "inflation_percent"},
		{"inf inflation", "[calculation]\ninflation_percent = inf\n", "inflation_percent"},
		{"inflation over 100", "[calculation]\ninflation_percent = 250.0\n", "inflation_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFrom(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestHistoryPath(t *testing.T) {
	cfg := DefaultConfig()
	if got := HistoryPath(cfg, "/data"); got != filepath.Join("/data", "dreamcalc.db") {
		t.Errorf("HistoryPath = %q", got)
	}

	cfg.Storage.Path = "/custom/history.db"
	if got := HistoryPath(cfg, "/data"); got != "/custom/history.db" {
		t.Errorf("HistoryPath with override = %q", got)
	}
}

func TestDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := Path(); got != filepath.Join("/xdg", "dreamcalc", "config.toml") {
		t.Errorf("Path = %q", got)
	}
}
