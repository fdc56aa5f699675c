package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/connectn/internal/connectn"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults = %+v\nwant %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
board:
  rows: 8
amount_to_win: 5
players:
  - name: Ann
    strategy: random
    color: yellow
  - name: Ben
    strategy: random
    color: blue
  - name: Cat
    strategy: random
    color: yellow
ssh:
  idle_timeout: 5m
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Rows != 8 || cfg.Board.Columns != 7 {
		t.Errorf("board = %+v, want rows from file and columns from defaults", cfg.Board)
	}
	if cfg.AmountToWin != 5 {
		t.Errorf("AmountToWin = %d, want 5", cfg.AmountToWin)
	}
	if len(cfg.Players) != 3 {
		t.Fatalf("players = %d, want 3", len(cfg.Players))
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.SSH.IdleTimeout)
	}

	colors, err := cfg.Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	want := []connectn.Color{connectn.Yellow, connectn.Blue, connectn.Yellow}
	if !reflect.DeepEqual(colors, want) {
		t.Errorf("Colors() = %v, want %v", colors, want)
	}

	b := cfg.NewBoard()
	if b.Rows() != 8 || b.ColumnWidth() != 7 {
		t.Errorf("NewBoard() = %dx%d width %d", b.Rows(), b.Columns(), b.ColumnWidth())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "no rows",
			mutate:  func(c *Config) { c.Board.Rows = 0 },
			wantErr: "at least one row",
		},
		{
			name:    "zero amount to win",
			mutate:  func(c *Config) { c.AmountToWin = 0 },
			wantErr: "amount_to_win",
		},
		{
			name:    "no players",
			mutate:  func(c *Config) { c.Players = nil },
			wantErr: "at least one player",
		},
		{
			name:    "unknown color",
			mutate:  func(c *Config) { c.Players[0].Color = "purple" },
			wantErr: "unknown color",
		},
		{
			name:    "missing strategy",
			mutate:  func(c *Config) { c.Players[1].Strategy = "" },
			wantErr: "no strategy",
		},
		{
			name:    "narrow columns",
			mutate:  func(c *Config) { c.Board.ColumnWidth = 0 },
			wantErr: "column_width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "CONNECTN_DB=/tmp/from-file.db\nCONNECTN_LOG_LEVEL=debug\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogLevel, "warn")

	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, envFile); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/from-file.db" {
		t.Errorf("DBPath = %q, want value from .env", cfg.Storage.DBPath)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, process environment should win", cfg.Log.Level)
	}
	if cfg.SSH.Address != ":23234" {
		t.Errorf("SSH.Address = %q, should keep default", cfg.SSH.Address)
	}

	if err := ApplyEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/.connectn/results.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".connectn", "results.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}
	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}
