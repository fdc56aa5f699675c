// connectn plays connect-N games in the terminal.
//
// Usage:
//
//	connectn play              - Play a game with the configured players
//	connectn serve             - Start SSH server for remote play
//	connectn results           - Show recorded games and standings
//	connectn list              - List player strategies and colors
//
// Global flags:
//
//	--config <path>     - Configuration file (default: ~/.connectn/config.yaml)
//	--db <path>         - Results database (default: ~/.connectn/results.db)
//	--log-level <level> - debug, info, warn or error
//	--seed <value>      - Set RNG seed for reproducible computer players
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectn/internal/config"
	"github.com/vovakirdan/connectn/internal/players"

	// Import strategies to register them
	_ "github.com/vovakirdan/connectn/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectn",
	Short: "Connect-N - Drop pieces, line them up",
	Long: `Connect-N is a terminal game in the family of Connect Four. Players take
turns dropping pieces into the columns of an upright grid; the first color
to line up the required number of pieces in a row, column or diagonal wins.

Available commands:
  play     - Play a game locally
  serve    - Start SSH server for remote play
  results  - View recorded games and standings
  list     - Show player strategies and colors

Examples:
  connectn play
  connectn play --win 5 --columns 9
  connectn play --player Alice:tui:red --player Bob:terminal:yellow
  connectn serve --ssh :2222
  connectn results --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(listCmd)
}

// loadConfig reads the configuration, then applies .env, the environment
// and the global flags in that order.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, ".env"); err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates the stderr logger for a command.
func newLogger(level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// seedFor derives a per-seat seed so computer players differ from each other
// while staying reproducible.
func seedFor(seat int) int64 {
	return players.SeatSeed(flagSeed, seat)
}
