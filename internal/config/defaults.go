package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/connectn.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// defaults/connectn.yaml and is used if that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Rows:        6,
			Columns:     7,
			RowHeight:   3,
			ColumnWidth: 7,
		},
		AmountToWin: 4,
		Players: []PlayerConfig{
			{Name: "Player 1", Strategy: "tui", Color: "red"},
			{Name: "Computer", Strategy: "random", Color: "black"},
		},
		Storage: StorageConfig{
			DBPath: "~/.connectn/results.db",
			Record: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:          ":23234",
			IdleTimeout:      30 * time.Minute,
			Opponents:        1,
			OpponentStrategy: "random",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
