// Package config provides YAML-based configuration loading for connectn.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/connectn/internal/connectn"
)

// Config is the complete connectn configuration.
type Config struct {
	Board       BoardConfig    `yaml:"board"`
	AmountToWin int            `yaml:"amount_to_win"`
	Players     []PlayerConfig `yaml:"players"`
	Storage     StorageConfig  `yaml:"storage"`
	Log         LogConfig      `yaml:"log"`
	SSH         SSHConfig      `yaml:"ssh"`
}

// BoardConfig defines the grid and how it is drawn.
type BoardConfig struct {
	Rows        int `yaml:"rows"`
	Columns     int `yaml:"columns"`
	RowHeight   int `yaml:"row_height"`
	ColumnWidth int `yaml:"column_width"`
}

// PlayerConfig defines one seat at the table.
type PlayerConfig struct {
	Name     string `yaml:"name"`
	Strategy string `yaml:"strategy"` // registry strategy ID
	Color    string `yaml:"color"`
}

// StorageConfig controls result recording.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	Record bool   `yaml:"record"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SSHConfig controls the SSH server.
type SSHConfig struct {
	Address          string        `yaml:"address"`
	HostKeyPath      string        `yaml:"host_key"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	Opponents        int           `yaml:"opponents"`
	OpponentStrategy string        `yaml:"opponent_strategy"`
}

// NewBoard creates an empty board with the configured geometry.
func (c Config) NewBoard() *connectn.Board {
	return connectn.NewBoard(c.Board.Rows, c.Board.Columns, c.Board.RowHeight, c.Board.ColumnWidth)
}

// Colors parses the player colors in turn order.
func (c Config) Colors() ([]connectn.Color, error) {
	colors := make([]connectn.Color, len(c.Players))
	for i, p := range c.Players {
		color, err := connectn.ParseColor(p.Color)
		if err != nil {
			return nil, fmt.Errorf("player %d (%s): %w", i+1, p.Name, err)
		}
		colors[i] = color
	}
	return colors, nil
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Rows < 1 || c.Board.Columns < 1 {
		errs = append(errs, fmt.Errorf("board must have at least one row and column, got %dx%d",
			c.Board.Rows, c.Board.Columns))
	}
	if c.Board.RowHeight < 1 {
		errs = append(errs, fmt.Errorf("board row_height must be positive, got %d", c.Board.RowHeight))
	}
	if c.Board.ColumnWidth < 1 {
		errs = append(errs, fmt.Errorf("board column_width must be positive, got %d", c.Board.ColumnWidth))
	}
	if c.AmountToWin < 1 {
		errs = append(errs, fmt.Errorf("amount_to_win must be positive, got %d", c.AmountToWin))
	}
	if len(c.Players) == 0 {
		errs = append(errs, errors.New("at least one player is required"))
	}
	for i, p := range c.Players {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("player %d has no name", i+1))
		}
		if p.Strategy == "" {
			errs = append(errs, fmt.Errorf("player %d (%s) has no strategy", i+1, p.Name))
		}
	}
	if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}
	if c.SSH.Opponents < 0 {
		errs = append(errs, fmt.Errorf("ssh opponents must not be negative, got %d", c.SSH.Opponents))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
