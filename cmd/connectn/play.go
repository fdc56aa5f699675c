package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectn/internal/config"
	"github.com/vovakirdan/connectn/internal/connectn"
	"github.com/vovakirdan/connectn/internal/platform/tui"
	"github.com/vovakirdan/connectn/internal/players"
	"github.com/vovakirdan/connectn/internal/registry"
	"github.com/vovakirdan/connectn/internal/storage"
)

var (
	flagRows     int
	flagColumns  int
	flagWin      int
	flagPlayers  []string
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the configured players, or the players given with
--player. Each --player is name:strategy:color and seats are taken in the
order given; the first player moves first.

Controls (tui strategy):
  Left/Right   - Move the cursor
  Enter/Space  - Drop a piece
  1-9          - Drop in that column
  Q/Esc        - Quit

Examples:
  connectn play
  connectn play --rows 8 --columns 9 --win 5
  connectn play --player Alice:tui:red --player Bot:random:black --player Bot2:random:yellow
  connectn play --player A:random:red --player B:random:black --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Number of board rows (overrides config)")
	playCmd.Flags().IntVar(&flagColumns, "columns", 0, "Number of board columns (overrides config)")
	playCmd.Flags().IntVar(&flagWin, "win", 0, "Pieces in a line needed to win (overrides config)")
	playCmd.Flags().StringArrayVar(&flagPlayers, "player", nil, "Player as name:strategy:color (repeatable)")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save the result")
}

// parsePlayer parses a name:strategy:color player flag.
func parsePlayer(s string) (config.PlayerConfig, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return config.PlayerConfig{}, fmt.Errorf("player %q: want name:strategy:color", s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return config.PlayerConfig{}, fmt.Errorf("player %q: name, strategy and color are all required", s)
	}
	return config.PlayerConfig{Name: parts[0], Strategy: parts[1], Color: parts[2]}, nil
}

// applyPlayFlags overrides cfg with the play command's flags.
func applyPlayFlags(cfg *config.Config) error {
	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}
	if flagColumns > 0 {
		cfg.Board.Columns = flagColumns
	}
	if flagWin > 0 {
		cfg.AmountToWin = flagWin
	}
	if flagNoRecord {
		cfg.Storage.Record = false
	}
	if len(flagPlayers) == 0 {
		return nil
	}
	parsed := make([]config.PlayerConfig, 0, len(flagPlayers))
	for _, f := range flagPlayers {
		p, err := parsePlayer(f)
		if err != nil {
			return err
		}
		parsed = append(parsed, p)
	}
	cfg.Players = parsed
	return nil
}

// checkInputSharing rejects seating the line-based terminal player and the
// tui picker together: both read stdin, and the terminal player's buffered
// reader would take keys meant for the picker.
func checkInputSharing(seats []config.PlayerConfig) error {
	var terminal, picker string
	for _, pc := range seats {
		switch pc.Strategy {
		case "terminal":
			terminal = pc.Name
		case "tui":
			picker = pc.Name
		}
	}
	if terminal != "" && picker != "" {
		return fmt.Errorf("players %q (terminal) and %q (tui) cannot share one terminal; use the same strategy for every human",
			terminal, picker)
	}
	return nil
}

// buildPlayers creates every configured player through the registry.
func buildPlayers(cfg config.Config) ([]connectn.Player, []string, error) {
	if err := checkInputSharing(cfg.Players); err != nil {
		return nil, nil, err
	}
	seats := make([]connectn.Player, len(cfg.Players))
	strategies := make([]string, len(cfg.Players))
	for i, pc := range cfg.Players {
		p, err := registry.Create(pc.Strategy, registry.Options{
			Name: pc.Name,
			Seed: seedFor(i),
			In:   os.Stdin,
			Out:  os.Stdout,
		})
		if err != nil {
			return nil, nil, err
		}
		seats[i] = p
		strategies[i] = pc.Strategy
	}
	return seats, strategies, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyPlayFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log.Level, "connectn")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	colors, err := cfg.Colors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	seats, strategies, err := buildPlayers(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'connectn list' to see available strategies.")
		os.Exit(1)
	}

	board := cfg.NewBoard()
	warnIfTooWide(logger, board)

	game, err := connectn.New(board, seats, colors,
		connectn.WithAmountToWin(cfg.AmountToWin),
		connectn.WithPresenter(tui.NewPresenter(os.Stdout, nil)),
		connectn.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := game.Start(); err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, players.ErrInputClosed) {
			fmt.Println("Game abandoned.")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Storage.Record {
		recordResult(logger, cfg.Storage.DBPath, game, strategies)
	}
}

// recordResult saves a finished game. The game has already been shown, so
// failures only warn.
func recordResult(logger *log.Logger, dbPath string, game *connectn.Game, strategies []string) {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return
	}
	defer store.Close()

	result, err := storage.NewResult(game, strategies, storage.SourceLocal)
	if err != nil {
		logger.Warn("could not build result", "error", err)
		return
	}
	if _, err := store.SaveResult(result); err != nil {
		logger.Warn("could not save result", "error", err)
		return
	}
	logger.Debug("result saved", "match", result.MatchID, "db", dbPath)
}

// warnIfTooWide warns when the board will not fit the terminal.
func warnIfTooWide(logger *log.Logger, board *connectn.Board) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	need := board.Columns()*(board.ColumnWidth()+1) + 1
	if need > width {
		logger.Warn("board is wider than the terminal", "board", need, "terminal", width)
	}
}
