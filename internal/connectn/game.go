package connectn

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Game runs the turn loop for a set of players over one board.
// Its lifecycle only moves forward: not started, started, ended.
type Game struct {
	board       *Board
	players     []Player
	colors      []Color
	current     int
	amountToWin int
	started     bool
	ended       bool
	moves       int

	won           bool
	winnerColor   Color
	winnerIndices []int

	presenter Presenter
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithAmountToWin sets the run length needed to win.
func WithAmountToWin(n int) Option {
	return func(g *Game) { g.amountToWin = n }
}

// WithPresenter sets the collaborator that shows the final board.
func WithPresenter(p Presenter) Option {
	return func(g *Game) { g.presenter = p }
}

// WithLogger sets the logger used for move tracing.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game. colors[i] is the color of players[i]; several players
// may share a color to form a team. A nil board is replaced by DefaultBoard.
func New(board *Board, players []Player, colors []Color, opts ...Option) (*Game, error) {
	if len(players) != len(colors) {
		return nil, fmt.Errorf("%w: %d players but %d colors",
			ErrInvalidConfiguration, len(players), len(colors))
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrInvalidConfiguration)
	}
	if board == nil {
		board = DefaultBoard()
	}

	g := &Game{
		board:       board,
		players:     append([]Player(nil), players...),
		colors:      append([]Color(nil), colors...),
		amountToWin: DefaultAmountToWin,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.amountToWin < 1 {
		return nil, fmt.Errorf("%w: amount to win must be at least 1, got %d",
			ErrInvalidConfiguration, g.amountToWin)
	}
	return g, nil
}

// Start begins the game and plays it to completion.
func (g *Game) Start() error {
	if g.started {
		return fmt.Errorf("%w: game already started", ErrLifecycle)
	}
	if g.ended {
		return fmt.Errorf("%w: game already ended", ErrLifecycle)
	}
	g.started = true
	g.logger.Debug("game started",
		"players", len(g.players),
		"rows", g.board.Rows(),
		"columns", g.board.Columns(),
		"amount_to_win", g.amountToWin,
	)
	return g.Resume()
}

// Resume runs turns until the game ends or a turn fails.
// A failed turn leaves the game started and the board untouched.
func (g *Game) Resume() error {
	if !g.started {
		return fmt.Errorf("%w: game not started", ErrLifecycle)
	}
	if g.ended {
		return fmt.Errorf("%w: game already ended", ErrLifecycle)
	}

	for {
		if err := g.takeTurn(); err != nil {
			return err
		}
		if color, ok := g.board.WinningColor(g.amountToWin); ok {
			return g.handleWin(color)
		}
		if g.board.IsFull() {
			return g.handleTie()
		}
		g.switchTurn()
	}
}

func (g *Game) takeTurn() error {
	player := g.players[g.current]
	color := g.colors[g.current]

	col, err := player.Decide(g.board.Clone(), color)
	if err != nil {
		return fmt.Errorf("player %s: %w", player.Name(), err)
	}
	if err := g.board.DropPiece(color, col); err != nil {
		return fmt.Errorf("player %s: %w", player.Name(), err)
	}
	g.moves++
	g.logger.Debug("piece dropped",
		"player", player.Name(),
		"color", color,
		"column", col,
		"move", g.moves,
	)
	return nil
}

func (g *Game) switchTurn() {
	g.current = (g.current + 1) % len(g.players)
}

func (g *Game) handleWin(color Color) error {
	g.ended = true
	g.won = true
	g.winnerColor = color
	g.winnerIndices = g.IndicesWithColor(color)
	g.logger.Info("game won", "color", color, "winners", g.winnerIndices, "moves", g.moves)
	return g.present()
}

func (g *Game) handleTie() error {
	g.ended = true
	g.logger.Info("game tied", "moves", g.moves)
	return g.present()
}

func (g *Game) present() error {
	if g.presenter == nil {
		return nil
	}
	return g.presenter.Present(g.board.Clone(), g.Announcement())
}

// IndicesWithColor returns the indices of every player holding color.
func (g *Game) IndicesWithColor(color Color) []int {
	var indices []int
	for i, c := range g.colors {
		if c == color {
			indices = append(indices, i)
		}
	}
	return indices
}

// Started reports whether Start has been called.
func (g *Game) Started() bool { return g.started }

// Ended reports whether the game has been won or tied.
func (g *Game) Ended() bool { return g.ended }

// Winners returns the indices of the winning players, or nil if there is no
// winner yet.
func (g *Game) Winners() []int {
	if !g.won {
		return nil
	}
	return append([]int{}, g.winnerIndices...)
}

// WinningColor returns the winning color once the game has been won.
func (g *Game) WinningColor() (Color, bool) {
	return g.winnerColor, g.won
}

// Outcome summarizes the game. It is only meaningful once Ended is true.
func (g *Game) Outcome() Outcome {
	return Outcome{
		Winner:        g.winnerColor,
		HasWinner:     g.won,
		WinnerIndices: g.Winners(),
		Tie:           g.ended && !g.won,
		Moves:         g.moves,
	}
}

// Announcement returns the message shown when the game ends.
func (g *Game) Announcement() string {
	return announce(g.Outcome(), g.names())
}

func (g *Game) names() []string {
	names := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name()
	}
	return names
}

// Board returns a snapshot of the current board.
func (g *Game) Board() *Board { return g.board.Clone() }

// CurrentPlayer returns the index of the player whose turn it is.
func (g *Game) CurrentPlayer() int { return g.current }

// Moves returns the number of pieces dropped so far.
func (g *Game) Moves() int { return g.moves }

// AmountToWin returns the run length needed to win.
func (g *Game) AmountToWin() int { return g.amountToWin }

// Players returns the players in turn order.
func (g *Game) Players() []Player { return append([]Player(nil), g.players...) }

// Colors returns the player colors in turn order.
func (g *Game) Colors() []Color { return append([]Color(nil), g.colors...) }
