package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/connectn/internal/connectn"
)

// Where a game was played.
const (
	SourceLocal = "local"
	SourceSSH   = "ssh"
)

// Result is the record of one finished game.
type Result struct {
	ID          int64
	MatchID     string
	Rows        int
	Columns     int
	AmountToWin int
	// WinnerColor is empty for a tie.
	WinnerColor  string
	Moves        int
	Source       string
	Participants []Participant
	CreatedAt    time.Time
}

// Participant is one player in a recorded game.
type Participant struct {
	Name     string
	Strategy string
	Color    string
	Winner   bool
}

// Tie reports whether the game ended without a winner.
func (r Result) Tie() bool {
	return r.WinnerColor == ""
}

// WinnerNames lists the names of the winning participants in seat order.
func (r Result) WinnerNames() []string {
	var names []string
	for _, p := range r.Participants {
		if p.Winner {
			names = append(names, p.Name)
		}
	}
	return names
}

// NewResult builds a record of an ended game under a fresh match ID.
// strategies[i] names the strategy that drove player i.
func NewResult(g *connectn.Game, strategies []string, source string) (Result, error) {
	if !g.Ended() {
		return Result{}, errors.New("storage: cannot record a game that has not ended")
	}

	board := g.Board()
	outcome := g.Outcome()
	r := Result{
		MatchID:     uuid.NewString(),
		Rows:        board.Rows(),
		Columns:     board.Columns(),
		AmountToWin: g.AmountToWin(),
		Moves:       outcome.Moves,
		Source:      source,
	}
	if outcome.HasWinner {
		r.WinnerColor = outcome.Winner.String()
	}

	winners := make(map[int]bool, len(outcome.WinnerIndices))
	for _, i := range outcome.WinnerIndices {
		winners[i] = true
	}
	colors := g.Colors()
	for i, p := range g.Players() {
		strategy := ""
		if i < len(strategies) {
			strategy = strategies[i]
		}
		r.Participants = append(r.Participants, Participant{
			Name:     p.Name(),
			Strategy: strategy,
			Color:    colors[i].String(),
			Winner:   winners[i],
		})
	}
	return r, nil
}
