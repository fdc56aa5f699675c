// Package players provides the built-in Player strategies: a uniform-random
// computer player and a line-based terminal prompt for humans.
package players

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/connectn/internal/connectn"
)

// Random drops into a uniformly chosen available column.
type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom creates a random player. A zero seed seeds from the clock.
func NewRandom(name string, seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Name returns the player's display name.
func (p *Random) Name() string {
	return p.name
}

// Decide picks one of the available columns.
func (p *Random) Decide(board *connectn.Board, _ connectn.Color) (int, error) {
	cols := board.AvailableColumns()
	if len(cols) == 0 {
		return 0, fmt.Errorf("%w: no column has room", connectn.ErrInvalidColumn)
	}
	return cols[p.rng.Intn(len(cols))], nil
}

// SeatSeed derives the seed for a seat from a base seed. Seats get distinct
// seeds, and a nonzero base never yields 0, which would mean the clock.
// A zero base stays 0.
func SeatSeed(base int64, seat int) int64 {
	if base == 0 {
		return 0
	}
	if base < 0 {
		return base - int64(seat)
	}
	return base + int64(seat)
}
