package connectn

import (
	"fmt"
	"strings"
)

// Outcome summarizes a finished game.
type Outcome struct {
	// Winner is only meaningful when HasWinner is true.
	Winner    Color
	HasWinner bool
	// WinnerIndices holds every player index sharing the winning color.
	WinnerIndices []int
	Tie           bool
	Moves         int
}

// JoinNames formats names as "A", "A and B" or "A, B, and C".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// announce builds the end-of-game message for an outcome.
func announce(o Outcome, names []string) string {
	if !o.HasWinner {
		return "Tie."
	}
	winners := make([]string, 0, len(o.WinnerIndices))
	for _, i := range o.WinnerIndices {
		winners = append(winners, names[i])
	}
	switch len(winners) {
	case 0:
		return fmt.Sprintf("%s wins!", o.Winner)
	case 1:
		return fmt.Sprintf("%s (%s) wins!", o.Winner, winners[0])
	}
	return fmt.Sprintf("%s team (%s) wins!", o.Winner, JoinNames(winners))
}
