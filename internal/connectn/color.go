package connectn

import (
	"fmt"
	"strings"
)

// Color identifies the team a piece belongs to.
type Color uint8

// Available piece colors.
const (
	Red Color = iota
	Black
	Yellow
	Blue
	Green
)

// Colors returns every color in declaration order.
func Colors() []Color {
	return []Color{Red, Black, Yellow, Blue, Green}
}

// String returns the label used when rendering and announcing.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// ParseColor converts a case-insensitive label back into a Color.
func ParseColor(s string) (Color, error) {
	for _, c := range Colors() {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidConfiguration, s)
}

// Cell is a single board slot. The zero value is empty.
type Cell struct {
	Color  Color
	Filled bool
}

// Empty reports whether no piece occupies the cell.
func (c Cell) Empty() bool {
	return !c.Filled
}
