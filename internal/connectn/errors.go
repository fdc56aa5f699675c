package connectn

import "errors"

var (
	// ErrInvalidColumn is returned when a piece is dropped into a column that
	// is out of range or already full.
	ErrInvalidColumn = errors.New("connectn: invalid column")

	// ErrInvalidConfiguration is returned when a game cannot be constructed
	// from the supplied players, colors or options.
	ErrInvalidConfiguration = errors.New("connectn: invalid configuration")

	// ErrLifecycle is returned when Start or Resume is called out of sequence.
	ErrLifecycle = errors.New("connectn: lifecycle violation")

	// ErrRendering is returned when a color label does not fit its column.
	ErrRendering = errors.New("connectn: rendering error")
)
