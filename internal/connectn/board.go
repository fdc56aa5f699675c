// Package connectn implements the connect-N board and turn orchestration.
// It contains no terminal or storage dependencies so that games can be driven
// by any Player implementation and verified on hand-built grids.
package connectn

import "fmt"

// Default board geometry.
const (
	DefaultRows        = 6
	DefaultColumns     = 7
	DefaultRowHeight   = 3
	DefaultColumnWidth = 7
	DefaultAmountToWin = 4
)

// Board is a gravity-fed grid of cells. Row 0 is the top of the board.
type Board struct {
	cells       [][]Cell
	numRows     int
	numColumns  int
	rowHeight   int
	columnWidth int
}

// NewBoard creates an empty board. rowHeight and columnWidth are only used
// when rendering.
func NewBoard(numRows, numColumns, rowHeight, columnWidth int) *Board {
	b := &Board{
		numRows:     numRows,
		numColumns:  numColumns,
		rowHeight:   rowHeight,
		columnWidth: columnWidth,
	}
	b.cells = make([][]Cell, numRows)
	for r := range b.cells {
		b.cells[r] = make([]Cell, numColumns)
	}
	return b
}

// DefaultBoard returns the classic 6x7 board.
func DefaultBoard() *Board {
	return NewBoard(DefaultRows, DefaultColumns, DefaultRowHeight, DefaultColumnWidth)
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.numRows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.numColumns }

// RowHeight returns the number of text lines drawn per row.
func (b *Board) RowHeight() int { return b.rowHeight }

// ColumnWidth returns the number of characters drawn per cell.
func (b *Board) ColumnWidth() int { return b.columnWidth }

// Cell returns the cell at (row, col). Out-of-range positions are empty.
func (b *Board) Cell(row, col int) Cell {
	if row < 0 || row >= b.numRows || col < 0 || col >= b.numColumns {
		return Cell{}
	}
	return b.cells[row][col]
}

// AvailableColumn reports whether a piece can still be dropped into col.
func (b *Board) AvailableColumn(col int) bool {
	if col < 0 || col >= b.numColumns || b.numRows == 0 {
		return false
	}
	return b.cells[0][col].Empty()
}

// AvailableColumns lists every column that still has room, in ascending order.
func (b *Board) AvailableColumns() []int {
	cols := make([]int, 0, b.numColumns)
	for c := 0; c < b.numColumns; c++ {
		if b.AvailableColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// landingRow returns the row a piece dropped into col settles in.
// The column must be available.
func (b *Board) landingRow(col int) int {
	row := 0
	for r := 0; r < b.numRows; r++ {
		if b.cells[r][col].Filled {
			break
		}
		row = r
	}
	return row
}

// DropPiece places color at the lowest empty row of col.
// The board is left unchanged when the column is unavailable.
func (b *Board) DropPiece(color Color, col int) error {
	if !b.AvailableColumn(col) {
		return fmt.Errorf("%w: column %d is not available", ErrInvalidColumn, col)
	}
	b.cells[b.landingRow(col)][col] = Cell{Color: color, Filled: true}
	return nil
}

// IsFull reports whether every column is full.
func (b *Board) IsFull() bool {
	if b.numRows == 0 {
		return true
	}
	for _, cell := range b.cells[0] {
		if cell.Empty() {
			return false
		}
	}
	return true
}

// PieceCount returns the number of occupied cells.
func (b *Board) PieceCount() int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Filled {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.numRows, b.numColumns, b.rowHeight, b.columnWidth)
	for r := range b.cells {
		copy(clone.cells[r], b.cells[r])
	}
	return clone
}
