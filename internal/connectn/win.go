package connectn

// WinningColor scans every row, column and diagonal for a run of at least
// amountToWin same-colored pieces. Lines are checked rows first, then
// columns, then diagonals; the first line that reaches the threshold decides.
func (b *Board) WinningColor(amountToWin int) (Color, bool) {
	for r := 0; r < b.numRows; r++ {
		if c, ok := scanLine(b.row(r), amountToWin); ok {
			return c, true
		}
	}
	for c := 0; c < b.numColumns; c++ {
		if color, ok := scanLine(b.column(c), amountToWin); ok {
			return color, true
		}
	}
	for d := 0; d < b.numRows+b.numColumns-1; d++ {
		if c, ok := scanLine(b.leftDiagonal(d), amountToWin); ok {
			return c, true
		}
		if c, ok := scanLine(b.rightDiagonal(d), amountToWin); ok {
			return c, true
		}
	}
	return 0, false
}

// scanLine walks a line once, tracking the current run.
func scanLine(line []Cell, amountToWin int) (Color, bool) {
	var (
		current Color
		count   int
	)
	for _, cell := range line {
		switch {
		case cell.Empty():
			count = 0
			continue
		case count > 0 && cell.Color == current:
			count++
		default:
			current = cell.Color
			count = 1
		}
		if count >= amountToWin {
			return current, true
		}
	}
	return 0, false
}

func (b *Board) row(r int) []Cell {
	return b.cells[r]
}

func (b *Board) column(c int) []Cell {
	line := make([]Cell, b.numRows)
	for r := 0; r < b.numRows; r++ {
		line[r] = b.cells[r][c]
	}
	return line
}

// leftDiagonal holds the cells where col == row - d + columns - 1.
func (b *Board) leftDiagonal(d int) []Cell {
	line := make([]Cell, 0, b.numRows)
	for r := 0; r < b.numRows; r++ {
		c := r - d + b.numColumns - 1
		if c >= 0 && c < b.numColumns {
			line = append(line, b.cells[r][c])
		}
	}
	return line
}

// rightDiagonal holds the cells where col == d - row.
func (b *Board) rightDiagonal(d int) []Cell {
	line := make([]Cell, 0, b.numRows)
	for r := 0; r < b.numRows; r++ {
		c := d - r
		if c >= 0 && c < b.numColumns {
			line = append(line, b.cells[r][c])
		}
	}
	return line
}
