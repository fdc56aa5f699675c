package connectn

import (
	"fmt"
	"strconv"
	"strings"
)

// CellStyle decorates the padded text of one cell. It receives the cell and
// its text, exactly ColumnWidth characters wide, and returns what to print.
type CellStyle func(cell Cell, text string) string

// plainStyle leaves cell text untouched.
func plainStyle(_ Cell, text string) string { return text }

// Stringify renders the board as plain text.
func (b *Board) Stringify() (string, error) {
	return b.Render(plainStyle)
}

// Render draws every row as RowHeight lines of ColumnWidth-wide cells
// separated by '|', followed by a base line. Occupied cells show their color
// label centered on the middle line. It fails with ErrRendering if a label
// does not fit in the column width.
func (b *Board) Render(style CellStyle) (string, error) {
	if style == nil {
		style = plainStyle
	}
	height := b.rowHeight
	if height < 1 {
		height = 1
	}
	width := b.columnWidth
	if width < 0 {
		width = 0
	}
	labelLine := (height - 1) / 2
	blank := strings.Repeat(" ", width)

	var sb strings.Builder
	for r := 0; r < b.numRows; r++ {
		for line := 0; line < height; line++ {
			sb.WriteByte('|')
			for c := 0; c < b.numColumns; c++ {
				cell := b.cells[r][c]
				text := blank
				if cell.Filled {
					label := cell.Color.String()
					if len(label) > width {
						return "", fmt.Errorf("%w: label %q is wider than column width %d",
							ErrRendering, label, width)
					}
					if line == labelLine {
						text = center(label, width)
					}
				}
				sb.WriteString(style(cell, text))
				sb.WriteByte('|')
			}
			sb.WriteByte('\n')
		}
	}

	sb.WriteByte('+')
	for c := 0; c < b.numColumns; c++ {
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteByte('+')
	}
	return sb.String(), nil
}

// ColumnLabels returns a header of 1-based column numbers aligned with the
// cells drawn by Render.
func (b *Board) ColumnLabels() string {
	width := b.columnWidth
	if width < 1 {
		width = 1
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", 1+(width-1)/2))
	for c := 1; c <= b.numColumns; c++ {
		num := strconv.Itoa(c)
		sb.WriteString(num)
		pad := width + 1 - len(num)
		if pad < 1 {
			pad = 1
		}
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return strings.TrimRight(sb.String(), " ")
}

func center(label string, width int) string {
	left := (width - len(label)) / 2
	right := width - len(label) - left
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", right)
}
