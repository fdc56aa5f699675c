package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/connectn/internal/connectn"
)

// pieceColors maps piece colors to terminal colors.
var pieceColors = map[connectn.Color]lipgloss.Color{
	connectn.Red:    lipgloss.Color("9"),
	connectn.Black:  lipgloss.Color("245"),
	connectn.Yellow: lipgloss.Color("11"),
	connectn.Blue:   lipgloss.Color("12"),
	connectn.Green:  lipgloss.Color("10"),
}

// PieceStyle returns the style used for a piece color.
func PieceStyle(r *lipgloss.Renderer, c connectn.Color) lipgloss.Style {
	style := r.NewStyle().Bold(true)
	if fg, ok := pieceColors[c]; ok {
		style = style.Foreground(fg)
	}
	return style
}

// StyleBoard renders a board with each piece drawn in its own color.
func StyleBoard(b *connectn.Board, r *lipgloss.Renderer) (string, error) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[connectn.Color]lipgloss.Style, len(pieceColors))
	for _, c := range connectn.Colors() {
		styles[c] = PieceStyle(r, c)
	}
	return b.Render(func(cell connectn.Cell, text string) string {
		if cell.Empty() {
			return text
		}
		return styles[cell.Color].Render(text)
	})
}

// columnCenter returns the text offset of the middle of column c, matching
// the layout of Board.ColumnLabels.
func columnCenter(b *connectn.Board, c int) int {
	width := b.ColumnWidth()
	if width < 1 {
		width = 1
	}
	return 1 + c*(width+1) + (width-1)/2
}

// Presenter clears the terminal and shows the final board with the
// announcement underneath.
type Presenter struct {
	out      io.Writer
	output   *termenv.Output
	renderer *lipgloss.Renderer
	banner   lipgloss.Style
}

// NewPresenter creates a presenter writing to out. A nil renderer uses one
// bound to out.
func NewPresenter(out io.Writer, r *lipgloss.Renderer) *Presenter {
	if r == nil {
		r = lipgloss.NewRenderer(out)
	}
	return &Presenter{
		out:      out,
		output:   termenv.NewOutput(out),
		renderer: r,
		banner:   r.NewStyle().Bold(true).MarginTop(1),
	}
}

// Present implements connectn.Presenter.
func (p *Presenter) Present(board *connectn.Board, announcement string) error {
	view, err := StyleBoard(board, p.renderer)
	if err != nil {
		return err
	}
	p.output.ClearScreen()
	if _, err := fmt.Fprintf(p.out, "%s\n%s\n", view, p.banner.Render(announcement)); err != nil {
		return fmt.Errorf("tui: present: %w", err)
	}
	return nil
}

var _ connectn.Presenter = (*Presenter)(nil)
