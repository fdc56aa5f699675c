package players

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/connectn/internal/connectn"
)

// ErrInputClosed is returned when the terminal runs out of input.
var ErrInputClosed = errors.New("players: input closed")

// Terminal asks a human for a column at a text prompt. It keeps asking
// until the answer is a valid, available 1-based column number.
type Terminal struct {
	name   string
	in     *bufio.Reader
	out    io.Writer
	output *termenv.Output
}

// NewTerminal creates a prompt-driven player reading from in and writing to out.
// Players sharing a stream should share one *bufio.Reader so that none of them
// buffers lines meant for another.
func NewTerminal(name string, in io.Reader, out io.Writer) *Terminal {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Terminal{
		name:   name,
		in:     br,
		out:    out,
		output: termenv.NewOutput(out),
	}
}

// Name returns the player's display name.
func (p *Terminal) Name() string {
	return p.name
}

// Decide redraws the board and prompts until a valid column is entered.
func (p *Terminal) Decide(board *connectn.Board, color connectn.Color) (int, error) {
	view, err := board.Stringify()
	if err != nil {
		return 0, err
	}
	labels := board.ColumnLabels()

	var problem string
	for {
		p.output.ClearScreen()
		fmt.Fprintln(p.out, view)
		fmt.Fprintln(p.out, labels)
		if problem != "" {
			fmt.Fprintln(p.out, problem)
		}
		fmt.Fprintf(p.out, "%s (%s):\n", color, p.name)

		line, readErr := p.in.ReadString('\n')
		if readErr != nil && (readErr != io.EOF || strings.TrimSpace(line) == "") {
			if readErr == io.EOF {
				return 0, ErrInputClosed
			}
			return 0, fmt.Errorf("players: read input: %w", readErr)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			problem = "Please input a valid integer."
			continue
		}
		if col := n - 1; board.AvailableColumn(col) {
			return col, nil
		}
		problem = fmt.Sprintf("Please input a valid column index (1-%d).", board.Columns())
	}
}
