package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectn/internal/connectn"
	"github.com/vovakirdan/connectn/internal/registry"
)

// ErrAborted is returned when the human quits instead of choosing a column.
var ErrAborted = errors.New("tui: player quit")

// PickerModel is the Bubble Tea model for choosing a column.
// It quits as soon as a column is chosen or the player aborts.
type PickerModel struct {
	board    *connectn.Board
	color    connectn.Color
	name     string
	cursor   int
	chosen   int
	aborted  bool
	problem  string
	keys     PickerKeyMap
	help     help.Model
	renderer *lipgloss.Renderer
}

// NewPickerModel creates a picker for board. The cursor starts on the open
// column nearest the middle.
func NewPickerModel(board *connectn.Board, color connectn.Color, name string, r *lipgloss.Renderer) PickerModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return PickerModel{
		board:    board,
		color:    color,
		name:     name,
		cursor:   nearestOpen(board, board.Columns()/2),
		chosen:   -1,
		keys:     DefaultPickerKeyMap(),
		help:     help.New(),
		renderer: r,
	}
}

// nearestOpen returns the available column closest to from, preferring the
// left on ties. Returns from if no column is open.
func nearestOpen(b *connectn.Board, from int) int {
	for d := 0; d < b.Columns(); d++ {
		if b.AvailableColumn(from - d) {
			return from - d
		}
		if b.AvailableColumn(from + d) {
			return from + d
		}
	}
	return from
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
		m.problem = ""

	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < m.board.Columns()-1 {
			m.cursor++
		}
		m.problem = ""

	case key.Matches(keyMsg, m.keys.Jump):
		col := int(keyMsg.String()[0] - '1')
		if col >= m.board.Columns() {
			m.problem = fmt.Sprintf("Please input a valid column index (1-%d).", m.board.Columns())
			return m, nil
		}
		m.cursor = col
		return m.drop()

	case key.Matches(keyMsg, m.keys.Drop):
		return m.drop()
	}

	return m, nil
}

func (m PickerModel) drop() (tea.Model, tea.Cmd) {
	if !m.board.AvailableColumn(m.cursor) {
		m.problem = fmt.Sprintf("Column %d is full.", m.cursor+1)
		return m, nil
	}
	m.chosen = m.cursor
	return m, tea.Quit
}

// View renders the cursor, the board and the prompt.
func (m PickerModel) View() string {
	if m.chosen >= 0 || m.aborted {
		return ""
	}

	style := PieceStyle(m.renderer, m.color)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", columnCenter(m.board, m.cursor)))
	sb.WriteString(style.Render("v"))
	sb.WriteByte('\n')

	view, err := StyleBoard(m.board, m.renderer)
	if err != nil {
		view = err.Error()
	}
	sb.WriteString(view)
	sb.WriteByte('\n')
	sb.WriteString(m.board.ColumnLabels())
	sb.WriteString("\n\n")

	if m.problem != "" {
		sb.WriteString(m.renderer.NewStyle().Foreground(lipgloss.Color("9")).Render(m.problem))
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf("%s (%s):", style.Render(m.color.String()), m.name))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteByte('\n')
	return sb.String()
}

// Chosen returns the selected column once the player has dropped a piece.
func (m PickerModel) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// Aborted reports whether the player quit.
func (m PickerModel) Aborted() bool {
	return m.aborted
}

// Cursor returns the highlighted column.
func (m PickerModel) Cursor() int {
	return m.cursor
}

// Picker is a human Player that chooses columns in a Bubble Tea program.
type Picker struct {
	name     string
	renderer *lipgloss.Renderer
	options  []tea.ProgramOption
	input    *SharedInput
}

// NewPicker creates a picker player. Program options select the terminal
// streams, which lets the same player run locally or over SSH.
func NewPicker(name string, r *lipgloss.Renderer, opts ...tea.ProgramOption) *Picker {
	return &Picker{
		name:     name,
		renderer: r,
		options:  opts,
	}
}

// ShareInput makes every turn read from in. Use it when the input is not a
// terminal file, such as an SSH session.
func (p *Picker) ShareInput(in *SharedInput) *Picker {
	p.input = in
	return p
}

// Name returns the player's display name.
func (p *Picker) Name() string {
	return p.name
}

// Decide runs the picker until a column is chosen.
func (p *Picker) Decide(board *connectn.Board, color connectn.Color) (int, error) {
	if _, err := board.Stringify(); err != nil {
		return 0, err
	}

	opts := p.options
	if p.input != nil {
		in := p.input.Attach()
		defer in.Detach()
		opts = append([]tea.ProgramOption{tea.WithInput(in)}, opts...)
	}

	final, err := tea.NewProgram(NewPickerModel(board, color, p.name, p.renderer), opts...).Run()
	if err != nil {
		return 0, fmt.Errorf("tui: picker: %w", err)
	}

	m, ok := final.(PickerModel)
	if !ok || m.Aborted() {
		return 0, ErrAborted
	}
	col, ok := m.Chosen()
	if !ok {
		return 0, ErrAborted
	}
	return col, nil
}

func init() {
	registry.Register(registry.StrategyInfo{
		ID:          "tui",
		Description: "Human player moving a cursor over the board",
		Interactive: true,
	}, func(opts registry.Options) (connectn.Player, error) {
		if opts.In == nil || opts.Out == nil {
			return nil, fmt.Errorf("tui player %q needs input and output streams", opts.Name)
		}
		if f, ok := opts.In.(*os.File); ok {
			return NewPicker(opts.Name, lipgloss.NewRenderer(opts.Out),
				tea.WithInput(f),
				tea.WithOutput(opts.Out),
			), nil
		}
		p := NewPicker(opts.Name, lipgloss.NewRenderer(opts.Out), tea.WithOutput(opts.Out))
		return p.ShareInput(NewSharedInput(opts.In)), nil
	})
}
