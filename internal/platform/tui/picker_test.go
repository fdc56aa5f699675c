package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectn/internal/connectn"
)

func press(t *testing.T, m PickerModel, msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PickerModel)
	if !ok {
		t.Fatalf("Update returned %T, want PickerModel", next)
	}
	return pm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestPicker(b *connectn.Board) PickerModel {
	return NewPickerModel(b, connectn.Red, "Alice", lipgloss.NewRenderer(io.Discard))
}

func TestPickerCursorStartsNearMiddle(t *testing.T) {
	b := connectn.NewBoard(1, 7, 1, 3)
	if got := newTestPicker(b).Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}

	if err := b.DropPiece(connectn.Black, 3); err != nil {
		t.Fatal(err)
	}
	if got := newTestPicker(b).Cursor(); got != 2 {
		t.Errorf("Cursor() with middle full = %d, want 2", got)
	}
}

func TestPickerMovesWithinBoard(t *testing.T) {
	m := newTestPicker(connectn.NewBoard(2, 3, 1, 3))

	tests := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 2},
		{tea.KeyMsg{Type: tea.KeyRight}, 2},
		{runes("h"), 1},
		{tea.KeyMsg{Type: tea.KeyLeft}, 0},
		{tea.KeyMsg{Type: tea.KeyLeft}, 0},
		{runes("l"), 1},
	}

	for i, tt := range tests {
		m, _ = press(t, m, tt.msg)
		if m.Cursor() != tt.want {
			t.Fatalf("step %d (%s): Cursor() = %d, want %d", i, tt.msg, m.Cursor(), tt.want)
		}
	}
}

func TestPickerDrop(t *testing.T) {
	m := newTestPicker(connectn.NewBoard(2, 3, 1, 3))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	col, ok := m.Chosen()
	if !ok || col != 2 {
		t.Errorf("Chosen() = %d, %v; want 2, true", col, ok)
	}
	if cmd == nil {
		t.Error("dropping should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty once a column is chosen")
	}
}

func TestPickerRejectsFullColumn(t *testing.T) {
	b := connectn.NewBoard(1, 3, 1, 3)
	if err := b.DropPiece(connectn.Black, 0); err != nil {
		t.Fatal(err)
	}
	m := newTestPicker(b)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Chosen(); ok {
		t.Fatal("a full column must not be chosen")
	}
	if cmd != nil {
		t.Error("rejected drop should not quit")
	}
	if !strings.Contains(m.View(), "Column 1 is full.") {
		t.Errorf("View() missing full column message:\n%s", m.View())
	}
}

func TestPickerJump(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    int
		problem string
	}{
		{name: "first", key: "1", want: 0},
		{name: "last", key: "5", want: 4},
		{name: "beyond board", key: "9", want: -1, problem: "Please input a valid column index (1-5)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestPicker(connectn.NewBoard(2, 5, 1, 3))
			m, _ = press(t, m, runes(tt.key))

			col, ok := m.Chosen()
			if tt.want < 0 {
				if ok {
					t.Fatalf("Chosen() = %d, want none", col)
				}
				if !strings.Contains(m.View(), tt.problem) {
					t.Errorf("View() missing %q", tt.problem)
				}
				return
			}
			if !ok || col != tt.want {
				t.Errorf("Chosen() = %d, %v; want %d, true", col, ok, tt.want)
			}
		})
	}
}

func TestPickerQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestPicker(connectn.NewBoard(2, 3, 1, 3))
		m, cmd := press(t, m, msg)
		if !m.Aborted() {
			t.Errorf("%s should abort", msg)
		}
		if cmd == nil {
			t.Errorf("%s should quit the program", msg)
		}
	}
}

func TestPickerView(t *testing.T) {
	b := connectn.NewBoard(2, 3, 1, 3)
	m := newTestPicker(b)
	view := m.View()

	plain, err := b.Stringify()
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(view, "\n")
	if want := strings.Repeat(" ", columnCenter(b, 1)) + "v"; lines[0] != want {
		t.Errorf("cursor line = %q, want %q", lines[0], want)
	}
	for _, want := range []string{plain, b.ColumnLabels(), "Red (Alice):"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestPickerDecideRejectsUnrenderableBoard(t *testing.T) {
	p := NewPicker("Alice", lipgloss.NewRenderer(io.Discard))
	b := connectn.NewBoard(2, 3, 1, 2)
	if err := b.DropPiece(connectn.Black, 0); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Decide(b, connectn.Red); !errors.Is(err, connectn.ErrRendering) {
		t.Fatalf("Decide() error = %v, want ErrRendering", err)
	}
}
