package tui

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectn/internal/config"
	"github.com/vovakirdan/connectn/internal/connectn"
	_ "github.com/vovakirdan/connectn/internal/players"
	"github.com/vovakirdan/connectn/internal/storage"
)

func TestSSHServerConfigFrom(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SSH.Opponents = 2
	cfg.Board.Columns = 9

	got := SSHServerConfigFrom(cfg)
	if got.Address != ":23234" || got.Opponents != 2 || got.OpponentStrategy != "random" {
		t.Errorf("SSHServerConfigFrom() = %+v", got)
	}
	if got.Board.Columns != 9 || got.AmountToWin != 4 {
		t.Errorf("board settings not carried over: %+v", got)
	}
	if got.DBPath != cfg.Storage.DBPath || !got.Record {
		t.Errorf("storage settings not carried over: %+v", got)
	}
}

func TestCheckOpponents(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		strategy string
		wantErr  bool
	}{
		{name: "random", count: 1, strategy: "random"},
		{name: "several", count: 3, strategy: "random"},
		{name: "none", count: 0, strategy: "random", wantErr: true},
		{name: "unknown", count: 1, strategy: "nope", wantErr: true},
		{name: "needs a human", count: 1, strategy: "tui", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkOpponents(SSHServerConfig{Opponents: tt.count, OpponentStrategy: tt.strategy})
			if (err != nil) != tt.wantErr {
				t.Errorf("checkOpponents() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayGameSeatsHumanFirstAndRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	srv := &SSHServer{
		config: SSHServerConfig{
			Board:            config.BoardConfig{Rows: 2, Columns: 3, RowHeight: 1, ColumnWidth: 7},
			AmountToWin:      1,
			Opponents:        2,
			OpponentStrategy: "random",
			Seed:             7,
		},
		store:  store,
		logger: log.New(io.Discard),
	}

	human := connectn.PlayerFunc{
		PlayerName: "alice",
		DecideFunc: func(*connectn.Board, connectn.Color) (int, error) { return 0, nil },
	}
	var out bytes.Buffer
	game, err := srv.playGame(human, "tui", NewPresenter(&out, lipgloss.NewRenderer(io.Discard)))
	if err != nil {
		t.Fatalf("playGame() error = %v", err)
	}

	wantColors := []connectn.Color{connectn.Red, connectn.Black, connectn.Yellow}
	colors := game.Colors()
	if len(colors) != len(wantColors) {
		t.Fatalf("Colors() = %v, want %v", colors, wantColors)
	}
	for i := range wantColors {
		if colors[i] != wantColors[i] {
			t.Errorf("seat %d color = %v, want %v", i, colors[i], wantColors[i])
		}
	}

	// A run of one means the first piece wins.
	if !game.Ended() || game.Moves() != 1 {
		t.Fatalf("Ended() = %v, Moves() = %d; want ended after 1 move", game.Ended(), game.Moves())
	}
	if !strings.Contains(out.String(), "Red (alice) wins!") {
		t.Errorf("presenter output missing announcement:\n%s", out.String())
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("recorded %d results, want 1", len(results))
	}
	r := results[0]
	if r.Source != storage.SourceSSH || r.WinnerColor != "Red" || r.Moves != 1 {
		t.Errorf("result = %+v", r)
	}

	want := []storage.Participant{
		{Name: "alice", Strategy: "tui", Color: "Red", Winner: true},
		{Name: "Computer 1", Strategy: "random", Color: "Black"},
		{Name: "Computer 2", Strategy: "random", Color: "Yellow"},
	}
	if len(r.Participants) != len(want) {
		t.Fatalf("participants = %+v, want %+v", r.Participants, want)
	}
	for i := range want {
		if r.Participants[i] != want[i] {
			t.Errorf("participant %d = %+v, want %+v", i, r.Participants[i], want[i])
		}
	}
}

func TestPlayGameWithoutStore(t *testing.T) {
	srv := &SSHServer{
		config: SSHServerConfig{
			Board:            config.BoardConfig{Rows: 1, Columns: 2, RowHeight: 1, ColumnWidth: 7},
			AmountToWin:      4,
			Opponents:        1,
			OpponentStrategy: "random",
		},
		logger: log.New(io.Discard),
	}

	human := connectn.PlayerFunc{
		PlayerName: "bob",
		DecideFunc: func(b *connectn.Board, _ connectn.Color) (int, error) {
			return b.AvailableColumns()[0], nil
		},
	}
	game, err := srv.playGame(human, "tui", NewPresenter(io.Discard, lipgloss.NewRenderer(io.Discard)))
	if err != nil {
		t.Fatalf("playGame() error = %v", err)
	}
	if !game.Outcome().Tie {
		t.Errorf("Outcome() = %+v, want a tie on a 1x2 board", game.Outcome())
	}
}
