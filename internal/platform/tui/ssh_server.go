// Package tui provides the terminal front end for connectn: a cursor-driven
// column picker, colored board rendering, result tables and an SSH server
// built on Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/connectn/internal/config"
	"github.com/vovakirdan/connectn/internal/connectn"
	"github.com/vovakirdan/connectn/internal/players"
	"github.com/vovakirdan/connectn/internal/registry"
	"github.com/vovakirdan/connectn/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.connectn/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// Record saves finished games to DBPath.
	Record bool

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Board and AmountToWin shape every game played over SSH.
	Board       config.BoardConfig
	AmountToWin int

	// Opponents is the number of computer players joining each session,
	// all driven by OpponentStrategy.
	Opponents        int
	OpponentStrategy string

	// Seed feeds the opponents through players.SeatSeed. 0 seeds from the clock.
	Seed int64

	// Logger receives server and game logs. Nil logs to stderr.
	Logger *log.Logger
}

// SSHServerConfigFrom derives server settings from the loaded configuration.
func SSHServerConfigFrom(cfg config.Config) SSHServerConfig {
	return SSHServerConfig{
		Address:          cfg.SSH.Address,
		HostKeyPath:      cfg.SSH.HostKeyPath,
		DBPath:           cfg.Storage.DBPath,
		Record:           cfg.Storage.Record,
		IdleTimeout:      cfg.SSH.IdleTimeout,
		Board:            cfg.Board,
		AmountToWin:      cfg.AmountToWin,
		Opponents:        cfg.SSH.Opponents,
		OpponentStrategy: cfg.SSH.OpponentStrategy,
	}
}

// SSHServer lets remote players play against computer opponents over SSH.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "connectn-ssh",
		})
	}

	if err := checkOpponents(cfg); err != nil {
		return nil, err
	}
	if n := cfg.Opponents + 1; n > len(connectn.Colors()) {
		return nil, fmt.Errorf("%d players need more than the %d available colors", n, len(connectn.Colors()))
	}

	var store *storage.Store
	if cfg.Record {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			// Continue without recording
		}
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".connectn", "host_key")
	}
	hostKeyPath, err := config.ExpandHome(hostKeyPath)
	if err != nil {
		return nil, err
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func checkOpponents(cfg SSHServerConfig) error {
	if cfg.Opponents < 1 {
		return fmt.Errorf("need at least one opponent, got %d", cfg.Opponents)
	}
	info, ok := registry.Lookup(cfg.OpponentStrategy)
	if !ok {
		return fmt.Errorf("unknown opponent strategy %q", cfg.OpponentStrategy)
	}
	if info.Interactive {
		return fmt.Errorf("opponent strategy %q needs a human", cfg.OpponentStrategy)
	}
	return nil
}

// gameMiddleware plays one game per session.
func (s *SSHServer) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if err := s.playSession(sess); err != nil {
			if errors.Is(err, ErrAborted) {
				s.logger.Info("player left", "user", sess.User())
			} else {
				s.logger.Error("game failed", "user", sess.User(), "error", err)
				wish.Errorln(sess, err)
			}
		}
		next(sess)
	}
}

// playSession seats the remote user first against the computer opponents.
func (s *SSHServer) playSession(sess ssh.Session) error {
	renderer := bubbletea.MakeRenderer(sess)

	input := NewSharedInput(sess)
	defer input.Close()

	human := NewPicker(sess.User(), renderer, tea.WithOutput(sess), tea.WithoutSignalHandler()).
		ShareInput(input)

	_, err := s.playGame(human, "tui", NewPresenter(sess, renderer))
	return err
}

// playGame runs one game with human in the first seat and records it.
func (s *SSHServer) playGame(human connectn.Player, humanStrategy string, presenter connectn.Presenter) (*connectn.Game, error) {
	colors := connectn.Colors()[:s.config.Opponents+1]

	seats := []connectn.Player{human}
	strategies := []string{humanStrategy}
	for i := 1; i <= s.config.Opponents; i++ {
		p, err := registry.Create(s.config.OpponentStrategy, registry.Options{
			Name: fmt.Sprintf("Computer %d", i),
			Seed: players.SeatSeed(s.config.Seed, i),
		})
		if err != nil {
			return nil, err
		}
		seats = append(seats, p)
		strategies = append(strategies, s.config.OpponentStrategy)
	}

	b := s.config.Board
	board := connectn.NewBoard(b.Rows, b.Columns, b.RowHeight, b.ColumnWidth)
	game, err := connectn.New(board, seats, colors,
		connectn.WithAmountToWin(s.config.AmountToWin),
		connectn.WithPresenter(presenter),
		connectn.WithLogger(s.logger.With("user", human.Name())),
	)
	if err != nil {
		return nil, err
	}
	if err := game.Start(); err != nil {
		return game, err
	}

	s.record(game, strategies)
	return game, nil
}

// record saves a finished game. Failures are logged, not returned.
func (s *SSHServer) record(game *connectn.Game, strategies []string) {
	if s.store == nil {
		return
	}
	result, err := storage.NewResult(game, strategies, storage.SourceSSH)
	if err != nil {
		s.logger.Warn("could not build result", "error", err)
		return
	}
	if _, err := s.store.SaveResult(result); err != nil {
		s.logger.Warn("could not save result", "match", result.MatchID, "error", err)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errc:
		s.logger.Error("server error", "error", err)
		if s.store != nil {
			s.store.Close()
		}
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
