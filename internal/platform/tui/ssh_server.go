package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/monkey-arcade/internal/assets"
	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// sessionIDKey stores the tracker ID in the SSH context.
type sessionIDKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.monkey/host_key.
	HostKeyPath string

	// StatusAddress, if set, serves /healthz and /sessions over HTTP.
	StatusAddress string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
	}
}

// SSHServer serves one monkey game per SSH connection.
type SSHServer struct {
	config  SSHServerConfig
	game    config.GameConfig
	library *assets.Library
	tracker *Tracker
	server  *ssh.Server
	status  *http.Server
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. lib is shared by all sessions and
// should already be loading.
func NewSSHServer(cfg SSHServerConfig, game config.GameConfig, lib *assets.Library, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	logger = logger.WithPrefix("monkey-ssh")

	srv := &SSHServer{
		config:  cfg,
		game:    game,
		library: lib,
		tracker: NewTracker(),
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".monkey", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.trackingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	srv.server = server

	if cfg.StatusAddress != "" {
		srv.status = &http.Server{
			Addr:              cfg.StatusAddress,
			Handler:           NewStatusHandler(srv.tracker),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	id, _ := sshSession.Context().Value(sessionIDKey{}).(string)
	model := NewModel(Options{
		Config: s.game,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Library: s.library,
		Logger:  s.logger.With("session", id),
		OnGameOver: func(score int) {
			s.tracker.GameOver(id, score)
		},
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// trackingMiddleware registers each session with the tracker and logs it.
func (s *SSHServer) trackingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		remote := sshSession.RemoteAddr().String()
		id := s.tracker.Add(sshSession.User(), remote)
		sshSession.Context().SetValue(sessionIDKey{}, id)

		s.logger.Info("session started", "id", id, "user", sshSession.User(), "remote", remote)
		next(sshSession)

		info, _ := s.tracker.Get(id)
		s.tracker.Remove(id)
		s.logger.Info("session ended", "id", id, "user", sshSession.User(),
			"games", info.Games, "best", info.BestScore)
	}
}

// Tracker exposes the live session registry.
func (s *SSHServer) Tracker() *Tracker {
	return s.tracker
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	if s.status != nil {
		s.logger.Info("starting status server", "address", s.config.StatusAddress)
		go func() {
			if err := s.status.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("status server error", "error", err)
			}
		}()
	}

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the servers.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var statusErr error
	if s.status != nil {
		statusErr = s.status.Shutdown(ctx)
	}
	return errors.Join(s.server.Shutdown(ctx), statusErr)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
