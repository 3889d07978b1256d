package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/punch/internal/logging"
)

// shutdownTimeout bounds how long open sessions get to finish on shutdown
const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	AuthorizedKeysPath string // defaults to ~/.ssh/authorized_keys
	Host               string
	HostKeyPath        string
	Port               string
}

// Server serves the dashboard to SSH clients holding an authorized key
type Server struct {
	address            string
	authorizedKeysPath string
	newSession         SessionFactory
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(opts Options, newSession SessionFactory) (*Server, error) {
	if newSession == nil {
		return nil, errors.New("session factory is required")
	}

	keysPath := opts.AuthorizedKeysPath
	if keysPath == "" {
		p, err := defaultAuthorizedKeysPath()
		if err != nil {
			return nil, err
		}
		keysPath = p
	}

	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create host key directory: %w", err)
	}

	s := &Server{
		address:            net.JoinHostPort(opts.Host, opts.Port),
		authorizedKeysPath: keysPath,
		newSession:         newSession,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
