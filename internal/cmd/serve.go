package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/server"
	"github.com/renato0307/punch/internal/ui"
)

// ServeCmd serves the dashboard over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file (default ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Host to bind to" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// sessionResources is everything one SSH session holds open
type sessionResources struct {
	container *Container
	model     *ui.Model
}

func (r sessionResources) Close() error {
	if err := r.model.Close(); err != nil {
		return err
	}
	return r.container.Close()
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	uiConfig := ui.Config{
		ErrorClearDelay: cli.config.ErrorClearDelay,
		RefreshInterval: cli.config.RefreshInterval,
	}

	// One container per SSH session, closed when the session ends
	newSession := func() (tea.Model, io.Closer, error) {
		container, err := NewContainer(cli.config)
		if err != nil {
			return nil, nil, err
		}
		model := ui.NewModel(container.UIServices(), uiConfig)
		return model, sessionResources{container: container, model: model}, nil
	}

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		HostKeyPath:        config.HostKeyPath(),
		Port:               s.Port,
	}, newSession)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Serving dashboard over SSH", "address", srv.Address())
	fmt.Printf("SSH server listening on %s\n", srv.Address())
	return srv.Run(ctx)
}
