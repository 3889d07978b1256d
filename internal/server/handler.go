package server

import (
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/punch/internal/logging"
)

// SessionFactory builds the dashboard for one SSH session. The closer
// releases whatever the model holds (database, lock file) when it quits.
type SessionFactory func() (tea.Model, io.Closer, error)

// sessionModel wraps the dashboard to release its resources on quit
type sessionModel struct {
	inner     tea.Model
	closer    io.Closer
	closeOnce sync.Once
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.inner.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.close()
	}

	updated, cmd := s.inner.Update(msg)
	s.inner = updated
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.inner.View()
}

func (s *sessionModel) close() {
	s.closeOnce.Do(s.release)
}

func (s *sessionModel) release() {
	duration := time.Since(s.startTime)
	if err := s.closer.Close(); err != nil {
		logging.Logger.Error("Failed to release SSH session resources",
			"error", err,
			"session_id", s.sessionID,
			"duration", duration.String())
	}
	logging.Logger.Info("SSH session ended",
		"session_id", s.sessionID,
		"duration", duration.String())
}

// teaHandler creates a dashboard model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, closer, err := s.newSession()
	if err != nil {
		logging.Logger.Error("Failed to build dashboard for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	wrapped := &sessionModel{
		inner:     model,
		closer:    closer,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	// the client may drop without the model ever seeing a QuitMsg
	go func() {
		<-sess.Context().Done()
		wrapped.close()
	}()

	return wrapped, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel displays an error and quits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
