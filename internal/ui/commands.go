package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/punch/internal/domain"
)

// Every backend call runs as a tea.Cmd off the event loop and reports back
// with a message. The HTTP client timeout bounds each of them.

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func scheduleRefresh(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

// waitForSessionCleared blocks until the session listener fires or the
// model is closed
func waitForSessionCleared(ch, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ch:
			return sessionClearedMsg{}
		case <-done:
			return nil
		}
	}
}

func (m *Model) loadDashboard() tea.Cmd {
	svc := m.services.Dashboard
	return func() tea.Msg {
		data, err := svc.Load(context.Background())
		return dashboardLoadedMsg{data: data, err: err}
	}
}

func (m *Model) loadProjects(manual bool) tea.Cmd {
	svc := m.services.Catalog
	return func() tea.Msg {
		projects, err := svc.Projects(context.Background())
		return projectsLoadedMsg{manual: manual, projects: projects, err: err}
	}
}

func (m *Model) loadTasks(projectID string) tea.Cmd {
	svc := m.services.Timer
	return func() tea.Msg {
		tasks, err := svc.SelectProject(context.Background(), projectID)
		return tasksLoadedMsg{projectID: projectID, tasks: tasks, err: err}
	}
}

func (m *Model) loadTeam() tea.Cmd {
	svc := m.services.Team
	return func() tea.Msg {
		if err := svc.Refresh(context.Background()); err != nil {
			return teamLoadedMsg{err: err}
		}
		return teamLoadedMsg{members: svc.Members()}
	}
}

func (m *Model) login(email, password string) tea.Cmd {
	svc := m.services.Session
	return func() tea.Msg {
		user, err := svc.Login(context.Background(), email, password)
		return loggedInMsg{user: user, err: err}
	}
}

func (m *Model) verifySession() tea.Cmd {
	svc := m.services.Session
	return func() tea.Msg {
		result, err := svc.Verify(context.Background())
		return verifiedMsg{result: result, err: err}
	}
}

func (m *Model) startTimer() tea.Cmd {
	svc := m.services.Timer
	return func() tea.Msg {
		timer, err := svc.Start(context.Background())
		return timerStartedMsg{timer: timer, err: err}
	}
}

func (m *Model) stopTimer() tea.Cmd {
	svc := m.services.Timer
	return func() tea.Msg {
		entry, err := svc.Stop(context.Background())
		return timerStoppedMsg{entry: entry, err: err}
	}
}

func (m *Model) saveManual(duration string) tea.Cmd {
	svc := m.services.Timer
	return func() tea.Msg {
		entry, err := svc.SaveManual(context.Background(), duration)
		return manualSavedMsg{entry: entry, err: err}
	}
}

func (m *Model) updateEntry(id string, patch domain.EntryPatch) tea.Cmd {
	svc := m.services.Entries
	return func() tea.Msg {
		entry, err := svc.Update(context.Background(), id, patch)
		return entryUpdatedMsg{entry: entry, err: err}
	}
}

func (m *Model) removeEntry(id string) tea.Cmd {
	svc := m.services.Entries
	return func() tea.Msg {
		localOnly, err := svc.Remove(context.Background(), id)
		return entryRemovedMsg{id: id, localOnly: localOnly, err: err}
	}
}

func (m *Model) pushUnsynced() tea.Cmd {
	svc := m.services.Entries
	return func() tea.Msg {
		result, err := svc.PushUnsynced(context.Background())
		return syncedMsg{result: result, err: err}
	}
}
