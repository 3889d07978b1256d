package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/services"
	"github.com/renato0307/punch/internal/theme"
)

type uiState int

const (
	stateDashboard uiState = iota
	stateConfirmingDelete
	stateDetailsForm
	stateEditingEntry
	stateHelp
	stateLogin
	stateProjectForm
	stateTeam
)

// Services are the dashboard's collaborators, wired by the composition root
type Services struct {
	Catalog   *services.CatalogService
	Dashboard *services.DashboardService
	Entries   *services.EntryCache
	Session   *services.SessionService
	Team      *services.TeamService
	Timer     *services.TimerService
}

// Config holds the dashboard's tunables
type Config struct {
	ErrorClearDelay time.Duration
	RefreshInterval time.Duration
}

const defaultRefreshInterval = 30 * time.Second

// Model is the dashboard. Network calls never run inside Update; they are
// returned as commands and their results come back as messages.
type Model struct {
	busy           bool // a timer or entry mutation is in flight
	cfg            Config
	closeOnce      sync.Once
	dialog         *Dialog
	done           chan struct{}
	entries        []domain.TimeEntry
	errorManager   *ErrorManager
	height         int
	help           help.Model
	keys           KeyMap
	lastEmail      string
	loaded         services.DashboardData
	loading        bool // a dashboard reload is in flight
	notice         string
	now            time.Time
	pendingDelete  string
	services       Services
	sessionCleared chan struct{}
	spinner        spinner.Model
	state          uiState
	table          table.Model
	team           []domain.TeamMember
	teamLoading    bool
	width          int
}

// NewModel creates the dashboard model
func NewModel(svc Services, cfg Config) *Model {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.SpinnerStyle

	styles := table.DefaultStyles()
	styles.Header = theme.TableHeaderStyle
	styles.Selected = theme.TableSelectedStyle

	m := &Model{
		cfg:            cfg,
		done:           make(chan struct{}),
		errorManager:   NewErrorManager(cfg.ErrorClearDelay),
		help:           help.New(),
		keys:           NewKeyMap(),
		now:            time.Now(),
		services:       svc,
		sessionCleared: make(chan struct{}, 1),
		spinner:        sp,
		state:          stateDashboard,
		table: table.New(
			table.WithColumns(entryColumns(80, false)),
			table.WithFocused(true),
			table.WithHeight(10),
			table.WithStyles(styles),
		),
	}

	// the listener runs on whatever goroutine saw the 401
	svc.Session.OnSessionCleared(func() {
		select {
		case m.sessionCleared <- struct{}{}:
		default:
		}
	})

	if user := svc.Session.CurrentUser(); user != nil {
		m.applyRole(*user)
		m.loading = true
	} else {
		m.openLogin()
	}
	return m
}

// Close stops the background wait on the session listener
func (m *Model) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return nil
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tick(),
		m.spinner.Tick,
		scheduleRefresh(m.cfg.RefreshInterval),
		waitForSessionCleared(m.sessionCleared, m.done),
	}
	if m.state == stateLogin {
		cmds = append(cmds, m.dialog.Init())
	} else {
		cmds = append(cmds, m.loadDashboard(), m.verifySession())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleCommon(msg); handled {
		return m, cmd
	}

	switch m.state {
	case stateDashboard:
		return m.updateDashboard(msg)
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	case stateDetailsForm:
		return m.updateDetailsForm(msg)
	case stateEditingEntry:
		return m.updateEditingEntry(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateLogin:
		return m.updateLogin(msg)
	case stateProjectForm:
		return m.updateProjectForm(msg)
	case stateTeam:
		return m.updateTeam(msg)
	}
	return m, nil
}

// handleCommon processes messages that mean the same in every state
func (m *Model) handleCommon(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeTable()
		if m.dialog != nil {
			_, cmd := m.dialog.Update(msg)
			return true, cmd
		}
		return true, nil

	case tickMsg:
		// re-render only; elapsed time is derived from the start timestamp
		m.now = time.Time(msg)
		return true, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return true, cmd

	case clearErrorMsg:
		m.errorManager.Clear(msg)
		return true, nil

	case refreshMsg:
		next := scheduleRefresh(m.cfg.RefreshInterval)
		if m.services.Session.CurrentUser() == nil {
			return true, next
		}
		var cmds []tea.Cmd
		if !m.loading {
			m.loading = true
			cmds = append(cmds, m.loadDashboard())
		}
		if m.state == stateTeam && !m.teamLoading {
			m.teamLoading = true
			cmds = append(cmds, m.loadTeam())
		}
		return true, tea.Batch(append(cmds, next)...)

	case sessionClearedMsg:
		logging.Logger.Info("Session cleared, returning to login")
		cmd := m.toLogin(errors.New("session expired, please log in again"))
		return true, tea.Batch(cmd, waitForSessionCleared(m.sessionCleared, m.done))

	case verifiedMsg:
		return true, m.handleVerified(msg)

	case dashboardLoadedMsg:
		return true, m.handleDashboardLoaded(msg)

	case loggedInMsg:
		return true, m.handleLoggedIn(msg)

	case projectsLoadedMsg:
		return true, m.handleProjectsLoaded(msg)

	case tasksLoadedMsg:
		return true, m.handleTasksLoaded(msg)

	case timerStartedMsg:
		m.busy = false
		if msg.err != nil {
			return true, m.showError(msg.err)
		}
		m.notice = "Timer started"
		if msg.timer.Degraded {
			m.notice = "Backend unreachable, timer running locally"
		}
		return true, nil

	case timerStoppedMsg:
		m.busy = false
		if msg.err != nil {
			return true, m.showError(msg.err)
		}
		m.notice = fmt.Sprintf("Timer stopped, %s h recorded", domain.FormatMinutes(msg.entry.Duration))
		m.syncEntries()
		return true, nil

	case manualSavedMsg:
		m.busy = false
		if msg.err != nil {
			return true, m.showError(msg.err)
		}
		m.notice = fmt.Sprintf("Recorded %s h", domain.FormatMinutes(msg.entry.Duration))
		m.syncEntries()
		return true, nil

	case entryUpdatedMsg:
		m.busy = false
		if msg.err != nil {
			return true, m.showError(msg.err)
		}
		m.notice = "Entry updated"
		if msg.entry.Unsynced {
			m.notice = "Backend unreachable, entry changed locally; press S to push later"
		}
		m.syncEntries()
		return true, nil

	case entryRemovedMsg:
		m.busy = false
		if msg.err != nil {
			return true, m.showError(msg.err)
		}
		m.notice = "Entry deleted"
		if msg.localOnly {
			m.notice = "Backend unreachable, entry removed locally only"
		}
		m.syncEntries()
		return true, nil

	case syncedMsg:
		m.busy = false
		if msg.err != nil {
			return true, m.showError(msg.err)
		}
		m.notice = fmt.Sprintf("Pushed %d entries", msg.result.Pushed)
		if msg.result.Failed > 0 {
			m.notice += fmt.Sprintf(", %d rejected", msg.result.Failed)
		}
		m.syncEntries()
		return true, nil

	case teamLoadedMsg:
		m.teamLoading = false
		if msg.err != nil {
			return true, m.showError(msg.err)
		}
		m.team = msg.members
		return true, nil
	}

	return false, nil
}

func (m *Model) handleVerified(msg verifiedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Logger.Warn("Session verification failed", "error", msg.err)
		return nil
	}
	switch msg.result.Outcome {
	case services.VerifyRejected:
		return m.toLogin(msg.result.Err)
	case services.VerifyConfirmed:
		if msg.result.User != nil {
			m.applyRole(*msg.result.User)
		}
	}
	return nil
}

func (m *Model) handleDashboardLoaded(msg dashboardLoadedMsg) tea.Cmd {
	m.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrNotAuthenticated) {
			return nil
		}
		return m.showError(msg.err)
	}
	m.loaded = msg.data
	m.syncEntries()
	return nil
}

func (m *Model) handleLoggedIn(msg loggedInMsg) tea.Cmd {
	m.busy = false
	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrInvalidCredentials) {
			msg.err = errors.New("invalid email or password")
		}
		cmd := m.showError(msg.err)
		return tea.Batch(cmd, m.openLogin())
	}

	logging.Logger.Info("Logged in from dashboard", "user_id", msg.user.ID, "role", msg.user.Role)
	m.applyRole(*msg.user)
	m.dialog = nil
	m.state = stateDashboard
	m.notice = "Welcome, " + msg.user.DisplayName()
	m.loading = true
	return m.loadDashboard()
}

func (m *Model) handleProjectsLoaded(msg projectsLoadedMsg) tea.Cmd {
	m.busy = false
	if msg.err != nil {
		return m.showError(msg.err)
	}
	if len(msg.projects) == 0 {
		return m.showError(errors.New("no projects available"))
	}
	m.loaded.Projects = msg.projects
	return m.openProjectForm(msg.manual)
}

func (m *Model) handleTasksLoaded(msg tasksLoadedMsg) tea.Cmd {
	if errors.Is(msg.err, domain.ErrStaleSelection) {
		// a newer selection owns the form
		return nil
	}
	m.busy = false
	if msg.err != nil {
		m.state = stateDashboard
		return m.showError(msg.err)
	}
	form := NewTimerDetailsForm(msg.tasks, m.services.Timer.Selection())
	title := "Start timer"
	if form.Manual {
		title = "Record time"
	}
	return m.openDialog(stateDetailsForm, title, form)
}

// applyRole sets the bindings the role may use
func (m *Model) applyRole(user domain.User) {
	m.keys.Team.SetEnabled(user.Role.CanViewAll())
	m.lastEmail = user.Email
}

func (m *Model) showError(err error) tea.Cmd {
	logging.Logger.Warn("Dashboard error", "error", err)
	m.notice = ""
	return m.errorManager.SetError(err)
}

// syncEntries re-reads the entry cache after it changed
func (m *Model) syncEntries() {
	m.entries = m.services.Entries.Entries()
	m.table.SetRows(entryRows(m.entries, m.showOwners()))
	if m.table.Cursor() >= len(m.entries) {
		m.table.SetCursor(max(len(m.entries)-1, 0))
	}
}

func (m *Model) showOwners() bool {
	user := m.services.Session.CurrentUser()
	return user != nil && user.Role.CanViewAll()
}

func (m *Model) resizeTable() {
	m.table.SetColumns(entryColumns(m.width, m.showOwners()))
	m.table.SetRows(entryRows(m.entries, m.showOwners()))
	m.table.SetWidth(m.width)
	// header, timer box, summary, detail, notices, help
	m.table.SetHeight(max(m.height-16, 3))
}

func (m *Model) selectedEntry() (domain.TimeEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return domain.TimeEntry{}, false
	}
	return m.entries[i], true
}

func (m *Model) openDialog(state uiState, title string, content tea.Model) tea.Cmd {
	m.dialog = NewDialog(title, content)
	m.state = state
	initCmd := m.dialog.Init()
	if m.width == 0 {
		return initCmd
	}
	_, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) openLogin() tea.Cmd {
	return m.openDialog(stateLogin, "Log in", NewLoginForm(m.lastEmail))
}

// toLogin drops everything tied to the old session
func (m *Model) toLogin(reason error) tea.Cmd {
	m.busy = false
	m.entries = nil
	m.loaded = services.DashboardData{}
	m.team = nil
	m.table.SetRows(nil)
	cmd := m.openLogin()
	if reason != nil {
		return tea.Batch(cmd, m.errorManager.SetError(reason))
	}
	return cmd
}

func (m *Model) openProjectForm(manual bool) tea.Cmd {
	if len(m.loaded.Projects) == 0 {
		m.busy = true
		return m.loadProjects(manual)
	}
	title := "Start timer"
	if manual {
		title = "Record time"
	}
	current := m.services.Timer.Selection().ProjectID
	return m.openDialog(stateProjectForm, title, NewProjectForm(m.loaded.Projects, current, manual))
}

func (m *Model) closeDialog() {
	m.dialog = nil
	m.state = stateDashboard
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit, m.keys.Application.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help):
		return m, m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))

	case key.Matches(keyMsg, m.keys.Application.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.notice = ""
		return m, m.loadDashboard()

	case key.Matches(keyMsg, m.keys.Application.Logout):
		if err := m.services.Session.Logout(context.Background()); err != nil {
			return m, m.showError(err)
		}
		m.notice = ""
		return m, m.toLogin(nil)

	case key.Matches(keyMsg, m.keys.Team):
		m.state = stateTeam
		m.teamLoading = true
		return m, m.loadTeam()

	case key.Matches(keyMsg, m.keys.Entries.Up, m.keys.Entries.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	// the remaining controls are disabled while a call is in flight
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Timer.Toggle):
		m.notice = ""
		if m.services.Timer.Active() != nil {
			m.busy = true
			return m, m.stopTimer()
		}
		return m, m.openProjectForm(false)

	case key.Matches(keyMsg, m.keys.Timer.Manual):
		if m.services.Timer.Active() != nil {
			return m, m.showError(errors.New("stop the running timer before recording time manually"))
		}
		m.notice = ""
		return m, m.openProjectForm(true)

	case key.Matches(keyMsg, m.keys.Entries.Edit):
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		return m, m.openDialog(stateEditingEntry, "Edit entry", NewEntryForm(entry))

	case key.Matches(keyMsg, m.keys.Entries.ToggleBillable):
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		billable := !entry.Billable
		m.busy = true
		return m, m.updateEntry(entry.ID, domain.EntryPatch{Billable: &billable})

	case key.Matches(keyMsg, m.keys.Entries.Delete):
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		m.pendingDelete = entry.ID
		description := firstNonEmpty(entry.Description, entry.TaskName, entry.ID)
		return m, m.openDialog(stateConfirmingDelete, "Delete entry",
			NewConfirmForm("Delete this entry?", fmt.Sprintf("%s · %s h", description, domain.FormatMinutes(entry.Duration))))

	case key.Matches(keyMsg, m.keys.Entries.Sync):
		m.busy = true
		return m, m.pushUnsynced()
	}

	return m, nil
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	_, cmd := m.dialog.Update(msg)
	form, ok := m.dialog.Content().(*LoginForm)
	if !ok || !form.Completed {
		return m, cmd
	}
	if form.Cancelled {
		return m, tea.Quit
	}

	m.lastEmail = form.Email
	m.busy = true
	return m, m.login(form.Email, form.Password)
}

func (m *Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	form, ok := m.dialog.Content().(*ProjectForm)
	if !ok || !form.Completed {
		return m, cmd
	}
	m.closeDialog()
	if form.Cancelled {
		return m, nil
	}

	m.services.Timer.SetManualMode(form.Manual)
	m.busy = true
	return m, m.loadTasks(form.ProjectID)
}

func (m *Model) updateDetailsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	form, ok := m.dialog.Content().(*TimerDetailsForm)
	if !ok || !form.Completed {
		return m, cmd
	}
	m.closeDialog()
	if form.Cancelled {
		return m, nil
	}

	if err := form.Apply(m.services.Timer); err != nil {
		return m, m.showError(err)
	}
	m.busy = true
	if form.Manual {
		return m, m.saveManual(form.Duration)
	}
	return m, m.startTimer()
}

func (m *Model) updateEditingEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	form, ok := m.dialog.Content().(*EntryForm)
	if !ok || !form.Completed {
		return m, cmd
	}
	m.closeDialog()
	if form.Cancelled {
		return m, nil
	}

	patch := form.Patch()
	if patch.IsEmpty() {
		m.notice = "Nothing changed"
		return m, nil
	}
	m.busy = true
	return m, m.updateEntry(form.EntryID(), patch)
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	form, ok := m.dialog.Content().(*ConfirmForm)
	if !ok || !form.Completed {
		return m, cmd
	}
	m.closeDialog()
	id := m.pendingDelete
	m.pendingDelete = ""
	if form.Cancelled || !form.Confirmed || id == "" {
		return m, nil
	}

	m.busy = true
	return m, m.removeEntry(id)
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	if screen, ok := m.dialog.Content().(*HelpScreen); ok && screen.Completed {
		m.closeDialog()
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateTeam(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit):
		return m, tea.Quit
	case keyMsg.String() == "esc", key.Matches(keyMsg, m.keys.Application.Quit, m.keys.Team):
		m.state = stateDashboard
	case key.Matches(keyMsg, m.keys.Application.Refresh):
		if !m.teamLoading {
			m.teamLoading = true
			return m, m.loadTeam()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case stateDashboard:
		return m.viewDashboard()
	case stateTeam:
		return m.viewTeam()
	}

	var b strings.Builder
	if m.dialog != nil {
		b.WriteString(m.dialog.View())
	}
	if m.state == stateLogin && m.busy {
		b.WriteString("\n" + m.spinner.View() + " Logging in...")
	}
	b.WriteString(m.viewFooter(false))
	return b.String()
}

func (m *Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(renderHeader(""))
	b.WriteString("\n")

	if user := m.services.Session.CurrentUser(); user != nil {
		b.WriteString(theme.RoleTitleStyle.Render(user.Role.DashboardTitle()))
		b.WriteString(theme.LabelStyle.Render(fmt.Sprintf("  %s <%s>", user.DisplayName(), user.Email)))
		b.WriteString("\n")
	}
	for _, warning := range m.loaded.Warnings {
		b.WriteString(theme.WarningStyle.Render("⚠ "+warning) + "\n")
	}

	b.WriteString(m.viewTimer())
	b.WriteString("\n")

	b.WriteString(renderSummary(m.entries, m.showOwners()))
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString(theme.LabelStyle.Render("No entries yet") + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
		if entry, ok := m.selectedEntry(); ok {
			b.WriteString(renderEntryDetail(entry) + "\n")
		}
	}

	b.WriteString(m.viewFooter(true))
	return b.String()
}

func (m *Model) viewTimer() string {
	timer := m.services.Timer
	active := timer.Active()
	label := theme.TimerStateStyle(timer.State(), active != nil && active.Degraded)

	var line string
	if active == nil {
		line = label.Render("○ Idle") + theme.LabelStyle.Render("  no timer running")
	} else {
		marker := "●"
		if active.Degraded {
			marker = "◐"
		}
		line = label.Render(marker+" "+string(timer.State())) +
			theme.ClockStyle.Render(timer.Display(m.now)) +
			theme.LabelStyle.Render(m.describeTimer(*active))
	}

	control := fmt.Sprintf("[%s] %s", m.keys.Timer.Toggle.Help().Key, timer.ButtonLabel())
	if m.busy {
		control = m.spinner.View() + " working..."
	}
	return theme.TimerBoxStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, line, "   ", control))
}

func (m *Model) describeTimer(t domain.Timer) string {
	project := t.ProjectID
	for _, p := range m.loaded.Projects {
		if p.ID == t.ProjectID {
			project = p.Name
			break
		}
	}
	task := t.TaskID
	for _, candidate := range m.services.Timer.Tasks() {
		if candidate.ID == t.TaskID {
			task = candidate.Name
			break
		}
	}

	parts := []string{project, task, t.TrackingType.Label()}
	if t.Billable {
		parts = append(parts, "billable")
	}
	if t.Description != "" {
		parts = append(parts, t.Description)
	}
	return " " + strings.Join(parts, " · ")
}

func (m *Model) viewTeam() string {
	var b strings.Builder
	b.WriteString(renderHeader("Team"))
	b.WriteString("\n")

	if m.teamLoading {
		b.WriteString(m.spinner.View() + " Loading team...\n")
	}
	for _, member := range m.team {
		active := ""
		if !member.IsActive {
			active = theme.WarningStyle.Render(" (inactive)")
		}
		b.WriteString(fmt.Sprintf("%s %s %s%s\n",
			theme.NormalStyle.Render(member.Name),
			theme.LabelStyle.Render("<"+member.Email+">"),
			theme.RoleTitleStyle.Render(string(member.Role)),
			active))
		if member.Department != "" || member.Position != "" {
			b.WriteString(theme.LabelStyle.Render("  "+strings.Trim(member.Position+" · "+member.Department, " ·")) + "\n")
		}
	}
	if !m.teamLoading && len(m.team) == 0 {
		b.WriteString(theme.LabelStyle.Render("No team members") + "\n")
	}

	b.WriteString(m.viewFooter(false))
	b.WriteString(theme.HelpStyle.Render("esc back • r refresh"))
	return b.String()
}

func (m *Model) viewFooter(withHelp bool) string {
	var b strings.Builder
	if err := m.errorManager.Error(); err != nil {
		b.WriteString("\n" + theme.ErrorStyle.Render(formatErrorForDisplay(err, m.width)))
	} else if m.notice != "" {
		b.WriteString("\n" + theme.NormalStyle.Render(m.notice))
	}
	if withHelp {
		b.WriteString("\n" + theme.HelpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}
