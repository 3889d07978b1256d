package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/punch/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(keys, description string) string {
	return theme.HelpKeyStyle.Render(keys) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(b key.Binding) string {
	if !b.Enabled() {
		return ""
	}
	help := b.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Timer") + "\n")
	b.WriteString(renderBinding(keys.Timer.Toggle))
	b.WriteString(renderBinding(keys.Timer.Manual))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Entries") + "\n")
	b.WriteString(renderBinding(keys.Entries.Up))
	b.WriteString(renderBinding(keys.Entries.Down))
	b.WriteString(renderBinding(keys.Entries.Edit))
	b.WriteString(renderBinding(keys.Entries.ToggleBillable))
	b.WriteString(renderBinding(keys.Entries.Delete))
	b.WriteString(renderBinding(keys.Entries.Sync))

	if keys.Team.Enabled() {
		b.WriteString("\n" + theme.HelpGroupStyle.Render("Team") + "\n")
		b.WriteString(renderBinding(keys.Team))
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.Refresh))
	b.WriteString(renderBinding(keys.Application.Logout))
	b.WriteString(renderBinding(keys.Application.Help))
	b.WriteString(renderBinding(keys.Application.Quit))
	b.WriteString(renderBinding(keys.Application.ForceQuit))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Markers (read-only)") + "\n")
	b.WriteString(renderShortcut("●", "timer running"))
	b.WriteString(renderShortcut("◐", "timer running locally, backend not reached"))
	b.WriteString(renderShortcut("*", "entry changed offline, push with sync"))
	b.WriteString(renderShortcut("sample", "placeholder data, backend unreachable"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// header 4 lines, footer 2
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n" + footer
}
