package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/punch/internal/theme"
	"github.com/renato0307/punch/internal/version"
)

// Dialog wraps a form and prepends the application header with a title.
// Callers reach the form through Content() to read its result.
type Dialog struct {
	content tea.Model
	title   string
}

// NewDialog creates a new dialog wrapper around content
func NewDialog(title string, content tea.Model) *Dialog {
	return &Dialog{
		content: content,
		title:   title,
	}
}

func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

func (d *Dialog) View() string {
	return renderHeader(d.title) + d.content.View()
}

// Content returns the wrapped form
func (d *Dialog) Content() tea.Model {
	return d.content
}

// renderHeader is the app name, version and tagline, plus an optional subtitle
func renderHeader(subtitle string) string {
	result := theme.AppNameStyle.Render("Punch") +
		theme.VersionStyle.Render(" "+version.Version) + "\n" +
		theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return result + "\n"
}
