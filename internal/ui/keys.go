package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyDefinition is the metadata of one key binding
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions is the single source of truth for names, keys and help text
var AllKeyDefinitions = []KeyDefinition{
	// Application
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?", "h"}, Help: "show keyboard shortcuts"},
	{Name: "logout", Defaults: []string{"L"}, Help: "log out"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "reload from the backend"},

	// Timer
	{Name: "manual", Defaults: []string{"m"}, Help: "record time manually"},
	{Name: "toggle_timer", Defaults: []string{"s"}, Help: "start / stop timer"},

	// Entries
	{Name: "delete_entry", Defaults: []string{"d"}, Help: "delete entry"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next entry"},
	{Name: "edit_entry", Defaults: []string{"e"}, Help: "edit entry"},
	{Name: "sync", Defaults: []string{"S"}, Help: "push offline edits"},
	{Name: "toggle_billable", Defaults: []string{"b"}, Help: "toggle billable"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous entry"},

	// Team
	{Name: "team", Defaults: []string{"t"}, Help: "team roster (admins and managers)"},
}

func binding(name string) key.Binding {
	for _, def := range AllKeyDefinitions {
		if def.Name == name {
			return key.NewBinding(
				key.WithKeys(def.Defaults...),
				key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
			)
		}
	}
	panic("unknown key definition: " + name)
}

// ApplicationKeys are available on every dashboard screen
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Logout    key.Binding
	Quit      key.Binding
	Refresh   key.Binding
}

// TimerKeys drive the timer panel
type TimerKeys struct {
	Manual key.Binding
	Toggle key.Binding
}

// EntryKeys act on the selected entry
type EntryKeys struct {
	Delete         key.Binding
	Down           key.Binding
	Edit           key.Binding
	Sync           key.Binding
	ToggleBillable key.Binding
	Up             key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Entries     EntryKeys
	Team        key.Binding
	Timer       TimerKeys
}

// NewKeyMap creates a KeyMap with the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: binding("force_quit"),
			Help:      binding("help"),
			Logout:    binding("logout"),
			Quit:      binding("quit"),
			Refresh:   binding("refresh"),
		},
		Entries: EntryKeys{
			Delete:         binding("delete_entry"),
			Down:           binding("down"),
			Edit:           binding("edit_entry"),
			Sync:           binding("sync"),
			ToggleBillable: binding("toggle_billable"),
			Up:             binding("up"),
		},
		Team: binding("team"),
		Timer: TimerKeys{
			Manual: binding("manual"),
			Toggle: binding("toggle_timer"),
		},
	}
}

// ShortHelp is the bottom bar (help.KeyMap)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.Toggle,
		k.Timer.Manual,
		k.Entries.Edit,
		k.Entries.Delete,
		k.Application.Refresh,
		k.Team,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp groups every binding by context (help.KeyMap)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Timer.Toggle, k.Timer.Manual},
		{k.Entries.Up, k.Entries.Down, k.Entries.Edit, k.Entries.ToggleBillable, k.Entries.Delete, k.Entries.Sync},
		{k.Team},
		{k.Application.Refresh, k.Application.Logout, k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}
