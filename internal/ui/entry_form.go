package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/punch/internal/domain"
)

// EntryForm edits the mutable fields of an entry
type EntryForm struct {
	formState
	Billable    bool
	Description string
	Duration    string
	entry       domain.TimeEntry
}

// NewEntryForm creates an edit form prefilled from entry
func NewEntryForm(entry domain.TimeEntry) *EntryForm {
	ef := &EntryForm{
		Billable:    entry.Billable,
		Description: entry.Description,
		Duration:    strconv.Itoa(entry.Duration),
		entry:       entry,
	}

	ef.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Value(&ef.Description),
			huh.NewConfirm().
				Title("Billable?").
				Affirmative("Yes").
				Negative("No").
				Value(&ef.Billable),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&ef.Duration).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 0 {
						return fmt.Errorf("enter a whole number of minutes")
					}
					return nil
				}),
		),
	)
	return ef
}

func (ef *EntryForm) Init() tea.Cmd {
	return ef.init()
}

func (ef *EntryForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return ef, ef.update(msg)
}

func (ef *EntryForm) View() string {
	return ef.view()
}

// EntryID is the entry being edited
func (ef *EntryForm) EntryID() string {
	return ef.entry.ID
}

// Patch holds only the fields that changed
func (ef *EntryForm) Patch() domain.EntryPatch {
	var patch domain.EntryPatch
	if ef.Description != ef.entry.Description {
		description := ef.Description
		patch.Description = &description
	}
	if ef.Billable != ef.entry.Billable {
		billable := ef.Billable
		patch.Billable = &billable
	}
	if n, err := strconv.Atoi(strings.TrimSpace(ef.Duration)); err == nil && n != ef.entry.Duration {
		patch.Duration = &n
	}
	return patch
}

// ConfirmForm asks a yes/no question
type ConfirmForm struct {
	formState
	Confirmed bool
}

// NewConfirmForm creates a confirmation defaulting to No
func NewConfirmForm(title, description string) *ConfirmForm {
	cf := &ConfirmForm{}
	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&cf.Confirmed),
		),
	)
	return cf
}

func (cf *ConfirmForm) Init() tea.Cmd {
	return cf.init()
}

func (cf *ConfirmForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return cf, cf.update(msg)
}

func (cf *ConfirmForm) View() string {
	return cf.view()
}
