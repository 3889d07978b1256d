package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formState drives an embedded huh form until it is submitted or cancelled
type formState struct {
	Cancelled bool
	Completed bool
	form      *huh.Form
}

func (f *formState) init() tea.Cmd {
	return f.form.Init()
}

// update forwards msg to the form; esc and ctrl+c cancel it
func (f *formState) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			f.Cancelled = true
			f.Completed = true
			return nil
		}
	}

	form, cmd := f.form.Update(msg)
	if updated, ok := form.(*huh.Form); ok {
		f.form = updated
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
		return nil
	case huh.StateAborted:
		f.Cancelled = true
		f.Completed = true
		return nil
	}
	return cmd
}

func (f *formState) view() string {
	if f.form == nil {
		return ""
	}
	return f.form.View()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s required", field)
		}
		return nil
	}
}
