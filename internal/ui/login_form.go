package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// LoginForm collects credentials; the model performs the login
type LoginForm struct {
	formState
	Email    string
	Password string
}

// NewLoginForm creates a login form, prefilled with the last email used
func NewLoginForm(email string) *LoginForm {
	lf := &LoginForm{Email: email}
	lf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&lf.Email).
				Validate(required("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&lf.Password).
				Validate(required("password")),
		),
	)
	return lf
}

func (lf *LoginForm) Init() tea.Cmd {
	return lf.init()
}

func (lf *LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return lf, lf.update(msg)
}

func (lf *LoginForm) View() string {
	return lf.view()
}
