package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/services"
)

// LoginCmd authenticates and stores the session
type LoginCmd struct {
	Email    string `help:"Account email (prompted when missing)" short:"e"`
	Password string `help:"Account password (prompted when missing)" short:"p" env:"PUNCH_PASSWORD"`
}

// Run executes the login command
func (l *LoginCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing login command", "email", l.Email)

	if l.Email == "" || l.Password == "" {
		if err := l.prompt(); err != nil {
			return err
		}
	}

	user, err := cli.Container.SessionService.Login(context.Background(), l.Email, l.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return errors.New("invalid email or password")
		}
		return explain(err)
	}

	fmt.Printf("Logged in as %s (%s)\n", user.DisplayName(), user.Role)
	fmt.Println(user.Role.DashboardTitle())
	return nil
}

func (l *LoginCmd) prompt() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&l.Email).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("email required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password required")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("login cancelled: %w", err)
	}
	return nil
}

// SignupCmd creates an account and logs in
type SignupCmd struct {
	Department string `help:"Department (members only)"`
	Email      string `help:"Account email" required:""`
	Name       string `help:"Full name" required:""`
	Password   string `help:"Account password" required:"" env:"PUNCH_PASSWORD"`
	Phone      string `help:"Phone number (a placeholder is sent when empty)"`
	Position   string `help:"Position (members only)"`
	Role       string `help:"Account role" enum:"employee,manager,admin" default:"employee"`
}

// Run executes the signup command
func (s *SignupCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing signup command", "email", s.Email, "role", s.Role)

	user, err := cli.Container.SessionService.Signup(context.Background(), services.SignupParams{
		Department: s.Department,
		Email:      s.Email,
		Name:       s.Name,
		Password:   s.Password,
		Phone:      s.Phone,
		Position:   s.Position,
		Role:       domain.Role(s.Role),
	})
	if err != nil {
		return explain(err)
	}

	fmt.Printf("Account created, logged in as %s (%s)\n", user.DisplayName(), user.Role)
	return nil
}

// LogoutCmd clears the stored session
type LogoutCmd struct{}

// Run executes the logout command
func (l *LogoutCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// WhoamiCmd shows the stored identity
type WhoamiCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Verify bool   `help:"Check the session against the backend"`
}

// Run executes the whoami command
func (w *WhoamiCmd) Run(cli *CLI) error {
	user, err := requireUser(cli)
	if err != nil {
		return err
	}

	note := ""
	if w.Verify {
		result, err := cli.Container.SessionService.Verify(context.Background())
		if err != nil {
			return explain(err)
		}
		switch result.Outcome {
		case services.VerifyRejected:
			return explain(result.Err)
		case services.VerifyKept:
			note = "could not reach the backend, showing stored identity"
		case services.VerifyConfirmed:
			note = "verified"
		}
		user = result.User
	}

	if w.Format == "json" {
		return printJSON(user)
	}

	fmt.Printf("Name:   %s\n", user.DisplayName())
	fmt.Printf("Email:  %s\n", user.Email)
	fmt.Printf("Role:   %s\n", user.Role)
	fmt.Printf("ID:     %s\n", user.ID)
	if note != "" {
		fmt.Printf("\n(%s)\n", note)
	}
	return nil
}
