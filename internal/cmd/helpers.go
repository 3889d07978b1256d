package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/punch/internal/domain"
)

// requireUser returns the logged in user or a hint to log in
func requireUser(cli *CLI) (*domain.User, error) {
	user := cli.Container.SessionService.CurrentUser()
	if user == nil {
		return nil, errors.New("not logged in, run 'punch login'")
	}
	return user, nil
}

// explain turns errors the user can act on into instructions
func explain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrAuthRejected):
		return fmt.Errorf("session expired, run 'punch login': %w", err)
	case errors.Is(err, domain.ErrNotAuthenticated):
		return errors.New("not logged in, run 'punch login'")
	case errors.Is(err, domain.ErrNetwork):
		return fmt.Errorf("%w (is the backend running?)", err)
	}
	return err
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseDate accepts YYYY-MM-DD in local time; empty means no bound
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", flag, value)
	}
	return t, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
