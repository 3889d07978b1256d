package ui

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/punch/internal/domain"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	minLineWidth   = 10
	truncationMark = "..."
)

// clearErrorMsg is sent after the error clear delay. seq ties it to the
// error it was scheduled for so a newer error is not cleared early.
type clearErrorMsg struct {
	seq int
}

// ErrorManager holds the error line shown under the dashboard
type ErrorManager struct {
	current         error
	errorClearDelay time.Duration
	seq             int
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError shows err and returns the command that clears it later
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.current = err
	em.seq++
	if err == nil || em.errorClearDelay <= 0 {
		return nil
	}
	seq := em.seq
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// Clear drops the error if msg belongs to it
func (em *ErrorManager) Clear(msg clearErrorMsg) {
	if msg.seq == em.seq {
		em.current = nil
	}
}

// Error returns the error on display, nil when there is none
func (em *ErrorManager) Error() error {
	return em.current
}

// describe turns an error into the sentence shown to the user
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthRejected):
		return "session expired, please log in again"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "please log in"
	case errors.Is(err, domain.ErrConflict):
		return "a timer is already running, stop it first"
	case errors.Is(err, domain.ErrNetwork):
		return "backend unreachable: " + err.Error()
	}
	return err.Error()
}

// formatErrorForDisplay wraps the error to maxWidth, keeping at most
// maxErrorLines lines and marking anything cut off with "..."
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(describe(err))
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minLineWidth)
	firstWidth := max(width-utf8.RuneCountInString(errorPrefix), minLineWidth)

	var lines []string
	line := ""
	limit := firstWidth
	truncated := false
	for i, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && utf8.RuneCountInString(candidate) > limit {
			lines = append(lines, line)
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				line = ""
				break
			}
			line = word
			limit = width
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := limit - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
