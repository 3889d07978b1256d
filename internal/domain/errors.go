package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so callers can react without parsing messages
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindAuthRejected       ErrorKind = "auth_rejected"
	KindConflict           ErrorKind = "conflict"
	KindNetwork            ErrorKind = "network"
	KindServer             ErrorKind = "server"
	KindParse              ErrorKind = "parse"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindUnknown            ErrorKind = "unknown"
)

// Sentinel errors, one per kind. errors.Is(err, ErrConflict) matches any *Error of that kind.
var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrAuthRejected       = &Error{Kind: KindAuthRejected}
	ErrConflict           = &Error{Kind: KindConflict}
	ErrNetwork            = &Error{Kind: KindNetwork}
	ErrServer             = &Error{Kind: KindServer}
	ErrParse              = &Error{Kind: KindParse}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrUnknown            = &Error{Kind: KindUnknown}
)

var (
	ErrNotAuthenticated = errors.New("not logged in")
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrNoActiveTimer    = errors.New("no active timer")
	ErrStaleSelection   = errors.New("project selection changed")
	ErrTimerNotFound    = errors.New("timer not found")
)

// Error is the typed error returned across the client
type Error struct {
	Kind    ErrorKind
	Op      string // e.g. "start timer"
	Message string // user-facing detail, from the server when available
	Status  int    // HTTP status, 0 when no response was received
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind so sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewValidationError builds an error that never reaches the network
func NewValidationError(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// KindOf returns the kind of err, KindUnknown for foreign errors
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
