package common

import (
	"errors"
	"fmt"
	"maps"

	"github.com/samber/oops"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Kind classifies service-level failures. The set is closed.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindDuplicateUsername
	KindNotFound
	KindInvalidCredentials
	KindUnauthenticated
	KindUpstreamFailure
)

var kindNames = map[Kind]string{
	KindInvalidInput:       "invalid_input",
	KindDuplicateUsername:  "duplicate_username",
	KindNotFound:           "not_found",
	KindInvalidCredentials: "invalid_credentials",
	KindUnauthenticated:    "unauthenticated",
	KindUpstreamFailure:    "upstream_failure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String. Unknown names yield 0, false.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Error is the typed failure returned by the auth and booking services.
//
// Fields holds per-field messages meant for client display (for
// InvalidInput and DuplicateUsername it is always populated). Err keeps the
// underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindUpstreamFailure {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that the
// sentinels below can be matched with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is matching. Never return these directly.
var (
	ErrInvalidInput       = &Error{Kind: KindInvalidInput, Message: "invalid input"}
	ErrDuplicateUsername  = &Error{Kind: KindDuplicateUsername, Message: "duplicate username"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "not found"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Message: "unauthenticated"}
	ErrUpstreamFailure    = &Error{Kind: KindUpstreamFailure, Message: "upstream failure"}
)

// InvalidInput builds a KindInvalidInput error carrying a copy of fields.
func InvalidInput(fields map[string]string) *Error {
	return &Error{Kind: KindInvalidInput, Message: "Errors", Fields: maps.Clone(fields)}
}

// DuplicateUsername reports a taken username.
func DuplicateUsername() *Error {
	return &Error{
		Kind:    KindDuplicateUsername,
		Message: "Username is taken",
		Fields:  map[string]string{"username": "This username is taken"},
	}
}

// UserNotFound reports an unknown principal.
func UserNotFound() *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: "User not found",
		Fields:  map[string]string{"general": "User not found"},
	}
}

// WrongCredentials reports a password mismatch.
func WrongCredentials() *Error {
	return &Error{
		Kind:    KindInvalidCredentials,
		Message: "Wrong credentials",
		Fields:  map[string]string{"general": "Wrong credentials"},
	}
}

// Unauthenticated reports a missing, malformed, tampered or expired token.
func Unauthenticated(msg string, cause error) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg, Err: cause}
}

// Upstream wraps a store or hashing failure, keeping the cause reachable
// through errors.Is / errors.As.
func Upstream(operation string, cause error) *Error {
	return &Error{
		Kind:    KindUpstreamFailure,
		Message: operation,
		Err: oops.
			Code("UPSTREAM_FAILURE").
			With("operation", operation).
			Wrap(cause),
	}
}

// KindOf extracts the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
