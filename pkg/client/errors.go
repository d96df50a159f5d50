package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthenticated is returned locally, before any network call, when an
// operation requires a session token and none is installed.
var ErrUnauthenticated = errors.New("not authenticated")

// Kind is a UI-facing error category. The backend exposes no structured
// error codes, so kinds are derived from the HTTP status and the
// human-readable message (see classify).
type Kind int

const (
	KindGeneral Kind = iota
	KindValidation
	KindConflict
	KindInvalidCode
	KindExpiredCode
	KindAuth
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindInvalidCode:
		return "invalid_code"
	case KindExpiredCode:
		return "expired_code"
	case KindAuth:
		return "auth"
	case KindNetwork:
		return "network"
	default:
		return "general"
	}
}

// APIError represents a failed API call: a non-2xx response or a transport
// failure (StatusCode 0, KindNetwork).
type APIError struct {
	StatusCode int
	Message    string
	Kind       Kind
	err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		if e.err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.err)
		}
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

// IsStatus returns true if err (or any wrapped error) is an APIError with
// the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// KindOf returns the error's category, KindGeneral for anything unknown.
func KindOf(err error) Kind {
	if errors.Is(err, ErrUnauthenticated) {
		return KindAuth
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindGeneral
}

// IsKind reports whether the error classifies to the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// messagePatterns is the single place backend message text is mapped to
// error kinds. Order matters: the first matching substring wins, so the
// more specific entries come first.
var messagePatterns = []struct {
	substr string
	kind   Kind
}{
	{"already exists", KindConflict},
	{"already registered", KindConflict},
	{"already in use", KindConflict},
	{"expired", KindExpiredCode},
	{"invalid code", KindInvalidCode},
	{"incorrect code", KindInvalidCode},
	{"invalid otp", KindInvalidCode},
	{"wrong code", KindInvalidCode},
	{"unauthorized", KindAuth},
	{"not authenticated", KindAuth},
	{"forbidden", KindAuth},
	{"invalid credentials", KindAuth},
	{"network", KindNetwork},
	{"connection", KindNetwork},
	{"timeout", KindNetwork},
	{"required", KindValidation},
	{"invalid", KindValidation},
	{"must be", KindValidation},
}

// classify maps a response to a Kind. The message is checked first (it is
// the most specific signal the backend gives), then the HTTP status.
func classify(status int, message string) Kind {
	msg := strings.ToLower(message)
	for _, p := range messagePatterns {
		if strings.Contains(msg, p.substr) {
			return p.kind
		}
	}
	switch status {
	case 400, 422:
		return KindValidation
	case 401, 403:
		return KindAuth
	case 409:
		return KindConflict
	}
	return KindGeneral
}
