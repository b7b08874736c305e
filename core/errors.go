package core

import (
	"errors"
	"fmt"
)

// Session & storage errors
var (
	ErrRecordNotFound = errors.New("record not found in state store")
	ErrNotHydrated    = errors.New("session store not hydrated")
)

// Submission errors
var (
	ErrSubmitInFlight = errors.New("submission already in flight")
	ErrNoDraft        = errors.New("no active draft")
	ErrAssetRequired  = errors.New("inspection requires an asset id")
)

// Config errors (embedder-side wiring)
var (
	ErrStateStoreRequired = errors.New("state store adapter is required")
	ErrAssetAPIRequired   = errors.New("asset API adapter is required")
	ErrAuditAPIRequired   = errors.New("audit API adapter is required")
)

// Kind classifies a failure crossing the API or storage boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNetwork
	KindServerRejection
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindServerRejection:
		return "server rejection"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is the explicit result value for boundary failures: a kind the
// caller can branch on plus the message the user should see.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a kind-tagged boundary error.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// ErrorKind extracts the Kind from err, or KindUnknown when err carries none.
func ErrorKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
