package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call. UI code branches on kinds, never on
// status codes or error strings.
type Kind string

const (
	// KindInvalidCredentials means the login was rejected with HTTP 401
	KindInvalidCredentials Kind = "invalid_credentials"

	// KindDuplicateOrInvalid means registration was rejected with HTTP 400
	KindDuplicateOrInvalid Kind = "duplicate_or_invalid"

	// KindInvalidToken means token verification failed for any reason
	KindInvalidToken Kind = "invalid_token"

	// KindQuotaExceeded means the storage limit was reached; non-fatal
	KindQuotaExceeded Kind = "quota_exceeded"

	// KindNotFound means the requested file does not exist (HTTP 404)
	KindNotFound Kind = "not_found"

	// KindServerRejected means a generic 4xx/5xx with a body message
	KindServerRejected Kind = "server_rejected"

	// KindUnreachable means no response was received from the service
	KindUnreachable Kind = "unreachable"

	// KindUnknown means the response shape was not recognized
	KindUnknown Kind = "unknown"
)

// Error is the typed failure returned by every API client call.
type Error struct {
	Kind    Kind
	Message string
	Status  int // HTTP status when a response was received, 0 otherwise
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates a typed API error
func NewError(kind Kind, message string, status int) *Error {
	return &Error{Kind: kind, Message: message, Status: status}
}

// KindOf returns the kind carried by err, or KindUnknown when err is not an
// API error. A nil err has no kind and returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
