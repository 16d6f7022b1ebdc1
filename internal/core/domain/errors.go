package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for everything the client layer can surface. Callers match
// with errors.Is; the gateway is the single place these are produced from
// raw HTTP outcomes.
var (
	// ErrUnreachable means the backend could not be contacted at all.
	ErrUnreachable = errors.New("backend unreachable")
	// ErrUnauthorized means the bearer credential was rejected. Handled
	// globally by the gateway; call sites normally never see it surface.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse means the backend answered with a body that does
	// not match the expected envelope.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrRejected means the backend answered success:false.
	ErrRejected = errors.New("request rejected")
	// ErrNotFound is a rejection for a record that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrValidation means a local precondition failed; no call was issued.
	ErrValidation = errors.New("validation failed")
	// ErrInFlight means a submit was attempted while one is outstanding.
	ErrInFlight = errors.New("operation already in flight")
	// ErrConfirmationRequired means a delete was attempted without the
	// explicit confirmation step.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// RejectedError carries the backend's own message for a success:false
// response so it can be surfaced verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return ErrRejected.Error()
	}
	return e.Message
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

// Reject builds a RejectedError, falling back to a generic message.
func Reject(message string) error {
	return &RejectedError{Message: message}
}

// RejectionMessage extracts the backend-supplied message from err, if any.
func RejectionMessage(err error) (string, bool) {
	var re *RejectedError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message, true
	}
	return "", false
}

// FailureMessage renders err as guidance fit for a toast or login screen.
// The three network outcomes deliberately read differently so the operator
// knows whether to fix credentials or go restart the backend.
func FailureMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, ErrUnreachable):
		return "cannot reach the backend, check that the service is running"
	case errors.Is(err, ErrMalformedResponse):
		return "invalid response from server"
	case errors.Is(err, ErrUnauthorized):
		return "session expired, please sign in again"
	case errors.Is(err, ErrRejected):
		if msg, ok := RejectionMessage(err); ok {
			return msg
		}
	case errors.Is(err, ErrValidation):
		return err.Error()
	}
	if fallback != "" {
		return fallback
	}
	return fmt.Sprintf("unexpected error: %v", err)
}
