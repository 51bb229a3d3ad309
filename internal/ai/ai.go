package ai

import (
	"context"
	"errors"
	"fmt"
)

// Reason is a coarse classification of a backend failure. Callers use it to
// decide between retrying, disabling the backend for the rest of the session,
// or falling back to deterministic content.
type Reason string

const (
	// ReasonAuthInvalid means the credential is missing, invalid or expired.
	ReasonAuthInvalid Reason = "auth_invalid"
	// ReasonQuotaExceeded means the backend rejected the call due to usage limits.
	ReasonQuotaExceeded Reason = "quota_exceeded"
	// ReasonNetworkUnavailable means the backend could not be reached or answered with a server error.
	ReasonNetworkUnavailable Reason = "network_unavailable"
	// ReasonEmpty means the backend answered but produced no usable text.
	ReasonEmpty Reason = "empty_response"
	// ReasonOther covers everything else.
	ReasonOther Reason = "other"
)

// BackendError wraps a backend failure with its classification so the caller
// can distinguish "the model returned garbage" from "the model was unreachable".
type BackendError struct {
	Reason  Reason
	Wrapped error
}

func (e *BackendError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("backend failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("backend failed: %s", e.Reason)
}

func (e *BackendError) Unwrap() error {
	return e.Wrapped
}

// ReasonOf extracts the failure classification from an error chain.
// Errors that are not BackendErrors are classified as ReasonOther.
func ReasonOf(err error) Reason {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Reason
	}
	return ReasonOther
}

// Disabling reports whether the failure should disable the backend for the
// rest of the session instead of being retried on the next call.
func Disabling(err error) bool {
	reason := ReasonOf(err)
	return reason == ReasonAuthInvalid || reason == ReasonQuotaExceeded
}

// Generator produces raw text for a prompt. Implementations perform no
// retries; retry policy belongs to callers.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
