package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes provider failures. Callers rarely branch on it;
// classification mainly drives the remediation hint in the message.
type ErrorKind string

const (
	// ErrorKindQuota marks quota / billing exhaustion.
	ErrorKindQuota ErrorKind = "quota"
	// ErrorKindCredential marks a rejected API key.
	ErrorKindCredential ErrorKind = "credential"
	// ErrorKindTransport marks any other provider or network failure.
	ErrorKindTransport ErrorKind = "transport"
)

// APIError is a classified provider failure carrying a human-readable
// message (including any remediation hint) and the underlying cause.
type APIError struct {
	Kind     ErrorKind
	Provider string
	Message  string
	Cause    error
}

// Error implements error.
func (e *APIError) Error() string { return e.Message }

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *APIError) Unwrap() error { return e.Cause }

// NewAPIError builds a classified provider error.
func NewAPIError(kind ErrorKind, provider, message string, cause error) *APIError {
	return &APIError{Kind: kind, Provider: provider, Message: message, Cause: cause}
}

// UnsupportedModelError reports a model identifier outside a catalog,
// naming the offender and the identifiers that would have been accepted.
type UnsupportedModelError struct {
	Name      string
	Supported []string
}

// Error implements error.
func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("Model '%s' is not supported. Supported models: %s",
		e.Name, strings.Join(e.Supported, ", "))
}

// IsUnsupportedModel reports whether err is an UnsupportedModelError.
func IsUnsupportedModel(err error) bool {
	var target *UnsupportedModelError
	return errors.As(err, &target)
}
