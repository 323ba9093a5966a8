package search

import (
	"errors"
	"fmt"
)

// Kind classifies a search error. The taxonomy is closed: configuration
// problems fail before any sampling, objective failures abort a run.
type Kind string

const (
	// KindInvalidConfiguration marks a Config that violates its invariants.
	KindInvalidConfiguration Kind = "invalid_configuration"
	// KindObjectiveFailure marks an objective function error or panic,
	// propagated verbatim. The run produces no partial result.
	KindObjectiveFailure Kind = "objective_evaluation_failure"
)

// Error represents a search error with context
// that can be wrapped with additional information.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// Message describes the error that occurred.
	Message string
	// Op is the operation that caused the error.
	Op string
	// Component is the component where the error occurred.
	Component string
	// Err is the underlying error that triggered this one, if any.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var prefix string
	if e.Component != "" && e.Op != "" {
		prefix = fmt.Sprintf("%s: %s", e.Component, e.Op)
	} else if e.Component != "" {
		prefix = e.Component
	} else if e.Op != "" {
		prefix = e.Op
	}

	if e.Err != nil {
		if prefix != "" {
			return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	if prefix != "" {
		return fmt.Sprintf("%s: %s", prefix, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WithOperation adds operation context to the error.
func (e *Error) WithOperation(op string) *Error {
	e.Op = op
	return e
}

// WithComponent adds component context to the error.
func (e *Error) WithComponent(component string) *Error {
	e.Component = component
	return e
}

// NewInvalidConfiguration creates an invalid-configuration error with the
// given message.
func NewInvalidConfiguration(message string) *Error {
	return &Error{
		Kind:    KindInvalidConfiguration,
		Message: message,
	}
}

// InvalidConfigurationf creates an invalid-configuration error with a
// formatted message.
func InvalidConfigurationf(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidConfiguration,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapObjectiveFailure wraps an error returned (or recovered) from the
// objective function. If err is nil, WrapObjectiveFailure returns nil.
func WrapObjectiveFailure(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    KindObjectiveFailure,
		Message: message,
		Err:     err,
	}
}

// IsSearchError checks if an error is of type Error.
// If the error is a search error, it returns the error and true.
// Otherwise, it returns nil and false.
func IsSearchError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsInvalidConfiguration reports whether err is an invalid-configuration error.
func IsInvalidConfiguration(err error) bool {
	if e, ok := IsSearchError(err); ok {
		return e.Kind == KindInvalidConfiguration
	}
	return false
}

// IsObjectiveFailure reports whether err is an objective evaluation failure.
func IsObjectiveFailure(err error) bool {
	if e, ok := IsSearchError(err); ok {
		return e.Kind == KindObjectiveFailure
	}
	return false
}
