package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CallbackError represents a host callback failure during a chat operation.
// The session catches these at the point of invocation and converts them into
// a state update or a logged diagnostic; they never reach the render loop.
type CallbackError struct {
	Op        string
	MessageID string
	Err       error
}

// NewCallbackError constructs a CallbackError for the given operation.
func NewCallbackError(op, messageID string, err error) error {
	return &CallbackError{Op: op, MessageID: messageID, Err: err}
}

func (e *CallbackError) Error() string {
	if e == nil {
		return ""
	}
	if e.MessageID != "" {
		return fmt.Sprintf("callback error: %s (message %s): %v", e.Op, e.MessageID, e.Err)
	}
	return fmt.Sprintf("callback error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *CallbackError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistryError indicates misuse of the renderer registry or dispatch factory
// wiring. These fail fast at construction time; they are wiring bugs, not
// runtime conditions.
type RegistryError struct {
	Kind    string
	Message string
	Err     error
}

// NewRegistryError constructs a RegistryError for the given message kind.
func NewRegistryError(kind string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistryError{Kind: kind, Message: message, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("registry error (%s): %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("registry error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
