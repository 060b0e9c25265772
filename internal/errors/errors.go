package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Codes group failures by the layer that raised them. The wave core has no
// error paths, so every code belongs to an outer layer.
const (
	// ErrConfig marks a missing, unreadable or out-of-bounds .sinewave.yaml.
	ErrConfig = "CONFIG"
	// ErrInput marks a bad flag or prompt answer.
	ErrInput = "INPUT"
	// ErrRender marks a failure drawing or exporting the plot.
	ErrRender = "RENDER"
)

// Error is what cli.Execute prints before exiting 1. Message is the headline;
// Cause and Suggestion follow on their own indented lines when set.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap keeps the code of the nearest *Error in err's chain, so adding context
// to a config failure still reports CONFIG. Anything else is treated as a
// render failure, since the terminal program is the only caller without a
// code of its own.
func Wrap(err error, message string) *Error {
	code := ErrRender
	var inner *Error
	if errors.As(err, &inner) {
		code = inner.Code
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether any *Error in err's chain carries code.
func IsCode(err error, code string) bool {
	var target *Error
	return errors.As(err, &target) && target.Code == code
}
