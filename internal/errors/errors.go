// Package errors carries the structured error type surfaced by the CLI
// and the dev server. Library packages return plain wrapped errors; this
// type exists for failures a person has to act on.
package errors

import (
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryBuild   Category = "build"
	CategoryRuntime Category = "runtime"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
	CategoryDeploy  Category = "deploy"
)

// Location represents a source code location.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Error is a structured error with a code, a hint, and an optional
// source location.
type Error struct {
	// Code is a unique error identifier (e.g., "X012").
	Code string

	// Category is the error type (build, runtime, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Hint suggests what to do about it.
	Hint string

	// Location is where the error occurred, when known.
	Location *Location

	// Err is the wrapped cause.
	Err error
}

// New creates a structured error.
func New(code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message}
}

// WithHint attaches a suggestion.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// WithLocation attaches a source location.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	return e
}

// Wrap attaches a cause.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Location != nil {
		fmt.Fprintf(&b, " (%s)", e.Location)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Format renders the error for the terminal, with ANSI color.
func (e *Error) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\033[31m[%s]\033[0m \033[1m%s\033[0m\n", e.Code, e.Message)
	if e.Location != nil {
		fmt.Fprintf(&b, "  at %s\n", e.Location)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, "  caused by: %v\n", e.Err)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "  \033[36mhint:\033[0m %s\n", e.Hint)
	}
	return b.String()
}
