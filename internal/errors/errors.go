// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package errors provides the user-facing error type for arc-ww.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags a CLIError with the failure class it reports.
type Kind int

const (
	KindUnknown Kind = iota
	KindDateParse
	KindInvalidDate
	KindConfig
	KindUsage
)

func (k Kind) String() string {
	switch k {
	case KindDateParse:
		return "date-parse"
	case KindInvalidDate:
		return "invalid-date"
	case KindConfig:
		return "config"
	case KindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// CLIError is an error with a contextual message, an optional underlying
// cause and optional guidance for the user.
type CLIError struct {
	Kind        Kind
	Message     string
	Cause       error
	Hint        string
	Suggestions []string
}

// NewCLIError returns a CLIError with the given message.
func NewCLIError(msg string) *CLIError {
	return &CLIError{Message: msg}
}

// WithKind sets the error kind.
func (e *CLIError) WithKind(k Kind) *CLIError {
	e.Kind = k
	return e
}

// WithCause sets the underlying error.
func (e *CLIError) WithCause(err error) *CLIError {
	e.Cause = err
	return e
}

// WithHint sets a one line hint on how to fix the problem.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// WithSuggestions appends commands or values the user may try.
func (e *CLIError) WithSuggestions(s ...string) *CLIError {
	e.Suggestions = append(e.Suggestions, s...)
	return e
}

func (e *CLIError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// Details renders the hint and suggestions, if any, one per line.
func (e *CLIError) Details() string {
	var b strings.Builder
	if e.Hint != "" {
		fmt.Fprintf(&b, "hint: %s\n", e.Hint)
	}
	if len(e.Suggestions) > 0 {
		b.WriteString("try:\n")
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "  %s\n", s)
		}
	}
	return b.String()
}

// KindOf returns the kind of the first CLIError in err's chain.
func KindOf(err error) Kind {
	var ce *CLIError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// Is and As forward to the standard library so callers need only one
// errors import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }
