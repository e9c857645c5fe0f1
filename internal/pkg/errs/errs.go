// Package errs wraps cockroachdb/errors so the rest of the codebase never
// imports it directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel while keeping the original cause and its stack.
// The mark is only visible to Is, not to stdlib errors.Is, so any sentinel
// the HTTP layer switches on must be returned bare instead of marked.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err carries target in its cause chain or as a mark.
func Is(err error, target error) bool {
	return cr.Is(err, target)
}
