// Package errs is a thin facade over cockroachdb/errors: Mark attaches
// a sentinel that errors.Is can match while the original cause keeps
// its stack trace.
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

func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}
