// SPDX-License-Identifier: Apache-2.0

package interval

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInterval = errors.New("proper interval requires start < end")
	ErrInvalidArity    = errors.New("interval takes zero, one or two endpoints")
	ErrSyntax          = errors.New("invalid interval syntax")
)

// InvalidIntervalError is returned when a proper interval is requested
// with endpoints that do not satisfy Start < End.
type InvalidIntervalError struct {
	Start, End int
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("%s: got start=%d end=%d", ErrInvalidInterval.Error(), e.Start, e.End)
}

func (e *InvalidIntervalError) Unwrap() error { return ErrInvalidInterval }

// InvalidArityError is returned by [New] when called with more than two
// endpoints.
type InvalidArityError struct {
	Arity int
}

func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("%s: got %d", ErrInvalidArity.Error(), e.Arity)
}

func (e *InvalidArityError) Unwrap() error { return ErrInvalidArity }

type SyntaxError struct {
	Input   string
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %q: %s", ErrSyntax.Error(), e.Input, e.Message)
	}
	return fmt.Sprintf("%s %q", ErrSyntax.Error(), e.Input)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func IsInvalidIntervalErr(err error) bool { return errors.Is(err, ErrInvalidInterval) }
func IsInvalidArityErr(err error) bool    { return errors.Is(err, ErrInvalidArity) }
func IsSyntaxErr(err error) bool          { return errors.Is(err, ErrSyntax) }
