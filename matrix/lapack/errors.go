// SPDX-License-Identifier: MIT

package lapack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bla/matrix"
)

// ErrUnsupportedType is returned for element types gonum has no kernel for.
var ErrUnsupportedType = errors.New("lapack: unsupported element type")

// Status codes other than LAPACK info values.
const (
	StatusOK       = 0
	StatusArgument = -1
)

// StatusError reports a non-zero status from a BLAS/LAPACK routine.
type StatusError struct {
	Routine string
	Code    int
}

func (e *StatusError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("lapack: %s: zero pivot at %d", e.Routine, e.Code)
	}

	return fmt.Sprintf("lapack: %s: status %d", e.Routine, e.Code)
}

// Unwrap maps positive info codes to matrix.ErrSingular.
func (e *StatusError) Unwrap() error {
	if e.Code > 0 {
		return matrix.ErrSingular
	}

	return nil
}

// status builds a StatusError, logging it at debug level.
func status(routine string, code int) error {
	if code == StatusOK {
		return nil
	}
	log().Debug().Str("routine", routine).Int("code", code).Msg("lapack call failed")

	return &StatusError{Routine: routine, Code: code}
}

// guard converts a BLAS argument panic into a StatusArgument error.
func guard(routine string, err *error) {
	if r := recover(); r != nil {
		log().Debug().Str("routine", routine).Interface("panic", r).Msg("blas argument error")
		*err = &StatusError{Routine: routine, Code: StatusArgument}
	}
}
