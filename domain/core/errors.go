package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrEmptyTable        = errors.New("empty estimate table")
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")
	ErrNotSquare         = errors.New("matrix is not square")
	ErrTooFewVariables   = errors.New("need at least two variables")
	ErrTooFewRows        = errors.New("need at least two observations")

	// Numerical degeneracy - propagated, never silently replaced
	ErrSingularMatrix         = errors.New("correlation matrix is singular")
	ErrNonPositiveDeterminant = errors.New("correlation matrix determinant is not positive")

	// Parse errors
	ErrBadColumn = errors.New("missing or malformed column")
)

// Error constructors with context
func NewDimensionError(rows, cols int) error {
	return fmt.Errorf("%w: %dx%d", ErrDimensionMismatch, rows, cols)
}

func NewColumnError(column string, reason string) error {
	return fmt.Errorf("%w: %s (%s)", ErrBadColumn, column, reason)
}

// IsNumericalError reports whether err is a numerical-degeneracy error
// (singular matrix or non-positive determinant).
func IsNumericalError(err error) bool {
	return errors.Is(err, ErrSingularMatrix) || errors.Is(err, ErrNonPositiveDeterminant)
}
