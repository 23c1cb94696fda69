package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrDemandRate indicates a Poisson rate that is not a positive finite number.
	ErrDemandRate = errors.New("inventory: demand rate must be positive and finite")

	// ErrNegativeCost indicates a holding or penalty cost below zero.
	ErrNegativeCost = errors.New("inventory: cost rates must be non-negative and finite")
)

// ParamError wraps a validation failure with the offending field.
type ParamError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Field, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
