package fastblur

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRadius is returned when a blur radius is negative, NaN, or
// infinite. Validation happens before any pixel is touched, so a failed
// call leaves the image unchanged.
var ErrInvalidRadius = errors.New("fastblur: invalid radius")

// Radius is a validated blur radius: the standard deviation (sigma) of the
// Gaussian being approximated, guaranteed non-negative and finite.
//
// The zero value is a valid radius of sigma 0 (identity blur).
type Radius struct {
	sigma float64
}

// NewRadius validates sigma and wraps it in a Radius.
// Negative, NaN, and infinite values fail with ErrInvalidRadius.
func NewRadius(sigma float64) (Radius, error) {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return Radius{}, fmt.Errorf("%w: %v", ErrInvalidRadius, sigma)
	}
	return Radius{sigma: sigma}, nil
}

// UncheckedRadius wraps sigma without validation.
//
// The caller must guarantee sigma is non-negative and finite; passing an
// invalid value shifts the precondition violation into the blur itself,
// where it is not detected. Prefer NewRadius unless the value is already
// known valid (e.g. a compile-time constant).
func UncheckedRadius(sigma float64) Radius {
	return Radius{sigma: sigma}
}

// Sigma returns the standard deviation this radius represents.
func (r Radius) Sigma() float64 {
	return r.sigma
}

// String implements fmt.Stringer.
func (r Radius) String() string {
	return fmt.Sprintf("σ=%g", r.sigma)
}
