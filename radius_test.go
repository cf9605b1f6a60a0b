package fastblur

import (
	"errors"
	"math"
	"testing"
)

func TestNewRadiusValid(t *testing.T) {
	for _, sigma := range []float64{0, 0.001, 1, 42.5, 1e9} {
		r, err := NewRadius(sigma)
		if err != nil {
			t.Errorf("NewRadius(%v) failed: %v", sigma, err)
			continue
		}
		if r.Sigma() != sigma {
			t.Errorf("NewRadius(%v).Sigma() = %v", sigma, r.Sigma())
		}
	}
}

func TestNewRadiusInvalid(t *testing.T) {
	tests := []struct {
		name  string
		sigma float64
	}{
		{name: "negative", sigma: -1},
		{name: "tiny negative", sigma: -1e-9},
		{name: "NaN", sigma: math.NaN()},
		{name: "positive infinity", sigma: math.Inf(1)},
		{name: "negative infinity", sigma: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRadius(tt.sigma)
			if !errors.Is(err, ErrInvalidRadius) {
				t.Errorf("NewRadius(%v) error = %v, want ErrInvalidRadius", tt.sigma, err)
			}
		})
	}
}

func TestUncheckedRadius(t *testing.T) {
	if got := UncheckedRadius(7.25).Sigma(); got != 7.25 {
		t.Errorf("UncheckedRadius(7.25).Sigma() = %v", got)
	}
}

func TestRadiusZeroValue(t *testing.T) {
	var r Radius
	if r.Sigma() != 0 {
		t.Errorf("zero Radius sigma = %v, want 0", r.Sigma())
	}
}
