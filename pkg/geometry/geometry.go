// Package geometry provides float32 vector and bounding-box primitives for
// polygonal mesh processing. Vector operations come in two flavors: value
// methods that return new vectors, and explicit *InPlace variants for hot
// paths that mutate the receiver.
package geometry

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used for float comparisons throughout the package.
const Epsilon = 1e-7

// ErrDivideByZero is returned when a scalar division or normalization would
// divide by a near-zero value.
var ErrDivideByZero = errors.New("division by zero")

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
