// Package integrator implements the evaluation of definite integrals over an
// interval, with interchangeable integration backends operating on the
// abstractions of the function package.
package integrator

import (
	"github.com/tuneinsight/quadgo/function"
)

// An Integrator computes the definite integral of a function over the
// interval [a, b]. Implementations are deterministic: integrating the same
// function over the same interval twice returns the same value.
type Integrator interface {
	// Integrate returns the definite integral of f over [a, b].
	Integrate(f function.Function, a, b float64) float64

	// Describe returns a short human-readable name for the integration
	// method, used to label results in reports.
	Describe() string
}
