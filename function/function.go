// Package function provides abstractions for real-valued functions of a single
// real variable that expose evaluation, an antiderivative and a printable
// form, which is all the integrator package needs to integrate them exactly
// or numerically.
package function

// Function is a real-valued function of one real variable. Implementations
// must be safe to evaluate repeatedly and must not retain or mutate shared
// state across calls.
type Function interface {
	// Evaluate returns the value of the function at x.
	Evaluate(x float64) float64

	// Antiderivative returns a new Function F such that F' is the receiver,
	// with the constant of integration fixed to zero. The receiver is left
	// unchanged and the returned Function shares no state with it.
	Antiderivative() Function

	// Describe returns a human-readable rendering of the function, suitable
	// for labeling results in reports.
	Describe() string
}
