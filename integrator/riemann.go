package integrator

import (
	"fmt"

	"github.com/tuneinsight/quadgo/function"
)

// DefaultStep is the canonical discretization step of the Riemann integrator.
const DefaultStep = 0.001

// Riemann approximates the definite integral by a trapezoid sum over
// sub-intervals of fixed width. The interval [a, b] is split into
// n = int((b-a)/step) sub-intervals: the trailing fraction of the interval
// that does not fit a full sub-interval is not summed, and b <= a gives n = 0,
// so the result is 0 rather than the sign-flipped integral.
type Riemann struct {
	step float64
}

// NewRiemann creates a new Riemann integrator with the given discretization
// step. The function panics if step is not strictly positive.
func NewRiemann(step float64) Riemann {
	if !(step > 0) {
		panic(fmt.Errorf("cannot NewRiemann: step must be strictly positive but is %v", step))
	}
	return Riemann{step: step}
}

// Step returns the discretization step.
func (r Riemann) Step() float64 {
	return r.step
}

// Integrate returns the trapezoid sum of f over [a, b].
func (r Riemann) Integrate(f function.Function, a, b float64) (sum float64) {
	n := int((b - a) / r.step)
	for i := 0; i < n; i++ {
		x1 := a + float64(i)*r.step
		x2 := x1 + r.step
		y1 := f.Evaluate(x1)
		y2 := f.Evaluate(x2)
		sum += (x2 - x1) * (y1 + y2) / 2
	}
	return
}

// Describe returns the name of the method.
func (Riemann) Describe() string {
	return "Riemann Sum"
}
