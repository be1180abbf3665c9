package integrator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/quadgo/function"
	"github.com/tuneinsight/quadgo/integrator"
)

// countingIntegrator records how many integrals the wrapped Integrator
// actually computed.
type countingIntegrator struct {
	integrator.Integrator
	calls int
}

func (c *countingIntegrator) Integrate(f function.Function, a, b float64) float64 {
	c.calls++
	return c.Integrator.Integrate(f, a, b)
}

// opaque hides the fingerprint of the underlying polynomial.
type opaque struct {
	p function.Polynomial
}

func (o opaque) Evaluate(x float64) float64        { return o.p.Evaluate(x) }
func (o opaque) Antiderivative() function.Function { return o.p.Antiderivative() }
func (o opaque) Describe() string                  { return o.p.Describe() }

func TestMemo(t *testing.T) {

	t.Run("Transparent", func(t *testing.T) {
		r := integrator.NewRiemann(integrator.DefaultStep)
		m := integrator.NewMemo(r)

		want := r.Integrate(testPoly, 0.5, 1.5)
		require.Equal(t, want, m.Integrate(testPoly, 0.5, 1.5))
		require.Equal(t, want, m.Integrate(testPoly, 0.5, 1.5))
	})

	t.Run("NoFalseSharing", func(t *testing.T) {
		in := integrator.NewAnalytical()
		m := integrator.NewMemo(in)

		p := function.NewPolynomial([]float64{2, 0, 0, 4})
		q := function.NewPolynomial([]float64{2, 0, 0, 5})

		require.Equal(t, in.Integrate(p, 0, 1), m.Integrate(p, 0, 1))
		require.Equal(t, in.Integrate(q, 0, 1), m.Integrate(q, 0, 1))
		require.Equal(t, in.Integrate(p, 0, 2), m.Integrate(p, 0, 2))
		require.Equal(t, in.Integrate(p, 0, 1), m.Integrate(p, 0, 1))
	})

	t.Run("ForwardsWithoutFingerprint", func(t *testing.T) {
		c := &countingIntegrator{Integrator: integrator.NewAnalytical()}
		m := integrator.NewMemo(c)

		o := opaque{p: testPoly}
		want := integrator.NewAnalytical().Integrate(testPoly, 0.5, 1.5)
		for i := 0; i < 3; i++ {
			require.Equal(t, want, m.Integrate(o, 0.5, 1.5))
		}
		require.Equal(t, 3, c.calls)
	})

	t.Run("Describe", func(t *testing.T) {
		require.Equal(t, "Riemann Sum", integrator.NewMemo(integrator.NewRiemann(integrator.DefaultStep)).Describe())
		require.Equal(t, "Analytical", integrator.NewMemo(integrator.NewAnalytical()).Describe())
	})
}
