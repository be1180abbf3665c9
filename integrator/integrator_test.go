package integrator_test

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/quadgo/function"
	"github.com/tuneinsight/quadgo/integrator"
	"github.com/tuneinsight/quadgo/utils"
	"github.com/tuneinsight/quadgo/utils/sampling"
)

// testPoly is the integrand 2 + 4x^3 + 5x^7, whose integral over [0.5, 1.5]
// is exactly representable, all values involved being dyadic rationals.
var (
	testPoly     = function.NewPolynomial([]float64{2, 0, 0, 4, 0, 0, 0, 5})
	testIntegral = 23.015625
)

func TestAnalytical(t *testing.T) {

	in := integrator.NewAnalytical()

	t.Run("KnownIntegral", func(t *testing.T) {
		require.Equal(t, testIntegral, in.Integrate(testPoly, 0.5, 1.5))
	})

	t.Run("ReversedBounds", func(t *testing.T) {
		require.Equal(t, -testIntegral, in.Integrate(testPoly, 1.5, 0.5))
	})

	t.Run("ZeroWidth", func(t *testing.T) {
		require.Equal(t, 0.0, in.Integrate(testPoly, 1.5, 1.5))
	})

	t.Run("ZeroPolynomial", func(t *testing.T) {
		require.Equal(t, 0.0, in.Integrate(function.NewPolynomial(nil), -3, 7))
	})

	t.Run("Describe", func(t *testing.T) {
		require.Equal(t, "Analytical", in.Describe())
	})
}

func TestRiemann(t *testing.T) {

	t.Run("DefaultStep", func(t *testing.T) {
		r := integrator.NewRiemann(integrator.DefaultStep)
		require.Equal(t, integrator.DefaultStep, r.Step())

		require.InEpsilon(t, testIntegral, r.Integrate(testPoly, 0.5, 1.5), 1e-3)
	})

	t.Run("DyadicStep", func(t *testing.T) {
		// a step dividing b-a exactly leaves the pure trapezoid error
		r := integrator.NewRiemann(1.0 / 1024.0)
		require.InDelta(t, testIntegral, r.Integrate(testPoly, 0.5, 1.5), 1e-4)
	})

	t.Run("ConvergesQuadratically", func(t *testing.T) {
		errs := map[float64]float64{}
		for _, step := range []float64{1.0 / 128, 1.0 / 256, 1.0 / 512, 1.0 / 1024} {
			got := integrator.NewRiemann(step).Integrate(testPoly, 0.5, 1.5)
			errs[step] = math.Abs(got - testIntegral)
		}

		steps := utils.GetSortedKeys(errs)
		for i := 1; i < len(steps); i++ {
			// halving the step divides the trapezoid error by 4
			require.Less(t, errs[steps[i-1]], errs[steps[i]])
			require.InDelta(t, 4.0, errs[steps[i]]/errs[steps[i-1]], 0.5)
		}
	})

	t.Run("RandomPolynomials", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(nil)
		require.NoError(t, err)
		coeffs := sampling.NewUniformSampler(prng, -4, 4)

		r := integrator.NewRiemann(1.0 / 4096.0)
		an := integrator.NewAnalytical()

		devs := make([]float64, 32)
		for i := range devs {
			f := function.NewPolynomial(coeffs.NextSlice(8))
			devs[i] = math.Abs(r.Integrate(f, 0.5, 1.5) - an.Integrate(f, 0.5, 1.5))
		}

		maxDev, err := stats.Max(devs)
		require.NoError(t, err)
		require.Less(t, maxDev, 1e-4)
	})

	t.Run("TruncatedTail", func(t *testing.T) {
		// int(1/0.3) = 3 sub-intervals, covering [0, 0.9] only
		got := integrator.NewRiemann(0.3).Integrate(function.NewPolynomial([]float64{1}), 0, 1)
		require.InDelta(t, 0.9, got, 1e-12)
	})

	t.Run("AsymmetricBounds", func(t *testing.T) {
		r := integrator.NewRiemann(integrator.DefaultStep)
		require.Equal(t, 0.0, r.Integrate(testPoly, 1.5, 0.5))
		require.Equal(t, 0.0, r.Integrate(testPoly, 1.5, 1.5))

		// unlike Analytical, which flips the sign on reversed bounds
		require.Equal(t, -testIntegral, integrator.NewAnalytical().Integrate(testPoly, 1.5, 0.5))
	})

	t.Run("Idempotent", func(t *testing.T) {
		r := integrator.NewRiemann(integrator.DefaultStep)
		require.Equal(t, r.Integrate(testPoly, 0.5, 1.5), r.Integrate(testPoly, 0.5, 1.5))
	})

	t.Run("InvalidStep", func(t *testing.T) {
		require.Panics(t, func() { integrator.NewRiemann(0) })
		require.Panics(t, func() { integrator.NewRiemann(-0.001) })
		require.Panics(t, func() { integrator.NewRiemann(math.NaN()) })
	})

	t.Run("Describe", func(t *testing.T) {
		require.Equal(t, "Riemann Sum", integrator.NewRiemann(integrator.DefaultStep).Describe())
	})
}
