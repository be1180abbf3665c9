package function

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/tuneinsight/quadgo/utils/bignum"
)

// Polynomial is a dense univariate polynomial in the monomial basis,
// p(x) = c[0] + c[1]*x + ... + c[n]*x^n. It is an immutable value type: the
// constructor copies the coefficient vector and no method mutates the receiver.
type Polynomial struct {
	coeffs []float64
}

var _ Function = Polynomial{}

// NewPolynomial creates a new Polynomial from the vector of coefficients in
// ascending degree order, coeffs[i] being the coefficient of x^i. The vector
// is copied, the caller keeps ownership of the input slice. An empty vector is
// the zero polynomial.
func NewPolynomial(coeffs []float64) Polynomial {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: c}
}

// Degree returns the degree of the polynomial, len(coeffs)-1.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficient vector in ascending degree
// order.
func (p Polynomial) Coefficients() []float64 {
	coeffs := make([]float64, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return coeffs
}

// Evaluate returns p(x), computed with Horner's rule. The zero polynomial
// evaluates to 0 for every x, and the constant term is returned as-is at x=0,
// so x^0 is treated as 1 everywhere.
func (p Polynomial) Evaluate(x float64) (y float64) {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return
}

// EvaluateBig returns p(x) evaluated in multi-precision arithmetic. The
// precision of x is used as reference precision for y.
func (p Polynomial) EvaluateBig(x *big.Float) (y *big.Float) {
	return bignum.MonomialEval(x, bignum.NewFloatSlice(p.coeffs, x.Prec()))
}

// Antiderivative returns the antiderivative P of p with P(0) = 0: the
// constant term of P is zero and the coefficient of x^(i+1) is coeffs[i]/(i+1).
// The returned Function is a Polynomial of degree p.Degree()+1 sharing no
// state with the receiver.
func (p Polynomial) Antiderivative() Function {
	coeffs := make([]float64, len(p.coeffs)+1)
	for i, c := range p.coeffs {
		coeffs[i+1] = c / float64(i+1)
	}
	return Polynomial{coeffs: coeffs}
}

// Describe renders the polynomial with every stored coefficient in ascending
// degree order, zero coefficients included: the polynomial with coefficients
// [2, 0, 0, 4] renders as "2 + 0x^1 + 0x^2 + 4x^3". Negative coefficients
// keep the separating " + ", so [1, -3] renders as "1 + -3x^1". The zero
// polynomial renders as the empty string.
func (p Polynomial) Describe() string {
	var sb strings.Builder
	for i, c := range p.coeffs {
		if i == 0 {
			fmt.Fprintf(&sb, "%v", c)
		} else {
			fmt.Fprintf(&sb, " + %vx^%d", c, i)
		}
	}
	return sb.String()
}

// String returns the same rendering as Describe.
func (p Polynomial) String() string {
	return p.Describe()
}

// Equal returns true if p and other have identical coefficient vectors.
func (p Polynomial) Equal(other Polynomial) bool {
	return cmp.Equal(p.coeffs, other.coeffs)
}

// Fingerprint returns a 32-byte digest of the coefficient vector. Two
// polynomials have the same fingerprint if and only if their coefficient
// vectors are bit-identical, including length.
func (p Polynomial) Fingerprint() (fp [32]byte) {
	h := blake3.New()
	var buf [8]byte
	for _, c := range p.coeffs {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
		h.Write(buf[:])
	}
	copy(fp[:], h.Sum(nil))
	return
}
