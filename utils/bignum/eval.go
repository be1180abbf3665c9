package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * coeffs[i] with Horner's rule. The
// precision of x is used as reference precision for y. An empty coefficient
// vector evaluates to zero.
func MonomialEval(x *big.Float, coeffs []*big.Float) (y *big.Float) {
	y = new(big.Float).SetPrec(x.Prec())
	for i := len(coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, coeffs[i])
	}
	return
}

// TermwiseEval evaluates y = sum x^i * coeffs[i] by computing each power
// independently with Pow, as an evaluation of the same sum that shares no
// rounding behavior with MonomialEval. The term of degree zero is always
// coeffs[0], so x^0 is 1 even at x = 0. Pow requires a strictly positive
// base, so powers of a negative x are taken on |x| and the sign is restored
// on odd degrees.
func TermwiseEval(x *big.Float, coeffs []*big.Float) (y *big.Float) {
	prec := x.Prec()

	y = new(big.Float).SetPrec(prec)
	if len(coeffs) == 0 {
		return
	}

	y.Add(y, coeffs[0])
	if x.Sign() == 0 {
		return
	}

	neg := x.Sign() < 0
	ax := new(big.Float).SetPrec(prec).Abs(x)

	for i := 1; i < len(coeffs); i++ {
		xi := Pow(ax, NewFloat(i, prec))
		if neg && i&1 == 1 {
			xi.Neg(xi)
		}
		y.Add(y, xi.Mul(xi, coeffs[i]))
	}

	return
}
