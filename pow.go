package scicalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// pow sets z to x^y, rounded to z's precision. z may alias x.
//
// Integer exponents use repeated squaring, so 2^10 is exact and negative
// bases are allowed. Any other exponent needs a nonnegative base.
func pow(z, x, y *big.Float) error {
	if x.IsInf() || y.IsInf() {
		return &RangeError{Func: "^"}
	}
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
		return nil
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return &DivideByZeroError{Op: "^"}
		}
		z.SetInt64(0)
		return nil
	case x.Signbit() && !y.IsInt():
		return &DomainError{X: new(big.Float).Copy(x), Arg: 1, Func: "^"}
	case saturate(z, x, y):
		return nil
	}
	if !y.IsInt() {
		z.Set(realPow(z.Prec(), x, y))
		return nil
	}
	n, _ := y.Int(nil)
	neg := x.Signbit() && n.Bit(0) == 1
	base := new(big.Float).Abs(x)
	if n.IsInt64() {
		powInt(z, base, n.Int64())
	} else {
		z.Set(realPow(z.Prec(), base, y))
	}
	if neg {
		z.Neg(z)
	}
	return nil
}

// realPow returns x^y for x >= 0 at prec bits. bigfloat.Pow leaves its
// result only in the return value, and it changes the precision of its
// output argument, so that argument is always a fresh value.
func realPow(prec uint, x, y *big.Float) *big.Float {
	return bigfloat.Pow(new(big.Float).SetPrec(prec), x, y)
}

// saturate sets z to +Inf or 0 and returns true when |x|^y is certainly
// outside float64 range. Otherwise z is unchanged.
func saturate(z, x, y *big.Float) bool {
	var mant big.Float
	e := x.MantExp(&mant)
	m, _ := mant.Float64()
	lg := float64(e) + math.Log2(math.Abs(m))
	yf, _ := y.Float64()
	b := lg * yf
	switch {
	case lg == 0, math.Abs(b) <= 1<<20:
		return false
	case b > 0:
		z.SetInf(false)
	default:
		z.SetInt64(0)
	}
	return true
}

// powInt sets z to x^n, carrying guard bits through the intermediate
// products.
func powInt(z, x *big.Float, n int64) {
	wp := z.Prec() + guardBits
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	acc := new(big.Float).SetPrec(wp).SetInt64(1)
	sq := new(big.Float).SetPrec(wp).Set(x)
	for ; u > 0; u >>= 1 {
		if u&1 == 1 {
			acc.Mul(acc, sq)
		}
		if u > 1 {
			sq.Mul(sq, sq)
		}
	}
	if n < 0 {
		acc.Quo(new(big.Float).SetPrec(wp).SetInt64(1), acc)
	}
	z.Set(acc)
}
