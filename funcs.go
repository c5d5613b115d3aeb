package scicalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a real function that expressions can call by name.
type Func interface {
	// Call computes the function of args and stores the result in r, whose
	// prior value is meaningless. seps holds the indices of the arguments
	// written after a semicolon rather than a comma. len(args) is always a
	// count CanCall accepts, and Call may overwrite the elements of args.
	// Functions can reach variables through ctx but usually should not.
	Call(ctx *Context, args []*big.Float, seps []int, r *big.Float) error

	// CanCall reports whether the function takes n arguments. The parser
	// consults it to decide what follows a function name:
	//
	//	- A bracketed list of n expressions is an argument list when
	//	  CanCall(n). A single bracketed expression after a function that
	//	  only takes zero arguments is multiplied instead, as in pi(2).
	//	  Any other count is a CallError.
	//	- A bare operand is the lone argument when CanCall(1), so sin x is
	//	  sin(x). Otherwise the function is called with nothing and
	//	  multiplied by the operand.
	CanCall(n int) bool
}

// guardBits is the extra precision used for intermediate results of
// functions composed from several roundings.
const guardBits = 32

// expLimit bounds the magnitude of arguments passed to bigfloat.Exp. Anything
// beyond it overflows or underflows every useful precision.
var expLimit = big.NewFloat(1 << 20)

var globalfuncs = map[string]Func{
	"exp":  Monadic(exp),
	"ln":   restricted(positive, bigfloat.Log),
	"log":  logfn{},
	"sqrt": restricted(nonnegative, (*big.Float).Sqrt),
	"√":    restricted(nonnegative, (*big.Float).Sqrt),

	// trig, in radians, computed at double precision
	"sin":   Real(math.Sin),
	"cos":   Real(math.Cos),
	"tan":   Real(math.Tan),
	"asin":  Real(math.Asin),
	"acos":  Real(math.Acos),
	"atan":  Real(math.Atan),
	"sinh":  Real(math.Sinh),
	"cosh":  Real(math.Cosh),
	"tanh":  Real(math.Tanh),
	"asinh": Real(math.Asinh),
	"acosh": Real(math.Acosh),
	"atanh": Real(math.Atanh),

	"pi": Niladic(bigfloat.Pi),
	"π":  Niladic(bigfloat.Pi),
	"e": Niladic(func(z *big.Float) *big.Float {
		return bigfloat.Exp(z, big.NewFloat(1))
	}),
}

func exp(out, in *big.Float) *big.Float {
	if new(big.Float).Abs(in).Cmp(expLimit) > 0 {
		// Far outside float64 range either way.
		if in.Signbit() {
			return out.SetInt64(0)
		}
		return out.SetInf(false)
	}
	return bigfloat.Exp(out, in)
}

func positive(x *big.Float) bool    { return x.Sign() > 0 }
func nonnegative(x *big.Float) bool { return x.Sign() >= 0 }

// unary adapts a big.Float function of one argument.
type unary struct {
	f func(z, x *big.Float) *big.Float
	// domain rejects arguments before f sees them. A nil domain leaves it to
	// f to panic with big.ErrNaN.
	domain func(x *big.Float) bool
}

func (u unary) Call(ctx *Context, args []*big.Float, _ []int, r *big.Float) (err error) {
	x := args[0]
	if x.IsInf() {
		return &RangeError{}
	}
	outside := func() error {
		return &DomainError{X: new(big.Float).Copy(x), Arg: 1}
	}
	if u.domain != nil && !u.domain(x) {
		return outside()
	}
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok && errors.As(e, new(big.ErrNaN)) {
				err = outside()
				return
			}
			panic(p)
		}
	}()
	r.Set(u.f(r.SetPrec(ctx.Prec()), x))
	return nil
}

func (unary) CanCall(n int) bool { return n == 1 }

// Monadic makes a Func of f, which returns f(x) at the precision of z,
// usually by storing it in z. For arguments outside its domain, f should
// panic with a big.ErrNaN or an error wrapping one; the call then fails with
// a DomainError.
func Monadic(f func(z, x *big.Float) *big.Float) Func {
	return unary{f: f}
}

// restricted is Monadic with an explicit domain check.
func restricted(domain func(*big.Float) bool, f func(z, x *big.Float) *big.Float) Func {
	return unary{f: f, domain: domain}
}

// constant adapts a function computing a constant to a given precision.
type constant func(z *big.Float) *big.Float

func (c constant) Call(ctx *Context, _ []*big.Float, _ []int, r *big.Float) error {
	r.Set(c(r.SetPrec(ctx.Prec())))
	return nil
}

func (constant) CanCall(n int) bool { return n == 0 }

// Niladic makes a Func taking no arguments from f, which returns its value at
// the precision of z and must not panic.
func Niladic(f func(z *big.Float) *big.Float) Func {
	return constant(f)
}

// float64fn adapts a float64 function of one argument.
type float64fn func(float64) float64

func (f float64fn) Call(ctx *Context, args []*big.Float, _ []int, r *big.Float) error {
	x, _ := args[0].Float64()
	y := f(x)
	if math.IsNaN(y) {
		return &DomainError{X: new(big.Float).Copy(args[0]), Arg: 1}
	}
	if math.IsInf(y, 0) && !math.IsInf(x, 0) {
		return &RangeError{}
	}
	r.SetPrec(ctx.Prec()).SetFloat64(y)
	return nil
}

func (float64fn) CanCall(n int) bool { return n == 1 }

// Real makes a Func from a float64 function. Arguments are rounded to float64,
// so results are no more precise than a double. A NaN result is a
// DomainError, and an infinite result from a finite argument is a RangeError.
func Real(f func(float64) float64) Func {
	return float64fn(f)
}

// logfn is the common logarithm log x, or log(x, b) to base b.
type logfn struct{}

func (logfn) Call(ctx *Context, args []*big.Float, _ []int, r *big.Float) error {
	for _, v := range args {
		if v.IsInf() {
			return &RangeError{}
		}
	}
	x := args[0]
	if !positive(x) {
		return &DomainError{X: new(big.Float).Copy(x), Arg: 1}
	}
	wp := ctx.Prec() + guardBits
	base := new(big.Float).SetPrec(wp).SetInt64(10)
	if len(args) == 2 {
		b := args[1]
		if !positive(b) || b.Cmp(big.NewFloat(1)) == 0 {
			return &DomainError{X: new(big.Float).Copy(b), Arg: 2}
		}
		base.Set(b)
	}
	lx := bigfloat.Log(new(big.Float).SetPrec(wp), new(big.Float).SetPrec(wp).Set(x))
	lb := bigfloat.Log(new(big.Float).SetPrec(wp), base)
	r.SetPrec(ctx.Prec()).Quo(lx, lb)
	return nil
}

func (logfn) CanCall(n int) bool { return n == 1 || n == 2 }
