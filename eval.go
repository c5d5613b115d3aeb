package scicalc

import (
	"errors"
	"io"
	"math"
	"math/big"
	"strings"
)

// Eval evaluates e and returns the result. If evaluation fails, for example
// on a missing variable, a division by zero, or a function argument outside
// its domain, the result is nil and ctx.Err returns the error. Results must be
// finite and within the range of float64; anything else is a RangeError.
func (ctx *Context) Eval(e *Expr) (r *big.Float) {
	switch len(ctx.stack) {
	case 0:
	case 1:
		// The previous result now belongs to the caller.
		ctx.stack[0] = nil
		ctx.reset()
	default:
		panic("scicalc: Eval during Eval")
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		var nan big.ErrNaN
		if err, ok := p.(error); !ok || !errors.As(err, &nan) {
			panic(p)
		}
		// e.g. inf-inf from an operand that escaped the range checks
		ctx.reset()
		ctx.err = &DomainError{}
		r = nil
	}()
	err := e.n.eval(ctx)
	if err == nil {
		err = checkRange(ctx.top())
	}
	if ctx.err = err; err != nil {
		ctx.reset()
		return nil
	}
	return ctx.Result()
}

// Eval evaluates e in ctx. It is shorthand for ctx.Eval(e).
func (e *Expr) Eval(ctx *Context) *big.Float {
	return ctx.Eval(e)
}

// Calculate parses src with the default functions and evaluates it.
func (ctx *Context) Calculate(src string) (*big.Float, error) {
	e, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	return ctx.Eval(e), ctx.Err()
}

// Eval parses an expression from src with the default functions and
// evaluates it in a new context.
func Eval(src io.RuneScanner, opts ...ContextOption) (*big.Float, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	return ctx.Eval(e), ctx.Err()
}

// EvalString is like Eval but reads from a string.
func EvalString(src string, opts ...ContextOption) (*big.Float, error) {
	return Eval(strings.NewReader(src), opts...)
}

// checkRange requires x to be representable as a finite float64.
func checkRange(x *big.Float) error {
	if f, _ := x.Float64(); math.IsInf(f, 0) {
		return &RangeError{}
	}
	return nil
}

// eval pushes the value of n onto the stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		v := ctx.literal(n.name)
		if v.IsInf() {
			return &RangeError{}
		}
		ctx.push().Set(v)
	case nodeName:
		v := ctx.vars[n.name]
		if v == nil {
			return &NameError{Name: n.name}
		}
		ctx.push().Set(v)
	case nodeCall:
		return n.call(ctx)
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
	case nodeNop:
		return n.left.eval(ctx)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := n.right.eval(ctx); err != nil {
			return err
		}
		y := ctx.pop()
		x := ctx.top()
		return arith(n.kind, x, x, y)
	case nodeArg:
		panic("scicalc: eval on nodeArg")
	default:
		panic("scicalc: invalid AST node " + n.kind.String())
	}
	return nil
}

// arith sets z to x op y. z may alias x.
func arith(op nodeKind, z, x, y *big.Float) error {
	switch op {
	case nodeAdd:
		z.Add(x, y)
	case nodeSub:
		z.Sub(x, y)
	case nodeMul:
		z.Mul(x, y)
	case nodeDiv:
		if y.Sign() == 0 {
			return &DivideByZeroError{Op: "/"}
		}
		if x.IsInf() && y.IsInf() {
			return &DomainError{X: new(big.Float).Copy(y), Arg: 2, Func: "/"}
		}
		z.Quo(x, y)
	case nodePow:
		return pow(z, x, y)
	}
	return nil
}

// call evaluates the arguments of a function call in order and pushes the
// function's result in their place.
func (n *node) call(ctx *Context) error {
	r := ctx.push()
	k := len(ctx.stack)
	var semis []int
	for i, l := 0, n.right; l != nil; i, l = i+1, l.right {
		if err := l.left.eval(ctx); err != nil {
			return err
		}
		if l.name == ";" {
			semis = append(semis, i)
		}
	}
	args := ctx.stack[k:len(ctx.stack):len(ctx.stack)]
	if err := n.fn.Call(ctx, args, semis, r); err != nil {
		return blame(err, n.name)
	}
	ctx.stack = ctx.stack[:k]
	return nil
}

// blame names the function in errors from calling it, unless the function
// already named something.
func blame(err error, name string) error {
	var de *DomainError
	if errors.As(err, &de) && de.Func == "" {
		de.Func = name
	}
	var re *RangeError
	if errors.As(err, &re) && re.Func == "" {
		re.Func = name
	}
	return err
}
