package scicalc

import (
	"math/big"
	"strconv"
	"strings"
)

// DoublePrec is the default precision of a Context, matching the significand
// of an IEEE 754 double.
const DoublePrec = 53

// Context holds the variables and working precision for evaluating
// expressions, along with scratch space reused between evaluations. A Context
// is not safe for concurrent use.
type Context struct {
	prec uint
	vars map[string]*big.Float
	// lits caches number literals parsed at prec.
	lits  map[string]*big.Float
	stack []*big.Float
	err   error
}

// ContextOption configures a new Context.
type ContextOption func(*ctxConfig)

type ctxConfig struct {
	prec uint
	vars map[string]*big.Float
}

func (c *ctxConfig) set(name string, val *big.Float) {
	if c.vars == nil {
		c.vars = make(map[string]*big.Float)
	}
	c.vars[name] = val
}

// SetVar sets the value of a variable.
func SetVar(name string, val *big.Float) ContextOption {
	return func(c *ctxConfig) {
		c.set(name, val)
	}
}

// SetVars sets the values of any number of variables.
func SetVars(vars map[string]*big.Float) ContextOption {
	return func(c *ctxConfig) {
		for name, val := range vars {
			c.set(name, val)
		}
	}
}

// Prec sets the precision of calculations in bits. Variables from other
// options are rounded to it regardless of order.
func Prec(bits uint) ContextOption {
	return func(c *ctxConfig) {
		c.prec = bits
	}
}

// NewContext creates an evaluation context. The precision is DoublePrec unless
// an option sets it.
func NewContext(opts ...ContextOption) *Context {
	return (&Context{prec: DoublePrec}).Clone(opts...)
}

// Clone creates a copy of ctx with options applied. The copy has no result
// and its variables are independent of ctx's.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	cfg := ctxConfig{prec: ctx.prec}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	n := &Context{
		prec:  cfg.prec,
		vars:  make(map[string]*big.Float, len(ctx.vars)+len(cfg.vars)),
		lits:  make(map[string]*big.Float, len(ctx.lits)),
		stack: make([]*big.Float, 0, cap(ctx.stack)),
	}
	// Literals were rounded to ctx.prec, which is only enough for an equal
	// or lower precision.
	if n.prec <= ctx.prec {
		for text, v := range ctx.lits {
			n.lits[text] = new(big.Float).SetPrec(n.prec).Set(v)
		}
	}
	for name, v := range ctx.vars {
		if n.prec == ctx.prec {
			// Stored values are never modified in place.
			n.vars[name] = v
			continue
		}
		n.vars[name] = new(big.Float).SetPrec(n.prec).Set(v)
	}
	for name, v := range cfg.vars {
		n.vars[name] = new(big.Float).SetPrec(n.prec).Set(v)
	}
	return n
}

// Prec returns the precision in bits to which values are computed.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Set sets the value of a variable and returns ctx. Set panics if called
// during an evaluation, such as from a Func.
func (ctx *Context) Set(name string, value *big.Float) *Context {
	if len(ctx.stack) > 1 {
		panic("scicalc: Set during Eval")
	}
	if ctx.vars == nil {
		ctx.vars = make(map[string]*big.Float)
	}
	ctx.vars[name] = new(big.Float).SetPrec(ctx.prec).Set(value)
	return ctx
}

// Lookup returns a copy of a variable's value, or nil if it is not set.
func (ctx *Context) Lookup(name string) *big.Float {
	v := ctx.vars[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Result returns the result of the last evaluation, or nil if it failed.
// Result panics if nothing has been evaluated yet. The result belongs to the
// context until the next evaluation begins.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("scicalc: Result before Eval")
	case 1:
		return ctx.stack[0]
	default:
		panic("scicalc: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error from the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// push grows the stack by one settable value and returns it.
func (ctx *Context) push() *big.Float {
	k := len(ctx.stack)
	if k == cap(ctx.stack) {
		ctx.stack = append(ctx.stack, nil)
	} else {
		ctx.stack = ctx.stack[:k+1]
	}
	if ctx.stack[k] == nil {
		ctx.stack[k] = new(big.Float).SetPrec(ctx.prec)
	}
	return ctx.stack[k]
}

// pop removes the top of the stack and returns it. The value may be
// overwritten by the next push.
func (ctx *Context) pop() *big.Float {
	k := len(ctx.stack) - 1
	r := ctx.stack[k]
	ctx.stack = ctx.stack[:k]
	return r
}

func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// reset empties the stack after an evaluation fails partway.
func (ctx *Context) reset() {
	ctx.stack = ctx.stack[:0]
}

// literal returns the value of a number literal, parsing it once per
// context.
func (ctx *Context) literal(text string) *big.Float {
	if v := ctx.lits[text]; v != nil {
		return v
	}
	v, _, err := new(big.Float).SetPrec(ctx.prec).Parse(text, 10)
	switch {
	case err == nil:
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// big.Float offers nothing better to match on. Literals have no
		// sign, so this is +Inf.
		v = new(big.Float).SetInf(false)
	default:
		panic("scicalc: invalid number: " + text + " (" + err.Error() + ")")
	}
	ctx.lits[text] = v
	return v
}
