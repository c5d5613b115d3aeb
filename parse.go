package scicalc

import (
	"io"
	"slices"
	"strings"
)

// Grammar, loosest binding first:
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary | unary }   juxtaposition multiplies
//	unary   = ("+" | "-") unary | power
//	power   = atom [ "^" unary ]                     right associative
//	atom    = number | name | call | "(" sum ")"
//	call    = func [ "^" unary ] ( args | atom )
//	args    = "(" [ sum { ("," | ";") sum } ] ")"
//
// Any bracket pair may stand in for parentheses. A function taking no
// arguments followed by a bracketed term, as in e(2), multiplies.

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	n *node
	// names lists the variables the expression uses, sorted.
	names []string
}

// Parse parses one expression from src. Options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	var cfg syntax
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.fillDefaults()
	p := parser{
		sc:     newScanner(src),
		syntax: cfg,
		names:  make(map[string]bool),
	}
	return p.parse()
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return slices.Clone(e.names)
}

// String formats the parsed expression with every term grouped, alternating
// round and square brackets by depth.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.format(&b, false, true)
	return b.String()
}

type parser struct {
	sc *scanner
	syntax
	// names is the set of variables seen so far.
	names map[string]bool
	// pending is the term from a one-argument bracket list after a function
	// name. If the function takes no arguments, the term is multiplied
	// instead, so e(2) is e*2.
	pending *node
}

func (p *parser) parse() (*Expr, error) {
	n, err := p.term(exprprec)
	if err != nil {
		return nil, err
	}
	end := p.sc.take()
	if n == nil {
		// term only comes back empty without error at a close bracket or a
		// separator that ends expressions.
		if end.kind == tokSep {
			return nil, &EmptyExpressionError{Col: end.col, End: end.text}
		}
		return nil, unexpectedEnd(end, "")
	}
	switch {
	case end.kind == tokEnd:
	case end.kind == tokSep && p.stopsAt(end.text):
	default:
		return nil, unexpectedEnd(end, "")
	}
	ex := Expr{n: n, names: make([]string, 0, len(p.names))}
	for name := range p.names {
		ex.names = append(ex.names, name)
	}
	slices.Sort(ex.names)
	return &ex, nil
}

// term parses a term whose operators all bind tighter than until. Unless
// there is an error, the token that ended the term is held in the scanner,
// even if it is the end of input. An empty term gives nil and no error;
// callers decide whether that is allowed.
func (p *parser) term(until operator) (*node, error) {
	n, err := p.operand(until)
	if err != nil || n == nil {
		return nil, err
	}
	for {
		if p.pending != nil {
			// A niladic function took a bracketed term. Multiply it here, or
			// leave it for an outer term if multiplication binds too loosely.
			if !termprec.bindsTighter(until) {
				return n, nil
			}
			n = &node{kind: nodeMul, left: n, right: p.pending}
			p.pending = nil
		}
		tok, err := p.sc.next(p.stop)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokNum, tokName:
			// 2 x, x^2 y, and so on multiply.
			p.sc.unread(tok)
			if !termprec.bindsTighter(until) {
				return n, nil
			}
			rhs, err := p.term(termprec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, left: n, right: rhs}
		case tokOp:
			op := binaryOps[tok.op]
			if op.kind == nodeNone {
				return nil, &OperatorError{Col: tok.col, Operator: tok.text}
			}
			if !op.bindsTighter(until) {
				p.sc.unread(tok)
				return n, nil
			}
			rhs, err := p.term(op)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := p.sc.take()
				return nil, &EmptyExpressionError{Col: end.col, End: end.text}
			}
			n = &node{kind: op.kind, left: n, right: rhs}
		case tokOpen:
			// Functions already took any bracket list meant for them, so
			// this is 2 (x).
			if !termprec.bindsTighter(until) {
				p.sc.unread(tok)
				return n, nil
			}
			rhs, err := p.group(tok)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, left: n, right: rhs}
		case tokClose, tokSep, tokEnd:
			p.sc.unread(tok)
			return n, nil
		default:
			panic("scicalc: unknown token: " + tok.String())
		}
	}
}

// operand parses the start of a term: a number, a name, a call, a unary
// operator and its operand, or a bracketed group. Whitespace never ends the
// expression here.
func (p *parser) operand(until operator) (*node, error) {
	tok, err := p.sc.next("")
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokNum:
		return &node{kind: nodeNum, name: tok.text}, nil
	case tokName:
		fn := p.funcs[tok.text]
		if fn == nil {
			p.names[tok.text] = true
			return &node{kind: nodeName, name: tok.text}, nil
		}
		return p.call(tok.text, fn, until)
	case tokOp:
		op := unaryOps[tok.op]
		if op.kind == nodeNone {
			return nil, &OperatorError{Col: tok.col, Operator: tok.text, Unary: true}
		}
		if !op.bindsTighter(until) {
			// x^-y is x^(-y): take the surrounding precedence.
			op.prec, op.right = until.prec, until.right
		}
		rhs, err := p.term(op)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := p.sc.take()
			return nil, &EmptyExpressionError{Col: end.col, End: end.text}
		}
		return &node{kind: op.kind, left: rhs}, nil
	case tokOpen:
		return p.group(tok)
	case tokClose:
		// Possibly the end of f(); the caller decides.
		p.sc.unread(tok)
		return nil, nil
	case tokSep:
		if p.stopsAt(tok.text) {
			p.sc.unread(tok)
			return nil, nil
		}
		return nil, &SeparatorError{Col: tok.col, Sep: tok.text}
	case tokEnd:
		return nil, &EmptyExpressionError{Col: tok.col}
	default:
		panic("scicalc: unknown token: " + tok.String())
	}
}

// group parses a bracketed subexpression after its open bracket.
func (p *parser) group(open token) (*node, error) {
	n, err := p.term(exprprec)
	if err != nil {
		return nil, err
	}
	end := p.sc.take()
	if end.kind != tokClose || end.text != closer(open.text) {
		return nil, unexpectedEnd(end, open.text)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: end.col, End: end.text}
	}
	return n, nil
}

// call parses a call to fn after its name.
func (p *parser) call(name string, fn Func, until operator) (*node, error) {
	args, power, err := p.callArgs(name, fn, until)
	if err != nil {
		return nil, err
	}
	n := &node{kind: nodeCall, name: name, fn: fn, right: args}
	if power == nil {
		return n, nil
	}
	power.left = n
	return power, nil
}

// callArgs parses what follows a function name. The first result is the
// argument list. If the second is not nil, the call is raised to it, as in
// cos^2 x, and the caller fills in its left side.
func (p *parser) callArgs(name string, fn Func, until operator) (args, power *node, err error) {
	// Respect stop whitespace so that pi at the end of a line does not take
	// the next line as an operand.
	tok, err := p.sc.next(p.stop)
	if err != nil {
		return nil, nil, err
	}
	switch tok.kind {
	case tokOp:
		if binaryOps[tok.op].bindsTighter(powprec) {
			return p.raisedCall(tok, name, fn, until)
		}
		// Any other operator starts an operand, like a number would.
		fallthrough
	case tokNum, tokName:
		switch {
		case fn.CanCall(1):
			// sin x is sin(x).
			p.sc.unread(tok)
			if termprec.bindsTighter(until) {
				until = termprec
			}
			arg, err := p.term(until)
			if err != nil {
				return nil, nil, err
			}
			if arg == nil {
				end := p.sc.take()
				return nil, nil, &EmptyExpressionError{Col: end.col, End: end.text}
			}
			return &node{kind: nodeArg, left: arg}, nil, nil
		case fn.CanCall(0):
			// pi x is pi*x.
			p.sc.unread(tok)
			return nil, nil, nil
		default:
			return nil, nil, &CallError{Col: tok.col, Func: name, Len: 1}
		}
	case tokOpen:
		list, n, err := p.argList(tok.text)
		if err != nil {
			return nil, nil, err
		}
		end := p.sc.take()
		if end.kind != tokClose {
			panic("scicalc: argument list ended on " + end.String())
		}
		if end.text != closer(tok.text) {
			return nil, nil, &BracketError{Col: end.col, Left: tok.text, Right: end.text}
		}
		if !fn.CanCall(n) {
			if p.pending != nil && fn.CanCall(0) {
				return nil, nil, nil
			}
			p.pending = nil
			return nil, nil, &CallError{Col: tok.col, Func: name, Len: n}
		}
		p.pending = nil
		return list, nil, nil
	case tokClose, tokSep, tokEnd:
		if !fn.CanCall(0) {
			return nil, nil, &CallError{Col: tok.col, Func: name}
		}
		p.sc.unread(tok)
		return nil, nil, nil
	default:
		panic("scicalc: unknown token: " + tok.String())
	}
}

// raisedCall parses f^y args after the ^. f^x^y(z) is [f(z)]^(x^y).
func (p *parser) raisedCall(op token, name string, fn Func, until operator) (args, power *node, err error) {
	up, err := p.term(powprec)
	if err != nil {
		return nil, nil, err
	}
	if up == nil {
		end := p.sc.take()
		return nil, nil, &EmptyExpressionError{Col: end.col, End: end.text}
	}
	power = &node{kind: nodePow, right: up}
	if p.pending != nil {
		// The exponent ended in a niladic function with a bracketed term, as
		// in f^pi(x). The term is f's argument if f takes one.
		switch {
		case fn.CanCall(1):
			args = &node{kind: nodeArg, left: p.pending}
			p.pending = nil
			return args, power, nil
		case fn.CanCall(0):
			return nil, power, nil
		default:
			p.pending = nil
			return nil, nil, &CallError{Col: op.col, Func: name, Len: 1}
		}
	}
	args, again, err := p.callArgs(name, fn, until)
	if err != nil {
		return nil, nil, err
	}
	if again != nil {
		// The exponent was parsed right associative at the tightest
		// precedence, so it took every ^ already.
		panic("scicalc: parsed second call exponent: " + again.String())
	}
	return args, power, nil
}

// argList parses a bracket list of zero or more arguments after its open
// bracket, leaving the close bracket held.
func (p *parser) argList(open string) (*node, int, error) {
	var head node
	last := &head
	n := 0
	sep := ""
	for {
		arg, err := p.term(exprprec)
		if err != nil {
			// A missing close bracket says more than a missing expression.
			if ee, _ := err.(*EmptyExpressionError); ee != nil && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: open}
			}
			return nil, 0, err
		}
		end := p.sc.take()
		switch end.kind {
		case tokClose:
			p.sc.unread(end)
			if arg == nil {
				// f() is fine, f(a,) is not.
				if n != 0 {
					return nil, 0, &EmptyExpressionError{Col: end.col, End: end.text}
				}
				return nil, 0, nil
			}
			last.right = &node{kind: nodeArg, name: sep, left: arg}
			if n == 0 {
				p.pending = arg
			}
			return head.right, n + 1, nil
		case tokSep:
			if arg == nil {
				return nil, 0, &SeparatorError{Col: end.col, Sep: end.text}
			}
			n++
			last.right = &node{kind: nodeArg, name: sep, left: arg}
			last = last.right
			sep = end.text
		case tokEnd:
			return nil, 0, &BracketError{Col: end.col, Left: open}
		default:
			panic("scicalc: argument list ended on " + end.String())
		}
	}
}

// unexpectedEnd describes a token that ended a subexpression where it should
// not have. open is the bracket the subexpression began with, if any.
func unexpectedEnd(tok token, open string) error {
	switch tok.kind {
	case tokEnd:
		return &BracketError{Col: tok.col, Left: open}
	case tokClose:
		return &BracketError{Col: tok.col, Left: open, Right: tok.text}
	case tokSep:
		return &SeparatorError{Col: tok.col, Sep: tok.text}
	default:
		panic("scicalc: subexpression ended on " + tok.String())
	}
}

type operator struct {
	// prec is the precedence. Higher binds tighter.
	prec  int8
	right bool
	kind  nodeKind
}

// bindsTighter reports whether an o to the right of than takes the operand
// between them.
func (o operator) bindsTighter(than operator) bool {
	if o.prec != than.prec {
		return o.prec > than.prec
	}
	return o.right
}

// binaryOps and unaryOps are keyed by canonical operator spelling.
var (
	binaryOps = map[string]operator{
		"+": {1, false, nodeAdd},
		"-": {1, false, nodeSub},
		"*": {5, false, nodeMul},
		"/": {5, false, nodeDiv},
		"^": {15, true, nodePow},
	}
	unaryOps = map[string]operator{
		"+": {10, true, nodeNop},
		"-": {10, true, nodeNeg},
	}
)

var (
	// termprec is the precedence of implicit multiplication, the same as *.
	termprec = operator{5, true, nodeMul}
	powprec  = binaryOps["^"]
	// exprprec parses a whole subexpression.
	exprprec = operator{-128, true, nodeNone}
)
