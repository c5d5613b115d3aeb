package scicalc

import (
	"strconv"
	"strings"
)

// InputError is an error with position information. Every error resulting from
// malformed input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)

// at prefixes an error message with a column.
func at(col int, msg ...string) string {
	return "column " + strconv.Itoa(col) + ": " + strings.Join(msg, "")
}

// LexError is a run of input that is not a token.
type LexError struct {
	// Text is the token being scanned, up to and including the rune that made
	// it invalid.
	Text string
	// Kind is "number" if the token was a number, otherwise empty.
	Kind string
	// Col is the column of the rune that made the token invalid.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return at(err.Col, "invalid token ", strconv.Quote(err.Text))
	}
	return at(err.Col, "invalid ", err.Kind, " ", strconv.Quote(err.Text))
}

func (err *LexError) Pos() int { return err.Col }

// OperatorError is an operator where it cannot go, such as a leading *.
type OperatorError struct {
	Col      int
	Operator string
	// Unary is whether an operand was expected, so the operator had to be
	// unary.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return at(err.Col, strconv.Quote(err.Operator), " is not a unary operator")
	}
	return at(err.Col, strconv.Quote(err.Operator), " is not a binary operator")
}

func (err *OperatorError) Pos() int { return err.Col }

// BracketError is an unbalanced or mismatched bracket. Left is empty for a
// close bracket with no open bracket, and Right is empty for an open bracket
// that the input never closes.
type BracketError struct {
	Col   int
	Left  string
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "" && err.Right == "":
		return at(err.Col, "unbalanced brackets")
	case err.Left == "":
		return at(err.Col, "close bracket ", strconv.Quote(err.Right), " has no open bracket")
	case err.Right == "":
		return at(err.Col, "open bracket ", strconv.Quote(err.Left), " is never closed")
	default:
		return at(err.Col, "open bracket ", strconv.Quote(err.Left), " closed by ", strconv.Quote(err.Right))
	}
}

func (err *BracketError) Pos() int { return err.Col }

// SeparatorError is a comma or semicolon outside an argument list, or with no
// argument before it.
type SeparatorError struct {
	Col int
	Sep string
}

func (err *SeparatorError) Error() string {
	return at(err.Col, "unexpected separator ", strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int { return err.Col }

// CallError is a function call with a number of arguments the function does
// not take.
type CallError struct {
	// Col is the column of the token that decided the argument count.
	Col  int
	Func string
	Len  int
}

func (err *CallError) Error() string {
	args := " arguments"
	if err.Len == 1 {
		args = " argument"
	}
	return at(err.Col, "cannot call ", err.Func, " with ", strconv.Itoa(err.Len), args)
}

func (err *CallError) Pos() int { return err.Col }

// EmptyExpressionError is a missing operand, as in "()" or "2+".
type EmptyExpressionError struct {
	// Col is the column of the token that came instead.
	Col int
	// End is that token, or empty at the end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	switch {
	case err.End != "":
		return at(err.Col, "no expression before ", strconv.Quote(err.End))
	case err.Col <= 1:
		return at(err.Col, "no expression")
	default:
		return at(err.Col, "no expression before end of input")
	}
}

func (err *EmptyExpressionError) Pos() int { return err.Col }
