package scicalc

import (
	"math/big"
	"strconv"
)

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Arg is the 1-based index of the argument.
	Arg int
	// Func names the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := "argument outside domain"
	if err.X != nil {
		r = err.X.Text('g', 10) + " outside domain"
	}
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}

// NameError is an error from evaluating a variable the context does not
// define.
type NameError struct {
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// DivideByZeroError is an error from dividing by zero, including raising zero
// to a negative power.
type DivideByZeroError struct {
	// Op is the operator that divided.
	Op string
}

func (err *DivideByZeroError) Error() string {
	if err.Op == "^" {
		return "zero raised to a negative power"
	}
	return "division by zero"
}

// RangeError is an error for results that do not fit in a float64.
type RangeError struct {
	// Func is the function whose result overflowed, if any.
	Func string
}

func (err *RangeError) Error() string {
	if err.Func != "" {
		return "result of " + err.Func + " out of range"
	}
	return "result out of range"
}
