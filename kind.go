package scicalc

import (
	"errors"
	"math/big"
)

// ErrorKind is a broad category of evaluation failure.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindSyntax covers every InputError: malformed numbers, operators,
	// brackets, separators, and calls with the wrong number of arguments.
	KindSyntax
	// KindName is an identifier with no value.
	KindName
	// KindDomain is an argument outside a function's domain.
	KindDomain
	// KindDivideByZero is division by zero.
	KindDivideByZero
	// KindRange is a result too large to represent.
	KindRange
	// KindUnknown is any other error.
	KindUnknown
)

var kindnames = [...]string{
	KindNone:         "none",
	KindSyntax:       "syntax",
	KindName:         "name",
	KindDomain:       "domain",
	KindDivideByZero: "divide by zero",
	KindRange:        "range",
	KindUnknown:      "unknown",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "ErrorKind(?)"
	}
	return kindnames[k]
}

// KindOf classifies an error returned from parsing or evaluation.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var (
		input InputError
		name  *NameError
		div   *DivideByZeroError
		rng   *RangeError
		nan   big.ErrNaN
	)
	switch {
	case errors.As(err, &input):
		return KindSyntax
	case errors.As(err, &name):
		return KindName
	case errors.As(err, &div):
		return KindDivideByZero
	case errors.As(err, &rng):
		return KindRange
	case errors.As(err, &nan):
		// DomainError unwraps to this as well.
		return KindDomain
	default:
		return KindUnknown
	}
}
