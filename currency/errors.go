package currency

import "errors"

// ErrInvalidInput indicates an amount that is not a finite number.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidSelection indicates a conversion from a currency to itself.
var ErrInvalidSelection = errors.New("invalid selection")

// ErrUnknownCurrency indicates a code that is not in the rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrInvalidTable indicates a rate table that cannot be used for conversion.
var ErrInvalidTable = errors.New("invalid rate table")
