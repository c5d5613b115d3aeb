package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Convert returns amount in currency from expressed in currency to, i.e.
// amount * factor(to) / factor(from). Converting a currency to itself is
// rejected with ErrInvalidSelection rather than returning amount.
func (t *Table) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.Decimal{}, fmt.Errorf("%w: %s to itself", ErrInvalidSelection, from)
	}
	f, ok := t.Lookup(from)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}
	g, ok := t.Lookup(to)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, to)
	}
	return amount.Mul(g.Factor).Div(f.Factor), nil
}

// ParseAmount parses a finite decimal amount. Surrounding space is ignored.
// Negative and zero amounts are accepted.
func ParseAmount(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}
	return d, nil
}

// ConvertString parses amount text and converts it. The amount is checked
// before the selection.
func (t *Table) ConvertString(text, from, to string) (Conversion, error) {
	amount, err := ParseAmount(text)
	if err != nil {
		return Conversion{}, err
	}
	r, err := t.Convert(amount, from, to)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{Amount: amount, From: from, To: to, Result: r}, nil
}

// Conversion is a completed conversion.
type Conversion struct {
	Amount decimal.Decimal
	From   string
	To     string
	Result decimal.Decimal
}

// String formats the conversion for the result display, with amounts to two
// decimal places.
func (c Conversion) String() string {
	return fmt.Sprintf("%s %s = %s %s", c.Amount.StringFixed(2), c.From, c.Result.StringFixed(2), c.To)
}

// HistoryText formats the conversion as a history entry.
func (c Conversion) HistoryText() string {
	return fmt.Sprintf("%s %s → %s %s", c.Amount.StringFixed(2), c.From, c.Result.StringFixed(2), c.To)
}
