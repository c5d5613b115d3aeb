// Package currency converts amounts between currencies using a fixed table of
// rates relative to a common base.
package currency

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Currency is one row of a rate table.
type Currency struct {
	Code string `validate:"len=3,alpha,uppercase"`
	Name string `validate:"required"`
	// Factor is the amount of this currency equal to one unit of the base.
	Factor decimal.Decimal
}

// Table is an ordered, immutable set of currencies sharing a base.
type Table struct {
	currencies []Currency
	index      map[string]int
}

var validate = validator.New()

// NewTable builds a table from currencies in display order. Every code must be
// three upper-case letters and unique, every name non-empty, and every factor
// positive.
func NewTable(currencies ...Currency) (*Table, error) {
	if len(currencies) == 0 {
		return nil, fmt.Errorf("%w: no currencies", ErrInvalidTable)
	}
	t := &Table{
		currencies: append([]Currency(nil), currencies...),
		index:      make(map[string]int, len(currencies)),
	}
	for i, c := range t.currencies {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%w: currency %d (%q): %v", ErrInvalidTable, i+1, c.Code, err)
		}
		if !c.Factor.IsPositive() {
			return nil, fmt.Errorf("%w: %s factor %s is not positive", ErrInvalidTable, c.Code, c.Factor)
		}
		if _, dup := t.index[c.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %s", ErrInvalidTable, c.Code)
		}
		t.index[c.Code] = i
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(currencies ...Currency) *Table {
	t, err := NewTable(currencies...)
	if err != nil {
		panic(err)
	}
	return t
}

// Default is the built-in table, with rates relative to the Indian rupee.
var Default = MustTable(
	Currency{Code: "INR", Name: "Indian Rupee", Factor: decimal.RequireFromString("1.0")},
	Currency{Code: "USD", Name: "US Dollar", Factor: decimal.RequireFromString("0.012")},
	Currency{Code: "EUR", Name: "Euro", Factor: decimal.RequireFromString("0.011")},
	Currency{Code: "GBP", Name: "British Pound", Factor: decimal.RequireFromString("0.0095")},
	Currency{Code: "JPY", Name: "Japanese Yen", Factor: decimal.RequireFromString("1.78")},
	Currency{Code: "CAD", Name: "Canadian Dollar", Factor: decimal.RequireFromString("0.016")},
)

// Currencies returns the table's rows in order.
func (t *Table) Currencies() []Currency {
	return append([]Currency(nil), t.currencies...)
}

// Codes returns the currency codes in order.
func (t *Table) Codes() []string {
	codes := make([]string, len(t.currencies))
	for i, c := range t.currencies {
		codes[i] = c.Code
	}
	return codes
}

// Lookup returns the currency with the given code.
func (t *Table) Lookup(code string) (Currency, bool) {
	i, ok := t.index[code]
	if !ok {
		return Currency{}, false
	}
	return t.currencies[i], true
}

// labelSep separates the code and name in a selector label.
const labelSep = " - "

// Label returns the selector text for a code, e.g. "INR - Indian Rupee".
func (t *Table) Label(code string) (string, error) {
	c, ok := t.Lookup(code)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c.Code + labelSep + c.Name, nil
}

// Labels returns the selector text of every currency in order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.currencies))
	for i, c := range t.currencies {
		labels[i] = c.Code + labelSep + c.Name
	}
	return labels
}

// ParseLabel extracts the code from selector text or a bare code. Codes are
// upper case, as configuration values are.
func ParseLabel(label string) string {
	code, _, _ := strings.Cut(strings.TrimSpace(label), labelSep)
	return strings.ToUpper(strings.TrimSpace(code))
}
