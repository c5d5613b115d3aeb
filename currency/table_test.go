package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskutils/scicalc/currency"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDefaultTable(t *testing.T) {
	assert.Equal(t, []string{"INR", "USD", "EUR", "GBP", "JPY", "CAD"}, currency.Default.Codes())
	c, ok := currency.Default.Lookup("GBP")
	require.True(t, ok)
	assert.Equal(t, "British Pound", c.Name)
	assert.True(t, c.Factor.Equal(dec("0.0095")))
	_, ok = currency.Default.Lookup("XYZ")
	assert.False(t, ok)
}

func TestNewTableRejects(t *testing.T) {
	good := currency.Currency{Code: "AAA", Name: "A", Factor: dec("1")}
	cases := []struct {
		name string
		rows []currency.Currency
	}{
		{"empty", nil},
		{"zero factor", []currency.Currency{{Code: "AAA", Name: "A"}}},
		{"negative factor", []currency.Currency{{Code: "AAA", Name: "A", Factor: dec("-1")}}},
		{"lower case", []currency.Currency{{Code: "aaa", Name: "A", Factor: dec("1")}}},
		{"short code", []currency.Currency{{Code: "AA", Name: "A", Factor: dec("1")}}},
		{"digits", []currency.Currency{{Code: "A1A", Name: "A", Factor: dec("1")}}},
		{"no name", []currency.Currency{{Code: "AAA", Factor: dec("1")}}},
		{"duplicate", []currency.Currency{good, good}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := currency.NewTable(tc.rows...)
			assert.ErrorIs(t, err, currency.ErrInvalidTable)
		})
	}
	assert.Panics(t, func() { currency.MustTable() })
}

func TestTableIsCopied(t *testing.T) {
	rows := []currency.Currency{{Code: "AAA", Name: "A", Factor: dec("1")}}
	tab := currency.MustTable(rows...)
	rows[0].Name = "changed"
	got := tab.Currencies()
	assert.Equal(t, "A", got[0].Name)
	got[0].Name = "changed"
	assert.Equal(t, "A", tab.Currencies()[0].Name)
}

func TestLabels(t *testing.T) {
	l, err := currency.Default.Label("INR")
	require.NoError(t, err)
	assert.Equal(t, "INR - Indian Rupee", l)
	_, err = currency.Default.Label("ZZZ")
	assert.ErrorIs(t, err, currency.ErrUnknownCurrency)

	labels := currency.Default.Labels()
	require.Len(t, labels, 6)
	assert.Equal(t, "CAD - Canadian Dollar", labels[5])
	for i, l := range labels {
		assert.Equal(t, currency.Default.Codes()[i], currency.ParseLabel(l))
	}
	assert.Equal(t, "USD", currency.ParseLabel("USD"))
	assert.Equal(t, "USD", currency.ParseLabel("  USD - US Dollar "))
	assert.Equal(t, "USD", currency.ParseLabel("usd"))
	assert.Equal(t, "EUR", currency.ParseLabel(" eur - Euro"))
}
