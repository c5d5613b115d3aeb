package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/deskutils/scicalc/currency"
	"github.com/deskutils/scicalc/history"
)

func TestSelectionSwap(t *testing.T) {
	s := currency.Selection{From: "INR", To: "USD"}
	assert.Equal(t, currency.Selection{From: "USD", To: "INR"}, s.Swap())
	assert.Equal(t, s, s.Swap().Swap())
}

func TestNewConverter(t *testing.T) {
	_, err := currency.NewConverter(currency.Default, currency.Selection{From: "INR", To: "XYZ"})
	assert.ErrorIs(t, err, currency.ErrUnknownCurrency)

	c, err := currency.NewConverter(currency.Default, currency.Selection{From: "INR", To: "INR"})
	require.NoError(t, err)
	_, err = c.Convert("5")
	assert.ErrorIs(t, err, currency.ErrInvalidSelection)
	assert.Zero(t, c.History().Len())
}

func TestConverter(t *testing.T) {
	c, err := currency.NewConverter(currency.Default, currency.Selection{From: "INR", To: "USD"})
	require.NoError(t, err)
	assert.Same(t, currency.Default, c.Table())

	r, err := c.Convert("100")
	require.NoError(t, err)
	assert.Equal(t, "100.00 INR = 1.20 USD", r.String())

	assert.Equal(t, currency.Selection{From: "USD", To: "INR"}, c.Swap())
	r, err = c.Convert("1.20")
	require.NoError(t, err)
	assert.Equal(t, "1.20 USD = 100.00 INR", r.String())

	_, err = c.Convert("twelve")
	assert.ErrorIs(t, err, currency.ErrInvalidInput)

	assert.Equal(t, []history.Entry{
		{Seq: 1, Text: "100.00 INR → 1.20 USD"},
		{Seq: 2, Text: "1.20 USD → 100.00 INR"},
	}, c.History().Entries())
}

func TestConverterSelect(t *testing.T) {
	c, err := currency.NewConverter(currency.Default, currency.Selection{From: "INR", To: "USD"})
	require.NoError(t, err)
	require.NoError(t, c.Select(currency.Selection{From: "EUR", To: "GBP"}))
	assert.Equal(t, currency.Selection{From: "EUR", To: "GBP"}, c.Selection())

	err = c.Select(currency.Selection{From: "EUR", To: "???"})
	assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
	assert.Equal(t, currency.Selection{From: "EUR", To: "GBP"}, c.Selection())
}

func TestConverterOptions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var h history.Log
	c, err := currency.NewConverter(currency.Default, currency.Selection{From: "INR", To: "USD"},
		currency.WithLogger(zap.New(core)),
		currency.WithHistory(&h),
	)
	require.NoError(t, err)
	_, err = c.Convert("10")
	require.NoError(t, err)
	_, err = c.Convert("x")
	require.Error(t, err)

	assert.Equal(t, 1, h.Len())
	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "converted", entries[0].Message)
	assert.Equal(t, "0.12", entries[0].ContextMap()["result"])
	assert.Equal(t, "conversion failed", entries[1].Message)
}
