package currency

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/deskutils/scicalc/history"
	"github.com/deskutils/scicalc/internal/logger"
)

// Selection is the pair of chosen currencies.
type Selection struct {
	From string
	To   string
}

// Swap exchanges the two currencies.
func (s Selection) Swap() Selection {
	return Selection{From: s.To, To: s.From}
}

// Converter holds the converter's selection and its history of completed
// conversions. It is not safe for concurrent use.
type Converter struct {
	table   *Table
	sel     Selection
	history *history.Log
	log     *zap.Logger
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithLogger sets the logger for conversion outcomes.
func WithLogger(l *zap.Logger) ConverterOption {
	return func(c *Converter) {
		c.log = logger.OrNop(l)
	}
}

// WithHistory records conversions to h instead of a private log.
func WithHistory(h *history.Log) ConverterOption {
	return func(c *Converter) {
		c.history = h
	}
}

// NewConverter creates a converter over table with an initial selection. Both
// codes must be in the table. They may be equal; converting is what fails.
func NewConverter(table *Table, sel Selection, opts ...ConverterOption) (*Converter, error) {
	c := &Converter{
		table:   table,
		history: new(history.Log),
		log:     zap.NewNop(),
	}
	if err := c.Select(sel); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Table returns the converter's rate table.
func (c *Converter) Table() *Table {
	return c.table
}

// Selection returns the current selection.
func (c *Converter) Selection() Selection {
	return c.sel
}

// Select changes the selection. Codes not in the table are rejected and leave
// the selection unchanged.
func (c *Converter) Select(sel Selection) error {
	for _, code := range []string{sel.From, sel.To} {
		if _, ok := c.table.Lookup(code); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
		}
	}
	c.sel = sel
	return nil
}

// Swap exchanges the selected currencies and returns the new selection.
func (c *Converter) Swap() Selection {
	c.sel = c.sel.Swap()
	return c.sel
}

// History returns the log of completed conversions.
func (c *Converter) History() *history.Log {
	return c.history
}

// Convert converts amount text with the current selection and records the
// result. On error nothing is recorded.
func (c *Converter) Convert(amount string) (Conversion, error) {
	r, err := c.table.ConvertString(amount, c.sel.From, c.sel.To)
	if err != nil {
		c.log.Debug("conversion failed",
			zap.String("amount", amount),
			zap.String("from", c.sel.From),
			zap.String("to", c.sel.To),
			zap.Error(err),
		)
		return Conversion{}, err
	}
	e := c.history.Append(r.HistoryText())
	c.log.Debug("converted",
		zap.String("from", r.From),
		zap.String("to", r.To),
		zap.Stringer("amount", r.Amount),
		zap.Stringer("result", r.Result),
		zap.Int("seq", e.Seq),
	)
	return r, nil
}
