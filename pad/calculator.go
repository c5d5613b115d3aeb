package pad

import (
	"go.uber.org/zap"

	"github.com/deskutils/scicalc"
	"github.com/deskutils/scicalc/history"
	"github.com/deskutils/scicalc/internal/logger"
)

// DefaultErrorText is shown in place of a result when evaluation fails.
const DefaultErrorText = "Error"

// AnsVar is the variable holding the last successful result.
const AnsVar = "ans"

// Calculator drives a State with an evaluation context and records each
// successful evaluation to a history log. It is not safe for concurrent use.
type Calculator struct {
	state   State
	ctx     *scicalc.Context
	history *history.Log
	log     *zap.Logger
	errText string
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPrecision sets the working precision in bits.
func WithPrecision(bits uint) Option {
	return func(c *Calculator) {
		c.ctx = c.ctx.Clone(scicalc.Prec(bits))
	}
}

// WithErrorText sets the text shown when evaluation fails.
func WithErrorText(text string) Option {
	return func(c *Calculator) {
		c.errText = text
	}
}

// WithHistory records evaluations to h instead of a private log.
func WithHistory(h *history.Log) Option {
	return func(c *Calculator) {
		c.history = h
	}
}

// WithLogger sets the logger for evaluation outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		c.log = logger.OrNop(l)
	}
}

// New creates a calculator with an empty expression.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		ctx:     scicalc.NewContext(),
		history: new(history.Log),
		log:     zap.NewNop(),
		errText: DefaultErrorText,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Calculator) State() State {
	return c.state
}

// History returns the log of successful evaluations.
func (c *Calculator) History() *history.Log {
	return c.history
}

// Append adds a token to the expression.
func (c *Calculator) Append(token string) State {
	c.state = c.state.Append(token)
	return c.state
}

// Backspace removes the last character of the expression.
func (c *Calculator) Backspace() State {
	c.state = c.state.Backspace()
	return c.state
}

// Clear empties the expression.
func (c *Calculator) Clear() State {
	c.state = c.state.Clear()
	return c.state
}

// Evaluate computes the expression. On success, the result text becomes the
// new expression so that further input continues from it, the result is bound
// to ans, and "<input> = <result>" is recorded. On failure, the display shows
// the error text, the expression is emptied, nothing is recorded, and the
// typed error is kept in the state.
func (c *Calculator) Evaluate() State {
	input := c.state.Expr
	r, err := c.ctx.Calculate(input)
	if err != nil {
		c.log.Debug("evaluation failed",
			zap.String("input", input),
			zap.Stringer("kind", scicalc.KindOf(err)),
			zap.Error(err),
		)
		c.state = State{Mode: Evaluated, Display: c.errText, Err: err}
		return c.state
	}
	text := scicalc.FormatResult(r)
	c.ctx.Set(AnsVar, r)
	e := c.history.Append(input + " = " + text)
	c.log.Debug("evaluated",
		zap.String("input", input),
		zap.String("result", text),
		zap.Int("seq", e.Seq),
	)
	c.state = State{Expr: text, Mode: Evaluated, Display: text}
	return c.state
}
