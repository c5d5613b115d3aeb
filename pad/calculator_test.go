package pad_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/deskutils/scicalc"
	"github.com/deskutils/scicalc/history"
	"github.com/deskutils/scicalc/pad"
)

func typeIn(c *pad.Calculator, tokens ...string) {
	for _, tok := range tokens {
		c.Append(tok)
	}
}

func TestEvaluateSuccess(t *testing.T) {
	c := pad.New()
	typeIn(c, "2", "+", "2")
	s := c.Evaluate()
	assert.Equal(t, "4", s.Display)
	assert.Equal(t, "4", s.Expr)
	assert.Equal(t, pad.Evaluated, s.Mode)
	assert.NoError(t, s.Err)
	assert.Equal(t, []history.Entry{{Seq: 1, Text: "2+2 = 4"}}, c.History().Entries())
}

func TestEvaluateLargeRealPower(t *testing.T) {
	c := pad.New()
	typeIn(c, "2", "^", "1023.5")
	s := c.Evaluate()
	require.NoError(t, s.Err)
	got, err := strconv.ParseFloat(s.Display, 64)
	require.NoError(t, err)
	assert.InDelta(t, 1.2711610061536464e+308, got, 1e294)
	assert.Equal(t, "2^1023.5 = "+s.Display, c.History().Entries()[0].Text)

	typeIn(c, "×", "10")
	assert.ErrorAs(t, c.Evaluate().Err, new(*scicalc.RangeError))
}

func TestEvaluateFailures(t *testing.T) {
	cases := []struct {
		input string
		kind  scicalc.ErrorKind
	}{
		{"10÷0", scicalc.KindDivideByZero},
		{"√(-1)", scicalc.KindDomain},
		{"log(0)", scicalc.KindDomain},
		{"2++", scicalc.KindSyntax},
		{"(2", scicalc.KindSyntax},
		{"", scicalc.KindSyntax},
		{"foo", scicalc.KindName},
		{"eexp", scicalc.KindName},
		{"10^400", scicalc.KindRange},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			c := pad.New()
			c.Append(tc.input)
			s := c.Evaluate()
			assert.Equal(t, pad.DefaultErrorText, s.Display)
			assert.Equal(t, "", s.Expr)
			assert.Equal(t, pad.Evaluated, s.Mode)
			require.Error(t, s.Err)
			assert.Equal(t, tc.kind, scicalc.KindOf(s.Err))
			assert.Zero(t, c.History().Len())
		})
	}
}

func TestEvaluateErrorText(t *testing.T) {
	c := pad.New(pad.WithErrorText("E"))
	c.Append("1/0")
	assert.Equal(t, "E", c.Evaluate().Display)
}

func TestChaining(t *testing.T) {
	c := pad.New()
	typeIn(c, "2", "×", "3")
	c.Evaluate()
	s := c.Append("+1")
	assert.Equal(t, "6+1", s.Expr)
	assert.Equal(t, pad.Editing, s.Mode)
	c.Evaluate()
	assert.Equal(t, []history.Entry{
		{Seq: 1, Text: "2×3 = 6"},
		{Seq: 2, Text: "6+1 = 7"},
	}, c.History().Entries())
}

func TestChainingAfterErrorStartsFresh(t *testing.T) {
	c := pad.New()
	c.Append("1÷0")
	c.Evaluate()
	s := c.Append("5")
	assert.Equal(t, "5", s.Expr)
	assert.NoError(t, s.Err)
}

func TestChainingFractions(t *testing.T) {
	c := pad.New()
	c.Append("1/3")
	s := c.Evaluate()
	assert.Equal(t, "0.3333333333333333", s.Expr)
	c.Append("*3")
	assert.Equal(t, "1", c.Evaluate().Display)
}

func TestAns(t *testing.T) {
	c := pad.New()
	c.Append("ans")
	assert.Equal(t, scicalc.KindName, scicalc.KindOf(c.Evaluate().Err))
	c.Append("7*6")
	c.Evaluate()
	c.Clear()
	c.Append("ans+1")
	assert.Equal(t, "43", c.Evaluate().Display)
}

func TestSubstitutionHazard(t *testing.T) {
	// A constant next to function names containing the letter e must not
	// corrupt either token.
	c := pad.New()
	typeIn(c, "e", "×", "exp(0)")
	s := c.Evaluate()
	require.NoError(t, s.Err)
	assert.Equal(t, "2.718281828459045", s.Display)

	c.Clear()
	typeIn(c, "ln(", "e", ")")
	assert.Equal(t, "1", c.Evaluate().Display)

	// Glued together, it is an unknown name rather than a wrong number.
	c.Clear()
	typeIn(c, "e", "exp(1)")
	assert.Equal(t, scicalc.KindName, scicalc.KindOf(c.Evaluate().Err))
}

func TestSharedHistory(t *testing.T) {
	var h history.Log
	h.Append("earlier")
	c := pad.New(pad.WithHistory(&h))
	c.Append("1+1")
	c.Evaluate()
	assert.Equal(t, 2, h.Len())
	last, _ := h.Last()
	assert.Equal(t, "1+1 = 2", last.Text)
}

func TestPrecision(t *testing.T) {
	c := pad.New(pad.WithPrecision(200))
	c.Append("2^0.5")
	assert.Equal(t, "1.4142135623730951", c.Evaluate().Display)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := pad.New(pad.WithLogger(zap.New(core)))
	c.Append("1+1")
	c.Evaluate()
	c.Append("/0")
	c.Evaluate()
	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "evaluated", entries[0].Message)
	assert.Equal(t, "evaluation failed", entries[1].Message)
	assert.Equal(t, "divide by zero", entries[1].ContextMap()["kind"])
}
