package pad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deskutils/scicalc/pad"
)

func TestPress(t *testing.T) {
	c := pad.New()
	for _, label := range []string{"√(", "9", ")", "×", "π", "÷", "π", "="} {
		c.Press(label)
	}
	assert.Equal(t, "3", c.State().Display)
	assert.Equal(t, "√(9)×π÷π = 3", c.History().Entries()[0].Text)

	c.Press("←")
	assert.Equal(t, "", c.State().Expr)
	c.Press("1")
	c.Press("C")
	assert.Equal(t, pad.State{}, c.State())
	c.Press("")
	assert.Equal(t, pad.State{}, c.State())
}

func TestPressEveryButton(t *testing.T) {
	for _, label := range pad.FunctionButtons {
		c := pad.New()
		assert.Equal(t, label, c.Press(label).Expr)
	}
	for _, row := range pad.Grid {
		for _, label := range row {
			c := pad.New()
			c.Press("1")
			s := c.Press(label)
			switch label {
			case pad.ClearLabel:
				assert.Equal(t, pad.State{}, s)
			case pad.BackspaceLabel:
				assert.Equal(t, "", s.Expr)
				assert.Equal(t, pad.Editing, s.Mode)
			case pad.EvaluateLabel:
				assert.Equal(t, "1", s.Display)
				assert.Equal(t, pad.Evaluated, s.Mode)
				assert.Equal(t, 1, c.History().Len())
			default:
				assert.Equal(t, "1"+label, s.Expr, "label %q", label)
				assert.Equal(t, pad.Editing, s.Mode)
			}
		}
	}
}

func TestKey(t *testing.T) {
	c := pad.New()
	for _, r := range "(1+2)*3" {
		c.Key(r)
	}
	assert.Equal(t, "(1+2)*3", c.State().Expr)
	c.Key('x')
	c.Key('^')
	assert.Equal(t, "(1+2)*3", c.State().Expr)
	assert.Equal(t, "9", c.Key('\r').Display)

	c.Key('\b')
	assert.Equal(t, "", c.State().Expr)
	c.Key(0x7f)
	assert.Equal(t, "", c.State().Expr)

	c.Key('4')
	c.Key('/')
	c.Key('8')
	assert.Equal(t, "0.5", c.Key('\n').Display)
	c.Key(0x1b)
	assert.Equal(t, pad.State{}, c.State())
}
