package pad

import "strings"

// Button labels with a meaning other than appending themselves.
const (
	ClearLabel     = "C"
	BackspaceLabel = "←"
	EvaluateLabel  = "="
)

// FunctionButtons are the labels of the scientific row. Each appends itself.
var FunctionButtons = []string{"sin(", "cos(", "tan(", "log(", "ln(", "√(", "π", "e", "^"}

// Grid is the main button grid, row by row.
var Grid = [][]string{
	{ClearLabel, BackspaceLabel, "(", ")"},
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "-"},
	{"0", ".", EvaluateLabel, "+"},
}

// keyRunes are the keys that append themselves.
const keyRunes = "0123456789.+-*/()"

// Press handles an on-screen button by its label.
func (c *Calculator) Press(label string) State {
	switch label {
	case "":
		return c.state
	case ClearLabel:
		return c.Clear()
	case BackspaceLabel:
		return c.Backspace()
	case EvaluateLabel:
		return c.Evaluate()
	default:
		return c.Append(label)
	}
}

// Key handles a keyboard key. Enter evaluates, Backspace and Delete erase,
// Escape clears, and digits, the decimal point, + - * / and parentheses are
// typed. Other keys are ignored.
func (c *Calculator) Key(r rune) State {
	switch {
	case r == '\r', r == '\n':
		return c.Evaluate()
	case r == '\b', r == 0x7f:
		return c.Backspace()
	case r == 0x1b:
		return c.Clear()
	case strings.ContainsRune(keyRunes, r):
		return c.Append(string(r))
	default:
		return c.state
	}
}
