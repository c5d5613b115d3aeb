// Package pad is the calculator's input pad: the expression being typed, the
// display, and what happens when the user presses a button or a key.
package pad

import "unicode/utf8"

// Mode is the state of the pad between user actions.
type Mode int

const (
	// Editing means the user is building an expression.
	Editing Mode = iota
	// Evaluated means the last action was an evaluation. The expression is
	// the result text after a success, or empty after a failure.
	Evaluated
)

func (m Mode) String() string {
	switch m {
	case Editing:
		return "editing"
	case Evaluated:
		return "evaluated"
	default:
		return "Mode(?)"
	}
}

// State is the pad's complete state. Operations return a new State and never
// modify the receiver.
type State struct {
	// Expr is the expression text.
	Expr string
	Mode Mode
	// Display is what the single-line display shows.
	Display string
	// Err is the reason the last evaluation failed, if it did.
	Err error
}

// Append adds token to the end of the expression. Tokens are not checked.
func (s State) Append(token string) State {
	s.Expr += token
	s.Mode = Editing
	s.Display = s.Expr
	s.Err = nil
	return s
}

// Backspace removes the last character of the expression. It does nothing
// if the expression is empty.
func (s State) Backspace() State {
	if s.Expr == "" {
		return s
	}
	_, n := utf8.DecodeLastRuneInString(s.Expr)
	s.Expr = s.Expr[:len(s.Expr)-n]
	s.Mode = Editing
	s.Display = s.Expr
	s.Err = nil
	return s
}

// Clear empties the expression and the display.
func (s State) Clear() State {
	return State{}
}
