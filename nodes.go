package scicalc

import "strings"

// node is a node of an expression's syntax tree.
type node struct {
	kind nodeKind
	// name is the literal text of a number, a variable or function name, or
	// the separator before an argument.
	name string
	fn   Func

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // literal in name
	nodeName // variable in name

	nodeCall // fn called with the nodeArg list at right, or none if niladic
	nodeArg  // value at left, next argument at right

	nodeNeg // -left
	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
	nodeNop // +left
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// symbol returns the infix spelling of a binary node kind, or "" for others.
// keypad selects × and ÷ over * and /.
func (k nodeKind) symbol(keypad bool) string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		if keypad {
			return "×"
		}
		return "*"
	case nodeDiv:
		if keypad {
			return "÷"
		}
		return "/"
	case nodePow:
		return "^"
	}
	return ""
}

func (n *node) String() string {
	var b strings.Builder
	n.format(&b, false, false)
	return b.String()
}

// format writes n fully bracketed, so that the text parses back to the same
// tree. square selects [] for this level; nested levels alternate.
func (n *node) format(b *strings.Builder, square, keypad bool) {
	open, close := "(", ")"
	if square {
		open, close = "[", "]"
	}
	b.WriteString(open)
	defer b.WriteString(close)
	if op := n.kind.symbol(keypad); op != "" {
		n.left.format(b, !square, keypad)
		b.WriteString(" " + op + " ")
		n.right.format(b, !square, keypad)
		return
	}
	switch n.kind {
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.formatArgs(b, !square, keypad)
	case nodeNeg, nodeNop:
		if n.kind == nodeNeg {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		n.left.format(b, !square, keypad)
	case nodeArg:
		// Arguments outside formatArgs only show up in debugging.
		b.WriteByte(':')
		n.left.format(b, !square, keypad)
		if n.right != nil {
			n.right.format(b, !square, keypad)
		}
	case nodeNone:
		// Invalid trees get text that cannot parse.
		b.WriteByte('$')
		if n.left != nil {
			n.left.format(b, square, keypad)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.format(b, square, keypad)
		}
		b.WriteByte('$')
	default:
		panic("scicalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) formatArgs(b *strings.Builder, square, keypad bool) {
	open, close := "(", ")"
	if square {
		open, close = "[", "]"
	}
	b.WriteString(open)
	defer b.WriteString(close)
	for a := n.right; a != nil; a = a.right {
		if a.kind != nodeArg {
			b.WriteString("***")
			a.format(b, !square, keypad)
			return
		}
		if a != n.right {
			b.WriteString(", ")
		}
		a.left.format(b, !square, keypad)
	}
}
