package scicalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type tokKind int8

const (
	tokNone tokKind = iota
	// tokEnd is the end of the input, or whitespace that ends an expression.
	tokEnd
	tokNum
	// tokName is a variable, constant, or function name.
	tokName
	tokOp
	tokOpen
	tokClose
	// tokSep separates function arguments: , or ;.
	tokSep
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokKind -trimprefix=tok

// token is one lexeme. text is the token as written. For operators, op is
// the canonical spelling that the parser works with.
type token struct {
	kind tokKind
	text string
	op   string
	col  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.col)
}

// Operators contains the runes which are operators. A doubled * is the single
// operator **.
const Operators = "+-*/^×÷"

// canonical maps each operator spelling to the one the parser uses. The keypad
// signs × and ÷ are * and /, and ** is ^.
var canonical = map[string]string{
	"+":  "+",
	"-":  "-",
	"*":  "*",
	"/":  "/",
	"^":  "^",
	"×":  "*",
	"÷":  "/",
	"**": "^",
}

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// The bracket at byte k of OpenBrackets is closed by the one at byte k of
// CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// closer returns the close bracket matching open.
func closer(open string) string {
	k := strings.Index(OpenBrackets, open)
	if k < 0 || len(open) != 1 {
		panic("scicalc: invalid bracket " + strconv.Quote(open))
	}
	return CloseBrackets[k : k+1]
}

// Radical is the square root sign. It is always a name by itself, so "√π" is
// the call √(π) rather than one name.
const Radical = '√'

type scanner struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the 1-based column of the next rune.
	col  int
	held token
	done bool
}

func newScanner(src io.RuneScanner) *scanner {
	return &scanner{src: src, col: 1}
}

// unread returns a token to the scanner so that the next call to next
// returns it. Panics if a token is already held.
func (s *scanner) unread(t token) {
	if s.held.kind != tokNone {
		panic("scicalc: token already held")
	}
	s.held = t
}

// take returns the held token. Panics if there is none.
func (s *scanner) take() token {
	t := s.held
	if t.kind == tokNone {
		panic("scicalc: no held token")
	}
	s.held = token{}
	return t
}

func (s *scanner) read() (rune, error) {
	r, sz, err := s.src.ReadRune()
	if sz > 0 {
		s.col++
	}
	return r, err
}

// back unreads the last rune. Panics if the source refuses.
func (s *scanner) back() {
	if err := s.src.UnreadRune(); err != nil {
		panic(err)
	}
	s.col--
}

// accept consumes the next rune if it is want.
func (s *scanner) accept(want rune) (bool, error) {
	r, err := s.read()
	switch {
	case errors.Is(err, io.EOF):
		return false, nil
	case err != nil:
		return false, err
	case r != want:
		s.back()
		return false, nil
	}
	return true, nil
}

// next scans the next token. Whitespace runes in stop end the expression like
// the end of input does. The first end of input is a tokEnd token; after
// that, next returns io.EOF until a token is unread.
func (s *scanner) next(stop string) (token, error) {
	if s.held.kind != tokNone {
		return s.take(), nil
	}
	if s.done {
		return token{}, io.EOF
	}
	defer s.buf.Reset()
	for {
		r, err := s.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.done = true
				return token{kind: tokEnd, col: s.col}, nil
			}
			return token{col: s.col}, err
		}
		if !unicode.IsSpace(r) {
			return s.lexeme(r)
		}
		if strings.ContainsRune(stop, r) {
			s.done = true
			return token{kind: tokEnd, col: s.col - 1}, nil
		}
	}
}

// lexeme scans the token starting with r, which has just been read.
func (s *scanner) lexeme(r rune) (token, error) {
	t := token{col: s.col - 1}
	switch {
	case '0' <= r && r <= '9', r == '.':
		s.back()
		if err := s.scanNumber(); err != nil {
			return t, err
		}
		t.kind, t.text = tokNum, s.buf.String()
	case r == Radical:
		t.kind, t.text = tokName, string(r)
	case r == '_', unicode.IsLetter(r):
		s.back()
		if err := s.scanName(); err != nil {
			return t, err
		}
		t.kind, t.text = tokName, s.buf.String()
	case r == ',', r == ';':
		t.kind, t.text = tokSep, string(r)
	case r == '*':
		t.kind, t.text = tokOp, "*"
		ok, err := s.accept('*')
		if err != nil {
			return t, err
		}
		if ok {
			t.text = "**"
		}
	case strings.ContainsRune(Operators, r):
		t.kind, t.text = tokOp, string(r)
	case strings.ContainsRune(OpenBrackets, r):
		t.kind, t.text = tokOpen, string(r)
	case strings.ContainsRune(CloseBrackets, r):
		t.kind, t.text = tokClose, string(r)
	default:
		// The bad rune shows up in the error text.
		s.buf.WriteRune(r)
		return t, s.fail("")
	}
	if t.kind == tokOp {
		t.op = canonical[t.text]
	}
	return t, nil
}

// scanNumber scans a decimal literal: digits with at most one point, then
// optionally an exponent marker, a sign, and digits. Any rune that cannot
// continue the literal ends it, so 2π is a number and then a name.
func (s *scanner) scanNumber() error {
	var digits, point, mark, sign, expDigits bool
	for {
		r, err := s.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		bad := false
		switch {
		case '0' <= r && r <= '9':
			if mark {
				expDigits = true
			} else {
				digits = true
			}
			sign = false
		case r == '.':
			bad = point || mark
			point, sign = true, false
		case r == 'e', r == 'E':
			bad = !digits || mark
			mark, sign = true, true
		case (r == '+' || r == '-') && sign:
			sign = false
		default:
			s.back()
			return s.checkNumber(digits, mark, expDigits)
		}
		s.buf.WriteRune(r)
		if bad {
			return s.fail("number")
		}
	}
	return s.checkNumber(digits, mark, expDigits)
}

func (s *scanner) checkNumber(digits, mark, expDigits bool) error {
	if !digits || (mark && !expDigits) {
		return s.fail("number")
	}
	return nil
}

// scanName scans an identifier. The caller has checked that the first rune
// can start one.
func (s *scanner) scanName() error {
	for {
		r, err := s.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			s.back()
			return nil
		}
		s.buf.WriteRune(r)
	}
}

// fail reports the token being scanned as invalid at the last rune read.
func (s *scanner) fail(kind string) error {
	return &LexError{
		Text: s.buf.String(),
		Kind: kind,
		Col:  s.col - 1,
	}
}
