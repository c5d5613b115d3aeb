package scicalc

import (
	"slices"
	"strconv"
	"unicode"
)

// ParseOption configures parsing.
type ParseOption func(*syntax)

// syntax is the configurable part of parsing.
type syntax struct {
	// funcs maps names to the functions they call. A nil entry makes the
	// name a variable.
	funcs map[string]Func
	// shared marks funcs as belonging to a preset, so it must be copied
	// before any change.
	shared bool
	// complete means funcs already decides every default name.
	complete bool
	// stop holds the whitespace runes that end an expression.
	stop string
	// stopComma and stopSemi allow , and ; to end an expression.
	stopComma, stopSemi bool
}

// own makes funcs safe to modify.
func (s *syntax) own() {
	if s.funcs != nil && !s.shared {
		return
	}
	m := make(map[string]Func, len(s.funcs)+len(globalfuncs))
	for k, v := range s.funcs {
		m[k] = v
	}
	s.funcs, s.shared = m, false
}

// checkComplete notes whether every default name has been decided.
func (s *syntax) checkComplete() {
	if s.complete {
		return
	}
	for k := range globalfuncs {
		if _, ok := s.funcs[k]; !ok {
			return
		}
	}
	s.complete = true
}

// fillDefaults adds the default functions that options have not decided.
func (s *syntax) fillDefaults() {
	switch {
	case s.funcs == nil:
		s.funcs = globalfuncs
	case !s.complete:
		s.own()
		for k, v := range globalfuncs {
			if _, ok := s.funcs[k]; !ok {
				s.funcs[k] = v
			}
		}
		s.complete = true
	}
}

// stopsAt reports whether the separator sep ends an expression.
func (s *syntax) stopsAt(sep string) bool {
	switch sep {
	case ",":
		return s.stopComma
	case ";":
		return s.stopSemi
	default:
		panic("scicalc: invalid separator " + strconv.Quote(sep))
	}
}

// ParseFunc sets a function for parsing. A nil fn makes name a variable.
func ParseFunc(name string, fn Func) ParseOption {
	return func(s *syntax) {
		s.own()
		s.funcs[name] = fn
		s.checkComplete()
	}
}

// ParseFuncs sets a group of functions for parsing. Nil entries make their
// names variables.
func ParseFuncs(fns map[string]Func) ParseOption {
	return func(s *syntax) {
		s.own()
		for k, v := range fns {
			s.funcs[k] = v
		}
		s.checkComplete()
	}
}

// DisableDefaultFuncs makes every default function and constant name parse
// as a variable.
func DisableDefaultFuncs() ParseOption {
	off := make(map[string]Func, len(globalfuncs))
	for k := range globalfuncs {
		off[k] = nil
	}
	return ParseFuncs(off)
}

// DefaultFuncs returns the names of the default functions and constants,
// sorted.
func DefaultFuncs() []string {
	r := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		r = append(r, k)
	}
	slices.Sort(r)
	return r
}

// StopOn makes the listed runes end an expression, so that one input can hold
// several. Each rune must be a comma, a semicolon, or whitespace. Whitespace
// does not end an expression where a term is still needed, as after an
// operator. Commas and semicolons inside an argument list separate arguments.
//
// StopOn replaces any earlier StopOn, including one in a preset. With no
// runes, expressions run to the end of input.
func StopOn(chars ...rune) ParseOption {
	var ws []rune
	var comma, semi bool
	for _, r := range chars {
		switch {
		case r == ',':
			comma = true
		case r == ';':
			semi = true
		case unicode.IsSpace(r):
			if !slices.Contains(ws, r) {
				ws = append(ws, r)
			}
		default:
			panic("scicalc: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	stop := string(ws)
	return func(s *syntax) {
		s.stop, s.stopComma, s.stopSemi = stop, comma, semi
	}
}

// ParsingPreset combines options into one that is cheaper to apply to many
// parses. A preset must come before any other option; applying it to a
// changed configuration panics.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var pre syntax
	for _, opt := range opts {
		opt(&pre)
	}
	if pre.funcs != nil {
		pre.fillDefaults()
		pre.shared = true
	}
	return func(s *syntax) {
		if s.funcs != nil || s.stop != "" || s.stopComma || s.stopSemi {
			panic("scicalc: preset applied to non-default parse config")
		}
		*s = pre
	}
}
