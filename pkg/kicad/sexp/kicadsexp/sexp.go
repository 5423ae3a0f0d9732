// Package kicadsexp provides a small streaming S-expression reader and the
// atom quoting rules used by KiCad footprint files (.kicad_mod).
package kicadsexp

import (
	"io"
	"strings"
)

// Sexp represents an S-expression node.
// It is either a Symbol (atom) or a List.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// String returns the string representation
	String() string
}

// Symbol represents an atomic value (identifier, number or string).
// Quoted strings are stored without their quotes.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) String() string { return Quote(string(s)) }

// List represents a parenthesized list of S-expressions
type List []Sexp

func (l List) IsLeaf() bool { return false }

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Name returns the leading symbol of the list, or "" if the list is empty
// or starts with a nested list.
func (l List) Name() string {
	if len(l) == 0 {
		return ""
	}
	if sym, ok := l[0].(Symbol); ok {
		return string(sym)
	}
	return ""
}

// Get returns the element at the given index, or nil when out of range
func (l List) Get(index int) Sexp {
	if index < 0 || index >= len(l) {
		return nil
	}
	return l[index]
}

// Parse parses all top-level S-expressions from an io.Reader.
func Parse(r io.Reader) ([]Sexp, error) {
	return NewParser(r).ParseAll()
}

// ParseString parses S-expressions from a string (convenience function)
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}

// Quote returns s as it must appear in a KiCad file: bare when it is a
// plain symbol, double-quoted with escapes otherwise.
func Quote(s string) string {
	if s != "" && !needsQuote(s) {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, ch := range s {
		switch ch {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// AlwaysQuote double-quotes s regardless of its content; KiCad 6 writes
// names, layers and pad numbers this way.
func AlwaysQuote(s string) string {
	q := Quote(s)
	if strings.HasPrefix(q, `"`) {
		return q
	}
	return `"` + q + `"`
}

func needsQuote(s string) bool {
	return strings.ContainsAny(s, " \t\r\n()\"\\#")
}
