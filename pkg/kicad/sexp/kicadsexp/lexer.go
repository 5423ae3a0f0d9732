package kicadsexp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLeftParen
	TokenRightParen
	TokenSymbol
	TokenString
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	case TokenSymbol:
		return "symbol"
	case TokenString:
		return "string"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
	Line  int // 1-based line the token starts on
}

// Lexer tokenizes S-expressions from an io.Reader.
// Lines starting with '#' are treated as comments, which lets the parser
// skip the parameter header in generated footprint files.
type Lexer struct {
	reader *bufio.Reader
	peeked *rune
	line   int
}

// NewLexer creates a new lexer
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		line:   1,
	}
}

// NextToken reads the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		if errors.Is(err, io.EOF) {
			return Token{Type: TokenEOF, Line: l.line}, nil
		}
		return Token{}, err
	}

	ch, err := l.peek()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Token{Type: TokenEOF, Line: l.line}, nil
		}
		return Token{}, err
	}

	line := l.line
	switch ch {
	case '(':
		l.read()
		return Token{Type: TokenLeftParen, Value: "(", Line: line}, nil
	case ')':
		l.read()
		return Token{Type: TokenRightParen, Value: ")", Line: line}, nil
	case '"':
		value, err := l.readString()
		if err != nil {
			return Token{}, fmt.Errorf("line %d: %w", line, err)
		}
		return Token{Type: TokenString, Value: value, Line: line}, nil
	default:
		return Token{Type: TokenSymbol, Value: l.readSymbol(), Line: line}, nil
	}
}

func (l *Lexer) skipSpaceAndComments() error {
	for {
		ch, err := l.peek()
		if err != nil {
			return err
		}

		if unicode.IsSpace(ch) {
			l.read()
			continue
		}

		if ch == '#' {
			for {
				c, err := l.read()
				if err != nil {
					return err
				}
				if c == '\n' {
					break
				}
			}
			continue
		}

		return nil
	}
}

// peek looks at the next rune without consuming it
func (l *Lexer) peek() (rune, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}

	ch, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	l.peeked = &ch
	return ch, nil
}

// read consumes and returns the next rune
func (l *Lexer) read() (rune, error) {
	var ch rune
	if l.peeked != nil {
		ch = *l.peeked
		l.peeked = nil
	} else {
		var err error
		ch, _, err = l.reader.ReadRune()
		if err != nil {
			return 0, err
		}
	}

	if ch == '\n' {
		l.line++
	}
	return ch, nil
}

// readString reads a quoted string and returns it unquoted
func (l *Lexer) readString() (string, error) {
	l.read() // opening quote

	var b strings.Builder
	for {
		ch, err := l.read()
		if err != nil {
			return "", fmt.Errorf("unexpected EOF in string")
		}

		switch ch {
		case '"':
			return b.String(), nil
		case '\\':
			next, err := l.read()
			if err != nil {
				return "", fmt.Errorf("unexpected EOF after backslash")
			}
			switch next {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(next)
			}
		default:
			b.WriteRune(ch)
		}
	}
}

// readSymbol reads an unquoted symbol (identifier, number, layer mask...)
func (l *Lexer) readSymbol() string {
	var b strings.Builder
	for {
		ch, err := l.peek()
		if err != nil {
			break
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			break
		}
		l.read()
		b.WriteRune(ch)
	}
	return b.String()
}
