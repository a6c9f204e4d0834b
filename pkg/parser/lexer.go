package parser

import (
	"unicode/utf8"

	"github.com/sandrolain/bindexpr/pkg/types"
)

// eof is returned by Peek and Next when the input is exhausted.
const eof = -1

// Lexer is a cursor over a binding expression string.
//
// The implementation follows Rob Pike's "Lexical Scanning in Go"
// primitives, but produces no token stream: the grammar is small enough
// that the parser consumes characters directly through the cursor.
// Positions are byte offsets into the original input, used for error
// reporting. The cursor allocates nothing and has no side effects
// beyond its own movement.
type Lexer struct {
	input   string // input string being scanned
	length  int    // length of the input in bytes
	current int    // current byte offset
	width   int    // width of the last rune read
}

// NewLexer creates a new cursor over the provided input string.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Peek returns the rune at the current position without consuming it,
// or eof when the input is exhausted.
func (l *Lexer) Peek() rune {
	if l.current >= l.length {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.current:])
	return r
}

// Next consumes and returns the rune at the current position, or eof
// when the input is exhausted.
func (l *Lexer) Next() rune {
	if l.current >= l.length {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

// Backup steps back one rune. It may only be called once per call to
// Next.
func (l *Lexer) Backup() {
	l.current -= l.width
	l.width = 0
}

// Pos returns the current byte offset into the input.
func (l *Lexer) Pos() int {
	return l.current
}

// AtEnd reports whether the input is exhausted.
func (l *Lexer) AtEnd() bool {
	return l.current >= l.length
}

// AcceptRune consumes the next rune if it equals r.
func (l *Lexer) AcceptRune(r rune) bool {
	return l.accept(func(c rune) bool {
		return c == r
	})
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.Next()) {
		return true
	}
	l.Backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

func (l *Lexer) skipWhitespace() {
	l.acceptAll(isWhitespace)
}

// Character classification functions

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isIdentifierRune classifies runes that may appear in a bare key.
// The classification is shared with the canonical serializer.
func isIdentifierRune(r rune) bool {
	return types.IsIdentifierRune(r)
}
