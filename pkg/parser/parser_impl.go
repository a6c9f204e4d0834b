package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandrolain/bindexpr/pkg/types"
)

// noTerminator marks a top-level parse, which may end only at
// end-of-input. Nested parses use ']' as their terminator.
const noTerminator rune = 0

// Parser implements a recursive descent parser for binding expressions.
// It owns the cursor directly; there is no intermediate token stream.
//
// A Parser is single-use: create one per input. The package-level
// Parse function is the usual entry point.
type Parser struct {
	lexer *Lexer
	opts  CompileOptions
}

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Parser{
		lexer: NewLexer(input),
		opts:  options,
	}
}

// Parse parses the entire input and returns the root AST.
func (p *Parser) Parse() (*types.BindingExpression, error) {
	expr, err := p.parseExpression(noTerminator, 0)
	if err != nil {
		return nil, err
	}

	if !p.lexer.AtEnd() {
		return nil, p.unexpected(p.lexer.Peek())
	}

	return expr, nil
}

// parseExpression parses segments until end-of-input or, for nested
// expressions, until the terminator character (left unconsumed for the
// bracket parser to verify). depth counts enclosing brackets and is
// passed down explicitly so the nesting bound does not depend on any
// global state.
func (p *Parser) parseExpression(terminator rune, depth int) (*types.BindingExpression, error) {
	start := p.lexer.Pos()
	var segments []types.Segment

	// The leading segment is never dot-prefixed: foo, not .foo.
	switch ch := p.lexer.Peek(); {
	case ch == '[':
		seg, err := p.parseBracket(depth)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	case isIdentifierRune(ch):
		segments = append(segments, p.scanKey())
	case ch == eof || ch == terminator:
		return nil, types.NewError(types.ErrEmptyExpression, "empty expression", start)
	default:
		return nil, p.unexpected(ch)
	}

	for {
		switch ch := p.lexer.Peek(); {
		case ch == '.':
			p.lexer.Next()
			if !isIdentifierRune(p.lexer.Peek()) {
				return nil, types.NewError(types.ErrExpectedIdentifier,
					"expected identifier after '.'", p.lexer.Pos())
			}
			segments = append(segments, p.scanKey())
		case ch == '[':
			seg, err := p.parseBracket(depth)
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
		case ch == eof || ch == terminator,
			terminator != noTerminator && isWhitespace(ch):
			return types.NewBindingExpression(segments, p.lexer.input[start:p.lexer.Pos()]), nil
		default:
			return nil, p.unexpected(ch)
		}
	}
}

// scanKey consumes a maximal run of identifier characters.
// The caller guarantees the run is non-empty.
func (p *Parser) scanKey() types.Segment {
	start := p.lexer.Pos()
	p.lexer.acceptAll(isIdentifierRune)
	return types.KeySegment(p.lexer.input[start:p.lexer.Pos()], start)
}

// parseBracket parses the contents between '[' and its matching ']'.
// Dispatch on the first non-whitespace character inside the brackets:
// a quote starts a literal string key, a digit (or '-' followed by a
// digit) starts a numeric index, and anything else is a nested binding
// expression parsed by recursing into the top-level grammar.
func (p *Parser) parseBracket(depth int) (types.Segment, error) {
	open := p.lexer.Pos()
	p.lexer.Next() // consume '['
	p.lexer.skipWhitespace()

	var seg types.Segment
	switch ch := p.lexer.Peek(); {
	case ch == '\'' || ch == '"':
		key, err := p.parseQuotedKey()
		if err != nil {
			return types.Segment{}, err
		}
		seg = types.KeySegment(key, open)
	case isDigit(ch) || p.startsNegativeIndex(ch):
		var err error
		seg, err = p.parseIndex(open)
		if err != nil {
			return types.Segment{}, err
		}
	case ch == eof:
		return types.Segment{}, p.unmatched(open)
	default:
		if depth+1 > p.opts.MaxDepth {
			return types.Segment{}, types.NewError(types.ErrNestingTooDeep,
				fmt.Sprintf("bracket nesting exceeds maximum depth %d", p.opts.MaxDepth), open)
		}
		sub, err := p.parseExpression(']', depth+1)
		if err != nil {
			return types.Segment{}, err
		}
		seg = types.NestedSegment(sub, open)
	}

	p.lexer.skipWhitespace()
	if !p.lexer.AcceptRune(']') {
		return types.Segment{}, p.unmatched(open)
	}
	return seg, nil
}

// startsNegativeIndex reports whether the cursor sits on a '-' that
// begins a negative numeric index rather than a bare key such as [-x]
// ('-' is a valid identifier character).
func (p *Parser) startsNegativeIndex(ch rune) bool {
	if ch != '-' {
		return false
	}
	p.lexer.Next()
	negative := isDigit(p.lexer.Peek())
	p.lexer.Backup()
	return negative
}

// parseIndex consumes a maximal run of digits with an optional leading
// '-' and converts it to a platform int.
func (p *Parser) parseIndex(open int) (types.Segment, error) {
	start := p.lexer.Pos()
	p.lexer.AcceptRune('-')
	p.lexer.acceptAll(isDigit)
	digits := p.lexer.input[start:p.lexer.Pos()]

	n, err := strconv.Atoi(digits)
	if err != nil {
		// The scan admits only an optional sign and digits, so the sole
		// possible failure is a value outside the signed int range.
		return types.Segment{}, types.NewError(types.ErrIntegerOverflow,
			fmt.Sprintf("index %s does not fit in a signed integer", digits), start).
			WithToken(digits).WithCause(err)
	}
	return types.IndexSegment(n, open), nil
}

// parseQuotedKey consumes a quoted string key. The cursor sits on the
// opening quote. Within the string, a backslash followed by the
// matching quote yields a literal quote and a backslash followed by a
// backslash yields a literal backslash; any other escape is an error.
func (p *Parser) parseQuotedKey() (string, error) {
	openQuote := p.lexer.Pos()
	quote := p.lexer.Next()

	var b strings.Builder
	for {
		switch ch := p.lexer.Next(); ch {
		case quote:
			return b.String(), nil
		case '\\':
			escPos := p.lexer.Pos() - 1
			switch esc := p.lexer.Next(); esc {
			case quote, '\\':
				b.WriteRune(esc)
			case eof:
				return "", types.NewError(types.ErrUnexpectedEndOfInput,
					"end of input after backslash in quoted key", p.lexer.Pos())
			default:
				return "", types.NewError(types.ErrInvalidEscapeSequence,
					fmt.Sprintf("invalid escape sequence %q", "\\"+string(esc)), escPos).
					WithToken("\\" + string(esc))
			}
		case eof:
			return "", types.NewError(types.ErrUnterminatedString,
				"unterminated quoted key", openQuote).WithToken(string(quote))
		default:
			b.WriteRune(ch)
		}
	}
}

func (p *Parser) unexpected(ch rune) *types.Error {
	return types.NewError(types.ErrUnexpectedCharacter,
		fmt.Sprintf("unexpected character %q", ch), p.lexer.Pos()).WithToken(string(ch))
}

func (p *Parser) unmatched(open int) *types.Error {
	return types.NewError(types.ErrUnmatchedBracket, "unmatched '['", open).WithToken("[")
}
