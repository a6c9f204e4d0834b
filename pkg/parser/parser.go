// Package parser implements the binding expression parser.
//
// A binding expression is a compact textual path into nested data,
// such as foo.bar[0]['baz qux'] or foo[bar.baz]. The parser turns an
// input string into a [types.BindingExpression] AST or a single
// structured [types.Error]; it never returns a partial AST.
//
// # Architecture
//
// The parser consists of two layers:
//   - Lexer: a cursor over the input with character classification
//   - Parser: a recursive descent over segments, recursing into the
//     top-level grammar for bracket contents that are themselves
//     binding expressions
//
// There is no separate tokenization pass; the parser owns the cursor
// and consumes characters directly.
//
// # Example
//
//	expr, err := parser.Parse("foo.bar[0]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, seg := range expr.Segments() { ... }
//
// # Concurrency
//
// Parsing is a pure synchronous function with no shared state; the
// package is safe for concurrent use on independent inputs.
package parser

import (
	"github.com/sandrolain/bindexpr/pkg/types"
)

// DefaultMaxDepth is the default bound on bracket nesting. It is
// generous for any handwritten expression while keeping recursion on
// adversarial input far away from the host stack limit.
const DefaultMaxDepth = 100

// Parse parses a binding expression and returns its AST.
//
// On failure it returns a *types.Error carrying the error code and the
// byte offset at which the failure was detected:
//
//	_, err := parser.Parse("foo[")
//	// err.(*types.Error).Code == types.ErrUnmatchedBracket, Position == 3
func Parse(input string, opts ...CompileOption) (*types.BindingExpression, error) {
	p := NewParser(input, opts...)
	return p.Parse()
}

// Compile is an alias for Parse, provided for API consistency.
func Compile(input string, opts ...CompileOption) (*types.BindingExpression, error) {
	return Parse(input, opts...)
}

// CompileOption configures parsing behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits bracket nesting depth. Inputs nested deeper fail
	// with types.ErrNestingTooDeep instead of risking stack overflow.
	MaxDepth int
}

// WithMaxDepth sets the maximum bracket nesting depth.
// Values < 1 leave the default in place.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		if depth >= 1 {
			opts.MaxDepth = depth
		}
	}
}
