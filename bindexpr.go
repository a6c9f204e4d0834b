// Package bindexpr parses binding expressions, compact textual paths
// into nested data structures, into an AST that downstream code can
// evaluate against runtime values.
//
// A binding expression combines dotted property access, bracketed
// numeric indices, quoted bracket keys, and nested (dynamic) bracket
// expressions:
//
//	foo.bar[0]['baz qux']
//	foo[bar.baz]
//
// # Quick Start
//
//	// Parse once, walk the segments
//	expr, err := bindexpr.Parse("user.accounts[0].name")
//	for _, seg := range expr.Segments() {
//	    switch seg.Type {
//	    case types.SegmentKey:    // seg.Key
//	    case types.SegmentIndex:  // seg.Index
//	    case types.SegmentNested: // seg.Path
//	    }
//	}
//
//	// With options
//	expr, err := bindexpr.Parse("a[b[c]]", parser.WithMaxDepth(8))
//
// # Contract
//
// Parsing is a pure function from input string to (AST | error): no
// I/O, no retained state, safe for concurrent use on independent
// inputs. On failure the returned error is a *types.Error carrying a
// machine-actionable code and the byte offset of the failure; a partial
// AST is never returned.
//
// # More Information
//
// For detailed documentation, see:
//   - Parser:  github.com/sandrolain/bindexpr/pkg/parser
//   - Types:   github.com/sandrolain/bindexpr/pkg/types
//   - Caching: github.com/sandrolain/bindexpr/pkg/cache
package bindexpr

import (
	"fmt"

	"github.com/sandrolain/bindexpr/pkg/cache"
	"github.com/sandrolain/bindexpr/pkg/parser"
	"github.com/sandrolain/bindexpr/pkg/types"
)

// Version returns the current version of bindexpr.
func Version() string {
	return "v0.1.0-dev"
}

// Parse parses a binding expression and returns its AST.
//
// Example:
//
//	expr, err := bindexpr.Parse("foo.bar[0]")
func Parse(input string, opts ...parser.CompileOption) (*types.BindingExpression, error) {
	return parser.Parse(input, opts...)
}

// MustParse is like Parse but panics if the expression cannot be
// parsed. It simplifies safe initialization of global variables.
func MustParse(input string) *types.BindingExpression {
	expr, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("bindexpr: Parse(%q): %v", input, err))
	}
	return expr
}

// NewCache creates an LRU cache of parsed expressions for callers that
// resolve the same expression strings repeatedly. The parser itself
// never caches; see the cache package for the sharing contract.
func NewCache(capacity int) *cache.Cache {
	return cache.New(capacity)
}
