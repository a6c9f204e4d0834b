// Package types defines the core type system for bindexpr.
//
// This package contains type definitions for:
//   - BindingExpression: a parsed binding expression
//   - Segment: one step of the path (key, index, or nested expression)
//   - Error types: structured parse errors with codes and positions
package types

import (
	"encoding/json"
	"strings"
)

// BindingExpression is the AST produced by parsing a binding
// expression: an ordered sequence of segments whose order is the
// traversal order over the bound data.
//
// A BindingExpression is immutable after parsing and holds no shared
// mutable state, so it is safe for concurrent use by multiple
// goroutines.
type BindingExpression struct {
	segments []Segment
	source   string
}

// NewBindingExpression creates a BindingExpression from segments.
// source is the input text the segments were parsed from; for a nested
// sub-expression it is the corresponding slice of the outer input.
func NewBindingExpression(segments []Segment, source string) *BindingExpression {
	return &BindingExpression{
		segments: segments,
		source:   source,
	}
}

// Segments returns the ordered segment sequence.
// The returned slice must not be modified.
func (e *BindingExpression) Segments() []Segment {
	return e.segments
}

// Len returns the number of segments.
func (e *BindingExpression) Len() int {
	return len(e.segments)
}

// Source returns the text the expression was parsed from.
func (e *BindingExpression) Source() string {
	return e.source
}

// Equal reports whether two expressions are structurally identical.
// Source text and segment positions are not compared: foo['bar'] and
// foo.bar parse to equal expressions.
func (e *BindingExpression) Equal(other *BindingExpression) bool {
	if e == nil || other == nil {
		return e == other
	}
	if len(e.segments) != len(other.segments) {
		return false
	}
	for i := range e.segments {
		if !e.segments[i].Equal(other.segments[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical rendering of the expression: bare keys
// in dotted form, other keys as single-quoted bracket strings with
// '\'' and '\\' escapes, indices and nested expressions in brackets.
// A leading key that would read as a numeric index is quoted too.
// Re-parsing the canonical form yields an expression Equal to the
// original.
func (e *BindingExpression) String() string {
	var b strings.Builder
	b.Grow(len(e.source))
	for i, s := range e.segments {
		s.appendCanonical(&b, i == 0)
	}
	return b.String()
}

// MarshalJSON renders the expression as its segment array. This is the
// stable wire contract for AST consumers; see Segment.MarshalJSON for
// the per-segment shape.
func (e *BindingExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.segments)
}
