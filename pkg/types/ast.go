package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SegmentType identifies the variant of a Segment.
//
// The set is closed: consumers walking an AST switch on the three
// constants below and may treat any other value as a programming error.
type SegmentType string

// Segment variants.
const (
	// SegmentKey is a literal property name, sourced from either a dotted
	// identifier (foo.bar) or a quoted bracket string (foo['bar']).
	SegmentKey SegmentType = "key"

	// SegmentIndex is a literal numeric array index (foo[0]).
	//
	// Negative indices are end-relative: -1 addresses the last element.
	// The parser never folds or rejects negative values; applying the
	// convention is the evaluator's job. Zero-padded input ([007]) is
	// parsed by value and yields 7.
	SegmentIndex SegmentType = "index"

	// SegmentNested is a bracket segment whose content is itself a full
	// binding expression, resolved dynamically at evaluation time
	// (foo[bar.baz]).
	SegmentNested SegmentType = "nested"
)

// Segment is one atomic step in a binding expression's path.
//
// Exactly one of Key, Index, or Path is meaningful, selected by Type.
// Position is the byte offset of the segment's start in the original
// input; it exists for diagnostics and is ignored by Equal.
type Segment struct {
	Type     SegmentType
	Key      string             // SegmentKey: the unescaped property name
	Index    int                // SegmentIndex: the numeric index
	Path     *BindingExpression // SegmentNested: the sub-expression
	Position int
}

// KeySegment creates a key segment.
func KeySegment(key string, position int) Segment {
	return Segment{Type: SegmentKey, Key: key, Position: position}
}

// IndexSegment creates a numeric index segment.
func IndexSegment(index int, position int) Segment {
	return Segment{Type: SegmentIndex, Index: index, Position: position}
}

// NestedSegment creates a nested sub-expression segment.
func NestedSegment(path *BindingExpression, position int) Segment {
	return Segment{Type: SegmentNested, Path: path, Position: position}
}

// Equal reports whether two segments are structurally identical.
// Positions are not compared, so segments parsed from different
// renderings of the same path compare equal.
func (s Segment) Equal(other Segment) bool {
	if s.Type != other.Type {
		return false
	}
	switch s.Type {
	case SegmentKey:
		return s.Key == other.Key
	case SegmentIndex:
		return s.Index == other.Index
	case SegmentNested:
		return s.Path.Equal(other.Path)
	default:
		return false
	}
}

// MarshalJSON renders the segment with a stable "type" tag so that
// consumers in any language can dispatch on the variant:
//
//	{"type":"key","key":"foo"}
//	{"type":"index","index":-1}
//	{"type":"nested","path":[...]}
func (s Segment) MarshalJSON() ([]byte, error) {
	switch s.Type {
	case SegmentKey:
		return json.Marshal(struct {
			Type SegmentType `json:"type"`
			Key  string      `json:"key"`
		}{s.Type, s.Key})
	case SegmentIndex:
		return json.Marshal(struct {
			Type  SegmentType `json:"type"`
			Index int         `json:"index"`
		}{s.Type, s.Index})
	case SegmentNested:
		return json.Marshal(struct {
			Type SegmentType        `json:"type"`
			Path *BindingExpression `json:"path"`
		}{s.Type, s.Path})
	default:
		return nil, fmt.Errorf("bindexpr: cannot marshal segment of unknown type %q", s.Type)
	}
}

// IsIdentifierRune reports whether r may appear in a bare (unquoted)
// key: Unicode letters and digits plus '_', '-', and '@'.
//
// Keys containing any other rune must be written in quoted bracket
// form; the canonical serialization relies on the same classification.
func IsIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '@'
}

// isBareKey reports whether key can be rendered without quoting.
func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !IsIdentifierRune(r) {
			return false
		}
	}
	return true
}

// startsLikeIndex reports whether a bare rendering of key would begin
// like a numeric index. A leading key inside brackets must then be
// quoted, or re-parsing would turn Key("0") into Index(0).
func startsLikeIndex(key string) bool {
	if key[0] >= '0' && key[0] <= '9' {
		return true
	}
	return key[0] == '-' && len(key) > 1 && key[1] >= '0' && key[1] <= '9'
}

// appendCanonical writes the canonical rendering of the segment.
// The first segment of an expression is never dot-prefixed.
func (s Segment) appendCanonical(b *strings.Builder, first bool) {
	switch s.Type {
	case SegmentKey:
		if isBareKey(s.Key) && !(first && startsLikeIndex(s.Key)) {
			if !first {
				b.WriteByte('.')
			}
			b.WriteString(s.Key)
			return
		}
		b.WriteString("['")
		for _, r := range s.Key {
			if r == '\'' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteString("']")
	case SegmentIndex:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(s.Index))
		b.WriteByte(']')
	case SegmentNested:
		b.WriteByte('[')
		b.WriteString(s.Path.String())
		b.WriteByte(']')
	}
}
