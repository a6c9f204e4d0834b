package types

import "fmt"

// ErrorCode identifies the kind of a parse failure.
type ErrorCode string

// Parse error taxonomy. Every failure the parser can report carries
// exactly one of these codes; there is no generic fallback.
const (
	// ErrEmptyExpression: the input (or a bracketed sub-expression)
	// contains no segments at all.
	ErrEmptyExpression ErrorCode = "empty-expression"

	// ErrExpectedIdentifier: a '.' was not followed by at least one
	// identifier character ("foo." or "foo..bar").
	ErrExpectedIdentifier ErrorCode = "expected-identifier"

	// ErrUnexpectedCharacter: a character that cannot start or continue
	// a segment was found outside bracket contents.
	ErrUnexpectedCharacter ErrorCode = "unexpected-character"

	// ErrUnexpectedEndOfInput: the input ended where a character was
	// required (for example after a backslash inside a quoted key).
	ErrUnexpectedEndOfInput ErrorCode = "unexpected-end-of-input"

	// ErrUnterminatedString: a quoted bracket key was not closed before
	// the end of the input.
	ErrUnterminatedString ErrorCode = "unterminated-string"

	// ErrInvalidEscapeSequence: a backslash inside a quoted key was
	// followed by anything other than the matching quote or another
	// backslash.
	ErrInvalidEscapeSequence ErrorCode = "invalid-escape-sequence"

	// ErrIntegerOverflow: a numeric index does not fit in a signed
	// platform int. Overflowing digits are never truncated or
	// reinterpreted as a string key.
	ErrIntegerOverflow ErrorCode = "integer-overflow"

	// ErrUnmatchedBracket: a '[' has no matching ']'. Reported at the
	// position of the opening bracket.
	ErrUnmatchedBracket ErrorCode = "unmatched-bracket"

	// ErrNestingTooDeep: bracket nesting exceeds the configured maximum
	// depth. Reported before descending, so adversarial input can never
	// overflow the call stack.
	ErrNestingTooDeep ErrorCode = "nesting-too-deep"
)

// Error is a structured parse error: a machine-actionable code plus the
// byte offset at which the failure was detected.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string // offending character or fragment, when useful
	Err      error
}

// NewError creates a new parse error.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending character or fragment to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
