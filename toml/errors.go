package toml

import (
	"errors"
	"fmt"
)

// Sentinel errors used with errors.Is against the library's public API.
// They are wrapped inside *ParseError where a line number is available.
var (
	// ErrArrayHeterogeneous is returned by Array.Append when an element's
	// kind does not match the array's established element kind.
	ErrArrayHeterogeneous = errors.New("toml: array elements must share one type")

	// ErrKeyMissing is returned by Table lookups for an absent key or path.
	ErrKeyMissing = errors.New("toml: key not found")

	// ErrTableRedefined is the cause of the *ParseError returned when a
	// [table] header tries to reopen a path that is already closed by an
	// earlier header, a dotted key, or a value (invariant 3/4 of the
	// document data model).
	ErrTableRedefined = errors.New("toml: table or key redefined")

	// ErrMergeConflict is returned by ParseBaseAndOverride when
	// allowAdditions is false and the override document introduces a key
	// the base document does not have, or when a key is a table in one
	// document and not in the other.
	ErrMergeConflict = errors.New("toml: merge conflict")
)

// ParseError is the single error kind spec.md §7 calls for: a message plus
// the 1-based source line it refers to. It wraps an optional inner cause
// so callers can still reach the original sentinel (ErrArrayHeterogeneous,
// ErrTableRedefined, ErrMergeConflict) or I/O error via errors.Is/errors.As.
type ParseError struct {
	Line    int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("toml: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("toml: %s", e.Message)
}

// Unwrap exposes Cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Cause }

func newParseError(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...)}
}

func wrapParseError(line int, cause error, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...), Cause: cause}
}
