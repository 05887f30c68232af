package query

import (
	"fmt"

	"github.com/agrigo/farmstore/record"
)

// ErrUnknownColumn indicates a condition referencing a column that is not
// part of the record schema. The whole query is aborted; a malformed
// condition is a caller error, not a data-quality issue.
type ErrUnknownColumn struct {
	Column record.Field
}

func (e *ErrUnknownColumn) Error() string {
	return fmt.Sprintf("unknown column: %q", string(e.Column))
}

// ErrInvalidPattern indicates a malformed regular expression in a regex
// condition. The query fails closed rather than yielding a partial result.
//
// The underlying regexp error can be accessed via errors.Unwrap.
type ErrInvalidPattern struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidPattern) Error() string {
	return fmt.Sprintf("invalid pattern: %q", e.Pattern)
}

func (e *ErrInvalidPattern) Unwrap() error { return e.cause }
