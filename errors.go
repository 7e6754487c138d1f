package treegram

import "errors"

// Common errors used throughout the treegram package. A grammar that merely
// fails to match its input is never an error: parsing yields zero results.
// These errors flag malformed grammars and contract violations, which fail
// loudly at construction or first-use time.
var (
	// ErrEmptySequence is returned when a sequence is constructed with no elements.
	// Construction errors
	ErrEmptySequence = errors.New("sequence requires at least one element")
	// ErrRepetitionBounds indicates repetition bounds with min < 0 or max < min.
	ErrRepetitionBounds = errors.New("invalid repetition bounds")
	// ErrPatternSyntax indicates a terminal pattern that is not a valid regular expression.
	ErrPatternSyntax = errors.New("invalid pattern syntax")

	// ErrNotPrepared is returned when parse is attempted on a node graph that was never prepared.
	// Usage errors
	ErrNotPrepared = errors.New("grammar node is not prepared")
	// ErrAlreadyPrepared indicates a mutation of a grammar after preparation.
	ErrAlreadyPrepared = errors.New("grammar is already prepared")
	// ErrNoMatch is returned by the convenience entry points when the grammar rejects the input.
	ErrNoMatch = errors.New("input does not match grammar")

	// ErrReservedName indicates a production name that collides with the reserved
	// single-character combinator shorthands.
	// Registry errors
	ErrReservedName = errors.New("production name is reserved")
	// ErrSpecialName indicates a dunder-style registry name, which never maps to a production.
	ErrSpecialName = errors.New("special name does not refer to a production")
	// ErrUnknownProduction indicates a parse request for a production that was never defined.
	ErrUnknownProduction = errors.New("unknown production")
)
