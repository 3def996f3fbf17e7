// Package solveerr implements the error taxonomy described in the solver's
// error handling design: I/O failures at the boundary, format errors with
// subkinds, allocation failure, and a fatal internal-invariant violation.
package solveerr

import "fmt"

// Kind classifies an Error.
type Kind int

const (
	// FileNotFound means the input path does not exist.
	FileNotFound Kind = iota
	// FileUnreadable means the input path exists but could not be read.
	FileUnreadable
	// FormatError means the DIMACS text was malformed; see Subkind for detail.
	FormatError
	// OutOfMemory means an allocation failed.
	OutOfMemory
	// InternalInvariant means a checked engine invariant was violated; always
	// a bug, always fatal.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case FileUnreadable:
		return "file unreadable"
	case FormatError:
		return "format error"
	case OutOfMemory:
		return "out of memory"
	case InternalInvariant:
		return "internal invariant violated"
	default:
		return "unknown error"
	}
}

// Subkind further classifies a FormatError.
type Subkind int

const (
	// SubkindNone applies to non-FormatError kinds.
	SubkindNone Subkind = iota
	MissingProblemLine
	DuplicateProblemLine
	MalformedProblemLine
	NonIntegerToken
	LiteralOutOfRange
	ClauseNotTerminated
	EmptyClause
	ClauseCountMismatch
)

func (s Subkind) String() string {
	switch s {
	case MissingProblemLine:
		return "missing problem line"
	case DuplicateProblemLine:
		return "duplicate problem line"
	case MalformedProblemLine:
		return "malformed problem line"
	case NonIntegerToken:
		return "non-integer token"
	case LiteralOutOfRange:
		return "literal out of range"
	case ClauseNotTerminated:
		return "clause not terminated"
	case EmptyClause:
		return "empty clause"
	case ClauseCountMismatch:
		return "clause count mismatch"
	default:
		return ""
	}
}

// Error is the solver's single error type. Kind and, for FormatError,
// Subkind classify the failure; Line is the 1-indexed input line the error
// was found on, or 0 when not applicable.
type Error struct {
	Kind    Kind
	Subkind Subkind
	Line    int
	Message string
	cause   error
}

// New returns a new Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewFormat returns a new FormatError with the given subkind and line.
func NewFormat(subkind Subkind, line int, message string) *Error {
	return &Error{Kind: FormatError, Subkind: subkind, Line: line, Message: message}
}

// Wrap returns a new Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == FormatError && e.Subkind != SubkindNone {
		if e.Line > 0 {
			return fmt.Sprintf("%s (%s) at line %d: %s", e.Kind, e.Subkind, e.Line, e.Message)
		}
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Subkind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any, supporting errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}
