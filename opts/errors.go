package opts

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-checkable discriminant carried by every error the
// parser returns. Callers branch on it with KindOf or IsKind.
type ErrorKind string

// Specification errors, returned only by New and Configure.
const (
	ErrorKindFlagConflict         ErrorKind = "flag_conflict"
	ErrorKindEmptyIdentifierName  ErrorKind = "empty_identifier_name"
	ErrorKindDuplicateIdentifier  ErrorKind = "duplicate_identifier"
	ErrorKindDuplicateShortOption ErrorKind = "duplicate_short_option"
	ErrorKindDuplicateLongOption  ErrorKind = "duplicate_long_option"
)

// Parsing and query errors. ErrorKindInvalidShortOption is shared with the
// specification category (a short form longer than one character).
const (
	ErrorKindInvalidShortOption    ErrorKind = "invalid_short_option"
	ErrorKindInvalidLongOption     ErrorKind = "invalid_long_option"
	ErrorKindMultipleInstances     ErrorKind = "multiple_instances"
	ErrorKindMissingOptionArgument ErrorKind = "missing_option_argument"
	ErrorKindOptionNotGiven        ErrorKind = "option_not_given"
	ErrorKindOptionValueError      ErrorKind = "option_value_error"
	ErrorKindMalformedCommandLine  ErrorKind = "malformed_command_line"
)

// SpecError reports a conflict in the declared options or flag sets. It
// indicates a programming defect rather than bad user input.
type SpecError struct {
	Kind    ErrorKind
	Message string
	Option  string // offending option name, short or long form
}

func (e *SpecError) Error() string {
	return e.Message
}

// ParseError reports a problem with the argument vector or a query against
// the parsed results.
type ParseError struct {
	Kind       ErrorKind
	Message    string
	Option     string // option name, or the raw token for unknown options
	Value      string // raw value text, when a value was involved
	Suggestion string // closest declared long option, for unknown long options
}

func (e *ParseError) Error() string {
	return e.Message
}

func newSpecError(kind ErrorKind, option, format string, args ...any) *SpecError {
	return &SpecError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Option:  option,
	}
}

func newParseError(kind ErrorKind, option, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Option:  option,
	}
}

// KindOf returns the discriminant of err, or "" when err was not produced by
// this package. Wrapped errors are unwrapped.
func KindOf(err error) ErrorKind {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind
	}
	var specErr *SpecError
	if errors.As(err, &specErr) {
		return specErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given discriminant.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsSpecError reports whether err belongs to the specification category.
func IsSpecError(err error) bool {
	var specErr *SpecError
	return errors.As(err, &specErr)
}
