package opts

import (
	"errors"
)

// ExitError requests a specific process exit code from a program's own code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the codes used when no specific mapping applies.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

// DefaultExitCodes returns the conventional defaults.
func DefaultExitCodes() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodes maps errors from this package to process exit codes.
//
// Specification errors are programming defects and resolve to GeneralError.
// Parse errors resolve to MisusageError, except value conversion failures
// which resolve to ValidationError.
type ExitCodes struct {
	byKind   map[ErrorKind]int
	defaults ExitCodeDefaults
}

// NewExitCodes returns a mapping prewired with the defaults.
func NewExitCodes() *ExitCodes {
	e := &ExitCodes{byKind: make(map[ErrorKind]int)}
	return e.Default(DefaultExitCodes())
}

// DefineKind overrides the exit code for one error kind. Because
// ErrorKindInvalidShortOption is shared by both categories, an override for
// it applies to specification and parse errors alike.
func (e *ExitCodes) DefineKind(kind ErrorKind, code int) *ExitCodes {
	e.byKind[kind] = code
	return e
}

// Default replaces the default codes. Kinds defined with DefineKind keep
// their override.
func (e *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes {
	e.defaults = d
	return e
}

// Resolve converts err into an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. DefineKind override
//  3. category defaults
func (e *ExitCodes) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	kind := KindOf(err)
	if code, ok := e.byKind[kind]; ok {
		return code
	}

	switch {
	case kind == "":
		return e.defaults.GeneralError
	case IsSpecError(err):
		return e.defaults.GeneralError
	case kind == ErrorKindOptionValueError:
		return e.defaults.ValidationError
	default:
		return e.defaults.MisusageError
	}
}
