// Package xerrors distinguishes the error categories of the solver's
// error-handling design: malformed input, bad configuration, an
// infeasible instance, and internal invariant violations. Timeout is not
// an error in this scheme — the driver returns the best solution found so
// far; only a timeout before the finder has produced any feasible
// solution surfaces, as an InfeasibleError.
package xerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Category identifies which of the error-handling design's buckets an
// error belongs to.
type Category int

const (
	CategoryInput Category = iota + 1
	CategoryConfig
	CategoryInfeasible
	CategoryInternal
)

func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryConfig:
		return "config"
	case CategoryInfeasible:
		return "infeasible"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Categorized is implemented by every error type in this package so
// callers (chiefly the CLI) can map an error to an exit code without a
// type switch per concrete type.
type Categorized interface {
	error
	Category() Category
}

// InputError reports a malformed instance or solution file, or an
// unknown id reference, with enough context to locate the offending line.
type InputError struct {
	File string
	Line int
	msg  string
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.msg)
}

func (e *InputError) Category() Category { return CategoryInput }

// NewInputError builds a stack-carrying InputError.
func NewInputError(file string, line int, format string, args ...any) error {
	return errors.WithStack(&InputError{File: file, Line: line, msg: fmt.Sprintf(format, args...)})
}

// ConfigError reports an unparseable option, unknown method keyword, or
// an out-of-range numeric value, fatal before solving starts.
type ConfigError struct {
	Key string
	msg string
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config %q: %s", e.Key, e.msg)
	}
	return e.msg
}

func (e *ConfigError) Category() Category { return CategoryConfig }

// NewConfigError builds a stack-carrying ConfigError.
func NewConfigError(key, format string, args ...any) error {
	return errors.WithStack(&ConfigError{Key: key, msg: fmt.Sprintf(format, args...)})
}

// InfeasibleError reports that the feasible-solution finder could not
// produce a hard-feasible assignment before its context was done.
type InfeasibleError struct {
	Attempts int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no feasible solution found after %d attempt(s)", e.Attempts)
}

func (e *InfeasibleError) Category() Category { return CategoryInfeasible }

// NewInfeasibleError builds an InfeasibleError.
func NewInfeasibleError(attempts int) error {
	return errors.WithStack(&InfeasibleError{Attempts: attempts})
}

// Debug gates whether an invariant violation aborts the process (debug
// build) or is reported through the ordinary error channel (production
// build). A real two-binary split would need a build tag; this module
// uses a runtime switch instead, so the same test binary can exercise
// both paths. It defaults to false and the CLI does not set it.
var Debug = false

// InvariantViolation is raised when a redundant table goes out of sync
// with its source of truth, or another "should be impossible" condition
// is detected. In category 5 of the error design this is never swallowed:
// when Debug is set it panics with file/line/context (via the stack
// trace pkg/errors attaches); otherwise it is returned as an ordinary
// error for the caller to report and exit non-zero.
type InvariantViolation struct {
	msg string
}

func (e *InvariantViolation) Error() string { return "invariant violation: " + e.msg }

func (e *InvariantViolation) Category() Category { return CategoryInternal }

// NewInvariantViolation builds the error and, in debug mode, panics
// immediately with its stack trace so the violation is caught at the
// mutation that caused it rather than unwound silently.
func NewInvariantViolation(format string, args ...any) error {
	err := errors.WithStack(&InvariantViolation{msg: fmt.Sprintf(format, args...)})
	if Debug {
		panic(err)
	}
	return err
}
