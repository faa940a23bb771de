// Package wcfgerr holds the sentinel error taxonomy for the wcfg module: a
// LineError{Cause, Row} position wrapper plus package-level sentinel
// errors that callers test against with errors.Is.
package wcfgerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors callers test against with errors.Is.
var (
	// ErrBadInput marks a malformed grammar text line.
	ErrBadInput = errors.New("bad input")

	// ErrPrecondition marks an invariant-check failure at a transform
	// boundary (e.g. a Ps rule with an empty body, or a CNF result that
	// fails the CNF check).
	ErrPrecondition = errors.New("precondition violated")

	// ErrDivergence marks the agenda fixpoint solver exhausting its
	// iteration budget without converging. The partial
	// result is still usable; this is a soft failure, not a hard one.
	ErrDivergence = errors.New("fixpoint did not converge")

	// ErrInvalidRule marks an attempt to construct a rule whose head is
	// not a nonterminal.
	ErrInvalidRule = errors.New("invalid rule")
)

// LineError wraps a parse failure with the offending source line and row.
type LineError struct {
	Row   int
	Line  string
	Cause error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Row, e.Cause, e.Line)
}

func (e *LineError) Unwrap() error {
	return e.Cause
}

// BadInput builds a LineError wrapping ErrBadInput for the given row/line.
func BadInput(row int, line string, cause error) error {
	return &LineError{Row: row, Line: line, Cause: errors.Wrap(ErrBadInput, cause.Error())}
}

// Precondition builds an error wrapping ErrPrecondition with context.
func Precondition(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}

// Divergence builds an error wrapping ErrDivergence with context.
func Divergence(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDivergence, format, args...)
}

// InvalidRule builds an error wrapping ErrInvalidRule with context.
func InvalidRule(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidRule, format, args...)
}
