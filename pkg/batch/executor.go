package batch

import (
	"context"
	"fmt"

	"github.com/arthur-debert/warden/pkg/logging"
)

// SkipRecord explains why one unit was skipped.
type SkipRecord struct {
	ID     string
	Reason string
}

// FailRecord captures one unit's failure.
type FailRecord struct {
	ID    string
	Error string
}

// Report is the classified outcome of a batch run. List order follows
// processing order.
type Report struct {
	Succeeded []string
	Skipped   []SkipRecord
	Failed    []FailRecord
}

// Total returns the number of units the report accounts for.
func (r Report) Total() int {
	return len(r.Succeeded) + len(r.Skipped) + len(r.Failed)
}

// SkipError marks a unit outcome as skipped rather than failed. Return
// one from a unit operation when a precondition is absent (no settings
// document, no source file).
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string { return e.Reason }

// Skip builds a SkipError with the given reason.
func Skip(reason string) error {
	return &SkipError{Reason: reason}
}

// Skipf builds a SkipError with a formatted reason.
func Skipf(format string, args ...interface{}) error {
	return &SkipError{Reason: fmt.Sprintf(format, args...)}
}

// Progress receives live per-unit notifications. index is 1-based.
type Progress interface {
	Unit(id string, index, total int)
}

// ProgressFunc adapts a function to the Progress interface.
type ProgressFunc func(id string, index, total int)

func (f ProgressFunc) Unit(id string, index, total int) { f(id, index, total) }

// Run invokes op once per unit, strictly sequentially and in input
// order, classifying each outcome: nil means succeeded, a SkipError
// means skipped, any other error (or a panic) means failed. A unit's
// failure never stops the batch. A cancelled context is honored between
// units only; the in-flight unit always runs to completion, and units
// not yet started are simply absent from the report.
func Run(ctx context.Context, units []string, op func(id string) error, progress Progress) Report {
	logger := logging.GetLogger("batch")
	var report Report

	total := len(units)
	for i, id := range units {
		if ctx.Err() != nil {
			logger.Warn().Int("remaining", total-i).Msg("Batch cancelled between units")
			break
		}
		if progress != nil {
			progress.Unit(id, i+1, total)
		}

		err := runUnit(op, id)
		switch e := err.(type) {
		case nil:
			report.Succeeded = append(report.Succeeded, id)
			logger.Debug().Str("unit", id).Msg("Unit succeeded")
		case *SkipError:
			report.Skipped = append(report.Skipped, SkipRecord{ID: id, Reason: e.Reason})
			logger.Info().Str("unit", id).Str("reason", e.Reason).Msg("Unit skipped")
		default:
			report.Failed = append(report.Failed, FailRecord{ID: id, Error: err.Error()})
			logger.Error().Str("unit", id).Err(err).Msg("Unit failed, continuing batch")
		}
	}

	return report
}

// runUnit isolates a single unit so that a panic inside op is recorded
// as that unit's failure instead of tearing down the batch.
func runUnit(op func(id string) error, id string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return op(id)
}
