// Package prompt wraps interactive operator input. Cancellation (Esc,
// Ctrl-C) is a normal outcome, not an error: every read returns a
// tagged Result and callers propagate cancellation by early return.
package prompt

import (
	goerrors "errors"

	"github.com/charmbracelet/huh"

	"github.com/arthur-debert/warden/pkg/logging"
)

// Result is a tagged Cancelled-or-Value outcome of one interactive read.
type Result[T any] struct {
	Cancelled bool
	Value     T
}

// Of wraps a value in a non-cancelled Result.
func Of[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Cancelled builds a cancelled Result.
func Cancelled[T any]() Result[T] {
	return Result[T]{Cancelled: true}
}

// Confirm asks a yes/no question. Aborting the prompt yields a
// cancelled Result, and any unexpected prompt failure is treated the
// same way: do nothing further.
func Confirm(title, description string) Result[bool] {
	var answer bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Value(&answer).
		Run()
	if err != nil {
		if !goerrors.Is(err, huh.ErrUserAborted) {
			logger := logging.GetLogger("prompt")
			logger.Debug().Err(err).Msg("Prompt failed, treating as cancelled")
		}
		return Cancelled[bool]()
	}
	return Of(answer)
}
