package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrUserAborted is returned when the user aborts an interactive prompt
var ErrUserAborted = errors.New("user aborted")

// NormalizeAbort converts huh.ErrUserAborted (Esc/Ctrl+C), io.EOF (Ctrl+D or
// closed stdin) and context.Canceled to ErrUserAborted
func NormalizeAbort(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) {
		return ErrUserAborted
	}
	return err
}

// IsAbort returns true if the error represents a user abort
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
