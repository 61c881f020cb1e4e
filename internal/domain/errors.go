// Package domain defines domain-specific errors.
// These errors are returned by the shell adapters and are independent of Fyne.
package domain

import (
	"errors"
	"fmt"
)

// Common errors that adapters can return.
var (
	// ErrDuplicateCommand is returned when a command id is registered twice.
	ErrDuplicateCommand = errors.New("command already registered")

	// ErrUnknownCommand is returned when executing or looking up an id nobody registered.
	ErrUnknownCommand = errors.New("command not registered")

	// ErrInvalidCommand is returned for an empty command id or a nil execute function.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrRegistryClosed is returned when the registry is used after Close.
	ErrRegistryClosed = errors.New("command registry closed")

	// ErrInvalidPaletteItem is returned when a palette item does not name a command.
	ErrInvalidPaletteItem = errors.New("invalid palette item")

	// ErrUnknownLocale is returned when no translation catalog matches a locale.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrNoParentWindow is returned when a dialog is requested before a window exists.
	ErrNoParentWindow = errors.New("no parent window for dialog")

	// ErrMissingRequirement is returned when a plugin requires a service the shell does not offer.
	ErrMissingRequirement = errors.New("plugin requirement not available")
)

// CommandError represents a failure of a command registry operation.
type CommandError struct {
	Op  string // Operation that failed (e.g., "add", "execute")
	ID  string // Command id
	Err error  // Underlying error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s %q: %v", e.Op, e.ID, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(op, id string, err error) *CommandError {
	return &CommandError{
		Op:  op,
		ID:  id,
		Err: err,
	}
}
