// Package ports define interfaces for dependency inversion.
// Plugins talk to the shell only through these interfaces, so any host can provide them.
package ports

import (
	"context"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
)

// CommandRegistry holds the named, invokable actions of the shell.
//
// Thread-safety: Implementations must be thread-safe.
type CommandRegistry interface {
	// AddCommand registers a command under id.
	//
	// Returns domain.ErrDuplicateCommand if id is taken and domain.ErrInvalidCommand
	// for an empty id or a nil execute function.
	AddCommand(id string, opts domain.CommandOptions) (domain.Disposable, error)

	// HasCommand reports whether id is registered.
	HasCommand(id string) bool

	// Label returns the label of a registered command, or "" if id is unknown.
	Label(id string) string

	// ListCommands returns all registered ids in sorted order.
	ListCommands() []string

	// Execute runs the command registered under id.
	// Returns domain.ErrUnknownCommand if nothing is registered under id.
	Execute(ctx context.Context, id string) (domain.Pending, error)
}

// Palette is a searchable menu of commands grouped by category.
//
// Thread-safety: Implementations must be thread-safe.
type Palette interface {
	// AddItem adds a palette entry pointing at a command.
	//
	// Returns domain.ErrInvalidPaletteItem if the item does not name a command.
	AddItem(item domain.PaletteItem) (domain.Disposable, error)
}
