// Package command provides the in-memory command registry of the shell.
package command

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// Registry implements ports.CommandRegistry.
//
// Commands are kept in a map keyed by id. Execute copies the handler out of the
// map before calling it, so handlers may add or dispose commands themselves.
type Registry struct {
	logger *slog.Logger
	bus    ports.EventBus

	mu       sync.RWMutex
	commands map[string]*entry
	closed   bool
}

type entry struct {
	opts domain.CommandOptions
}

// NewRegistry creates an empty registry. bus may be nil.
func NewRegistry(logger *slog.Logger, bus ports.EventBus) *Registry {
	return &Registry{
		logger:   logger,
		bus:      bus,
		commands: make(map[string]*entry),
	}
}

// AddCommand registers a command. The returned Disposable removes exactly this
// registration; disposing twice, or after the id was re-registered, does nothing.
func (r *Registry) AddCommand(id string, opts domain.CommandOptions) (domain.Disposable, error) {
	if id == "" || opts.Execute == nil {
		return nil, domain.NewCommandError("add", id, domain.ErrInvalidCommand)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, domain.NewCommandError("add", id, domain.ErrRegistryClosed)
	}
	if _, exists := r.commands[id]; exists {
		r.mu.Unlock()
		return nil, domain.NewCommandError("add", id, domain.ErrDuplicateCommand)
	}
	e := &entry{opts: opts}
	r.commands[id] = e
	r.mu.Unlock()

	r.logger.Debug("command registered", slog.String("command", id), slog.String("label", opts.Label))
	r.publish(domain.NewCommandRegisteredEvent(id, opts.Label))

	return domain.DisposeFunc(func() { r.remove(id, e) }), nil
}

func (r *Registry) remove(id string, e *entry) {
	r.mu.Lock()
	current, ok := r.commands[id]
	if !ok || current != e {
		r.mu.Unlock()
		return
	}
	delete(r.commands, id)
	r.mu.Unlock()

	r.logger.Debug("command disposed", slog.String("command", id))
	r.publish(domain.NewCommandDisposedEvent(id))
}

// HasCommand reports whether id is registered.
func (r *Registry) HasCommand(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.commands[id]
	return ok
}

// Label returns the label of id, or "" when id is not registered.
func (r *Registry) Label(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.commands[id]; ok {
		return e.opts.Label
	}
	return ""
}

// Caption returns the caption of id, or "" when id is not registered.
func (r *Registry) Caption(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.commands[id]; ok {
		return e.opts.Caption
	}
	return ""
}

// ListCommands returns the registered ids in sorted order.
func (r *Registry) ListCommands() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.commands))
	for id := range r.commands {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Execute runs the command registered under id and returns its pending result.
// A command that returns a nil Pending is treated as resolved with no value.
func (r *Registry) Execute(ctx context.Context, id string) (domain.Pending, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewCommandError("execute", id, err)
	}

	r.mu.RLock()
	e, ok := r.commands[id]
	closed := r.closed
	r.mu.RUnlock()

	if closed {
		return nil, domain.NewCommandError("execute", id, domain.ErrRegistryClosed)
	}
	if !ok {
		return nil, domain.NewCommandError("execute", id, domain.ErrUnknownCommand)
	}

	r.logger.Debug("executing command", slog.String("command", id))
	pending := e.opts.Execute()
	r.publish(domain.NewCommandExecutedEvent(id))

	if pending == nil {
		return domain.Resolved(nil), nil
	}
	return pending, nil
}

// Close drops all commands, publishing a disposal for each in id order.
// The registry rejects further use; closing twice does nothing.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	ids := make([]string, 0, len(r.commands))
	for id := range r.commands {
		ids = append(ids, id)
	}
	r.commands = make(map[string]*entry)
	r.mu.Unlock()

	sort.Strings(ids)
	for _, id := range ids {
		r.logger.Debug("command disposed", slog.String("command", id))
		r.publish(domain.NewCommandDisposedEvent(id))
	}
}

func (r *Registry) publish(event domain.Event) {
	if r.bus != nil {
		r.bus.Publish(event)
	}
}

var _ ports.CommandRegistry = (*Registry)(nil)
