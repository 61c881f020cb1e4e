// Package fyne provides Fyne UI adapter implementations.
// This package implements the UI layer of the shell using the Fyne toolkit.
package fyne

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tejashwikalptaru/helpabout/internal/adapter/palette"
	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// ShellView defines the interface for UI updates.
// The actual UI implementation (MainWindow) must implement this interface.
type ShellView interface {
	// SetMenu replaces the main menu.
	SetMenu(sections []MenuSection)

	// ShowNotification displays a system notification.
	ShowNotification(title, message string)
}

// MenuEntry is a command as shown in a menu or the palette window.
type MenuEntry struct {
	Command string
	Label   string
}

// MenuSection is one top-level menu.
type MenuSection struct {
	Title string
	Items []MenuEntry
}

// Presenter implements the Presenter pattern (MVP architecture).
// It turns registry and palette contents into menus and runs the commands the
// user picks.
//
// Responsibilities:
// - Rebuild the menu when commands or palette items change
// - Execute selected commands through the registry
// - Report failed commands to the view
//
// Thread-safety: All operations are thread-safe.
type Presenter struct {
	logger   *slog.Logger
	commands ports.CommandRegistry
	palette  *palette.Palette
	trans    ports.TranslationBundle
	bus      ports.EventBus
	view     ShellView

	subscriptions []domain.SubscriptionID

	// Goroutines waiting on pending command results
	waiters sync.WaitGroup
	done    chan struct{}

	mu           sync.Mutex
	shutdown     bool
	shutdownOnce sync.Once
}

// NewPresenter creates a new presenter. The view is not touched until the
// first change event; callers build the initial menu from MenuSections.
func NewPresenter(
	logger *slog.Logger,
	commands ports.CommandRegistry,
	pal *palette.Palette,
	trans ports.TranslationBundle,
	bus ports.EventBus,
	view ShellView,
) *Presenter {
	p := &Presenter{
		logger:   logger,
		commands: commands,
		palette:  pal,
		trans:    trans,
		bus:      bus,
		view:     view,
		done:     make(chan struct{}),
	}

	p.subscribeToEvents()
	return p
}

func (p *Presenter) subscribeToEvents() {
	for _, eventType := range []domain.EventType{
		domain.EventCommandRegistered,
		domain.EventCommandDisposed,
		domain.EventPaletteItemAdded,
		domain.EventPaletteItemRemoved,
	} {
		p.subscriptions = append(p.subscriptions, p.bus.Subscribe(eventType, p.onMenuChanged))
	}
}

func (p *Presenter) onMenuChanged(domain.Event) {
	p.view.SetMenu(p.MenuSections())
}

// MenuSections groups palette entries by category, in palette order. Registered
// commands that have no palette entry are collected in a trailing "Other" section.
// Palette entries for commands that are not registered are left out.
func (p *Presenter) MenuSections() []MenuSection {
	var sections []MenuSection
	index := make(map[string]int)
	listed := make(map[string]bool)

	for _, entry := range p.palette.Items() {
		if !p.commands.HasCommand(entry.Command) {
			continue
		}
		i, ok := index[entry.Category]
		if !ok {
			i = len(sections)
			index[entry.Category] = i
			sections = append(sections, MenuSection{Title: entry.Category})
		}
		sections[i].Items = append(sections[i].Items, MenuEntry{Command: entry.Command, Label: entry.Label})
		listed[entry.Command] = true
	}

	var other []MenuEntry
	for _, id := range p.commands.ListCommands() {
		if !listed[id] {
			other = append(other, MenuEntry{Command: id, Label: p.label(id)})
		}
	}
	if len(other) > 0 {
		sections = append(sections, MenuSection{Title: p.trans.Gettext("Other"), Items: other})
	}
	return sections
}

// Search returns the registered commands whose palette entry matches query.
func (p *Presenter) Search(query string) []MenuEntry {
	var entries []MenuEntry
	for _, entry := range p.palette.Search(query) {
		if p.commands.HasCommand(entry.Command) {
			entries = append(entries, MenuEntry{Command: entry.Command, Label: p.label(entry.Command)})
		}
	}
	return entries
}

// HasCommand reports whether id can currently be executed.
func (p *Presenter) HasCommand(id string) bool {
	return p.commands.HasCommand(id)
}

func (p *Presenter) label(id string) string {
	if label := p.commands.Label(id); label != "" {
		return label
	}
	return id
}

// OnCommandSelected executes id. Failures, immediate or eventual, are shown as
// notifications. It never blocks on the command's result.
func (p *Presenter) OnCommandSelected(id string) {
	pending, err := p.commands.Execute(context.Background(), id)
	if err != nil {
		p.reportFailure(id, err)
		return
	}

	select {
	case result, ok := <-pending:
		if ok && result.Err != nil {
			p.reportFailure(id, result.Err)
		}
		return
	default:
	}

	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		return
	}
	p.waiters.Add(1)
	p.mu.Unlock()

	go p.await(id, pending)
}

func (p *Presenter) await(id string, pending domain.Pending) {
	defer p.waiters.Done()

	select {
	case result, ok := <-pending:
		if !ok {
			return
		}
		if result.Err != nil {
			p.reportFailure(id, result.Err)
			return
		}
		p.logger.Debug("command resolved", slog.String("command", id), slog.Any("value", result.Value))
	case <-p.done:
	}
}

func (p *Presenter) reportFailure(id string, err error) {
	p.logger.Error("command failed", slog.String("command", id), slog.Any("error", err))
	p.view.ShowNotification(p.trans.Gettext("Command failed"), err.Error())
}

// Shutdown drops event subscriptions and stops waiting on pending results.
// It's safe to call multiple times (idempotent).
func (p *Presenter) Shutdown() {
	p.shutdownOnce.Do(func() {
		for _, sub := range p.subscriptions {
			p.bus.Unsubscribe(sub)
		}
		p.subscriptions = nil

		p.mu.Lock()
		p.shutdown = true
		p.mu.Unlock()

		close(p.done)
		p.waiters.Wait()
	})
}
