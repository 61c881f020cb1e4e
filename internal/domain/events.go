package domain

import (
	"time"
)

// Event is the base interface for all events in the system.
// All events must implement this interface to be published via the event bus.
type Event interface {
	// Type returns the event type identifier
	Type() EventType

	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// EventType is a string identifier for different event types.
type EventType string

// Event type constants define all possible events in the system.
const (
	// Plugin lifecycle
	EventPluginActivated EventType = "plugin.activated"

	// Command registry events
	EventCommandRegistered EventType = "command.registered"
	EventCommandDisposed   EventType = "command.disposed"
	EventCommandExecuted   EventType = "command.executed"

	// Palette events
	EventPaletteItemAdded   EventType = "palette.item_added"
	EventPaletteItemRemoved EventType = "palette.item_removed"

	// Dialog events
	EventDialogShown  EventType = "dialog.shown"
	EventDialogClosed EventType = "dialog.closed"
)

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// SubscriptionID uniquely identifies an event subscription.
type SubscriptionID string

// baseEvent provides common event functionality.
// All concrete events should embed this struct.
type baseEvent struct {
	timestamp time.Time
}

// Timestamp returns when the event occurred.
func (e baseEvent) Timestamp() time.Time {
	return e.timestamp
}

func newBaseEvent() baseEvent {
	return baseEvent{timestamp: time.Now()}
}

// PluginActivatedEvent is published after a plugin's Activate returned without error.
type PluginActivatedEvent struct {
	baseEvent
	PluginID string
}

// Type returns the event type.
func (e PluginActivatedEvent) Type() EventType { return EventPluginActivated }

// NewPluginActivatedEvent creates a new PluginActivatedEvent.
func NewPluginActivatedEvent(pluginID string) PluginActivatedEvent {
	return PluginActivatedEvent{baseEvent: newBaseEvent(), PluginID: pluginID}
}

// CommandRegisteredEvent is published when a command is added to the registry.
type CommandRegisteredEvent struct {
	baseEvent
	CommandID string
	Label     string
}

// Type returns the event type.
func (e CommandRegisteredEvent) Type() EventType { return EventCommandRegistered }

// NewCommandRegisteredEvent creates a new CommandRegisteredEvent.
func NewCommandRegisteredEvent(id, label string) CommandRegisteredEvent {
	return CommandRegisteredEvent{baseEvent: newBaseEvent(), CommandID: id, Label: label}
}

// CommandDisposedEvent is published when a registration is disposed.
type CommandDisposedEvent struct {
	baseEvent
	CommandID string
}

// Type returns the event type.
func (e CommandDisposedEvent) Type() EventType { return EventCommandDisposed }

// NewCommandDisposedEvent creates a new CommandDisposedEvent.
func NewCommandDisposedEvent(id string) CommandDisposedEvent {
	return CommandDisposedEvent{baseEvent: newBaseEvent(), CommandID: id}
}

// CommandExecutedEvent is published right after a command's execute function returned.
type CommandExecutedEvent struct {
	baseEvent
	CommandID string
}

// Type returns the event type.
func (e CommandExecutedEvent) Type() EventType { return EventCommandExecuted }

// NewCommandExecutedEvent creates a new CommandExecutedEvent.
func NewCommandExecutedEvent(id string) CommandExecutedEvent {
	return CommandExecutedEvent{baseEvent: newBaseEvent(), CommandID: id}
}

// PaletteItemAddedEvent is published when a palette entry is added.
type PaletteItemAddedEvent struct {
	baseEvent
	Item PaletteItem
}

// Type returns the event type.
func (e PaletteItemAddedEvent) Type() EventType { return EventPaletteItemAdded }

// NewPaletteItemAddedEvent creates a new PaletteItemAddedEvent.
func NewPaletteItemAddedEvent(item PaletteItem) PaletteItemAddedEvent {
	return PaletteItemAddedEvent{baseEvent: newBaseEvent(), Item: item}
}

// PaletteItemRemovedEvent is published when a palette entry is disposed.
type PaletteItemRemovedEvent struct {
	baseEvent
	Item PaletteItem
}

// Type returns the event type.
func (e PaletteItemRemovedEvent) Type() EventType { return EventPaletteItemRemoved }

// NewPaletteItemRemovedEvent creates a new PaletteItemRemovedEvent.
func NewPaletteItemRemovedEvent(item PaletteItem) PaletteItemRemovedEvent {
	return PaletteItemRemovedEvent{baseEvent: newBaseEvent(), Item: item}
}

// DialogShownEvent is published when a modal dialog is presented.
type DialogShownEvent struct {
	baseEvent
	Buttons int
}

// Type returns the event type.
func (e DialogShownEvent) Type() EventType { return EventDialogShown }

// NewDialogShownEvent creates a new DialogShownEvent.
func NewDialogShownEvent(buttons int) DialogShownEvent {
	return DialogShownEvent{baseEvent: newBaseEvent(), Buttons: buttons}
}

// DialogClosedEvent is published once a dialog has been closed.
type DialogClosedEvent struct {
	baseEvent
	Result DialogResult
}

// Type returns the event type.
func (e DialogClosedEvent) Type() EventType { return EventDialogClosed }

// NewDialogClosedEvent creates a new DialogClosedEvent.
func NewDialogClosedEvent(result DialogResult) DialogClosedEvent {
	return DialogClosedEvent{baseEvent: newBaseEvent(), Result: result}
}
