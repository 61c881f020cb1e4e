package ports

import (
	"github.com/tejashwikalptaru/helpabout/internal/domain"
)

// EventBus is the interface for publishing and subscribing to shell events.
//
// The registry, palette and dialog service publish what they do; the application
// subscribes for logging. Producers never know who listens.
//
// Thread-safety: Implementations must be thread-safe as events may be published and
// subscribed from multiple goroutines simultaneously.
//
// Example usage:
//
//	subID := bus.Subscribe(domain.EventDialogClosed, func(event domain.Event) {
//	    e := event.(domain.DialogClosedEvent)
//	    log.Println("dialog closed with", e.Result.Button.Label)
//	})
//	defer bus.Unsubscribe(subID)
type EventBus interface {
	// Publish delivers an event to all subscribers of its type, then to wildcard subscribers.
	// Handlers must return quickly.
	Publish(event domain.Event)

	// Subscribe registers a handler for events of the specified type.
	// Each subscription gets a unique SubscriptionID.
	Subscribe(eventType domain.EventType, handler domain.EventHandler) domain.SubscriptionID

	// Unsubscribe removes a previously registered event handler.
	// If the subscription ID is invalid or already unsubscribed, this is a no-op.
	Unsubscribe(id domain.SubscriptionID)

	// SubscribeAll registers a handler that receives all events regardless of type.
	SubscribeAll(handler domain.EventHandler) domain.SubscriptionID

	// HasSubscribers returns true if anyone would receive an event of the given type.
	HasSubscribers(eventType domain.EventType) bool

	// Close shuts down the event bus and drops all subscriptions.
	Close() error
}
