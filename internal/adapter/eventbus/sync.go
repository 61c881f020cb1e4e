// Package eventbus provides the synchronous EventBus used by the shell.
package eventbus

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// SyncEventBus delivers events synchronously, on the publisher's goroutine,
// in subscription order. Type subscribers run before wildcard subscribers.
//
// Thread-safety: Publish, Subscribe and Unsubscribe may be called concurrently.
// Handlers run without the lock held, so they may publish or subscribe themselves.
type SyncEventBus struct {
	logger *slog.Logger

	mu       sync.RWMutex
	byType   map[domain.EventType][]subscription
	wildcard []subscription
	closed   bool

	nextID atomic.Uint64
}

type subscription struct {
	id      domain.SubscriptionID
	handler domain.EventHandler
}

// NewSyncEventBus creates an empty bus.
func NewSyncEventBus() *SyncEventBus {
	return &SyncEventBus{
		byType: make(map[domain.EventType][]subscription),
	}
}

// SetLogger sets the logger for this event bus.
// This should be called after construction before using the event bus.
func (bus *SyncEventBus) SetLogger(logger *slog.Logger) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.logger = logger
}

// Publish hands event to every matching handler. A nil event or a closed bus is a no-op.
// A panicking handler is logged and skipped; the remaining handlers still run.
func (bus *SyncEventBus) Publish(event domain.Event) {
	if event == nil {
		return
	}

	bus.mu.RLock()
	if bus.closed {
		bus.mu.RUnlock()
		return
	}
	typed := bus.byType[event.Type()]
	targets := make([]subscription, 0, len(typed)+len(bus.wildcard))
	targets = append(targets, typed...)
	targets = append(targets, bus.wildcard...)
	logger := bus.logger
	bus.mu.RUnlock()

	for _, sub := range targets {
		bus.deliver(logger, sub, event)
	}
}

func (bus *SyncEventBus) deliver(logger *slog.Logger, sub subscription, event domain.Event) {
	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Error("event handler panicked",
				slog.Any("panic", r),
				slog.String("event_type", string(event.Type())),
				slog.String("subscription", string(sub.id)))
		}
	}()
	sub.handler(event)
}

// Subscribe registers handler for one event type.
// It panics on a nil handler; subscribing to a closed bus returns an empty id.
func (bus *SyncEventBus) Subscribe(eventType domain.EventType, handler domain.EventHandler) domain.SubscriptionID {
	if handler == nil {
		panic("event handler cannot be nil")
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	if bus.closed {
		return ""
	}

	sub := subscription{id: bus.newID("sub"), handler: handler}
	bus.byType[eventType] = append(bus.byType[eventType], sub)
	return sub.id
}

// SubscribeAll registers handler for every event type.
func (bus *SyncEventBus) SubscribeAll(handler domain.EventHandler) domain.SubscriptionID {
	if handler == nil {
		panic("event handler cannot be nil")
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	if bus.closed {
		return ""
	}

	sub := subscription{id: bus.newID("sub-all"), handler: handler}
	bus.wildcard = append(bus.wildcard, sub)
	return sub.id
}

func (bus *SyncEventBus) newID(prefix string) domain.SubscriptionID {
	return domain.SubscriptionID(fmt.Sprintf("%s-%d", prefix, bus.nextID.Add(1)))
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
// Delivery order of the remaining subscriptions is preserved.
func (bus *SyncEventBus) Unsubscribe(id domain.SubscriptionID) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	for eventType, subs := range bus.byType {
		if rest, ok := without(subs, id); ok {
			bus.byType[eventType] = rest
			return
		}
	}
	if rest, ok := without(bus.wildcard, id); ok {
		bus.wildcard = rest
	}
}

func without(subs []subscription, id domain.SubscriptionID) ([]subscription, bool) {
	for i, sub := range subs {
		if sub.id == id {
			rest := make([]subscription, 0, len(subs)-1)
			rest = append(rest, subs[:i]...)
			return append(rest, subs[i+1:]...), true
		}
	}
	return subs, false
}

// HasSubscribers reports whether publishing eventType would reach any handler.
func (bus *SyncEventBus) HasSubscribers(eventType domain.EventType) bool {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.byType[eventType]) > 0 || len(bus.wildcard) > 0
}

// Close drops every subscription. Further publishes are no-ops.
//
// Returns an error if already closed.
func (bus *SyncEventBus) Close() error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	if bus.closed {
		return fmt.Errorf("event bus already closed")
	}
	bus.closed = true
	bus.byType = make(map[domain.EventType][]subscription)
	bus.wildcard = nil
	return nil
}

// SubscriberCount returns the number of live subscriptions, typed and wildcard.
func (bus *SyncEventBus) SubscriberCount() int {
	bus.mu.RLock()
	defer bus.mu.RUnlock()

	count := len(bus.wildcard)
	for _, subs := range bus.byType {
		count += len(subs)
	}
	return count
}

var _ ports.EventBus = (*SyncEventBus)(nil)
