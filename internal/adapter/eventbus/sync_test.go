package eventbus

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
)

// TestNewSyncEventBus tests event bus creation.
func TestNewSyncEventBus(t *testing.T) {
	bus := NewSyncEventBus()

	if bus == nil {
		t.Fatal("NewSyncEventBus returned nil")
	}

	if bus.SubscriberCount() != 0 {
		t.Errorf("Expected 0 subscribers, got %d", bus.SubscriberCount())
	}

	if bus.closed {
		t.Error("New event bus should not be closed")
	}
}

// TestPublishSubscribe tests basic publish/subscribe functionality.
func TestPublishSubscribe(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var received domain.Event
	var callCount int

	subID := bus.Subscribe(domain.EventCommandRegistered, func(event domain.Event) {
		received = event
		callCount++
	})
	if subID == "" {
		t.Fatal("Subscribe returned empty subscription ID")
	}

	bus.Publish(domain.NewCommandRegisteredEvent(domain.CommandAbout, "About"))

	if callCount != 1 {
		t.Fatalf("Expected handler to be called once, got %d", callCount)
	}

	event, ok := received.(domain.CommandRegisteredEvent)
	if !ok {
		t.Fatalf("Expected CommandRegisteredEvent, got %T", received)
	}
	if event.CommandID != domain.CommandAbout {
		t.Errorf("Expected command id %s, got %s", domain.CommandAbout, event.CommandID)
	}
	if event.Timestamp().IsZero() {
		t.Error("Expected event timestamp to be set")
	}
}

// TestPublishOnlyMatchingType checks that handlers see only their event type.
func TestPublishOnlyMatchingType(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var shown, closed int32
	bus.Subscribe(domain.EventDialogShown, func(domain.Event) { atomic.AddInt32(&shown, 1) })
	bus.Subscribe(domain.EventDialogClosed, func(domain.Event) { atomic.AddInt32(&closed, 1) })

	bus.Publish(domain.NewDialogShownEvent(1))
	bus.Publish(domain.NewDialogShownEvent(1))
	bus.Publish(domain.NewDialogClosedEvent(domain.DialogResult{}))

	if shown != 2 || closed != 1 {
		t.Errorf("Expected 2 shown and 1 closed, got %d and %d", shown, closed)
	}
}

// TestDeliveryOrder tests that handlers run in subscription order, wildcards last.
func TestDeliveryOrder(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var order []string
	bus.SubscribeAll(func(domain.Event) { order = append(order, "all") })
	bus.Subscribe(domain.EventCommandExecuted, func(domain.Event) { order = append(order, "first") })
	bus.Subscribe(domain.EventCommandExecuted, func(domain.Event) { order = append(order, "second") })

	bus.Publish(domain.NewCommandExecutedEvent(domain.CommandAbout))

	want := []string{"first", "second", "all"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

// TestUnsubscribe tests unsubscribing handlers.
func TestUnsubscribe(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var callCount int32
	subID := bus.Subscribe(domain.EventCommandExecuted, func(domain.Event) {
		atomic.AddInt32(&callCount, 1)
	})

	bus.Publish(domain.NewCommandExecutedEvent(domain.CommandAbout))
	bus.Unsubscribe(subID)
	bus.Publish(domain.NewCommandExecutedEvent(domain.CommandAbout))

	if atomic.LoadInt32(&callCount) != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
}

// TestUnsubscribeWildcard tests removing a wildcard subscription.
func TestUnsubscribeWildcard(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	id := bus.SubscribeAll(func(domain.Event) {})
	if !bus.HasSubscribers(domain.EventDialogShown) {
		t.Fatal("Expected wildcard subscriber")
	}

	bus.Unsubscribe(id)
	if bus.HasSubscribers(domain.EventDialogShown) {
		t.Error("Expected no subscribers after unsubscribe")
	}
}

// TestUnsubscribeInvalidID tests unsubscribing with invalid ID (should be no-op).
func TestUnsubscribeInvalidID(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	bus.Subscribe(domain.EventDialogShown, func(domain.Event) {})
	bus.Unsubscribe("invalid-id")
	bus.Unsubscribe("")

	if bus.SubscriberCount() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", bus.SubscriberCount())
	}
}

// TestHasSubscribers tests the HasSubscribers method.
func TestHasSubscribers(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	if bus.HasSubscribers(domain.EventPaletteItemAdded) {
		t.Error("Expected no subscribers initially")
	}

	bus.Subscribe(domain.EventPaletteItemAdded, func(domain.Event) {})

	if !bus.HasSubscribers(domain.EventPaletteItemAdded) {
		t.Error("Expected subscribers after subscription")
	}
	if bus.HasSubscribers(domain.EventPluginActivated) {
		t.Error("Expected no subscribers for different event type")
	}
}

// TestHandlerPanic tests that panicking handlers don't crash the bus.
func TestHandlerPanic(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var callCount int32
	bus.Subscribe(domain.EventDialogClosed, func(domain.Event) { panic("test panic") })
	bus.Subscribe(domain.EventDialogClosed, func(domain.Event) { atomic.AddInt32(&callCount, 1) })

	bus.Publish(domain.NewDialogClosedEvent(domain.DialogResult{}))

	if atomic.LoadInt32(&callCount) != 1 {
		t.Errorf("Expected normal handler to be called despite panic, got %d calls", callCount)
	}
}

// TestHandlerMayPublish tests re-entrant publishing from inside a handler.
func TestHandlerMayPublish(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var closed int32
	bus.Subscribe(domain.EventDialogClosed, func(domain.Event) { atomic.AddInt32(&closed, 1) })
	bus.Subscribe(domain.EventDialogShown, func(domain.Event) {
		bus.Publish(domain.NewDialogClosedEvent(domain.DialogResult{}))
	})

	bus.Publish(domain.NewDialogShownEvent(1))

	if closed != 1 {
		t.Errorf("Expected nested publish to be delivered, got %d", closed)
	}
}

// TestClose tests closing the event bus.
func TestClose(t *testing.T) {
	bus := NewSyncEventBus()

	handler := func(event domain.Event) {}
	bus.Subscribe(domain.EventDialogShown, handler)
	bus.SubscribeAll(handler)

	if err := bus.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
	if bus.SubscriberCount() != 0 {
		t.Errorf("Expected 0 subscribers after close, got %d", bus.SubscriberCount())
	}

	// Publishing and subscribing after close are no-ops
	bus.Publish(domain.NewDialogShownEvent(1))
	if id := bus.Subscribe(domain.EventDialogShown, handler); id != "" {
		t.Errorf("Expected empty id from closed bus, got %q", id)
	}

	if err := bus.Close(); err == nil {
		t.Error("Expected error when closing already closed bus")
	}
}

// TestSubscribeNilHandlerPanics tests that nil handlers are rejected.
func TestSubscribeNilHandlerPanics(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil handler")
		}
	}()
	bus.Subscribe(domain.EventDialogShown, nil)
}

// TestConcurrentPublishAndSubscribe tests concurrent publishing and subscribing.
func TestConcurrentPublishAndSubscribe(t *testing.T) {
	bus := NewSyncEventBus()
	defer bus.Close()

	var eventCount int32
	bus.Subscribe(domain.EventCommandExecuted, func(domain.Event) {
		atomic.AddInt32(&eventCount, 1)
	})

	const publishers = 8
	const eventsPerPublisher = 100

	var wg sync.WaitGroup
	wg.Add(publishers * 2)
	for i := 0; i < publishers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < eventsPerPublisher; j++ {
				bus.Publish(domain.NewCommandExecutedEvent(domain.CommandAbout))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				id := bus.Subscribe(domain.EventDialogShown, func(domain.Event) {})
				bus.Unsubscribe(id)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&eventCount); got != publishers*eventsPerPublisher {
		t.Errorf("Expected %d events, got %d", publishers*eventsPerPublisher, got)
	}
	if bus.SubscriberCount() != 1 {
		t.Errorf("Expected 1 subscriber left, got %d", bus.SubscriberCount())
	}
}
