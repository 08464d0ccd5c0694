package service

import (
	"sync"

	"github.com/MKhiriev/go-note-keeper/models"
)

// EventBroker manages subscribers of note lifecycle events. It backs the
// live list views: the HTTP layer streams events to clients, which reload
// the affected partition instead of polling.
type EventBroker struct {
	subscribers map[chan models.NoteEvent]bool
	mu          sync.RWMutex
}

// NewEventBroker creates an empty broker.
func NewEventBroker() *EventBroker {
	return &EventBroker{
		subscribers: make(map[chan models.NoteEvent]bool),
	}
}

// Subscribe registers a new subscriber and returns its event channel.
func (b *EventBroker) Subscribe() chan models.NoteEvent {
	ch := make(chan models.NoteEvent, 10) // buffered to absorb bursts
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[ch] = true
	return ch
}

// Unsubscribe removes a subscriber and closes its channel. Unsubscribing a
// channel that is not registered is a no-op.
func (b *EventBroker) Unsubscribe(ch chan models.NoteEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		close(ch)
		delete(b.subscribers, ch)
	}
}

// Publish delivers an event to every subscriber. A subscriber whose channel
// is full is skipped rather than blocking the mutation path.
func (b *EventBroker) Publish(event models.NoteEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// slow subscriber, drop the event
		}
	}
}
