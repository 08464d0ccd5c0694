package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

func TestEventBroker_PublishReachesAllSubscribers(t *testing.T) {
	broker := NewEventBroker()

	first := broker.Subscribe()
	second := broker.Subscribe()

	event := models.NoteEvent{Kind: models.NoteCreated, Note: models.Note{ID: "note-1"}}
	broker.Publish(event)

	assert.Equal(t, event, <-first)
	assert.Equal(t, event, <-second)
}

func TestEventBroker_UnsubscribeClosesChannel(t *testing.T) {
	broker := NewEventBroker()

	ch := broker.Subscribe()
	broker.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// unsubscribing twice must not panic
	require.NotPanics(t, func() { broker.Unsubscribe(ch) })
}

func TestEventBroker_UnsubscribedChannelReceivesNothing(t *testing.T) {
	broker := NewEventBroker()

	gone := broker.Subscribe()
	stays := broker.Subscribe()
	broker.Unsubscribe(gone)

	broker.Publish(models.NoteEvent{Kind: models.NoteCreated})

	assert.Len(t, stays, 1)
	_, open := <-gone
	assert.False(t, open)
}

func TestEventBroker_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	broker := NewEventBroker()

	slow := broker.Subscribe()

	// fill the buffer and one more; the extra event is dropped
	for range cap(slow) + 1 {
		broker.Publish(models.NoteEvent{Kind: models.NoteCreated})
	}

	assert.Len(t, slow, cap(slow))
}
