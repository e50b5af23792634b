package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Hub: hub, UserID: 1, Send: make(chan []byte, 8)}
	hub.Register(client)

	// Give the hub loop a beat to process the registration
	time.Sleep(10 * time.Millisecond)

	hub.Publish(ActivityEvent{Type: "review_created", UserID: 1, ReviewID: 42})

	select {
	case msg := <-client.Send:
		var event ActivityEvent
		require.NoError(t, json.Unmarshal(msg, &event))
		assert.Equal(t, "review_created", event.Type)
		assert.Equal(t, uint(42), event.ReviewID)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestHub_DropsSlowConsumer(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Unbuffered channel with no reader: the first broadcast cannot be
	// delivered and the client is dropped.
	slow := &Client{Hub: hub, UserID: 2, Send: make(chan []byte)}
	hub.Register(slow)
	time.Sleep(10 * time.Millisecond)

	hub.Publish(ActivityEvent{Type: "comment_created", UserID: 3})
	time.Sleep(10 * time.Millisecond)

	// A closed Send channel marks the dropped client
	select {
	case _, ok := <-slow.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("client was not dropped")
	}
}
