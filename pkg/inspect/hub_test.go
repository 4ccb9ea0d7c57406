package inspect

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/tagr-dev/tagr/pkg/tagr"
)

func TestHubEncodesEvents(t *testing.T) {
	h := NewHub(nil)
	c := h.register()
	defer h.unregister(c)

	h.ListChanged(tagr.ListEvent{Op: tagr.OpAppend, Container: "todos", Len: 4, Duration: 1500 * time.Microsecond})
	h.ItemChanged(tagr.ItemEvent{Op: tagr.ItemSlotUpdated, Container: "todos", ID: "t3", Index: 2, Slot: "title"})

	var list, item Message
	json.Unmarshal(<-c.send, &list)
	json.Unmarshal(<-c.send, &item)

	if list.Type != MessageList || list.Op != "append" || list.Len != 4 || list.DurationMS != 1.5 {
		t.Errorf("unexpected list message %+v", list)
	}
	if item.Type != MessageItem || item.Op != "slotUpdated" || item.ID != "t3" || item.Index != 2 || item.Slot != "title" {
		t.Errorf("unexpected item message %+v", item)
	}
}

func TestHubDropsFramesForSlowClients(t *testing.T) {
	h := NewHub(nil)
	c := h.register()

	for i := 0; i < clientBuffer+10; i++ {
		h.Broadcast(Message{Type: MessageList})
	}
	if got := len(c.send); got != clientBuffer {
		t.Errorf("expected %d queued frames, got %d", clientBuffer, got)
	}

	h.unregister(c)
	h.deliver(c, []byte("late"))
	if h.Clients() != 0 {
		t.Errorf("expected no clients, got %d", h.Clients())
	}
}

func TestHubClose(t *testing.T) {
	h := NewHub(nil)
	a, b := h.register(), h.register()
	h.Close()

	for _, c := range []*client{a, b} {
		for range c.send {
		}
	}
	// Unregistering after Close must not close the channel twice.
	h.unregister(a)
	if h.Clients() != 0 {
		t.Errorf("expected no clients after Close, got %d", h.Clients())
	}
}
