package inspect

import (
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/tagr"
)

// Message types sent to websocket clients.
const (
	MessageList   = "list"
	MessageItem   = "item"
	MessageTree   = "tree"
	MessageResult = "result"
	MessageError  = "error"
)

// Command types accepted from websocket clients.
const (
	CommandDispatch = "dispatch"
	CommandSnapshot = "snapshot"
)

// Message is the JSON frame streamed to inspector clients.
type Message struct {
	Type string `json:"type"`

	// List and item events.
	Op         string  `json:"op,omitempty"`
	Container  string  `json:"container,omitempty"`
	Len        int     `json:"len,omitempty"`
	DurationMS float64 `json:"durationMs,omitempty"`
	ID         string  `json:"id,omitempty"`
	Index      int     `json:"index,omitempty"`
	Slot       string  `json:"slot,omitempty"`

	// Snapshot replies.
	Tree *dom.Snapshot `json:"tree,omitempty"`

	// Dispatch and error replies.
	Handled bool   `json:"handled,omitempty"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Command is a request sent by an inspector client.
//
//	{"type":"dispatch","path":[0,1],"event":"click"}
//	{"type":"dispatch","path":[0,0],"event":"input","value":"milk"}
//	{"type":"snapshot"}
type Command struct {
	Type  string `json:"type"`
	Path  []int  `json:"path,omitempty"`
	Event string `json:"event,omitempty"`
	Value string `json:"value,omitempty"`
	Key   string `json:"key,omitempty"`
}

func listMessage(ev tagr.ListEvent) Message {
	return Message{
		Type:       MessageList,
		Op:         string(ev.Op),
		Container:  ev.Container,
		Len:        ev.Len,
		DurationMS: float64(ev.Duration.Microseconds()) / 1000,
	}
}

func itemMessage(ev tagr.ItemEvent) Message {
	return Message{
		Type:      MessageItem,
		Op:        string(ev.Op),
		Container: ev.Container,
		ID:        ev.ID,
		Index:     ev.Index,
		Slot:      ev.Slot,
	}
}
