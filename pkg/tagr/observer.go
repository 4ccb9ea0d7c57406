package tagr

import (
	"context"
	"log/slog"
	"time"
)

// ListOp names a list operation reported to an Observer.
type ListOp string

const (
	OpCreated    ListOp = "created"
	OpAppend     ListOp = "append"
	OpPrepend    ListOp = "prepend"
	OpInsert     ListOp = "insert"
	OpRemoveAt   ListOp = "removeAt"
	OpRemoveNode ListOp = "removeNode"
	OpClear      ListOp = "clear"
	OpRebuild    ListOp = "rebuild"
	OpSetValues  ListOp = "setValues"
	OpSetItem    ListOp = "setItem"
)

// ItemOp names an item lifecycle step reported to an Observer.
type ItemOp string

const (
	ItemCreated            ItemOp = "created"
	ItemHookCreated        ItemOp = "hookItemCreated"
	ItemAttributesAssigned ItemOp = "attributesAssigned"
	ItemUpdated            ItemOp = "updated"
	ItemSlotUpdated        ItemOp = "slotUpdated"
)

// ListEvent is reported once per list definition after an operation has
// edited its container.
type ListEvent struct {
	Op        ListOp
	Container string
	Len       int
	Start     time.Time
	Duration  time.Duration
}

// ItemEvent is reported for each item built or updated.
type ItemEvent struct {
	Op        ItemOp
	Container string
	ID        string
	Index     int
	Slot      string
}

// Observer receives list and item events. Implementations are called
// synchronously from the mutating goroutine and must not mutate the list.
type Observer interface {
	ListChanged(ListEvent)
	ItemChanged(ItemEvent)
}

// Observers fans events out to several observers in order.
type Observers []Observer

// ListChanged implements Observer.
func (o Observers) ListChanged(ev ListEvent) {
	for _, obs := range o {
		if obs != nil {
			obs.ListChanged(ev)
		}
	}
}

// ItemChanged implements Observer.
func (o Observers) ItemChanged(ev ItemEvent) {
	for _, obs := range o {
		if obs != nil {
			obs.ItemChanged(ev)
		}
	}
}

type logObserver struct {
	logger *slog.Logger
	level  slog.Level
}

// LogObserver returns an Observer writing every event to logger at Debug
// level.
func LogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &logObserver{logger: logger, level: slog.LevelDebug}
}

func (o *logObserver) ListChanged(ev ListEvent) {
	o.logger.Log(context.Background(), o.level, "list "+string(ev.Op),
		"container", ev.Container,
		"len", ev.Len,
		"duration", ev.Duration,
	)
}

func (o *logObserver) ItemChanged(ev ItemEvent) {
	attrs := []any{
		"container", ev.Container,
		"id", ev.ID,
		"index", ev.Index,
	}
	if ev.Slot != "" {
		attrs = append(attrs, "slot", ev.Slot)
	}
	o.logger.Log(context.Background(), o.level, "item "+string(ev.Op), attrs...)
}
