package inspect

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Loop owns a host document and everything bound to it. Nodes, cells and
// lists are single-goroutine values; HTTP handlers and websocket readers
// reach them only through Do.
type Loop struct {
	calls  chan func()
	done   chan struct{}
	once   sync.Once
	logger *slog.Logger
}

// NewLoop creates a stopped loop. Call Run to start processing.
func NewLoop(logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		calls:  make(chan func()),
		done:   make(chan struct{}),
		logger: logger.With("component", "inspect.loop"),
	}
}

// Run processes calls until ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	defer l.Stop()
	for {
		select {
		case fn := <-l.calls:
			l.execute(fn)
		case <-ctx.Done():
			return
		case <-l.done:
			return
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	call := func() {
		defer close(finished)
		fn()
	}

	select {
	case l.calls <- call:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop ends Run. Pending and future Do calls return ErrLoopStopped.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// execute runs a call, recovering panics so one bad handler does not take
// the inspector down.
func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("loop panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}
