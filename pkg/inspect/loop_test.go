package inspect

import (
	"context"
	"errors"
	"testing"
	"time"
)

func startLoop(t *testing.T) *Loop {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(nil)
	go loop.Run(ctx)
	t.Cleanup(cancel)
	return loop
}

func TestLoopDo(t *testing.T) {
	loop := startLoop(t)

	n := 0
	for i := 0; i < 3; i++ {
		if err := loop.Do(context.Background(), func() { n++ }); err != nil {
			t.Fatalf("Do() error: %v", err)
		}
	}
	if n != 3 {
		t.Errorf("expected 3 calls, got %d", n)
	}
}

func TestLoopRecoversPanic(t *testing.T) {
	loop := startLoop(t)

	if err := loop.Do(context.Background(), func() { panic("boom") }); err != nil {
		t.Fatalf("Do() after panic returned %v", err)
	}

	ran := false
	if err := loop.Do(context.Background(), func() { ran = true }); err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if !ran {
		t.Error("loop should keep running after a panic")
	}
}

func TestLoopStopped(t *testing.T) {
	loop := NewLoop(nil)
	loop.Stop()
	loop.Stop()

	err := loop.Do(context.Background(), func() { t.Error("must not run") })
	if !errors.Is(err, ErrLoopStopped) {
		t.Errorf("expected ErrLoopStopped, got %v", err)
	}
	select {
	case <-loop.Done():
	default:
		t.Error("Done should be closed after Stop")
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(nil)
	finished := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(finished)
	}()

	cancel()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	err := loop.Do(context.Background(), func() {})
	if !errors.Is(err, ErrLoopStopped) {
		t.Errorf("expected ErrLoopStopped after cancel, got %v", err)
	}
}

func TestLoopDoHonorsCallerContext(t *testing.T) {
	loop := NewLoop(nil) // never started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := loop.Do(ctx, func() {}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
