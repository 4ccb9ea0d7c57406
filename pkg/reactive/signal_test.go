package reactive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testListener is a simple Listener implementation for testing.
type testListener struct {
	id         uint64
	dirtyCount int
}

func newTestListener() *testListener {
	return &testListener{id: NextID()}
}

func (l *testListener) MarkDirty() { l.dirtyCount++ }

func (l *testListener) ID() uint64 { return l.id }

func TestSignalBasic(t *testing.T) {
	count := NewSignal(0)

	if count.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Get())
	}

	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("expected value 5, got %d", count.Get())
	}

	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Errorf("expected value 10, got %d", count.Get())
	}
}

func TestSignalApplyVariants(t *testing.T) {
	s := NewSignal("a")

	s.Apply(Direct("b"))
	if s.Peek() != "b" {
		t.Errorf("expected b, got %q", s.Peek())
	}

	s.Apply(Derive(func(v string) string { return v + "c" }))
	if s.Peek() != "bc" {
		t.Errorf("expected bc, got %q", s.Peek())
	}

	if Direct(1).IsDerive() {
		t.Error("Direct must not report IsDerive")
	}
	if !Derive(func(n int) int { return n }).IsDerive() {
		t.Error("Derive must report IsDerive")
	}
}

func TestSignalEmitsInSubscriptionOrder(t *testing.T) {
	s := NewSignal(0)
	var order []string

	s.Subscribe(func(v int) { order = append(order, "first") })
	s.Subscribe(func(v int) { order = append(order, "second") })
	s.Subscribe(func(v int) { order = append(order, "third") })

	s.Set(1)

	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("subscriber order mismatch (-want +got):\n%s", diff)
	}
}

func TestSignalEmitsOncePerSetEvenWhenEqual(t *testing.T) {
	s := NewSignal(1)
	calls := 0
	s.Subscribe(func(int) { calls++ })

	s.Set(1)
	s.Set(1)

	if calls != 2 {
		t.Errorf("expected 2 emissions, got %d", calls)
	}
}

func TestSignalSubscriberSeesNewValue(t *testing.T) {
	s := NewSignal(0)
	var seen, stored int
	s.Subscribe(func(v int) {
		seen = v
		stored = s.Peek()
	})

	s.Update(func(n int) int { return n + 7 })

	if seen != 7 || stored != 7 {
		t.Errorf("expected subscriber to see 7/7, got %d/%d", seen, stored)
	}
}

func TestSubscriptionCancel(t *testing.T) {
	s := NewSignal(0)
	var a, b int
	subA := s.Subscribe(func(int) { a++ })
	s.Subscribe(func(int) { b++ })

	s.Set(1)
	subA.Cancel()
	subA.Cancel()
	s.Set(2)

	if a != 1 {
		t.Errorf("cancelled subscriber expected 1 call, got %d", a)
	}
	if b != 2 {
		t.Errorf("remaining subscriber expected 2 calls, got %d", b)
	}
	if s.Subscribers() != 1 {
		t.Errorf("expected 1 subscriber, got %d", s.Subscribers())
	}
	if subA.Active() {
		t.Error("cancelled subscription should not be active")
	}
}

func TestSubscriptionCancelKeepsOrder(t *testing.T) {
	s := NewSignal(0)
	var order []int
	s.Subscribe(func(int) { order = append(order, 1) })
	sub := s.Subscribe(func(int) { order = append(order, 2) })
	s.Subscribe(func(int) { order = append(order, 3) })
	s.Subscribe(func(int) { order = append(order, 4) })

	sub.Cancel()
	s.Set(1)

	if diff := cmp.Diff([]int{1, 3, 4}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscribeDuringEmitFiresNextTime(t *testing.T) {
	s := NewSignal(0)
	late := 0
	s.Subscribe(func(int) {
		if late == 0 {
			s.Subscribe(func(int) { late++ })
		}
	})

	s.Set(1)
	if late != 0 {
		t.Errorf("subscriber added during emit should not fire in the same emit, got %d", late)
	}

	s.Set(2)
	if late != 1 {
		t.Errorf("expected late subscriber to fire once, got %d", late)
	}
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	count := NewSignal(42)
	listener := newTestListener()

	WithListener(listener, func() {
		if v := count.Peek(); v != 42 {
			t.Errorf("expected 42, got %d", v)
		}
	})

	count.Set(100)
	if listener.dirtyCount != 0 {
		t.Errorf("Peek should not subscribe listener, got %d notifications", listener.dirtyCount)
	}
}

func TestSignalDeduplicateSubscription(t *testing.T) {
	count := NewSignal(0)
	listener := newTestListener()

	WithListener(listener, func() {
		_ = count.Get()
		_ = count.Get()
		_ = count.Get()
	})

	count.Set(1)
	if listener.dirtyCount != 1 {
		t.Errorf("expected 1 notification (deduplicated), got %d", listener.dirtyCount)
	}
	if count.Subscribers() != 1 {
		t.Errorf("expected 1 subscriber, got %d", count.Subscribers())
	}
}

func TestSignalNoTrackingOutsideContext(t *testing.T) {
	count := NewSignal(0)
	listener := newTestListener()

	_ = count.Get()
	WithListener(listener, func() {})

	count.Set(1)
	if listener.dirtyCount != 0 {
		t.Errorf("expected 0 notifications when not tracking, got %d", listener.dirtyCount)
	}
}

func TestUntrackedSuspendsTracking(t *testing.T) {
	count := NewSignal(0)
	listener := newTestListener()

	WithListener(listener, func() {
		Untracked(func() {
			_ = count.Get()
		})
	})

	count.Set(1)
	if listener.dirtyCount != 0 {
		t.Errorf("expected 0 notifications for untracked read, got %d", listener.dirtyCount)
	}
}

func TestSeparateTrackers(t *testing.T) {
	tr := NewTracker()
	s := NewSignal(0, WithTracker(tr))
	listener := newTestListener()

	// The default tracker is not the one s consults.
	WithListener(listener, func() { _ = s.Get() })
	s.Set(1)
	if listener.dirtyCount != 0 {
		t.Errorf("expected no subscription through the default tracker, got %d", listener.dirtyCount)
	}

	tr.WithListener(listener, func() { _ = s.Get() })
	s.Set(2)
	if listener.dirtyCount != 1 {
		t.Errorf("expected 1 notification through its own tracker, got %d", listener.dirtyCount)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"bools", true, true, true},
		{"mixed types", 1, "1", false},
		{"nil", nil, nil, true},
		{"nil and value", nil, 0, false},
		{"slices", []int{1, 2}, []int{1, 2}, true},
		{"maps", map[string]any{"a": 1}, map[string]any{"a": 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
