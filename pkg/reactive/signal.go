package reactive

// Subscription is the handle returned by Signal.Subscribe.
type Subscription struct {
	cancel func()
}

// Cancel removes the subscriber. It is safe to call more than once and on a
// nil Subscription.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

// Active reports whether the subscription has not been cancelled.
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Signal is a mutable value holder. Reading it with Get inside a tracked run
// subscribes the running listener; every write notifies all subscribers
// synchronously, in subscription order, before returning.
type Signal[T any] struct {
	id      uint64
	value   T
	subs    []subscriber[T]
	tracker *Tracker

	// listeners maps a tracked listener's ID to the subscription made for it.
	listeners map[uint64]*Subscription
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T, opts ...Option) *Signal[T] {
	o := applyOptions(opts)
	return &Signal[T]{
		id:      NextID(),
		value:   initial,
		tracker: o.tracker,
	}
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Get returns the current value and subscribes the current listener, if any.
func (s *Signal[T]) Get() T {
	if l := s.tracker.Current(); l != nil {
		s.track(l)
	}
	return s.value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set replaces the value and notifies subscribers.
func (s *Signal[T]) Set(v T) {
	s.Apply(Direct(v))
}

// Update replaces the value with fn(current) and notifies subscribers.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Apply(Derive(fn))
}

// Apply resolves u against the current value, stores the result and emits.
// There is no equality check: every call emits exactly once.
func (s *Signal[T]) Apply(u Update[T]) {
	s.value = u.Resolve(s.value)
	s.emit()
}

// Subscribe appends fn to the subscriber list. fn is called with the new value
// after every write until the returned Subscription is cancelled.
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	return s.subscribe(fn, nil)
}

// Subscribers returns the number of active subscribers.
func (s *Signal[T]) Subscribers() int {
	return len(s.subs)
}

func (s *Signal[T]) subscribe(fn func(T), onCancel func()) *Subscription {
	id := NextID()
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return &Subscription{cancel: func() {
		s.remove(id)
		if onCancel != nil {
			onCancel()
		}
	}}
}

// remove deletes a subscriber while keeping the order of the others.
func (s *Signal[T]) remove(id uint64) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// track subscribes l once. Listeners that keep their sources are handed the
// subscription so they can cancel it on dispose.
func (s *Signal[T]) track(l Listener) {
	lid := l.ID()
	if _, ok := s.listeners[lid]; ok {
		return
	}
	if s.listeners == nil {
		s.listeners = make(map[uint64]*Subscription)
	}
	sub := s.subscribe(func(T) { l.MarkDirty() }, func() {
		delete(s.listeners, lid)
	})
	s.listeners[lid] = sub
	if st, ok := l.(sourceTracker); ok {
		st.addSource(sub)
	}
}

// emit calls the subscribers present when the write happened. Subscribers
// added during emission are first called on the next write.
func (s *Signal[T]) emit() {
	if len(s.subs) == 0 {
		return
	}
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	value := s.value
	for _, sub := range subs {
		sub.fn(value)
	}
}
