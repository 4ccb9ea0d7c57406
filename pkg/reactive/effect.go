package reactive

// Effect is a function that re-runs whenever a signal it read changes.
//
// An effect runs once when created. Every run, including re-runs, is tracked:
// signals read during the run subscribe the effect, at most once per signal.
// Subscriptions are never pruned between runs, so a signal read on any past
// run keeps triggering the effect until Dispose is called.
type Effect struct {
	id      uint64
	fn      func()
	tracker *Tracker

	// sources are the subscriptions made on behalf of this effect.
	sources []*Subscription

	runs     int
	disposed bool
}

// RunEffect creates an effect for fn and runs it immediately.
//
// Example:
//
//	reactive.RunEffect(func() {
//	    remaining.Set(countOpen(todos.Values()))
//	})
func RunEffect(fn func(), opts ...Option) *Effect {
	o := applyOptions(opts)
	e := &Effect{
		id:      NextID(),
		fn:      fn,
		tracker: o.tracker,
	}
	e.run()
	return e
}

// MarkDirty re-runs the effect synchronously. Implements Listener.
func (e *Effect) MarkDirty() {
	e.run()
}

// ID returns the unique identifier for this effect. Implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

// Runs returns how many times the effect function has executed.
func (e *Effect) Runs() int {
	return e.runs
}

// Sources returns the number of live subscriptions held by the effect.
func (e *Effect) Sources() int {
	n := 0
	for _, sub := range e.sources {
		if sub.Active() {
			n++
		}
	}
	return n
}

// Disposed reports whether Dispose has been called.
func (e *Effect) Disposed() bool {
	return e.disposed
}

// Dispose cancels every subscription of the effect. The effect never runs
// again afterwards.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	for _, sub := range e.sources {
		sub.Cancel()
	}
	e.sources = nil
}

func (e *Effect) run() {
	if e.disposed {
		return
	}
	e.runs++
	e.tracker.WithListener(e, e.fn)
}

func (e *Effect) addSource(sub *Subscription) {
	e.sources = append(e.sources, sub)
}
