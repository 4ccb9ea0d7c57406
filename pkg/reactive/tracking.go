package reactive

// Listener is anything that can be notified when a signal it read changes.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	// Effects re-run synchronously.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Signals use it to subscribe a listener at most once.
	ID() uint64
}

// sourceTracker is implemented by listeners that keep the subscriptions
// created on their behalf so they can cancel them later.
type sourceTracker interface {
	addSource(sub *Subscription)
}

// Tracker holds the stack of listeners currently collecting dependencies.
// The top of the stack is the listener a Signal.Get subscribes.
type Tracker struct {
	stack []Listener
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

var defaultTracker = NewTracker()

// DefaultTracker returns the process-wide Tracker used by signals and effects
// created without WithTracker.
func DefaultTracker() *Tracker {
	return defaultTracker
}

// Current returns the listener at the top of the stack, or nil when reads are
// not being tracked.
func (t *Tracker) Current() Listener {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// Depth returns the number of nested tracked runs in progress.
func (t *Tracker) Depth() int {
	return len(t.stack)
}

func (t *Tracker) push(l Listener) {
	t.stack = append(t.stack, l)
}

func (t *Tracker) pop() {
	t.stack[len(t.stack)-1] = nil
	t.stack = t.stack[:len(t.stack)-1]
}

// WithListener runs fn with l as the current listener and restores the
// previous one afterwards, even if fn panics.
func (t *Tracker) WithListener(l Listener, fn func()) {
	t.push(l)
	defer t.pop()
	fn()
}

// Untracked runs fn with tracking suspended: signal reads inside fn do not
// subscribe the enclosing listener.
func (t *Tracker) Untracked(fn func()) {
	t.WithListener(nil, fn)
}

// WithListener runs fn on the default Tracker with l as the current listener.
func WithListener(l Listener, fn func()) {
	defaultTracker.WithListener(l, fn)
}

// Untracked runs fn on the default Tracker with tracking suspended.
func Untracked(fn func()) {
	defaultTracker.Untracked(fn)
}

// Option configures a Signal or an Effect.
type Option func(*options)

type options struct {
	tracker *Tracker
}

// WithTracker binds a Signal or Effect to t instead of the default Tracker.
func WithTracker(t *Tracker) Option {
	return func(o *options) {
		o.tracker = t
	}
}

func applyOptions(opts []Option) options {
	o := options{tracker: defaultTracker}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracker == nil {
		o.tracker = defaultTracker
	}
	return o
}
