package tagr

import (
	"log/slog"
	"strconv"

	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/reactive"
)

const (
	// DefaultItemTag is the element created for a list item when the item
	// spec names no tag.
	DefaultItemTag = "li"

	// DefaultListTag is the container element created when a list spec names
	// neither a tag nor a node.
	DefaultListTag = "ul"

	// MarkerAttribute carries a list entry's identity on its item node.
	MarkerAttribute = "data-tagr-id"

	// SlotNameAttribute carries a slot's name on its node.
	SlotNameAttribute = "data-slot-name"
)

var defaultDocument dom.Document

// SetDefaultDocument sets the Document used by cells and lists created
// without WithDocument. Browser builds set it to the page document at start.
func SetDefaultDocument(doc dom.Document) {
	defaultDocument = doc
}

// DefaultDocument returns the Document used when none is given. It is an
// in-memory document until SetDefaultDocument is called.
func DefaultDocument() dom.Document {
	if defaultDocument == nil {
		defaultDocument = dom.NewMemoryDocument()
	}
	return defaultDocument
}

// IDSource generates opaque identifiers for list entries and slots.
type IDSource interface {
	NewID() string
}

// IDFunc adapts a function to IDSource.
type IDFunc func() string

// NewID implements IDSource.
func (f IDFunc) NewID() string { return f() }

type processIDs struct{}

// NewID returns "t" followed by the next process-wide counter in base 36.
func (processIDs) NewID() string {
	return "t" + strconv.FormatUint(reactive.NextID(), 36)
}

// SequentialIDs returns an IDSource producing prefix1, prefix2, ...
// It is meant for deterministic tests and fixtures.
func SequentialIDs(prefix string) IDSource {
	n := 0
	return IDFunc(func() string {
		n++
		return prefix + strconv.Itoa(n)
	})
}

// Option configures a Value or a List.
type Option func(*options)

type options struct {
	doc      dom.Document
	tracker  *reactive.Tracker
	ids      IDSource
	observer Observer
	logger   *slog.Logger
}

// WithDocument sets the Document nodes are created in.
func WithDocument(doc dom.Document) Option {
	return func(o *options) {
		o.doc = doc
	}
}

// WithTracker binds the cell's signals to t.
func WithTracker(t *reactive.Tracker) Option {
	return func(o *options) {
		o.tracker = t
	}
}

// WithIDSource replaces the identifier source of a List.
func WithIDSource(ids IDSource) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithObserver attaches an Observer to a List.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithLogger sets the logger used for definitions with Debug enabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.doc == nil {
		o.doc = DefaultDocument()
	}
	if o.tracker == nil {
		o.tracker = reactive.DefaultTracker()
	}
	if o.ids == nil {
		o.ids = processIDs{}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
