package tagr

import (
	"fmt"

	"github.com/tagr-dev/tagr/pkg/attr"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/reactive"
)

// Spec describes one binding created by Value.Bind.
type Spec[T any] struct {
	// Tag is the element to create. Ignored when Node is set. When both are
	// empty a text node holding the rendered value is created.
	Tag string

	// Node is an existing node to decorate instead of creating one.
	Node dom.Node

	// Property, when set, receives the rendered value instead of the node
	// content. Boolean values toggle the property and the attribute of the
	// same name, which suits "checked", "disabled" and the like.
	Property string

	// Projection derives the rendered value from the cell value.
	Projection Projection[T]

	// Attrs are applied once when the binding is created.
	Attrs attr.Set

	// Container marks this binding alone as hosting child nodes, like
	// SetAsContainer does for every binding of the cell.
	Container bool
}

// binding records where a Value renders.
type binding[T any] struct {
	node       dom.Node
	projection Projection[T]
	property   string
	container  bool
}

// Value is a mutable cell rendered into any number of host nodes. Every
// write re-renders all of them.
//
//	count := tagr.NewValue(1)
//	span := count.Tag("span")
//	count.Update(func(n int) int { return n + 1 }) // span now reads "2"
type Value[T any] struct {
	doc       dom.Document
	signal    *reactive.Signal[T]
	bindings  []*binding[T]
	container bool
}

// NewValue creates a cell holding initial.
func NewValue[T any](initial T, opts ...Option) *Value[T] {
	o := applyOptions(opts)
	return &Value[T]{
		doc:    o.doc,
		signal: reactive.NewSignal(initial, reactive.WithTracker(o.tracker)),
	}
}

// Bind materializes or decorates a node according to spec, renders the
// current value into it and keeps it in sync from then on.
func (v *Value[T]) Bind(spec Spec[T]) dom.Node {
	b := &binding[T]{
		projection: spec.Projection,
		property:   spec.Property,
		container:  spec.Container,
	}
	switch {
	case dom.IsNode(spec.Node):
		b.node = spec.Node
	case spec.Tag != "":
		b.node = v.doc.CreateElement(spec.Tag)
	default:
		b.node = v.doc.CreateTextNode(toText(v.rendered(b)))
	}

	attr.Apply(spec.Attrs, b.node)
	v.render(b)
	v.bindings = append(v.bindings, b)
	return b.node
}

// Tag binds a new element with the given tag.
func (v *Value[T]) Tag(tag string) dom.Node {
	return v.Bind(Spec[T]{Tag: tag})
}

// Text binds a new text node.
func (v *Value[T]) Text() dom.Node {
	return v.Bind(Spec[T]{})
}

// Get returns the value, subscribing the running effect if there is one.
func (v *Value[T]) Get() T {
	return v.signal.Get()
}

// Peek returns the value without subscribing.
func (v *Value[T]) Peek() T {
	return v.signal.Peek()
}

// Set stores x and re-renders every binding.
func (v *Value[T]) Set(x T) {
	v.Apply(reactive.Direct(x))
}

// Update stores fn(current) and re-renders every binding.
func (v *Value[T]) Update(fn func(T) T) {
	v.Apply(reactive.Derive(fn))
}

// Apply resolves u, notifies subscribers of the cell and re-renders every
// binding.
func (v *Value[T]) Apply(u reactive.Update[T]) {
	v.signal.Apply(u)
	for _, b := range v.bindings {
		v.render(b)
	}
}

// Subscribe calls fn after every write.
func (v *Value[T]) Subscribe(fn func(T)) *reactive.Subscription {
	return v.signal.Subscribe(fn)
}

// SetAttributes applies set to every bound node without re-rendering
// content. Pass attr.SkipEvents() when the set is recomputed on each change.
func (v *Value[T]) SetAttributes(set attr.Set, opts ...attr.ApplyOption) {
	for _, b := range v.bindings {
		attr.Apply(set, b.node, opts...)
	}
}

// SetAsContainer marks the cell as hosting child nodes. Writes to a
// container never replace the content of bound nodes; property bindings are
// still updated.
func (v *Value[T]) SetAsContainer(container bool) {
	v.container = container
}

// IsContainer reports whether SetAsContainer(true) was called.
func (v *Value[T]) IsContainer() bool {
	return v.container
}

// Nodes returns the bound nodes in binding order.
func (v *Value[T]) Nodes() []dom.Node {
	out := make([]dom.Node, len(v.bindings))
	for i, b := range v.bindings {
		out[i] = b.node
	}
	return out
}

// prune drops the bindings whose node fails keep.
func (v *Value[T]) prune(keep func(dom.Node) bool) {
	kept := v.bindings[:0]
	for _, b := range v.bindings {
		if keep(b.node) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(v.bindings); i++ {
		v.bindings[i] = nil
	}
	v.bindings = kept
}

func (v *Value[T]) rendered(b *binding[T]) any {
	value := v.signal.Peek()
	if b.projection != nil {
		return b.projection(value)
	}
	return value
}

func (v *Value[T]) render(b *binding[T]) {
	out := v.rendered(b)
	if b.property != "" {
		writeProperty(b.node, b.property, out)
		return
	}
	if (v.container || b.container) && b.node.Kind() == dom.KindElement {
		return
	}
	b.node.SetText(toText(out))
}

func writeProperty(n dom.Node, name string, value any) {
	if on, ok := value.(bool); ok {
		n.SetProperty(name, on)
		if on {
			n.SetAttribute(name, "")
		} else {
			n.RemoveAttribute(name)
		}
		return
	}
	n.SetProperty(name, toText(value))
}

// toText renders a value as node text. nil renders as the empty string.
func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
