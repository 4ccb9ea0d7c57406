package dom

import "reflect"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota + 1 // <div>, <li>, etc.
	KindText                    // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners installed with AddEventListener.
type Event struct {
	// Type is the lower-case event name ("click", "input", "keydown").
	Type string

	// Target is the node the event was dispatched to.
	Target Node

	// Value carries the new value for input/change events.
	Value string

	// Key carries the key name for keyboard events ("Enter").
	Key string

	// Native is the host's own event object, if any.
	Native any
}

// EventHandler receives an event and the node the listener was installed on.
type EventHandler func(ev *Event, n Node)

// Node is a host tree node. Elements and text nodes share the interface;
// child operations on a text node are no-ops.
type Node interface {
	Kind() Kind

	// Tag returns the lower-case element tag, or "" for text nodes.
	Tag() string

	// Text returns the text content: the data of a text node or the
	// concatenated text of an element's descendants.
	Text() string

	// SetText replaces the text content. On an element it replaces all
	// children with a single text node (no child when text is empty).
	SetText(text string)

	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// Property reads a host property such as "value" or "checked".
	Property(name string) (any, bool)
	SetProperty(name string, value any)

	Style(name string) string
	SetStyle(name, value string)

	AddEventListener(event string, handler EventHandler)

	Parent() Node
	Children() []Node
	AppendChild(child Node)
	PrependChild(child Node)

	// InsertBefore inserts child before ref. A nil ref, or a ref that is not
	// a child of this node, appends.
	InsertBefore(child, ref Node)

	// RemoveChild detaches child and reports whether it was a child.
	RemoveChild(child Node) bool

	ReplaceChildren(children ...Node)
}

// Document creates nodes and locates mount points.
type Document interface {
	CreateElement(tag string) Node
	CreateTextNode(text string) Node

	// QuerySelector returns the first node matching selector.
	QuerySelector(selector string) (Node, bool)
}

// Inspectable is implemented by nodes that can enumerate their state.
// Snapshot and Dump use it.
type Inspectable interface {
	AttributeNames() []string
	PropertyNames() []string
	StyleNames() []string
	ListenerTypes() []string
}

// IsNode reports whether x is a usable host node rather than a tag name or
// any other value.
func IsNode(x any) bool {
	if _, ok := x.(Node); !ok {
		return false
	}
	v := reflect.ValueOf(x)
	return v.Kind() != reflect.Pointer || !v.IsNil()
}

// ChildAt returns the child of n at index, if any.
func ChildAt(n Node, index int) (Node, bool) {
	children := n.Children()
	if index < 0 || index >= len(children) {
		return nil, false
	}
	return children[index], true
}

// IndexOf returns the position of child among n's children, or -1.
func IndexOf(n, child Node) int {
	for i, c := range n.Children() {
		if c == child {
			return i
		}
	}
	return -1
}

// Resolve follows a path of child indexes from root.
func Resolve(root Node, path []int) (Node, bool) {
	n := root
	for _, i := range path {
		c, ok := ChildAt(n, i)
		if !ok {
			return nil, false
		}
		n = c
	}
	return n, true
}
