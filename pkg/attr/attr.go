package attr

import (
	"sort"
	"strings"

	"github.com/tagr-dev/tagr/pkg/dom"
)

// StylesKey is the reserved key of a style map in FromMap input.
const StylesKey = "styles"

// EventPrefix marks listener keys in FromMap input ("onClick", "onkeydown").
const EventPrefix = "on"

// classAlias is the camel-case key accepted, in any case, for "class".
const classAlias = "classname"

// Attr is one attribute of a host node: a plain value, a style map or an
// event listener. The set of implementations is closed.
type Attr interface {
	// Key identifies the attribute inside a Set. Static attributes use their
	// name, style maps use StylesKey and listeners "on" + event.
	Key() string

	apply(n dom.Node, o applyOptions)
}

type staticAttr struct {
	name  string
	value string
}

func (a staticAttr) Key() string { return a.name }

func (a staticAttr) apply(n dom.Node, _ applyOptions) {
	n.SetAttribute(a.name, a.value)
}

type styleAttr struct {
	styles map[string]string
}

func (a styleAttr) Key() string { return StylesKey }

func (a styleAttr) apply(n dom.Node, _ applyOptions) {
	for _, k := range sortedKeys(a.styles) {
		n.SetStyle(k, a.styles[k])
	}
}

type listenerAttr struct {
	event string
	fn    dom.EventHandler
}

func (a listenerAttr) Key() string { return EventPrefix + a.event }

func (a listenerAttr) apply(n dom.Node, o applyOptions) {
	if o.skipEvents || a.fn == nil {
		return
	}
	n.AddEventListener(a.event, a.fn)
}

// Static returns a plain attribute. "className" in any case is written as
// "class".
func Static(name, value string) Attr {
	if strings.ToLower(name) == classAlias {
		name = "class"
	}
	return staticAttr{name: name, value: value}
}

// Style returns a style map attribute. Property names are passed to the host
// unchanged; an empty value clears the property.
func Style(styles map[string]string) Attr {
	cp := make(map[string]string, len(styles))
	for k, v := range styles {
		cp[k] = v
	}
	return styleAttr{styles: cp}
}

// On returns a listener for event. The name is lower-cased; a leading "on"
// is stripped so On("onClick", fn) and On("click", fn) are equivalent.
func On(event string, fn dom.EventHandler) Attr {
	event = strings.ToLower(event)
	if len(event) > len(EventPrefix) && strings.HasPrefix(event, EventPrefix) {
		event = event[len(EventPrefix):]
	}
	return listenerAttr{event: event, fn: fn}
}

// ID sets the id attribute.
func ID(id string) Attr { return Static("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return Static("class", strings.Join(classes, " ")) }

// Data creates a data-* attribute. Example: Data("id", "123") → data-id="123".
func Data(key, value string) Attr { return Static("data-"+key, value) }

// Type sets the type attribute.
func Type(t string) Attr { return Static("type", t) }

// OnClick handles click events.
func OnClick(fn dom.EventHandler) Attr { return On("click", fn) }

// OnInput handles input events.
func OnInput(fn dom.EventHandler) Attr { return On("input", fn) }

// OnKeyDown handles keydown events.
func OnKeyDown(fn dom.EventHandler) Attr { return On("keydown", fn) }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
