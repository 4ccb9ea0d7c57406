package dom

import (
	"fmt"
	"sort"
	"strings"
)

// Snapshot is a serializable copy of a subtree.
type Snapshot struct {
	Kind      string            `json:"kind" msgpack:"kind"`
	Tag       string            `json:"tag,omitempty" msgpack:"tag,omitempty"`
	Text      string            `json:"text,omitempty" msgpack:"text,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Props     map[string]string `json:"props,omitempty" msgpack:"props,omitempty"`
	Style     map[string]string `json:"style,omitempty" msgpack:"style,omitempty"`
	Listeners []string          `json:"listeners,omitempty" msgpack:"listeners,omitempty"`
	Children  []Snapshot        `json:"children,omitempty" msgpack:"children,omitempty"`
}

// TakeSnapshot copies the state of n and its descendants. Attributes,
// properties, styles and listeners are only captured for Inspectable nodes.
func TakeSnapshot(n Node) Snapshot {
	s := Snapshot{Kind: n.Kind().String(), Tag: n.Tag()}
	if n.Kind() == KindText {
		s.Text = n.Text()
		return s
	}

	if in, ok := n.(Inspectable); ok {
		for _, name := range in.AttributeNames() {
			v, _ := n.Attribute(name)
			if s.Attrs == nil {
				s.Attrs = make(map[string]string)
			}
			s.Attrs[name] = v
		}
		for _, name := range in.PropertyNames() {
			v, _ := n.Property(name)
			if s.Props == nil {
				s.Props = make(map[string]string)
			}
			s.Props[name] = fmt.Sprint(v)
		}
		for _, name := range in.StyleNames() {
			if s.Style == nil {
				s.Style = make(map[string]string)
			}
			s.Style[name] = n.Style(name)
		}
		s.Listeners = in.ListenerTypes()
	}

	for _, c := range n.Children() {
		s.Children = append(s.Children, TakeSnapshot(c))
	}
	return s
}

// DumpOptions controls Dump output.
type DumpOptions struct {
	// OmitAttrs lists attribute names left out of the outline, such as
	// generated identity markers.
	OmitAttrs []string

	// Listeners includes the installed listener types.
	Listeners bool
}

// Dump renders n as an indented outline, one node per line:
//
//	<ul class="todos">
//	  <li>
//	    "Buy Milk"
func Dump(n Node) string {
	return DumpWith(n, DumpOptions{})
}

// DumpWith renders n like Dump using opts.
func DumpWith(n Node, opts DumpOptions) string {
	var b strings.Builder
	dumpSnapshot(&b, TakeSnapshot(n), 0, opts)
	return b.String()
}

func dumpSnapshot(b *strings.Builder, s Snapshot, depth int, opts DumpOptions) {
	indent := strings.Repeat("  ", depth)
	if s.Kind == KindText.String() {
		fmt.Fprintf(b, "%s%q\n", indent, s.Text)
		return
	}

	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(s.Tag)
	for _, k := range sortedKeys(s.Attrs) {
		if omitted(k, opts.OmitAttrs) {
			continue
		}
		fmt.Fprintf(b, " %s=%q", k, s.Attrs[k])
	}
	if len(s.Style) > 0 {
		parts := make([]string, 0, len(s.Style))
		for _, k := range sortedKeys(s.Style) {
			parts = append(parts, k+": "+s.Style[k])
		}
		fmt.Fprintf(b, " style=%q", strings.Join(parts, "; "))
	}
	for _, k := range sortedKeys(s.Props) {
		fmt.Fprintf(b, " .%s=%q", k, s.Props[k])
	}
	if opts.Listeners && len(s.Listeners) > 0 {
		listeners := append([]string(nil), s.Listeners...)
		sort.Strings(listeners)
		fmt.Fprintf(b, " @%s", strings.Join(listeners, ",@"))
	}
	b.WriteString(">\n")

	for _, c := range s.Children {
		dumpSnapshot(b, c, depth+1, opts)
	}
}

func omitted(name string, omit []string) bool {
	for _, o := range omit {
		if o == name {
			return true
		}
	}
	return false
}
