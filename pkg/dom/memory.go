package dom

import (
	"sort"
	"strings"
)

// MemoryDocument is an in-memory host tree. Nodes it creates can only be
// attached to other nodes of a MemoryDocument.
type MemoryDocument struct {
	body *memNode
}

// NewMemoryDocument creates a document with an empty <body>.
func NewMemoryDocument() *MemoryDocument {
	d := &MemoryDocument{}
	d.body = d.newElement("body")
	return d
}

// Body returns the document body. QuerySelector searches it and its
// descendants.
func (d *MemoryDocument) Body() Node {
	return d.body
}

// CreateElement implements Document.
func (d *MemoryDocument) CreateElement(tag string) Node {
	return d.newElement(tag)
}

// CreateTextNode implements Document.
func (d *MemoryDocument) CreateTextNode(text string) Node {
	return &memNode{kind: KindText, text: text}
}

// QuerySelector implements Document. Supported selectors are "tag", "#id",
// ".class" and compounds such as "ul#todos" or "li.done".
func (d *MemoryDocument) QuerySelector(selector string) (Node, bool) {
	sel, ok := parseSelector(selector)
	if !ok {
		return nil, false
	}
	if d.body.matches(sel) {
		return d.body, true
	}
	if found := d.body.find(sel); found != nil {
		return found, true
	}
	return nil, false
}

// Dispatch delivers ev to the listeners of n registered for ev.Type, in
// registration order, and reports whether any listener ran.
//
// Before listeners run, the document applies the default effect a browser
// would: input/change events store ev.Value in the "value" property and a
// click on a checkbox toggles "checked".
func (d *MemoryDocument) Dispatch(n Node, ev Event) bool {
	m, ok := n.(*memNode)
	if !ok || m == nil {
		return false
	}
	ev.Type = strings.ToLower(ev.Type)
	ev.Target = m

	switch ev.Type {
	case "input", "change":
		m.SetProperty("value", ev.Value)
	case "click":
		if m.tag == "input" && m.attrs["type"] == "checkbox" {
			checked, _ := m.props["checked"].(bool)
			m.SetProperty("checked", !checked)
		}
	}

	handlers := append([]EventHandler(nil), m.listeners[ev.Type]...)
	for _, h := range handlers {
		h(&ev, m)
	}
	return len(handlers) > 0
}

func (d *MemoryDocument) newElement(tag string) *memNode {
	return &memNode{kind: KindElement, tag: strings.ToLower(tag)}
}

// memNode is the MemoryDocument node.
type memNode struct {
	kind Kind
	tag  string
	text string

	attrs     map[string]string
	props     map[string]any
	style     map[string]string
	listeners map[string][]EventHandler

	parent   *memNode
	children []*memNode
}

func (n *memNode) Kind() Kind  { return n.kind }
func (n *memNode) Tag() string { return n.tag }

func (n *memNode) Text() string {
	if n.kind == KindText {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.Text())
	}
	return b.String()
}

func (n *memNode) SetText(text string) {
	if n.kind == KindText {
		n.text = text
		return
	}
	if text == "" {
		n.ReplaceChildren()
		return
	}
	n.ReplaceChildren(&memNode{kind: KindText, text: text})
}

func (n *memNode) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *memNode) SetAttribute(name, value string) {
	if n.kind != KindElement {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

func (n *memNode) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

func (n *memNode) Property(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

func (n *memNode) SetProperty(name string, value any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
}

func (n *memNode) Style(name string) string {
	return n.style[name]
}

func (n *memNode) SetStyle(name, value string) {
	if n.kind != KindElement {
		return
	}
	if n.style == nil {
		n.style = make(map[string]string)
	}
	if value == "" {
		delete(n.style, name)
		return
	}
	n.style[name] = value
}

func (n *memNode) AddEventListener(event string, handler EventHandler) {
	if handler == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]EventHandler)
	}
	event = strings.ToLower(event)
	n.listeners[event] = append(n.listeners[event], handler)
}

func (n *memNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *memNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *memNode) AppendChild(child Node) {
	n.InsertBefore(child, nil)
}

func (n *memNode) PrependChild(child Node) {
	if len(n.children) == 0 {
		n.InsertBefore(child, nil)
		return
	}
	n.InsertBefore(child, n.children[0])
}

func (n *memNode) InsertBefore(child, ref Node) {
	if n.kind != KindElement {
		return
	}
	c := mustMem(child)
	if c == n {
		return
	}
	c.detach()

	at := len(n.children)
	if r, ok := ref.(*memNode); ok && r != nil {
		for i, existing := range n.children {
			if existing == r {
				at = i
				break
			}
		}
	}
	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = c
	c.parent = n
}

func (n *memNode) RemoveChild(child Node) bool {
	c, ok := child.(*memNode)
	if !ok || c == nil || c.parent != n {
		return false
	}
	c.detach()
	return true
}

func (n *memNode) ReplaceChildren(children ...Node) {
	if n.kind != KindElement {
		return
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	for _, child := range children {
		n.InsertBefore(child, nil)
	}
}

// detach removes n from its parent's child list.
func (n *memNode) detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (n *memNode) find(sel selector) *memNode {
	for _, c := range n.children {
		if c.matches(sel) {
			return c
		}
		if found := c.find(sel); found != nil {
			return found
		}
	}
	return nil
}

func (n *memNode) matches(sel selector) bool {
	if n.kind != KindElement {
		return false
	}
	if sel.tag != "" && sel.tag != n.tag {
		return false
	}
	if sel.id != "" && n.attrs["id"] != sel.id {
		return false
	}
	if len(sel.classes) > 0 {
		have := strings.Fields(n.attrs["class"])
		for _, want := range sel.classes {
			found := false
			for _, c := range have {
				if c == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// Inspectable implementation.

func (n *memNode) AttributeNames() []string { return sortedKeys(n.attrs) }
func (n *memNode) PropertyNames() []string  { return sortedKeys(n.props) }
func (n *memNode) StyleNames() []string     { return sortedKeys(n.style) }
func (n *memNode) ListenerTypes() []string  { return sortedKeys(n.listeners) }

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mustMem(n Node) *memNode {
	m, ok := n.(*memNode)
	if !ok || m == nil {
		panic("dom: node does not belong to a MemoryDocument")
	}
	return m
}

type selector struct {
	tag     string
	id      string
	classes []string
}

func parseSelector(s string) (selector, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " >+~[]:,") {
		return selector{}, false
	}
	var sel selector
	i := strings.IndexAny(s, "#.")
	if i < 0 {
		sel.tag = strings.ToLower(s)
		return sel, true
	}
	sel.tag = strings.ToLower(s[:i])
	rest := s[i:]
	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		j := strings.IndexAny(rest, "#.")
		var part string
		if j < 0 {
			part, rest = rest, ""
		} else {
			part, rest = rest[:j], rest[j:]
		}
		if part == "" {
			return selector{}, false
		}
		if marker == '#' {
			sel.id = part
		} else {
			sel.classes = append(sel.classes, part)
		}
	}
	return sel, true
}
