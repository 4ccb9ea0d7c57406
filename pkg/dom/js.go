//go:build js && wasm

package dom

import (
	"strings"
	"syscall/js"
)

// nodeKey is the JS property that links a DOM node to its Go wrapper, so the
// same DOM node always maps to the same Node value.
const nodeKey = "__tagrNode"

// BrowserDocument is the Document of the page the wasm module runs in.
type BrowserDocument struct {
	doc   js.Value
	nodes map[int]*jsNode
	next  int
}

// NewBrowserDocument wraps the global document.
func NewBrowserDocument() *BrowserDocument {
	return &BrowserDocument{
		doc:   js.Global().Get("document"),
		nodes: make(map[int]*jsNode),
	}
}

// CreateElement implements Document.
func (d *BrowserDocument) CreateElement(tag string) Node {
	return d.wrap(d.doc.Call("createElement", tag))
}

// CreateTextNode implements Document.
func (d *BrowserDocument) CreateTextNode(text string) Node {
	return d.wrap(d.doc.Call("createTextNode", text))
}

// QuerySelector implements Document.
func (d *BrowserDocument) QuerySelector(selector string) (Node, bool) {
	v := d.doc.Call("querySelector", selector)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return d.wrap(v), true
}

func (d *BrowserDocument) wrap(v js.Value) *jsNode {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	if id := v.Get(nodeKey); id.Type() == js.TypeNumber {
		if n, ok := d.nodes[id.Int()]; ok {
			return n
		}
	}
	d.next++
	n := &jsNode{doc: d, v: v}
	d.nodes[d.next] = n
	v.Set(nodeKey, d.next)
	return n
}

type jsNode struct {
	doc   *BrowserDocument
	v     js.Value
	funcs []js.Func
}

func (n *jsNode) Kind() Kind {
	if n.v.Get("nodeType").Int() == 3 {
		return KindText
	}
	return KindElement
}

func (n *jsNode) Tag() string {
	if n.Kind() == KindText {
		return ""
	}
	return strings.ToLower(n.v.Get("tagName").String())
}

func (n *jsNode) Text() string {
	return n.v.Get("textContent").String()
}

func (n *jsNode) SetText(text string) {
	n.v.Set("textContent", text)
}

func (n *jsNode) Attribute(name string) (string, bool) {
	if n.Kind() != KindElement || !n.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return n.v.Call("getAttribute", name).String(), true
}

func (n *jsNode) SetAttribute(name, value string) {
	if n.Kind() == KindElement {
		n.v.Call("setAttribute", name, value)
	}
}

func (n *jsNode) RemoveAttribute(name string) {
	if n.Kind() == KindElement {
		n.v.Call("removeAttribute", name)
	}
}

func (n *jsNode) Property(name string) (any, bool) {
	p := n.v.Get(name)
	switch p.Type() {
	case js.TypeUndefined:
		return nil, false
	case js.TypeBoolean:
		return p.Bool(), true
	case js.TypeNumber:
		return p.Float(), true
	case js.TypeString:
		return p.String(), true
	default:
		return p, true
	}
}

func (n *jsNode) SetProperty(name string, value any) {
	n.v.Set(name, value)
}

func (n *jsNode) Style(name string) string {
	if n.Kind() != KindElement {
		return ""
	}
	return n.v.Get("style").Get(name).String()
}

func (n *jsNode) SetStyle(name, value string) {
	if n.Kind() == KindElement {
		n.v.Get("style").Set(name, value)
	}
}

func (n *jsNode) AddEventListener(event string, handler EventHandler) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := &Event{Type: event, Target: n}
		if len(args) > 0 {
			native := args[0]
			ev.Native = native
			if t := native.Get("target"); !t.IsUndefined() && !t.IsNull() {
				ev.Target = n.doc.wrap(t)
				if v := t.Get("value"); v.Type() == js.TypeString {
					ev.Value = v.String()
				}
			}
			if k := native.Get("key"); k.Type() == js.TypeString {
				ev.Key = k.String()
			}
		}
		handler(ev, n)
		return nil
	})
	n.funcs = append(n.funcs, fn)
	n.v.Call("addEventListener", event, fn)
}

func (n *jsNode) Parent() Node {
	p := n.v.Get("parentNode")
	if p.IsNull() || p.IsUndefined() {
		return nil
	}
	return n.doc.wrap(p)
}

func (n *jsNode) Children() []Node {
	list := n.v.Get("childNodes")
	length := list.Get("length").Int()
	out := make([]Node, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, n.doc.wrap(list.Index(i)))
	}
	return out
}

func (n *jsNode) AppendChild(child Node) {
	n.v.Call("appendChild", child.(*jsNode).v)
}

func (n *jsNode) PrependChild(child Node) {
	n.v.Call("prepend", child.(*jsNode).v)
}

func (n *jsNode) InsertBefore(child, ref Node) {
	r, ok := ref.(*jsNode)
	if !ok || r == nil || !r.v.Get("parentNode").Equal(n.v) {
		n.AppendChild(child)
		return
	}
	n.v.Call("insertBefore", child.(*jsNode).v, r.v)
}

func (n *jsNode) RemoveChild(child Node) bool {
	c, ok := child.(*jsNode)
	if !ok || c == nil || !c.v.Get("parentNode").Equal(n.v) {
		return false
	}
	n.v.Call("removeChild", c.v)
	return true
}

func (n *jsNode) ReplaceChildren(children ...Node) {
	args := make([]any, len(children))
	for i, c := range children {
		args[i] = c.(*jsNode).v
	}
	n.v.Call("replaceChildren", args...)
}
