package dom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func texts(n Node) []string {
	var out []string
	for _, c := range n.Children() {
		out = append(out, c.Text())
	}
	return out
}

func TestMemoryChildOperations(t *testing.T) {
	doc := NewMemoryDocument()
	ul := doc.CreateElement("UL")
	if ul.Tag() != "ul" {
		t.Errorf("expected lower-case tag ul, got %q", ul.Tag())
	}

	a := doc.CreateTextNode("a")
	b := doc.CreateTextNode("b")
	c := doc.CreateTextNode("c")
	d := doc.CreateTextNode("d")

	ul.AppendChild(b)
	ul.PrependChild(a)
	ul.AppendChild(d)
	ul.InsertBefore(c, d)

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, texts(ul)); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	if ul.Text() != "abcd" {
		t.Errorf("expected text abcd, got %q", ul.Text())
	}

	if !ul.RemoveChild(b) {
		t.Error("expected RemoveChild to report success")
	}
	if ul.RemoveChild(b) {
		t.Error("removing a detached node should report false")
	}
	if b.Parent() != nil {
		t.Error("removed node should have no parent")
	}

	// Appending an attached node moves it.
	ul.AppendChild(a)
	if diff := cmp.Diff([]string{"c", "d", "a"}, texts(ul)); diff != "" {
		t.Errorf("move mismatch (-want +got):\n%s", diff)
	}

	// Unknown ref appends.
	ul.InsertBefore(b, doc.CreateTextNode("stray"))
	if got := texts(ul); got[len(got)-1] != "b" {
		t.Errorf("expected b appended last, got %v", got)
	}

	ul.ReplaceChildren()
	if len(ul.Children()) != 0 {
		t.Errorf("expected no children, got %d", len(ul.Children()))
	}
}

func TestMemorySetText(t *testing.T) {
	doc := NewMemoryDocument()
	p := doc.CreateElement("p")
	p.AppendChild(doc.CreateElement("span"))

	p.SetText("hello")
	if p.Text() != "hello" || len(p.Children()) != 1 {
		t.Errorf("expected single text child, got %d children and %q", len(p.Children()), p.Text())
	}

	p.SetText("")
	if len(p.Children()) != 0 {
		t.Errorf("empty text should leave no children, got %d", len(p.Children()))
	}

	txt := doc.CreateTextNode("x")
	txt.SetText("y")
	if txt.Text() != "y" {
		t.Errorf("expected y, got %q", txt.Text())
	}
	txt.AppendChild(doc.CreateTextNode("z"))
	if len(txt.Children()) != 0 {
		t.Error("text nodes must not accept children")
	}
}

func TestMemoryAttributesAndStyle(t *testing.T) {
	doc := NewMemoryDocument()
	el := doc.CreateElement("div")

	el.SetAttribute("class", "card")
	if v, ok := el.Attribute("class"); !ok || v != "card" {
		t.Errorf("expected class=card, got %q %v", v, ok)
	}
	el.RemoveAttribute("class")
	if _, ok := el.Attribute("class"); ok {
		t.Error("expected class removed")
	}

	el.SetStyle("color", "red")
	if el.Style("color") != "red" {
		t.Errorf("expected red, got %q", el.Style("color"))
	}
	el.SetStyle("color", "")
	if el.Style("color") != "" {
		t.Error("empty style value should clear the property")
	}
}

func TestQuerySelector(t *testing.T) {
	doc := NewMemoryDocument()
	app := doc.CreateElement("div")
	app.SetAttribute("id", "app")
	list := doc.CreateElement("ul")
	list.SetAttribute("class", "todos open")
	app.AppendChild(list)
	doc.Body().AppendChild(app)

	tests := []struct {
		sel  string
		want Node
	}{
		{"#app", app},
		{"div#app", app},
		{"ul", list},
		{".todos", list},
		{"ul.todos.open", list},
		{"body", doc.Body()},
	}
	for _, tt := range tests {
		got, ok := doc.QuerySelector(tt.sel)
		if !ok || got != tt.want {
			t.Errorf("QuerySelector(%q) = %v, %v", tt.sel, got, ok)
		}
	}

	for _, sel := range []string{"#missing", "", "div > ul", "span"} {
		if _, ok := doc.QuerySelector(sel); ok {
			t.Errorf("QuerySelector(%q) should not match", sel)
		}
	}
}

func TestDispatch(t *testing.T) {
	doc := NewMemoryDocument()
	input := doc.CreateElement("input")
	var got []string
	input.AddEventListener("Input", func(ev *Event, n Node) {
		v, _ := n.Property("value")
		got = append(got, ev.Type+":"+v.(string))
	})
	input.AddEventListener("input", func(ev *Event, n Node) {
		got = append(got, "second")
	})

	if !doc.Dispatch(input, Event{Type: "input", Value: "hi"}) {
		t.Fatal("expected listeners to run")
	}
	if diff := cmp.Diff([]string{"input:hi", "second"}, got); diff != "" {
		t.Errorf("dispatch mismatch (-want +got):\n%s", diff)
	}
	if doc.Dispatch(input, Event{Type: "click"}) {
		t.Error("no click listener was installed")
	}
}

func TestDispatchTogglesCheckbox(t *testing.T) {
	doc := NewMemoryDocument()
	box := doc.CreateElement("input")
	box.SetAttribute("type", "checkbox")

	doc.Dispatch(box, Event{Type: "click"})
	if v, _ := box.Property("checked"); v != true {
		t.Errorf("expected checked after click, got %v", v)
	}
	doc.Dispatch(box, Event{Type: "click"})
	if v, _ := box.Property("checked"); v != false {
		t.Errorf("expected unchecked after second click, got %v", v)
	}
}

func TestIsNode(t *testing.T) {
	doc := NewMemoryDocument()
	var nilNode *memNode

	if !IsNode(doc.CreateElement("p")) {
		t.Error("element should be a node")
	}
	if IsNode("p") || IsNode(nil) || IsNode(nilNode) || IsNode(42) {
		t.Error("tag names, nil and other values are not nodes")
	}
}

func TestResolveAndIndexOf(t *testing.T) {
	doc := NewMemoryDocument()
	root := doc.CreateElement("div")
	ul := doc.CreateElement("ul")
	li := doc.CreateElement("li")
	root.AppendChild(doc.CreateTextNode("x"))
	root.AppendChild(ul)
	ul.AppendChild(li)

	if n, ok := Resolve(root, []int{1, 0}); !ok || n != li {
		t.Errorf("expected li at [1 0], got %v %v", n, ok)
	}
	if _, ok := Resolve(root, []int{3}); ok {
		t.Error("expected out-of-range path to fail")
	}
	if IndexOf(root, ul) != 1 || IndexOf(root, li) != -1 {
		t.Error("unexpected IndexOf results")
	}
}

func TestDump(t *testing.T) {
	doc := NewMemoryDocument()
	ul := doc.CreateElement("ul")
	ul.SetAttribute("class", "todos")
	ul.SetAttribute("data-tagr-id", "t1")
	ul.SetStyle("padding", "8px")
	li := doc.CreateElement("li")
	li.SetProperty("checked", true)
	li.AddEventListener("click", func(*Event, Node) {})
	li.AppendChild(doc.CreateTextNode("Buy Milk"))
	ul.AppendChild(li)

	got := DumpWith(ul, DumpOptions{OmitAttrs: []string{"data-tagr-id"}, Listeners: true})
	want := strings.Join([]string{
		`<ul class="todos" style="padding: 8px">`,
		`  <li .checked="true" @click>`,
		`    "Buy Milk"`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}
