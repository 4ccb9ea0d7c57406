package tagr

import (
	"errors"
	"testing"

	"github.com/tagr-dev/tagr/pkg/attr"
	"github.com/tagr-dev/tagr/pkg/dom"
)

func TestH(t *testing.T) {
	doc := dom.NewMemoryDocument()
	count := NewValue(7, WithDocument(doc))

	n := H(doc, "p", attr.Of(attr.Class("total")),
		"Total: ",
		count.Tag("b"),
		nil,
		[]dom.Node{doc.CreateTextNode("!")},
		3,
	)

	if n.Tag() != "p" {
		t.Fatalf("expected <p>, got <%s>", n.Tag())
	}
	if v, _ := n.Attribute("class"); v != "total" {
		t.Errorf("expected class=total, got %q", v)
	}
	if got := n.Text(); got != "Total: 7!3" {
		t.Errorf("expected text %q, got %q", "Total: 7!3", got)
	}
	if len(n.Children()) != 4 {
		t.Errorf("expected 4 children, got %d", len(n.Children()))
	}
}

func TestHReturnsExistingNode(t *testing.T) {
	doc := dom.NewMemoryDocument()
	existing := doc.CreateElement("div")

	got := H(doc, existing, attr.Of(attr.Class("ignored")), "child")
	if got != existing {
		t.Fatal("expected the same node back")
	}
	if _, ok := existing.Attribute("class"); ok || len(existing.Children()) != 0 {
		t.Error("an existing node must be returned unchanged")
	}
}

func TestHPanicsOnBadTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a non-string, non-node tag")
		}
	}()
	H(dom.NewMemoryDocument(), 42, nil)
}

func TestMount(t *testing.T) {
	doc := dom.NewMemoryDocument()
	app := doc.CreateElement("div")
	app.SetAttribute("id", "app")
	app.AppendChild(doc.CreateTextNode("loading"))
	doc.Body().AppendChild(app)

	view := doc.CreateElement("main")
	if err := Mount(doc, "#app", view); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if len(app.Children()) != 1 || app.Children()[0] != view {
		t.Errorf("expected #app to hold only the view, got %d children", len(app.Children()))
	}

	err := Mount(doc, "#missing", view)
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("expected ErrRootNotFound, got %v", err)
	}
}

func TestMustMountPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrRootNotFound) {
			t.Errorf("expected ErrRootNotFound panic, got %v", r)
		}
	}()
	MustMount(dom.NewMemoryDocument(), "#app")
}

func TestSequentialIDs(t *testing.T) {
	ids := SequentialIDs("x")
	if a, b := ids.NewID(), ids.NewID(); a != "x1" || b != "x2" {
		t.Errorf("expected x1 x2, got %s %s", a, b)
	}
	if (processIDs{}).NewID() == (processIDs{}).NewID() {
		t.Error("process ids must be unique")
	}
}
