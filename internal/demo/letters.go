package demo

import (
	"github.com/tagr-dev/tagr/pkg/attr"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/tagr"
)

// Letters is a playground for list edits. Each item is an editable row with
// a remove button; the input appends on ArrowDown, prepends on ArrowUp and
// inserts at position 2 on "2".
type Letters struct {
	Root      dom.Node
	Input     dom.Node
	Container dom.Node

	List  *tagr.List[string]
	Draft *tagr.Value[string]

	doc dom.Document
}

// NewLetters builds the playground over ["a", "b"].
func NewLetters(doc dom.Document, opts ...tagr.Option) *Letters {
	opts = append([]tagr.Option{tagr.WithDocument(doc)}, opts...)
	l := &Letters{
		List:  tagr.NewList([]string{"a", "b"}, opts...),
		Draft: tagr.NewValue("", opts...),
		doc:   doc,
	}

	l.Input = l.Draft.Bind(tagr.Spec[string]{
		Tag:      "input",
		Property: "value",
		Attrs: attr.Of(
			attr.OnInput(func(ev *dom.Event, _ dom.Node) { l.Draft.Set(ev.Value) }),
			attr.OnKeyDown(func(ev *dom.Event, _ dom.Node) { l.key(ev.Key) }),
		),
	})

	l.Container = l.List.Bind(tagr.ListSpec[string]{
		Tag:  "ol",
		Name: "letters",
		Item: tagr.ItemSpec[string]{AfterCreated: l.row},
	})

	l.Root = tagr.H(doc, "div", attr.Of(attr.Class("letters")),
		l.Input,
		l.Draft.Tag("span"),
		l.Container,
	)
	return l
}

func (l *Letters) key(key string) {
	v := l.Draft.Peek()
	switch key {
	case "2":
		l.List.InsertAt(2, "Second "+v)
	case "ArrowDown":
		l.List.Append(v)
	case "ArrowUp":
		l.List.Prepend(v)
	}
}

// row replaces the default item with a span showing the value, an input
// editing it and a remove button.
func (l *Letters) row(ctx tagr.ItemContext[string]) dom.Node {
	edit := ctx.Cell.Bind(tagr.Spec[string]{
		Tag:      "input",
		Property: "value",
		Attrs: attr.Of(attr.OnInput(func(ev *dom.Event, _ dom.Node) {
			l.List.SetItemValue(l.List.IndexOf(ctx.ParentID), ev.Value)
		})),
	})

	var li dom.Node
	li = tagr.H(l.doc, "li", nil,
		ctx.Cell.Tag("span"),
		edit,
		tagr.H(l.doc, "button",
			attr.Of(attr.OnClick(func(*dom.Event, dom.Node) { l.List.RemoveNode(li) })),
			"Remove"),
	)
	return li
}
