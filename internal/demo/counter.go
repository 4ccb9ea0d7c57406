package demo

import (
	"github.com/tagr-dev/tagr/pkg/attr"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/tagr"
)

// Counter is a number with increment and decrement buttons.
type Counter struct {
	Root      dom.Node
	Count     *tagr.Value[int]
	Increment dom.Node
	Decrement dom.Node
}

// NewCounter builds the counter starting at 1.
func NewCounter(doc dom.Document, opts ...tagr.Option) *Counter {
	c := &Counter{
		Count: tagr.NewValue(1, append([]tagr.Option{tagr.WithDocument(doc)}, opts...)...),
	}

	text := c.Count.Bind(tagr.Spec[int]{
		Tag: "span",
		Attrs: attr.Of(attr.Style(map[string]string{
			"color":       "blue",
			"font-size":   "1.3rem",
			"font-weight": "bold",
		})),
	})

	c.Increment = tagr.H(doc, "button",
		attr.Of(attr.OnClick(func(*dom.Event, dom.Node) {
			c.Count.Update(func(n int) int { return n + 1 })
		})),
		"Increment")
	c.Decrement = tagr.H(doc, "button",
		attr.Of(attr.OnClick(func(*dom.Event, dom.Node) {
			c.Count.Update(func(n int) int { return n - 1 })
		})),
		"Decrement")

	c.Root = tagr.H(doc, "div",
		attr.Of(attr.Style(map[string]string{"background-color": "lightgray"})),
		tagr.H(doc, "div",
			attr.Of(attr.Style(map[string]string{
				"display":               "grid",
				"grid-template-columns": "1fr 1fr",
				"margin":                "2rem",
				"background-color":      "peachpuff",
				"padding":               "6px",
			})),
			tagr.H(doc, "h1", nil, "Counter"),
			tagr.H(doc, "p", nil, "Count is: ", text),
			c.Increment,
			c.Decrement,
		),
	)
	return c
}
