package tagr

import (
	"fmt"

	"github.com/tagr-dev/tagr/pkg/attr"
	"github.com/tagr-dev/tagr/pkg/dom"
)

// H builds a static element. When tag is already a node it is returned
// unchanged. Children may be nodes, slices of nodes, strings (which become
// text nodes) or any other value rendered with fmt; nil children are
// skipped.
//
//	tagr.H(doc, "button", attr.Of(attr.OnClick(inc)), "+1")
func H(doc dom.Document, tag any, attrs attr.Set, children ...any) dom.Node {
	if dom.IsNode(tag) {
		return tag.(dom.Node)
	}
	name, ok := tag.(string)
	if !ok {
		panic(fmt.Sprintf("tagr.H: tag must be a string or a node, got %T", tag))
	}

	n := doc.CreateElement(name)
	attr.Apply(attrs, n)
	for _, c := range children {
		appendChild(doc, n, c)
	}
	return n
}

func appendChild(doc dom.Document, n dom.Node, c any) {
	switch x := c.(type) {
	case nil:
	case dom.Node:
		if dom.IsNode(x) {
			n.AppendChild(x)
		}
	case []dom.Node:
		for _, child := range x {
			appendChild(doc, n, child)
		}
	case []any:
		for _, child := range x {
			appendChild(doc, n, child)
		}
	case string:
		n.AppendChild(doc.CreateTextNode(x))
	default:
		n.AppendChild(doc.CreateTextNode(toText(x)))
	}
}
