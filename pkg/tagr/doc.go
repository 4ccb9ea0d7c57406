// Package tagr binds reactive state to a host node tree.
//
// A Value is a mutable cell rendered into any number of nodes; writing it
// re-renders every node it is bound to. A List is an ordered collection
// rendered into one or more containers, each holding one item node per
// entry in entry order, with per-item attribute rules, slots and a marker
// attribute identifying the entry behind each item node.
//
//	doc := dom.NewMemoryDocument()
//	count := tagr.NewValue(0, tagr.WithDocument(doc))
//	button := tagr.H(doc, "button", attr.Of(attr.OnClick(func(*dom.Event, dom.Node) {
//		count.Update(func(n int) int { return n + 1 })
//	})), "+1")
//	tagr.MustMount(doc, "body", count.Tag("span"), button)
//
// Effects created with reactive.RunEffect re-run whenever a Value or List
// they read through Get or Values changes.
//
// All nodes, cells and lists belong to a single goroutine.
package tagr
