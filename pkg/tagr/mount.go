package tagr

import (
	"fmt"

	"github.com/tagr-dev/tagr/pkg/dom"
)

// Mount replaces the children of the first node matching selector with
// nodes.
func Mount(doc dom.Document, selector string, nodes ...dom.Node) error {
	root, ok := doc.QuerySelector(selector)
	if !ok {
		return fmt.Errorf("%w: %q", ErrRootNotFound, selector)
	}
	root.ReplaceChildren(nodes...)
	return nil
}

// MustMount is like Mount but panics on error.
func MustMount(doc dom.Document, selector string, nodes ...dom.Node) {
	if err := Mount(doc, selector, nodes...); err != nil {
		panic(err)
	}
}
