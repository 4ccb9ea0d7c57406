// Package dom defines the host tree that tagr renders into.
//
// The binding engine never owns the presentation tree: it talks to it through
// the Node and Document interfaces. Two implementations ship with the
// package:
//
//   - MemoryDocument, an in-memory tree used by tests, the CLI and the
//     inspector server. It can dispatch events to installed listeners.
//   - The browser document (js && wasm builds only), backed by syscall/js.
//
// # Inspection
//
// Snapshot converts any subtree into a serializable value and Dump renders an
// indented outline:
//
//	doc := dom.NewMemoryDocument()
//	ul := doc.CreateElement("ul")
//	fmt.Print(dom.Dump(ul))
//
// Nodes are not safe for concurrent use.
package dom
