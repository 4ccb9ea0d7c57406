// Package attr normalizes and applies attribute sets to host nodes.
//
// An attribute is one of three closed variants:
//
//	attr.Static("href", "/about")                 // plain attribute
//	attr.Style(map[string]string{"color": "red"}) // style properties
//	attr.On("click", handler)                     // event listener
//
// Attributes are grouped in a Set and written with Apply. Sets recomputed on
// every state change are applied with SkipEvents so listeners are not
// installed twice:
//
//	attr.Apply(set, node, attr.SkipEvents())
//
// FromMap accepts the loosely typed map form used by configuration-driven
// callers and returns the equivalent Set.
package attr
