package attr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tagr-dev/tagr/pkg/dom"
)

// Set is an ordered list of attributes applied left to right.
type Set []Attr

// Of builds a Set from attributes, skipping nils.
func Of(attrs ...Attr) Set {
	out := make(Set, 0, len(attrs))
	for _, a := range attrs {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// With returns a copy of s with attrs appended.
func (s Set) With(attrs ...Attr) Set {
	out := make(Set, 0, len(s)+len(attrs))
	out = append(out, s...)
	return append(out, Of(attrs...)...)
}

// Get returns the value of the last static attribute called name.
func (s Set) Get(name string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if a, ok := s[i].(staticAttr); ok && a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// Styles returns the merged style map of s.
func (s Set) Styles() map[string]string {
	var out map[string]string
	for _, a := range s {
		if st, ok := a.(styleAttr); ok {
			if out == nil {
				out = make(map[string]string)
			}
			for k, v := range st.styles {
				out[k] = v
			}
		}
	}
	return out
}

// Listeners returns the event names s installs, in order.
func (s Set) Listeners() []string {
	var out []string
	for _, a := range s {
		if l, ok := a.(listenerAttr); ok {
			out = append(out, l.event)
		}
	}
	return out
}

// Merge combines sets. A static attribute replaces an earlier one with the
// same name in place, style maps are merged into one with later properties
// winning, and listeners accumulate.
func Merge(sets ...Set) Set {
	var out Set
	statics := make(map[string]int)
	styleAt := -1
	for _, s := range sets {
		for _, a := range s {
			switch v := a.(type) {
			case staticAttr:
				if i, ok := statics[v.name]; ok {
					out[i] = v
					continue
				}
				statics[v.name] = len(out)
				out = append(out, v)
			case styleAttr:
				if styleAt < 0 {
					styleAt = len(out)
					out = append(out, Style(v.styles))
					continue
				}
				merged := out[styleAt].(styleAttr)
				for k, val := range v.styles {
					merged.styles[k] = val
				}
			default:
				out = append(out, a)
			}
		}
	}
	return out
}

// ApplyOption configures Apply.
type ApplyOption func(*applyOptions)

type applyOptions struct {
	skipEvents bool
}

// SkipEvents leaves listener attributes out. Use it when a set is recomputed
// after every state change, so listeners are installed only once.
func SkipEvents() ApplyOption {
	return func(o *applyOptions) {
		o.skipEvents = true
	}
}

// Apply writes every attribute of s to n. Text nodes are left untouched.
func Apply(s Set, n dom.Node, opts ...ApplyOption) {
	if n == nil || n.Kind() != dom.KindElement {
		return
	}
	var o applyOptions
	for _, opt := range opts {
		opt(&o)
	}
	for _, a := range s {
		if a != nil {
			a.apply(n, o)
		}
	}
}

// FromMap normalizes a heterogeneous attribute map:
//
//   - the "styles" key holds a map[string]string (or map[string]any with
//     string values) of style properties;
//   - keys starting with "on" whose value is a function become listeners;
//     the prefix is stripped and the rest lower-cased;
//   - "className" in any case becomes "class";
//   - other keys with string values become plain attributes, and any other
//     value type is ignored.
//
// Keys are processed in sorted order so the result is deterministic.
func FromMap(m map[string]any) Set {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out Set
	for _, k := range keys {
		v := m[k]
		if k == StylesKey {
			if styles := toStyleMap(v); styles != nil {
				out = append(out, Style(styles))
			}
			continue
		}
		if strings.HasPrefix(strings.ToLower(k), EventPrefix) {
			if fn := toHandler(v); fn != nil {
				out = append(out, On(k, fn))
				continue
			}
		}
		if s, ok := v.(string); ok {
			out = append(out, Static(k, s))
		}
	}
	return out
}

func toStyleMap(v any) map[string]string {
	switch styles := v.(type) {
	case map[string]string:
		return styles
	case map[string]any:
		out := make(map[string]string, len(styles))
		for k, val := range styles {
			switch sv := val.(type) {
			case string:
				out[k] = sv
			case fmt.Stringer:
				out[k] = sv.String()
			}
		}
		return out
	default:
		return nil
	}
}

func toHandler(v any) dom.EventHandler {
	switch fn := v.(type) {
	case dom.EventHandler:
		return fn
	case func(*dom.Event, dom.Node):
		return fn
	case func(*dom.Event):
		return func(ev *dom.Event, _ dom.Node) { fn(ev) }
	case func():
		return func(*dom.Event, dom.Node) { fn() }
	default:
		return nil
	}
}
