package tagr

import (
	"github.com/tagr-dev/tagr/pkg/attr"
	"github.com/tagr-dev/tagr/pkg/dom"
)

// buildItem creates the item node of e for def. The sequence is fixed:
// bind the item cell, run AfterCreated, append slots, then stamp the marker
// and the item attributes on the finished node.
func (l *List[T]) buildItem(def *definition[T], e *entry[T], index int) dom.Node {
	item := def.spec.Item
	tag := item.Tag
	if tag == "" {
		tag = DefaultItemTag
	}

	var attrs attr.Set
	if item.Attrs != nil {
		attrs = item.Attrs(e.value, index)
	}
	n := e.cell.Bind(Spec[T]{
		Tag:        tag,
		Property:   item.Property,
		Projection: item.Projection,
		Attrs:      attrs,
		Container:  item.Slots != nil,
	})
	built := n
	def.observer.ItemChanged(ItemEvent{Op: ItemCreated, Container: def.name, ID: e.id, Index: index})

	ctx := ItemContext[T]{
		Element:  n,
		Value:    e.value,
		Cell:     e.cell,
		Index:    index,
		ParentID: e.id,
	}
	if item.AfterCreated != nil {
		if replaced := item.AfterCreated(ctx); dom.IsNode(replaced) {
			n = replaced
			ctx.Element = n
		}
		def.observer.ItemChanged(ItemEvent{Op: ItemHookCreated, Container: def.name, ID: e.id, Index: index})
	}

	if item.Slots != nil {
		var slots []*slot[T]
		for _, spec := range item.Slots(ctx) {
			s, node := l.buildSlot(e, index, spec)
			slots = append(slots, s)
			n.AppendChild(node)
		}
		def.slots[e.id] = slots
	}

	final := attr.Merge(attrs, attr.Of(attr.Static(MarkerAttribute, e.id)))
	if n == built {
		attr.Apply(final, n, attr.SkipEvents())
	} else {
		attr.Apply(final, n)
	}
	def.nodes[e.id] = n
	def.observer.ItemChanged(ItemEvent{Op: ItemAttributesAssigned, Container: def.name, ID: e.id, Index: index})
	return n
}

func (l *List[T]) buildSlot(e *entry[T], index int, spec SlotSpec[T]) (*slot[T], dom.Node) {
	cell := NewValue[any](spec.Field.Resolve(e.value, index), WithDocument(l.doc), WithTracker(l.tracker))
	node := cell.Bind(Spec[any]{
		Tag:      spec.Tag,
		Property: spec.Property,
		Attrs:    slotAttrs(spec, e.value, index),
	})
	return &slot[T]{
		id:       l.ids.NewID(),
		parentID: e.id,
		spec:     spec,
		cell:     cell,
	}, node
}

func slotAttrs[T any](spec SlotSpec[T], v T, index int) attr.Set {
	var set attr.Set
	if spec.Attrs != nil {
		set = spec.Attrs(v, index)
	}
	return set.With(attr.Static(SlotNameAttribute, spec.Name))
}
