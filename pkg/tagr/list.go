package tagr

import (
	"log/slog"
	"slices"
	"time"

	"github.com/tagr-dev/tagr/pkg/attr"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/reactive"
)

// ListRule computes container attributes from the current values.
type ListRule[T any] func(values []T) attr.Set

// ItemRule computes item attributes from an item and its index.
type ItemRule[T any] func(value T, index int) attr.Set

// StaticItems returns an ItemRule that always yields set.
func StaticItems[T any](set attr.Set) ItemRule[T] {
	return func(T, int) attr.Set { return set }
}

// StaticList returns a ListRule that always yields set.
func StaticList[T any](set attr.Set) ListRule[T] {
	return func([]T) attr.Set { return set }
}

// ListSpec describes one container rendering of a List.
type ListSpec[T any] struct {
	// Tag is the container element to create; DefaultListTag when empty.
	Tag string

	// Node is an existing container to fill instead of creating one. Its
	// current children are kept ahead of the items and are never touched by
	// list operations.
	Node dom.Node

	// Attrs is recomputed with SkipEvents after every membership change.
	Attrs ListRule[T]

	Item ItemSpec[T]

	// Dynamic definitions are rebuilt by SetValues. Other definitions keep
	// their items until an explicit Rebuild(false).
	Dynamic bool

	// Debug logs every event of this definition through the list logger.
	Debug bool

	// Name labels the container in observer events. Defaults to the tag,
	// suffixed with "#id" when the container has an id attribute.
	Name string
}

// ItemSpec describes how each item of a definition is built.
type ItemSpec[T any] struct {
	// Tag is the item element; DefaultItemTag when empty.
	Tag string

	// Attrs is applied when the item is built and re-applied with
	// SkipEvents by SetItemValue.
	Attrs ItemRule[T]

	// Property and Projection configure the item cell binding like the
	// fields of Spec.
	Property   string
	Projection Projection[T]

	// AfterCreated runs after the item node is built. Returning a node
	// replaces the item node; returning nil keeps it.
	AfterCreated func(ItemContext[T]) dom.Node

	// Slots, when set, turns the item into a container: its cell no longer
	// writes content, and the returned slots are appended to the item node.
	Slots func(ItemContext[T]) []SlotSpec[T]
}

// ItemContext is passed to the per-item hooks.
type ItemContext[T any] struct {
	Element  dom.Node
	Value    T
	Cell     *Value[T]
	Index    int
	ParentID string
}

// SlotSpec describes a sub-cell of an item bound to a field of the item.
type SlotSpec[T any] struct {
	Name     string
	Tag      string
	Property string
	Field    FieldMap[T]
	Attrs    ItemRule[T]
}

type entry[T any] struct {
	id    string
	value T
	cell  *Value[T]
}

type slot[T any] struct {
	id       string
	parentID string
	spec     SlotSpec[T]
	cell     *Value[any]
}

type definition[T any] struct {
	spec      ListSpec[T]
	name      string
	container dom.Node
	observer  Observer
	nodes     map[string]dom.Node
	slots     map[string][]*slot[T]
}

// List is an ordered collection rendered into one or more containers. Each
// container holds exactly one item node per entry, in entry order.
//
//	todos := tagr.NewList([]Todo{{Title: "write"}})
//	ul := todos.Bind(tagr.ListSpec[Todo]{Item: tagr.ItemSpec[Todo]{Projection: tagr.Field[Todo]("Title")}})
//	todos.Append(Todo{Title: "test"})
type List[T any] struct {
	doc      dom.Document
	tracker  *reactive.Tracker
	ids      IDSource
	observer Observer
	logger   *slog.Logger

	store   []*entry[T]
	defs    []*definition[T]
	changes *reactive.Signal[[]T]
}

// NewList creates a list holding initial.
func NewList[T any](initial []T, opts ...Option) *List[T] {
	o := applyOptions(opts)
	l := &List[T]{
		doc:      o.doc,
		tracker:  o.tracker,
		ids:      o.ids,
		observer: o.observer,
		logger:   o.logger,
	}
	for _, v := range initial {
		l.store = append(l.store, l.newEntry(v))
	}
	l.changes = reactive.NewSignal(l.snapshot(), reactive.WithTracker(o.tracker))
	return l
}

// Bind creates a container rendering of the list and returns its node.
func (l *List[T]) Bind(spec ListSpec[T]) dom.Node {
	start := time.Now()

	container := spec.Node
	if !dom.IsNode(container) {
		tag := spec.Tag
		if tag == "" {
			tag = DefaultListTag
		}
		container = l.doc.CreateElement(tag)
	}

	def := &definition[T]{
		spec:      spec,
		container: container,
		nodes:     make(map[string]dom.Node),
		slots:     make(map[string][]*slot[T]),
	}
	if spec.Attrs != nil {
		attr.Apply(spec.Attrs(l.snapshot()), container)
	}
	def.name = containerName(spec.Name, container)
	def.observer = l.observerFor(def)
	l.defs = append(l.defs, def)

	for i, e := range l.store {
		container.AppendChild(l.buildItem(def, e, i))
	}
	l.report(def, OpCreated, start)
	return container
}

// Tag binds a plain container with the given tag whose items render the
// values as text.
func (l *List[T]) Tag(tag string) dom.Node {
	return l.Bind(ListSpec[T]{Tag: tag})
}

// Append adds v at the end.
func (l *List[T]) Append(v T) {
	start := time.Now()
	e := l.newEntry(v)
	l.store = append(l.store, e)
	l.publish()

	index := len(l.store) - 1
	for _, def := range l.defs {
		def.container.AppendChild(l.buildItem(def, e, index))
		l.refresh(def)
		l.report(def, OpAppend, start)
	}
}

// Prepend adds v at the start.
func (l *List[T]) Prepend(v T) {
	start := time.Now()
	e := l.newEntry(v)
	l.store = slices.Insert(l.store, 0, e)
	l.publish()

	for _, def := range l.defs {
		def.container.InsertBefore(l.buildItem(def, e, 0), l.nodeAt(def, 1))
		l.refresh(def)
		l.report(def, OpPrepend, start)
	}
}

// InsertAt adds v so that it ends up at index. The index is clamped to
// [0, Len()], so InsertAt(0, v) prepends and InsertAt(Len(), v) appends.
func (l *List[T]) InsertAt(index int, v T) {
	start := time.Now()
	index = max(0, min(index, len(l.store)))
	e := l.newEntry(v)
	l.store = slices.Insert(l.store, index, e)
	l.publish()

	for _, def := range l.defs {
		def.container.InsertBefore(l.buildItem(def, e, index), l.nodeAt(def, index+1))
		l.refresh(def)
		l.report(def, OpInsert, start)
	}
}

// RemoveAt removes the entry at index. Out of range indexes are ignored.
func (l *List[T]) RemoveAt(index int) {
	if index < 0 || index >= len(l.store) {
		return
	}
	start := time.Now()
	e := l.store[index]
	l.store = slices.Delete(l.store, index, index+1)
	l.publish()

	for _, def := range l.defs {
		def.drop(e.id)
		l.refresh(def)
		l.report(def, OpRemoveAt, start)
	}
}

// RemoveNode removes the entry whose item node is n, as identified by its
// MarkerAttribute. Nodes without the marker, or with an unknown one, are
// ignored.
func (l *List[T]) RemoveNode(n dom.Node) {
	if !dom.IsNode(n) {
		return
	}
	id, ok := n.Attribute(MarkerAttribute)
	if !ok {
		return
	}
	index := l.IndexOf(id)
	if index < 0 {
		return
	}
	start := time.Now()
	l.store = slices.Delete(l.store, index, index+1)
	l.publish()

	for _, def := range l.defs {
		def.drop(id)
		l.refresh(def)
		l.report(def, OpRemoveNode, start)
	}
}

// Clear removes every entry.
func (l *List[T]) Clear() {
	start := time.Now()
	l.store = nil
	l.publish()

	for _, def := range l.defs {
		def.dropAll()
		l.refresh(def)
		l.report(def, OpClear, start)
	}
}

// Rebuild regenerates the items of every definition, or of the dynamic
// ones only, from the current entries. Entry identities are kept.
func (l *List[T]) Rebuild(onlyDynamic bool) {
	l.rebuild(onlyDynamic, OpRebuild)
}

// SetValues replaces the whole collection. Entries get new identities and
// dynamic definitions are rebuilt.
func (l *List[T]) SetValues(u reactive.Update[[]T]) {
	next := u.Resolve(l.snapshot())
	store := make([]*entry[T], 0, len(next))
	for _, v := range next {
		store = append(store, l.newEntry(v))
	}
	l.store = store
	l.publish()
	l.rebuild(true, OpSetValues)
}

// Values returns a copy of the current values, subscribing the running
// effect if there is one.
func (l *List[T]) Values() []T {
	return slices.Clone(l.changes.Get())
}

// Subscribe calls fn with the values after every change of the collection.
func (l *List[T]) Subscribe(fn func([]T)) *reactive.Subscription {
	return l.changes.Subscribe(fn)
}

// Len returns the number of entries without subscribing.
func (l *List[T]) Len() int {
	return len(l.store)
}

// ItemValue returns the value at index.
func (l *List[T]) ItemValue(index int) (T, bool) {
	if index < 0 || index >= len(l.store) {
		var zero T
		return zero, false
	}
	return l.store[index].value, true
}

// ItemID returns the identity of the entry at index.
func (l *List[T]) ItemID(index int) (string, bool) {
	if index < 0 || index >= len(l.store) {
		return "", false
	}
	return l.store[index].id, true
}

// IndexOf returns the current index of the entry with the given identity,
// or -1.
func (l *List[T]) IndexOf(id string) int {
	return slices.IndexFunc(l.store, func(e *entry[T]) bool { return e.id == id })
}

// SetItemValue replaces the value at index in place. The entry keeps its
// identity and item nodes; its cell, slots, item attributes and container
// attributes are refreshed. Out of range indexes are ignored.
func (l *List[T]) SetItemValue(index int, v T) {
	if index < 0 || index >= len(l.store) {
		return
	}
	start := time.Now()
	e := l.store[index]
	e.value = v
	e.cell.Set(v)

	for _, def := range l.defs {
		for _, s := range def.slots[e.id] {
			next := s.spec.Field.Resolve(v, index)
			if !reactive.Equal(s.cell.Peek(), next) {
				s.cell.Set(next)
				def.observer.ItemChanged(ItemEvent{Op: ItemSlotUpdated, Container: def.name, ID: e.id, Index: index, Slot: s.spec.Name})
			}
			s.cell.SetAttributes(slotAttrs(s.spec, v, index), attr.SkipEvents())
		}
	}
	l.publish()

	for _, def := range l.defs {
		if n, ok := def.nodes[e.id]; ok && def.spec.Item.Attrs != nil {
			attr.Apply(def.spec.Item.Attrs(v, index), n, attr.SkipEvents())
		}
		def.observer.ItemChanged(ItemEvent{Op: ItemUpdated, Container: def.name, ID: e.id, Index: index})
	}
	for _, def := range l.defs {
		l.refresh(def)
		l.report(def, OpSetItem, start)
	}
}

// UpdateItem replaces the value at index with fn(current).
func (l *List[T]) UpdateItem(index int, fn func(T) T) {
	if v, ok := l.ItemValue(index); ok {
		l.SetItemValue(index, fn(v))
	}
}

func (l *List[T]) rebuild(onlyDynamic bool, op ListOp) {
	start := time.Now()
	for _, def := range l.defs {
		if onlyDynamic && !def.spec.Dynamic {
			continue
		}
		def.dropAll()
		for i, e := range l.store {
			def.container.AppendChild(l.buildItem(def, e, i))
		}
		l.refresh(def)
		l.report(def, op, start)
	}
	for _, e := range l.store {
		e.cell.prune(l.attached)
	}
}

// attached reports whether n sits inside one of the list's containers.
func (l *List[T]) attached(n dom.Node) bool {
	for p := n; p != nil; p = p.Parent() {
		for _, def := range l.defs {
			if p == def.container {
				return true
			}
		}
	}
	return false
}

func (l *List[T]) newEntry(v T) *entry[T] {
	return &entry[T]{
		id:    l.ids.NewID(),
		value: v,
		cell:  NewValue(v, WithDocument(l.doc), WithTracker(l.tracker)),
	}
}

func (l *List[T]) snapshot() []T {
	out := make([]T, len(l.store))
	for i, e := range l.store {
		out[i] = e.value
	}
	return out
}

func (l *List[T]) publish() {
	l.changes.Set(l.snapshot())
}

// refresh re-applies the container rule after a membership change.
func (l *List[T]) refresh(def *definition[T]) {
	if def.spec.Attrs == nil {
		return
	}
	attr.Apply(def.spec.Attrs(l.snapshot()), def.container, attr.SkipEvents())
}

func (l *List[T]) report(def *definition[T], op ListOp, start time.Time) {
	def.observer.ListChanged(ListEvent{
		Op:        op,
		Container: def.name,
		Len:       len(l.store),
		Start:     start,
		Duration:  time.Since(start),
	})
}

func (l *List[T]) observerFor(def *definition[T]) Observer {
	var obs Observers
	if l.observer != nil {
		obs = append(obs, l.observer)
	}
	if def.spec.Debug {
		obs = append(obs, &logObserver{
			logger: l.logger.With("component", "tagr.list"),
			level:  slog.LevelInfo,
		})
	}
	return obs
}

// nodeAt returns the item node def holds for the entry at index, or nil
// past the end so that InsertBefore appends.
func (l *List[T]) nodeAt(def *definition[T], index int) dom.Node {
	if index < 0 || index >= len(l.store) {
		return nil
	}
	return def.nodes[l.store[index].id]
}

// drop detaches the item node of an entry and forgets its slots.
func (def *definition[T]) drop(id string) {
	if n, ok := def.nodes[id]; ok {
		def.container.RemoveChild(n)
	}
	delete(def.nodes, id)
	delete(def.slots, id)
}

// dropAll detaches every item node. Children the container had before Bind
// stay in place.
func (def *definition[T]) dropAll() {
	for _, n := range def.nodes {
		def.container.RemoveChild(n)
	}
	clear(def.nodes)
	clear(def.slots)
}

func containerName(name string, container dom.Node) string {
	if name != "" {
		return name
	}
	name = container.Tag()
	if id, ok := container.Attribute("id"); ok && id != "" {
		name += "#" + id
	}
	return name
}
