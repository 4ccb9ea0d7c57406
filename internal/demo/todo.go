package demo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tagr-dev/tagr/pkg/attr"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/reactive"
	"github.com/tagr-dev/tagr/pkg/tagr"
)

// Item is one todo entry.
type Item struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// DefaultItems seeds a new todo list.
var DefaultItems = []Item{
	{Title: "Buy Milk"},
	{Title: "Feed the dog", Completed: true},
	{Title: "Wash the car"},
}

// Todo is a todo list with an input that appends on Enter and derived
// completed and remaining counts.
type Todo struct {
	Root      dom.Node
	Input     dom.Node
	Container dom.Node
	Print     dom.Node

	List      *tagr.List[Item]
	Draft     *tagr.Value[string]
	Completed *tagr.Value[int]
	Remaining *tagr.Value[int]

	counts *reactive.Effect
	logger *slog.Logger
}

// NewTodo builds the todo app over a copy of DefaultItems. The app owns its
// tracker; a tracker passed in opts is replaced.
func NewTodo(doc dom.Document, logger *slog.Logger, opts ...tagr.Option) *Todo {
	if logger == nil {
		logger = slog.Default()
	}
	tr := reactive.NewTracker()
	opts = append([]tagr.Option{tagr.WithDocument(doc), tagr.WithLogger(logger)}, opts...)
	opts = append(opts, tagr.WithTracker(tr))

	t := &Todo{
		List:      tagr.NewList(append([]Item(nil), DefaultItems...), opts...),
		Draft:     tagr.NewValue("", opts...),
		Completed: tagr.NewValue(0, opts...),
		Remaining: tagr.NewValue(0, opts...),
		logger:    logger.With("component", "demo.todo"),
	}

	t.counts = reactive.RunEffect(func() {
		done := 0
		values := t.List.Values()
		for _, it := range values {
			if it.Completed {
				done++
			}
		}
		t.Completed.Set(done)
		t.Remaining.Set(len(values) - done)
	}, reactive.WithTracker(tr))

	t.Input = t.Draft.Bind(tagr.Spec[string]{
		Tag:      "input",
		Property: "value",
		Attrs: attr.Of(
			attr.Static("placeholder", "What needs to be done?"),
			attr.OnInput(func(ev *dom.Event, _ dom.Node) { t.Draft.Set(ev.Value) }),
			attr.OnKeyDown(func(ev *dom.Event, _ dom.Node) {
				if ev.Key == "Enter" {
					t.Add(t.Draft.Peek())
				}
			}),
		),
	})

	t.Container = t.List.Bind(tagr.ListSpec[Item]{
		Tag:     "ul",
		Name:    "todos",
		Dynamic: true,
		Attrs:   listAttrs,
		Item: tagr.ItemSpec[Item]{
			Attrs: itemAttrs,
			Slots: t.slots,
		},
	})

	t.Print = tagr.H(doc, "button",
		attr.Of(attr.OnClick(func(*dom.Event, dom.Node) {
			t.logger.Info("todo items", "items", t.List.Values())
		})),
		"print items")

	t.Root = tagr.H(doc, "div",
		attr.Of(attr.Style(map[string]string{"padding": "0", "margin": "0"})),
		tagr.H(doc, "h1", nil, "Todo App"),
		t.Input,
		t.Container,
		tagr.H(doc, "p", nil, "Completed Items: ", t.Completed.Tag("span")),
		tagr.H(doc, "p", nil, "Remaining Items: ", t.Remaining.Tag("span")),
		t.Print,
	)
	return t
}

// Add appends an item titled title and clears the input. Blank titles are
// ignored.
func (t *Todo) Add(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	t.List.Append(Item{Title: title})
	t.Draft.Set("")
}

// Toggle flips the completed flag of the item with the given id.
func (t *Todo) Toggle(id string) {
	i := t.List.IndexOf(id)
	if i < 0 {
		return
	}
	t.List.UpdateItem(i, func(it Item) Item {
		it.Completed = !it.Completed
		return it
	})
}

// Close stops the count effect.
func (t *Todo) Close() {
	t.counts.Dispose()
}

func (t *Todo) slots(ctx tagr.ItemContext[Item]) []tagr.SlotSpec[Item] {
	return []tagr.SlotSpec[Item]{
		{
			Name: "index",
			Tag:  "span",
			Field: tagr.FieldFunc(func(it Item, i int) any {
				return fmt.Sprintf("%d - %s", i+1, it.Title)
			}),
			Attrs: func(it Item, _ int) attr.Set {
				if it.Completed {
					return attr.Of(attr.Class("completed"))
				}
				return attr.Of(attr.Class("not-completed"))
			},
		},
		{
			Name:  "title",
			Tag:   "span",
			Field: tagr.FieldName[Item]("title"),
		},
		{
			Name:     "checked",
			Tag:      "input",
			Property: "checked",
			Field:    tagr.FieldName[Item]("completed"),
			Attrs: tagr.StaticItems[Item](attr.Of(
				attr.Type("checkbox"),
				attr.OnClick(func(*dom.Event, dom.Node) { t.Toggle(ctx.ParentID) }),
			)),
		},
	}
}

func itemAttrs(it Item, _ int) attr.Set {
	class, bg, fg := "pending", "indianred", "mistyrose"
	if it.Completed {
		class, bg, fg = "completed", "maroon", "palevioletred"
	}
	return attr.Of(
		attr.Class(class),
		attr.Style(map[string]string{
			"display":               "grid",
			"grid-template-columns": "auto 1fr auto",
			"gap":                   "12px",
			"text-align":            "left",
			"background-color":      bg,
			"color":                 fg,
		}),
	)
}

func listAttrs(items []Item) attr.Set {
	class := "completed list-attributes"
	for _, it := range items {
		if !it.Completed {
			class = "not-completed list-attributes"
			break
		}
	}
	return attr.Of(
		attr.Class(class),
		attr.Style(map[string]string{
			"padding":       "8px",
			"margin":        "50px auto",
			"max-width":     "800px",
			"border-radius": "12px",
			"border":        "2px solid palevioletred",
		}),
	)
}
