package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/tagr"
)

// ErrUnknownDemo is returned by Build for names not in Names.
var ErrUnknownDemo = errors.New("demo: unknown demo")

type builder func(doc dom.Document, logger *slog.Logger, opts ...tagr.Option) dom.Node

var demos = map[string]builder{
	"counter": func(doc dom.Document, logger *slog.Logger, opts ...tagr.Option) dom.Node {
		return NewCounter(doc, opts...).Root
	},
	"letters": func(doc dom.Document, logger *slog.Logger, opts ...tagr.Option) dom.Node {
		return NewLetters(doc, opts...).Root
	},
	"todo": func(doc dom.Document, logger *slog.Logger, opts ...tagr.Option) dom.Node {
		return NewTodo(doc, logger, opts...).Root
	},
}

// Names returns the available demos in sorted order.
func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build renders the named demo into doc and returns its root node. The
// root is not attached; mount it with tagr.Mount.
func Build(name string, doc dom.Document, logger *slog.Logger, opts ...tagr.Option) (dom.Node, error) {
	b, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return b(doc, logger, opts...), nil
}
