//go:build js && wasm

// Command tagr-wasm mounts the todo demo on #app of the hosting page.
package main

import (
	"log/slog"
	"os"

	"github.com/tagr-dev/tagr/internal/demo"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/tagr"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	doc := dom.NewBrowserDocument()
	tagr.SetDefaultDocument(doc)

	app := demo.NewTodo(doc, logger)
	tagr.MustMount(doc, "#app", app.Root)
	logger.Info("todo mounted", "items", app.List.Len())

	// Listeners call back into Go, so the module must stay alive.
	select {}
}
