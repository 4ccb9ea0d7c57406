// Package inspect serves a running tagr application for debugging.
//
// A Server exposes the host document's tree as JSON (/tree), msgpack
// (/tree.msgpack) and an indented outline (/tree.txt), Prometheus metrics
// (/metrics) and a websocket (/ws). The websocket streams list and item
// events from every list observed by the server's Hub, and accepts commands
// that fire event listeners on nodes addressed by child-index path:
//
//	{"type":"dispatch","path":[1,0],"event":"click"}
//
// Nodes, cells and lists are not safe for concurrent use, so all access to
// the application goes through a Loop. Build the application inside
// Loop.Do and mutate it only from there.
//
//	loop := inspect.NewLoop(logger)
//	go loop.Run(ctx)
//	srv := inspect.New(doc, loop)
//	loop.Do(ctx, func() { demo.Todo(doc, tagr.WithObserver(srv.Hub())) })
//	srv.ListenAndServe(ctx, "localhost:7070")
package inspect
