package inspect

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vmihailenco/msgpack/v5"

	ierrors "github.com/tagr-dev/tagr/internal/errors"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/metrics"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxCommandSize  = 64 * 1024
	shutdownTimeout = 5 * time.Second
)

// Host is the document an inspector serves. *dom.MemoryDocument satisfies it.
type Host interface {
	Body() dom.Node
	Dispatch(n dom.Node, ev dom.Event) bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records dispatches on c and serves g at /metrics.
func WithMetrics(c *metrics.Collector, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = c
		s.gatherer = g
	}
}

// WithCheckOrigin overrides the websocket origin check.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = fn
	}
}

// Server exposes a running application's host document over HTTP and
// websockets.
type Server struct {
	host     Host
	loop     *Loop
	hub      *Hub
	logger   *slog.Logger
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer
	upgrader websocket.Upgrader
}

// New creates a server for host. Every access to host runs on loop.
func New(host Host, loop *Loop, opts ...Option) *Server {
	s := &Server{
		host:   host,
		loop:   loop,
		logger: slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "inspect.server")
	s.hub = NewHub(s.logger)
	return s
}

// Hub returns the event hub. Register it as an observer on the lists to
// stream their events to clients.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the inspector routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/tree", s.handleTree)
	r.Get("/tree.msgpack", s.handleTreeMsgpack)
	r.Get("/tree.txt", s.handleTreeText)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/ws", s.handleWebSocket)
	return r
}

// ListenAndServe serves Handler on addr until ctx is cancelled, then shuts
// down gracefully and disconnects websocket clients.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("inspector listening", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down inspector")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.hub.Close()
		return srv.Shutdown(shutdownCtx)
	}
}

// snapshot takes a tree snapshot on the loop.
func (s *Server) snapshot(ctx context.Context) (dom.Snapshot, error) {
	var snap dom.Snapshot
	err := s.loop.Do(ctx, func() {
		snap = dom.TakeSnapshot(s.host.Body())
	})
	return snap, err
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.logger.Error("encode tree", "error", err)
	}
}

func (s *Server) handleTreeMsgpack(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	data, err := msgpack.Marshal(snap)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/msgpack")
	w.Write(data)
}

func (s *Server) handleTreeText(w http.ResponseWriter, r *http.Request) {
	var text string
	if err := s.loop.Do(r.Context(), func() { text = dom.Dump(s.host.Body()) }); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := s.hub.register()
	s.logger.Debug("client connected", "remote", r.RemoteAddr)

	go s.writeLoop(conn, c)
	s.readLoop(r.Context(), conn, c)

	s.hub.unregister(c)
	s.logger.Debug("client disconnected", "remote", r.RemoteAddr)
}

// readLoop decodes commands until the connection fails.
func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, c *client) {
	conn.SetReadLimit(maxCommandSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read error", "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.reply(c, errorMessage("E141", fmt.Errorf("decode command: %w", err)))
			continue
		}
		s.reply(c, s.execute(ctx, cmd))
	}
}

// writeLoop is the connection's only writer.
func (s *Server) writeLoop(conn *websocket.Conn, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.logger.Debug("websocket write error", "error", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// execute runs one command on the loop and returns the reply.
func (s *Server) execute(ctx context.Context, cmd Command) Message {
	switch cmd.Type {
	case CommandSnapshot:
		snap, err := s.snapshot(ctx)
		if err != nil {
			return Message{Type: MessageError, Error: err.Error()}
		}
		return Message{Type: MessageTree, Tree: &snap}

	case CommandDispatch:
		var handled bool
		var found bool
		err := s.loop.Do(ctx, func() {
			n, ok := dom.Resolve(s.host.Body(), cmd.Path)
			if !ok {
				return
			}
			found = true
			handled = s.host.Dispatch(n, dom.Event{Type: cmd.Event, Value: cmd.Value, Key: cmd.Key})
		})
		if err != nil {
			return Message{Type: MessageError, Error: err.Error()}
		}
		if !found {
			return errorMessage("E142", fmt.Errorf("%w: path %v", ErrNodeNotFound, cmd.Path))
		}
		if s.metrics != nil {
			s.metrics.RecordDispatch(cmd.Event, handled)
		}
		return Message{Type: MessageResult, Handled: handled}

	default:
		return errorMessage("E141", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type))
	}
}

// errorMessage reports err to the client under a registered error code.
func errorMessage(code string, err error) Message {
	e := ierrors.FromError(err, code)
	return Message{Type: MessageError, Code: e.Code, Error: e.Error()}
}

func (s *Server) reply(c *client, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("encode reply", "error", err)
		return
	}
	s.hub.deliver(c, data)
}
