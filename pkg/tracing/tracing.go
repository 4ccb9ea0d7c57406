package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tagr-dev/tagr/pkg/tagr"
)

// Default tracer name for tagr applications.
const defaultTracerName = "tagr"

// Config configures the tracing observer.
type Config struct {
	// TracerName is the name of the tracer (default: "tagr").
	TracerName string

	// Tracer overrides the tracer resolved from the global provider.
	Tracer trace.Tracer

	// Parent is the context spans are started from (default: Background).
	Parent context.Context

	// Filter determines which operations to trace.
	// If nil, all operations are traced.
	Filter func(ev tagr.ListEvent) bool
}

// Option configures the tracing observer.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithTracer sets the tracer directly.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) {
		c.Tracer = tracer
	}
}

// WithParent sets the context spans are started from.
func WithParent(ctx context.Context) Option {
	return func(c *Config) {
		c.Parent = ctx
	}
}

// WithFilter sets a filter function for operations.
func WithFilter(filter func(ev tagr.ListEvent) bool) Option {
	return func(c *Config) {
		c.Filter = filter
	}
}

// Observer is a tagr.Observer emitting one span per list operation and
// container. Item events reported during the operation are recorded as
// span events of their own container's span.
type Observer struct {
	config  Config
	tracer  trace.Tracer
	pending map[string][]tagr.ItemEvent
}

var _ tagr.Observer = (*Observer)(nil)

// New returns a tracing observer. The tracer comes from the global
// OpenTelemetry provider unless WithTracer is given; configure the provider
// in main before creating lists:
//
//	otel.SetTracerProvider(tp)
//	todos := tagr.NewList(items, tagr.WithObserver(tracing.New()))
func New(opts ...Option) *Observer {
	config := Config{
		TracerName: defaultTracerName,
		Parent:     context.Background(),
	}
	for _, opt := range opts {
		opt(&config)
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer(config.TracerName)
	}
	return &Observer{config: config, tracer: tracer, pending: make(map[string][]tagr.ItemEvent)}
}

// ItemChanged implements tagr.Observer.
func (o *Observer) ItemChanged(ev tagr.ItemEvent) {
	o.pending[ev.Container] = append(o.pending[ev.Container], ev)
}

// ListChanged implements tagr.Observer.
func (o *Observer) ListChanged(ev tagr.ListEvent) {
	items := o.pending[ev.Container]
	delete(o.pending, ev.Container)
	if o.config.Filter != nil && !o.config.Filter(ev) {
		return
	}

	_, span := o.tracer.Start(
		o.config.Parent,
		"tagr.list."+string(ev.Op),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithTimestamp(ev.Start),
		trace.WithAttributes(
			attribute.String("tagr.op", string(ev.Op)),
			attribute.String("tagr.container", ev.Container),
			attribute.Int("tagr.len", ev.Len),
		),
	)
	for _, item := range items {
		attrs := []attribute.KeyValue{
			attribute.String("tagr.item_id", item.ID),
			attribute.Int("tagr.index", item.Index),
		}
		if item.Slot != "" {
			attrs = append(attrs, attribute.String("tagr.slot", item.Slot))
		}
		span.AddEvent("item."+string(item.Op), trace.WithAttributes(attrs...))
	}
	span.End(trace.WithTimestamp(ev.Start.Add(ev.Duration)))
}
