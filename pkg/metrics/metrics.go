package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tagr-dev/tagr/pkg/tagr"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "tagr").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for operation duration.
	// Default: fine-grained buckets from 10µs to 1s.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "tagr",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector is a tagr.Observer exporting list activity as Prometheus
// metrics. Metrics registered:
//   - tagr_list_operations_total: Counter of list operations by op
//   - tagr_list_operation_duration_seconds: Histogram of operation duration by op
//   - tagr_items_built_total: Counter of item nodes built
//   - tagr_item_updates_total: Counter of in-place item and slot updates by kind
//   - tagr_list_length: Gauge of entries per container
//   - tagr_dispatched_events_total: Counter of host events dispatched by the
//     inspector, by event type and status
//
// Registering two collectors on the same registry panics, so create one
// per registry:
//
//	m := metrics.New(metrics.WithNamespace("myapp"))
//	todos := tagr.NewList(items, tagr.WithObserver(m))
//	http.Handle("/metrics", promhttp.Handler())
type Collector struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	itemsBuilt prometheus.Counter
	updates    *prometheus.CounterVec
	length     *prometheus.GaugeVec
	dispatched *prometheus.CounterVec
}

var _ tagr.Observer = (*Collector)(nil)

// New registers the metrics and returns the collector.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "list_operations_total",
			Help:        "Total number of list operations applied to a container",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "list_operation_duration_seconds",
			Help:        "List operation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"op"}),

		itemsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "items_built_total",
			Help:        "Total number of item nodes built",
			ConstLabels: config.ConstLabels,
		}),

		updates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "item_updates_total",
			Help:        "Total number of in-place item updates",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		length: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "list_length",
			Help:        "Number of entries rendered in a container",
			ConstLabels: config.ConstLabels,
		}, []string{"container"}),

		dispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatched_events_total",
			Help:        "Total number of host events dispatched by the inspector",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "status"}),
	}
}

// ListChanged implements tagr.Observer.
func (c *Collector) ListChanged(ev tagr.ListEvent) {
	op := string(ev.Op)
	c.operations.WithLabelValues(op).Inc()
	c.duration.WithLabelValues(op).Observe(ev.Duration.Seconds())
	c.length.WithLabelValues(ev.Container).Set(float64(ev.Len))
}

// ItemChanged implements tagr.Observer.
func (c *Collector) ItemChanged(ev tagr.ItemEvent) {
	switch ev.Op {
	case tagr.ItemCreated:
		c.itemsBuilt.Inc()
	case tagr.ItemUpdated:
		c.updates.WithLabelValues("item").Inc()
	case tagr.ItemSlotUpdated:
		c.updates.WithLabelValues("slot").Inc()
	}
}

// RecordDispatch records a host event delivered to a node. handled reports
// whether any listener ran.
func (c *Collector) RecordDispatch(event string, handled bool) {
	status := "handled"
	if !handled {
		status = "unhandled"
	}
	c.dispatched.WithLabelValues(event, status).Inc()
}
