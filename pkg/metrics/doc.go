// Package metrics exports list activity as Prometheus metrics.
//
// A Collector is a tagr.Observer; attach it to lists with tagr.WithObserver
// and serve the registry with promhttp.
package metrics
