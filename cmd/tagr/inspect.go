package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/tagr-dev/tagr/internal/demo"
	"github.com/tagr-dev/tagr/internal/errors"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/inspect"
	"github.com/tagr-dev/tagr/pkg/metrics"
	"github.com/tagr-dev/tagr/pkg/tagr"
	"github.com/tagr-dev/tagr/pkg/tracing"
)

func inspectCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "inspect <name>",
		Short: "Serve a demo to the inspector",
		Long: `Run a demo in an in-memory document and serve it over HTTP.

Endpoints:
  /healthz        liveness
  /tree           JSON snapshot of the document
  /tree.msgpack   msgpack snapshot of the document
  /tree.txt       indented outline
  /metrics        Prometheus metrics (when enabled)
  /ws             list and item events; accepts dispatch commands

Examples:
  tagr inspect todo
  tagr inspect counter --port=8080`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Inspector.Port = port
			}
			if host != "" {
				cfg.Inspector.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			loop := inspect.NewLoop(logger)
			go loop.Run(ctx)

			var srvOpts []inspect.Option
			var observers tagr.Observers
			srvOpts = append(srvOpts, inspect.WithLogger(logger))
			if cfg.Metrics.Enabled {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector())
				collector := metrics.New(
					metrics.WithNamespace(cfg.Metrics.Namespace),
					metrics.WithRegistry(reg))
				observers = append(observers, collector)
				srvOpts = append(srvOpts, inspect.WithMetrics(collector, reg))
			}
			if cfg.Tracing.Enabled {
				observers = append(observers, tracing.New(tracing.WithTracerName(cfg.Tracing.TracerName)))
			}
			if cfg.Debug {
				observers = append(observers, tagr.LogObserver(logger))
			}

			doc := dom.NewMemoryDocument()
			srv := inspect.New(doc, loop, srvOpts...)
			observers = append(observers, srv.Hub())

			var buildErr error
			err = loop.Do(ctx, func() {
				root, err := demo.Build(args[0], doc, logger, tagr.WithObserver(observers))
				if err != nil {
					buildErr = err
					return
				}
				buildErr = tagr.Mount(doc, "body", root)
			})
			if err != nil {
				return err
			}
			if buildErr != nil {
				return buildErr
			}

			success("Inspecting %s", args[0])
			info("Tree:      %s/tree.txt", cfg.InspectorURL())
			info("Events:    ws://%s/ws", cfg.InspectorAddress())
			if cfg.Metrics.Enabled {
				info("Metrics:   %s/metrics", cfg.InspectorURL())
			}

			if err := srv.ListenAndServe(ctx, cfg.InspectorAddress()); err != nil {
				return errors.New("E140").
					WithDetail(err.Error()).
					WithSuggestion("Pick another port with --port").
					Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from tagr.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from tagr.json)")

	return cmd
}
