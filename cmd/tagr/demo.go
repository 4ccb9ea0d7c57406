package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagr-dev/tagr/internal/demo"
	"github.com/tagr-dev/tagr/internal/errors"
	"github.com/tagr-dev/tagr/pkg/dom"
	"github.com/tagr-dev/tagr/pkg/tagr"
)

func demoCmd(flags *globalFlags) *cobra.Command {
	var (
		output    string
		listeners bool
		markers   bool
	)

	cmd := &cobra.Command{
		Use:   "demo <name>",
		Short: "Render a demo and print the tree",
		Long: `Render a demo into an in-memory document and print the result.

Examples:
  tagr demo todo
  tagr demo counter --listeners
  tagr demo letters --output=json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			var opts []tagr.Option
			if cfg.Debug {
				opts = append(opts, tagr.WithObserver(tagr.LogObserver(logger)))
			}

			doc := dom.NewMemoryDocument()
			root, err := demo.Build(args[0], doc, logger, opts...)
			if err != nil {
				return err
			}
			if err := tagr.Mount(doc, "body", root); err != nil {
				return err
			}

			switch output {
			case "text":
				dumpOpts := dom.DumpOptions{Listeners: listeners}
				if !markers {
					dumpOpts.OmitAttrs = []string{tagr.MarkerAttribute}
				}
				fmt.Print(dom.DumpWith(root, dumpOpts))
				return nil
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(dom.TakeSnapshot(root))
			}
			return errors.New("E160").
				WithDetailf("--output=%q", output).
				WithSuggestion("Use --output=text or --output=json")
		},
	}

	cmd.Flags().StringVarP(&output, "output", "O", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&listeners, "listeners", false, "Show installed event listeners")
	cmd.Flags().BoolVar(&markers, "markers", true, "Show item marker attributes")

	return cmd
}
