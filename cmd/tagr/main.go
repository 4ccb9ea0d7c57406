// Command tagr renders and inspects tagr demo applications.
package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagr-dev/tagr/internal/config"
	"github.com/tagr-dev/tagr/internal/demo"
	"github.com/tagr-dev/tagr/internal/errors"
	"github.com/tagr-dev/tagr/pkg/tagr"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags override tagr.json for every command.
type globalFlags struct {
	logLevel  string
	logFormat string
	debug     bool
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "tagr",
		Short: "Reactive bindings for host documents",
		Long: `tagr binds reactive values and lists to document nodes.

The command line renders the bundled demos into an in-memory
document and serves them to the inspector:

  • tagr demo todo       print the rendered tree
  • tagr inspect todo    serve the tree, events and metrics
  • tagr init            write a tagr.json with defaults`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from tagr.json)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json (default from tagr.json)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Log every list and item event")

	rootCmd.AddCommand(
		demoCmd(&flags),
		inspectCmd(&flags),
		initCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.Fprint(os.Stderr, cliError(err))
		os.Exit(1)
	}
}

// loadConfig reads tagr.json from the working directory or its parents,
// applies flag overrides and validates the result.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(".")
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if flags.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger from the log section of cfg.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler), nil
}

// cliError maps package sentinel errors to registered error codes.
func cliError(err error) error {
	switch {
	case stderrors.Is(err, tagr.ErrRootNotFound):
		return errors.FromError(err, "E101").
			WithSuggestion(`Mount into "body" or add an element matching the selector`)
	case stderrors.Is(err, demo.ErrUnknownDemo):
		return errors.FromError(err, "E102").
			WithSuggestion("Available demos: " + strings.Join(demo.Names(), ", ")).
			WithExample("tagr demo todo")
	}
	return err
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
