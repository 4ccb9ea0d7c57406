package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tagr-dev/tagr/internal/config"
	"github.com/tagr-dev/tagr/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a tagr.json with default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			if config.Exists(abs) && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists", config.ConfigFileName).
					WithDetail(abs).
					WithSuggestion("Use --force to overwrite it")
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return err
			}

			cfg := config.New()
			cfg.Name = filepath.Base(abs)
			path := filepath.Join(abs, config.ConfigFileName)
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			success("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing tagr.json")

	return cmd
}
