// Package cmd implements the fortis CLI commands.
//
// The root command resolves the project configuration and sets up logging,
// then dispatches to its subcommands (render, names).
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-fortis/fortis/cmd/fortis/internal/config"
	"github.com/go-fortis/fortis/pkg/errors"
)

// Version information set at build time.
var Version = "0.1.0-dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Dir     string

	// Config is resolved before any subcommand runs.
	Config *config.Resolved
}

// NewRootCommand creates the root command for the fortis CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "fortis",
		Short:   "Fortis - attribute-driven components in Go",
		Long:    "Render the bundled fortis example apps to static HTML with declarative shadow roots.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.Dir
			if dir == "" {
				root, err := config.FindProjectRoot()
				if err != nil {
					root = "."
				}
				dir = root
			}
			cfg, err := config.Resolve(dir)
			if err != nil {
				return err
			}
			opts.Config = cfg
			setupLogging(opts.Verbose || cfg.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", "", "project directory holding "+config.FileName)

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewNamesCommand(opts))

	return cmd
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	errors.SetHandler(&errors.LogHandler{Verbose: verbose})
}
