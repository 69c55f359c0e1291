// Package cli implements the gridkit command-line interface.
//
// It provides commands for bundling product photographs into grid images,
// rendering measurement tables and captions, and appending tables to
// existing images. The CLI is built with cobra; --verbose (-v) switches the
// charmbracelet/log logger to debug level, and loggers travel through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the gridkit CLI.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "gridkit",
		Short:        "gridkit composes product photos into bundled grid images",
		Long:         `gridkit composes multiple product photographs into a single grid image, optionally overlaying a measurement table or caption, for catalog photo production.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gridkit %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML style config file")

	root.AddCommand(newBundleCmd(&configPath))
	root.AddCommand(newTableCmd(&configPath))
	root.AddCommand(newCaptionCmd(&configPath))
	root.AddCommand(newAppendCmd(&configPath))

	return root.ExecuteContext(ctx)
}
