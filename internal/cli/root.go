package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the koma CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug level. The logger is attached to the command context and shared by
// all subcommands.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "koma",
		Short:        "koma resolves the reading order of manga panels",
		Long:         `koma linearizes detected manga panel geometry into the right-to-left, top-to-bottom reading sequence used by manga, via recursive gutter-based page division.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("koma %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newOrderCmd())

	return root.ExecuteContext(context.Background())
}
