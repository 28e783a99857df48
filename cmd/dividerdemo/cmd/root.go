package cmd

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Execute runs the dividerdemo CLI and returns an error if any command
// fails. --verbose switches the context logger from info to debug.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:   "dividerdemo",
		Short: "Interactive showcase for draggable divider handles",
		Long: `dividerdemo hosts the divider widgets on a terminal screen.
Drag the handles with the mouse to resize panes; press q or Escape to quit.`,
		Version:      Version,
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

	root.SetVersionTemplate(fmt.Sprintf("dividerdemo %s (built %s)\n", Version, BuildTime))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())

	return root.ExecuteContext(context.Background())
}
