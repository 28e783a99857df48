package cmd

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/dividers/cmd/dividerdemo/internal/config"
	"github.com/go-drift/dividers/cmd/dividerdemo/internal/termui"
	hosterrors "github.com/go-drift/dividers/pkg/errors"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		mode       string
		dark       bool
		logPath    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive divider demo",
		Long: `Run opens a full-screen terminal surface with draggable dividers.

Modes:
  columns  resizable columns separated by a multi-handle divider
  rows     a two-pane split driven by a single vertical divider

Flags override the matching keys of the optional YAML config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if cmd.Flags().Changed("dark") {
				cfg.Dark = dark
			}

			appMode, err := parseMode(cfg.Mode)
			if err != nil {
				return err
			}
			style, err := cfg.StyleFn()
			if err != nil {
				return err
			}

			// The screen owns the terminal while the demo runs, so the
			// logger moves to a file, or nowhere at all.
			logger := loggerFromContext(cmd.Context())
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logger = newLogger(f, logger.GetLevel())
			} else {
				logger = newLogger(io.Discard, charmlog.FatalLevel)
			}

			hosterrors.SetHandler(&hosterrors.LogHandler{Logger: logger, Verbose: true})

			app, err := termui.New(termui.Options{
				Mode:       appMode,
				Theme:      cfg.Theme(),
				Style:      style,
				Boundaries: cfg.Columns,
				Split:      cfg.Split,
				Step:       cfg.Step,
				MinPane:    cfg.MinPane,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			return app.Run()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "dividerdemo.yaml", "path to the YAML config")
	cmd.Flags().StringVarP(&mode, "mode", "m", "columns", "demo mode: columns or rows")
	cmd.Flags().BoolVar(&dark, "dark", false, "use the dark palette")
	cmd.Flags().StringVar(&logPath, "log-file", "", "write logs to this file while the screen is active")

	return cmd
}

func parseMode(s string) (termui.Mode, error) {
	switch s {
	case "", "columns":
		return termui.ModeColumns, nil
	case "rows":
		return termui.ModeRows, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want columns or rows)", s)
	}
}
