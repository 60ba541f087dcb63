package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codeGROOVE-dev/jdcal/pkg/editor"
	"github.com/codeGROOVE-dev/jdcal/pkg/timezone"
	"github.com/codeGROOVE-dev/jdcal/pkg/tzconvert"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Zone    string
	Format  string // "text" | "json"
	Verbose bool
	NoColor bool

	logger   *slog.Logger
	resolver tzconvert.OffsetResolver
}

var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "jdcal",
		Short: "Convert civil date/times to and from Julian Days",
		Long: `jdcal normalizes civil date/time fields and converts them to and from
UTC Julian Days in any time zone.

Out-of-range fields roll over into their neighbours, so "2021 13 1" is
January 2022 and "2020 2 30" is March 1. Put negative values after "--".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Zone, "zone", "z", "UTC",
		"time zone: UTC offset, IANA name, Local or @table.yaml (or set JDCAL_ZONE)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newNormalizeCommand(opts))
	cmd.AddCommand(newToJDCommand(opts))
	cmd.AddCommand(newFromJDCommand(opts))
	cmd.AddCommand(newNowCommand(opts))
	cmd.AddCommand(newCalendarCommand(opts))

	return cmd
}

// setup validates global flags, configures logging and resolves the zone.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(validFormats, o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, validFormats)
	}

	level := slog.LevelError
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	if o.NoColor || o.Format == "json" {
		color.NoColor = true
	}

	if !cmd.Flags().Changed("zone") {
		if env := os.Getenv("JDCAL_ZONE"); env != "" {
			o.Zone = env
		}
	}
	r, err := timezone.Resolve(o.Zone)
	if err != nil {
		return err
	}
	o.resolver = timezone.NewCache(r, 0, o.logger)
	o.logger.Debug("resolved zone", "zone", o.Zone, "resolver", timezone.Name(r))
	return nil
}

// newEditor returns an editor in the configured zone.
func (o *rootOptions) newEditor() (*editor.Editor, error) {
	return editor.New(
		editor.WithLogger(o.logger),
		editor.WithResolver(o.resolver),
	)
}
