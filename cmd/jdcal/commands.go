package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codeGROOVE-dev/jdcal/pkg/civil"
	"github.com/codeGROOVE-dev/jdcal/pkg/clock"
	"github.com/codeGROOVE-dev/jdcal/pkg/editor"
	"github.com/codeGROOVE-dev/jdcal/pkg/timezone"
)

var fieldOrder = []civil.Field{civil.Year, civil.Month, civil.Day, civil.Hour, civil.Minute, civil.Second}

// parseFields reads up to six integer fields in year..second order. Missing
// trailing fields are zero, except month and day which default to 1.
func parseFields(args []string) (civil.DateTime, error) {
	dt := civil.New(0, 1, 1, 0, 0, 0)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return civil.DateTime{}, fmt.Errorf("invalid %s %q: %w", fieldOrder[i], arg, err)
		}
		dt = dt.With(fieldOrder[i], v)
	}
	return dt, nil
}

func newNormalizeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize Y M D [h m s]",
		Short: "Roll out-of-range fields over into a valid date/time",
		Args:  cobra.RangeArgs(3, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseFields(args)
			if err != nil {
				return err
			}
			local, changed := civil.Normalize(input)

			r := newReport(local)
			r.Input = &input
			r.Normalized = changed
			return opts.print(cmd.OutOrStdout(), r)
		},
	}
}

func newToJDCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "to-jd Y M D [h m s]",
		Short: "Convert local civil fields in --zone to a UTC Julian Day",
		Args:  cobra.RangeArgs(3, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseFields(args)
			if err != nil {
				return err
			}
			e, err := opts.newEditor()
			if err != nil {
				return err
			}

			var last editor.Update
			cancel := e.Subscribe(func(u editor.Update) { last = u })
			defer cancel()
			utc := e.Apply(input)

			r := newReport(last.Local)
			r.Input = &input
			r.Normalized = last.Normalized
			r.Zone = timezone.Name(opts.resolver)
			r.setUTC(utc)
			return opts.print(cmd.OutOrStdout(), r)
		},
	}
}

func newFromJDCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "from-jd JD",
		Short: "Convert a UTC Julian Day to local civil fields in --zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid julian day %q: %w", args[0], err)
			}
			e, err := opts.newEditor()
			if err != nil {
				return err
			}
			local, err := e.SetUTC(jd)
			if err != nil {
				return fmt.Errorf("julian day %s: %w", args[0], err)
			}

			r := newReport(local)
			r.Zone = timezone.Name(opts.resolver)
			r.setUTC(jd)
			return opts.print(cmd.OutOrStdout(), r)
		},
	}
}

func newNowCommand(opts *rootOptions) *cobra.Command {
	var timeURL string

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current Julian Day and local date/time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("time-url") {
				timeURL = os.Getenv("JDCAL_TIME_URL")
			}
			var src clock.Source = clock.System{}
			if timeURL != "" {
				src = clock.NewHTTP(timeURL, opts.logger)
			}

			jd, err := clock.NowJD(cmd.Context(), src)
			if err != nil {
				return err
			}
			e, err := opts.newEditor()
			if err != nil {
				return err
			}
			local, err := e.SetUTC(jd)
			if err != nil {
				return err
			}

			r := newReport(local)
			r.Zone = timezone.Name(opts.resolver)
			r.setUTC(jd)
			r.calendar = true
			return opts.print(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().StringVar(&timeURL, "time-url", "",
		"read the time from this server's Date header (or set JDCAL_TIME_URL)")
	return cmd
}

func newCalendarCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar Y M [D]",
		Short: "Show the month grid around a date",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseFields(args)
			if err != nil {
				return err
			}
			local, changed := civil.Normalize(input)

			r := newReport(local)
			r.Normalized = changed
			r.DaysInMonth = civil.DaysInMonth(local.Year, local.Month)
			r.calendar = true
			return opts.print(cmd.OutOrStdout(), r)
		},
	}
}
