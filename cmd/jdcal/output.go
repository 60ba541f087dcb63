package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/jdcal/pkg/civil"
	"github.com/codeGROOVE-dev/jdcal/pkg/display"
	"github.com/codeGROOVE-dev/jdcal/pkg/julian"
)

var labelColor = color.New(color.FgCyan)

// report is the result of one command, printed as text or JSON.
type report struct {
	Zone        string          `json:"zone,omitempty"`
	Input       *civil.DateTime `json:"input,omitempty"`
	Local       civil.DateTime  `json:"local"`
	Weekday     string          `json:"weekday"`
	UTC         *float64        `json:"utc_jd,omitempty"`
	MJD         *float64        `json:"mjd,omitempty"`
	Normalized  bool            `json:"normalized"`
	DaysInMonth int             `json:"days_in_month,omitempty"`

	calendar bool
}

func newReport(local civil.DateTime) report {
	return report{Local: local, Weekday: display.Weekday(local)}
}

func (r *report) setUTC(jd float64) {
	mjd := julian.ModifiedJulianDay(jd)
	r.UTC = &jd
	r.MJD = &mjd
}

func (o *rootOptions) print(w io.Writer, r report) error {
	if o.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	var out strings.Builder
	line := func(label, value string) {
		out.WriteString(labelColor.Sprintf("%-11s", label+":") + " " + value + "\n")
	}

	submitted := r.Local
	if r.Input != nil {
		submitted = *r.Input
		line("Input", r.Input.String())
	}
	line("Local", display.Fields(submitted, r.Local)+" "+r.Weekday)
	if r.Zone != "" {
		line("Zone", r.Zone)
	}
	if r.UTC != nil {
		line("Julian Day", fmt.Sprintf("%.6f", *r.UTC))
		line("MJD", fmt.Sprintf("%.6f", *r.MJD))
	}
	if r.Input != nil {
		line("Normalized", yesNo(r.Normalized))
	}
	if r.calendar {
		out.WriteString("\n" + display.Calendar(r.Local))
	}

	_, err := io.WriteString(w, out.String())
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
