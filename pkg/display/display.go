// Package display renders civil date/times for the terminal.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/jdcal/pkg/civil"
	"github.com/codeGROOVE-dev/jdcal/pkg/julian"
)

var (
	selectedColor = color.New(color.FgBlack, color.BgCyan)
	weekendColor  = color.New(color.FgHiBlack)
	rolledColor   = color.New(color.FgYellow, color.Bold)
	headerColor   = color.New(color.Bold)
)

// Calendar renders the month of dt as a Monday-first grid with dt's day
// highlighted. dt must be normalized.
func Calendar(dt civil.DateTime) string {
	var out strings.Builder

	out.WriteString(headerColor.Sprintf("%s %d", time.Month(dt.Month), dt.Year) + "\n")
	out.WriteString(strings.Repeat("─", 20) + "\n")
	out.WriteString("Mo Tu We Th Fr Sa Su\n")

	first := julian.Weekday(julian.CivilToJulianDay(dt.Year, dt.Month, 1, 12, 0, 0))
	col := (int(first) + 6) % 7
	out.WriteString(strings.Repeat("   ", col))

	days := civil.DaysInMonth(dt.Year, dt.Month)
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == dt.Day:
			cell = selectedColor.Sprint(cell)
		case col >= 5:
			cell = weekendColor.Sprint(cell)
		default:
		}
		out.WriteString(cell)

		col++
		if col == 7 {
			out.WriteString("\n")
			col = 0
		} else if day < days {
			out.WriteString(" ")
		}
	}
	if col != 0 {
		out.WriteString("\n")
	}
	return out.String()
}

// Fields renders got as YYYY-MM-DD hh:mm:ss, emphasizing each field that
// rollover changed from the submitted value.
func Fields(submitted, got civil.DateTime) string {
	mark := func(f civil.Field, s string) string {
		if submitted.Get(f) != got.Get(f) {
			return rolledColor.Sprint(s)
		}
		return s
	}
	year := fmt.Sprintf("%04d", got.Year)
	if got.Year < 0 {
		year = fmt.Sprintf("-%04d", -got.Year)
	}
	return fmt.Sprintf("%s-%s-%s %s:%s:%s",
		mark(civil.Year, year),
		mark(civil.Month, fmt.Sprintf("%02d", got.Month)),
		mark(civil.Day, fmt.Sprintf("%02d", got.Day)),
		mark(civil.Hour, fmt.Sprintf("%02d", got.Hour)),
		mark(civil.Minute, fmt.Sprintf("%02d", got.Minute)),
		mark(civil.Second, fmt.Sprintf("%02d", got.Second)),
	)
}

// Weekday returns the English weekday name of a normalized civil date.
func Weekday(dt civil.DateTime) string {
	return julian.Weekday(julian.CivilToJulianDay(dt.Year, dt.Month, dt.Day, 12, 0, 0)).String()
}
