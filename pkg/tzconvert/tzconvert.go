// Package tzconvert shifts Julian Days between local civil time and UTC.
// Julian Days handed to the rest of the engine are UTC; local Julian Days
// exist only for display and user input.
package tzconvert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/codeGROOVE-dev/jdcal/pkg/constants"
)

// OffsetResolver reports the UTC offset in hours (local = UTC + offset) in
// effect at a Julian Day. Offsets may be fractional, e.g. 5.5 for India.
type OffsetResolver interface {
	OffsetHours(jd float64) float64
}

// OffsetFunc adapts a plain function to an OffsetResolver.
type OffsetFunc func(jd float64) float64

// OffsetHours calls f(jd).
func (f OffsetFunc) OffsetHours(jd float64) float64 { return f(jd) }

// LocalToUTC converts a local Julian Day to UTC.
// Example: LocalToUTC(jd of 11:30 EDT, UTC-4) is jd of 15:30 UTC.
//
// The offset is looked up at localJD itself, before the shift. Within the
// hour around a DST transition the offset that applies to the resulting UTC
// instant may differ; that approximation is accepted rather than searched
// for a fixed point.
func LocalToUTC(localJD float64, r OffsetResolver) float64 {
	return localJD - r.OffsetHours(localJD)/24
}

// UTCToLocal converts a UTC Julian Day to local time.
// Example: UTCToLocal(jd of 02:00 UTC, UTC+8) is jd of 10:00 CST.
//
// The offset is looked up at utcJD, before the shift.
func UTCToLocal(utcJD float64, r OffsetResolver) float64 {
	return utcJD + r.OffsetHours(utcJD)/24
}

// ParseUTCOffset parses a fixed offset written as "UTC", "Z", "UTC+8",
// "UTC-4", "UTC+5:30", "UTC+0545", "GMT-3.5" or a bare "+05:30".
// Returns the offset in hours.
func ParseUTCOffset(s string) (float64, error) {
	str := strings.TrimSpace(s)
	switch {
	case strings.EqualFold(str, "UTC"), strings.EqualFold(str, "GMT"), strings.EqualFold(str, "Z"):
		return 0, nil
	case len(str) > 3 && (strings.EqualFold(str[:3], "UTC") || strings.EqualFold(str[:3], "GMT")):
		str = str[3:]
	default:
	}
	if str == "" {
		return 0, fmt.Errorf("parsing offset %q: empty", s)
	}

	// Handle the sign
	sign := 1.0
	switch str[0] {
	case '-':
		sign = -1
		str = str[1:]
	case '+':
		str = str[1:]
	default:
		return 0, fmt.Errorf("parsing offset %q: missing sign", s)
	}
	if !isOffsetNumber(str) {
		return 0, fmt.Errorf("parsing offset %q: want digits after the sign", s)
	}

	var hours, minutes float64
	var err error
	switch {
	case strings.Contains(str, ":"):
		h, m, _ := strings.Cut(str, ":")
		if hours, err = strconv.ParseFloat(h, 64); err == nil {
			minutes, err = strconv.ParseFloat(m, 64)
		}
	case len(str) == 4 && !strings.Contains(str, "."):
		if hours, err = strconv.ParseFloat(str[:2], 64); err == nil {
			minutes, err = strconv.ParseFloat(str[2:], 64)
		}
	default:
		hours, err = strconv.ParseFloat(str, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("parsing offset %q: %w", s, err)
	}
	if minutes < 0 || minutes >= 60 {
		return 0, fmt.Errorf("parsing offset %q: minutes out of range", s)
	}

	offset := sign * (hours + minutes/60)
	if math.IsNaN(offset) || math.Abs(offset) > constants.MaxOffsetHours {
		return 0, fmt.Errorf("parsing offset %q: %v hours exceeds ±%d", s, offset, constants.MaxOffsetHours)
	}
	return offset, nil
}

// isOffsetNumber reports whether s is an unsigned offset body: digits with
// either one ":" separating minutes or one "." for fractional hours.
func isOffsetNumber(s string) bool {
	if s == "" {
		return false
	}
	colons, dots := 0, 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == ':':
			colons++
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return colons+dots <= 1
}

// FormatOffset renders an offset in hours as "UTC+05:30". Offsets are
// rounded to the nearest minute.
func FormatOffset(hours float64) string {
	mins := int(math.Round(hours * 60))
	sign := '+'
	if mins < 0 {
		sign = '-'
		mins = -mins
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, mins/60, mins%60)
}
