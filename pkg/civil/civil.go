// Package civil models proleptic Gregorian civil date/times whose fields may
// be out of their nominal ranges, and resolves them by carrying overflow and
// underflow into the next higher field.
//
// Years use the astronomical convention: year 0 is 1 BCE, year -1 is 2 BCE.
// All functions are pure and safe for concurrent use.
package civil

import (
	"fmt"
	"strings"
)

// DateTime is a civil date and time of day. Fields are raw integers and are
// only guaranteed to be within range after Normalize.
type DateTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// New returns a DateTime from six raw fields.
func New(y, m, d, h, mi, s int) DateTime {
	return DateTime{Year: y, Month: m, Day: d, Hour: h, Minute: mi, Second: s}
}

// Fields returns the six fields in order of significance.
func (dt DateTime) Fields() (y, m, d, h, mi, s int) {
	return dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second
}

// IsNormalized reports whether every field is within its nominal range,
// with the day checked against the leap state of the year.
func (dt DateTime) IsNormalized() bool {
	switch {
	case dt.Month < 1 || dt.Month > 12:
		return false
	case dt.Day < 1 || dt.Day > DaysInMonth(dt.Year, dt.Month):
		return false
	case dt.Hour < 0 || dt.Hour > 23:
		return false
	case dt.Minute < 0 || dt.Minute > 59:
		return false
	case dt.Second < 0 || dt.Second > 59:
		return false
	}
	return true
}

// String formats dt as YYYY-MM-DDThh:mm:ss. Years outside 0..9999 carry an
// explicit sign, following the ISO 8601 expanded representation.
func (dt DateTime) String() string {
	var b strings.Builder
	switch {
	case dt.Year < 0:
		fmt.Fprintf(&b, "-%04d", -dt.Year)
	case dt.Year > 9999:
		fmt.Fprintf(&b, "+%d", dt.Year)
	default:
		fmt.Fprintf(&b, "%04d", dt.Year)
	}
	fmt.Fprintf(&b, "-%02d-%02dT%02d:%02d:%02d", dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	return b.String()
}

// Field identifies one of the six DateTime fields.
type Field int

// NoField is the zero Field; it identifies no field.
const (
	NoField Field = iota
	Year
	Month
	Day
	Hour
	Minute
	Second
)

var fieldNames = [...]string{"none", "year", "month", "day", "hour", "minute", "second"}

func (f Field) String() string {
	if f < NoField || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField returns the Field named s (case-insensitive).
func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i := Year; int(i) < len(fieldNames); i++ {
		if fieldNames[i] == name {
			return i, nil
		}
	}
	return NoField, fmt.Errorf("unknown field %q", s)
}

// Get returns the value of field f, or 0 for NoField.
func (dt DateTime) Get(f Field) int {
	switch f {
	case Year:
		return dt.Year
	case Month:
		return dt.Month
	case Day:
		return dt.Day
	case Hour:
		return dt.Hour
	case Minute:
		return dt.Minute
	case Second:
		return dt.Second
	default:
		return 0
	}
}

// With returns a copy of dt with field f set to v. The result is not
// normalized.
func (dt DateTime) With(f Field, v int) DateTime {
	switch f {
	case Year:
		dt.Year = v
	case Month:
		dt.Month = v
	case Day:
		dt.Day = v
	case Hour:
		dt.Hour = v
	case Minute:
		dt.Minute = v
	case Second:
		dt.Second = v
	default:
	}
	return dt
}
