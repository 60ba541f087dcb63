// Package julian converts between civil date/times and Julian Days.
//
// A Julian Day (JD) is a continuous count of days whose integer values fall
// at noon: JD 2451545.0 is 2000-01-01T12:00:00 and JD 2451544.5 is the
// preceding midnight. Conversions use the proleptic Gregorian calendar and
// integer seconds; leap seconds are not modeled.
package julian

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/codeGROOVE-dev/jdcal/pkg/civil"
	"github.com/codeGROOVE-dev/jdcal/pkg/constants"
)

// ErrInvalidArgument is returned when a Julian Day cannot be converted,
// such as NaN, an infinity, or a value beyond MaxJulianDay.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxJulianDay bounds the magnitude of Julian Days accepted by the civil
// converters. Beyond it the second count of a day no longer fits in an int64.
const MaxJulianDay = 1e13

// CivilToJulianDay returns the Julian Day for six normalized civil fields.
// The result is undefined for fields that are not normalized.
func CivilToJulianDay(y, m, d, h, mi, s int) float64 {
	days := civil.DayNumber(y, m, d) + constants.UnixEpochJDN
	secs := int64(h)*3600 + int64(mi)*60 + int64(s) - constants.SecondsPerDay/2
	return float64(days) + float64(secs)/constants.SecondsPerDay
}

// FromCivil returns the Julian Day of a normalized DateTime.
func FromCivil(dt civil.DateTime) float64 {
	return CivilToJulianDay(dt.Fields())
}

// Validate returns an error wrapping ErrInvalidArgument when jd cannot be
// converted to civil fields.
func Validate(jd float64) error {
	switch {
	case math.IsNaN(jd), math.IsInf(jd, 0):
		return fmt.Errorf("%w: julian day %v is not finite", ErrInvalidArgument, jd)
	case math.Abs(jd) > MaxJulianDay:
		return fmt.Errorf("%w: julian day %v exceeds ±%g", ErrInvalidArgument, jd, MaxJulianDay)
	}
	return nil
}

// ToCivil returns the normalized civil date/time of jd, rounded to the
// nearest second.
func ToCivil(jd float64) (civil.DateTime, error) {
	if err := Validate(jd); err != nil {
		return civil.DateTime{}, err
	}
	// Shift the epoch from noon to midnight.
	shifted := jd + 0.5
	day := math.Floor(shifted)
	secs := int(math.Round((shifted - day) * constants.SecondsPerDay))

	y, m, d := civil.FromDayNumber(int64(day) - constants.UnixEpochJDN)
	// Rounding may land on 86400; the normalizer carries it into the next day.
	dt, _ := civil.Normalize(civil.New(y, m, d, 0, 0, secs))
	return dt, nil
}

// JulianDayToDate returns the calendar date of jd. It agrees with the date
// part of ToCivil, including when the time of day rounds up to midnight.
func JulianDayToDate(jd float64) (y, m, d int, err error) {
	dt, err := ToCivil(jd)
	if err != nil {
		return 0, 0, 0, err
	}
	return dt.Year, dt.Month, dt.Day, nil
}

// JulianDayToTime returns the time of day of jd rounded to the nearest
// second. The second is never 60.
func JulianDayToTime(jd float64) (h, mi, s int, err error) {
	dt, err := ToCivil(jd)
	if err != nil {
		return 0, 0, 0, err
	}
	return dt.Hour, dt.Minute, dt.Second, nil
}

// Weekday returns the day of the week of jd.
func Weekday(jd float64) time.Weekday {
	n := int64(math.Floor(jd + 1.5))
	w := n % 7
	if w < 0 {
		w += 7
	}
	return time.Weekday(w)
}

// ModifiedJulianDay returns the Modified Julian Day of jd, whose days begin
// at midnight.
func ModifiedJulianDay(jd float64) float64 {
	return jd - constants.MJDOffset
}

// FromTime returns the Julian Day of t, including sub-second precision.
func FromTime(t time.Time) float64 {
	u := t.UTC()
	jd := CivilToJulianDay(u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second())
	return jd + float64(u.Nanosecond())/(constants.SecondsPerDay*1e9)
}

// ToTime returns the UTC time of jd rounded to the nearest second.
func ToTime(jd float64) (time.Time, error) {
	dt, err := ToCivil(jd)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC), nil
}
