// Package timezone provides UTC offset resolvers for the tzconvert shifter:
// fixed offsets, IANA zones from Go's tz database, transition tables loaded
// from YAML, and a bounded cache in front of any of them.
package timezone

import (
	"math"
	"time"

	"github.com/codeGROOVE-dev/jdcal/pkg/constants"
	"github.com/codeGROOVE-dev/jdcal/pkg/tzconvert"
)

// Fixed is a constant UTC offset in hours.
type Fixed float64

// OffsetHours returns the fixed offset regardless of jd.
func (f Fixed) OffsetHours(float64) float64 { return float64(f) }

func (f Fixed) String() string { return tzconvert.FormatOffset(float64(f)) }

// Location resolves offsets from Go's tz database. The Julian Day is read
// as a UTC instant for the lookup.
type Location struct {
	loc *time.Location
}

// NewLocation returns a resolver for loc.
func NewLocation(loc *time.Location) Location {
	return Location{loc: loc}
}

// LoadLocation returns a resolver for the IANA zone name, e.g. "Asia/Kolkata".
func LoadLocation(name string) (Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Location{}, err
	}
	return NewLocation(loc), nil
}

// OffsetHours returns the zone offset in effect at jd. Non-finite Julian
// Days and those outside the range of time.Time resolve to 0.
func (l Location) OffsetHours(jd float64) float64 {
	t, ok := instant(jd)
	if !ok {
		return 0
	}
	_, offset := t.In(l.loc).Zone()
	return float64(offset) / 3600
}

func (l Location) String() string { return l.loc.String() }

// maxUnixSeconds keeps the millisecond count of an instant within int64.
const maxUnixSeconds = 1 << 52

// instant converts a UTC Julian Day to a time.Time. The result is rounded
// to the millisecond, which absorbs the float error of whole-second Julian
// Days so that an instant exactly at a transition lands on it.
func instant(jd float64) (time.Time, bool) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return time.Time{}, false
	}
	secs := (jd - constants.UnixEpochJD) * constants.SecondsPerDay
	if math.Abs(secs) >= maxUnixSeconds {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(math.Round(secs * 1000))).UTC(), true
}

var (
	_ tzconvert.OffsetResolver = Fixed(0)
	_ tzconvert.OffsetResolver = Location{}
	_ tzconvert.OffsetResolver = (*Table)(nil)
	_ tzconvert.OffsetResolver = (*Cache)(nil)
)
