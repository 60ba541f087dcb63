package timezone

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/jdcal/pkg/tzconvert"
)

// Resolve builds a resolver from a zone description:
//
//   - "" or "UTC": UTC
//   - "UTC+5:30", "GMT-4", "+09:00": a Fixed offset
//   - "@zones.yaml": a Table loaded from the file
//   - "Local": the system zone
//   - anything else: an IANA zone name such as "America/New_York"
func Resolve(zone string) (tzconvert.OffsetResolver, error) {
	zone = strings.TrimSpace(zone)
	switch {
	case zone == "":
		return Fixed(0), nil
	case strings.HasPrefix(zone, "@"):
		t, err := LoadTableFile(zone[1:])
		if err != nil {
			return nil, err
		}
		return t, nil
	case strings.HasPrefix(zone, "+"), strings.HasPrefix(zone, "-"),
		len(zone) >= 3 && (strings.EqualFold(zone[:3], "UTC") || strings.EqualFold(zone[:3], "GMT")),
		strings.EqualFold(zone, "Z"):
		offset, err := tzconvert.ParseUTCOffset(zone)
		if err != nil {
			return nil, err
		}
		return Fixed(offset), nil
	default:
	}

	loc, err := LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("unknown zone %q: %w", zone, err)
	}
	return loc, nil
}

// Name describes a resolver for display.
func Name(r tzconvert.OffsetResolver) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return "custom"
}
