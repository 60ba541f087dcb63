// Package constants defines shared constants for the jdcal engine.
package constants

const (
	// SecondsPerDay is the length of a civil day. Leap seconds are not modeled.
	SecondsPerDay = 86400

	// UnixEpochJD is the Julian Day of 1970-01-01T00:00:00 UTC.
	UnixEpochJD = 2440587.5

	// UnixEpochJDN is the integer Julian Day Number of 1970-01-01 (noon).
	UnixEpochJDN = 2440588

	// J2000 is the Julian Day of the J2000.0 epoch, 2000-01-01T12:00:00 UTC.
	J2000 = 2451545.0

	// MJDOffset converts a Julian Day to a Modified Julian Day.
	MJDOffset = 2400000.5

	// MaxOffsetHours bounds the UTC offsets accepted from configuration.
	// Real zones span UTC-12 to UTC+14.
	MaxOffsetHours = 14
)
