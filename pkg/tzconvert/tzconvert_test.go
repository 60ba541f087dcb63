package tzconvert

import (
	"math"
	"testing"
)

const j2000 = 2451545.0

func fixed(hours float64) OffsetResolver {
	return OffsetFunc(func(float64) float64 { return hours })
}

func TestUTCToLocal(t *testing.T) {
	tests := []struct {
		name   string
		utcJD  float64
		offset float64
		want   float64
	}{
		// Eastern Time (UTC-4)
		{"EDT noon UTC to 8am local", j2000, -4, j2000 - 4.0/24},
		{"EDT midnight wrap", j2000 - 10.0/24, -4, j2000 - 14.0/24},

		// India (UTC+5:30)
		{"IST half hour", j2000, 5.5, j2000 + 5.5/24},

		// Nepal (UTC+5:45)
		{"NPT quarter hour", j2000, 5.75, j2000 + 5.75/24},

		// China Time (UTC+8)
		{"CST wrap past midnight", j2000 + 8.0/24, 8, j2000 + 16.0/24},

		// GMT (UTC+0)
		{"GMT no change", j2000, 0, j2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UTCToLocal(tt.utcJD, fixed(tt.offset))
			if math.Abs(got-tt.want) > 1e-8 {
				t.Errorf("UTCToLocal(%v, %v) = %v, want %v",
					tt.utcJD, tt.offset, got, tt.want)
			}
		})
	}
}

func TestLocalToUTC(t *testing.T) {
	tests := []struct {
		name    string
		localJD float64
		offset  float64
		want    float64
	}{
		{"EDT 8am local to noon UTC", j2000 - 4.0/24, -4, j2000},
		{"PDT 5am local to noon UTC", j2000 - 7.0/24, -7, j2000},
		{"CST 10am local to 2am UTC", j2000 - 2.0/24, 8, j2000 - 10.0/24},
		{"IST to UTC", j2000, 5.5, j2000 - 5.5/24},
		{"GMT no change", j2000, 0, j2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalToUTC(tt.localJD, fixed(tt.offset))
			if math.Abs(got-tt.want) > 1e-8 {
				t.Errorf("LocalToUTC(%v, %v) = %v, want %v",
					tt.localJD, tt.offset, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Converting UTC->Local->UTC with a constant offset gives back the original.
	jds := []float64{0, 1721060, 2299160.5, j2000, 2460370.25, 5000000.123}
	offsets := []float64{-11, -7, -4, -3.5, 0, 3, 5.5, 5.75, 8, 12, 14}

	for _, jd := range jds {
		for _, offset := range offsets {
			r := fixed(offset)
			local := UTCToLocal(jd, r)
			back := LocalToUTC(local, r)
			if math.Abs(back-jd) > 1e-8 {
				t.Errorf("round trip failed: UTC %v -> local %v -> UTC %v (offset %v)",
					jd, local, back, offset)
			}
			if again := UTCToLocal(LocalToUTC(jd, r), r); math.Abs(again-jd) > 1e-8 {
				t.Errorf("round trip failed: local %v -> UTC -> local %v (offset %v)", jd, again, offset)
			}
		}
	}
}

func TestResolverQueriedBeforeShift(t *testing.T) {
	var queried []float64
	r := OffsetFunc(func(jd float64) float64 {
		queried = append(queried, jd)
		return 2
	})
	LocalToUTC(100.25, r)
	UTCToLocal(200.75, r)
	if len(queried) != 2 || queried[0] != 100.25 || queried[1] != 200.75 {
		t.Errorf("resolver queried at %v, want [100.25 200.75]", queried)
	}
}

func TestParseUTCOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"UTC-4", -4, false},
		{"UTC-7", -7, false},
		{"UTC+8", 8, false},
		{"UTC+0", 0, false},
		{"UTC", 0, false},
		{"utc", 0, false},
		{"Z", 0, false},
		{"GMT", 0, false},
		{"UTC-10", -10, false},
		{"UTC+12", 12, false},
		{"UTC+5:30", 5.5, false},
		{"UTC+05:45", 5.75, false},
		{"UTC-0330", -3.5, false},
		{"GMT-3.5", -3.5, false},
		{"+09:00", 9, false},
		{"", 0, true},
		{"UTC+", 0, true},
		{"UTC8", 0, true},
		{"UTC+15", 0, true},
		{"UTC+5:75", 0, true},
		{"UTC+abc", 0, true},
		{"America/New_York", 0, true},
		{"UTC+NaN", 0, true},
		{"+nan", 0, true},
		{"UTC-Inf", 0, true},
		{"UTC+-5", 0, true},
		{"UTC+-5:30", 0, true},
		{"+5:-30", 0, true},
		{"UTC+1e1", 0, true},
		{"+5.5.5", 0, true},
		{"+5:30.5", 0, true},
		{"+5:", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUTCOffset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUTCOffset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseUTCOffset(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "UTC+00:00"},
		{-4, "UTC-04:00"},
		{5.5, "UTC+05:30"},
		{5.75, "UTC+05:45"},
		{-3.5, "UTC-03:30"},
		{14, "UTC+14:00"},
	}
	for _, tt := range tests {
		if got := FormatOffset(tt.hours); got != tt.want {
			t.Errorf("FormatOffset(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
