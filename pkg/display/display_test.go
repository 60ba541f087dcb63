package display

import (
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/jdcal/pkg/civil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestCalendar(t *testing.T) {
	tests := []struct {
		name string
		dt   civil.DateTime
		want string
	}{
		{
			name: "leap February starting Thursday",
			dt:   civil.New(2024, 2, 29, 0, 0, 0),
			want: "February 2024\n" +
				"────────────────────\n" +
				"Mo Tu We Th Fr Sa Su\n" +
				"          1  2  3  4\n" +
				" 5  6  7  8  9 10 11\n" +
				"12 13 14 15 16 17 18\n" +
				"19 20 21 22 23 24 25\n" +
				"26 27 28 29\n",
		},
		{
			name: "month ending on Sunday",
			dt:   civil.New(2021, 2, 1, 0, 0, 0),
			want: "February 2021\n" +
				"────────────────────\n" +
				"Mo Tu We Th Fr Sa Su\n" +
				" 1  2  3  4  5  6  7\n" +
				" 8  9 10 11 12 13 14\n" +
				"15 16 17 18 19 20 21\n" +
				"22 23 24 25 26 27 28\n",
		},
		{
			name: "starting Sunday",
			dt:   civil.New(2023, 10, 15, 0, 0, 0),
			want: "October 2023\n" +
				"────────────────────\n" +
				"Mo Tu We Th Fr Sa Su\n" +
				"                   1\n" +
				" 2  3  4  5  6  7  8\n" +
				" 9 10 11 12 13 14 15\n" +
				"16 17 18 19 20 21 22\n" +
				"23 24 25 26 27 28 29\n" +
				"30 31\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Calendar(tt.dt); got != tt.want {
				t.Errorf("Calendar(%v) =\n%s\nwant\n%s", tt.dt, got, tt.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		submitted, got civil.DateTime
		want           string
	}{
		{civil.New(1999, 12, 31, 23, 59, 60), civil.New(2000, 1, 1, 0, 0, 0), "2000-01-01 00:00:00"},
		{civil.New(-44, 3, 15, 12, 0, 0), civil.New(-44, 3, 15, 12, 0, 0), "-0044-03-15 12:00:00"},
	}
	for _, tt := range tests {
		if got := Fields(tt.submitted, tt.got); got != tt.want {
			t.Errorf("Fields(%v, %v) = %q, want %q", tt.submitted, tt.got, got, tt.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	if got := Weekday(civil.New(2000, 1, 1, 0, 0, 0)); got != "Saturday" {
		t.Errorf("Weekday(2000-01-01) = %q, want Saturday", got)
	}
}
