package civil

// Day counts treat March as the first month of the computational year so
// that the leap day falls at the end of the year. A 400-year era has
// exactly 146097 days.
const (
	daysPerEra   = 146097
	unixEpochDay = 719468 // days from 0000-03-01 to 1970-01-01
)

// DayNumber returns the number of days from 1970-01-01 to the given date,
// negative for earlier dates. m must be in [1,12]; d may be any value and is
// counted from the first of the month. Years and days within
// ±MaxFieldMagnitude do not overflow.
func DayNumber(y, m, d int) int64 {
	yr := int64(y)
	if m <= 2 {
		yr--
	}
	era := floorDiv64(yr, 400)
	yoe := yr - era*400
	mp := int64((m + 9) % 12)
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - unixEpochDay
}

// FromDayNumber is the inverse of DayNumber. The result is a valid date.
func FromDayNumber(n int64) (y, m, d int) {
	n += unixEpochDay
	era := floorDiv64(n, daysPerEra)
	doe := n - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	y = int(yoe + era*400)
	if m <= 2 {
		y++
	}
	return y, m, d
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
