package civil

// IsLeapYear reports whether y is a leap year in the proleptic Gregorian
// calendar: divisible by 4, except centuries not divisible by 400.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month m of year y.
// m must be in [1,12]; other values return 0.
func DaysInMonth(y, m int) int {
	if m < 1 || m > 12 {
		return 0
	}
	if m == 2 && IsLeapYear(y) {
		return 29
	}
	return monthDays[m]
}

// NormalizeFields carries out-of-range fields into the next higher field
// and reports whether any value changed. Carries run from seconds up to
// days, then months into years, then days into months and years with the
// month lengths of every month crossed.
func NormalizeFields(y, m, d, h, mi, s int) (ny, nm, nd, nh, nmi, ns int, changed bool) {
	dt, changed := Normalize(New(y, m, d, h, mi, s))
	ny, nm, nd, nh, nmi, ns = dt.Fields()
	return ny, nm, nd, nh, nmi, ns, changed
}

// MaxFieldMagnitude bounds the raw field values Normalize handles exactly.
// Beyond it the integer carries and day counts may overflow and wrap.
const MaxFieldMagnitude = 1 << 50

// Normalize returns dt with every field in its nominal range. The boolean
// is false when dt was already normalized, in which case the result equals
// dt. Normalize never fails; its result is exact when every field of dt is
// within ±MaxFieldMagnitude.
func Normalize(dt DateTime) (DateTime, bool) {
	out := dt

	var carry int
	out.Second, carry = floorDivMod(out.Second, 60)
	out.Minute += carry
	out.Minute, carry = floorDivMod(out.Minute, 60)
	out.Hour += carry
	out.Hour, carry = floorDivMod(out.Hour, 24)
	out.Day += carry

	carry = floorDiv(out.Month-1, 12)
	out.Year += carry
	out.Month = floorMod(out.Month-1, 12) + 1

	// Resolving through the day count visits the same months the step by
	// step borrow would, leap Februaries included, in constant time.
	if out.Day < 1 || out.Day > DaysInMonth(out.Year, out.Month) {
		n := DayNumber(out.Year, out.Month, 1) + int64(out.Day) - 1
		out.Year, out.Month, out.Day = FromDayNumber(n)
	}

	return out, out != dt
}

// floorDiv returns a/b rounded toward negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// floorMod returns a - b*floorDiv(a, b), always in [0, b).
func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// floorDivMod returns the floor-modulo remainder and the quotient carry.
func floorDivMod(a, b int) (rem, carry int) {
	return floorMod(a, b), floorDiv(a, b)
}
