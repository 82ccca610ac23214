// Package civil implements a nanosecond-precision civil-time engine over the
// proleptic Gregorian calendar. There are no leap seconds, no timezone
// database, and no daylight-saving rules: conversions take fixed,
// caller-supplied UTC offsets in seconds.
//
// The central type is Time, an immutable instant stored as seconds plus
// nanoseconds since January 1 of year 1, 00:00:00 UTC. Calendar fields
// (year, month, day, clock, weekday, day-of-year, ISO week) are derived on
// demand with closed-form integer arithmetic over 400/100/4/1-year calendar
// cycles, so every operation runs in constant time no matter how far the
// instant is from the epoch.
//
// Every function in this package is a pure computation over value types.
// There is no shared state, so all operations are safe for concurrent use.
package civil

// Month is a month of the year (January = 1, ..., December = 12).
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// String returns the English name of the month.
func (m Month) String() string {
	if m >= January && m <= December {
		return monthNames[m-1]
	}
	return "%!Month(" + itoa(int(m)) + ")"
}

// Weekday is a day of the week (Sunday = 0, ..., Saturday = 6).
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// String returns the English name of the day.
func (d Weekday) String() string {
	if d >= Sunday && d <= Saturday {
		return weekdayNames[d]
	}
	return "%!Weekday(" + itoa(int(d)) + ")"
}

// itoa formats a small signed integer without pulling fmt into the
// enum String methods.
func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Time is an instant with nanosecond precision.
//
// The zero value is January 1, year 1, 00:00:00.000000000 UTC; IsZero
// reports it. Time values are immutable: every operation returns a new
// value, so they may be freely copied and shared across goroutines.
type Time struct {
	sec  int64 // seconds since January 1, year 1, 00:00:00 UTC
	nsec int32 // nanoseconds within the second, in [0, 999999999]
}

// After reports whether the time instant t is after u.
func (t Time) After(u Time) bool {
	return t.sec > u.sec || (t.sec == u.sec && t.nsec > u.nsec)
}

// Before reports whether the time instant t is before u.
func (t Time) Before(u Time) bool {
	return t.sec < u.sec || (t.sec == u.sec && t.nsec < u.nsec)
}

// Compare compares t with u. It returns -1 if t is before u, +1 if t is
// after u, and 0 if they represent the same instant.
func (t Time) Compare(u Time) int {
	switch {
	case t.Before(u):
		return -1
	case t.After(u):
		return +1
	}
	return 0
}

// Equal reports whether t and u represent the same time instant.
func (t Time) Equal(u Time) bool {
	return t.sec == u.sec && t.nsec == u.nsec
}

// IsZero reports whether t is the zero instant,
// January 1, year 1, 00:00:00 UTC.
func (t Time) IsZero() bool {
	return t.sec == 0 && t.nsec == 0
}
