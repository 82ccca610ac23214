package civil

// Calendar engine: conversion between the internal second count and
// Gregorian calendar fields using closed-form cycle arithmetic.

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay

	// A 400-year Gregorian cycle has 97 leap years (400/4 - 400/100 +
	// 400/400), a 100-year cycle 24, and a 4-year cycle 1.
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
)

const (
	// The unsigned absolute time runs from absoluteZeroYear forward.
	// The year must be 1 mod 400 so that cycle boundaries line up.
	absoluteZeroYear = -292277022399

	// The year of the internal zero instant.
	internalYear = 1

	// Offsets to convert between the internal second count (since year 1)
	// and the absolute second count (since absoluteZeroYear), plus the
	// fixed Unix epoch offset.
	//
	// absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	absoluteToInternal int64 = -9223371966579724800
	internalToAbsolute       = -absoluteToInternal

	unixToInternal int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix int64 = -unixToInternal
)

// daysBefore[m] counts the number of days in a non-leap year before
// month m+1 begins. daysBefore[12] is the full year (365).
var daysBefore = [...]int32{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// isLeap reports whether the year is a leap year.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// daysSinceEpoch takes a year and returns the number of days from the
// absolute epoch to the start of that year. The year is decomposed into
// complete 400-year, 100-year, and 4-year cycles, then whole years, so the
// cost is constant no matter how far the year is from the epoch.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}

// abs returns the time t as an absolute second count, suitable for the
// field computations below.
func (t Time) abs() uint64 {
	return uint64(t.sec + internalToAbsolute)
}

// absWeekday is like Weekday but operates on an absolute time.
func absWeekday(abs uint64) Weekday {
	// January 1 of the absolute year, like January 1 of 2001, was a Monday.
	sec := (abs + uint64(Monday)*secondsPerDay) % secondsPerWeek
	return Weekday(int(sec) / secondsPerDay)
}

// absDate converts an absolute time to a year and zero-based day-of-year.
func absDate(abs uint64) (year, yday int) {
	// Split into time and day.
	d := abs / secondsPerDay

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	return int(int64(y) + absoluteZeroYear), int(d)
}

// absDateFull converts an absolute time to a year, month, day of month,
// and zero-based day-of-year.
func absDateFull(abs uint64) (year int, month Month, day int, yday int) {
	year, yday = absDate(abs)

	day = yday
	if isLeap(year) {
		// The day-of-year includes the leap day, so everything from
		// March 1 on is shifted by one relative to the non-leap table.
		if day > 31+29-1 {
			day--
		}
		if day == 31+29-1 {
			// Leap day.
			return year, February, 29, yday
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = Month(day / 31)
	end := int(daysBefore[month+1])
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = int(daysBefore[month])
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day, yday
}

// absClock converts an absolute time to an hour, minute, and second
// within the day.
func absClock(abs uint64) (hour, min, sec int) {
	sec = int(abs % secondsPerDay)
	hour = sec / secondsPerHour
	sec -= hour * secondsPerHour
	min = sec / secondsPerMinute
	sec -= min * secondsPerMinute
	return hour, min, sec
}

// Date returns the Time corresponding to
//
//	yyyy-mm-dd hh:mm:ss + nsec nanoseconds
//
// in the fixed zone offsetSec seconds east of UTC.
//
// The month, day, hour, min, sec, and nsec values may be outside their
// usual ranges and will be normalized during the conversion. For example,
// October 32 converts to November 1.
func Date(year int, month Month, day, hour, min, sec, nsec, offsetSec int) Time {
	// Normalize month, overflowing into year.
	m := int(month) - 1
	year, m = norm(year, m, 12)
	month = Month(m) + 1

	// Normalize nsec, sec, min, hour, overflowing into day.
	sec, nsec = norm(sec, nsec, 1e9)
	min, sec = norm(min, sec, 60)
	hour, min = norm(hour, min, 60)
	day, hour = norm(day, hour, 24)

	// Compute days since the absolute epoch.
	d := daysSinceEpoch(year)

	// Add in days before this month.
	d += uint64(daysBefore[month-1])
	if isLeap(year) && month >= March {
		d++ // February 29
	}

	// Add in days before today.
	d += uint64(day - 1)

	// Add in time elapsed today.
	abs := d * secondsPerDay
	abs += uint64(hour*secondsPerHour + min*secondsPerMinute + sec)

	// Convert to UTC.
	abs -= uint64(offsetSec)

	return Time{int64(abs) + absoluteToInternal, int32(nsec)}
}

// Date returns the year, month, and day in which t occurs.
func (t Time) Date() (year int, month Month, day int) {
	year, month, day, _ = absDateFull(t.abs())
	return year, month, day
}

// Year returns the year in which t occurs.
func (t Time) Year() int {
	year, _ := absDate(t.abs())
	return year
}

// Month returns the month of the year specified by t.
func (t Time) Month() Month {
	_, month, _, _ := absDateFull(t.abs())
	return month
}

// Day returns the day of the month specified by t.
func (t Time) Day() int {
	_, _, day, _ := absDateFull(t.abs())
	return day
}

// Clock returns the hour, minute, and second within the day specified by t.
func (t Time) Clock() (hour, min, sec int) {
	return absClock(t.abs())
}

// Hour returns the hour within the day specified by t, in the range [0, 23].
func (t Time) Hour() int {
	return int(t.abs()%secondsPerDay) / secondsPerHour
}

// Minute returns the minute offset within the hour specified by t,
// in the range [0, 59].
func (t Time) Minute() int {
	return int(t.abs()%secondsPerHour) / secondsPerMinute
}

// Second returns the second offset within the minute specified by t,
// in the range [0, 59].
func (t Time) Second() int {
	return int(t.abs() % secondsPerMinute)
}

// Nanosecond returns the nanosecond offset within the second specified by t,
// in the range [0, 999999999].
func (t Time) Nanosecond() int {
	return int(t.nsec)
}

// Weekday returns the day of the week specified by t.
func (t Time) Weekday() Weekday {
	return absWeekday(t.abs())
}

// YearDay returns the day of the year specified by t, in the range [1, 365]
// for non-leap years, and [1, 366] in leap years.
func (t Time) YearDay() int {
	_, yday := absDate(t.abs())
	return yday + 1
}

// ISOWeek returns the ISO 8601 year and week number in which t occurs.
// Week ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to
// week 52 or 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1
// of year n+1.
func (t Time) ISOWeek() (year, week int) {
	// A week belongs to the ISO year containing its Thursday.
	// Shift t to the Thursday of its week and read that date's year
	// and day-of-year.
	//
	// weekday:   Mon Tue Wed Thu Fri Sat Sun
	// to Thu:    +3  +2  +1   0  -1  -2  -3
	abs := t.abs()
	d := int(Thursday - absWeekday(abs))
	if d == 4 {
		// Sunday is 0 in our numbering but last in ISO numbering.
		d = -3
	}
	abs += uint64(d * secondsPerDay)
	year, yday := absDate(abs)
	return year, yday/7 + 1
}
