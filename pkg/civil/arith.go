package civil

// Instant arithmetic: addition, subtraction, and rounding against a
// duration grid anchored at the zero instant.

// Add returns the time t+d.
func (t Time) Add(d Duration) Time {
	dsec := int64(d / Second)
	nsec := t.nsec + int32(d%Second)
	if nsec >= 1e9 {
		dsec++
		nsec -= 1e9
	} else if nsec < 0 {
		dsec--
		nsec += 1e9
	}
	return Time{t.sec + dsec, nsec}
}

// Sub returns the duration t-u. If the result exceeds the maximum (or
// minimum) value that can be stored in a Duration, the maximum (or minimum)
// duration will be returned. To compute t-d for a duration d, use t.Add(-d).
func (t Time) Sub(u Time) Duration {
	d := Duration(t.sec-u.sec)*Second + Duration(t.nsec-u.nsec)
	// The candidate may have wrapped; verify it by adding it back.
	if u.Add(d).Equal(t) {
		return d
	}
	if t.Before(u) {
		return MinDuration // t - u is negative out of range
	}
	return MaxDuration // t - u is positive out of range
}

// AddDate returns the time corresponding to adding the given number of
// years, months, and days to t. For example, AddDate(-1, 2, 3) applied to
// January 1, 2011 returns March 4, 2010.
//
// AddDate normalizes its result in the same way that Date does, so, for
// example, adding one month to October 31 yields December 1, the
// normalized form for November 31.
func (t Time) AddDate(years, months, days int) Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return Date(year+years, month+Month(months), day+days, hour, min, sec, int(t.nsec), 0)
}

// div divides t by d and returns the remainder.
// Only supports d which is a multiple of 1 second.
func (t Time) div(d Duration) Duration {
	if d%Second != 0 {
		return 0
	}

	neg := false
	sec := t.sec
	nsec := int64(t.nsec)
	if sec < 0 {
		// Operate on absolute value.
		neg = true
		sec = -sec
		nsec = -nsec
		if nsec < 0 {
			nsec += 1e9
			sec-- // sec >= 1 before the -- so safe
		}
	}

	d1 := int64(d / Second)
	r := Duration(sec%d1)*Second + Duration(nsec)

	if neg && r != 0 {
		r = d - r
	}
	return r
}

// lessThanHalf reports whether x+x < y but avoids overflow,
// assuming x and y are both positive (Duration is signed).
func lessThanHalf(x, y Duration) bool {
	return uint64(x)+uint64(x) < uint64(y)
}

// Truncate returns the result of rounding t down to a multiple of d
// (since the zero instant). Only multiples of 1 second are supported as
// the rounding unit. If d <= 0, Truncate returns t unchanged.
func (t Time) Truncate(d Duration) Time {
	if d <= 0 {
		return t
	}
	r := t.div(d)
	return t.Add(-r)
}

// Round returns the result of rounding t to the nearest multiple of d
// (since the zero instant). The rounding behavior for halfway values is to
// round up. Only multiples of 1 second are supported as the rounding unit.
// If d <= 0, Round returns t unchanged.
func (t Time) Round(d Duration) Time {
	if d <= 0 {
		return t
	}
	r := t.div(d)
	if lessThanHalf(r, d) {
		return t.Add(-r)
	}
	return t.Add(d - r)
}
