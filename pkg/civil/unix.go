package civil

// Unix-epoch constructors and conversions. The Unix epoch
// (1970-01-01T00:00:00Z) is a fixed, pre-computed offset from the internal
// zero instant, so these are pure shifts with no calendar math involved.

func (t Time) unixSec() int64 {
	return t.sec + internalToUnix
}

func unixTime(sec int64, nsec int32) Time {
	return Time{sec + unixToInternal, nsec}
}

// Unix returns the Time corresponding to the given Unix time, sec seconds
// and nsec nanoseconds since January 1, 1970 UTC. It is valid to pass nsec
// outside the range [0, 999999999]. Not all sec values have a corresponding
// time value. One such value is 1<<63-1 (the largest int64 value).
func Unix(sec, nsec int64) Time {
	if nsec < 0 || nsec >= 1e9 {
		n := nsec / 1e9
		sec += n
		nsec -= n * 1e9
		if nsec < 0 {
			nsec += 1e9
			sec--
		}
	}
	return unixTime(sec, int32(nsec))
}

// UnixMilli returns the Time corresponding to the given Unix time,
// msec milliseconds since January 1, 1970 UTC.
func UnixMilli(msec int64) Time {
	return Unix(msec/1e3, (msec%1e3)*1e6)
}

// UnixMicro returns the Time corresponding to the given Unix time,
// usec microseconds since January 1, 1970 UTC.
func UnixMicro(usec int64) Time {
	return Unix(usec/1e6, (usec%1e6)*1e3)
}

// UnixNano returns the Time corresponding to the given Unix time,
// nsec nanoseconds since January 1, 1970 UTC.
func UnixNano(nsec int64) Time {
	return Unix(0, nsec)
}

// Unix returns t as a Unix time, the number of seconds elapsed since
// January 1, 1970 UTC. The result is a 64-bit count, so it is valid for
// billions of years into the past or future.
func (t Time) Unix() int64 {
	return t.unixSec()
}

// UnixMilli returns t as a Unix time, the number of milliseconds elapsed
// since January 1, 1970 UTC. The result is undefined if the Unix time in
// milliseconds cannot be represented by an int64 (a date more than 292
// million years before or after 1970).
func (t Time) UnixMilli() int64 {
	return t.unixSec()*1e3 + int64(t.nsec)/1e6
}

// UnixMicro returns t as a Unix time, the number of microseconds elapsed
// since January 1, 1970 UTC. The result is undefined if the Unix time in
// microseconds cannot be represented by an int64 (a date before year
// -290307 or after year 294246).
func (t Time) UnixMicro() int64 {
	return t.unixSec()*1e6 + int64(t.nsec)/1e3
}

// UnixNano returns t as a Unix time, the number of nanoseconds elapsed
// since January 1, 1970 UTC. The result is undefined if the Unix time in
// nanoseconds cannot be represented by an int64 (a date before the year
// 1678 or after 2262). In particular, calling UnixNano on the zero Time
// is undefined.
func (t Time) UnixNano() int64 {
	return t.unixSec()*1e9 + int64(t.nsec)
}
