package civil

import "fmt"

// Fixed text layouts. Formatting picks the most compact representation
// for the value; parsing is strict and positional (fixed digit counts),
// not general-purpose date-text parsing.

// FormatISO returns an ISO 8601 string for t, converted to the fixed zone
// offsetSec seconds east of UTC before formatting. It chooses the most
// compact of:
//
//	2006-01-02T15:04:05.999999999+07:00
//	2006-01-02T15:04:05.999999999Z
//	2006-01-02T15:04:05+07:00
//	2006-01-02T15:04:05Z
func FormatISO(t Time, offsetSec int) string {
	if offsetSec == 0 {
		year, month, day := t.Date()
		hour, min, sec := t.Clock()
		if t.nsec == 0 {
			return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ",
				year, int(month), day, hour, min, sec)
		}
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%09dZ",
			year, int(month), day, hour, min, sec, t.nsec)
	}

	loc := t.Add(Duration(offsetSec) * Second)
	year, month, day := loc.Date()
	hour, min, sec := loc.Clock()
	ofhour := offsetSec / 3600
	ofmin := (offsetSec % 3600) / 60
	if ofmin < 0 {
		ofmin = -ofmin
	}
	if loc.nsec == 0 {
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%+03d:%02d",
			year, int(month), day, hour, min, sec, ofhour, ofmin)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%09d%+03d:%02d",
		year, int(month), day, hour, min, sec, loc.nsec, ofhour, ofmin)
}

// FormatDateTime returns a datetime string (2006-01-02 15:04:05) for t,
// converted to the fixed zone offsetSec seconds east of UTC.
func FormatDateTime(t Time, offsetSec int) string {
	loc := t.Add(Duration(offsetSec) * Second)
	year, month, day := loc.Date()
	hour, min, sec := loc.Clock()
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		year, int(month), day, hour, min, sec)
}

// FormatDate returns a date string (2006-01-02) for t, converted to the
// fixed zone offsetSec seconds east of UTC.
func FormatDate(t Time, offsetSec int) string {
	loc := t.Add(Duration(offsetSec) * Second)
	year, month, day := loc.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// FormatTime returns a time string (15:04:05) for t, converted to the
// fixed zone offsetSec seconds east of UTC.
func FormatTime(t Time, offsetSec int) string {
	loc := t.Add(Duration(offsetSec) * Second)
	hour, min, sec := loc.Clock()
	return fmt.Sprintf("%02d:%02d:%02d", hour, min, sec)
}

// String returns t formatted with FormatISO at UTC.
func (t Time) String() string {
	return FormatISO(t, 0)
}

// Parse parses a formatted string and returns the time value it
// represents. The layout is selected by the input length; the supported
// layouts are:
//
//	2006-01-02T15:04:05.999999999+07:00
//	2006-01-02T15:04:05.999999999Z
//	2006-01-02T15:04:05+07:00
//	2006-01-02T15:04:05Z
//	2006-01-02 15:04:05  (UTC implied)
//	2006-01-02           (UTC implied)
//	15:04:05             (UTC implied, January 1 of year 1)
func Parse(value string) (Time, error) {
	year, month, day := 1, 1, 1
	hour, min, sec := 0, 0, 0
	nsec, offsetSec := 0, 0
	var ok bool

	switch len(value) {
	case 35: // 2006-01-02T15:04:05.999999999+07:00
		ok = value[10] == 'T' && value[19] == '.'
		if ok {
			year, month, day, ok = parseDate(value[:10])
		}
		if ok {
			hour, min, sec, ok = parseClock(value[11:19])
		}
		if ok {
			nsec, ok = parseDigits(value[20:29])
		}
		if ok {
			offsetSec, ok = parseOffset(value[29:])
		}

	case 30: // 2006-01-02T15:04:05.999999999Z
		ok = value[10] == 'T' && value[19] == '.' && value[29] == 'Z'
		if ok {
			year, month, day, ok = parseDate(value[:10])
		}
		if ok {
			hour, min, sec, ok = parseClock(value[11:19])
		}
		if ok {
			nsec, ok = parseDigits(value[20:29])
		}

	case 25: // 2006-01-02T15:04:05+07:00
		ok = value[10] == 'T'
		if ok {
			year, month, day, ok = parseDate(value[:10])
		}
		if ok {
			hour, min, sec, ok = parseClock(value[11:19])
		}
		if ok {
			offsetSec, ok = parseOffset(value[19:])
		}

	case 20: // 2006-01-02T15:04:05Z
		ok = value[10] == 'T' && value[19] == 'Z'
		if ok {
			year, month, day, ok = parseDate(value[:10])
		}
		if ok {
			hour, min, sec, ok = parseClock(value[11:19])
		}

	case 19: // 2006-01-02 15:04:05
		ok = value[10] == ' ' || value[10] == 'T'
		if ok {
			year, month, day, ok = parseDate(value[:10])
		}
		if ok {
			hour, min, sec, ok = parseClock(value[11:])
		}

	case 10: // 2006-01-02
		year, month, day, ok = parseDate(value)

	case 8: // 15:04:05
		hour, min, sec, ok = parseClock(value)
	}

	if !ok {
		return Time{}, fmt.Errorf("civil: cannot parse %q as a time", value)
	}
	return Date(year, Month(month), day, hour, min, sec, nsec, offsetSec), nil
}

// parseDate parses a strict yyyy-mm-dd string.
func parseDate(s string) (year, month, day int, ok bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	year, ok = parseDigits(s[:4])
	if !ok {
		return 0, 0, 0, false
	}
	month, ok = parseDigits(s[5:7])
	if !ok {
		return 0, 0, 0, false
	}
	day, ok = parseDigits(s[8:])
	return year, month, day, ok
}

// parseClock parses a strict hh:mm:ss string.
func parseClock(s string) (hour, min, sec int, ok bool) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return 0, 0, 0, false
	}
	hour, ok = parseDigits(s[:2])
	if !ok {
		return 0, 0, 0, false
	}
	min, ok = parseDigits(s[3:5])
	if !ok {
		return 0, 0, 0, false
	}
	sec, ok = parseDigits(s[6:])
	return hour, min, sec, ok
}

// parseOffset parses a timezone offset in the form ±HH:MM and returns
// the offset in seconds east of UTC.
func parseOffset(s string) (offsetSec int, ok bool) {
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return 0, false
	}
	hour, ok := parseDigits(s[1:3])
	if !ok {
		return 0, false
	}
	min, ok := parseDigits(s[4:])
	if !ok {
		return 0, false
	}
	offsetSec = hour*3600 + min*60
	if s[0] == '-' {
		offsetSec = -offsetSec
	}
	return offsetSec, true
}

// parseDigits parses a fixed-width run of decimal digits.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
