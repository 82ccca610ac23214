package civil

import (
	"encoding/binary"
	"fmt"
)

// BinarySize is the length of the encoding produced by MarshalBinary:
// one version byte, eight bytes of big-endian seconds, four bytes of
// big-endian nanoseconds.
const BinarySize = 13

const binaryVersion = 1

// MarshalBinary implements encoding.BinaryMarshaler.
func (t Time) MarshalBinary() ([]byte, error) {
	buf := make([]byte, BinarySize)
	buf[0] = binaryVersion
	binary.BigEndian.PutUint64(buf[1:9], uint64(t.sec))
	binary.BigEndian.PutUint32(buf[9:13], uint32(t.nsec))
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data must
// have been produced by MarshalBinary; an unrecognized version byte is
// reported as an error rather than decoded as the zero instant, so a
// corrupt blob cannot masquerade as a genuinely-zero stored time.
func (t *Time) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return fmt.Errorf("civil: invalid binary time length %d", len(data))
	}
	if data[0] != binaryVersion {
		return fmt.Errorf("civil: unsupported binary time version %d", data[0])
	}
	t.sec = int64(binary.BigEndian.Uint64(data[1:9]))
	t.nsec = int32(binary.BigEndian.Uint32(data[9:13]))
	return nil
}

// MarshalText implements encoding.TextMarshaler, formatting t with
// FormatISO at UTC.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(FormatISO(t, 0)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any layout
// recognized by Parse.
func (t *Time) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, encoding t as a quoted
// FormatISO string at UTC.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + FormatISO(t, 0) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting a quoted string in
// any layout recognized by Parse. A JSON null leaves t unchanged.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("civil: time must be a JSON string, got %s", s)
	}
	return t.UnmarshalText(data[1 : len(data)-1])
}
