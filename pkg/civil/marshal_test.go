package civil

import (
	"bytes"
	"testing"
)

func TestTime_BinaryRoundTrip(t *testing.T) {
	values := []Time{
		{},
		Unix(0, 0),
		Date(2011, November, 18, 15, 56, 35, 666777888, 0),
		Date(-100, June, 15, 12, 0, 0, 999999999, 0),
		Date(294246, January, 1, 0, 0, 0, 0, 0),
	}

	for _, v := range values {
		data, err := v.MarshalBinary()
		if err != nil {
			t.Errorf("MarshalBinary(%v) error: %v", v, err)
			continue
		}
		if len(data) != BinarySize {
			t.Errorf("MarshalBinary(%v) produced %d bytes, want %d", v, len(data), BinarySize)
		}

		var got Time
		if err := got.UnmarshalBinary(data); err != nil {
			t.Errorf("UnmarshalBinary(%v) error: %v", v, err)
			continue
		}
		if !got.Equal(v) {
			t.Errorf("binary round trip = %v, want %v", got, v)
		}
	}
}

func TestTime_MarshalBinary_Layout(t *testing.T) {
	data, err := Time{}.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary error: %v", err)
	}

	want := make([]byte, BinarySize)
	want[0] = 1 // version
	if !bytes.Equal(data, want) {
		t.Errorf("zero instant encodes as %v, want %v", data, want)
	}
}

func TestTime_UnmarshalBinary_Errors(t *testing.T) {
	var v Time

	if err := v.UnmarshalBinary(nil); err == nil {
		t.Error("UnmarshalBinary(nil) succeeded, want error")
	}
	if err := v.UnmarshalBinary(make([]byte, BinarySize-1)); err == nil {
		t.Error("UnmarshalBinary(short) succeeded, want error")
	}

	bad := make([]byte, BinarySize)
	bad[0] = 2
	if err := v.UnmarshalBinary(bad); err == nil {
		t.Error("UnmarshalBinary with unknown version succeeded, want error")
	}
}

func TestTime_TextRoundTrip(t *testing.T) {
	v := Date(2011, November, 18, 15, 56, 35, 666777888, 0)

	data, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if got, want := string(data), "2011-11-18T15:56:35.666777888Z"; got != want {
		t.Errorf("MarshalText = %q, want %q", got, want)
	}

	var got Time
	if err := got.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("text round trip = %v, want %v", got, v)
	}
}

func TestTime_JSONRoundTrip(t *testing.T) {
	v := Date(2011, November, 18, 15, 56, 35, 666777888, 0)

	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if got, want := string(data), `"2011-11-18T15:56:35.666777888Z"`; got != want {
		t.Errorf("MarshalJSON = %q, want %q", got, want)
	}

	var got Time
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON error: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("JSON round trip = %v, want %v", got, v)
	}
}

func TestTime_UnmarshalJSON_Null(t *testing.T) {
	v := Date(2011, November, 18, 0, 0, 0, 0, 0)
	if err := v.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("UnmarshalJSON(null) error: %v", err)
	}
	if !v.Equal(Date(2011, November, 18, 0, 0, 0, 0, 0)) {
		t.Errorf("UnmarshalJSON(null) modified the value: %v", v)
	}

	if err := v.UnmarshalJSON([]byte("42")); err == nil {
		t.Error("UnmarshalJSON(42) succeeded, want error")
	}
}
