package civil

import "testing"

func TestDuration_IntegerConversions(t *testing.T) {
	d := 2*Second + 500*Millisecond

	if got := d.Nanoseconds(); got != 2500000000 {
		t.Errorf("Nanoseconds() = %d, want 2500000000", got)
	}
	if got := d.Microseconds(); got != 2500000 {
		t.Errorf("Microseconds() = %d, want 2500000", got)
	}
	if got := d.Milliseconds(); got != 2500 {
		t.Errorf("Milliseconds() = %d, want 2500", got)
	}

	// Integer conversions truncate toward zero.
	if got := (-1500 * Microsecond).Milliseconds(); got != -1 {
		t.Errorf("negative Milliseconds() = %d, want -1", got)
	}
}

func TestDuration_FloatConversions(t *testing.T) {
	d := 90 * Minute

	if got := d.Hours(); got != 1.5 {
		t.Errorf("Hours() = %g, want 1.5", got)
	}
	if got := d.Minutes(); got != 90 {
		t.Errorf("Minutes() = %g, want 90", got)
	}
	if got := d.Seconds(); got != 5400 {
		t.Errorf("Seconds() = %g, want 5400", got)
	}

	if got := (1500 * Millisecond).Seconds(); got != 1.5 {
		t.Errorf("Seconds() = %g, want 1.5", got)
	}
	if got := (-30 * Second).Minutes(); got != -0.5 {
		t.Errorf("Minutes() = %g, want -0.5", got)
	}
}

func TestDuration_Truncate(t *testing.T) {
	tests := []struct {
		d, m, want Duration
	}{
		{25*Second + 500*Millisecond, 10 * Second, 20 * Second},
		{-(25*Second + 500*Millisecond), 10 * Second, -20 * Second},
		{Minute, Minute, Minute},
		{Minute + Second, Minute, Minute},
		{42 * Second, 0, 42 * Second},
		{42 * Second, -Second, 42 * Second},
	}

	for _, tc := range tests {
		if got := tc.d.Truncate(tc.m); got != tc.want {
			t.Errorf("(%d).Truncate(%d) = %d, want %d", tc.d, tc.m, got, tc.want)
		}
	}
}

func TestDuration_Round(t *testing.T) {
	tests := []struct {
		d, m, want Duration
	}{
		// Ties round away from zero.
		{25*Second + 500*Millisecond, 10 * Second, 30 * Second},
		{-(25*Second + 500*Millisecond), 10 * Second, -30 * Second},
		{24*Second + 900*Millisecond, 10 * Second, 20 * Second},
		{25 * Second, 10 * Second, 30 * Second},
		{-25 * Second, 10 * Second, -30 * Second},
		{Minute + 29*Second, Minute, Minute},
		{Minute + 30*Second, Minute, 2 * Minute},
		{42 * Second, 0, 42 * Second},
		{42 * Second, -Second, 42 * Second},
	}

	for _, tc := range tests {
		if got := tc.d.Round(tc.m); got != tc.want {
			t.Errorf("(%d).Round(%d) = %d, want %d", tc.d, tc.m, got, tc.want)
		}
	}
}

func TestDuration_Round_Saturation(t *testing.T) {
	if got := MaxDuration.Round(Second); got != MaxDuration {
		t.Errorf("MaxDuration.Round(Second) = %d, want MaxDuration", got)
	}
	if got := MinDuration.Round(Second); got != MinDuration {
		t.Errorf("MinDuration.Round(Second) = %d, want MinDuration", got)
	}
}

func TestDuration_Abs(t *testing.T) {
	tests := []struct {
		d, want Duration
	}{
		{0, 0},
		{Second, Second},
		{-Second, Second},
		{MaxDuration, MaxDuration},
		{MinDuration, MaxDuration},
		{MinDuration + 1, MaxDuration},
	}

	for _, tc := range tests {
		if got := tc.d.Abs(); got != tc.want {
			t.Errorf("(%d).Abs() = %d, want %d", tc.d, got, tc.want)
		}
	}
}
