package clock

import (
	"testing"

	"github.com/BYTE-6D65/civiltime/pkg/civil"
)

func testStart() civil.Time {
	return civil.Date(2011, civil.November, 18, 15, 56, 35, 0, 0)
}

func TestDeltaClock_Load(t *testing.T) {
	clk := NewDeltaClock()
	deltas := []civil.Duration{civil.Second, 2 * civil.Second, 500 * civil.Millisecond}
	clk.Load(testStart(), deltas)

	if !clk.Now().Equal(testStart()) {
		t.Errorf("Now() after Load = %v, want %v", clk.Now(), testStart())
	}
	if got := clk.TotalDeltas(); got != 3 {
		t.Errorf("TotalDeltas() = %d, want 3", got)
	}
	if got := clk.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", got)
	}
	if !clk.HasNext() {
		t.Error("HasNext() = false after Load")
	}
}

func TestDeltaClock_Advance(t *testing.T) {
	clk := NewDeltaClock()
	clk.SetNoSleep(true)
	clk.Load(testStart(), []civil.Duration{civil.Second, 2 * civil.Second})

	clk.Advance()
	want := testStart().Add(civil.Second)
	if !clk.Now().Equal(want) {
		t.Errorf("after first Advance: %v, want %v", clk.Now(), want)
	}

	clk.Advance()
	want = want.Add(2 * civil.Second)
	if !clk.Now().Equal(want) {
		t.Errorf("after second Advance: %v, want %v", clk.Now(), want)
	}

	// Advancing past the end is a no-op.
	clk.Advance()
	if !clk.Now().Equal(want) {
		t.Errorf("Advance past end moved the clock to %v", clk.Now())
	}
	if clk.HasNext() {
		t.Error("HasNext() = true after consuming all deltas")
	}
}

func TestDeltaClock_Since(t *testing.T) {
	clk := NewDeltaClock()
	clk.SetNoSleep(true)
	clk.Load(testStart(), []civil.Duration{90 * civil.Second})

	clk.Advance()
	if got := clk.Since(testStart()); got != 90*civil.Second {
		t.Errorf("Since(start) = %v, want %v", got, 90*civil.Second)
	}
}

func TestDeltaClock_AdvanceAll(t *testing.T) {
	clk := NewDeltaClock()
	clk.SetNoSleep(true)

	deltas := make([]civil.Duration, 100)
	for i := range deltas {
		deltas[i] = civil.Millisecond
	}
	clk.Load(testStart(), deltas)

	clk.AdvanceAll()
	want := testStart().Add(100 * civil.Millisecond)
	if !clk.Now().Equal(want) {
		t.Errorf("after AdvanceAll: %v, want %v", clk.Now(), want)
	}
	if got := clk.RemainingDeltas(); got != 0 {
		t.Errorf("RemainingDeltas() = %d, want 0", got)
	}
}

func TestDeltaClock_Reset(t *testing.T) {
	clk := NewDeltaClock()
	clk.SetNoSleep(true)
	clk.Load(testStart(), []civil.Duration{civil.Second, civil.Second})

	clk.AdvanceAll()
	clk.Reset()

	if !clk.Now().Equal(testStart()) {
		t.Errorf("Now() after Reset = %v, want %v", clk.Now(), testStart())
	}
	if got := clk.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() after Reset = %d, want 0", got)
	}
	if !clk.HasNext() {
		t.Error("HasNext() = false after Reset")
	}
}

func TestDeltaClock_CrossesCalendarBoundary(t *testing.T) {
	// Replay across a year boundary exercises the calendar engine through
	// the clock seam.
	clk := NewDeltaClock()
	clk.SetNoSleep(true)
	start := civil.Date(2023, civil.December, 31, 23, 59, 59, 500000000, 0)
	clk.Load(start, []civil.Duration{civil.Second})

	clk.Advance()
	now := clk.Now()
	if year := now.Year(); year != 2024 {
		t.Errorf("Year() after boundary = %d, want 2024", year)
	}
	if got, want := now.Nanosecond(), 500000000; got != want {
		t.Errorf("Nanosecond() = %d, want %d", got, want)
	}
}
