package clock

import (
	"sync"
	"time"

	"github.com/BYTE-6D65/civiltime/pkg/civil"
)

// SyntheticClock provides deterministic replay of recorded timing.
// It advances through pre-loaded deltas, optionally sleeping in real-time
// or running as fast as possible for testing.
type SyntheticClock interface {
	Clock

	// Load initializes the clock with a start instant and sequence of deltas
	Load(start civil.Time, deltas []civil.Duration)

	// Advance moves to the next delta, optionally sleeping in real-time
	Advance()

	// SetSpeed sets the playback speed multiplier (1.0 = real-time, 2.0 = 2x speed)
	SetSpeed(mult float64)

	// SetNoSleep disables real-time sleeping (for fast testing)
	SetNoSleep(noSleep bool)

	// Reset clears the position and returns to the start instant
	Reset()

	// HasNext returns true if there are more deltas to advance through
	HasNext() bool

	// CurrentIndex returns the current position in the delta sequence
	CurrentIndex() int
}

// DeltaClock implements SyntheticClock for deterministic replay.
type DeltaClock struct {
	mu sync.RWMutex

	start   civil.Time       // Initial instant
	deltas  []civil.Duration // Pre-loaded deltas
	current civil.Time       // Current instant
	index   int              // Current position in deltas
	speed   float64          // Playback speed multiplier
	noSleep bool             // If true, skip real-time sleeping
}

// NewDeltaClock creates a new SyntheticClock.
func NewDeltaClock() *DeltaClock {
	return &DeltaClock{
		speed: 1.0,
	}
}

// Load initializes the clock with a start instant and deltas.
func (d *DeltaClock) Load(start civil.Time, deltas []civil.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.start = start
	d.current = start
	d.deltas = make([]civil.Duration, len(deltas))
	copy(d.deltas, deltas)
	d.index = 0
}

// Now returns the current instant.
func (d *DeltaClock) Now() civil.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

// Since returns the duration elapsed since the given instant.
func (d *DeltaClock) Since(t civil.Time) civil.Duration {
	return d.Now().Sub(t)
}

// Advance moves to the next delta in the sequence.
// If noSleep is false, it sleeps in real-time (scaled by speed multiplier).
func (d *DeltaClock) Advance() {
	d.mu.Lock()

	if d.index >= len(d.deltas) {
		d.mu.Unlock()
		return // No more deltas
	}

	delta := d.deltas[d.index]
	d.index++

	// Calculate sleep duration with speed multiplier
	var sleepDuration time.Duration
	if !d.noSleep && d.speed > 0 {
		sleepDuration = time.Duration(float64(delta.Nanoseconds()) / d.speed)
	}

	// Update current instant
	d.current = d.current.Add(delta)

	d.mu.Unlock()

	// Sleep outside the lock
	if sleepDuration > 0 {
		time.Sleep(sleepDuration)
	}
}

// SetSpeed sets the playback speed multiplier.
func (d *DeltaClock) SetSpeed(mult float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if mult < 0 {
		mult = 1.0
	}
	d.speed = mult
}

// SetNoSleep enables or disables real-time sleeping.
func (d *DeltaClock) SetNoSleep(noSleep bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.noSleep = noSleep
}

// Reset returns the clock to its start instant.
func (d *DeltaClock) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = d.start
	d.index = 0
}

// HasNext returns true if there are more deltas to advance.
func (d *DeltaClock) HasNext() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index < len(d.deltas)
}

// CurrentIndex returns the current position in the delta sequence.
func (d *DeltaClock) CurrentIndex() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index
}

// AdvanceAll advances through all remaining deltas.
// Useful for fast-forwarding to the end.
func (d *DeltaClock) AdvanceAll() {
	for d.HasNext() {
		d.Advance()
	}
}

// RemainingDeltas returns the number of deltas left to process.
func (d *DeltaClock) RemainingDeltas() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.deltas) - d.index
}

// TotalDeltas returns the total number of deltas loaded.
func (d *DeltaClock) TotalDeltas() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.deltas)
}
