// Package clock acquires wall-clock instants for the civil-time engine.
// The engine itself is pure; everything that touches the host clock lives
// here behind the Clock interface, so time-dependent code can swap in a
// deterministic clock for tests.
package clock

import (
	"time"

	"github.com/BYTE-6D65/civiltime/pkg/civil"
)

// Clock provides wall-clock instants with nanosecond precision.
type Clock interface {
	// Now returns the current instant in UTC
	Now() civil.Time

	// Since returns the duration elapsed since the given instant
	Since(t civil.Time) civil.Duration
}

// Until returns the duration until t on the given clock.
func Until(c Clock, t civil.Time) civil.Duration {
	return t.Sub(c.Now())
}

// SystemClock reads the host's real-time clock.
type SystemClock struct{}

// NewSystemClock creates a Clock backed by the host's real-time clock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current instant in UTC. The host clock is read exactly
// once per call.
func (s *SystemClock) Now() civil.Time {
	now := time.Now()
	return civil.Unix(now.Unix(), int64(now.Nanosecond()))
}

// Since returns the duration elapsed since the given instant.
func (s *SystemClock) Since(t civil.Time) civil.Duration {
	return s.Now().Sub(t)
}
