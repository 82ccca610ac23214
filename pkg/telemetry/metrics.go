// Package telemetry exports Prometheus metrics for processes that embed a
// civil-time clock: the current wall-clock position and the observed skew
// of secondary clock sources against a reference.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BYTE-6D65/civiltime/pkg/civil"
	"github.com/BYTE-6D65/civiltime/pkg/clock"
)

// ClockMetrics holds the Prometheus metrics derived from a Clock.
type ClockMetrics struct {
	// WallClockSeconds reports the clock's current instant as Unix seconds.
	WallClockSeconds prometheus.GaugeFunc

	// SkewSeconds reports the last observed offset of a named clock
	// source relative to the reference clock, in seconds.
	SkewSeconds *prometheus.GaugeVec

	// SkewObservations counts skew observations per source.
	SkewObservations *prometheus.CounterVec
}

// NewClockMetrics registers clock metrics for clk on the given registry.
// A nil registry falls back to the default registerer.
func NewClockMetrics(registry prometheus.Registerer, clk clock.Clock) *ClockMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &ClockMetrics{
		WallClockSeconds: factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "civiltime_wall_clock_seconds",
				Help: "Current instant of the reference clock as Unix seconds.",
			},
			func() float64 {
				now := clk.Now()
				return float64(now.Unix()) + float64(now.Nanosecond())/1e9
			},
		),
		SkewSeconds: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "civiltime_clock_skew_seconds",
				Help: "Observed offset of a clock source against the reference clock.",
			},
			[]string{"source"},
		),
		SkewObservations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "civiltime_clock_skew_observations_total",
				Help: "Number of skew observations recorded per clock source.",
			},
			[]string{"source"},
		),
	}
}

// ObserveSkew records the offset of a named source's instant against the
// reference instant. Positive values mean the source runs ahead.
func (m *ClockMetrics) ObserveSkew(source string, reference, observed civil.Time) {
	m.SkewSeconds.WithLabelValues(source).Set(observed.Sub(reference).Seconds())
	m.SkewObservations.WithLabelValues(source).Inc()
}
