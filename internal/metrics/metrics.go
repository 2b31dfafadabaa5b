// Package metrics exposes Prometheus counters for estimation outcomes.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Error reason label values.
const (
	ReasonInvalidArgument    = "invalid_argument"
	ReasonUnknownAccelerator = "unknown_accelerator"
	ReasonUnderspecified     = "underspecified"
)

var (
	estimationsTotal      *prometheus.CounterVec
	estimationErrorsTotal *prometheus.CounterVec

	// initOnce ensures InitMetrics is only executed once for thread safety
	initOnce sync.Once
	initErr  error
)

// InitMetrics registers the planner metrics with the provided registry.
// This function is thread-safe and can be called multiple times;
// registration only occurs once, with the first call's registry. Recording
// functions are no-ops until InitMetrics has been called.
func InitMetrics(registry prometheus.Registerer) error {
	initOnce.Do(func() {
		estimationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_estimations_total",
				Help: "Total number of successful training time estimations",
			},
			[]string{"accelerator_type"},
		)
		estimationErrorsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_estimation_errors_total",
				Help: "Total number of rejected estimation requests",
			},
			[]string{"reason"},
		)

		for _, c := range []prometheus.Collector{estimationsTotal, estimationErrorsTotal} {
			if err := registry.Register(c); err != nil {
				initErr = err
				return
			}
		}
	})
	return initErr
}

// RecordEstimation increments the success counter for an accelerator type.
func RecordEstimation(acceleratorType string) {
	if estimationsTotal == nil {
		return
	}
	estimationsTotal.WithLabelValues(acceleratorType).Inc()
}

// RecordEstimationError increments the error counter for the given reason.
func RecordEstimationError(reason string) {
	if estimationErrorsTotal == nil {
		return
	}
	estimationErrorsTotal.WithLabelValues(reason).Inc()
}
