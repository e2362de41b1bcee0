// Package metrics provides Prometheus observability metrics for the shrinkage tracker.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// AttendanceRecordsTotal counts attendance records inserted into the store.
var AttendanceRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "shrinkage",
	Name:      "attendance_records_total",
	Help:      "Total number of attendance records inserted",
})

// LeaveRecordsTotal counts leave records inserted into the store.
var LeaveRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "shrinkage",
	Name:      "leave_records_total",
	Help:      "Total number of leave records inserted",
})

// ReportsGeneratedTotal counts generated shrinkage reports by mode (daily/weekly).
var ReportsGeneratedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "shrinkage",
	Name:      "reports_generated_total",
	Help:      "Total number of shrinkage reports generated",
}, []string{"mode"})

// LastAverageShrinkage holds the average shrinkage percentage of the most
// recent non-empty report.
var LastAverageShrinkage = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "shrinkage",
	Name:      "last_average_percent",
	Help:      "Average shrinkage percentage of the last generated report",
})

// Handler returns an http.Handler that serves the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
