// Package metrics exports run statistics in the Prometheus text format so a
// batch run can be picked up by a node_exporter textfile collector.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ccollicutt/failsum/pkg/analyzer"
)

const namespace = "failsum"

// Handler holds the gauges for one run.
type Handler struct {
	registry *prometheus.Registry

	RecordsTotal   *prometheus.GaugeVec
	Groups         prometheus.Gauge
	ReportedGroups prometheus.Gauge
	Failures       *prometheus.GaugeVec
	LastRunSuccess prometheus.Gauge
}

// New creates a Handler with its own registry.
func New() *Handler {
	h := &Handler{
		registry: prometheus.NewRegistry(),
		RecordsTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Number of records seen at each pipeline stage",
		}, []string{"stage"}),
		Groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "groups",
			Help:      "Number of distinct (service, reason) groups, before any limit",
		}),
		ReportedGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reported_groups",
			Help:      "Number of groups reported after the limit is applied",
		}),
		Failures: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "failures",
			Help:      "Failure count per service and reason, for reported groups only. has_service is false when records carried no service",
		}, []string{"service", "has_service", "reason"}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 if the last run completed, 0 otherwise",
		}),
	}

	h.registry.MustRegister(h.RecordsTotal, h.Groups, h.ReportedGroups, h.Failures, h.LastRunSuccess)

	return h
}

// Observe records the statistics and groups of a completed run.
func (h *Handler) Observe(result *analyzer.Result) {
	h.RecordsTotal.WithLabelValues("read").Set(float64(result.Stats.RecordsRead))
	h.RecordsTotal.WithLabelValues("matched").Set(float64(result.Stats.RecordsMatched))
	h.RecordsTotal.WithLabelValues("parsed").Set(float64(result.Stats.RecordsParsed))
	h.Groups.Set(float64(result.Stats.Groups))
	h.ReportedGroups.Set(float64(len(result.Groups)))

	// An absent service and "" are different groups; has_service keeps
	// their series apart.
	for _, g := range result.Groups {
		h.Failures.WithLabelValues(g.Key.Service, strconv.FormatBool(g.Key.HasService), g.Key.Reason).Set(float64(g.Count))
	}

	h.LastRunSuccess.Set(1)
}

// MarkFailed records a run that did not complete.
func (h *Handler) MarkFailed() {
	h.LastRunSuccess.Set(0)
}

// WriteFile writes all metrics to path atomically.
func (h *Handler) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, h.registry); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return nil
}
