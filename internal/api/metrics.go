package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/geoset/geoset/internal/build"
)

var (
	buildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geoset_builds_total",
			Help: "Total build runs by result",
		},
		[]string{"result"},
	)
	buildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geoset_build_duration_seconds",
			Help:    "Build run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
	listRules = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "geoset_list_rules",
			Help: "Classified rules per list and bucket after the last build",
		},
		[]string{"list", "bucket"},
	)
	listWarnings = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "geoset_list_warnings",
			Help: "Warnings emitted per list during the last build",
		},
		[]string{"list"},
	)
)

func init() {
	prometheus.MustRegister(buildsTotal, buildDuration, listRules, listWarnings)
}

// recordSummary publishes metrics from a finished build run.
func recordSummary(summary *build.Summary) {
	result := "success"
	if summary.Failed() > 0 || summary.CompileErr != nil {
		result = "failure"
	}
	buildsTotal.WithLabelValues(result).Inc()
	buildDuration.Observe(summary.Duration.Seconds())

	for _, outcome := range summary.Outcomes {
		listWarnings.WithLabelValues(outcome.List).Set(float64(len(outcome.Warnings)))
		if outcome.Err != nil {
			continue
		}
		listRules.WithLabelValues(outcome.List, "suffix").Set(float64(outcome.Counts.Suffix))
		listRules.WithLabelValues(outcome.List, "full").Set(float64(outcome.Counts.Full))
		listRules.WithLabelValues(outcome.List, "regex").Set(float64(outcome.Counts.Regex))
		listRules.WithLabelValues(outcome.List, "keyword").Set(float64(outcome.Counts.Keyword))
		listRules.WithLabelValues(outcome.List, "tld").Set(float64(outcome.Counts.TLD))
	}
}
