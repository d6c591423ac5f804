// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_requests_total",
			Help: "Total number of analyze requests by outcome",
		},
		[]string{"status"},
	)

	GenAICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genai_calls_total",
			Help: "Total number of text-generation calls by pipeline stage and outcome",
		},
		[]string{"stage", "outcome"},
	)

	GenAICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "genai_call_duration_seconds",
			Help:    "Duration of text-generation calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"stage"},
	)

	SubjectiveFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subjective_fallbacks_total",
			Help: "Subjective dimension scorings that degraded to the fallback score",
		},
		[]string{"dimension"},
	)
)
