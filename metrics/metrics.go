package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commute_evaluations_total",
			Help: "Total number of completed evaluations by verdict",
		},
		[]string{"verdict"},
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "commute_evaluation_duration_seconds",
			Help:    "Duration of a full evaluation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	InputRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "commute_input_rejections_total",
			Help: "Total number of evaluation inputs rejected by validation",
		},
	)

	FuelPriceLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commute_fuel_price_lookups_total",
			Help: "Fuel price lookups by the source that answered",
		},
		[]string{"source"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "commute_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)
