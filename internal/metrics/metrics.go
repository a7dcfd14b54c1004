package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	TournamentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTournamentsCreated,
			Help: HelpTextTournamentsCreated,
		},
	)

	PredictionsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsPlaced,
			Help: HelpTextPredictionsPlaced,
		},
		[]string{LabelCategory},
	)

	TournamentsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTournamentsResolved,
			Help: HelpTextTournamentsResolved,
		},
	)

	WinningsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWinningsClaimed,
			Help: HelpTextWinningsClaimed,
		},
	)

	WinningsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWinningsPaid,
			Help: HelpTextWinningsPaid,
		},
	)

	FeesCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFeesCollected,
			Help: HelpTextFeesCollected,
		},
	)
)
