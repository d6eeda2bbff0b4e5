package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salon_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ClosingCommits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_closing_commits_total",
			Help: "Closing commit attempts by result.",
		},
		[]string{"result"},
	)

	ClosingsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salon_closings_completed_total",
			Help: "Daily closings marked as completed.",
		},
	)

	ClosingRevenue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "salon_closing_last_revenue_euros",
			Help: "Total revenue of the last completed closing.",
		},
	)

	MessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_automation_messages_total",
			Help: "Automation messages by channel and status.",
		},
		[]string{"channel", "status"},
	)
)
