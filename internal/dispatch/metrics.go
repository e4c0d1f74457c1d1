package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_submissions_total",
			Help: "Total number of booking submissions by channel and outcome",
		},
		[]string{"kind", "state"},
	)

	emailSendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_email_send_failures_total",
			Help: "Total number of failed email delivery attempts",
		},
	)
)
