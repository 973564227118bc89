// Package metrics registers the client's Prometheus collectors. They are
// package-level because the process owns exactly one dashboard runtime.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GatewayRequestDuration tracks each backend call by resource and
	// outcome (ok, network, server, decode).
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dashboard_client",
			Name:      "gateway_request_duration_seconds",
			Help:      "Duration of backend REST calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource", "outcome"},
	)

	// QueuePolls counts queue refreshes by outcome (ok, error, stale).
	// Stale means the response lost the race to a newer one and was
	// discarded by the sequence guard.
	QueuePolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashboard_client",
			Name:      "queue_polls_total",
			Help:      "Queue snapshot refreshes by outcome.",
		},
		[]string{"outcome"},
	)
)
