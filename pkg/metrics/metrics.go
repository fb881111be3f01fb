// Package metrics exposes the Prometheus counters for the ordering and
// dispensing pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fds_orders_created_total",
		Help: "Gateway orders created during checkout.",
	})

	PaymentsVerified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fds_payments_verified_total",
		Help: "Payment verification outcomes.",
	}, []string{"result"})

	ActuationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fds_actuation_requests_total",
		Help: "Hardware activation requests by outcome.",
	}, []string{"result"})
)
