// Package metrics declares the Prometheus collectors of the service. They are
// registered with the default registry and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "manufacturing"

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Manufacturing orders accepted with all components reserved.",
	})

	// PlacementsRejected is labelled by the error kind that rejected the placement.
	PlacementsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_placements_rejected_total",
		Help:      "Order placements rolled back, by failure kind.",
	}, []string{"kind"})

	WorkOrderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "work_order_transitions_total",
		Help:      "Applied work order status transitions, by target status.",
	}, []string{"status"})

	OutboxPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outbox_messages_published_total",
		Help:      "Outbox messages delivered, by sink.",
	}, []string{"sink"})

	OutboxFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outbox_publish_failures_total",
		Help:      "Outbox delivery attempts that failed, by sink.",
	}, []string{"sink"})
)
