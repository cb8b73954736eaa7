package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	notificationsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notifications_processed_total",
			Help:      "Total number of order confirmations sent",
		},
	)

	notificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notifications_failed_total",
			Help:      "Total number of failed order confirmation attempts",
		},
	)

	notificationsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notifications_dlq_total",
			Help:      "Total number of order events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	notificationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notification_duration_seconds",
			Help:      "Histogram of order confirmation durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	notificationsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "notifications_in_progress",
			Help:      "Number of order events currently being processed",
		},
	)
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of newly placed orders",
		},
	)

	orderReplays = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "payment_replays_total",
			Help:      "Total number of placement requests answered with an existing order",
		},
	)

	paymentVerificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "payment_verification_failures_total",
			Help:      "Total number of placement requests with an invalid payment signature",
		},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Total number of applied status transitions by target status",
		},
		[]string{"status"},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of order API requests",
		},
		[]string{"operation", "status"},
	)

	orderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of order API request durations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress order API requests",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		notificationsProcessed,
		notificationsFailed,
		notificationsDLQ,
		commitErrors,
		notificationDuration,
		notificationsInProgress,

		ordersPlaced,
		orderReplays,
		paymentVerificationFailures,
		statusTransitions,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
