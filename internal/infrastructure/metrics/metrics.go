package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics covers the order lifecycle and its side channels.
type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	OrderTransitionsTotal     prometheus.CounterVec
	InvalidTransitionsTotal   prometheus.CounterVec
	OrdersCancelledTotal      prometheus.Counter
	StockRejectionsTotal      prometheus.Counter
	NotificationFailuresTotal prometheus.CounterVec
	OrderProcessingDuration   prometheus.HistogramVec
	EventPublishFailuresTotal prometheus.Counter
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created, labelled by payment method",
			},
			[]string{"payment_method"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total amount of created orders",
			},
			[]string{"payment_method"},
		),

		OrderTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Successful status transitions by from/to status",
			},
			[]string{"from", "to"},
		),

		InvalidTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_invalid_transitions_total",
				Help: "Rejected status transitions by from/to status",
			},
			[]string{"from", "to"},
		),

		OrdersCancelledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Orders cancelled by sellers",
			},
		),

		StockRejectionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_stock_rejections_total",
				Help: "Order creations rejected for insufficient stock",
			},
		),

		NotificationFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_failures_total",
				Help: "Notification delivery failures by channel",
			},
			[]string{"channel"},
		),

		OrderProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_operation_duration_seconds",
				Help:    "Duration of order operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		EventPublishFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "order_event_publish_failures_total",
				Help: "Failed order event publications",
			},
		),
	}
}
