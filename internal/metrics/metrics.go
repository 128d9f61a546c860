package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_transactions_total",
			Help: "Total ledger transactions recorded",
		},
		[]string{"type", "status"},
	)

	TransactionAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_transaction_amounts",
			Help:    "Distribution of transaction amounts",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12),
		},
		[]string{"currency", "type"},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total user notifications recorded",
		},
		[]string{"category"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		TransactionsTotal,
		TransactionAmounts,
		NotificationsTotal,
	)
}
