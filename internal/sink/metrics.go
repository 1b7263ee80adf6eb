package sink

import (
	"github.com/prometheus/client_golang/prometheus"

	"notifier/internal/tracking"
)

var notificationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "notifier",
		Name:      "notifications_total",
		Help:      "Total number of entity notifications delivered to the metrics sink",
	},
	[]string{"type", "action"},
)

func init() {
	prometheus.MustRegister(notificationsTotal)
}

// Metrics counts notifications by entity type and action.
type Metrics struct{}

func (Metrics) Update(updated, original tracking.Entity, typeName, message string) error {
	notificationsTotal.WithLabelValues(typeName, string(tracking.ActionOf(updated, original))).Inc()
	return nil
}
