package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Dataset metrics
	DatasetBatches   prometheus.Gauge
	DatasetCustomers prometheus.Gauge

	// Retention metrics
	RetentionSweeps         prometheus.Counter
	RetentionBatchesDeleted prometheus.Counter
}

// New creates and registers all application metrics
func New(namespace string) *Metrics {
	return &Metrics{
		DatasetBatches: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_batches",
			Help:      "Current number of batches held in storage",
		}),
		DatasetCustomers: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_customers",
			Help:      "Current number of customers held in storage",
		}),
		RetentionSweeps: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_sweeps_total",
			Help:      "Total number of retention sweeps executed",
		}),
		RetentionBatchesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_batches_deleted_total",
			Help:      "Total number of batches removed by retention sweeps",
		}),
	}
}
