package subscriber

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are owned by the listener instance and registered against an
// injected registerer, so tests can construct isolated instances.
type Metrics struct {
	Processed    *prometheus.CounterVec
	Failed       *prometheus.CounterVec
	Retries      *prometheus.CounterVec
	DeadLettered *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Processed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_records_processed_total",
			Help: "Records handled successfully, by topic",
		}, []string{"topic"}),
		Failed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_records_failed_total",
			Help: "Records whose first handling attempt failed, by topic",
		}, []string{"topic"}),
		Retries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_record_retries_total",
			Help: "Inline retry attempts at the transport layer, by topic",
		}, []string{"topic"}),
		DeadLettered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_records_dead_lettered_total",
			Help: "Records parked on a dead-letter topic, by origin topic",
		}, []string{"topic"}),
	}
}
