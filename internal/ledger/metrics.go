package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Received         prometheus.Counter
	Duplicates       prometheus.Counter
	Processed        prometheus.Counter
	RetriesScheduled prometheus.Counter
	DeadLettered     prometheus.Counter
	Replays          prometheus.Counter
	DeadLetterDepth  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Received: factory.NewCounter(prometheus.CounterOpts{
			Name: "webhook_ledger_received_total",
			Help: "Webhook events recorded for the first time",
		}),
		Duplicates: factory.NewCounter(prometheus.CounterOpts{
			Name: "webhook_ledger_duplicates_total",
			Help: "Webhook receipts short-circuited by the dedup check",
		}),
		Processed: factory.NewCounter(prometheus.CounterOpts{
			Name: "webhook_ledger_processed_total",
			Help: "Webhook events processed successfully",
		}),
		RetriesScheduled: factory.NewCounter(prometheus.CounterOpts{
			Name: "webhook_ledger_retries_scheduled_total",
			Help: "Backoff retry slots scheduled after failed attempts",
		}),
		DeadLettered: factory.NewCounter(prometheus.CounterOpts{
			Name: "webhook_ledger_dead_lettered_total",
			Help: "Webhook events parked after exhausting the retry ceiling",
		}),
		Replays: factory.NewCounter(prometheus.CounterOpts{
			Name: "webhook_ledger_replays_total",
			Help: "Manual replays of dead-lettered entries",
		}),
		DeadLetterDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "webhook_ledger_dead_letter_depth",
			Help: "Current number of dead-lettered ledger entries",
		}),
	}
}
