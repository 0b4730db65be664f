package subscriber

import (
	"context"
	"sync"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Handler processes one raw record. Returned errors are resolved by the
// ErrorHandler; handlers do not retry on their own.
type Handler func(ctx context.Context, topic string, value []byte) error

type Mode int

const (
	// BatchMode pulls up to MaxBatch records, continues past individual
	// failures and acknowledges the whole batch together. High-volume
	// channels.
	BatchMode Mode = iota
	// SingleMode handles one record at a time and acknowledges only after
	// it reached a terminal state. Low-volume channels.
	SingleMode
)

type GroupConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	Mode        Mode
	Concurrency int
	MaxBatch    int
	MaxWait     time.Duration
}

// ListenerGroup runs Concurrency workers against one topic, each with its
// own reader in the shared consumer group. The group protocol assigns
// partitions exclusively, which is what preserves per-key ordering under
// concurrency; Concurrency beyond the partition count buys nothing.
type ListenerGroup struct {
	cfg          GroupConfig
	handler      Handler
	errorHandler *ErrorHandler
	metrics      *Metrics

	readers []*kafka.Reader
	wg      sync.WaitGroup
}

func NewListenerGroup(cfg GroupConfig, handler Handler, errorHandler *ErrorHandler, metrics *Metrics) *ListenerGroup {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = 50
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = time.Second
	}

	return &ListenerGroup{
		cfg:          cfg,
		handler:      handler,
		errorHandler: errorHandler,
		metrics:      metrics,
	}
}

func (g *ListenerGroup) Start(ctx context.Context) {
	for i := 0; i < g.cfg.Concurrency; i++ {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:  g.cfg.Brokers,
			GroupID:  g.cfg.GroupID,
			Topic:    g.cfg.Topic,
			MinBytes: 1,
			MaxBytes: 10e6,
			MaxWait:  g.cfg.MaxWait,
		})
		g.readers = append(g.readers, reader)

		g.wg.Add(1)
		go g.worker(ctx, reader)
	}

	logrus.Infof("Listener group started: topic=%s group=%s workers=%d mode=%d", g.cfg.Topic, g.cfg.GroupID, g.cfg.Concurrency, g.cfg.Mode)
}

func (g *ListenerGroup) worker(ctx context.Context, reader *kafka.Reader) {
	defer g.wg.Done()

	for {
		var err error
		switch g.cfg.Mode {
		case SingleMode:
			err = g.runSingle(ctx, reader)
		default:
			err = g.runBatch(ctx, reader)
		}

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.Errorf("Kafka error on topic %s: %v", g.cfg.Topic, err)
			time.Sleep(time.Second)
		}
	}
}

// runSingle processes one record and commits only once the record reached a
// terminal state: handled, recovered through retry, or confirmed on the DLQ.
// A failed dead-letter hand-off leaves the offset uncommitted so the record
// is redelivered.
func (g *ListenerGroup) runSingle(ctx context.Context, reader *kafka.Reader) error {
	msg, err := reader.FetchMessage(ctx)
	if err != nil {
		return err
	}

	if err := g.process(ctx, msg); err != nil {
		return err
	}

	return reader.CommitMessages(ctx, msg)
}

// runBatch drains up to MaxBatch records, processes each one, and commits
// the batch as a whole. One bad record never blocks the rest; its fate is
// decided by the error handler before the batch is acknowledged.
func (g *ListenerGroup) runBatch(ctx context.Context, reader *kafka.Reader) error {
	first, err := reader.FetchMessage(ctx)
	if err != nil {
		return err
	}

	batch := []kafka.Message{first}

	drainCtx, cancel := context.WithTimeout(ctx, g.cfg.MaxWait)
	for len(batch) < g.cfg.MaxBatch {
		msg, err := reader.FetchMessage(drainCtx)
		if err != nil {
			break
		}
		batch = append(batch, msg)
	}
	cancel()

	if err := g.processBatch(ctx, batch); err != nil {
		return err
	}

	return reader.CommitMessages(ctx, batch...)
}

// processBatch attempts every record in the batch; the per-record outcome
// never affects the others. Any record that failed to reach a terminal
// state withholds the batch commit, so the whole batch is redelivered and
// nothing is acknowledged while lost. Redelivered records that already
// processed are absorbed downstream as duplicates.
func (g *ListenerGroup) processBatch(ctx context.Context, batch []kafka.Message) error {
	var firstErr error
	for _, msg := range batch {
		if err := g.process(ctx, msg); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (g *ListenerGroup) process(ctx context.Context, msg kafka.Message) error {
	if err := g.handler(ctx, msg.Topic, msg.Value); err != nil {
		g.metrics.Failed.WithLabelValues(msg.Topic).Inc()
		return g.errorHandler.Resolve(ctx, msg, g.handler, err)
	}
	g.metrics.Processed.WithLabelValues(msg.Topic).Inc()
	return nil
}

// Close shuts the readers down and waits for workers to drain.
func (g *ListenerGroup) Close() error {
	var lastErr error
	for _, r := range g.readers {
		if err := r.Close(); err != nil {
			lastErr = err
		}
	}
	g.wg.Wait()
	return lastErr
}
