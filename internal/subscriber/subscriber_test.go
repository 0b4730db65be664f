package subscriber

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/finvent/paystream/internal/pipeline"
)

func batchOf(values ...string) []kafka.Message {
	batch := make([]kafka.Message, 0, len(values))
	for i, v := range values {
		batch = append(batch, kafka.Message{
			Topic:     "payments.events",
			Partition: 0,
			Offset:    int64(i),
			Key:       []byte("user-1"),
			Value:     []byte(v),
		})
	}
	return batch
}

func TestNewListenerGroup_AppliesDefaults(t *testing.T) {
	g := NewListenerGroup(GroupConfig{Topic: "payments.events"}, nil, nil, nil)

	assert.Equal(t, 1, g.cfg.Concurrency)
	assert.Equal(t, 50, g.cfg.MaxBatch)
	assert.Equal(t, time.Second, g.cfg.MaxWait)
}

func TestProcessBatch_OneBadRecordNeverBlocksTheRest(t *testing.T) {
	dlq := &fakeDLQ{}
	metrics := NewMetrics(prometheus.NewRegistry())
	errorHandler := NewErrorHandler(fastRetryConfig(), dlq, metrics)

	var handled []string
	handler := func(ctx context.Context, topic string, value []byte) error {
		if string(value) == "record-3" {
			return pipeline.Permanent(errors.New("unparseable"))
		}
		handled = append(handled, string(value))
		return nil
	}

	g := NewListenerGroup(GroupConfig{Topic: "payments.events"}, handler, errorHandler, metrics)
	err := g.processBatch(context.Background(), batchOf("record-1", "record-2", "record-3", "record-4", "record-5"))

	assert.NoError(t, err, "a dead-lettered record still lets the batch acknowledge")
	assert.Equal(t, []string{"record-1", "record-2", "record-4", "record-5"}, handled)
	assert.Len(t, dlq.messages, 1)
	assert.Equal(t, "record-3", dlq.messages[0].Value)
}

func TestProcessBatch_FailedDeadLetterHandOffWithholdsAck(t *testing.T) {
	brokerErr := errors.New("dlq write failed")
	dlq := &fakeDLQ{err: brokerErr}
	metrics := NewMetrics(prometheus.NewRegistry())
	errorHandler := NewErrorHandler(fastRetryConfig(), dlq, metrics)

	var handled []string
	handler := func(ctx context.Context, topic string, value []byte) error {
		if string(value) == "record-2" {
			return pipeline.Permanent(errors.New("unparseable"))
		}
		handled = append(handled, string(value))
		return nil
	}

	g := NewListenerGroup(GroupConfig{Topic: "payments.events"}, handler, errorHandler, metrics)
	err := g.processBatch(context.Background(), batchOf("record-1", "record-2", "record-3"))

	// The healthy records still process, but the batch must not be
	// acknowledged while the failed record landed nowhere.
	assert.ErrorIs(t, err, brokerErr)
	assert.Equal(t, []string{"record-1", "record-3"}, handled)
}

func TestProcess_TransientFailureRecoversInline(t *testing.T) {
	dlq := &fakeDLQ{}
	metrics := NewMetrics(prometheus.NewRegistry())
	errorHandler := NewErrorHandler(fastRetryConfig(), dlq, metrics)

	calls := 0
	handler := func(ctx context.Context, topic string, value []byte) error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	}

	g := NewListenerGroup(GroupConfig{Topic: "payments.events"}, handler, errorHandler, metrics)
	err := g.process(context.Background(), batchOf("record-1")[0])

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Empty(t, dlq.messages)
}

func TestProcess_SuccessSkipsErrorHandler(t *testing.T) {
	dlq := &fakeDLQ{}
	metrics := NewMetrics(prometheus.NewRegistry())
	errorHandler := NewErrorHandler(fastRetryConfig(), dlq, metrics)

	handler := func(ctx context.Context, topic string, value []byte) error {
		return nil
	}

	g := NewListenerGroup(GroupConfig{Topic: "payments.events"}, handler, errorHandler, metrics)
	err := g.process(context.Background(), batchOf("record-1")[0])

	assert.NoError(t, err)
	assert.Empty(t, dlq.messages)
}
