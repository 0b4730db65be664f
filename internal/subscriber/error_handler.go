package subscriber

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/finvent/paystream/config"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/pipeline"
)

// DLQPublisher routes an exhausted record to the dead-letter topic paired
// with its origin topic, preserving partition affinity.
type DLQPublisher interface {
	PublishDLQ(ctx context.Context, originTopic string, originPartition int, dlq models.DLQMessage) error
}

// ErrorHandler applies the transport-layer failure policy: exponential
// backoff for transient errors, bounded by attempt count and total elapsed
// time, then dead-letter. Errors classified as permanent skip retry entirely
// since retrying a deterministic bug only delays detection.
type ErrorHandler struct {
	RetryConfig config.RetryConfig

	dlq     DLQPublisher
	metrics *Metrics
}

func NewErrorHandler(retryConfig config.RetryConfig, dlq DLQPublisher, metrics *Metrics) *ErrorHandler {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	return &ErrorHandler{
		RetryConfig: retryConfig,
		dlq:         dlq,
		metrics:     metrics,
	}
}

// Resolve takes a record whose first handling attempt failed and drives it
// to a terminal state: recovered through inline retry, or parked on the DLQ.
// It returns nil only once the record is safe to acknowledge; a failed
// dead-letter hand-off surfaces so the caller withholds the commit and the
// record is redelivered instead of lost.
func (h *ErrorHandler) Resolve(ctx context.Context, msg kafka.Message, handler Handler, firstErr error) error {
	if pipeline.IsPermanent(firstErr) {
		logrus.Warnf("Non-retryable error on topic=%s partition=%d: %v", msg.Topic, msg.Partition, firstErr)
		return h.deadLetter(ctx, msg, firstErr, 1, true)
	}

	start := time.Now()
	lastErr := firstErr
	attempts := 1

	for attempt := 1; attempt < h.RetryConfig.MaxAttempts; attempt++ {
		backoff := h.calculateBackoff(attempt - 1)
		if h.RetryConfig.MaxElapsed > 0 && time.Since(start)+backoff > h.RetryConfig.MaxElapsed {
			logrus.Warnf("Retry budget exhausted for topic=%s partition=%d after %v", msg.Topic, msg.Partition, time.Since(start))
			break
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}

		attempts++
		h.metrics.Retries.WithLabelValues(msg.Topic).Inc()

		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			logrus.Infof("Record recovered on topic=%s partition=%d after %d attempts", msg.Topic, msg.Partition, attempts)
			return nil
		}
		lastErr = err

		if pipeline.IsPermanent(err) {
			return h.deadLetter(ctx, msg, err, attempts, true)
		}

		logrus.Warnf("Handler error, attempt %d/%d on topic=%s: %v", attempts, h.RetryConfig.MaxAttempts, msg.Topic, err)
	}

	return h.deadLetter(ctx, msg, lastErr, attempts, false)
}

func (h *ErrorHandler) deadLetter(ctx context.Context, msg kafka.Message, cause error, attempts int, permanent bool) error {
	dlqMessage := models.DLQMessage{
		OriginalTopic:     msg.Topic,
		OriginalPartition: msg.Partition,
		Key:               string(msg.Key),
		Value:             string(msg.Value),
		Timestamp:         time.Now().UTC(),
		Attempts:          attempts,
		Error:             cause.Error(),
		Permanent:         permanent,
	}

	if err := h.dlq.PublishDLQ(ctx, msg.Topic, msg.Partition, dlqMessage); err != nil {
		logrus.Errorf("Failed to send message to DLQ: %v", err)
		return fmt.Errorf("error publishing to DLQ: %w", err)
	}

	h.metrics.DeadLettered.WithLabelValues(msg.Topic).Inc()
	logrus.Warnf("Message sent to DLQ: original topic=%s partition=%d key=%s attempts=%d", msg.Topic, msg.Partition, string(msg.Key), attempts)
	return nil
}

func (h *ErrorHandler) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * h.RetryConfig.BaseDelay

	if delay > h.RetryConfig.MaxDelay {
		delay = h.RetryConfig.MaxDelay
	}

	if h.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
