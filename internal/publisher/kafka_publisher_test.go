package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/finvent/paystream/config"
	"github.com/finvent/paystream/internal/topics"
)

func testRegistry() *topics.Registry {
	return topics.NewRegistry(config.Kafka{
		Brokers:               "localhost:9092",
		ReplicationFactor:     1,
		PaymentPartitions:     6,
		WebhookPartitions:     6,
		SubscriptionPartition: 3,
		DLQPartitions:         3,
	})
}

func TestNewKafkaPublisher_OneWriterPerTopic(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092", testRegistry(), config.RetryConfig{}, 0)
	defer p.Close()

	for _, topic := range []string{
		topics.PaymentEventsTopic,
		topics.WebhookRawTopic,
		topics.SubscriptionEventsTopic,
		topics.NotificationsTopic,
		topics.PaymentDLQTopic,
		topics.WebhookDLQTopic,
	} {
		writer, ok := p.Writers[topic]
		assert.True(t, ok, "expected writer for %s", topic)
		assert.True(t, writer.Async)
		assert.Equal(t, kafka.RequireAll, writer.RequiredAcks)
	}

	// Retry topics are declared on the broker but nothing publishes to them.
	_, ok := p.Writers[topics.PaymentRetryTopic]
	assert.False(t, ok)
	_, ok = p.Writers[topics.WebhookRetryTopic]
	assert.False(t, ok)

	assert.IsType(t, &kafka.Hash{}, p.Writers[topics.PaymentEventsTopic].Balancer)
	assert.IsType(t, &partitionPinBalancer{}, p.Writers[topics.PaymentDLQTopic].Balancer)
}

func TestNewKafkaPublisher_AppliesRetryDefaults(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092", testRegistry(), config.RetryConfig{}, 0)
	defer p.Close()

	assert.Equal(t, 5, p.RetryConfig.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, p.RetryConfig.BaseDelay)
	assert.Equal(t, 10*time.Second, p.RetryConfig.MaxDelay)
	assert.Equal(t, 5*time.Second, p.syncTimeout)
}

func TestFuture_WaitResolvesWithResult(t *testing.T) {
	fut := newFuture()
	fut.resolve(Result{Partition: 2, Offset: 41}, nil)

	res, err := fut.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Partition)
	assert.Equal(t, int64(41), res.Offset)
}

func TestFuture_WaitResolvesWithError(t *testing.T) {
	fut := newFuture()
	brokerErr := errors.New("broker unreachable")
	fut.resolve(Result{}, brokerErr)

	_, err := fut.Wait(context.Background())
	assert.ErrorIs(t, err, brokerErr)
}

func TestFuture_WaitTimesOut(t *testing.T) {
	fut := newFuture()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := fut.Wait(ctx)
	assert.ErrorIs(t, err, ErrPublishTimeout)
}

func TestFuture_ResolveIsIdempotent(t *testing.T) {
	fut := newFuture()
	fut.resolve(Result{Partition: 1, Offset: 7}, nil)
	fut.resolve(Result{Partition: 9, Offset: 99}, nil)

	res, err := fut.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Partition)
	assert.Equal(t, int64(7), res.Offset)
}

func TestComplete_ResolvesFuturesFromWriterData(t *testing.T) {
	p := &KafkaPublisher{}

	okFut := newFuture()
	failFut := newFuture()

	p.complete([]kafka.Message{
		{WriterData: okFut, Partition: 3, Offset: 120},
	}, nil)
	p.complete([]kafka.Message{
		{WriterData: failFut},
	}, errors.New("write failed"))

	res, err := okFut.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Partition)
	assert.Equal(t, int64(120), res.Offset)

	_, err = failFut.Wait(context.Background())
	assert.EqualError(t, err, "write failed")
}

func TestPartitionPinBalancer_HonorsHeader(t *testing.T) {
	b := &partitionPinBalancer{}
	msg := kafka.Message{
		Headers: []kafka.Header{
			{Key: HeaderTargetPartition, Value: []byte("2")},
		},
	}

	assert.Equal(t, 2, b.Balance(msg, 0, 1, 2))
}

func TestPartitionPinBalancer_WrapsOversizedTarget(t *testing.T) {
	b := &partitionPinBalancer{}
	msg := kafka.Message{
		Headers: []kafka.Header{
			{Key: HeaderTargetPartition, Value: []byte("7")},
		},
	}

	assert.Equal(t, 1, b.Balance(msg, 0, 1, 2))
}

func TestPartitionPinBalancer_FallsBackToKeyHash(t *testing.T) {
	b := &partitionPinBalancer{}
	msg := kafka.Message{Key: []byte("user-77")}

	want := (&kafka.Hash{}).Balance(msg, 0, 1, 2)
	assert.Equal(t, want, b.Balance(msg, 0, 1, 2))

	// Malformed header values fall back too.
	msg.Headers = []kafka.Header{
		{Key: HeaderTargetPartition, Value: []byte("not-a-number")},
	}
	assert.Equal(t, want, b.Balance(msg, 0, 1, 2))
}
