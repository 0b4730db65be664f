package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/finvent/paystream/config"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/topics"
)

// HeaderTargetPartition pins a message to a partition, used by dead-letter
// publishes to keep partition affinity with the originating record.
const HeaderTargetPartition = "x-target-partition"

var ErrPublishTimeout = errors.New("publish confirmation timed out")

// Result is the broker's acknowledgment for one published record.
type Result struct {
	Partition int
	Offset    int64
}

type outcome struct {
	res Result
	err error
}

// Future is the awaitable handle returned by the confirmable publish variant.
type Future struct {
	ch chan outcome
}

func newFuture() *Future {
	return &Future{ch: make(chan outcome, 1)}
}

func (f *Future) resolve(res Result, err error) {
	select {
	case f.ch <- outcome{res: res, err: err}:
	default:
	}
}

// Wait blocks until the broker acknowledges the write or ctx expires.
func (f *Future) Wait(ctx context.Context) (Result, error) {
	select {
	case o := <-f.ch:
		return o.res, o.err
	case <-ctx.Done():
		return Result{}, fmt.Errorf("%w: %v", ErrPublishTimeout, ctx.Err())
	}
}

// KafkaPublisher owns one async writer per topic. The Hash balancer routes
// by message key, so every event sharing a partition key lands on the same
// partition and is consumed in publish order for that key.
type KafkaPublisher struct {
	Writers     map[string]*kafka.Writer
	RetryConfig config.RetryConfig

	registry    *topics.Registry
	syncTimeout time.Duration
}

func NewKafkaPublisher(kafkaURL string, registry *topics.Registry, retryConfig config.RetryConfig, syncTimeout time.Duration) *KafkaPublisher {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	if syncTimeout == 0 {
		syncTimeout = 5 * time.Second
	}

	p := &KafkaPublisher{
		Writers:     make(map[string]*kafka.Writer),
		RetryConfig: retryConfig,
		registry:    registry,
		syncTimeout: syncTimeout,
	}

	// Retry topics are declared for replay tooling but nothing publishes
	// to them: transport retry happens inline, ledger retry lives in the
	// database. Only main and DLQ topics get writers.
	for _, channel := range registry.Channels() {
		p.addWriter(kafkaURL, channel.Topic, &kafka.Hash{})
		p.addWriter(kafkaURL, channel.DLQTopic, &partitionPinBalancer{})
	}

	return p
}

func (p *KafkaPublisher) addWriter(kafkaURL, topic string, balancer kafka.Balancer) {
	if _, ok := p.Writers[topic]; ok {
		return
	}
	p.Writers[topic] = &kafka.Writer{
		Addr:            kafka.TCP(kafkaURL),
		Topic:           topic,
		Balancer:        balancer,
		MaxAttempts:     p.RetryConfig.MaxAttempts,
		WriteBackoffMin: p.RetryConfig.BaseDelay,
		WriteBackoffMax: p.RetryConfig.MaxDelay,
		BatchTimeout:    10 * time.Millisecond,
		WriteTimeout:    10 * time.Second,
		RequiredAcks:    kafka.RequireAll,
		Async:           true,
		Completion:      p.complete,
	}
}

// PublishAsync is the fire-and-forget variant: the outcome is only logged,
// never surfaced to the caller beyond enqueue errors.
func (p *KafkaPublisher) PublishAsync(ctx context.Context, event *models.PaymentEvent) error {
	return p.enqueue(ctx, event, nil)
}

// PublishFuture enqueues the event and returns a handle the caller may await
// for the broker's partition/offset confirmation.
func (p *KafkaPublisher) PublishFuture(ctx context.Context, event *models.PaymentEvent) (*Future, error) {
	fut := newFuture()
	if err := p.enqueue(ctx, event, fut); err != nil {
		return nil, err
	}
	return fut, nil
}

// PublishSync blocks until the broker acknowledges or the sync-publish
// timeout expires. Reserved for call sites that must not proceed without
// confirmed durability.
func (p *KafkaPublisher) PublishSync(ctx context.Context, event *models.PaymentEvent) (Result, error) {
	fut, err := p.PublishFuture(ctx, event)
	if err != nil {
		return Result{}, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, p.syncTimeout)
	defer cancel()

	return fut.Wait(waitCtx)
}

func (p *KafkaPublisher) enqueue(ctx context.Context, event *models.PaymentEvent, fut *Future) error {
	topic := topics.TopicFor(event.EventType)
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.PartitionKey()),
		Value: data,
	}
	if fut != nil {
		msg.WriterData = fut
	}

	return writer.WriteMessages(ctx, msg)
}

// PublishDLQ parks a failed record on its channel's dead-letter topic,
// pinned to origin partition mod the DLQ partition count. It blocks until
// the broker confirms the write: the dead-letter record must be durable
// before the caller may acknowledge the origin offset, otherwise a flush
// failure after enqueue would lose the record with the offset already
// committed.
func (p *KafkaPublisher) PublishDLQ(ctx context.Context, originTopic string, originPartition int, dlq models.DLQMessage) error {
	dlqPartitions := 0
	if channel, ok := p.registry.Channel(originTopic); ok {
		dlqPartitions = channel.DLQPartitions
	}

	topic, partition := topics.DLQFor(originTopic, originPartition, dlqPartitions)
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(dlq)
	if err != nil {
		return fmt.Errorf("error marshaling DLQ message: %w", err)
	}

	fut := newFuture()
	msg := kafka.Message{
		Key:   []byte(dlq.Key),
		Value: data,
		Headers: []kafka.Header{
			{Key: HeaderTargetPartition, Value: []byte(strconv.Itoa(partition))},
		},
		WriterData: fut,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, p.syncTimeout)
	defer cancel()

	_, err = fut.Wait(waitCtx)
	return err
}

func (p *KafkaPublisher) complete(messages []kafka.Message, err error) {
	for _, msg := range messages {
		if fut, ok := msg.WriterData.(*Future); ok {
			if err != nil {
				fut.resolve(Result{}, err)
			} else {
				fut.resolve(Result{Partition: msg.Partition, Offset: msg.Offset}, nil)
			}
			continue
		}

		if err != nil {
			logrus.Errorf("Error publishing to topic '%s' key=%s: %s", msg.Topic, string(msg.Key), err.Error())
		} else {
			logrus.Debugf("Published to topic '%s' partition=%d offset=%d", msg.Topic, msg.Partition, msg.Offset)
		}
	}
}

func (p *KafkaPublisher) Close() error {
	var lastErr error
	for _, w := range p.Writers {
		if err := w.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// partitionPinBalancer honors the target-partition header when present and
// falls back to key hashing otherwise.
type partitionPinBalancer struct {
	fallback kafka.Hash
}

func (b *partitionPinBalancer) Balance(msg kafka.Message, partitions ...int) int {
	for _, h := range msg.Headers {
		if h.Key != HeaderTargetPartition {
			continue
		}
		if n, err := strconv.Atoi(string(h.Value)); err == nil && len(partitions) > 0 {
			return partitions[n%len(partitions)]
		}
	}
	return b.fallback.Balance(msg, partitions...)
}
