package topics

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/finvent/paystream/config"
	"github.com/finvent/paystream/internal/models"
)

const (
	PaymentEventsTopic      = "payments.events"
	WebhookRawTopic         = "payments.webhooks.raw"
	SubscriptionEventsTopic = "payments.subscriptions"
	NotificationsTopic      = "payments.notifications"

	PaymentRetryTopic = "payments.events.retry"
	WebhookRetryTopic = "payments.webhooks.retry"

	PaymentDLQTopic = "payments.events.dlq"
	WebhookDLQTopic = "payments.webhooks.dlq"
)

// ChannelSpec declares one logical channel: its parallelism ceiling, its
// durability settings and the retry/dead-letter topics paired with it.
// Applied once at startup; never mutated at runtime.
type ChannelSpec struct {
	Topic             string
	Partitions        int
	ReplicationFactor int
	Retention         time.Duration
	RetryTopic        string
	DLQTopic          string
	DLQPartitions     int
}

type Registry struct {
	brokers        []string
	channels       []ChannelSpec
	retryRetention time.Duration
	dlqRetention   time.Duration
}

func NewRegistry(cfg config.Kafka) *Registry {
	if cfg.PaymentRetention == 0 {
		cfg.PaymentRetention = 7 * 24 * time.Hour
	}
	if cfg.WebhookRetention == 0 {
		cfg.WebhookRetention = 30 * 24 * time.Hour
	}
	if cfg.NotificationRetention == 0 {
		cfg.NotificationRetention = 24 * time.Hour
	}
	if cfg.RetryRetention == 0 {
		cfg.RetryRetention = 24 * time.Hour
	}
	if cfg.DLQRetention == 0 {
		cfg.DLQRetention = 90 * 24 * time.Hour
	}

	return &Registry{
		brokers:        strings.Split(cfg.Brokers, ","),
		retryRetention: cfg.RetryRetention,
		dlqRetention:   cfg.DLQRetention,
		channels: []ChannelSpec{
			{
				Topic:             PaymentEventsTopic,
				Partitions:        cfg.PaymentPartitions,
				ReplicationFactor: cfg.ReplicationFactor,
				Retention:         cfg.PaymentRetention,
				RetryTopic:        PaymentRetryTopic,
				DLQTopic:          PaymentDLQTopic,
				DLQPartitions:     cfg.DLQPartitions,
			},
			{
				Topic:             WebhookRawTopic,
				Partitions:        cfg.WebhookPartitions,
				ReplicationFactor: cfg.ReplicationFactor,
				Retention:         cfg.WebhookRetention,
				RetryTopic:        WebhookRetryTopic,
				DLQTopic:          WebhookDLQTopic,
				DLQPartitions:     cfg.DLQPartitions,
			},
			{
				Topic:             SubscriptionEventsTopic,
				Partitions:        cfg.SubscriptionPartition,
				ReplicationFactor: cfg.ReplicationFactor,
				Retention:         cfg.PaymentRetention,
				RetryTopic:        PaymentRetryTopic,
				DLQTopic:          PaymentDLQTopic,
				DLQPartitions:     cfg.DLQPartitions,
			},
			{
				Topic:             NotificationsTopic,
				Partitions:        cfg.PaymentPartitions,
				ReplicationFactor: cfg.ReplicationFactor,
				Retention:         cfg.NotificationRetention,
				RetryTopic:        PaymentRetryTopic,
				DLQTopic:          PaymentDLQTopic,
				DLQPartitions:     cfg.DLQPartitions,
			},
		},
	}
}

func (r *Registry) Channels() []ChannelSpec {
	return r.channels
}

func (r *Registry) Channel(topic string) (ChannelSpec, bool) {
	for _, c := range r.channels {
		if c.Topic == topic {
			return c, true
		}
	}
	return ChannelSpec{}, false
}

// EnsureTopics declares every channel plus its retry and dead-letter topics
// on the broker. Retry topics keep a short retention; DLQ topics keep a long
// one so parked records stay inspectable.
func (r *Registry) EnsureTopics(ctx context.Context) error {
	configs := make([]kafka.TopicConfig, 0, len(r.channels)*3)
	seen := make(map[string]bool)

	add := func(topic string, partitions, replication int, retention time.Duration) {
		if seen[topic] {
			return
		}
		seen[topic] = true
		configs = append(configs, kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     partitions,
			ReplicationFactor: replication,
			ConfigEntries: []kafka.ConfigEntry{
				{ConfigName: "retention.ms", ConfigValue: strconv.FormatInt(retention.Milliseconds(), 10)},
			},
		})
	}

	for _, c := range r.channels {
		add(c.Topic, c.Partitions, c.ReplicationFactor, c.Retention)
		add(c.RetryTopic, c.Partitions, c.ReplicationFactor, r.retryRetention)
		add(c.DLQTopic, c.DLQPartitions, c.ReplicationFactor, r.dlqRetention)
	}

	conn, err := kafka.DialContext(ctx, "tcp", r.brokers[0])
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("resolve controller: %w", err)
	}

	controllerConn, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer controllerConn.Close()

	if err := controllerConn.CreateTopics(configs...); err != nil {
		return fmt.Errorf("create topics: %w", err)
	}

	logrus.Infof("Topic registry applied, %d topics declared", len(configs))
	return nil
}

// TopicFor maps an event type to its main topic. Pure function of the
// category so new event types route without touching publish call sites.
func TopicFor(eventType models.EventType) string {
	switch eventType.Category() {
	case models.CategoryWebhook:
		return WebhookRawTopic
	case models.CategorySubscription:
		return SubscriptionEventsTopic
	default:
		return PaymentEventsTopic
	}
}

// DLQFor routes a failed record to its channel's dead-letter topic, keeping
// partition affinity as origin partition mod the DLQ partition count.
func DLQFor(originTopic string, originPartition, dlqPartitions int) (string, int) {
	topic := PaymentDLQTopic
	if strings.Contains(originTopic, "webhook") {
		topic = WebhookDLQTopic
	}
	if dlqPartitions <= 0 {
		return topic, 0
	}
	return topic, originPartition % dlqPartitions
}
