package topics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finvent/paystream/config"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/topics"
)

func testKafkaConfig() config.Kafka {
	return config.Kafka{
		Brokers:               "localhost:9092",
		ReplicationFactor:     1,
		PaymentPartitions:     6,
		WebhookPartitions:     6,
		SubscriptionPartition: 3,
		DLQPartitions:         3,
	}
}

func TestTopicFor_RoutesByCategory(t *testing.T) {
	assert.Equal(t, topics.PaymentEventsTopic, topics.TopicFor(models.EventPaymentSucceeded))
	assert.Equal(t, topics.PaymentEventsTopic, topics.TopicFor(models.EventDisputeOpened))
	assert.Equal(t, topics.SubscriptionEventsTopic, topics.TopicFor(models.EventSubscriptionCanceled))
	assert.Equal(t, topics.WebhookRawTopic, topics.TopicFor(models.EventWebhookReceived))
}

func TestDLQFor_WebhookTopicsLandInWebhookDLQ(t *testing.T) {
	topic, _ := topics.DLQFor(topics.WebhookRawTopic, 0, 3)
	assert.Equal(t, topics.WebhookDLQTopic, topic)

	topic, _ = topics.DLQFor(topics.PaymentEventsTopic, 0, 3)
	assert.Equal(t, topics.PaymentDLQTopic, topic)

	topic, _ = topics.DLQFor(topics.SubscriptionEventsTopic, 0, 3)
	assert.Equal(t, topics.PaymentDLQTopic, topic)
}

func TestDLQFor_PreservesPartitionAffinity(t *testing.T) {
	_, partition := topics.DLQFor(topics.WebhookRawTopic, 5, 3)
	assert.Equal(t, 2, partition)

	_, partition = topics.DLQFor(topics.WebhookRawTopic, 3, 3)
	assert.Equal(t, 0, partition)

	// Zero DLQ partitions degrades to partition 0 instead of dividing by zero.
	_, partition = topics.DLQFor(topics.WebhookRawTopic, 5, 0)
	assert.Equal(t, 0, partition)
}

func TestNewRegistry_DeclaresAllChannels(t *testing.T) {
	registry := topics.NewRegistry(testKafkaConfig())

	for _, topic := range []string{
		topics.PaymentEventsTopic,
		topics.WebhookRawTopic,
		topics.SubscriptionEventsTopic,
		topics.NotificationsTopic,
	} {
		channel, ok := registry.Channel(topic)
		assert.True(t, ok, "channel %s must be declared", topic)
		assert.NotEmpty(t, channel.RetryTopic)
		assert.NotEmpty(t, channel.DLQTopic)
		assert.Greater(t, channel.Partitions, 0)
	}

	_, ok := registry.Channel("unknown.topic")
	assert.False(t, ok)
}

func TestNewRegistry_PartitionCountsFromConfig(t *testing.T) {
	registry := topics.NewRegistry(testKafkaConfig())

	payment, _ := registry.Channel(topics.PaymentEventsTopic)
	assert.Equal(t, 6, payment.Partitions)
	assert.Equal(t, 3, payment.DLQPartitions)

	subscription, _ := registry.Channel(topics.SubscriptionEventsTopic)
	assert.Equal(t, 3, subscription.Partitions)
}

func TestNewRegistry_RetentionFromConfig(t *testing.T) {
	cfg := testKafkaConfig()
	cfg.PaymentRetention = 48 * time.Hour
	cfg.WebhookRetention = 14 * 24 * time.Hour
	cfg.NotificationRetention = 6 * time.Hour

	registry := topics.NewRegistry(cfg)

	payment, _ := registry.Channel(topics.PaymentEventsTopic)
	assert.Equal(t, 48*time.Hour, payment.Retention)

	webhook, _ := registry.Channel(topics.WebhookRawTopic)
	assert.Equal(t, 14*24*time.Hour, webhook.Retention)

	subscription, _ := registry.Channel(topics.SubscriptionEventsTopic)
	assert.Equal(t, 48*time.Hour, subscription.Retention)

	notifications, _ := registry.Channel(topics.NotificationsTopic)
	assert.Equal(t, 6*time.Hour, notifications.Retention)
}

func TestNewRegistry_RetentionByPurpose(t *testing.T) {
	registry := topics.NewRegistry(testKafkaConfig())

	webhook, _ := registry.Channel(topics.WebhookRawTopic)
	notifications, _ := registry.Channel(topics.NotificationsTopic)

	// Audit channels keep records far longer than transient ones.
	assert.GreaterOrEqual(t, webhook.Retention, 30*24*time.Hour)
	assert.LessOrEqual(t, notifications.Retention, 7*24*time.Hour)
}
