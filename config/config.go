package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Redis
	Kafka
	Ledger
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	DedupTTL time.Duration `env:"REDIS_DEDUP_TTL" envDefault:"24h"`
}

type Kafka struct {
	Brokers               string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PaymentConsumerGroup  string `env:"KAFKA_PAYMENT_GROUP_ID" envDefault:"payment-pipeline"`
	WebhookConsumerGroup  string `env:"KAFKA_WEBHOOK_GROUP_ID" envDefault:"webhook-pipeline"`
	SubscriptionGroup     string `env:"KAFKA_SUBSCRIPTION_GROUP_ID" envDefault:"subscription-pipeline"`
	ReplicationFactor     int    `env:"KAFKA_REPLICATION_FACTOR" envDefault:"1"`
	PaymentPartitions     int    `env:"KAFKA_PAYMENT_PARTITIONS" envDefault:"6"`
	WebhookPartitions     int    `env:"KAFKA_WEBHOOK_PARTITIONS" envDefault:"6"`
	SubscriptionPartition int    `env:"KAFKA_SUBSCRIPTION_PARTITIONS" envDefault:"3"`
	DLQPartitions         int    `env:"KAFKA_DLQ_PARTITIONS" envDefault:"3"`

	PaymentRetention      time.Duration `env:"KAFKA_PAYMENT_RETENTION" envDefault:"168h"`
	WebhookRetention      time.Duration `env:"KAFKA_WEBHOOK_RETENTION" envDefault:"720h"`
	NotificationRetention time.Duration `env:"KAFKA_NOTIFICATION_RETENTION" envDefault:"24h"`
	RetryRetention        time.Duration `env:"KAFKA_RETRY_RETENTION" envDefault:"24h"`
	DLQRetention          time.Duration `env:"KAFKA_DLQ_RETENTION" envDefault:"2160h"`

	PaymentConcurrency      int `env:"KAFKA_PAYMENT_CONCURRENCY" envDefault:"3"`
	WebhookConcurrency      int `env:"KAFKA_WEBHOOK_CONCURRENCY" envDefault:"3"`
	SubscriptionConcurrency int `env:"KAFKA_SUBSCRIPTION_CONCURRENCY" envDefault:"1"`

	MaxRecordsPerBatch int           `env:"KAFKA_MAX_RECORDS_PER_BATCH" envDefault:"50"`
	BatchMaxWait       time.Duration `env:"KAFKA_BATCH_MAX_WAIT" envDefault:"1s"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryMaxElapsed  time.Duration `env:"KAFKA_RETRY_MAX_ELAPSED" envDefault:"30s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`

	// The synchronous publish variant carries its own deadline, separate
	// from the writer's per-request timeout.
	SyncPublishTimeout time.Duration `env:"KAFKA_SYNC_PUBLISH_TIMEOUT" envDefault:"5s"`
}

type Ledger struct {
	MaxRetries    int             `env:"LEDGER_MAX_RETRIES" envDefault:"3"`
	SweepInterval time.Duration   `env:"LEDGER_SWEEP_INTERVAL" envDefault:"5m"`
	MaxSweepBatch int             `env:"LEDGER_MAX_SWEEP_BATCH" envDefault:"100"`
	BackoffSlots  []time.Duration `env:"LEDGER_BACKOFF_SLOTS" envDefault:"5m,15m,60m" envSeparator:","`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	MaxElapsed  time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		MaxElapsed:  k.RetryMaxElapsed,
		Jitter:      k.RetryJitter,
	}
}
