package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/finvent/paystream/config"
	"github.com/finvent/paystream/internal/cache"
	"github.com/finvent/paystream/internal/handlers"
	"github.com/finvent/paystream/internal/ledger"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/processor"
	"github.com/finvent/paystream/internal/publisher"
	"github.com/finvent/paystream/internal/subscriber"
	"github.com/finvent/paystream/internal/topics"
)

type App struct {
	config *config.Config
	Router *gin.Engine

	Publisher *publisher.KafkaPublisher
	Ledger    *ledger.Service

	listeners []*subscriber.ListenerGroup
	cancel    context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&ledger.WebhookEvent{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	registry := topics.NewRegistry(cfg.Kafka)
	topicCtx, topicCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := registry.EnsureTopics(topicCtx); err != nil {
		topicCancel()
		log.Fatalf("failed to apply topic registry: %v", err)
	}
	topicCancel()

	promRegistry := prometheus.NewRegistry()

	a.Publisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, registry, cfg.GetRetryConfig(), cfg.Kafka.SyncPublishTimeout)

	proc := a.initProcessor()

	ledgerRepo := ledger.NewRepository(db)
	dedupCache := cache.NewRedisCache(redisClient, cfg.Redis.DedupTTL)
	ledgerMetrics := ledger.NewMetrics(promRegistry)
	a.Ledger = ledger.NewService(ledgerRepo, dedupCache, handlers.NewWebhookProcessor(), a.Publisher, cfg.Ledger, ledgerMetrics)

	go ledger.NewScheduler(a.Ledger, cfg.Ledger.SweepInterval).Run(ctx)

	a.initListeners(ctx, proc, promRegistry)

	webhookHandler := handlers.NewWebhookHandler(a.Ledger)
	adminHandler := handlers.NewAdminHandler(a.Ledger)

	a.Router = gin.Default()
	a.RegisterRoutes(webhookHandler, adminHandler, promRegistry)
}

func (a *App) initProcessor() *processor.Processor {
	proc := processor.New()

	paymentHandler := handlers.NewPaymentLifecycleHandler()
	subscriptionHandler := handlers.NewSubscriptionHandler()
	auditHandler := handlers.NewWebhookAuditHandler()

	registrations := map[models.EventType]processor.HandlerFunc{
		models.EventPaymentInitiated:        paymentHandler.Handle,
		models.EventPaymentSucceeded:        paymentHandler.Handle,
		models.EventPaymentFailed:           paymentHandler.Handle,
		models.EventPaymentRefunded:         paymentHandler.Handle,
		models.EventDisputeOpened:           paymentHandler.Handle,
		models.EventReconciliationRequested: paymentHandler.Handle,
		models.EventSubscriptionCreated:     subscriptionHandler.Handle,
		models.EventSubscriptionRenewed:     subscriptionHandler.Handle,
		models.EventSubscriptionCanceled:    subscriptionHandler.Handle,
		models.EventSubscriptionPlanChanged: subscriptionHandler.Handle,
		models.EventWebhookReceived:         auditHandler.Handle,
		models.EventWebhookRetryScheduled:   auditHandler.Handle,
		models.EventWebhookDeadLettered:     auditHandler.Handle,
	}

	for eventType, handler := range registrations {
		if err := proc.Register(eventType, handler); err != nil {
			log.Fatalf("failed to register handler: %v", err)
		}
	}

	return proc
}

func (a *App) initListeners(ctx context.Context, proc *processor.Processor, promRegistry prometheus.Registerer) {
	cfg := a.config
	brokers := strings.Split(cfg.Kafka.Brokers, ",")

	subMetrics := subscriber.NewMetrics(promRegistry)
	errorHandler := subscriber.NewErrorHandler(cfg.GetRetryConfig(), a.Publisher, subMetrics)

	groups := []subscriber.GroupConfig{
		{
			Brokers:     brokers,
			Topic:       topics.PaymentEventsTopic,
			GroupID:     cfg.Kafka.PaymentConsumerGroup,
			Mode:        subscriber.BatchMode,
			Concurrency: cfg.Kafka.PaymentConcurrency,
			MaxBatch:    cfg.Kafka.MaxRecordsPerBatch,
			MaxWait:     cfg.Kafka.BatchMaxWait,
		},
		{
			Brokers:     brokers,
			Topic:       topics.WebhookRawTopic,
			GroupID:     cfg.Kafka.WebhookConsumerGroup,
			Mode:        subscriber.BatchMode,
			Concurrency: cfg.Kafka.WebhookConcurrency,
			MaxBatch:    cfg.Kafka.MaxRecordsPerBatch,
			MaxWait:     cfg.Kafka.BatchMaxWait,
		},
		{
			Brokers:     brokers,
			Topic:       topics.SubscriptionEventsTopic,
			GroupID:     cfg.Kafka.SubscriptionGroup,
			Mode:        subscriber.SingleMode,
			Concurrency: cfg.Kafka.SubscriptionConcurrency,
		},
	}

	for _, groupCfg := range groups {
		group := subscriber.NewListenerGroup(groupCfg, proc.HandleMessage, errorHandler, subMetrics)
		group.Start(ctx)
		a.listeners = append(a.listeners, group)
	}
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) Shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
	for _, group := range a.listeners {
		_ = group.Close()
	}
	if a.Publisher != nil {
		_ = a.Publisher.Close()
	}
}
