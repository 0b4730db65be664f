package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finvent/paystream/config"
	cachemocks "github.com/finvent/paystream/internal/cache/mocks"
	"github.com/finvent/paystream/internal/ledger"
	"github.com/finvent/paystream/internal/ledger/mocks"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/pipeline"
)

func testLedgerConfig() config.Ledger {
	return config.Ledger{
		MaxRetries:    3,
		SweepInterval: 5 * time.Minute,
		MaxSweepBatch: 100,
		BackoffSlots:  []time.Duration{5 * time.Minute, 15 * time.Minute, 60 * time.Minute},
	}
}

func newTestService(t *testing.T) (*ledger.Service, *mocks.MockRepository, *cachemocks.MockCache, *mocks.MockHandler, *mocks.MockPublisher) {
	repo := mocks.NewMockRepository(t)
	dedupCache := cachemocks.NewMockCache(t)
	handler := mocks.NewMockHandler(t)
	publisher := mocks.NewMockPublisher(t)

	service := ledger.NewService(repo, dedupCache, handler, publisher, testLedgerConfig(), ledger.NewMetrics(prometheus.NewRegistry()))
	return service, repo, dedupCache, handler, publisher
}

func TestHandleWebhook_FirstReceiptIsProcessed(t *testing.T) {
	service, repo, dedupCache, handler, publisher := newTestService(t)
	ctx := context.Background()

	dedupCache.EXPECT().Get(ctx, "evt_1").Return(false, nil)
	repo.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	repo.EXPECT().RecordReceipt(ctx, mock.Anything).RunAndReturn(func(ctx context.Context, entry *ledger.WebhookEvent) (bool, error) {
		assert.Equal(t, "evt_1", entry.EventID)
		assert.Equal(t, "STRIPE", entry.Provider)
		assert.Equal(t, "payment_intent.succeeded", entry.EventType)
		assert.Equal(t, `{"id":"evt_1"}`, entry.Payload)
		return true, nil
	})
	publisher.EXPECT().PublishAsync(ctx, mock.Anything).Return(nil)

	repo.EXPECT().InTransaction(ctx, mock.Anything).RunAndReturn(func(ctx context.Context, fn func(ledger.Repository) error) error {
		txRepo := mocks.NewMockRepository(t)
		txRepo.EXPECT().MarkProcessed(ctx, "evt_1").Return(nil)
		return fn(txRepo)
	})
	handler.EXPECT().HandleWebhook(ctx, mock.Anything).Return(nil)
	dedupCache.EXPECT().Put(ctx, "evt_1").Return(nil)

	err := service.HandleWebhook(ctx, models.ProviderStripe, "evt_1", "payment_intent.succeeded", []byte(`{"id":"evt_1"}`))
	assert.NoError(t, err)
}

func TestHandleWebhook_CacheHitShortCircuits(t *testing.T) {
	service, _, dedupCache, _, _ := newTestService(t)
	ctx := context.Background()

	dedupCache.EXPECT().Get(ctx, "evt_dup").Return(true, nil)

	err := service.HandleWebhook(ctx, models.ProviderStripe, "evt_dup", "payment_intent.succeeded", []byte(`{}`))
	assert.NoError(t, err)
}

func TestHandleWebhook_LedgerDuplicateSkipsProcessing(t *testing.T) {
	service, repo, dedupCache, _, _ := newTestService(t)
	ctx := context.Background()

	dedupCache.EXPECT().Get(ctx, "evt_dup").Return(false, nil)
	repo.EXPECT().IsProcessed(ctx, "evt_dup").Return(false, nil)
	repo.EXPECT().RecordReceipt(ctx, mock.Anything).Return(false, nil)

	err := service.HandleWebhook(ctx, models.ProviderPaypal, "evt_dup", "PAYMENT.SALE.COMPLETED", []byte(`{}`))
	assert.NoError(t, err)
}

func TestHandleWebhook_ProcessedEntryRewarmsCache(t *testing.T) {
	service, repo, dedupCache, _, _ := newTestService(t)
	ctx := context.Background()

	// Entry was processed long ago; its cache key has since expired.
	dedupCache.EXPECT().Get(ctx, "evt_old").Return(false, nil)
	repo.EXPECT().IsProcessed(ctx, "evt_old").Return(true, nil)
	dedupCache.EXPECT().Put(ctx, "evt_old").Return(nil)

	err := service.HandleWebhook(ctx, models.ProviderStripe, "evt_old", "payment_intent.succeeded", []byte(`{}`))
	assert.NoError(t, err)
}

func TestIsProcessed_Passthrough(t *testing.T) {
	service, repo, _, _, _ := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().IsProcessed(ctx, "evt_1").Return(true, nil)

	processed, err := service.IsProcessed(ctx, "evt_1")
	assert.NoError(t, err)
	assert.True(t, processed)
}

func TestHandleWebhook_MissingEventIDIsPermanent(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	err := service.HandleWebhook(context.Background(), models.ProviderStripe, "", "payment_intent.succeeded", []byte(`{}`))
	assert.ErrorIs(t, err, ledger.ErrMissingEventID)
	assert.True(t, pipeline.IsPermanent(err))
}

func TestHandleWebhook_CacheOutageFallsBackToLedger(t *testing.T) {
	service, repo, dedupCache, handler, publisher := newTestService(t)
	ctx := context.Background()

	dedupCache.EXPECT().Get(ctx, "evt_2").Return(false, errors.New("redis down"))
	repo.EXPECT().IsProcessed(ctx, "evt_2").Return(false, nil)
	repo.EXPECT().RecordReceipt(ctx, mock.Anything).Return(true, nil)
	publisher.EXPECT().PublishAsync(ctx, mock.Anything).Return(nil)
	repo.EXPECT().InTransaction(ctx, mock.Anything).RunAndReturn(func(ctx context.Context, fn func(ledger.Repository) error) error {
		txRepo := mocks.NewMockRepository(t)
		txRepo.EXPECT().MarkProcessed(ctx, "evt_2").Return(nil)
		return fn(txRepo)
	})
	handler.EXPECT().HandleWebhook(ctx, mock.Anything).Return(nil)
	dedupCache.EXPECT().Put(ctx, "evt_2").Return(nil)

	err := service.HandleWebhook(ctx, models.ProviderStripe, "evt_2", "charge.refunded", []byte(`{}`))
	assert.NoError(t, err)
}

func TestHandleWebhook_ProcessingFailureBooksFirstRetrySlot(t *testing.T) {
	service, repo, dedupCache, handler, publisher := newTestService(t)
	ctx := context.Background()

	dedupCache.EXPECT().Get(ctx, "evt_3").Return(false, nil)
	repo.EXPECT().IsProcessed(ctx, "evt_3").Return(false, nil)
	repo.EXPECT().RecordReceipt(ctx, mock.Anything).Return(true, nil)
	publisher.EXPECT().PublishAsync(ctx, mock.Anything).Return(nil)

	handlerErr := errors.New("downstream 503")
	repo.EXPECT().InTransaction(ctx, mock.Anything).RunAndReturn(func(ctx context.Context, fn func(ledger.Repository) error) error {
		return fn(mocks.NewMockRepository(t))
	})
	handler.EXPECT().HandleWebhook(ctx, mock.Anything).Return(handlerErr)

	before := time.Now().UTC()
	repo.EXPECT().ScheduleRetry(ctx, "evt_3", 1, mock.Anything, "downstream 503").RunAndReturn(
		func(ctx context.Context, eventID string, retryCount int, nextRetryAt time.Time, processingError string) error {
			assert.WithinDuration(t, before.Add(5*time.Minute), nextRetryAt, 5*time.Second)
			return nil
		})

	err := service.HandleWebhook(ctx, models.ProviderStripe, "evt_3", "payment_intent.payment_failed", []byte(`{}`))
	assert.NoError(t, err, "processing failure stays internal once the receipt is recorded")
}

func TestSweepOnce_ReattemptsDueEntries(t *testing.T) {
	service, repo, dedupCache, handler, _ := newTestService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	due := []ledger.WebhookEvent{
		{EventID: "evt_a", Provider: "STRIPE", RetryCount: 1},
		{EventID: "evt_b", Provider: "STRIPE", RetryCount: 2},
	}
	repo.EXPECT().DueForRetry(ctx, now, 100).Return(due, nil)

	repo.EXPECT().InTransaction(ctx, mock.Anything).RunAndReturn(func(ctx context.Context, fn func(ledger.Repository) error) error {
		txRepo := mocks.NewMockRepository(t)
		txRepo.EXPECT().MarkProcessed(ctx, mock.Anything).Return(nil)
		return fn(txRepo)
	}).Twice()
	handler.EXPECT().HandleWebhook(ctx, mock.Anything).Return(nil).Twice()
	dedupCache.EXPECT().Put(ctx, mock.Anything).Return(nil).Twice()

	attempted, err := service.SweepOnce(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, 2, attempted)
}

func TestSweepOnce_CeilingDeadLettersEntry(t *testing.T) {
	service, repo, _, handler, publisher := newTestService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Third retry already failed; the fourth failure crosses the ceiling.
	due := []ledger.WebhookEvent{{EventID: "evt_dead", Provider: "STRIPE", RetryCount: 3}}
	repo.EXPECT().DueForRetry(ctx, now, 100).Return(due, nil)

	repo.EXPECT().InTransaction(ctx, mock.Anything).RunAndReturn(func(ctx context.Context, fn func(ledger.Repository) error) error {
		return fn(mocks.NewMockRepository(t))
	})
	handler.EXPECT().HandleWebhook(ctx, mock.Anything).Return(errors.New("still broken"))

	repo.EXPECT().MarkDeadLettered(ctx, "evt_dead", 4, "still broken").Return(nil)
	repo.EXPECT().DeadLetterCount(ctx).Return(int64(1), nil)
	publisher.EXPECT().PublishAsync(ctx, mock.MatchedBy(func(event *models.PaymentEvent) bool {
		return event.EventType == models.EventWebhookDeadLettered && event.WebhookEventID == "evt_dead"
	})).Return(nil)

	attempted, err := service.SweepOnce(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, attempted)
}

func TestSweepOnce_SelectErrorPropagates(t *testing.T) {
	service, repo, _, _, _ := newTestService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	repo.EXPECT().DueForRetry(ctx, now, 100).Return(nil, errors.New("db timeout"))

	attempted, err := service.SweepOnce(ctx, now)
	assert.Error(t, err)
	assert.Equal(t, 0, attempted)
}

func TestManualReplay_ResetsEntryAndCache(t *testing.T) {
	service, repo, dedupCache, _, _ := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().Replay(ctx, "evt_dead", mock.Anything).Return(nil)
	dedupCache.EXPECT().Invalidate(ctx, "evt_dead").Return(nil)

	err := service.ManualReplay(ctx, "evt_dead")
	assert.NoError(t, err)
}

func TestManualReplay_UnknownEntryErrorPropagates(t *testing.T) {
	service, repo, _, _, _ := newTestService(t)
	ctx := context.Background()

	notFound := errors.New("record not found")
	repo.EXPECT().Replay(ctx, "evt_missing", mock.Anything).Return(notFound)

	err := service.ManualReplay(ctx, "evt_missing")
	assert.ErrorIs(t, err, notFound)
}

func TestDeadLettered_Passthrough(t *testing.T) {
	service, repo, _, _, _ := newTestService(t)
	ctx := context.Background()

	entries := []ledger.WebhookEvent{{EventID: "evt_dead"}}
	repo.EXPECT().DeadLettered(ctx).Return(entries, nil)
	repo.EXPECT().DeadLetterCount(ctx).Return(int64(1), nil)

	got, err := service.DeadLettered(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)

	count, err := service.DeadLetterCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
