package ledger_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finvent/paystream/config"
	cachemocks "github.com/finvent/paystream/internal/cache/mocks"
	"github.com/finvent/paystream/internal/ledger"
	"github.com/finvent/paystream/internal/ledger/mocks"
)

func TestScheduler_SweepsOnEveryTick(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	service := ledger.NewService(repo, cachemocks.NewMockCache(t), mocks.NewMockHandler(t), mocks.NewMockPublisher(t), testLedgerConfig(), ledger.NewMetrics(prometheus.NewRegistry()))

	var sweeps atomic.Int32
	repo.EXPECT().DueForRetry(mock.Anything, mock.Anything, 100).RunAndReturn(
		func(ctx context.Context, now time.Time, limit int) ([]ledger.WebhookEvent, error) {
			sweeps.Add(1)
			return nil, nil
		}).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	scheduler := ledger.NewScheduler(service, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return sweeps.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestNewScheduler_DefaultsInterval(t *testing.T) {
	service := ledger.NewService(mocks.NewMockRepository(t), cachemocks.NewMockCache(t), mocks.NewMockHandler(t), mocks.NewMockPublisher(t), config.Ledger{}, ledger.NewMetrics(prometheus.NewRegistry()))

	// A zero interval must not panic the ticker.
	assert.NotPanics(t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ledger.NewScheduler(service, 0).Run(ctx)
	})
}
