package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finvent/paystream/config"
	"github.com/finvent/paystream/internal/cache"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/pipeline"
)

var ErrMissingEventID = errors.New("webhook payload carries no external event id")

// Repository defines the ledger persistence operations the service needs.
type Repository interface {
	RecordReceipt(ctx context.Context, entry *WebhookEvent) (bool, error)
	Get(ctx context.Context, eventID string) (*WebhookEvent, error)
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
	ScheduleRetry(ctx context.Context, eventID string, retryCount int, nextRetryAt time.Time, processingError string) error
	MarkDeadLettered(ctx context.Context, eventID string, retryCount int, processingError string) error
	DueForRetry(ctx context.Context, now time.Time, limit int) ([]WebhookEvent, error)
	DeadLettered(ctx context.Context) ([]WebhookEvent, error)
	DeadLetterCount(ctx context.Context) (int64, error)
	Replay(ctx context.Context, eventID string, now time.Time) error
	InTransaction(ctx context.Context, fn func(Repository) error) error
}

// Handler performs the business-side processing of one webhook entry.
type Handler interface {
	HandleWebhook(ctx context.Context, entry *WebhookEvent) error
}

// Publisher emits ledger audit events; fire-and-forget is enough here.
type Publisher interface {
	PublishAsync(ctx context.Context, event *models.PaymentEvent) error
}

// Service is the idempotency and durability backbone for inbound provider
// webhooks: it records every receipt before processing, absorbs provider
// redeliveries, and drives the slow-path retry schedule.
type Service struct {
	Repo      Repository
	Cache     cache.Cache
	Handler   Handler
	Publisher Publisher

	cfg     config.Ledger
	metrics *Metrics
}

func NewService(repo Repository, dedupCache cache.Cache, handler Handler, publisher Publisher, cfg config.Ledger, metrics *Metrics) *Service {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if len(cfg.BackoffSlots) == 0 {
		cfg.BackoffSlots = []time.Duration{5 * time.Minute, 15 * time.Minute, 60 * time.Minute}
	}
	if cfg.MaxSweepBatch == 0 {
		cfg.MaxSweepBatch = 100
	}

	return &Service{
		Repo:      repo,
		Cache:     dedupCache,
		Handler:   handler,
		Publisher: publisher,
		cfg:       cfg,
		metrics:   metrics,
	}
}

// HandleWebhook receives one provider webhook. The entry is written before
// the first processing attempt so a crash in between cannot lose the
// receipt or re-run side effects on the provider's next redelivery.
// A processing failure is not surfaced: the caller already accepted the
// webhook, and the retry schedule owns the entry from here.
func (s *Service) HandleWebhook(ctx context.Context, provider models.Provider, externalID, eventType string, payload []byte) error {
	if externalID == "" {
		return pipeline.Permanent(ErrMissingEventID)
	}

	seen, err := s.Cache.Get(ctx, externalID)
	if err != nil {
		logrus.Warnf("Dedup cache unavailable, falling back to ledger: %v", err)
	}
	if seen {
		s.metrics.Duplicates.Inc()
		logrus.Debugf("Duplicate webhook %s short-circuited by cache", externalID)
		return nil
	}

	// Cache miss does not mean new: an already-processed entry whose cache
	// key expired (or was never written) is caught here and re-warmed.
	processed, err := s.Repo.IsProcessed(ctx, externalID)
	if err != nil {
		logrus.Warnf("Dedup check against ledger failed, relying on insert conflict: %v", err)
	}
	if processed {
		s.metrics.Duplicates.Inc()
		if cerr := s.Cache.Put(ctx, externalID); cerr != nil {
			logrus.Warnf("Error re-warming cache for webhook %s: %v", externalID, cerr)
		}
		logrus.Debugf("Duplicate webhook %s short-circuited by ledger", externalID)
		return nil
	}

	entry := &WebhookEvent{
		EventID:   externalID,
		Provider:  string(provider),
		EventType: eventType,
		Payload:   string(payload),
	}

	created, err := s.Repo.RecordReceipt(ctx, entry)
	if err != nil {
		return fmt.Errorf("error recording webhook receipt %s: %w", externalID, err)
	}
	if !created {
		s.metrics.Duplicates.Inc()
		logrus.Infof("Webhook %s already recorded, skipping", externalID)
		return nil
	}

	s.metrics.Received.Inc()

	audit := models.NewWebhookAudit(provider, externalID, eventType)
	if err := s.Publisher.PublishAsync(ctx, &audit); err != nil {
		logrus.Warnf("Error publishing webhook audit event: %v", err)
	}

	s.attempt(ctx, entry)
	return nil
}

// IsProcessed is the dedup check: true means the caller must skip
// processing entirely.
func (s *Service) IsProcessed(ctx context.Context, externalID string) (bool, error) {
	return s.Repo.IsProcessed(ctx, externalID)
}

// attempt runs one processing attempt inside an explicit transaction: the
// handler invocation and the processed-flag mutation commit or roll back
// together.
func (s *Service) attempt(ctx context.Context, entry *WebhookEvent) {
	err := s.Repo.InTransaction(ctx, func(txRepo Repository) error {
		if err := s.Handler.HandleWebhook(ctx, entry); err != nil {
			return err
		}
		return txRepo.MarkProcessed(ctx, entry.EventID)
	})

	if err == nil {
		s.metrics.Processed.Inc()
		if cerr := s.Cache.Put(ctx, entry.EventID); cerr != nil {
			logrus.Warnf("Error caching processed webhook %s: %v", entry.EventID, cerr)
		}
		return
	}

	s.scheduleFailure(ctx, entry, err)
}

// scheduleFailure increments the retry counter and either books the next
// backoff slot or, past the ceiling, parks the entry. Every failed attempt
// counts toward the ceiling regardless of error class; the class
// distinction belongs to the fast-path transport handler.
func (s *Service) scheduleFailure(ctx context.Context, entry *WebhookEvent, cause error) {
	retryCount := entry.RetryCount + 1
	provider := models.Provider(entry.Provider)

	if retryCount > s.cfg.MaxRetries {
		if err := s.Repo.MarkDeadLettered(ctx, entry.EventID, retryCount, cause.Error()); err != nil {
			logrus.Errorf("Error dead-lettering webhook %s: %v", entry.EventID, err)
			return
		}

		s.metrics.DeadLettered.Inc()
		depth, err := s.Repo.DeadLetterCount(ctx)
		if err == nil {
			s.metrics.DeadLetterDepth.Set(float64(depth))
		}
		logrus.Errorf("Webhook %s dead-lettered after %d attempts (dead-letter depth %d), replay required: %v", entry.EventID, retryCount, depth, cause)

		dead := models.NewWebhookDeadLettered(provider, entry.EventID, cause.Error(), retryCount)
		if err := s.Publisher.PublishAsync(ctx, &dead); err != nil {
			logrus.Warnf("Error publishing dead-letter audit event: %v", err)
		}
		return
	}

	nextRetryAt := time.Now().UTC().Add(s.backoffSlot(retryCount))
	if err := s.Repo.ScheduleRetry(ctx, entry.EventID, retryCount, nextRetryAt, cause.Error()); err != nil {
		logrus.Errorf("Error scheduling retry for webhook %s: %v", entry.EventID, err)
		return
	}

	s.metrics.RetriesScheduled.Inc()
	logrus.Warnf("Webhook %s failed (attempt %d/%d), next retry at %s: %v", entry.EventID, retryCount, s.cfg.MaxRetries, nextRetryAt.Format(time.RFC3339), cause)

	scheduled := models.NewWebhookRetryScheduled(provider, entry.EventID, retryCount, nextRetryAt)
	if err := s.Publisher.PublishAsync(ctx, &scheduled); err != nil {
		logrus.Warnf("Error publishing retry-scheduled audit event: %v", err)
	}
}

// backoffSlot returns the delay before retry number retryCount. Slots widen
// monotonically; counts past the configured schedule reuse the last slot.
func (s *Service) backoffSlot(retryCount int) time.Duration {
	idx := retryCount - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.cfg.BackoffSlots) {
		idx = len(s.cfg.BackoffSlots) - 1
	}
	return s.cfg.BackoffSlots[idx]
}

// SweepOnce re-attempts every entry whose retry slot has come due, bounded
// by MaxSweepBatch so one slow entry cannot stretch the sweep unboundedly.
// Returns the number of entries attempted.
func (s *Service) SweepOnce(ctx context.Context, now time.Time) (int, error) {
	entries, err := s.Repo.DueForRetry(ctx, now, s.cfg.MaxSweepBatch)
	if err != nil {
		return 0, fmt.Errorf("error selecting entries due for retry: %w", err)
	}

	for i := range entries {
		s.attempt(ctx, &entries[i])
	}

	return len(entries), nil
}

// ManualReplay resets a dead-lettered entry so the next sweep picks it up
// again. Administrative operation; the only way back after the ceiling.
func (s *Service) ManualReplay(ctx context.Context, externalID string) error {
	if err := s.Repo.Replay(ctx, externalID, time.Now().UTC()); err != nil {
		return err
	}

	if err := s.Cache.Invalidate(ctx, externalID); err != nil {
		logrus.Warnf("Error invalidating cache for replayed webhook %s: %v", externalID, err)
	}

	s.metrics.Replays.Inc()
	logrus.Infof("Webhook %s queued for manual replay", externalID)
	return nil
}

func (s *Service) DeadLettered(ctx context.Context) ([]WebhookEvent, error) {
	return s.Repo.DeadLettered(ctx)
}

func (s *Service) DeadLetterCount(ctx context.Context) (int64, error) {
	return s.Repo.DeadLetterCount(ctx)
}
