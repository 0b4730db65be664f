package ledger

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is the GORM-backed ledger store. All dedup guarantees come
// from the unique constraint on event_id, not from application state.
type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

// RecordReceipt durably inserts the entry before any processing attempt.
// Returns false when the external id was already recorded; a concurrent
// duplicate receipt hits the conflict clause and is reported the same way.
func (r *repository) RecordReceipt(ctx context.Context, entry *WebhookEvent) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Get(ctx context.Context, eventID string) (*WebhookEvent, error) {
	var entry WebhookEvent
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WebhookEvent{}).
		Where("event_id = ? AND processed = ?", eventID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) MarkProcessed(ctx context.Context, eventID string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&WebhookEvent{}).
		Where("event_id = ?", eventID).
		Updates(map[string]interface{}{
			"processed":        true,
			"processed_at":     &now,
			"processing_error": "",
			"next_retry_at":    nil,
		}).Error
}

func (r *repository) ScheduleRetry(ctx context.Context, eventID string, retryCount int, nextRetryAt time.Time, processingError string) error {
	return r.db.WithContext(ctx).
		Model(&WebhookEvent{}).
		Where("event_id = ?", eventID).
		Updates(map[string]interface{}{
			"retry_count":      retryCount,
			"next_retry_at":    &nextRetryAt,
			"processing_error": processingError,
		}).Error
}

// MarkDeadLettered parks the entry: no nextRetryAt means no sweep will pick
// it up until a manual replay resets it.
func (r *repository) MarkDeadLettered(ctx context.Context, eventID string, retryCount int, processingError string) error {
	return r.db.WithContext(ctx).
		Model(&WebhookEvent{}).
		Where("event_id = ?", eventID).
		Updates(map[string]interface{}{
			"retry_count":         retryCount,
			"max_retries_reached": true,
			"next_retry_at":       nil,
			"processing_error":    processingError,
		}).Error
}

func (r *repository) DueForRetry(ctx context.Context, now time.Time, limit int) ([]WebhookEvent, error) {
	var entries []WebhookEvent
	err := r.db.WithContext(ctx).
		Where("processed = ? AND max_retries_reached = ? AND next_retry_at IS NOT NULL AND next_retry_at <= ?", false, false, now).
		Order("next_retry_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *repository) DeadLettered(ctx context.Context) ([]WebhookEvent, error) {
	var entries []WebhookEvent
	err := r.db.WithContext(ctx).
		Where("max_retries_reached = ?", true).
		Order("updated_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) DeadLetterCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&WebhookEvent{}).
		Where("max_retries_reached = ?", true).
		Count(&count).Error
	return count, err
}

// Replay resets the retry bookkeeping so the next sweep picks the entry up.
func (r *repository) Replay(ctx context.Context, eventID string, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&WebhookEvent{}).
		Where("event_id = ?", eventID).
		Updates(map[string]interface{}{
			"retry_count":         0,
			"max_retries_reached": false,
			"next_retry_at":       &now,
			"processing_error":    "",
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// InTransaction runs fn against a repository bound to one transaction,
// making the begin/commit/rollback boundary around a ledger mutation plus
// handler invocation explicit.
func (r *repository) InTransaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}
