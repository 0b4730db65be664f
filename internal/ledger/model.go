package ledger

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookEvent is one ledger entry: the durable record of an inbound
// provider webhook and its processing state. EventID is the provider's
// external id; the unique constraint on it is what makes concurrent
// duplicate receipts safe.
type WebhookEvent struct {
	ID       string `gorm:"primaryKey" json:"id"`
	EventID  string `gorm:"uniqueIndex;not null" json:"event_id"`
	Provider string `gorm:"index" json:"provider"`

	EventType string `json:"event_type"`
	Payload   string `json:"payload"`

	ResourceType string `json:"resource_type,omitempty"`
	ResourceID   string `json:"resource_id,omitempty"`

	Processed       bool       `gorm:"index" json:"processed"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	ProcessingError string     `json:"processing_error,omitempty"`

	RetryCount        int        `json:"retry_count"`
	NextRetryAt       *time.Time `gorm:"index" json:"next_retry_at,omitempty"`
	MaxRetriesReached bool       `gorm:"index" json:"max_retries_reached"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WebhookEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	return
}
