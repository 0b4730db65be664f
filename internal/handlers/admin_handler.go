package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/finvent/paystream/internal/ledger"
)

// LedgerAdmin is the operational query surface over the webhook ledger.
type LedgerAdmin interface {
	DeadLettered(ctx context.Context) ([]ledger.WebhookEvent, error)
	DeadLetterCount(ctx context.Context) (int64, error)
	ManualReplay(ctx context.Context, externalID string) error
}

type AdminHandler struct {
	Ledger LedgerAdmin
}

func NewAdminHandler(l LedgerAdmin) *AdminHandler {
	return &AdminHandler{Ledger: l}
}

// GET /admin/webhooks/dead-lettered
func (h *AdminHandler) ListDeadLettered(c *gin.Context) {
	entries, err := h.Ledger.DeadLettered(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}

// GET /admin/webhooks/dead-lettered/count
func (h *AdminHandler) CountDeadLettered(c *gin.Context) {
	count, err := h.Ledger.DeadLetterCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// POST /admin/webhooks/:event_id/replay
func (h *AdminHandler) Replay(c *gin.Context) {
	eventID := c.Param("event_id")

	if err := h.Ledger.ManualReplay(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ledger entry not found"})
			return
		}
		logrus.Errorf("Error replaying webhook %s: %s", eventID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"replayed": eventID})
}
