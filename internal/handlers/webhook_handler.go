package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/pipeline"
)

// WebhookLedger is the ledger surface the HTTP layer depends on.
type WebhookLedger interface {
	HandleWebhook(ctx context.Context, provider models.Provider, externalID, eventType string, payload []byte) error
}

type WebhookHandler struct {
	Ledger WebhookLedger
}

func NewWebhookHandler(l WebhookLedger) *WebhookHandler {
	return &WebhookHandler{Ledger: l}
}

// providerEnvelope is the minimal shape shared by provider webhook bodies;
// the full payload is retained verbatim in the ledger.
type providerEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// POST /webhooks/:provider
//
// Responds 200 as soon as the receipt is durable. Processing failures never
// reach the provider; the retry schedule owns them, and providers redeliver
// on non-2xx anyway, which the ledger dedup absorbs.
func (h *WebhookHandler) Receive(c *gin.Context) {
	provider := models.Provider(strings.ToUpper(c.Param("provider")))
	if !provider.IsValid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	var envelope providerEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload carries no event id"})
		return
	}

	if err := h.Ledger.HandleWebhook(c.Request.Context(), provider, envelope.ID, envelope.Type, body); err != nil {
		logrus.Errorf("Error receiving webhook %s: %s", envelope.ID, err.Error())
		if pipeline.IsPermanent(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook receipt failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "event_id": envelope.ID})
}
