package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/finvent/paystream/internal/ledger"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/pipeline"
)

// The domain handlers below are the pipeline's downstream collaborators.
// They own no retry logic: an error simply propagates to the consumer
// layer, which applies the backoff and dead-letter policies.

type PaymentLifecycleHandler struct{}

func NewPaymentLifecycleHandler() *PaymentLifecycleHandler {
	return &PaymentLifecycleHandler{}
}

func (h *PaymentLifecycleHandler) Handle(ctx context.Context, event *models.PaymentEvent) error {
	logrus.WithFields(logrus.Fields{
		"event_id":   event.EventID,
		"event_type": event.EventType,
		"provider":   event.Provider,
		"user_id":    event.UserID,
		"reference":  event.PaymentReference,
		"amount":     event.Amount,
		"currency":   event.Currency,
		"status":     event.Status,
	}).Info("Payment lifecycle event handled")
	return nil
}

type SubscriptionHandler struct{}

func NewSubscriptionHandler() *SubscriptionHandler {
	return &SubscriptionHandler{}
}

func (h *SubscriptionHandler) Handle(ctx context.Context, event *models.PaymentEvent) error {
	if event.SubscriptionID == "" {
		return pipeline.Permanent(fmt.Errorf("subscription event %s carries no subscription id", event.EventID))
	}

	logrus.WithFields(logrus.Fields{
		"event_id":        event.EventID,
		"event_type":      event.EventType,
		"subscription_id": event.SubscriptionID,
		"plan_id":         event.PlanID,
		"user_id":         event.UserID,
	}).Info("Subscription event handled")
	return nil
}

type WebhookAuditHandler struct{}

func NewWebhookAuditHandler() *WebhookAuditHandler {
	return &WebhookAuditHandler{}
}

func (h *WebhookAuditHandler) Handle(ctx context.Context, event *models.PaymentEvent) error {
	logrus.WithFields(logrus.Fields{
		"event_id":         event.EventID,
		"event_type":       event.EventType,
		"provider":         event.Provider,
		"webhook_event_id": event.WebhookEventID,
	}).Info("Webhook audit event recorded")
	return nil
}

// WebhookProcessor is the ledger's business-side handler: it digests the
// raw provider payload once the ledger has durably recorded the receipt.
type WebhookProcessor struct{}

func NewWebhookProcessor() *WebhookProcessor {
	return &WebhookProcessor{}
}

func (p *WebhookProcessor) HandleWebhook(ctx context.Context, entry *ledger.WebhookEvent) error {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(entry.Payload), &payload); err != nil {
		return fmt.Errorf("error decoding webhook payload %s: %w", entry.EventID, err)
	}

	logrus.WithFields(logrus.Fields{
		"event_id":   entry.EventID,
		"provider":   entry.Provider,
		"event_type": entry.EventType,
	}).Info("Webhook processed")
	return nil
}
