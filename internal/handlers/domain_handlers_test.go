package handlers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finvent/paystream/internal/handlers"
	"github.com/finvent/paystream/internal/ledger"
	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/pipeline"
)

func TestSubscriptionHandler_MissingSubscriptionIDIsPermanent(t *testing.T) {
	handler := handlers.NewSubscriptionHandler()

	event := models.NewPaymentInitiated(models.PaymentDetails{
		Provider: models.ProviderStripe,
		UserID:   "user-1",
	})

	err := handler.Handle(context.Background(), &event)
	assert.Error(t, err)
	assert.True(t, pipeline.IsPermanent(err))
}

func TestSubscriptionHandler_AcceptsSubscriptionEvent(t *testing.T) {
	handler := handlers.NewSubscriptionHandler()

	event := models.NewSubscriptionRenewed(models.ProviderStripe, "sub-1", "plan-pro", "user-1", 29.00, "USD")

	assert.NoError(t, handler.Handle(context.Background(), &event))
}

func TestWebhookProcessor_RejectsUnparseablePayload(t *testing.T) {
	processor := handlers.NewWebhookProcessor()

	err := processor.HandleWebhook(context.Background(), &ledger.WebhookEvent{
		EventID: "evt_1",
		Payload: "{truncated",
	})
	assert.Error(t, err)
}

func TestWebhookProcessor_AcceptsValidPayload(t *testing.T) {
	processor := handlers.NewWebhookProcessor()

	err := processor.HandleWebhook(context.Background(), &ledger.WebhookEvent{
		EventID:   "evt_1",
		Provider:  "STRIPE",
		EventType: "payment_intent.succeeded",
		Payload:   `{"id":"evt_1","type":"payment_intent.succeeded"}`,
	})
	assert.NoError(t, err)
}
