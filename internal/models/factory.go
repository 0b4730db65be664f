package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// PaymentDetails carries the cross-reference identifiers shared by every
// payment-flavored event.
type PaymentDetails struct {
	Provider          Provider
	ProviderPaymentID string
	PaymentReference  string
	UserID            string
	Amount            float64
	Currency          string
}

func newEvent(eventType EventType) PaymentEvent {
	return PaymentEvent{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
	}
}

func newPaymentEvent(eventType EventType, d PaymentDetails) PaymentEvent {
	e := newEvent(eventType)
	e.Provider = d.Provider
	e.ProviderPaymentID = d.ProviderPaymentID
	e.PaymentReference = d.PaymentReference
	e.UserID = d.UserID
	e.Amount = d.Amount
	e.Currency = d.Currency
	return e
}

func NewPaymentInitiated(d PaymentDetails) PaymentEvent {
	e := newPaymentEvent(EventPaymentInitiated, d)
	e.Status = "INITIATED"
	return e
}

func NewPaymentSucceeded(d PaymentDetails) PaymentEvent {
	e := newPaymentEvent(EventPaymentSucceeded, d)
	e.Status = "SUCCEEDED"
	e.PreviousStatus = "INITIATED"
	return e
}

func NewPaymentFailed(d PaymentDetails, errorCode, errorMessage string) PaymentEvent {
	e := newPaymentEvent(EventPaymentFailed, d)
	e.Status = "FAILED"
	e.PreviousStatus = "INITIATED"
	e.ErrorCode = errorCode
	e.ErrorMessage = errorMessage
	return e
}

func NewPaymentRefunded(d PaymentDetails, previousStatus string) PaymentEvent {
	e := newPaymentEvent(EventPaymentRefunded, d)
	e.Status = "REFUNDED"
	e.PreviousStatus = previousStatus
	return e
}

func NewDisputeOpened(d PaymentDetails, reason string) PaymentEvent {
	e := newPaymentEvent(EventDisputeOpened, d)
	e.Status = "DISPUTED"
	e.Metadata = map[string]string{"dispute_reason": reason}
	return e
}

func NewSubscriptionCreated(provider Provider, subscriptionID, planID, userID string) PaymentEvent {
	e := newEvent(EventSubscriptionCreated)
	e.Provider = provider
	e.SubscriptionID = subscriptionID
	e.PlanID = planID
	e.UserID = userID
	e.Status = "ACTIVE"
	return e
}

func NewSubscriptionRenewed(provider Provider, subscriptionID, planID, userID string, amount float64, currency string) PaymentEvent {
	e := newEvent(EventSubscriptionRenewed)
	e.Provider = provider
	e.SubscriptionID = subscriptionID
	e.PlanID = planID
	e.UserID = userID
	e.Amount = amount
	e.Currency = currency
	e.Status = "ACTIVE"
	return e
}

func NewSubscriptionCanceled(provider Provider, subscriptionID, planID, userID, reason string) PaymentEvent {
	e := newEvent(EventSubscriptionCanceled)
	e.Provider = provider
	e.SubscriptionID = subscriptionID
	e.PlanID = planID
	e.UserID = userID
	e.Status = "CANCELED"
	e.PreviousStatus = "ACTIVE"
	e.Metadata = map[string]string{"cancel_reason": reason}
	return e
}

func NewSubscriptionPlanChanged(provider Provider, subscriptionID, userID, previousPlanID, planID string) PaymentEvent {
	e := newEvent(EventSubscriptionPlanChanged)
	e.Provider = provider
	e.SubscriptionID = subscriptionID
	e.PlanID = planID
	e.UserID = userID
	e.Status = "ACTIVE"
	e.Metadata = map[string]string{"previous_plan_id": previousPlanID}
	return e
}

// NewWebhookAudit records the raw receipt of a provider webhook. The payload
// itself stays in the ledger; the event only references it by external id.
func NewWebhookAudit(provider Provider, webhookEventID, webhookType string) PaymentEvent {
	e := newEvent(EventWebhookReceived)
	e.Provider = provider
	e.WebhookEventID = webhookEventID
	e.Metadata = map[string]string{"webhook_type": webhookType}
	return e
}

func NewWebhookRetryScheduled(provider Provider, webhookEventID string, retryCount int, nextRetryAt time.Time) PaymentEvent {
	e := newEvent(EventWebhookRetryScheduled)
	e.Provider = provider
	e.WebhookEventID = webhookEventID
	e.Metadata = map[string]string{
		"retry_count":   strconv.Itoa(retryCount),
		"next_retry_at": nextRetryAt.UTC().Format(time.RFC3339),
	}
	return e
}

func NewWebhookDeadLettered(provider Provider, webhookEventID, lastError string, retryCount int) PaymentEvent {
	e := newEvent(EventWebhookDeadLettered)
	e.Provider = provider
	e.WebhookEventID = webhookEventID
	e.ErrorMessage = lastError
	e.Metadata = map[string]string{"retry_count": strconv.Itoa(retryCount)}
	return e
}

func NewReconciliationRequested(provider Provider, paymentReference, userID string) PaymentEvent {
	e := newEvent(EventReconciliationRequested)
	e.Provider = provider
	e.PaymentReference = paymentReference
	e.UserID = userID
	return e
}

