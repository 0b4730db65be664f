package models

import "time"

type EventType string
type Provider string
type Category string

const (
	EventPaymentInitiated EventType = "payment.initiated"
	EventPaymentSucceeded EventType = "payment.succeeded"
	EventPaymentFailed    EventType = "payment.failed"
	EventPaymentRefunded  EventType = "payment.refunded"
	EventDisputeOpened    EventType = "payment.dispute.opened"

	EventSubscriptionCreated     EventType = "subscription.created"
	EventSubscriptionRenewed     EventType = "subscription.renewed"
	EventSubscriptionCanceled    EventType = "subscription.canceled"
	EventSubscriptionPlanChanged EventType = "subscription.plan_changed"

	EventWebhookReceived       EventType = "webhook.received"
	EventWebhookRetryScheduled EventType = "webhook.retry_scheduled"
	EventWebhookDeadLettered   EventType = "webhook.dead_lettered"

	EventReconciliationRequested EventType = "reconciliation.requested"

	ProviderStripe   Provider = "STRIPE"
	ProviderPaypal   Provider = "PAYPAL"
	ProviderPaystack Provider = "PAYSTACK"

	CategoryPayment      Category = "payment"
	CategoryWebhook      Category = "webhook"
	CategorySubscription Category = "subscription"
)

// PaymentEvent is the immutable record carried through the pipeline.
// EventID is generated once per publish call and doubles as the
// producer-side idempotency key.
type PaymentEvent struct {
	EventID           string            `json:"event_id"`
	EventType         EventType         `json:"event_type"`
	Provider          Provider          `json:"provider"`
	ProviderPaymentID string            `json:"provider_payment_id,omitempty"`
	PaymentReference  string            `json:"payment_reference,omitempty"`
	SubscriptionID    string            `json:"subscription_id,omitempty"`
	PlanID            string            `json:"plan_id,omitempty"`
	UserID            string            `json:"user_id,omitempty"`
	Amount            float64           `json:"amount,omitempty"`
	Currency          string            `json:"currency,omitempty"`
	Status            string            `json:"status,omitempty"`
	PreviousStatus    string            `json:"previous_status,omitempty"`
	OccurredAt        time.Time         `json:"occurred_at"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	ErrorCode         string            `json:"error_code,omitempty"`
	ErrorMessage      string            `json:"error_message,omitempty"`
	WebhookEventID    string            `json:"webhook_event_id,omitempty"`
}

// PartitionKey resolves the ordering key: all events for one user land on
// one partition, falling back to payment identifiers when no user is known.
func (e *PaymentEvent) PartitionKey() string {
	if e.UserID != "" {
		return e.UserID
	}
	if e.PaymentReference != "" {
		return e.PaymentReference
	}
	return e.ProviderPaymentID
}

// Category groups event types into the logical channel they travel on.
func (e EventType) Category() Category {
	switch e {
	case EventSubscriptionCreated, EventSubscriptionRenewed, EventSubscriptionCanceled, EventSubscriptionPlanChanged:
		return CategorySubscription
	case EventWebhookReceived, EventWebhookRetryScheduled, EventWebhookDeadLettered:
		return CategoryWebhook
	default:
		return CategoryPayment
	}
}

func (p Provider) IsValid() bool {
	switch p {
	case ProviderStripe, ProviderPaypal, ProviderPaystack:
		return true
	default:
		return false
	}
}

// DLQMessage wraps a record that exhausted (or was excluded from) retry,
// preserving enough of the original to replay it by hand.
type DLQMessage struct {
	OriginalTopic     string    `json:"original_topic"`
	OriginalPartition int       `json:"original_partition"`
	Key               string    `json:"key"`
	Value             string    `json:"value"`
	Timestamp         time.Time `json:"timestamp"`
	Attempts          int       `json:"attempts"`
	Error             string    `json:"error"`
	Permanent         bool      `json:"permanent"`
}
