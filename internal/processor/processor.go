package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/finvent/paystream/internal/models"
	"github.com/finvent/paystream/internal/pipeline"
)

// HandlerFunc is a domain handler for one event type. Handlers never retry
// on their own; errors propagate to the consumer layer, which applies the
// backoff and dead-letter policies. Handlers that know a failure is
// permanent wrap it with pipeline.Permanent.
type HandlerFunc func(ctx context.Context, event *models.PaymentEvent) error

// Processor routes events to registered domain handlers. Unknown event
// types are logged and dropped so producers can deploy ahead of consumers.
type Processor struct {
	handlers map[models.EventType]HandlerFunc

	processed atomic.Uint64
	failed    atomic.Uint64
	dropped   atomic.Uint64
}

type Stats struct {
	Processed uint64
	Failed    uint64
	Dropped   uint64
}

func New() *Processor {
	return &Processor{
		handlers: make(map[models.EventType]HandlerFunc),
	}
}

// Register wires a handler for an event type. Registration happens once at
// startup, before any listener starts; duplicate registration is a wiring bug.
func (p *Processor) Register(eventType models.EventType, handler HandlerFunc) error {
	if _, ok := p.handlers[eventType]; ok {
		return fmt.Errorf("handler already registered for event type %s", eventType)
	}
	p.handlers[eventType] = handler
	return nil
}

func (p *Processor) Process(ctx context.Context, event *models.PaymentEvent) error {
	handler, ok := p.handlers[event.EventType]
	if !ok {
		p.dropped.Add(1)
		logrus.Warnf("No handler registered for event type %s, dropping event %s", event.EventType, event.EventID)
		return nil
	}

	if err := handler(ctx, event); err != nil {
		p.failed.Add(1)
		return err
	}

	p.processed.Add(1)
	return nil
}

// HandleMessage adapts the processor to the consumer's raw-record callback.
// A payload that fails to decode is a deterministic bug and must not be
// retried.
func (p *Processor) HandleMessage(ctx context.Context, topic string, value []byte) error {
	var event models.PaymentEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return pipeline.Permanent(fmt.Errorf("error unmarshalling event from topic %s: %w", topic, err))
	}

	return p.Process(ctx, &event)
}

func (p *Processor) Stats() Stats {
	return Stats{
		Processed: p.processed.Load(),
		Failed:    p.failed.Load(),
		Dropped:   p.dropped.Load(),
	}
}
