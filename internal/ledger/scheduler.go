package ledger

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler owns the ticking timer behind the retry sweep. One background
// goroutine per process; the sweep itself is synchronous.
type Scheduler struct {
	service  *Service
	interval time.Duration
}

func NewScheduler(service *Service, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{
		service:  service,
		interval: interval,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logrus.Infof("Webhook retry scheduler started, sweep interval %s", s.interval)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Webhook retry scheduler stopped")
			return
		case <-ticker.C:
			attempted, err := s.service.SweepOnce(ctx, time.Now().UTC())
			if err != nil {
				logrus.Errorf("Retry sweep failed: %v", err)
				continue
			}
			if attempted > 0 {
				logrus.Infof("Retry sweep re-attempted %d webhook entries", attempted)
			}
		}
	}
}
