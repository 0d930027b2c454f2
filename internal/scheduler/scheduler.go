package scheduler

import (
	"time"

	"equiprent/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a UTC, seconds-precision cron and registers the
// overdue sweep on schedule.
func NewScheduler(schedule string, sweep *OverdueSweep) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	if _, err := c.AddFunc(schedule, sweep.Run); err != nil {
		return nil, err
	}
	logger.Info("overdue sweep registered", "schedule", schedule)

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
