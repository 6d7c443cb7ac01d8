package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"spotcast/internal/logger"
)

const jobTimeout = 2 * time.Minute

// Scheduler runs the service's background jobs: contest-calendar refresh
// and periodic forecast snapshots. Job failures are logged and never crash
// the process.
type Scheduler struct {
	scheduler *gocron.Scheduler
	log       *logger.Logger
}

// New creates a scheduler running on UTC
func New() *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		log:       logger.GetGlobalLogger().WithComponent("scheduler"),
	}
}

// AddJob registers a named job on a fixed interval. Each run is bounded by
// its own timeout so a hung upstream cannot pile up runs behind it.
func (s *Scheduler) AddJob(name string, interval time.Duration, job func(ctx context.Context) error) error {
	minutes := int(interval.Minutes())
	if minutes <= 0 {
		minutes = 1
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		s.log.Debug("running job", map[string]interface{}{"job": name})
		if err := job(ctx); err != nil {
			s.log.Error("job failed", err, map[string]interface{}{"job": name})
			return
		}
		s.log.Debug("job completed", map[string]interface{}{"job": name})
	})
	return err
}

// Start starts the scheduler without blocking
func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
}

// Stop stops the scheduler and cancels future runs
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
