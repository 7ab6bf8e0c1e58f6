package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultRunTimeout bounds a single scheduled run
const DefaultRunTimeout = 30 * time.Minute

// Scheduler runs a Runner on a cron schedule
type Scheduler struct {
	cron   *cron.Cron
	runner *Runner
	spec   string
	log    *logrus.Entry
}

// NewScheduler registers runner under the standard five-field cron spec.
// An invalid spec is reported here rather than at Start.
func NewScheduler(runner *Runner, spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		runner: runner,
		spec:   spec,
		log:    runner.log,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultRunTimeout)
	defer cancel()

	s.log.Info("Starting scheduled backup")
	if _, err := s.runner.RunOnce(ctx); err != nil {
		s.log.WithError(err).Error("Scheduled backup finished with errors")
	}
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.WithField("schedule", s.spec).Info("Backup scheduler started")
}

// Next returns the time of the next scheduled run, zero before Start
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// Stop stops the scheduler and returns a context that is done once a
// running backup has finished
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
