// Package schedule runs a job on a cron expression until the context is
// cancelled. It backs the serve command; single-shot invocations driven by
// an external trigger do not use it.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron  *cron.Cron
	entry cron.EntryID
}

// New validates the 5-field cron expression and registers the job.
func New(expr string, job func()) (*Scheduler, error) {
	c := cron.New()
	entry, err := c.AddFunc(expr, job)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", expr, err)
	}
	return &Scheduler{cron: c, entry: entry}, nil
}

// Next returns the next scheduled run after now.
func (s *Scheduler) Next(now time.Time) time.Time {
	return s.cron.Entry(s.entry).Schedule.Next(now)
}

// Start blocks until ctx is cancelled, then waits for any in-flight job to
// finish.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
}
