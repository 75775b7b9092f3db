package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes a Catalog periodically.
type Scheduler struct {
	cron    *cron.Cron
	catalog *Catalog
	log     *slog.Logger
	timeout time.Duration
	entryID cron.EntryID
}

// NewScheduler creates a Scheduler that refreshes cat every interval.
func NewScheduler(cat *Catalog, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		catalog: cat,
		log:     log,
		timeout: interval,
	}

	id, err := c.AddFunc("@every "+interval.String(), s.runRefresh)
	if err != nil {
		return nil, err
	}
	s.entryID = id

	return s, nil
}

// Start begins running scheduled refreshes.
func (s *Scheduler) Start() {
	s.log.Info("catalog scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for a running refresh to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("catalog scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// NextRun returns when the next refresh is due. Zero before Start.
func (s *Scheduler) NextRun() time.Time {
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.catalog.Refresh(ctx); err != nil {
		s.log.Error("scheduled catalog refresh failed", "error", err)
	}
}
