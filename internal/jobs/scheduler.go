// Package jobs manages background tasks (cron).
// scheduler.go sets the schedule: the nightly usage-counter reconciliation.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"spesebot.it/telegram-bot/internal/features/categories"
)

// Scheduler manages background tasks.
type Scheduler struct {
	cron       *cron.Cron
	categories *categories.Service
	timezone   string
}

// NewScheduler creates the task scheduler in the configured timezone.
func NewScheduler(categories *categories.Service, timezone string) *Scheduler {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.WithError(err).WithField("timezone", timezone).Warn("Loading timezone failed, using UTC")
		loc = time.UTC
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(loc)),
		categories: categories,
		timezone:   timezone,
	}
}

// Start launches all background tasks.
func (s *Scheduler) Start(ctx context.Context) {
	// Nightly at 04:00, before anyone is awake to notice a counter jump.
	s.cron.AddFunc("0 4 * * *", func() {
		log.Info("[CRON] Reconciling category usage counters")
		if err := s.categories.Reconcile(ctx); err != nil {
			log.WithError(err).Error("[CRON] Reconciliation failed")
		}
	})

	s.cron.Start()
	log.WithField("timezone", s.timezone).Info("Task scheduler started")
}

// Stop halts the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Task scheduler stopped")
}
