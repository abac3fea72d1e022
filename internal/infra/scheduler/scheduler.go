package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/socx/event-announcer/internal/app"
)

// Runner is one orchestrator entry point. It takes no arguments beyond the
// context and returns only a completion signal, never entity data.
type Runner interface {
	Run(ctx context.Context) error
}

// AnnouncerScheduler triggers the celebrant and company orchestrators on
// their configured cron cadences. Each tick starts a brand-new, fully
// independent run; an overlapping tick is reported by the orchestrator's
// own guard and logged here.
type AnnouncerScheduler struct {
	cronEngine         *cron.Cron
	celebrantRunner    Runner
	companyRunner      Runner
	log                *logrus.Logger
	cronSpecCelebrants string
	cronSpecCompanies  string
}

func NewAnnouncerScheduler(
	celebrantRunner Runner,
	companyRunner Runner,
	log *logrus.Logger,
	cronSpecCelebrants string, // e.g., "0 7 * * *" (07:00 daily)
	cronSpecCompanies string, // e.g., "0 8 * * *" (08:00 daily)
) *AnnouncerScheduler {
	return &AnnouncerScheduler{
		cronEngine:         cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		celebrantRunner:    celebrantRunner,
		companyRunner:      companyRunner,
		log:                log,
		cronSpecCelebrants: cronSpecCelebrants,
		cronSpecCompanies:  cronSpecCompanies,
	}
}

// Start registers both jobs and starts the cron engine.
func (s *AnnouncerScheduler) Start() error {
	s.log.Info("Starting announcement scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecCelebrants, func() {
		s.log.Info("Cron job triggered for celebrant announcements.")
		s.execute("celebrant announcements", s.celebrantRunner)
	})
	if err != nil {
		return errors.Join(errors.New("could not add celebrant announcement cron job"), err)
	}

	_, err = s.cronEngine.AddFunc(s.cronSpecCompanies, func() {
		s.log.Info("Cron job triggered for company event reminders.")
		s.execute("company event reminders", s.companyRunner)
	})
	if err != nil {
		return errors.Join(errors.New("could not add company event reminder cron job"), err)
	}

	s.cronEngine.Start()
	s.log.Info("Announcement scheduler started with jobs.")
	return nil
}

func (s *AnnouncerScheduler) execute(jobName string, runner Runner) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := runner.Run(ctx); err != nil {
		if errors.Is(err, app.ErrRunInProgress) {
			s.log.Warnf("Skipping %s tick: previous run still in progress.", jobName)
			return
		}
		s.log.Errorf("Error during %s run: %v", jobName, err)
		return
	}
	s.log.Infof("%s run finished successfully.", jobName)
}

// Stop halts the cron engine and waits for running jobs to finish.
func (s *AnnouncerScheduler) Stop() {
	s.log.Info("Stopping announcement scheduler...")
	ctx := s.cronEngine.Stop() // Stops new jobs from starting, waits for running jobs.
	<-ctx.Done()
	s.log.Info("Announcement scheduler gracefully stopped.")
}
