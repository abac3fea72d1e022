package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/socx/event-announcer/internal/domain/company"
	"github.com/socx/event-announcer/internal/domain/event"
)

// CompanyReminderService orchestrates one company event reminder run for
// the company domain: officers play the recipient role and only the
// accounts and returns due dates participate in matching.
type CompanyReminderService struct {
	companyRepo   company.Repository
	dispatcher    *Dispatcher
	log           *logrus.Logger
	lookaheadDays int
	now           func() time.Time

	mu sync.Mutex
}

func NewCompanyReminderService(repo company.Repository, dispatcher *Dispatcher, lookaheadDays int, log *logrus.Logger) *CompanyReminderService {
	return &CompanyReminderService{
		companyRepo:   repo,
		dispatcher:    dispatcher,
		log:           log,
		lookaheadDays: lookaheadDays,
		now:           time.Now,
	}
}

// Run executes one complete company reminder run with the same outcome
// contract as AnnouncerService.Run.
func (s *CompanyReminderService) Run(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrRunInProgress
	}
	defer s.mu.Unlock()

	log := s.log.WithField("run_id", uuid.NewString())
	log.Info("Starting company event reminder run")

	officers, err := s.companyRepo.ListOfficers(ctx)
	if err != nil {
		return s.fail(log, StepLoadRecipients, err)
	}
	log.Infof("Fetched %d company officers", len(officers))

	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return s.fail(log, StepLoadEntities, err)
	}
	log.Infof("Fetched %d companies", len(companies))

	upcoming := event.UpcomingEvents(companies, s.lookaheadDays, s.now(), s.log)
	log.Infof("Matched %d companies with accounts due and %d with returns due in exactly %d days",
		len(upcoming.AccountsDue), len(upcoming.ReturnsDue), s.lookaheadDays)

	report, err := s.dispatcher.DispatchCompanyEvents(ctx, officers, upcoming)
	if err != nil {
		return s.fail(log, StepDispatch, err)
	}

	log.WithFields(logrus.Fields{
		"attempted": report.Attempted,
		"sent":      report.Sent,
		"failed":    report.Failed(),
	}).Info("Company event reminder run complete")
	return nil
}

func (s *CompanyReminderService) fail(log *logrus.Entry, step Step, err error) error {
	log.WithField("step", string(step)).Errorf("%s: %v", failureMarker, err)
	return &RunError{Step: step, Err: err}
}
