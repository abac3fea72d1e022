package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/socx/event-announcer/internal/domain/event"
	"github.com/socx/event-announcer/internal/domain/family"
)

// AnnouncerService orchestrates one celebrant notification run:
// read → match → resolve → render → dispatch → log. It is stateless between
// invocations; a mutex guards against a slow run overlapping the next tick.
type AnnouncerService struct {
	familyRepo family.Repository
	dispatcher *Dispatcher
	log        *logrus.Logger
	now        func() time.Time

	mu sync.Mutex
}

func NewAnnouncerService(repo family.Repository, dispatcher *Dispatcher, log *logrus.Logger) *AnnouncerService {
	return &AnnouncerService{
		familyRepo: repo,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
	}
}

// Run executes one complete celebrant announcement run. It returns
// ErrRunInProgress when a previous run has not finished, a *RunError when an
// unrecoverable failure moved the run into FAILED, and nil otherwise;
// contained delivery failures never surface here.
func (s *AnnouncerService) Run(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrRunInProgress
	}
	defer s.mu.Unlock()

	log := s.log.WithField("run_id", uuid.NewString())
	log.Info("Starting celebrant announcement run")

	recipients, err := s.familyRepo.ListRecipients(ctx)
	if err != nil {
		return s.fail(log, StepLoadRecipients, err)
	}
	log.Infof("Fetched %d recipients", len(recipients))

	members, err := s.familyRepo.ListMembers(ctx)
	if err != nil {
		return s.fail(log, StepLoadEntities, err)
	}
	log.Infof("Fetched %d family members", len(members))

	celebrants := event.TodayCelebrants(members, s.now(), s.log)
	log.Infof("Matched %d birthday and %d anniversary celebrants for today",
		len(celebrants.Birthdays), len(celebrants.Anniversaries))

	report, err := s.dispatcher.DispatchCelebrations(ctx, recipients, celebrants)
	if err != nil {
		return s.fail(log, StepDispatch, err)
	}

	log.WithFields(logrus.Fields{
		"attempted": report.Attempted,
		"sent":      report.Sent,
		"failed":    report.Failed(),
	}).Info("Celebrant announcement run complete")
	return nil
}

// MonthCelebrants loads the family record set and returns everyone with a
// birthday or wedding anniversary in the current month. Used by the CLI
// preview; it sends nothing.
func (s *AnnouncerService) MonthCelebrants(ctx context.Context) (event.Celebrants, error) {
	members, err := s.familyRepo.ListMembers(ctx)
	if err != nil {
		return event.Celebrants{}, &RunError{Step: StepLoadEntities, Err: err}
	}
	return event.MonthCelebrants(members, s.now(), s.log), nil
}

func (s *AnnouncerService) fail(log *logrus.Entry, step Step, err error) error {
	log.WithField("step", string(step)).Errorf("%s: %v", failureMarker, err)
	return &RunError{Step: step, Err: err}
}
