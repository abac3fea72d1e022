package event

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/socx/event-announcer/internal/domain/company"
	"github.com/socx/event-announcer/internal/domain/record"
)

// Upcoming holds the companies whose accounts or returns due date matched
// the lookahead window. Only the "Due" dates participate; next-due and
// last-made-up dates are never matched.
type Upcoming struct {
	AccountsDue []company.Company
	ReturnsDue  []company.Company
}

// UpcomingEvents returns the companies whose accounts or returns are due
// exactly lookaheadDays from now. The point-match semantics are deliberate:
// a company due in 29 or 31 days is excluded from a 30-day lookahead.
func UpcomingEvents(companies []company.Company, lookaheadDays int, now time.Time, log *logrus.Logger) Upcoming {
	if len(companies) == 0 && log != nil {
		log.Debug("no companies provided for upcoming event lookup")
	}
	w := WithinDays(lookaheadDays)
	return Upcoming{
		AccountsDue: Filter(companies, func(c company.Company) record.NullDate { return c.AccountsDueDate }, w, now),
		ReturnsDue:  Filter(companies, func(c company.Company) record.NullDate { return c.ReturnsDueDate }, w, now),
	}
}

// Empty reports whether no company matched in any bucket.
func (u Upcoming) Empty() bool {
	return len(u.AccountsDue) == 0 && len(u.ReturnsDue) == 0
}
