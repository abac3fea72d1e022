package event

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/socx/event-announcer/internal/domain/family"
	"github.com/socx/event-announcer/internal/domain/record"
)

// Celebrants are the members whose birth or wedding date matched a window.
// A member with both fields matching appears in both buckets.
type Celebrants struct {
	Birthdays     []family.Member
	Anniversaries []family.Member
}

// TodayCelebrants returns the members whose birthday or wedding anniversary
// falls on the current day and month.
func TodayCelebrants(members []family.Member, now time.Time, log *logrus.Logger) Celebrants {
	return matchCelebrants(members, Today(), now, log)
}

// MonthCelebrants returns the members whose birthday or wedding anniversary
// falls anywhere in the current month.
func MonthCelebrants(members []family.Member, now time.Time, log *logrus.Logger) Celebrants {
	return matchCelebrants(members, ThisMonth(), now, log)
}

func matchCelebrants(members []family.Member, w Window, now time.Time, log *logrus.Logger) Celebrants {
	if len(members) == 0 && log != nil {
		log.Debug("no family members provided for celebrant lookup")
	}
	return Celebrants{
		Birthdays:     Filter(members, func(m family.Member) record.NullDate { return m.BirthDate }, w, now),
		Anniversaries: Filter(members, func(m family.Member) record.NullDate { return m.WeddingDate }, w, now),
	}
}

// Empty reports whether no member matched in any bucket.
func (c Celebrants) Empty() bool {
	return len(c.Birthdays) == 0 && len(c.Anniversaries) == 0
}
