package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socx/event-announcer/internal/domain/family"
	"github.com/socx/event-announcer/internal/domain/record"
)

func TestTodayCelebrantsBucketsIndependently(t *testing.T) {
	members := []family.Member{
		{ID: "1", FirstName: "Mark", LastName: "Obi", BirthDate: record.NewDate(1988, time.June, 15)},
		{ID: "2", FirstName: "Ada", LastName: "Obi", WeddingDate: record.NewDate(2010, time.June, 15)},
		// Birthday and anniversary on the same day: appears in both buckets.
		{ID: "3", FirstName: "Sam", LastName: "Eze", BirthDate: record.NewDate(1970, time.June, 15), WeddingDate: record.NewDate(1995, time.June, 15)},
		{ID: "4", FirstName: "Ngozi", LastName: "Eze", BirthDate: record.NewDate(1972, time.December, 3)},
		// No dates at all: never matches.
		{ID: "5", FirstName: "Tobi", LastName: "Ade"},
	}

	got := TodayCelebrants(members, now, nil)

	require.Len(t, got.Birthdays, 2)
	assert.Equal(t, "1", got.Birthdays[0].ID)
	assert.Equal(t, "3", got.Birthdays[1].ID)

	require.Len(t, got.Anniversaries, 2)
	assert.Equal(t, "2", got.Anniversaries[0].ID)
	assert.Equal(t, "3", got.Anniversaries[1].ID)
}

func TestTodayCelebrantsEmptyInput(t *testing.T) {
	got := TodayCelebrants(nil, now, nil)
	require.NotNil(t, got.Birthdays)
	require.NotNil(t, got.Anniversaries)
	assert.True(t, got.Empty())
}

func TestMonthCelebrantsIgnoresDay(t *testing.T) {
	members := []family.Member{
		{ID: "1", FirstName: "Mark", BirthDate: record.NewDate(1988, time.June, 2)},
		{ID: "2", FirstName: "Ada", BirthDate: record.NewDate(1991, time.May, 15)},
	}
	got := MonthCelebrants(members, now, nil)
	require.Len(t, got.Birthdays, 1)
	assert.Equal(t, "1", got.Birthdays[0].ID)
}
