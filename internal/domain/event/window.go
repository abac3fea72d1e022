// Package event holds the pure date-window matching and relationship
// resolution rules of the notification pipeline.
package event

import (
	"time"

	"github.com/socx/event-announcer/internal/domain/record"
)

type windowKind int

const (
	windowToday windowKind = iota
	windowThisMonth
	windowWithinDays
)

// Window is a date-comparison rule defining match eligibility.
type Window struct {
	kind windowKind
	days int
}

// Today matches when the field's day-of-month and month equal the current
// day and month. The year is ignored: this is a recurring-anniversary match.
func Today() Window {
	return Window{kind: windowToday}
}

// ThisMonth matches when the field's month equals the current month; the
// day-of-month is ignored entirely.
func ThisMonth() Window {
	return Window{kind: windowThisMonth}
}

// WithinDays matches when the field's calendar date equals now+n days
// exactly. It is a point match n days ahead, not a range: a date 29 or 31
// days out does not match WithinDays(30).
func WithinDays(n int) Window {
	return Window{kind: windowWithinDays, days: n}
}

// Matches reports whether d falls inside the window relative to now.
// An absent date never matches.
func (w Window) Matches(d record.NullDate, now time.Time) bool {
	if !d.Valid {
		return false
	}
	switch w.kind {
	case windowToday:
		return d.Time.Day() == now.Day() && d.Time.Month() == now.Month()
	case windowThisMonth:
		return d.Time.Month() == now.Month()
	case windowWithinDays:
		target := now.AddDate(0, 0, w.days)
		ty, tm, td := target.Date()
		dy, dm, dd := d.Time.Date()
		return dy == ty && dm == tm && dd == td
	default:
		return false
	}
}

// Filter returns the sublist of items whose date field, selected by dateOf,
// matches the window. Relative order is preserved and the result is never
// nil, even for empty input.
func Filter[T any](items []T, dateOf func(T) record.NullDate, w Window, now time.Time) []T {
	matched := make([]T, 0)
	for _, item := range items {
		if w.Matches(dateOf(item), now) {
			matched = append(matched, item)
		}
	}
	return matched
}
