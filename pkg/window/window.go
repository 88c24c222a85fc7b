// Package window derives the calendar boundaries of a reporting window.
//
// A window of n months ends on the last day of the month before the reference
// date and starts on the first day of the month n months before the reference
// month. Both ends are inclusive.
package window

import (
	"fmt"
	"time"
)

// Window is an inclusive range of calendar days.
type Window struct {
	Start  time.Time
	End    time.Time
	Months int
}

// LastDayOfPreviousMonth returns the last day of the month before now, at
// 23:59:59 in now's location.
func LastDayOfPreviousMonth(now time.Time) time.Time {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := firstOfMonth.AddDate(0, 0, -1)
	return time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, now.Location())
}

// FirstDayOfMonthsAgo returns the first day of the month n months before the
// month of now, at 00:00:00 in now's location.
func FirstDayOfMonthsAgo(now time.Time, n int) time.Time {
	// Normalising to day 1 first keeps AddDate from overflowing into the next
	// month (e.g. March 31 minus one month).
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -n, 0)
}

// New returns the n-month window that ends with the previous month.
func New(now time.Time, n int) (Window, error) {
	if n < 1 {
		return Window{}, fmt.Errorf("window must span at least one month, got %d", n)
	}
	return Window{
		Start:  FirstDayOfMonthsAgo(now, n),
		End:    LastDayOfPreviousMonth(now),
		Months: n,
	}, nil
}

// Contains reports whether the calendar day of d lies within the window.
// Only the year, month and day of d are considered, interpreted in the
// window's location.
func (w Window) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, w.Start.Location())
	return !day.Before(w.Start) && !day.After(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("%s – %s", w.Start.Format(time.DateOnly), w.End.Format(time.DateOnly))
}
