package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLastDayOfPreviousMonth(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"mid month", date(2024, time.March, 15), time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)},
		{"first of month", date(2024, time.May, 1), time.Date(2024, time.April, 30, 23, 59, 59, 0, time.UTC)},
		{"january rolls back a year", date(2024, time.January, 20), time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)},
		{"end of month", date(2023, time.March, 31), time.Date(2023, time.February, 28, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastDayOfPreviousMonth(tt.now))
		})
	}
}

func TestFirstDayOfMonthsAgo(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		n    int
		want time.Time
	}{
		{"one month", date(2024, time.March, 15), 1, date(2024, time.February, 1)},
		{"twelve months", date(2024, time.March, 15), 12, date(2023, time.March, 1)},
		{"end of month does not overflow", date(2024, time.March, 31), 1, date(2024, time.February, 1)},
		{"across years", date(2024, time.February, 10), 3, date(2023, time.November, 1)},
		{"zero is current month", date(2024, time.February, 10), 0, date(2024, time.February, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstDayOfMonthsAgo(tt.now, tt.n))
		})
	}
}

func TestNew(t *testing.T) {
	w, err := New(date(2024, time.March, 10), 2)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 1), w.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC), w.End)
	assert.Equal(t, 2, w.Months)
	assert.Equal(t, "2024-01-01 – 2024-02-29", w.String())

	_, err = New(date(2024, time.March, 10), 0)
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	w, err := New(date(2024, time.March, 10), 2)
	require.NoError(t, err)

	assert.False(t, w.Contains(date(2023, time.December, 31)))
	assert.True(t, w.Contains(date(2024, time.January, 1)), "first day is inclusive")
	assert.True(t, w.Contains(date(2024, time.February, 10)))
	assert.True(t, w.Contains(date(2024, time.February, 29)), "last day is inclusive")
	assert.False(t, w.Contains(date(2024, time.March, 1)))
}

func TestContainsUsesCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	w, err := New(time.Date(2024, time.March, 10, 12, 0, 0, 0, loc), 2)
	require.NoError(t, err)

	// A date-only value parsed as UTC midnight still counts as that day.
	assert.True(t, w.Contains(date(2024, time.January, 1)))
	assert.False(t, w.Contains(date(2024, time.March, 1)))
}
