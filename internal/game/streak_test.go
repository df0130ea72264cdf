package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	t.Run("no history resets to one", func(t *testing.T) {
		assert.Equal(t, 1, AdvanceStreak(0, nil, now))
	})

	t.Run("yesterday increments", func(t *testing.T) {
		yesterday := date(2025, 6, 9)
		assert.Equal(t, 6, AdvanceStreak(5, &yesterday, now))
	})

	t.Run("same day is idempotent", func(t *testing.T) {
		today := date(2025, 6, 10)
		assert.Equal(t, 6, AdvanceStreak(6, &today, now))
	})

	t.Run("gap resets to one", func(t *testing.T) {
		threeDaysAgo := date(2025, 6, 7)
		assert.Equal(t, 1, AdvanceStreak(10, &threeDaysAgo, now))
	})
}

func TestAdvanceStreakUsesCalendarDates(t *testing.T) {
	// 23:59 followed by 00:01 the next day is a one-day gap, not two hours.
	lastActive := time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC)
	now := time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 4, AdvanceStreak(3, &lastActive, now))

	// Exactly two calendar days resets, regardless of clock time.
	lastActive = time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, AdvanceStreak(3, &lastActive, now))
}

func TestShouldResetStreak(t *testing.T) {
	now := date(2025, 6, 10)

	assert.True(t, ShouldResetStreak(nil, now))

	yesterday := date(2025, 6, 9)
	assert.False(t, ShouldResetStreak(&yesterday, now))

	today := date(2025, 6, 10)
	assert.False(t, ShouldResetStreak(&today, now))

	old := date(2025, 6, 1)
	assert.True(t, ShouldResetStreak(&old, now))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2025, 6, 10), date(2025, 6, 10)))
	assert.Equal(t, 1, DaysBetween(date(2025, 6, 9), date(2025, 6, 10)))
	assert.Equal(t, -1, DaysBetween(date(2025, 6, 10), date(2025, 6, 9)))
	assert.Equal(t, 31, DaysBetween(date(2025, 5, 10), date(2025, 6, 10)))
}

func TestBuildHeatmap(t *testing.T) {
	from := date(2025, 6, 1)
	to := date(2025, 6, 5)
	counts := map[time.Time]int{
		date(2025, 6, 2): 3,
		date(2025, 6, 5): 1,
	}

	days := BuildHeatmap(from, to, counts)
	assert.Len(t, days, 5)
	assert.Equal(t, 0, days[0].TaskCount)
	assert.Equal(t, 3, days[1].TaskCount)
	assert.Equal(t, date(2025, 6, 2), days[1].Date)
	assert.Equal(t, 1, days[4].TaskCount)

	assert.Nil(t, BuildHeatmap(to, from, counts))
}
