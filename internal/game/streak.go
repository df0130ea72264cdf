package game

import "time"

// DateOf truncates to the UTC calendar date. All streak arithmetic runs on
// these midnight-anchored values, never on elapsed hours.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b (positive when b
// is later).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// AdvanceStreak transitions the streak for a "player active now" event.
// Yesterday extends the streak, today is an idempotent no-op, anything
// older (or no history) resets to 1.
func AdvanceStreak(streakCount int, lastActiveDate *time.Time, now time.Time) int {
	if lastActiveDate == nil {
		return 1
	}

	switch DaysBetween(*lastActiveDate, now) {
	case 0:
		return streakCount
	case 1:
		return streakCount + 1
	default:
		return 1
	}
}

// ShouldResetStreak is the read-only form of the reset branch, usable for
// display without mutating state.
func ShouldResetStreak(lastActiveDate *time.Time, now time.Time) bool {
	if lastActiveDate == nil {
		return true
	}
	return DaysBetween(*lastActiveDate, now) > 1
}

// HeatmapDay is one cell of the streak calendar.
type HeatmapDay struct {
	Date      time.Time
	TaskCount int
}

// BuildHeatmap expands a sparse per-day count map over [from, to] into a
// dense, date-ordered series. Days without completions appear with a zero
// count so clients can render the full grid.
func BuildHeatmap(from, to time.Time, counts map[time.Time]int) []HeatmapDay {
	start, end := DateOf(from), DateOf(to)
	if end.Before(start) {
		return nil
	}

	days := make([]HeatmapDay, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, HeatmapDay{Date: d, TaskCount: counts[d]})
	}
	return days
}
