package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCriterionMet(t *testing.T) {
	stats := PlayerStats{
		TasksCompleted:   25,
		StreakCount:      7,
		Level:            3,
		EarlyCompletions: 4,
		CompletedAt:      time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC),
	}

	assert.True(t, Criterion{Type: CriterionTaskCount, Threshold: 25}.Met(stats))
	assert.False(t, Criterion{Type: CriterionTaskCount, Threshold: 26}.Met(stats))

	assert.True(t, Criterion{Type: CriterionStreak, Threshold: 7}.Met(stats))
	assert.False(t, Criterion{Type: CriterionStreak, Threshold: 8}.Met(stats))

	assert.True(t, Criterion{Type: CriterionLevel, Threshold: 3}.Met(stats))
	assert.False(t, Criterion{Type: CriterionLevel, Threshold: 4}.Met(stats))

	// Night-owl badge: completion at or after the configured hour.
	assert.True(t, Criterion{Type: CriterionTimeBased, Hour: 22}.Met(stats))
	assert.False(t, Criterion{Type: CriterionTimeBased, Hour: 23}.Met(stats))

	assert.True(t, Criterion{Type: CriterionEarlyCompletion, Threshold: 4}.Met(stats))
	assert.False(t, Criterion{Type: CriterionEarlyCompletion, Threshold: 5}.Met(stats))
}

func TestEvaluateBadgesSkipsHeld(t *testing.T) {
	stats := PlayerStats{TasksCompleted: 1}
	rules := []BadgeRule{
		{BadgeID: "first-task", Criterion: Criterion{Type: CriterionTaskCount, Threshold: 1}},
		{BadgeID: "ten-tasks", Criterion: Criterion{Type: CriterionTaskCount, Threshold: 10}},
	}

	unlocked := EvaluateBadges(stats, rules, nil)
	assert.Equal(t, []string{"first-task"}, unlocked)

	// Idempotent: a held badge is never re-awarded.
	held := map[string]struct{}{"first-task": {}}
	assert.Empty(t, EvaluateBadges(stats, rules, held))
}

func TestEvaluateBadgesIndependentCriteria(t *testing.T) {
	stats := PlayerStats{
		TasksCompleted: 100,
		StreakCount:    30,
		Level:          5,
		CompletedAt:    time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
	}
	rules := []BadgeRule{
		{BadgeID: "centurion", Criterion: Criterion{Type: CriterionTaskCount, Threshold: 100}},
		{BadgeID: "month-streak", Criterion: Criterion{Type: CriterionStreak, Threshold: 30}},
		{BadgeID: "night-owl", Criterion: Criterion{Type: CriterionTimeBased, Hour: 22}},
	}

	unlocked := EvaluateBadges(stats, rules, map[string]struct{}{})
	assert.ElementsMatch(t, []string{"centurion", "month-streak"}, unlocked)
}

func TestParseCriterionType(t *testing.T) {
	c, err := ParseCriterionType("task_count")
	assert.NoError(t, err)
	assert.Equal(t, CriterionTaskCount, c)

	_, err = ParseCriterionType("mystery")
	assert.Error(t, err)
}
