package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProgressCompletesAtTarget(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	p := ApplyProgress(QuestProgress{}, 1, 3, now)
	assert.Equal(t, 1, p.CurrentCount)
	assert.False(t, p.IsCompleted)
	assert.Nil(t, p.CompletedAt)

	p = ApplyProgress(p, 3, 3, now)
	assert.Equal(t, 3, p.CurrentCount)
	assert.True(t, p.IsCompleted)
	require.NotNil(t, p.CompletedAt)
	assert.Equal(t, now, *p.CompletedAt)
}

func TestApplyProgressIsMonotonic(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	p := ApplyProgress(QuestProgress{}, 3, 3, now)
	require.True(t, p.IsCompleted)
	stamp := *p.CompletedAt

	// A lower count later the same day must not un-complete the quest,
	// roll the counter back, or move the completion stamp.
	p = ApplyProgress(p, 1, 3, later)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, 3, p.CurrentCount)
	assert.Equal(t, stamp, *p.CompletedAt)
}

func TestApplyProgressOvershoot(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	p := ApplyProgress(QuestProgress{CurrentCount: 2}, 5, 3, now)
	assert.Equal(t, 5, p.CurrentCount)
	assert.True(t, p.IsCompleted)
}

func TestSummarizeDay(t *testing.T) {
	logs := []QuestProgress{
		{CurrentCount: 3, IsCompleted: true},
		{CurrentCount: 1},
	}

	status := SummarizeDay(logs, 3, false)
	assert.Equal(t, 3, status.TotalQuests)
	assert.Equal(t, 1, status.CompletedQuests)
	assert.False(t, status.IsAllCompleted)
	assert.False(t, status.HasPenalty)

	all := []QuestProgress{
		{IsCompleted: true},
		{IsCompleted: true},
	}
	status = SummarizeDay(all, 2, true)
	assert.True(t, status.IsAllCompleted)
	assert.True(t, status.HasPenalty)

	// No quests means nothing to complete.
	status = SummarizeDay(nil, 0, false)
	assert.False(t, status.IsAllCompleted)
}
