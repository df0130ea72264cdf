package services

import (
	"testing"

	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaidAwardEventsPerParticipant(t *testing.T) {
	raid := &models.Raid{ID: "raid-1", BonusXP: 50}
	awards := []RaidAward{
		{PlayerID: "p-1", Username: "nova", TotalXP: 420, Level: 6, LeveledUp: false},
		{PlayerID: "p-2", Username: "vega", TotalXP: 1000, Level: 10, LeveledUp: true},
	}

	events := raidAwardEvents(raid, awards)
	require.Len(t, events, 3)

	// Every participant gets an xp_changed carrying the post-bonus total,
	// so the leaderboard consumer folds the payout without a rebuild.
	assert.Equal(t, models.EventXPChanged, events[0].Type)
	assert.Equal(t, "p-1", events[0].PlayerID)
	assert.Equal(t, "nova", events[0].Username)
	assert.Equal(t, 50, events[0].XPDelta)
	assert.Equal(t, 420, events[0].TotalXP)
	assert.Equal(t, 6, events[0].Level)
	assert.Equal(t, "raid-1", events[0].RaidID)

	assert.Equal(t, models.EventXPChanged, events[1].Type)
	assert.Equal(t, "p-2", events[1].PlayerID)
	assert.Equal(t, 1000, events[1].TotalXP)

	// A bonus that crosses a level threshold also emits a level_up.
	assert.Equal(t, models.EventLevelUp, events[2].Type)
	assert.Equal(t, "p-2", events[2].PlayerID)
	assert.Equal(t, "vega", events[2].Username)
	assert.Equal(t, 10, events[2].Level)
}

func TestRaidAwardEventsEmpty(t *testing.T) {
	raid := &models.Raid{ID: "raid-1", BonusXP: 50}
	assert.Empty(t, raidAwardEvents(raid, nil))
}

func TestApplyRaidAwardsFoldsCompleterBonus(t *testing.T) {
	result := models.TaskCompleteResult{
		TaskID:    "t-1",
		XPAwarded: 30,
		TotalXP:   380,
		Level:     6,
		LeveledUp: false,
	}
	awards := []RaidAward{
		{PlayerID: "p-other", TotalXP: 900, Level: 9, LeveledUp: true},
		{PlayerID: "p-me", TotalXP: 430, Level: 6, LeveledUp: false},
	}

	applyRaidAwards(&result, "p-me", awards)

	assert.Equal(t, 430, result.TotalXP)
	assert.Equal(t, 6, result.Level)
	assert.False(t, result.LeveledUp)
}

func TestApplyRaidAwardsLevelUpFromBonus(t *testing.T) {
	result := models.TaskCompleteResult{TotalXP: 620, Level: 7, LeveledUp: false}
	awards := []RaidAward{
		{PlayerID: "p-me", TotalXP: 650, Level: 8, LeveledUp: true},
	}

	applyRaidAwards(&result, "p-me", awards)

	assert.Equal(t, 650, result.TotalXP)
	assert.Equal(t, 8, result.Level)
	assert.True(t, result.LeveledUp)
}

func TestApplyRaidAwardsKeepsTaskLevelUp(t *testing.T) {
	// A level-up earned by the task itself survives even when the raid
	// bonus alone would not have crossed the threshold.
	result := models.TaskCompleteResult{TotalXP: 160, Level: 4, LeveledUp: true}
	awards := []RaidAward{
		{PlayerID: "p-me", TotalXP: 210, Level: 4, LeveledUp: false},
	}

	applyRaidAwards(&result, "p-me", awards)

	assert.Equal(t, 210, result.TotalXP)
	assert.Equal(t, 4, result.Level)
	assert.True(t, result.LeveledUp)
}

func TestApplyRaidAwardsNoAwards(t *testing.T) {
	result := models.TaskCompleteResult{TotalXP: 100, Level: 3}
	applyRaidAwards(&result, "p-me", nil)
	assert.Equal(t, 100, result.TotalXP)
	assert.Equal(t, 3, result.Level)
}
