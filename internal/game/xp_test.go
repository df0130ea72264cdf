package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskXP(t *testing.T) {
	assert.Equal(t, 10, TaskXP(10, 0, false))
	assert.Equal(t, 35, TaskXP(25, 10, false))
	assert.Equal(t, 40, TaskXP(25, 10, true))
	assert.Equal(t, 55, TaskXP(50, 0, true))
}

func TestStreakBonusIsLinearAndUncapped(t *testing.T) {
	assert.Equal(t, 0, StreakBonus(0))
	assert.Equal(t, 5, StreakBonus(1))
	assert.Equal(t, 50, StreakBonus(10))
	// No cap: long streaks keep paying out linearly.
	assert.Equal(t, 5000, StreakBonus(1000))
}

func TestWeeklyConsistencyBonus(t *testing.T) {
	assert.Equal(t, 0, WeeklyConsistencyBonus(0))
	assert.Equal(t, 0, WeeklyConsistencyBonus(6))
	assert.Equal(t, 20, WeeklyConsistencyBonus(7))
	assert.Equal(t, 20, WeeklyConsistencyBonus(100))
}

func TestMissedTaskPenalty(t *testing.T) {
	assert.Equal(t, -10, MissedTaskPenalty())
}

func TestLevelFromXP(t *testing.T) {
	assert.Equal(t, 1, LevelFromXP(0))
	assert.Equal(t, 1, LevelFromXP(10))
	assert.Equal(t, 1, LevelFromXP(39))
	assert.Equal(t, 2, LevelFromXP(40))
	assert.Equal(t, 2, LevelFromXP(89))
	assert.Equal(t, 3, LevelFromXP(90))
	// Negative XP is floored to zero before the formula.
	assert.Equal(t, 1, LevelFromXP(-50))
}

func TestLevelBoundaryAtSquares(t *testing.T) {
	// At xp = k^2 * 10 the level is exactly k; one point below it is k-1.
	// Below the first square the clamp keeps the level at 1.
	assert.Equal(t, 1, LevelFromXP(10-1))

	for k := 2; k <= 50; k++ {
		xp := k * k * 10
		assert.Equalf(t, k, LevelFromXP(xp), "xp=%d", xp)
		assert.Equalf(t, k-1, LevelFromXP(xp-1), "xp=%d", xp-1)
	}
}

func TestXPForNextLevel(t *testing.T) {
	assert.Equal(t, 40, XPForNextLevel(1))
	assert.Equal(t, 90, XPForNextLevel(2))
	assert.Equal(t, 160, XPForNextLevel(3))

	// The threshold is cumulative: reaching it yields exactly the next level.
	for level := 1; level <= 30; level++ {
		assert.Equal(t, level+1, LevelFromXP(XPForNextLevel(level)))
	}
}

func TestDidLevelUp(t *testing.T) {
	assert.False(t, DidLevelUp(0, 39))
	assert.True(t, DidLevelUp(39, 40))
	assert.False(t, DidLevelUp(40, 41))
	// Safe with decreasing pairs.
	assert.False(t, DidLevelUp(100, 50))
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("easy")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, d)
	assert.Equal(t, 10, d.BaseXP())

	d, err = ParseDifficulty(" Medium ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyMedium, d)
	assert.Equal(t, 25, d.BaseXP())

	d, err = ParseDifficulty("HARD")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)
	assert.Equal(t, 50, d.BaseXP())

	_, err = ParseDifficulty("epic")
	assert.Error(t, err)
}
