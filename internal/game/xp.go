package game

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty is the closed set of task tiers. Each tier maps to a fixed
// base XP reward.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

const (
	// EarlyCompletionXP is added when a task is finished before its due date.
	EarlyCompletionXP = 5

	// StreakBonusPerDay is the per-day streak reward. The bonus is uncapped:
	// a 100-day streak pays 500 XP per task.
	StreakBonusPerDay = 5

	// WeeklyConsistencyXP pays out once the weekly task count reaches
	// WeeklyConsistencyTarget.
	WeeklyConsistencyXP     = 20
	WeeklyConsistencyTarget = 7

	// MissedTaskXP is the flat penalty for a missed daily quest.
	MissedTaskXP = -10

	// levelDivisor is the constant in level = floor(sqrt(xp/10)).
	levelDivisor = 10
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// BaseXP returns the fixed reward tier for the difficulty.
func (d Difficulty) BaseXP() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 25
	case DifficultyHard:
		return 50
	default:
		return 0
	}
}

func ParseDifficulty(input string) (Difficulty, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("invalid difficulty: %q", input)
	}
}

// TaskXP computes the reward for one completion. No clamping; callers own
// input validation.
func TaskXP(baseDifficultyXP, streakBonus int, earlyCompletion bool) int {
	xp := baseDifficultyXP + streakBonus
	if earlyCompletion {
		xp += EarlyCompletionXP
	}
	return xp
}

// StreakBonus is linear and uncapped.
func StreakBonus(streakCount int) int {
	return streakCount * StreakBonusPerDay
}

// WeeklyConsistencyBonus is a single-threshold step function.
func WeeklyConsistencyBonus(tasksThisWeek int) int {
	if tasksThisWeek >= WeeklyConsistencyTarget {
		return WeeklyConsistencyXP
	}
	return 0
}

// MissedTaskPenalty is applied once per missed task event; the caller
// decides when a task counts as missed.
func MissedTaskPenalty() int {
	return MissedTaskXP
}

// LevelFromXP derives the level from cumulative XP. Negative XP is floored
// to zero before the formula and the result never drops below 1.
func LevelFromXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := int(math.Sqrt(float64(totalXP) / levelDivisor))
	if level < 1 {
		return 1
	}
	return level
}

// XPForNextLevel returns the cumulative XP threshold for the next level,
// not the remaining distance from the current total.
func XPForNextLevel(currentLevel int) int {
	next := currentLevel + 1
	return next * next * levelDivisor
}

// DidLevelUp compares two independent level computations, so it is safe to
// call with arbitrary, even decreasing, XP pairs.
func DidLevelUp(oldXP, newXP int) bool {
	return LevelFromXP(newXP) > LevelFromXP(oldXP)
}
