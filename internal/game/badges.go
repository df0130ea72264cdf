package game

import (
	"fmt"
	"strings"
	"time"
)

// CriterionType is the closed set of badge unlock conditions.
type CriterionType string

const (
	CriterionTaskCount       CriterionType = "task_count"
	CriterionStreak          CriterionType = "streak"
	CriterionLevel           CriterionType = "level"
	CriterionTimeBased       CriterionType = "time_based"
	CriterionEarlyCompletion CriterionType = "early_completion"
)

func (c CriterionType) IsValid() bool {
	switch c {
	case CriterionTaskCount, CriterionStreak, CriterionLevel, CriterionTimeBased, CriterionEarlyCompletion:
		return true
	default:
		return false
	}
}

func ParseCriterionType(input string) (CriterionType, error) {
	c := CriterionType(strings.TrimSpace(strings.ToLower(input)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid badge criterion: %q", input)
	}
	return c, nil
}

// Criterion is one badge's unlock condition. Threshold carries the count
// or level for the counting variants; Hour carries the local clock hour
// for time_based.
type Criterion struct {
	Type      CriterionType
	Threshold int
	Hour      int
}

// PlayerStats is the aggregate snapshot a criterion is checked against.
// CompletedAt is the triggering completion's timestamp.
type PlayerStats struct {
	TasksCompleted   int
	StreakCount      int
	Level            int
	EarlyCompletions int
	CompletedAt      time.Time
}

// Met reports whether the criterion holds for the given stats. Checks are
// independent and side-effect-free.
func (c Criterion) Met(stats PlayerStats) bool {
	switch c.Type {
	case CriterionTaskCount:
		return stats.TasksCompleted >= c.Threshold
	case CriterionStreak:
		return stats.StreakCount >= c.Threshold
	case CriterionLevel:
		return stats.Level >= c.Threshold
	case CriterionTimeBased:
		return stats.CompletedAt.Hour() >= c.Hour
	case CriterionEarlyCompletion:
		return stats.EarlyCompletions >= c.Threshold
	default:
		return false
	}
}

// BadgeRule pairs a catalog badge with its criterion.
type BadgeRule struct {
	BadgeID   string
	Criterion Criterion
}

// EvaluateBadges returns the ids of badges newly earned by stats. Badges
// already in held are skipped, which makes re-evaluation idempotent: a
// player can hold each badge at most once.
func EvaluateBadges(stats PlayerStats, rules []BadgeRule, held map[string]struct{}) []string {
	var unlocked []string
	for _, rule := range rules {
		if _, ok := held[rule.BadgeID]; ok {
			continue
		}
		if rule.Criterion.Met(stats) {
			unlocked = append(unlocked, rule.BadgeID)
		}
	}
	return unlocked
}
