package models

import (
	"fmt"
	"time"
)

// DailyQuest is a recurring, date-scoped target. Global quests (empty
// PlayerID) apply to every player.
type DailyQuest struct {
	ID          string    `json:"id"`
	PlayerID    *string   `json:"player_id,omitempty"`
	Title       string    `json:"title"`
	TargetCount int       `json:"target_count"`
	Unit        string    `json:"unit"`
	Difficulty  int       `json:"difficulty"` // 1-5
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (q *DailyQuest) Validate() error {
	if q.Title == "" {
		return fmt.Errorf("quest title is required")
	}
	if q.TargetCount <= 0 {
		return fmt.Errorf("quest target count must be positive")
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return fmt.Errorf("quest difficulty must be between 1 and 5")
	}
	return nil
}

// DailyQuestLog is the per-day progress row; at most one per
// (quest, player, date).
type DailyQuestLog struct {
	ID           string     `json:"id"`
	QuestID      string     `json:"quest_id"`
	PlayerID     string     `json:"player_id"`
	Date         time.Time  `json:"date"` // UTC calendar date, midnight
	CurrentCount int        `json:"current_count"`
	IsCompleted  bool       `json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Penalized    bool       `json:"-"`

	Quest *DailyQuest `json:"quest,omitempty"`
}

// QuestDayStatus aggregates today's logs for one player.
type QuestDayStatus struct {
	TotalQuests     int  `json:"total_quests"`
	CompletedQuests int  `json:"completed_quests"`
	IsAllCompleted  bool `json:"is_all_completed"`
	HasPenalty      bool `json:"has_penalty"`
}
