package models

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusArchived  TaskStatus = "archived"
)

type Task struct {
	ID          string     `json:"id"`
	PlayerID    string     `json:"player_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  string     `json:"difficulty"` // easy | medium | hard, parsed by the engine
	Status      TaskStatus `json:"status"`
	RaidID      *string    `json:"raid_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.Difficulty == "" {
		return fmt.Errorf("task difficulty is required")
	}
	return nil
}

// TaskCompletion is one row of the completion log. It feeds the streak
// heatmap and the lifetime counters the badge evaluator reads.
type TaskCompletion struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	PlayerID    string    `json:"player_id"`
	XPAwarded   int       `json:"xp_awarded"`
	Early       bool      `json:"early"`
	CompletedAt time.Time `json:"completed_at"`
}

// TaskCompleteResult is what the complete-task operation returns to the client.
type TaskCompleteResult struct {
	TaskID       string  `json:"task_id"`
	XPAwarded    int     `json:"xp_awarded"`
	WeeklyBonus  int     `json:"weekly_bonus,omitempty"`
	CoinsAwarded int64   `json:"coins_awarded"`
	TotalXP      int     `json:"total_xp"`
	Level        int     `json:"level"`
	LeveledUp    bool    `json:"leveled_up"`
	StreakCount  int     `json:"streak_count"`
	NewBadges    []Badge `json:"new_badges,omitempty"`
	RaidID       *string `json:"raid_id,omitempty"`
	RaidDone     bool    `json:"raid_done,omitempty"`
}

// HeatmapEntry is one day of the streak calendar.
type HeatmapEntry struct {
	Date      time.Time `json:"date"`
	TaskCount int       `json:"task_count"`
}
