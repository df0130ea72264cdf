package models

import "time"

type EconomyEventType string

const (
	EventXPChanged      EconomyEventType = "xp_changed"
	EventLevelUp        EconomyEventType = "level_up"
	EventBadgeUnlocked  EconomyEventType = "badge_unlocked"
	EventQuestCompleted EconomyEventType = "quest_completed"
	EventRaidCompleted  EconomyEventType = "raid_completed"
)

// EconomyEvent is the payload broadcast on the notification channel after
// an engine operation. Delivery is best-effort; the API never blocks on it.
type EconomyEvent struct {
	Type      EconomyEventType `json:"type"`
	PlayerID  string           `json:"player_id"`
	Username  string           `json:"username,omitempty"`
	XPDelta   int              `json:"xp_delta,omitempty"`
	TotalXP   int              `json:"total_xp,omitempty"`
	Level     int              `json:"level,omitempty"`
	BadgeID   string           `json:"badge_id,omitempty"`
	BadgeName string           `json:"badge_name,omitempty"`
	QuestID   string           `json:"quest_id,omitempty"`
	RaidID    string           `json:"raid_id,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Notification is the persisted copy written by the consumer workers.
type Notification struct {
	ID        string           `json:"id"`
	PlayerID  string           `json:"player_id"`
	Type      EconomyEventType `json:"type"`
	Payload   EconomyEvent     `json:"payload"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// LeaderboardEntry is one ranked row, score kept in the Redis sorted set.
type LeaderboardEntry struct {
	Rank     int64  `json:"rank"`
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	TotalXP  int64  `json:"total_xp"`
}
