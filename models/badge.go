package models

import "time"

// Badge is a one-time achievement flag. Criteria semantics live in the
// game engine; the model only carries the stored parameters.
type Badge struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	CriterionType string    `json:"criterion_type"`
	Threshold     int       `json:"threshold"`
	Hour          int       `json:"hour,omitempty"` // time_based criteria only
	CreatedAt     time.Time `json:"created_at"`
}

// PlayerBadge records a single unlock; the (player, badge) pair is unique.
type PlayerBadge struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	BadgeID    string    `json:"badge_id"`
	UnlockedAt time.Time `json:"unlocked_at"`

	Badge *Badge `json:"badge,omitempty"`
}
