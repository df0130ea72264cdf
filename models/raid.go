package models

import (
	"fmt"
	"time"
)

type RaidStatus string

const (
	RaidStatusOpen      RaidStatus = "open"
	RaidStatusCompleted RaidStatus = "completed"
)

// Raid is a themed batch of tasks with an aggregate reward. Completing the
// last attached task completes the raid and pays BonusXP to every
// participant.
type Raid struct {
	ID          string     `json:"id"`
	GuildID     string     `json:"guild_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	BonusXP     int        `json:"bonus_xp"`
	Status      RaidStatus `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	Tasks []Task `json:"tasks,omitempty"`
}

func (r *Raid) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("raid name is required")
	}
	if r.GuildID == "" {
		return fmt.Errorf("raid guild id is required")
	}
	if r.BonusXP < 0 {
		return fmt.Errorf("raid bonus xp cannot be negative")
	}
	return nil
}
