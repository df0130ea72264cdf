package models

import (
	"fmt"
	"time"
)

type GuildRole string

const (
	GuildRoleLeader GuildRole = "leader"
	GuildRoleMember GuildRole = "member"
)

type Guild struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	EmblemURL   string    `json:"emblem_url,omitempty"`
	MemberCount int       `json:"member_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (g *Guild) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("guild name is required")
	}
	return nil
}

type GuildMember struct {
	GuildID  string    `json:"guild_id"`
	PlayerID string    `json:"player_id"`
	Role     GuildRole `json:"role"`
	JoinedAt time.Time `json:"joined_at"`

	Player *Player `json:"player,omitempty"`
}
