package services

import (
	"context"
	"errors"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrGuildNotFound     = errors.New("guild not found")
	ErrAlreadyInGuild    = errors.New("player is already in a guild")
	ErrNotInGuild        = errors.New("player is not in this guild")
	ErrLeaderCannotLeave = errors.New("guild leader cannot leave while members remain")
)

type GuildService struct {
	db *data.PgDbContext
}

func NewGuildService(db *data.PgDbContext) *GuildService {
	return &GuildService{db: db}
}

// CreateGuild creates the guild and enrolls the creator as leader in one
// transaction.
func (s *GuildService) CreateGuild(ctx context.Context, playerID string, guild *models.Guild) error {
	if err := guild.Validate(); err != nil {
		return err
	}

	guild.ID = uuid.New().String()
	guild.CreatedAt = time.Now()

	return s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		var existing *string
		if err := tx.QueryRow(ctx, "SELECT guild_id FROM players WHERE id = $1 FOR UPDATE", playerID).Scan(&existing); err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyInGuild
		}

		query := `
			INSERT INTO guilds (id, name, description, emblem_url, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, query, guild.ID, guild.Name, guild.Description, guild.EmblemURL, guild.CreatedAt); err != nil {
			return err
		}

		return s.addMember(ctx, tx, guild.ID, playerID, models.GuildRoleLeader)
	})
}

func (s *GuildService) JoinGuild(ctx context.Context, playerID, guildID string) error {
	return s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		var existing *string
		if err := tx.QueryRow(ctx, "SELECT guild_id FROM players WHERE id = $1 FOR UPDATE", playerID).Scan(&existing); err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyInGuild
		}

		var found bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM guilds WHERE id = $1)", guildID).Scan(&found); err != nil {
			return err
		}
		if !found {
			return ErrGuildNotFound
		}

		return s.addMember(ctx, tx, guildID, playerID, models.GuildRoleMember)
	})
}

// LeaveGuild removes the player. The leader can only leave an otherwise
// empty guild, which is then deleted.
func (s *GuildService) LeaveGuild(ctx context.Context, playerID, guildID string) error {
	return s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		var role models.GuildRole
		err := tx.QueryRow(ctx,
			"SELECT role FROM guild_members WHERE guild_id = $1 AND player_id = $2 FOR UPDATE",
			guildID, playerID).Scan(&role)
		if err != nil {
			if err == pgx.ErrNoRows {
				return ErrNotInGuild
			}
			return err
		}

		var members int
		if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM guild_members WHERE guild_id = $1", guildID).Scan(&members); err != nil {
			return err
		}
		if role == models.GuildRoleLeader && members > 1 {
			return ErrLeaderCannotLeave
		}

		if _, err := tx.Exec(ctx,
			"DELETE FROM guild_members WHERE guild_id = $1 AND player_id = $2", guildID, playerID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			"UPDATE players SET guild_id = NULL WHERE id = $1", playerID); err != nil {
			return err
		}

		if members == 1 {
			if _, err := tx.Exec(ctx, "DELETE FROM guilds WHERE id = $1", guildID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GuildService) GetGuild(ctx context.Context, guildID string) (*models.Guild, error) {
	query := `
		SELECT g.id, g.name, g.description, g.emblem_url, g.created_at, COUNT(m.player_id)
		FROM guilds g
		LEFT JOIN guild_members m ON m.guild_id = g.id
		WHERE g.id = $1
		GROUP BY g.id
	`

	var guild models.Guild
	err := s.db.QueryRow(ctx, query, guildID).Scan(&guild.ID, &guild.Name, &guild.Description,
		&guild.EmblemURL, &guild.CreatedAt, &guild.MemberCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &guild, nil
}

func (s *GuildService) GetMembers(ctx context.Context, guildID string) ([]models.GuildMember, error) {
	query := `
		SELECT m.guild_id, m.player_id, m.role, m.joined_at,
		       p.id, p.username, p.total_xp, p.level, p.streak_count
		FROM guild_members m
		JOIN players p ON p.id = m.player_id
		WHERE m.guild_id = $1
		ORDER BY m.joined_at
	`

	rows, err := s.db.Query(ctx, query, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.GuildMember
	for rows.Next() {
		var m models.GuildMember
		var p models.Player
		if err := rows.Scan(&m.GuildID, &m.PlayerID, &m.Role, &m.JoinedAt,
			&p.ID, &p.Username, &p.TotalXP, &p.Level, &p.StreakCount); err != nil {
			return nil, err
		}
		m.Player = &p
		members = append(members, m)
	}

	return members, rows.Err()
}

// ListGuilds pages through the guild directory, newest first.
func (s *GuildService) ListGuilds(ctx context.Context, page, take int) (*data.PagingModel[models.Guild], error) {
	if page < 1 {
		page = 1
	}
	if take < 1 || take > 100 {
		take = 20
	}

	var total int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM guilds").Scan(&total); err != nil {
		return nil, err
	}

	query := `
		SELECT g.id, g.name, g.description, g.emblem_url, g.created_at, COUNT(m.player_id)
		FROM guilds g
		LEFT JOIN guild_members m ON m.guild_id = g.id
		GROUP BY g.id
		ORDER BY g.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.Query(ctx, query, take, (page-1)*take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guilds []models.Guild
	for rows.Next() {
		var g models.Guild
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.EmblemURL, &g.CreatedAt, &g.MemberCount); err != nil {
			return nil, err
		}
		guilds = append(guilds, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPage := (total + take - 1) / take
	return &data.PagingModel[models.Guild]{
		TotalPage:   totalPage,
		CurrentPage: page,
		Take:        take,
		TotalCount:  total,
		Data:        guilds,
	}, nil
}

func (s *GuildService) addMember(ctx context.Context, tx data.QueryRunner, guildID, playerID string, role models.GuildRole) error {
	if _, err := tx.Exec(ctx,
		"INSERT INTO guild_members (guild_id, player_id, role, joined_at) VALUES ($1, $2, $3, $4)",
		guildID, playerID, role, time.Now()); err != nil {
		return err
	}

	_, err := tx.Exec(ctx, "UPDATE players SET guild_id = $1 WHERE id = $2", guildID, playerID)
	return err
}
