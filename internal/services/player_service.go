package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/game"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/jackc/pgx/v5"
)

type PlayerService struct {
	db *data.PgDbContext
}

func NewPlayerService(db *data.PgDbContext) *PlayerService {
	return &PlayerService{db: db}
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, id string) (*models.Player, error) {
	if id == "" {
		return nil, fmt.Errorf("player id is required")
	}

	var query = `
		SELECT id, user_id, username, profile_pic_url, total_xp, level, streak_count, last_active_date, coins, guild_id
		FROM players
		WHERE id = $1
	`

	var player models.Player
	err := s.db.QueryRow(ctx, query, id).Scan(&player.ID, &player.UserID, &player.Username, &player.ProfilePicURL,
		&player.TotalXP, &player.Level, &player.StreakCount, &player.LastActiveDate, &player.Coins, &player.GuildID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &player, nil
}

// GetProgress returns the engine-facing snapshot, including the cumulative
// XP threshold for the next level.
func (s *PlayerService) GetProgress(ctx context.Context, playerID string) (*models.PlayerProgress, error) {
	player, err := s.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	} else if player == nil {
		return nil, fmt.Errorf("player not found")
	}

	return &models.PlayerProgress{
		TotalXP:        player.TotalXP,
		Level:          player.Level,
		XPForNextLevel: game.XPForNextLevel(player.Level),
		StreakCount:    player.StreakCount,
		LastActiveDate: player.LastActiveDate,
		Coins:          player.Coins,
	}, nil
}

// GetCalendar returns the dense per-day completion counts for the heatmap
// over [from, to], both clamped to UTC calendar dates.
func (s *PlayerService) GetCalendar(ctx context.Context, playerID string, from, to time.Time) ([]models.HeatmapEntry, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid date range")
	}

	var query = `
		SELECT date_trunc('day', completed_at AT TIME ZONE 'UTC')::date, COUNT(*)
		FROM task_completions
		WHERE player_id = $1 AND completed_at >= $2 AND completed_at < $3
		GROUP BY 1
	`

	rows, err := s.db.Query(ctx, query, playerID, game.DateOf(from), game.DateOf(to).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[time.Time]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[game.DateOf(day)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	days := game.BuildHeatmap(from, to, counts)
	entries := make([]models.HeatmapEntry, 0, len(days))
	for _, d := range days {
		entries = append(entries, models.HeatmapEntry{Date: d.Date, TaskCount: d.TaskCount})
	}

	return entries, nil
}

// AdjustXP applies an engine-computed XP delta and keeps the stored level
// consistent with the derived formula. Total XP never drops below zero.
func (s *PlayerService) AdjustXP(ctx context.Context, qr data.QueryRunner, playerID string, delta int) (int, int, error) {
	var totalXP int
	err := qr.QueryRow(ctx,
		"UPDATE players SET total_xp = GREATEST(0, total_xp + $1) WHERE id = $2 RETURNING total_xp",
		delta, playerID).Scan(&totalXP)
	if err != nil {
		return 0, 0, err
	}

	level := game.LevelFromXP(totalXP)
	if _, err := qr.Exec(ctx, "UPDATE players SET level = $1 WHERE id = $2", level, playerID); err != nil {
		return 0, 0, err
	}

	return totalXP, level, nil
}

func (s *PlayerService) IncrementCoins(ctx context.Context, qr data.QueryRunner, playerID string, amount int64) (int64, error) {
	var coins int64
	err := qr.QueryRow(ctx,
		"UPDATE players SET coins = coins + $1 WHERE id = $2 RETURNING coins",
		amount, playerID).Scan(&coins)
	if err != nil {
		return 0, err
	}

	return coins, nil
}
