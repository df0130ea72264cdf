package services

import (
	"context"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/cache"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:xp"

// LeaderboardService ranks players by total XP in a Redis sorted set. The
// set is written by the leaderboard consumer on every xp_changed event and
// can be rebuilt from Postgres at any time.
type LeaderboardService struct {
	db    *data.PgDbContext
	cache *cache.RedisCache
}

func NewLeaderboardService(db *data.PgDbContext, redisCache *cache.RedisCache) *LeaderboardService {
	return &LeaderboardService{db: db, cache: redisCache}
}

// UpdateScore upserts one player's score. Member format is "id|username"
// so reads never need a DB round trip.
func (s *LeaderboardService) UpdateScore(ctx context.Context, playerID, username string, totalXP int) error {
	return s.cache.Client().ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(totalXP),
		Member: memberOf(playerID, username),
	}).Err()
}

// Top returns the highest-ranked players, rank starting at 1.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	zs, err := s.cache.Client().ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		playerID, username := splitMember(z.Member.(string))
		entries = append(entries, models.LeaderboardEntry{
			Rank:     int64(i + 1),
			PlayerID: playerID,
			Username: username,
			TotalXP:  int64(z.Score),
		})
	}

	return entries, nil
}

// Rank returns one player's position, or nil when the player is unranked.
func (s *LeaderboardService) Rank(ctx context.Context, playerID string) (*models.LeaderboardEntry, error) {
	player, err := s.getPlayerRow(ctx, playerID)
	if err != nil {
		return nil, err
	} else if player == nil {
		return nil, nil
	}

	member := memberOf(player.ID, player.Username)
	rank, err := s.cache.Client().ZRevRank(ctx, leaderboardKey, member).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	return &models.LeaderboardEntry{
		Rank:     rank + 1,
		PlayerID: player.ID,
		Username: player.Username,
		TotalXP:  int64(player.TotalXP),
	}, nil
}

// Rebuild repopulates the sorted set from Postgres. Used at startup and as
// a repair path when Redis state is lost.
func (s *LeaderboardService) Rebuild(ctx context.Context) error {
	rows, err := s.db.Query(ctx, "SELECT id, username, total_xp FROM players")
	if err != nil {
		return err
	}
	defer rows.Close()

	var zs []redis.Z
	for rows.Next() {
		var id, username string
		var totalXP int
		if err := rows.Scan(&id, &username, &totalXP); err != nil {
			return err
		}
		zs = append(zs, redis.Z{Score: float64(totalXP), Member: memberOf(id, username)})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(zs) == 0 {
		return nil
	}

	pipe := s.cache.Client().TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	pipe.ZAdd(ctx, leaderboardKey, zs...)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *LeaderboardService) getPlayerRow(ctx context.Context, playerID string) (*models.Player, error) {
	var player models.Player
	err := s.db.QueryRow(ctx,
		"SELECT id, username, total_xp FROM players WHERE id = $1", playerID).
		Scan(&player.ID, &player.Username, &player.TotalXP)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &player, nil
}

func memberOf(playerID, username string) string {
	return playerID + "|" + username
}

func splitMember(member string) (string, string) {
	for i := 0; i < len(member); i++ {
		if member[i] == '|' {
			return member[:i], member[i+1:]
		}
	}
	return member, ""
}
