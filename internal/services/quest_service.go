package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/cache"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/game"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrQuestNotFound = errors.New("quest not found")
	ErrQuestCooldown = errors.New("quest progress cooldown active")
)

const questCooldown = 30 * time.Second

// QuestService owns daily quests and their per-day progress logs. Progress
// writes are throttled per (player, quest) with a short Redis cooldown so a
// client cannot spam the endpoint.
type QuestService struct {
	db            *data.PgDbContext
	cache         *cache.RedisCache
	playerService *PlayerService
	publisher     EventPublisher
}

func NewQuestService(db *data.PgDbContext, redisCache *cache.RedisCache, playerService *PlayerService, publisher EventPublisher) *QuestService {
	return &QuestService{
		db:            db,
		cache:         redisCache,
		playerService: playerService,
		publisher:     publisher,
	}
}

func (s *QuestService) CreateQuest(ctx context.Context, quest *models.DailyQuest) error {
	if err := quest.Validate(); err != nil {
		return err
	}

	quest.ID = uuid.New().String()
	quest.IsActive = true
	quest.CreatedAt = time.Now()

	query := `
		INSERT INTO daily_quests (id, player_id, title, target_count, unit, difficulty, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query, quest.ID, quest.PlayerID, quest.Title, quest.TargetCount,
		quest.Unit, quest.Difficulty, quest.IsActive, quest.CreatedAt)
	return err
}

// ListQuests returns the active quests visible to a player: global ones
// plus the player's own.
func (s *QuestService) ListQuests(ctx context.Context, playerID string) ([]models.DailyQuest, error) {
	query := `
		SELECT id, player_id, title, target_count, unit, difficulty, is_active, created_at
		FROM daily_quests
		WHERE is_active AND (player_id IS NULL OR player_id = $1)
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quests []models.DailyQuest
	for rows.Next() {
		var q models.DailyQuest
		if err := rows.Scan(&q.ID, &q.PlayerID, &q.Title, &q.TargetCount, &q.Unit, &q.Difficulty, &q.IsActive, &q.CreatedAt); err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}

	return quests, rows.Err()
}

func (s *QuestService) DeactivateQuest(ctx context.Context, playerID, questID string) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE daily_quests SET is_active = false WHERE id = $1 AND player_id = $2",
		questID, playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuestNotFound
	}

	return nil
}

// LogProgress upserts today's count for one quest. The count is absolute
// and monotonic; completion is stamped once and never reverts.
func (s *QuestService) LogProgress(ctx context.Context, playerID, questID string, count int, now time.Time) (*models.DailyQuestLog, error) {
	quest, err := s.getQuest(ctx, playerID, questID)
	if err != nil {
		return nil, err
	} else if quest == nil {
		return nil, ErrQuestNotFound
	}

	cooldownKey := fmt.Sprintf("quest_cooldown:%s:%s", playerID, questID)
	ok, err := s.cache.SetNX(cooldownKey, now.Unix(), questCooldown)
	if err != nil {
		utils.Logger.Warn("Quest cooldown check failed, allowing progress",
			utils.Logger.String("player_id", playerID),
			utils.Logger.String("error", err.Error()),
		)
	} else if !ok {
		return nil, ErrQuestCooldown
	}

	today := game.DateOf(now)
	var log models.DailyQuestLog
	var completedNow bool

	err = s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		existing, err := s.lockLog(ctx, tx, questID, playerID, today)
		if err != nil {
			return err
		}

		progress := game.QuestProgress{}
		if existing != nil {
			progress = game.QuestProgress{
				CurrentCount: existing.CurrentCount,
				IsCompleted:  existing.IsCompleted,
				CompletedAt:  existing.CompletedAt,
			}
		}

		wasCompleted := progress.IsCompleted
		progress = game.ApplyProgress(progress, count, quest.TargetCount, now)
		completedNow = progress.IsCompleted && !wasCompleted

		if existing == nil {
			log = models.DailyQuestLog{
				ID:           uuid.New().String(),
				QuestID:      questID,
				PlayerID:     playerID,
				Date:         today,
				CurrentCount: progress.CurrentCount,
				IsCompleted:  progress.IsCompleted,
				CompletedAt:  progress.CompletedAt,
			}

			query := `
				INSERT INTO daily_quest_logs (id, quest_id, player_id, date, current_count, is_completed, completed_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`
			_, err = tx.Exec(ctx, query, log.ID, log.QuestID, log.PlayerID, log.Date,
				log.CurrentCount, log.IsCompleted, log.CompletedAt)
			return err
		}

		log = *existing
		log.CurrentCount = progress.CurrentCount
		log.IsCompleted = progress.IsCompleted
		log.CompletedAt = progress.CompletedAt

		_, err = tx.Exec(ctx,
			"UPDATE daily_quest_logs SET current_count = $1, is_completed = $2, completed_at = $3 WHERE id = $4",
			log.CurrentCount, log.IsCompleted, log.CompletedAt, log.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if completedNow {
		publishOrLog(s.publisher, &models.EconomyEvent{
			Type:     models.EventQuestCompleted,
			PlayerID: playerID,
			QuestID:  questID,
		})
	}

	log.Quest = quest
	return &log, nil
}

// TodayStatus aggregates the player's quest day, flagging whether yesterday
// left an applied penalty.
func (s *QuestService) TodayStatus(ctx context.Context, playerID string, now time.Time) (*models.QuestDayStatus, error) {
	quests, err := s.ListQuests(ctx, playerID)
	if err != nil {
		return nil, err
	}

	today := game.DateOf(now)
	rows, err := s.db.Query(ctx,
		"SELECT current_count, is_completed, completed_at FROM daily_quest_logs WHERE player_id = $1 AND date = $2",
		playerID, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []game.QuestProgress
	for rows.Next() {
		var p game.QuestProgress
		if err := rows.Scan(&p.CurrentCount, &p.IsCompleted, &p.CompletedAt); err != nil {
			return nil, err
		}
		logs = append(logs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	yesterday := today.AddDate(0, 0, -1)
	var penalized bool
	err = s.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM daily_quest_logs WHERE player_id = $1 AND date = $2 AND penalized)",
		playerID, yesterday).Scan(&penalized)
	if err != nil {
		return nil, err
	}

	status := game.SummarizeDay(logs, len(quests), penalized)
	return &models.QuestDayStatus{
		TotalQuests:     status.TotalQuests,
		CompletedQuests: status.CompletedQuests,
		IsAllCompleted:  status.IsAllCompleted,
		HasPenalty:      status.HasPenalty,
	}, nil
}

// ResetDaily runs at UTC midnight. For every active quest a player had
// yesterday and did not complete, it applies the missed-task penalty once,
// marking the log penalized (creating the row when the player never logged
// at all). Re-running the job is harmless.
func (s *QuestService) ResetDaily(ctx context.Context, now time.Time) error {
	yesterday := game.DateOf(now).AddDate(0, 0, -1)

	// Players with any activity yesterday or an assigned personal quest.
	query := `
		SELECT q.id, q.target_count, p.id
		FROM daily_quests q
		JOIN players p ON q.player_id IS NULL OR q.player_id = p.id
		WHERE q.is_active
		  AND p.last_active_date IS NOT NULL AND p.last_active_date >= $1 - interval '7 days'
	`

	rows, err := s.db.Query(ctx, query, yesterday)
	if err != nil {
		return err
	}

	type pair struct {
		questID  string
		playerID string
	}
	var pairs []pair
	for rows.Next() {
		var p pair
		var target int
		if err := rows.Scan(&p.questID, &target, &p.playerID); err != nil {
			rows.Close()
			return err
		}
		pairs = append(pairs, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	penalized := 0
	for _, p := range pairs {
		applied, err := s.penalizeMissed(ctx, p.questID, p.playerID, yesterday)
		if err != nil {
			utils.Logger.Error("Failed to apply quest penalty",
				utils.Logger.String("quest_id", p.questID),
				utils.Logger.String("player_id", p.playerID),
				utils.Logger.String("error", err.Error()),
			)
			continue
		}
		if applied {
			penalized++
		}
	}

	utils.Logger.Info("Daily quest reset finished",
		utils.Logger.String("date", yesterday.Format("2006-01-02")),
		utils.Logger.Int("pairs", len(pairs)),
		utils.Logger.Int("penalized", penalized),
	)
	return nil
}

func (s *QuestService) penalizeMissed(ctx context.Context, questID, playerID string, date time.Time) (bool, error) {
	applied := false

	err := s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		log, err := s.lockLog(ctx, tx, questID, playerID, date)
		if err != nil {
			return err
		}

		if log == nil {
			// Never logged: create the day's row already penalized.
			query := `
				INSERT INTO daily_quest_logs (id, quest_id, player_id, date, current_count, is_completed, penalized)
				VALUES ($1, $2, $3, $4, 0, false, true)
				ON CONFLICT (quest_id, player_id, date) DO NOTHING
			`
			tag, err := tx.Exec(ctx, query, uuid.New().String(), questID, playerID, date)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return nil
			}
		} else {
			if log.IsCompleted || log.Penalized {
				return nil
			}
			if _, err := tx.Exec(ctx,
				"UPDATE daily_quest_logs SET penalized = true WHERE id = $1", log.ID); err != nil {
				return err
			}
		}

		if _, _, err := s.playerService.AdjustXP(ctx, tx, playerID, game.MissedTaskPenalty()); err != nil {
			return err
		}

		applied = true
		return nil
	})

	return applied, err
}

func (s *QuestService) getQuest(ctx context.Context, playerID, questID string) (*models.DailyQuest, error) {
	query := `
		SELECT id, player_id, title, target_count, unit, difficulty, is_active, created_at
		FROM daily_quests
		WHERE id = $1 AND is_active AND (player_id IS NULL OR player_id = $2)
	`

	var q models.DailyQuest
	err := s.db.QueryRow(ctx, query, questID, playerID).Scan(&q.ID, &q.PlayerID, &q.Title,
		&q.TargetCount, &q.Unit, &q.Difficulty, &q.IsActive, &q.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &q, nil
}

func (s *QuestService) lockLog(ctx context.Context, tx data.QueryRunner, questID, playerID string, date time.Time) (*models.DailyQuestLog, error) {
	query := `
		SELECT id, quest_id, player_id, date, current_count, is_completed, completed_at, penalized
		FROM daily_quest_logs
		WHERE quest_id = $1 AND player_id = $2 AND date = $3
		FOR UPDATE
	`

	var log models.DailyQuestLog
	err := tx.QueryRow(ctx, query, questID, playerID, date).Scan(&log.ID, &log.QuestID, &log.PlayerID,
		&log.Date, &log.CurrentCount, &log.IsCompleted, &log.CompletedAt, &log.Penalized)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &log, nil
}
