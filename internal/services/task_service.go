package services

import (
	"context"
	"errors"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/game"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskNotOwned         = errors.New("task does not belong to player")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
)

type TaskService struct {
	db            *data.PgDbContext
	playerService *PlayerService
	badgeService  *BadgeService
	raidService   *RaidService
	publisher     EventPublisher
}

func NewTaskService(db *data.PgDbContext, playerService *PlayerService, badgeService *BadgeService, raidService *RaidService, publisher EventPublisher) *TaskService {
	return &TaskService{
		db:            db,
		playerService: playerService,
		badgeService:  badgeService,
		raidService:   raidService,
		publisher:     publisher,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if _, err := game.ParseDifficulty(task.Difficulty); err != nil {
		return err
	}

	task.ID = uuid.New().String()
	task.Status = models.TaskStatusPending
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	query := `
		INSERT INTO tasks (id, player_id, title, description, difficulty, status, raid_id, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(ctx, query, task.ID, task.PlayerID, task.Title, task.Description,
		task.Difficulty, task.Status, task.RaidID, task.DueDate, task.CreatedAt, task.UpdatedAt)
	return err
}

func (s *TaskService) UpdateTask(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if _, err := game.ParseDifficulty(task.Difficulty); err != nil {
		return err
	}

	task.UpdatedAt = time.Now()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, difficulty = $3, due_date = $4, updated_at = $5
		WHERE id = $6 AND player_id = $7 AND status = 'pending'
	`

	tag, err := s.db.Exec(ctx, query, task.Title, task.Description, task.Difficulty,
		task.DueDate, task.UpdatedAt, task.ID, task.PlayerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (s *TaskService) GetTask(ctx context.Context, playerID, taskID string) (*models.Task, error) {
	query := `
		SELECT id, player_id, title, description, difficulty, status, raid_id, due_date, completed_at, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	var task models.Task
	err := s.db.QueryRow(ctx, query, taskID).Scan(&task.ID, &task.PlayerID, &task.Title, &task.Description,
		&task.Difficulty, &task.Status, &task.RaidID, &task.DueDate, &task.CompletedAt, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if task.PlayerID != playerID {
		return nil, ErrTaskNotOwned
	}

	return &task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, playerID string, status models.TaskStatus) ([]models.Task, error) {
	query := `
		SELECT id, player_id, title, description, difficulty, status, raid_id, due_date, completed_at, created_at, updated_at
		FROM tasks
		WHERE player_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, playerID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.PlayerID, &task.Title, &task.Description, &task.Difficulty,
			&task.Status, &task.RaidID, &task.DueDate, &task.CompletedAt, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (s *TaskService) ArchiveTask(ctx context.Context, playerID, taskID string) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE tasks SET status = 'archived', updated_at = $1 WHERE id = $2 AND player_id = $3 AND status = 'pending'",
		time.Now(), taskID, playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// CompleteTask runs the single logical game-economy operation for one user
// action: advance the streak, price the completion, apply the XP delta,
// detect the level-up against the pre-mutation total, evaluate badges, and
// check the surrounding raid. Everything reads and writes inside one
// transaction; events go out only after commit.
func (s *TaskService) CompleteTask(ctx context.Context, playerID, taskID string, now time.Time) (*models.TaskCompleteResult, error) {
	var result models.TaskCompleteResult
	var events []*models.EconomyEvent

	err := s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		task, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if task.PlayerID != playerID {
			return ErrTaskNotOwned
		}
		if task.Status == models.TaskStatusCompleted {
			return ErrTaskAlreadyCompleted
		}

		player, err := s.lockPlayer(ctx, tx, playerID)
		if err != nil {
			return err
		}

		difficulty, err := game.ParseDifficulty(task.Difficulty)
		if err != nil {
			return err
		}

		newStreak := game.AdvanceStreak(player.StreakCount, player.LastActiveDate, now)
		early := task.DueDate != nil && now.Before(*task.DueDate)
		xp := game.TaskXP(difficulty.BaseXP(), game.StreakBonus(newStreak), early)

		// Weekly consistency pays out exactly once, on the completion that
		// crosses the threshold.
		weekCount, err := s.countCompletionsThisWeek(ctx, tx, playerID, now)
		if err != nil {
			return err
		}
		weekly := 0
		if weekCount+1 == game.WeeklyConsistencyTarget {
			weekly = game.WeeklyConsistencyBonus(weekCount + 1)
		}

		oldXP := player.TotalXP
		newXP := oldXP + xp + weekly
		leveledUp := game.DidLevelUp(oldXP, newXP)
		newLevel := game.LevelFromXP(newXP)
		coins := int64(xp / 5)

		today := game.DateOf(now)
		query := `
			UPDATE players
			SET total_xp = $1, level = $2, streak_count = $3, last_active_date = $4, coins = coins + $5
			WHERE id = $6
		`
		if _, err := tx.Exec(ctx, query, newXP, newLevel, newStreak, today, coins, playerID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			"UPDATE tasks SET status = 'completed', completed_at = $1, updated_at = $1 WHERE id = $2",
			now, task.ID); err != nil {
			return err
		}

		completionQuery := `
			INSERT INTO task_completions (id, task_id, player_id, xp_awarded, early, completed_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := tx.Exec(ctx, completionQuery, uuid.New().String(), task.ID, playerID, xp+weekly, early, now); err != nil {
			return err
		}

		newBadges, err := s.evaluateBadges(ctx, tx, playerID, newStreak, newLevel, now)
		if err != nil {
			return err
		}

		raid, raidDone, awards, err := s.raidService.OnTaskCompleted(ctx, tx, task, now)
		if err != nil {
			return err
		}

		result = models.TaskCompleteResult{
			TaskID:       task.ID,
			XPAwarded:    xp,
			WeeklyBonus:  weekly,
			CoinsAwarded: coins,
			TotalXP:      newXP,
			Level:        newLevel,
			LeveledUp:    leveledUp,
			StreakCount:  newStreak,
			NewBadges:    newBadges,
			RaidID:       task.RaidID,
			RaidDone:     raidDone,
		}

		// The completing player is always a raid participant, so fold their
		// bonus into the response.
		applyRaidAwards(&result, playerID, awards)

		events = append(events, &models.EconomyEvent{
			Type:     models.EventXPChanged,
			PlayerID: playerID,
			Username: player.Username,
			XPDelta:  xp + weekly,
			TotalXP:  newXP,
			Level:    newLevel,
		})
		if leveledUp {
			events = append(events, &models.EconomyEvent{
				Type:     models.EventLevelUp,
				PlayerID: playerID,
				Username: player.Username,
				TotalXP:  newXP,
				Level:    newLevel,
			})
		}
		for _, badge := range newBadges {
			events = append(events, &models.EconomyEvent{
				Type:      models.EventBadgeUnlocked,
				PlayerID:  playerID,
				Username:  player.Username,
				BadgeID:   badge.ID,
				BadgeName: badge.Name,
			})
		}
		if raidDone {
			events = append(events, &models.EconomyEvent{
				Type:     models.EventRaidCompleted,
				PlayerID: playerID,
				Username: player.Username,
				RaidID:   raid.ID,
				XPDelta:  raid.BonusXP,
			})
			events = append(events, raidAwardEvents(raid, awards)...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, event := range events {
		publishOrLog(s.publisher, event)
	}

	return &result, nil
}

func (s *TaskService) lockTask(ctx context.Context, tx data.QueryRunner, taskID string) (*models.Task, error) {
	query := `
		SELECT id, player_id, title, description, difficulty, status, raid_id, due_date, completed_at, created_at, updated_at
		FROM tasks
		WHERE id = $1
		FOR UPDATE
	`

	var task models.Task
	err := tx.QueryRow(ctx, query, taskID).Scan(&task.ID, &task.PlayerID, &task.Title, &task.Description,
		&task.Difficulty, &task.Status, &task.RaidID, &task.DueDate, &task.CompletedAt, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) lockPlayer(ctx context.Context, tx data.QueryRunner, playerID string) (*models.Player, error) {
	query := `
		SELECT id, username, total_xp, level, streak_count, last_active_date, coins
		FROM players
		WHERE id = $1
		FOR UPDATE
	`

	var player models.Player
	err := tx.QueryRow(ctx, query, playerID).Scan(&player.ID, &player.Username, &player.TotalXP,
		&player.Level, &player.StreakCount, &player.LastActiveDate, &player.Coins)
	if err != nil {
		return nil, err
	}

	return &player, nil
}

func (s *TaskService) countCompletionsThisWeek(ctx context.Context, tx data.QueryRunner, playerID string, now time.Time) (int, error) {
	var count int
	err := tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM task_completions WHERE player_id = $1 AND completed_at >= date_trunc('week', $2::timestamptz)",
		playerID, now).Scan(&count)
	return count, err
}

func (s *TaskService) evaluateBadges(ctx context.Context, tx data.QueryRunner, playerID string, streak, level int, now time.Time) ([]models.Badge, error) {
	rules, byID, err := s.badgeService.Rules(ctx)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}

	held, err := s.badgeService.HeldSet(ctx, tx, playerID)
	if err != nil {
		return nil, err
	}

	var lifetime, earlyCount int
	err = tx.QueryRow(ctx,
		"SELECT COUNT(*), COUNT(*) FILTER (WHERE early) FROM task_completions WHERE player_id = $1",
		playerID).Scan(&lifetime, &earlyCount)
	if err != nil {
		return nil, err
	}

	stats := game.PlayerStats{
		TasksCompleted:   lifetime,
		StreakCount:      streak,
		Level:            level,
		EarlyCompletions: earlyCount,
		CompletedAt:      now,
	}

	var newBadges []models.Badge
	for _, badgeID := range game.EvaluateBadges(stats, rules, held) {
		if err := s.badgeService.Award(ctx, tx, playerID, badgeID, now); err != nil {
			return nil, err
		}
		newBadges = append(newBadges, byID[badgeID])
	}

	return newBadges, nil
}

// applyRaidAwards overwrites the result's progress fields with the
// completing player's post-bonus state, so the response reflects the raid
// bonus the completion itself just triggered.
func applyRaidAwards(result *models.TaskCompleteResult, playerID string, awards []RaidAward) {
	for _, award := range awards {
		if award.PlayerID != playerID {
			continue
		}

		result.TotalXP = award.TotalXP
		result.Level = award.Level
		if award.LeveledUp {
			result.LeveledUp = true
		}
		return
	}
}

// raidAwardEvents maps bonus payouts to the economy events the leaderboard
// and notification consumers fold, one xp_changed per participant plus a
// level_up where the bonus crossed a threshold.
func raidAwardEvents(raid *models.Raid, awards []RaidAward) []*models.EconomyEvent {
	events := make([]*models.EconomyEvent, 0, len(awards))
	for _, award := range awards {
		events = append(events, &models.EconomyEvent{
			Type:     models.EventXPChanged,
			PlayerID: award.PlayerID,
			Username: award.Username,
			XPDelta:  raid.BonusXP,
			TotalXP:  award.TotalXP,
			Level:    award.Level,
			RaidID:   raid.ID,
		})
		if award.LeveledUp {
			events = append(events, &models.EconomyEvent{
				Type:     models.EventLevelUp,
				PlayerID: award.PlayerID,
				Username: award.Username,
				TotalXP:  award.TotalXP,
				Level:    award.Level,
			})
		}
	}
	return events
}
