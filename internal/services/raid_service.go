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
	ErrRaidNotFound = errors.New("raid not found")
	ErrRaidClosed   = errors.New("raid is not open")
)

// RaidService manages guild raids: themed batches of tasks that pay an
// aggregate bonus to every participant when the last task lands.
type RaidService struct {
	db            *data.PgDbContext
	playerService *PlayerService
}

func NewRaidService(db *data.PgDbContext, playerService *PlayerService) *RaidService {
	return &RaidService{db: db, playerService: playerService}
}

func (s *RaidService) CreateRaid(ctx context.Context, raid *models.Raid) error {
	if err := raid.Validate(); err != nil {
		return err
	}

	raid.ID = uuid.New().String()
	raid.Status = models.RaidStatusOpen
	raid.CreatedAt = time.Now()

	query := `
		INSERT INTO raids (id, guild_id, name, description, bonus_xp, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query, raid.ID, raid.GuildID, raid.Name, raid.Description,
		raid.BonusXP, raid.Status, raid.CreatedAt)
	return err
}

func (s *RaidService) GetRaid(ctx context.Context, raidID string) (*models.Raid, error) {
	query := `
		SELECT id, guild_id, name, description, bonus_xp, status, completed_at, created_at
		FROM raids
		WHERE id = $1
	`

	var raid models.Raid
	err := s.db.QueryRow(ctx, query, raidID).Scan(&raid.ID, &raid.GuildID, &raid.Name,
		&raid.Description, &raid.BonusXP, &raid.Status, &raid.CompletedAt, &raid.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	tasks, err := s.raidTasks(ctx, raidID)
	if err != nil {
		return nil, err
	}
	raid.Tasks = tasks

	return &raid, nil
}

func (s *RaidService) ListGuildRaids(ctx context.Context, guildID string) ([]models.Raid, error) {
	query := `
		SELECT id, guild_id, name, description, bonus_xp, status, completed_at, created_at
		FROM raids
		WHERE guild_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raids []models.Raid
	for rows.Next() {
		var raid models.Raid
		if err := rows.Scan(&raid.ID, &raid.GuildID, &raid.Name, &raid.Description,
			&raid.BonusXP, &raid.Status, &raid.CompletedAt, &raid.CreatedAt); err != nil {
			return nil, err
		}
		raids = append(raids, raid)
	}

	return raids, rows.Err()
}

// AttachTask points an existing pending task at an open raid.
func (s *RaidService) AttachTask(ctx context.Context, playerID, raidID, taskID string) error {
	raid, err := s.GetRaid(ctx, raidID)
	if err != nil {
		return err
	} else if raid == nil {
		return ErrRaidNotFound
	}
	if raid.Status != models.RaidStatusOpen {
		return ErrRaidClosed
	}

	tag, err := s.db.Exec(ctx,
		"UPDATE tasks SET raid_id = $1, updated_at = $2 WHERE id = $3 AND player_id = $4 AND status = 'pending'",
		raidID, time.Now(), taskID, playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// RaidAward is one participant's bonus payout with the post-bonus
// progress, so the caller can publish the XP change after commit.
type RaidAward struct {
	PlayerID  string
	Username  string
	TotalXP   int
	Level     int
	LeveledUp bool
}

// OnTaskCompleted closes the raid when the completed task was its last
// pending one, paying BonusXP to every distinct player who completed a raid
// task. The caller has already marked the task completed inside tx and owns
// publishing the returned awards once the transaction commits.
func (s *RaidService) OnTaskCompleted(ctx context.Context, tx data.QueryRunner, task *models.Task, now time.Time) (*models.Raid, bool, []RaidAward, error) {
	if task.RaidID == nil {
		return nil, false, nil, nil
	}

	var raid models.Raid
	err := tx.QueryRow(ctx,
		"SELECT id, guild_id, name, bonus_xp, status FROM raids WHERE id = $1 FOR UPDATE",
		*task.RaidID).Scan(&raid.ID, &raid.GuildID, &raid.Name, &raid.BonusXP, &raid.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, false, nil, ErrRaidNotFound
		}
		return nil, false, nil, err
	}
	if raid.Status != models.RaidStatusOpen {
		return &raid, false, nil, nil
	}

	var remaining int
	err = tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM tasks WHERE raid_id = $1 AND status = 'pending'",
		raid.ID).Scan(&remaining)
	if err != nil {
		return nil, false, nil, err
	}
	if remaining > 0 {
		return &raid, false, nil, nil
	}

	if _, err := tx.Exec(ctx,
		"UPDATE raids SET status = 'completed', completed_at = $1 WHERE id = $2",
		now, raid.ID); err != nil {
		return nil, false, nil, err
	}

	participants, err := s.participants(ctx, tx, raid.ID)
	if err != nil {
		return nil, false, nil, err
	}

	awards := make([]RaidAward, 0, len(participants))
	for _, p := range participants {
		totalXP, level, err := s.playerService.AdjustXP(ctx, tx, p.id, raid.BonusXP)
		if err != nil {
			return nil, false, nil, err
		}

		awards = append(awards, RaidAward{
			PlayerID:  p.id,
			Username:  p.username,
			TotalXP:   totalXP,
			Level:     level,
			LeveledUp: game.DidLevelUp(totalXP-raid.BonusXP, totalXP),
		})
	}

	raid.Status = models.RaidStatusCompleted
	return &raid, true, awards, nil
}

type raidParticipant struct {
	id       string
	username string
}

func (s *RaidService) participants(ctx context.Context, tx data.QueryRunner, raidID string) ([]raidParticipant, error) {
	rows, err := tx.Query(ctx, `
		SELECT DISTINCT t.player_id, p.username
		FROM tasks t
		JOIN players p ON p.id = t.player_id
		WHERE t.raid_id = $1 AND t.status = 'completed'
	`, raidID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []raidParticipant
	for rows.Next() {
		var p raidParticipant
		if err := rows.Scan(&p.id, &p.username); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

func (s *RaidService) raidTasks(ctx context.Context, raidID string) ([]models.Task, error) {
	query := `
		SELECT id, player_id, title, description, difficulty, status, raid_id, due_date, completed_at, created_at, updated_at
		FROM tasks
		WHERE raid_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query, raidID)
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
