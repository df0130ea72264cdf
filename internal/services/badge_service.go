package services

import (
	"context"
	"errors"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/cache"
	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/game"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/google/uuid"
)

var (
	ErrBadgeNotFound = errors.New("badge not found")
)

const badgeRulesCacheKey = "badge_rules"

// BadgeService owns the badge catalog and unlock bookkeeping. Criterion
// semantics live in the game package; this layer persists awards exactly
// once per (player, badge).
type BadgeService struct {
	db         *data.PgDbContext
	rulesCache *cache.MemoryCache[[]models.Badge]
}

func NewBadgeService(db *data.PgDbContext) *BadgeService {
	return &BadgeService{
		db:         db,
		rulesCache: cache.NewMemoryCache[[]models.Badge](),
	}
}

func (s *BadgeService) CreateBadge(ctx context.Context, badge *models.Badge) error {
	if _, err := game.ParseCriterionType(badge.CriterionType); err != nil {
		return err
	}

	badge.ID = uuid.New().String()
	badge.CreatedAt = time.Now()

	query := `
		INSERT INTO badges (id, name, description, icon, criterion_type, threshold, hour, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query, badge.ID, badge.Name, badge.Description, badge.Icon,
		badge.CriterionType, badge.Threshold, badge.Hour, badge.CreatedAt)
	if err != nil {
		return err
	}

	s.rulesCache.Delete(badgeRulesCacheKey)
	return nil
}

// ListCatalog returns every badge. The catalog changes rarely, so it is
// cached in memory for a minute.
func (s *BadgeService) ListCatalog(ctx context.Context) ([]models.Badge, error) {
	if cached, err := s.rulesCache.Get(badgeRulesCacheKey); err == nil {
		return cached, nil
	}

	query := `
		SELECT id, name, description, icon, criterion_type, threshold, hour, created_at
		FROM badges
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []models.Badge
	for rows.Next() {
		var b models.Badge
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Icon, &b.CriterionType, &b.Threshold, &b.Hour, &b.CreatedAt); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.rulesCache.Set(badgeRulesCacheKey, badges, time.Minute)
	return badges, nil
}

// Rules maps the catalog into engine criteria.
func (s *BadgeService) Rules(ctx context.Context) ([]game.BadgeRule, map[string]models.Badge, error) {
	badges, err := s.ListCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	rules := make([]game.BadgeRule, 0, len(badges))
	byID := make(map[string]models.Badge, len(badges))
	for _, b := range badges {
		criterionType, err := game.ParseCriterionType(b.CriterionType)
		if err != nil {
			continue // skip malformed catalog rows rather than blocking awards
		}

		rules = append(rules, game.BadgeRule{
			BadgeID:   b.ID,
			Criterion: game.Criterion{Type: criterionType, Threshold: b.Threshold, Hour: b.Hour},
		})
		byID[b.ID] = b
	}

	return rules, byID, nil
}

// HeldSet returns the ids of badges the player already holds.
func (s *BadgeService) HeldSet(ctx context.Context, qr data.QueryRunner, playerID string) (map[string]struct{}, error) {
	rows, err := qr.Query(ctx, "SELECT badge_id FROM player_badges WHERE player_id = $1", playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	held := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		held[id] = struct{}{}
	}

	return held, rows.Err()
}

// Award grants a badge; the unique (player, badge) constraint backs up the
// held-set check so a badge can never be duplicated.
func (s *BadgeService) Award(ctx context.Context, qr data.QueryRunner, playerID, badgeID string, at time.Time) error {
	query := `
		INSERT INTO player_badges (id, player_id, badge_id, unlocked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, badge_id) DO NOTHING
	`

	_, err := qr.Exec(ctx, query, uuid.New().String(), playerID, badgeID, at)
	return err
}

func (s *BadgeService) ListPlayerBadges(ctx context.Context, playerID string) ([]models.PlayerBadge, error) {
	query := `
		SELECT pb.id, pb.player_id, pb.badge_id, pb.unlocked_at,
		       b.id, b.name, b.description, b.icon, b.criterion_type, b.threshold, b.hour, b.created_at
		FROM player_badges pb
		JOIN badges b ON b.id = pb.badge_id
		WHERE pb.player_id = $1
		ORDER BY pb.unlocked_at DESC
	`

	rows, err := s.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.PlayerBadge
	for rows.Next() {
		var pb models.PlayerBadge
		var b models.Badge
		if err := rows.Scan(&pb.ID, &pb.PlayerID, &pb.BadgeID, &pb.UnlockedAt,
			&b.ID, &b.Name, &b.Description, &b.Icon, &b.CriterionType, &b.Threshold, &b.Hour, &b.CreatedAt); err != nil {
			return nil, err
		}
		pb.Badge = &b
		result = append(result, pb)
	}

	return result, rows.Err()
}
