package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/data"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/google/uuid"
)

// NotificationService persists the economy events the consumer workers pick
// off the queue, and serves the player's inbox.
type NotificationService struct {
	db *data.PgDbContext
}

func NewNotificationService(db *data.PgDbContext) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) Record(ctx context.Context, event *models.EconomyEvent) (*models.Notification, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	notification := models.Notification{
		ID:        uuid.New().String(),
		PlayerID:  event.PlayerID,
		Type:      event.Type,
		Payload:   *event,
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO notifications (id, player_id, type, payload, is_read, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
	`

	_, err = s.db.Exec(ctx, query, notification.ID, notification.PlayerID, notification.Type, payload, notification.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &notification, nil
}

func (s *NotificationService) List(ctx context.Context, playerID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT id, player_id, type, payload, is_read, created_at
		FROM notifications
		WHERE player_id = $1 AND (NOT $2 OR NOT is_read)
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := s.db.Query(ctx, query, playerID, unreadOnly, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		var payload []byte
		if err := rows.Scan(&n.ID, &n.PlayerID, &n.Type, &payload, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &n.Payload); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (s *NotificationService) MarkRead(ctx context.Context, playerID string, ids []string) error {
	if len(ids) == 0 {
		_, err := s.db.Exec(ctx,
			"UPDATE notifications SET is_read = true WHERE player_id = $1 AND NOT is_read", playerID)
		return err
	}

	_, err := s.db.Exec(ctx,
		"UPDATE notifications SET is_read = true WHERE player_id = $1 AND id = ANY($2)", playerID, ids)
	return err
}
