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
	ErrItemNotFound      = errors.New("shop item not found")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrItemAlreadyOwned  = errors.New("item already owned")
)

// ShopService sells cosmetics for coins. Purchases never touch XP.
type ShopService struct {
	db *data.PgDbContext
}

func NewShopService(db *data.PgDbContext) *ShopService {
	return &ShopService{db: db}
}

func (s *ShopService) ListItems(ctx context.Context) ([]models.ShopItem, error) {
	query := `
		SELECT id, name, kind, price, asset_url, is_active, created_at
		FROM shop_items
		WHERE is_active
		ORDER BY price, name
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ShopItem
	for rows.Next() {
		var item models.ShopItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Kind, &item.Price, &item.AssetURL, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Purchase debits the player and grants the item atomically. Coins are
// checked under a row lock so concurrent purchases cannot overspend.
func (s *ShopService) Purchase(ctx context.Context, playerID, itemID string) (*models.PlayerItem, error) {
	var purchase models.PlayerItem

	err := s.db.WithTransaction(ctx, func(tx data.QueryRunner) error {
		var item models.ShopItem
		err := tx.QueryRow(ctx,
			"SELECT id, name, kind, price FROM shop_items WHERE id = $1 AND is_active", itemID).
			Scan(&item.ID, &item.Name, &item.Kind, &item.Price)
		if err != nil {
			if err == pgx.ErrNoRows {
				return ErrItemNotFound
			}
			return err
		}

		var owned bool
		err = tx.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM player_items WHERE player_id = $1 AND item_id = $2)",
			playerID, itemID).Scan(&owned)
		if err != nil {
			return err
		}
		if owned {
			return ErrItemAlreadyOwned
		}

		var coins int64
		if err := tx.QueryRow(ctx, "SELECT coins FROM players WHERE id = $1 FOR UPDATE", playerID).Scan(&coins); err != nil {
			return err
		}
		if coins < item.Price {
			return ErrInsufficientCoins
		}

		if _, err := tx.Exec(ctx,
			"UPDATE players SET coins = coins - $1 WHERE id = $2", item.Price, playerID); err != nil {
			return err
		}

		purchase = models.PlayerItem{
			ID:          uuid.New().String(),
			PlayerID:    playerID,
			ItemID:      itemID,
			PurchasedAt: time.Now(),
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO player_items (id, player_id, item_id, purchased_at) VALUES ($1, $2, $3, $4)",
			purchase.ID, purchase.PlayerID, purchase.ItemID, purchase.PurchasedAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &purchase, nil
}

func (s *ShopService) Inventory(ctx context.Context, playerID string) ([]models.PlayerItem, error) {
	query := `
		SELECT pi.id, pi.player_id, pi.item_id, pi.purchased_at,
		       i.id, i.name, i.kind, i.price, i.asset_url, i.is_active, i.created_at
		FROM player_items pi
		JOIN shop_items i ON i.id = pi.item_id
		WHERE pi.player_id = $1
		ORDER BY pi.purchased_at DESC
	`

	rows, err := s.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.PlayerItem
	for rows.Next() {
		var pi models.PlayerItem
		var item models.ShopItem
		if err := rows.Scan(&pi.ID, &pi.PlayerID, &pi.ItemID, &pi.PurchasedAt,
			&item.ID, &item.Name, &item.Kind, &item.Price, &item.AssetURL, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, err
		}
		pi.Item = &item
		items = append(items, pi)
	}

	return items, rows.Err()
}
