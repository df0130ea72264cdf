package models

import "time"

type ItemKind string

const (
	ItemKindAvatar ItemKind = "avatar"
	ItemKindTheme  ItemKind = "theme"
	ItemKindFrame  ItemKind = "frame"
	ItemKindEffect ItemKind = "effect"
)

// ShopItem is a cosmetic purchasable with coins. Cosmetics never touch the
// XP economy.
type ShopItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      ItemKind  `json:"kind"`
	Price     int64     `json:"price"`
	AssetURL  string    `json:"asset_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type PlayerItem struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"player_id"`
	ItemID      string    `json:"item_id"`
	PurchasedAt time.Time `json:"purchased_at"`

	Item *ShopItem `json:"item,omitempty"`
}
