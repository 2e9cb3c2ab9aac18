package models

import (
	"time"

	"kolbe-be/internal/menu"
)

// FavoriteResponse is a favorite joined with its catalog entry
type FavoriteResponse struct {
	ID         int64      `json:"id"`
	MenuItemID int64      `json:"menu_item_id"`
	CreatedAt  time.Time  `json:"created_at"`
	Item       *menu.Item `json:"item,omitempty"` // nil when the item left the catalog
}

// FavoritesResponse lists the caller's favorites
type FavoritesResponse struct {
	Success   bool               `json:"success"`
	Favorites []FavoriteResponse `json:"favorites"`
	Count     int                `json:"count"`
}
