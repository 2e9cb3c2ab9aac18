package entities

import "time"

// Favorite links a user to a menu catalog item
type Favorite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MenuItemID int64     `json:"menu_item_id"` // Not enforced by the store, checked against the catalog
	CreatedAt  time.Time `json:"created_at"`
}
