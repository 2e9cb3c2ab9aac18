package models

// AddFavoriteRequest represents the request body for adding a favorite.
// The user comes from the JWT, never from the body.
type AddFavoriteRequest struct {
	MenuItemID int64 `json:"menu_item_id" binding:"required,gt=0"`
}
