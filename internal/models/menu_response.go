package models

import "kolbe-be/internal/menu"

// MenuResponse lists the whole catalog
type MenuResponse struct {
	Success bool        `json:"success"`
	Items   []menu.Item `json:"items"`
	Count   int         `json:"count"`
}

// PriceResponse is the price of one item for a chosen size
type PriceResponse struct {
	ItemID int64   `json:"item_id"`
	Size   string  `json:"size"`
	Price  float64 `json:"price"`
}
