// Package menu holds the restaurant's static catalog. Items never change at
// runtime, so the catalog is a plain map built once at startup.
package menu

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnknownSize     = errors.New("unknown size")
	ErrSizeUnavailable = errors.New("size not available for this item")
)

const (
	SizeRegular = "regular"
	SizeSingle  = "single"
	SizeDouble  = "double"
)

// Item is one dish on the menu. Pizzas carry single and double prices,
// everything else only has the base price.
type Item struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	SinglePrice *float64 `json:"single_price,omitempty"`
	DoublePrice *float64 `json:"double_price,omitempty"`
}

// PriceFor returns the price for a size. An empty size means regular.
func (i Item) PriceFor(size string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(size)) {
	case "", SizeRegular:
		return i.Price, nil
	case SizeSingle:
		if i.SinglePrice == nil {
			return 0, ErrSizeUnavailable
		}
		return *i.SinglePrice, nil
	case SizeDouble:
		if i.DoublePrice == nil {
			return 0, ErrSizeUnavailable
		}
		return *i.DoublePrice, nil
	default:
		return 0, ErrUnknownSize
	}
}

type Catalog struct {
	items map[int64]Item
}

// NewCatalog builds a catalog from items; later duplicates win.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{items: make(map[int64]Item, len(items))}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

// Default returns the restaurant's menu.
func Default() *Catalog {
	return NewCatalog(defaultItems)
}

func (c *Catalog) Get(id int64) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// List returns every item ordered by id.
func (c *Catalog) List() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
