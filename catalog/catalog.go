// Package catalog provides the fixed, read-only set of purchasable
// games, partitioned by platform.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	inErrors "github.com/azgaming/storefront/internal/errors"
)

type Platform string

const (
	PlatformPS4 Platform = "PS4"
	PlatformPS5 Platform = "PS5"
	PlatformPC  Platform = "PC"
)

// Item is one purchasable game. A zero price is valid and means free to
// play.
type Item struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Platform Platform        `json:"platform"`
}

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	items []Item
	index map[string]int
}

func New(items []Item) (*Catalog, error) {
	index := make(map[string]int, len(items))
	for i, item := range items {
		if _, ok := index[item.ID]; ok {
			return nil, fmt.Errorf("item id=%s with error=%w", item.ID, inErrors.ErrDuplicateItem)
		}
		index[item.ID] = i
	}
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Catalog{items: cp, index: index}, nil
}

// Default builds the catalog from the preset game lists.
func Default() *Catalog {
	items := make([]Item, 0, len(ps4Games)+len(ps5Games)+len(pcGames))
	items = append(items, ps4Games...)
	items = append(items, ps5Games...)
	items = append(items, pcGames...)
	c, err := New(items)
	if err != nil {
		// preset ids are fixed and unique
		panic(err)
	}
	return c
}

// ListByPlatform returns all items tagged with the platform, in
// definition order.
func (c *Catalog) ListByPlatform(platform Platform) []Item {
	items := []Item{}
	for _, item := range c.items {
		if item.Platform == platform {
			items = append(items, item)
		}
	}
	return items
}

func (c *Catalog) FindByID(id string) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns every item in definition order.
func (c *Catalog) Items() []Item {
	cp := make([]Item, len(c.items))
	copy(cp, c.items)
	return cp
}
