package catalogcache

import (
	"context"

	"github.com/google/uuid"

	"github.com/restokit/go-menu-cache/catalog"
)

// Counter maintenance. Adjustments are read-modify-write on a single cache
// entry and skip silently when the entry is absent: the next read recomputes
// exact counts from the entity store, so skipping can never make a cached
// value wrong, only missing.

// adjustMenuCounts applies deltas to the cached counts of a menu.
func (c *Catalog) adjustMenuCounts(ctx context.Context, menuID uuid.UUID, submenusDelta, dishesDelta int) {
	key := c.keys.Entity(catalog.KindMenu, menuID)
	blob, ok := c.cacheGet(ctx, key)
	if !ok {
		return
	}

	var m catalog.MenuWithCounts
	if err := decode(blob, &m); err != nil {
		c.cacheDelete(ctx, key)
		return
	}
	m.SubmenusCount += submenusDelta
	m.DishesCount += dishesDelta
	c.cacheSet(ctx, key, m)
}

// adjustSubmenuDishCount applies a delta to the cached dish count of a submenu.
func (c *Catalog) adjustSubmenuDishCount(ctx context.Context, submenuID uuid.UUID, delta int) {
	key := c.keys.Entity(catalog.KindSubmenu, submenuID)
	blob, ok := c.cacheGet(ctx, key)
	if !ok {
		return
	}

	var s catalog.SubmenuWithCounts
	if err := decode(blob, &s); err != nil {
		c.cacheDelete(ctx, key)
		return
	}
	s.DishesCount += delta
	c.cacheSet(ctx, key, s)
}

// cachedSubmenuDishCount reads the dish count from a submenu's cached entry.
// known is false when the entry is absent or undecodable, in which case the
// caller must recompute the count from the entity store.
func (c *Catalog) cachedSubmenuDishCount(ctx context.Context, submenuID uuid.UUID) (count int, known bool) {
	blob, ok := c.cacheGet(ctx, c.keys.Entity(catalog.KindSubmenu, submenuID))
	if !ok {
		return 0, false
	}

	var s catalog.SubmenuWithCounts
	if err := decode(blob, &s); err != nil {
		return 0, false
	}
	return s.DishesCount, true
}
