package catalogcache

import (
	"context"

	"github.com/google/uuid"

	"github.com/restokit/go-menu-cache/catalog"
)

// Write paths. The entity store write always happens first and is the only
// result returned to the caller; cache effects run afterwards on a detached
// context so a disconnecting client cannot leave the purge half-applied.

// CreateMenu inserts a menu and primes its cache entries: the new menu is
// appended to the menus collection (when cached) and written as a fresh
// single-entity entry with zero counts.
func (c *Catalog) CreateMenu(ctx context.Context, m catalog.Menu) (catalog.Menu, error) {
	created, err := c.store.CreateMenu(ctx, m)
	if err != nil {
		return catalog.Menu{}, err
	}

	ctx = context.WithoutCancel(ctx)
	appendToCollection(ctx, c, c.keys.Menus(), created)
	c.cacheSet(ctx, c.keys.Entity(catalog.KindMenu, created.ID), catalog.MenuWithCounts{Menu: created})
	return created, nil
}

// UpdateMenu rewrites title/description and drops the affected cache entries,
// forcing the next read to recompute.
func (c *Catalog) UpdateMenu(ctx context.Context, id uuid.UUID, patch catalog.MenuPatch) (catalog.Menu, error) {
	updated, err := c.store.UpdateMenu(ctx, id, patch)
	if err != nil {
		return catalog.Menu{}, err
	}

	ctx = context.WithoutCancel(ctx)
	c.cacheDelete(ctx, c.keys.Entity(catalog.KindMenu, id))
	c.cacheDelete(ctx, c.keys.Menus())
	return updated, nil
}

// DeleteMenu removes a menu and purges its entire cached subtree. The subtree
// is enumerated from the entity store before the cascading delete so the purge
// is complete even when the collection caches are cold.
func (c *Catalog) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	submenus, err := c.store.ListSubmenus(ctx, id)
	if err != nil {
		return err
	}
	dishesBySubmenu := make(map[uuid.UUID][]catalog.Dish, len(submenus))
	for _, sub := range submenus {
		dishes, err := c.store.ListDishes(ctx, sub.ID)
		if err != nil {
			return err
		}
		dishesBySubmenu[sub.ID] = dishes
	}

	if err := c.store.DeleteMenu(ctx, id); err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	c.cacheDelete(ctx, c.keys.Entity(catalog.KindMenu, id))
	removeFromCollection(ctx, c, c.keys.Menus(), func(m catalog.Menu) bool { return m.ID == id })
	for _, sub := range submenus {
		for _, d := range dishesBySubmenu[sub.ID] {
			c.cacheDelete(ctx, c.keys.Entity(catalog.KindDish, d.ID))
		}
		c.cacheDelete(ctx, c.keys.Dishes(sub.ID))
		c.cacheDelete(ctx, c.keys.Entity(catalog.KindSubmenu, sub.ID))
	}
	c.cacheDelete(ctx, c.keys.Submenus(id))
	return nil
}

// CreateSubmenu inserts a submenu under its menu, primes its cache entries
// and bumps the cached menu's submenu count. A ParentNotFound from the store
// leaves the cache untouched.
func (c *Catalog) CreateSubmenu(ctx context.Context, sub catalog.Submenu) (catalog.Submenu, error) {
	created, err := c.store.CreateSubmenu(ctx, sub)
	if err != nil {
		return catalog.Submenu{}, err
	}

	ctx = context.WithoutCancel(ctx)
	appendToCollection(ctx, c, c.keys.Submenus(created.MenuID), created)
	c.cacheSet(ctx, c.keys.Entity(catalog.KindSubmenu, created.ID), catalog.SubmenuWithCounts{Submenu: created})
	c.adjustMenuCounts(ctx, created.MenuID, 1, 0)
	return created, nil
}

// UpdateSubmenu rewrites title/description and drops the affected entries.
func (c *Catalog) UpdateSubmenu(ctx context.Context, menuID, submenuID uuid.UUID, patch catalog.MenuPatch) (catalog.Submenu, error) {
	updated, err := c.store.UpdateSubmenu(ctx, submenuID, patch)
	if err != nil {
		return catalog.Submenu{}, err
	}

	ctx = context.WithoutCancel(ctx)
	c.cacheDelete(ctx, c.keys.Entity(catalog.KindSubmenu, submenuID))
	c.cacheDelete(ctx, c.keys.Submenus(menuID))
	return updated, nil
}

// DeleteSubmenu removes a submenu, purges its cached dishes and decrements
// the cached menu counters: one submenu, and exactly as many dishes as the
// submenu held. The dish count comes from the submenu's own cached entry, or
// is recomputed from the entity store when that entry is absent; it is never
// assumed to be zero.
func (c *Catalog) DeleteSubmenu(ctx context.Context, menuID, submenuID uuid.UUID) error {
	dishCount, known := c.cachedSubmenuDishCount(ctx, submenuID)
	if !known {
		n, err := c.store.CountDishes(ctx, submenuID)
		if err != nil {
			return err
		}
		dishCount = n
	}
	dishes, err := c.store.ListDishes(ctx, submenuID)
	if err != nil {
		return err
	}

	if err := c.store.DeleteSubmenu(ctx, submenuID); err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	c.cacheDelete(ctx, c.keys.Entity(catalog.KindSubmenu, submenuID))
	removeFromCollection(ctx, c, c.keys.Submenus(menuID), func(s catalog.Submenu) bool { return s.ID == submenuID })
	for _, d := range dishes {
		c.cacheDelete(ctx, c.keys.Entity(catalog.KindDish, d.ID))
	}
	c.cacheDelete(ctx, c.keys.Dishes(submenuID))
	c.adjustMenuCounts(ctx, menuID, -1, -dishCount)
	return nil
}

// CreateDish inserts a dish under its submenu, primes its cache entries and
// bumps the dish counters on both cached ancestors.
func (c *Catalog) CreateDish(ctx context.Context, menuID uuid.UUID, d catalog.Dish) (catalog.Dish, error) {
	created, err := c.store.CreateDish(ctx, d)
	if err != nil {
		return catalog.Dish{}, err
	}

	ctx = context.WithoutCancel(ctx)
	appendToCollection(ctx, c, c.keys.Dishes(created.SubmenuID), created)
	c.cacheSet(ctx, c.keys.Entity(catalog.KindDish, created.ID), created)
	c.adjustSubmenuDishCount(ctx, created.SubmenuID, 1)
	c.adjustMenuCounts(ctx, menuID, 0, 1)
	return created, nil
}

// UpdateDish rewrites the mutable fields and drops the dish entry plus the
// owning collection entry. Collection blobs are opaque, so dropping beats
// editing a slot in place.
func (c *Catalog) UpdateDish(ctx context.Context, submenuID, dishID uuid.UUID, patch catalog.DishPatch) (catalog.Dish, error) {
	updated, err := c.store.UpdateDish(ctx, dishID, patch)
	if err != nil {
		return catalog.Dish{}, err
	}

	ctx = context.WithoutCancel(ctx)
	c.cacheDelete(ctx, c.keys.Entity(catalog.KindDish, dishID))
	c.cacheDelete(ctx, c.keys.Dishes(submenuID))
	return updated, nil
}

// DeleteDish removes a dish and decrements the dish counters on both cached
// ancestors.
func (c *Catalog) DeleteDish(ctx context.Context, menuID, submenuID, dishID uuid.UUID) error {
	if err := c.store.DeleteDish(ctx, dishID); err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)
	c.cacheDelete(ctx, c.keys.Entity(catalog.KindDish, dishID))
	removeFromCollection(ctx, c, c.keys.Dishes(submenuID), func(d catalog.Dish) bool { return d.ID == dishID })
	c.adjustSubmenuDishCount(ctx, submenuID, -1)
	c.adjustMenuCounts(ctx, menuID, 0, -1)
	return nil
}
