package catalogcache

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/restokit/go-menu-cache/cache"
	"github.com/restokit/go-menu-cache/catalog"
)

// EntityStore is the narrow system-of-record interface the catalog consumes.
// Implementations back it with a relational database; tests back it with an
// in-memory fake that counts calls.
type EntityStore interface {
	ListMenus(ctx context.Context) ([]catalog.Menu, error)
	GetMenu(ctx context.Context, id uuid.UUID) (catalog.Menu, error)
	GetMenuWithCounts(ctx context.Context, id uuid.UUID) (catalog.MenuWithCounts, error)
	CreateMenu(ctx context.Context, m catalog.Menu) (catalog.Menu, error)
	UpdateMenu(ctx context.Context, id uuid.UUID, patch catalog.MenuPatch) (catalog.Menu, error)
	DeleteMenu(ctx context.Context, id uuid.UUID) error

	ListSubmenus(ctx context.Context, menuID uuid.UUID) ([]catalog.Submenu, error)
	GetSubmenuWithCounts(ctx context.Context, id uuid.UUID) (catalog.SubmenuWithCounts, error)
	CreateSubmenu(ctx context.Context, sub catalog.Submenu) (catalog.Submenu, error)
	UpdateSubmenu(ctx context.Context, id uuid.UUID, patch catalog.MenuPatch) (catalog.Submenu, error)
	DeleteSubmenu(ctx context.Context, id uuid.UUID) error
	CountDishes(ctx context.Context, submenuID uuid.UUID) (int, error)

	ListDishes(ctx context.Context, submenuID uuid.UUID) ([]catalog.Dish, error)
	GetDish(ctx context.Context, id uuid.UUID) (catalog.Dish, error)
	CreateDish(ctx context.Context, d catalog.Dish) (catalog.Dish, error)
	UpdateDish(ctx context.Context, id uuid.UUID, patch catalog.DishPatch) (catalog.Dish, error)
	DeleteDish(ctx context.Context, id uuid.UUID) error
}

// Catalog decorates an EntityStore with read-through caching and
// write-through invalidation.
type Catalog struct {
	store  EntityStore
	cache  cache.Store
	keys   cache.Keys
	logger *zap.Logger
	stats  *stats
}

// New wires a Catalog over the given store and cache. A nil logger disables
// logging.
func New(store EntityStore, cacheStore cache.Store, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		store:  store,
		cache:  cacheStore,
		logger: logger,
		stats:  newStats(),
	}
}

// readThrough serves a value from the cache, falling back to fetch and
// repopulating on a miss. Fetch errors are returned untouched and leave the
// cache unwritten.
func readThrough[T any](ctx context.Context, c *Catalog, key string, fetch func(context.Context) (T, error)) (T, error) {
	if !refreshRequested(ctx) {
		if blob, ok := c.cacheGet(ctx, key); ok {
			var v T
			if err := decode(blob, &v); err == nil {
				c.stats.hits.Inc()
				return v, nil
			}
			c.logger.Warn("dropping undecodable cache entry", zap.String("key", key))
			c.cacheDelete(ctx, key)
		}
	}

	c.stats.misses.Inc()
	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.cacheSet(ctx, key, v)
	return v, nil
}

// ListMenus returns all menus, without counts, through the menus collection
// entry.
func (c *Catalog) ListMenus(ctx context.Context) ([]catalog.Menu, error) {
	return readThrough(ctx, c, c.keys.Menus(), c.store.ListMenus)
}

// GetMenu returns a single menu with its aggregate counts.
func (c *Catalog) GetMenu(ctx context.Context, id uuid.UUID) (catalog.MenuWithCounts, error) {
	key := c.keys.Entity(catalog.KindMenu, id)
	return readThrough(ctx, c, key, func(ctx context.Context) (catalog.MenuWithCounts, error) {
		return c.store.GetMenuWithCounts(ctx, id)
	})
}

// ListSubmenus returns the submenus of a menu. A missing menu is a NotFound,
// not an empty list.
func (c *Catalog) ListSubmenus(ctx context.Context, menuID uuid.UUID) ([]catalog.Submenu, error) {
	key := c.keys.Submenus(menuID)
	return readThrough(ctx, c, key, func(ctx context.Context) ([]catalog.Submenu, error) {
		if _, err := c.store.GetMenu(ctx, menuID); err != nil {
			return nil, err
		}
		return c.store.ListSubmenus(ctx, menuID)
	})
}

// GetSubmenu returns a single submenu with its dish count.
func (c *Catalog) GetSubmenu(ctx context.Context, id uuid.UUID) (catalog.SubmenuWithCounts, error) {
	key := c.keys.Entity(catalog.KindSubmenu, id)
	return readThrough(ctx, c, key, func(ctx context.Context) (catalog.SubmenuWithCounts, error) {
		return c.store.GetSubmenuWithCounts(ctx, id)
	})
}

// ListDishes returns the dishes of a submenu. An unknown submenu yields an
// empty list.
func (c *Catalog) ListDishes(ctx context.Context, submenuID uuid.UUID) ([]catalog.Dish, error) {
	key := c.keys.Dishes(submenuID)
	return readThrough(ctx, c, key, func(ctx context.Context) ([]catalog.Dish, error) {
		return c.store.ListDishes(ctx, submenuID)
	})
}

// GetDish returns a single dish.
func (c *Catalog) GetDish(ctx context.Context, id uuid.UUID) (catalog.Dish, error) {
	key := c.keys.Entity(catalog.KindDish, id)
	return readThrough(ctx, c, key, func(ctx context.Context) (catalog.Dish, error) {
		return c.store.GetDish(ctx, id)
	})
}

// cacheGet wraps Store.Get, downgrading backend failures to a miss.
func (c *Catalog) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	blob, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.stats.errors.Inc()
		c.logger.Warn("cache get failed, serving from entity store",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return blob, ok
}

// cacheSet encodes and stores a value, downgrading failures to a no-op.
func (c *Catalog) cacheSet(ctx context.Context, key string, v any) {
	blob, err := encode(v)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, blob); err != nil {
		c.stats.errors.Inc()
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// cacheDelete removes a key, downgrading failures to a no-op.
func (c *Catalog) cacheDelete(ctx context.Context, key string) {
	if err := c.cache.Delete(ctx, key); err != nil {
		c.stats.errors.Inc()
		c.logger.Warn("cache delete failed", zap.String("key", key), zap.Error(err))
		return
	}
	c.stats.purged.Inc()
}
