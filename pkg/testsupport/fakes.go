// Package testsupport provides in-memory fakes for the catalog's ports: an
// entity store that counts calls per method and a cache store with a failure
// switch. Tests use the call counts to prove read-through behavior and the
// failure switch to prove cache errors never surface to callers.
package testsupport

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/restokit/go-menu-cache/catalog"
	"github.com/restokit/go-menu-cache/catalogcache"
)

// FakeEntityStore is an in-memory system of record with the same cascade and
// parent-check semantics as the relational store.
type FakeEntityStore struct {
	mu       sync.RWMutex
	menus    map[uuid.UUID]catalog.Menu
	submenus map[uuid.UUID]catalog.Submenu
	dishes   map[uuid.UUID]catalog.Dish
	calls    map[string]int
}

var _ catalogcache.EntityStore = (*FakeEntityStore)(nil)

func NewFakeEntityStore() *FakeEntityStore {
	return &FakeEntityStore{
		menus:    make(map[uuid.UUID]catalog.Menu),
		submenus: make(map[uuid.UUID]catalog.Submenu),
		dishes:   make(map[uuid.UUID]catalog.Dish),
		calls:    make(map[string]int),
	}
}

// Calls returns how many times the named method has been invoked.
func (f *FakeEntityStore) Calls(method string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.calls[method]
}

func (f *FakeEntityStore) track(method string) {
	f.calls[method]++
}

func (f *FakeEntityStore) ListMenus(ctx context.Context) ([]catalog.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("ListMenus")

	menus := make([]catalog.Menu, 0, len(f.menus))
	for _, m := range f.menus {
		menus = append(menus, m)
	}
	sort.Slice(menus, func(i, j int) bool { return menus[i].Title < menus[j].Title })
	return menus, nil
}

func (f *FakeEntityStore) GetMenu(ctx context.Context, id uuid.UUID) (catalog.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("GetMenu")

	m, ok := f.menus[id]
	if !ok {
		return catalog.Menu{}, catalog.NewNotFound(catalog.KindMenu)
	}
	return m, nil
}

func (f *FakeEntityStore) GetMenuWithCounts(ctx context.Context, id uuid.UUID) (catalog.MenuWithCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("GetMenuWithCounts")

	m, ok := f.menus[id]
	if !ok {
		return catalog.MenuWithCounts{}, catalog.NewNotFound(catalog.KindMenu)
	}

	counts := catalog.MenuWithCounts{Menu: m}
	for _, s := range f.submenus {
		if s.MenuID != id {
			continue
		}
		counts.SubmenusCount++
		for _, d := range f.dishes {
			if d.SubmenuID == s.ID {
				counts.DishesCount++
			}
		}
	}
	return counts, nil
}

func (f *FakeEntityStore) CreateMenu(ctx context.Context, m catalog.Menu) (catalog.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("CreateMenu")

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.menus[m.ID] = m
	return m, nil
}

func (f *FakeEntityStore) UpdateMenu(ctx context.Context, id uuid.UUID, patch catalog.MenuPatch) (catalog.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("UpdateMenu")

	m, ok := f.menus[id]
	if !ok {
		return catalog.Menu{}, catalog.NewNotFound(catalog.KindMenu)
	}
	m.Title = patch.Title
	m.Description = patch.Description
	f.menus[id] = m
	return m, nil
}

func (f *FakeEntityStore) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("DeleteMenu")

	if _, ok := f.menus[id]; !ok {
		return catalog.NewNotFound(catalog.KindMenu)
	}
	delete(f.menus, id)
	for sid, s := range f.submenus {
		if s.MenuID != id {
			continue
		}
		delete(f.submenus, sid)
		for did, d := range f.dishes {
			if d.SubmenuID == sid {
				delete(f.dishes, did)
			}
		}
	}
	return nil
}

func (f *FakeEntityStore) ListSubmenus(ctx context.Context, menuID uuid.UUID) ([]catalog.Submenu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("ListSubmenus")

	submenus := make([]catalog.Submenu, 0)
	for _, s := range f.submenus {
		if s.MenuID == menuID {
			submenus = append(submenus, s)
		}
	}
	sort.Slice(submenus, func(i, j int) bool { return submenus[i].Title < submenus[j].Title })
	return submenus, nil
}

func (f *FakeEntityStore) GetSubmenuWithCounts(ctx context.Context, id uuid.UUID) (catalog.SubmenuWithCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("GetSubmenuWithCounts")

	s, ok := f.submenus[id]
	if !ok {
		return catalog.SubmenuWithCounts{}, catalog.NewNotFound(catalog.KindSubmenu)
	}

	counts := catalog.SubmenuWithCounts{Submenu: s}
	for _, d := range f.dishes {
		if d.SubmenuID == id {
			counts.DishesCount++
		}
	}
	return counts, nil
}

func (f *FakeEntityStore) CreateSubmenu(ctx context.Context, sub catalog.Submenu) (catalog.Submenu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("CreateSubmenu")

	if _, ok := f.menus[sub.MenuID]; !ok {
		return catalog.Submenu{}, catalog.NewParentNotFound(catalog.KindMenu)
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	f.submenus[sub.ID] = sub
	return sub, nil
}

func (f *FakeEntityStore) UpdateSubmenu(ctx context.Context, id uuid.UUID, patch catalog.MenuPatch) (catalog.Submenu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("UpdateSubmenu")

	s, ok := f.submenus[id]
	if !ok {
		return catalog.Submenu{}, catalog.NewNotFound(catalog.KindSubmenu)
	}
	s.Title = patch.Title
	s.Description = patch.Description
	f.submenus[id] = s
	return s, nil
}

func (f *FakeEntityStore) DeleteSubmenu(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("DeleteSubmenu")

	if _, ok := f.submenus[id]; !ok {
		return catalog.NewNotFound(catalog.KindSubmenu)
	}
	delete(f.submenus, id)
	for did, d := range f.dishes {
		if d.SubmenuID == id {
			delete(f.dishes, did)
		}
	}
	return nil
}

func (f *FakeEntityStore) CountDishes(ctx context.Context, submenuID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("CountDishes")

	count := 0
	for _, d := range f.dishes {
		if d.SubmenuID == submenuID {
			count++
		}
	}
	return count, nil
}

func (f *FakeEntityStore) ListDishes(ctx context.Context, submenuID uuid.UUID) ([]catalog.Dish, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("ListDishes")

	dishes := make([]catalog.Dish, 0)
	for _, d := range f.dishes {
		if d.SubmenuID == submenuID {
			dishes = append(dishes, d)
		}
	}
	sort.Slice(dishes, func(i, j int) bool { return dishes[i].Title < dishes[j].Title })
	return dishes, nil
}

func (f *FakeEntityStore) GetDish(ctx context.Context, id uuid.UUID) (catalog.Dish, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("GetDish")

	d, ok := f.dishes[id]
	if !ok {
		return catalog.Dish{}, catalog.NewNotFound(catalog.KindDish)
	}
	return d, nil
}

func (f *FakeEntityStore) CreateDish(ctx context.Context, d catalog.Dish) (catalog.Dish, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("CreateDish")

	if _, ok := f.submenus[d.SubmenuID]; !ok {
		return catalog.Dish{}, catalog.NewParentNotFound(catalog.KindSubmenu)
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.dishes[d.ID] = d
	return d, nil
}

func (f *FakeEntityStore) UpdateDish(ctx context.Context, id uuid.UUID, patch catalog.DishPatch) (catalog.Dish, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("UpdateDish")

	d, ok := f.dishes[id]
	if !ok {
		return catalog.Dish{}, catalog.NewNotFound(catalog.KindDish)
	}
	d.Title = patch.Title
	d.Description = patch.Description
	d.Price = patch.Price
	f.dishes[id] = d
	return d, nil
}

func (f *FakeEntityStore) DeleteDish(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.track("DeleteDish")

	if _, ok := f.dishes[id]; !ok {
		return catalog.NewNotFound(catalog.KindDish)
	}
	delete(f.dishes, id)
	return nil
}

// ErrCacheDown simulates an unreachable cache backend.
var ErrCacheDown = errors.New("cache backend unavailable")

// FakeCacheStore is a map-backed cache.Store. Fail(true) makes every
// operation return ErrCacheDown, for exercising the degraded path.
type FakeCacheStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	failing bool
}

func NewFakeCacheStore() *FakeCacheStore {
	return &FakeCacheStore{entries: make(map[string][]byte)}
}

// Fail toggles simulated backend failure.
func (f *FakeCacheStore) Fail(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

func (f *FakeCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.failing {
		return nil, false, ErrCacheDown
	}
	blob, ok := f.entries[key]
	if !ok {
		return nil, false, nil
	}
	return blob, true, nil
}

func (f *FakeCacheStore) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return ErrCacheDown
	}
	f.entries[key] = append([]byte(nil), value...)
	return nil
}

func (f *FakeCacheStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return ErrCacheDown
	}
	delete(f.entries, key)
	return nil
}

// Has reports whether a key currently holds an entry.
func (f *FakeCacheStore) Has(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.entries[key]
	return ok
}

// Keys returns all live keys, sorted.
func (f *FakeCacheStore) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, 0, len(f.entries))
	for k := range f.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of live entries.
func (f *FakeCacheStore) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}
