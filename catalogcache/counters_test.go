package catalogcache_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/restokit/go-menu-cache/cache"
	"github.com/restokit/go-menu-cache/catalog"
)

func TestMenuCountsTrackSubtreeWrites(t *testing.T) {
	c, _, _ := newCatalog(t)
	ctx := context.Background()

	m := seedMenu(t, c, "main")
	s1 := seedSubmenu(t, c, m.ID, "starters")
	s2 := seedSubmenu(t, c, m.ID, "mains")
	seedDish(t, c, m.ID, s1.ID, "olives", "4.00")
	d2 := seedDish(t, c, m.ID, s2.ID, "steak", "19.90")

	got, err := c.GetMenu(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMenu: %v", err)
	}
	if got.SubmenusCount != 2 || got.DishesCount != 2 {
		t.Fatalf("after creates: %+v", got)
	}

	if err := c.DeleteDish(ctx, m.ID, s2.ID, d2.ID); err != nil {
		t.Fatalf("DeleteDish: %v", err)
	}
	got, err = c.GetMenu(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMenu: %v", err)
	}
	if got.SubmenusCount != 2 || got.DishesCount != 1 {
		t.Fatalf("after dish delete: %+v", got)
	}

	if err := c.DeleteSubmenu(ctx, m.ID, s1.ID); err != nil {
		t.Fatalf("DeleteSubmenu: %v", err)
	}
	got, err = c.GetMenu(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMenu: %v", err)
	}
	if got.SubmenusCount != 1 || got.DishesCount != 0 {
		t.Fatalf("after submenu delete: %+v", got)
	}
}

func TestSubmenuDishCountTracksWrites(t *testing.T) {
	c, _, _ := newCatalog(t)
	ctx := context.Background()

	m := seedMenu(t, c, "main")
	s := seedSubmenu(t, c, m.ID, "desserts")
	d := seedDish(t, c, m.ID, s.ID, "cake", "5.00")
	seedDish(t, c, m.ID, s.ID, "pie", "4.50")

	got, err := c.GetSubmenu(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetSubmenu: %v", err)
	}
	if got.DishesCount != 2 {
		t.Fatalf("after creates: %+v", got)
	}

	if err := c.DeleteDish(ctx, m.ID, s.ID, d.ID); err != nil {
		t.Fatalf("DeleteDish: %v", err)
	}
	got, err = c.GetSubmenu(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetSubmenu: %v", err)
	}
	if got.DishesCount != 1 {
		t.Fatalf("after delete: %+v", got)
	}
}

// A submenu delete must subtract the submenu's real dish count from the menu
// entry even when the submenu's own cache entry has been evicted.
func TestDeleteSubmenuRecomputesDishCountOnMiss(t *testing.T) {
	c, store, cacheStore := newCatalog(t)
	ctx := context.Background()

	m := seedMenu(t, c, "main")
	s := seedSubmenu(t, c, m.ID, "grill")
	seedDish(t, c, m.ID, s.ID, "kebab", "8.00")
	seedDish(t, c, m.ID, s.ID, "wings", "7.00")

	var keys cache.Keys
	if err := cacheStore.Delete(ctx, keys.Entity(catalog.KindSubmenu, s.ID)); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := c.DeleteSubmenu(ctx, m.ID, s.ID); err != nil {
		t.Fatalf("DeleteSubmenu: %v", err)
	}
	if n := store.Calls("CountDishes"); n != 1 {
		t.Fatalf("CountDishes called %d times, want 1", n)
	}

	got, err := c.GetMenu(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMenu: %v", err)
	}
	if got.SubmenusCount != 0 || got.DishesCount != 0 {
		t.Fatalf("after delete: %+v", got)
	}
}

// Counter adjustments skip entirely when the menu entry is not cached; they
// never write a fabricated entry that a later read could trust.
func TestCounterAdjustSkipsAbsentEntry(t *testing.T) {
	c, _, cacheStore := newCatalog(t)
	ctx := context.Background()

	m := seedMenu(t, c, "main")
	var keys cache.Keys
	menuKey := keys.Entity(catalog.KindMenu, m.ID)
	if err := cacheStore.Delete(ctx, menuKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	s := seedSubmenu(t, c, m.ID, "sides")
	seedDish(t, c, m.ID, s.ID, "fries", "3.00")

	if cacheStore.Has(menuKey) {
		t.Fatal("adjustment resurrected an evicted menu entry")
	}

	got, err := c.GetMenu(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMenu: %v", err)
	}
	if got.SubmenusCount != 1 || got.DishesCount != 1 {
		t.Fatalf("recomputed counts wrong: %+v", got)
	}
}

func TestCreateDishUnderMissingSubmenu(t *testing.T) {
	c, _, cacheStore := newCatalog(t)
	ctx := context.Background()
	m := seedMenu(t, c, "main")

	before := cacheStore.Len()
	_, err := c.CreateDish(ctx, m.ID, catalog.Dish{SubmenuID: uuid.New(), Title: "ghost", Price: "1.00"})
	kind, ok := catalog.NotFoundKind(err)
	if !ok || kind != catalog.KindSubmenu {
		t.Fatalf("got %v, want submenu not found", err)
	}
	if cacheStore.Len() != before {
		t.Fatalf("failed create changed cache keys: %v", cacheStore.Keys())
	}
}
