package cache

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/restokit/go-menu-cache/catalog"
)

func joinWithSeparator(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

func TestKeys_EntityAndCollections(t *testing.T) {
	keys := Keys{}
	menuID := uuid.MustParse("9f9ce5a4-7de4-4a1c-a2f4-7fc3c5e4f101")
	submenuID := uuid.MustParse("4f0a2b1c-0d9e-47f7-b2ce-08f4b3a2c202")
	dishID := uuid.MustParse("7a1b3c5d-9e8f-4b6a-8c1d-2e3f4a5b6303")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "single menu",
			got:  keys.Entity(catalog.KindMenu, menuID),
			want: joinWithSeparator("menu", menuID.String()),
		},
		{
			name: "single submenu",
			got:  keys.Entity(catalog.KindSubmenu, submenuID),
			want: joinWithSeparator("submenu", submenuID.String()),
		},
		{
			name: "single dish",
			got:  keys.Entity(catalog.KindDish, dishID),
			want: joinWithSeparator("dish", dishID.String()),
		},
		{
			name: "menus collection",
			got:  keys.Menus(),
			want: "menus",
		},
		{
			name: "submenus of menu",
			got:  keys.Submenus(menuID),
			want: joinWithSeparator("menu", menuID.String(), "submenus"),
		},
		{
			name: "dishes of submenu",
			got:  keys.Dishes(submenuID),
			want: joinWithSeparator("submenu", submenuID.String(), "dishes"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// The scheme must be injective: the same id reached through different key
// constructors, or different ids through the same constructor, never collide.
func TestKeys_Injective(t *testing.T) {
	keys := Keys{}
	idA := uuid.MustParse("9f9ce5a4-7de4-4a1c-a2f4-7fc3c5e4f101")
	idB := uuid.MustParse("4f0a2b1c-0d9e-47f7-b2ce-08f4b3a2c202")

	all := []string{
		keys.Entity(catalog.KindMenu, idA),
		keys.Entity(catalog.KindSubmenu, idA),
		keys.Entity(catalog.KindDish, idA),
		keys.Entity(catalog.KindMenu, idB),
		keys.Menus(),
		keys.Submenus(idA),
		keys.Submenus(idB),
		keys.Dishes(idA),
	}

	seen := make(map[string]int, len(all))
	for i, key := range all {
		if prev, dup := seen[key]; dup {
			t.Errorf("keys %d and %d collide on %q", prev, i, key)
		}
		seen[key] = i
	}
}

// Keys must be stable across calls: no request-scoped or time-dependent input.
func TestKeys_Deterministic(t *testing.T) {
	keys := Keys{}
	id := uuid.MustParse("7a1b3c5d-9e8f-4b6a-8c1d-2e3f4a5b6303")

	for i := 0; i < 3; i++ {
		if got := keys.Entity(catalog.KindMenu, id); got != keys.Entity(catalog.KindMenu, id) {
			t.Fatalf("entity key not deterministic: %q", got)
		}
		if got := keys.Dishes(id); got != keys.Dishes(id) {
			t.Fatalf("collection key not deterministic: %q", got)
		}
	}
}
