package cache

import (
	"strings"

	"github.com/google/uuid"

	"github.com/restokit/go-menu-cache/catalog"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// Keys maps catalog objects to cache keys. Keys are derived purely from the
// entity kind and ids, never from request path text, so an entity reached
// through different routes always lands on the same key.
//
// The scheme is injective: entity keys are exactly two segments
// ("<kind>::<id>"), collection keys are either the fixed "menus" root or three
// segments ending in a literal child-kind suffix ("menu::<id>::submenus"),
// and ids are globally unique across kinds.
type Keys struct{}

// Entity returns the key holding the single-entity representation of id.
// Ids are globally unique, so no ancestor segments are needed.
func (Keys) Entity(kind catalog.Kind, id uuid.UUID) string {
	return join(string(kind), id.String())
}

// Menus returns the key holding the collection of all menus.
func (Keys) Menus() string {
	return "menus"
}

// Submenus returns the key holding the collection of submenus under a menu.
func (Keys) Submenus(menuID uuid.UUID) string {
	return join(string(catalog.KindMenu), menuID.String(), "submenus")
}

// Dishes returns the key holding the collection of dishes under a submenu.
func (Keys) Dishes(submenuID uuid.UUID) string {
	return join(string(catalog.KindSubmenu), submenuID.String(), "dishes")
}

func join(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}
