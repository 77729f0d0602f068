// Package cache defines the side-cache port of the menu catalog and the key
// scheme used to address cached objects.
//
// # Overview
//
// The package exports:
//
//   - Store: the key-value cache interface consumed by the catalogcache
//     orchestrator (get/set/delete over opaque byte blobs with a fixed expiry)
//   - Keys: the deterministic mapping from (entity kind, ids) to cache keys,
//     for both single-entity and collection entries
//   - Config / NewStore: a facade over the sturdyc-backed adapter in
//     internal/cacheinfra
//
// # Key Scheme
//
// Keys depend only on entity kind and ids:
//
//	menu::<id>                 single menu (with counts)
//	submenu::<id>              single submenu (with counts)
//	dish::<id>                 single dish
//	menus                      all menus
//	menu::<id>::submenus       submenus of a menu
//	submenu::<id>::dishes      dishes of a submenu
//
// Because ids are globally unique and segment counts differ between entity and
// collection keys, no two distinct objects ever map to the same key.
//
// # Miss vs Unavailable
//
// Store.Get separates a cache miss (not an error, triggers read-through) from
// backend unavailability (an error, logged and swallowed by the orchestrator).
// Callers must never treat a miss as a failure.
package cache
