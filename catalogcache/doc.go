// Package catalogcache layers read-through caching and write-through
// invalidation over the menu catalog's entity store.
//
// # Overview
//
// Catalog decorates an EntityStore with a cache.Store. Reads consult the cache
// first and repopulate it on a miss; writes go to the entity store first (the
// only source of truth) and then apply the exact set of cache effects that
// keep subsequent reads correct:
//
//   - creates append to the owning collection entry and write a fresh
//     single-entity entry
//   - updates drop the single-entity entry and the owning collection entry
//   - deletes purge the entity's whole cached subtree, mirroring the
//     relational cascade, and adjust the ancestor counters
//
// Cached menu and submenu representations carry aggregate counts
// (submenus_count, dishes_count). Counter maintenance keeps those counts in
// step with child mutations without re-querying: increments and decrements are
// applied to the cached parent entry in place, and skipped silently when the
// parent is not cached, because the next read recomputes exact counts anyway.
// A decrement is never guessed: deleting a submenu whose cached dish count is
// unknown recomputes it from the entity store.
//
// # Failure semantics
//
// The entity store write is the transactional boundary. Cache operations are
// best-effort post-write side effects: a miss is a skip, and a failing cache
// backend is logged and swallowed, degrading to a fresh entity store read on
// the next request. Cache problems never surface as request failures.
//
// # Concurrency
//
// Requests run concurrently with no global lock. Counter adjustments are
// read-modify-write on a single cache entry and may lose updates when two
// writers race on the same parent; counters are eventually exact, restored by
// the next cache miss or refresh. Use WithRefresh to force reads past the
// cache after serializing writes.
package catalogcache
