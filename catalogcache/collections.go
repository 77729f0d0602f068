package catalogcache

import "context"

// Collection entries are opaque blobs holding a whole slice, so membership
// changes are decode-rewrite, never in-place edits.

// appendToCollection adds item to a cached collection entry when one is
// present. An absent collection is left absent: writing a fresh single-item
// list would hide every uncached sibling until the entry expired.
func appendToCollection[T any](ctx context.Context, c *Catalog, key string, item T) {
	blob, ok := c.cacheGet(ctx, key)
	if !ok {
		return
	}

	var items []T
	if err := decode(blob, &items); err != nil {
		c.cacheDelete(ctx, key)
		return
	}
	items = append(items, item)
	c.cacheSet(ctx, key, items)
}

// removeFromCollection rewrites a cached collection without the matching
// items. An absent entry is treated as empty; there is nothing to rewrite and
// nothing to lose.
func removeFromCollection[T any](ctx context.Context, c *Catalog, key string, match func(T) bool) {
	blob, ok := c.cacheGet(ctx, key)
	if !ok {
		return
	}

	var items []T
	if err := decode(blob, &items); err != nil {
		c.cacheDelete(ctx, key)
		return
	}

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	c.cacheSet(ctx, key, kept)
}
