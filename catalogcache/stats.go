package catalogcache

import "github.com/puzpuzpuz/xsync/v3"

// stats aggregates cache effectiveness counters across concurrent requests.
type stats struct {
	hits   *xsync.Counter
	misses *xsync.Counter
	errors *xsync.Counter
	purged *xsync.Counter
}

func newStats() *stats {
	return &stats{
		hits:   xsync.NewCounter(),
		misses: xsync.NewCounter(),
		errors: xsync.NewCounter(),
		purged: xsync.NewCounter(),
	}
}

// Stats is a point-in-time snapshot of the catalog's cache counters.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Errors int64 `json:"errors"`
	Purged int64 `json:"purged"`
}

// Stats reports cache hits, misses, backend errors and purged keys since the
// catalog was created.
func (c *Catalog) Stats() Stats {
	return Stats{
		Hits:   c.stats.hits.Value(),
		Misses: c.stats.misses.Value(),
		Errors: c.stats.errors.Value(),
		Purged: c.stats.purged.Value(),
	}
}
