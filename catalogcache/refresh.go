package catalogcache

import "context"

type refreshContextKey struct{}

// WithRefresh marks the context so subsequent reads bypass the cache lookup
// and repopulate from the entity store. Counters are eventually exact under
// concurrent writers; a refreshed read observes the authoritative values.
func WithRefresh(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, refreshContextKey{}, true)
}

func refreshRequested(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(refreshContextKey{}).(bool)
	return v
}
