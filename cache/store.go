package cache

import "context"

// Store is the key-value side cache consumed by the catalog. Values are opaque
// byte blobs with a fixed client-level expiry; the store is never authoritative.
//
// Get distinguishes a miss (ok == false, err == nil) from the backend being
// unavailable (err != nil). A miss is not an error condition: readers fall back
// to the entity store and repopulate.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
