// Package di wires the service's components together: configuration, database,
// cache store, cached catalog and the HTTP router. It manages singleton
// instances so every consumer shares the same cache and connection pool.
package di

import (
	"context"
	"net/http"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/restokit/go-menu-cache/cache"
	"github.com/restokit/go-menu-cache/catalogcache"
	"github.com/restokit/go-menu-cache/internal/config"
	"github.com/restokit/go-menu-cache/internal/httpapi"
	"github.com/restokit/go-menu-cache/storage"
)

// Container holds the wired singletons for one service instance.
type Container struct {
	cfg     config.Config
	logger  *zap.Logger
	db      *bun.DB
	store   *storage.Store
	cache   cache.Store
	catalog *catalogcache.Catalog
	router  http.Handler
}

// New builds a container from configuration. A Postgres DSN selects the
// Postgres backend; otherwise the embedded SQLite database is used.
func New(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cacheStore, err := cache.NewStore(cache.Config{
		Capacity:           cfg.CacheCapacity,
		NumShards:          cfg.CacheShards,
		TTL:                cfg.CacheTTL,
		EvictionPercentage: cfg.CacheEvictPct,
	})
	if err != nil {
		return nil, err
	}

	var db *bun.DB
	if cfg.DatabaseURL != "" {
		db, err = storage.OpenPostgres(cfg.DatabaseURL)
	} else {
		db, err = storage.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		return nil, err
	}

	store := storage.New(db)
	cat := catalogcache.New(store, cacheStore, logger)

	return &Container{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		store:   store,
		cache:   cacheStore,
		catalog: cat,
		router:  httpapi.NewRouter(cat, logger),
	}, nil
}

// EnsureSchema creates the database tables when they do not exist yet.
func (c *Container) EnsureSchema(ctx context.Context) error {
	return c.store.EnsureSchema(ctx)
}

// Catalog returns the cached catalog singleton.
func (c *Container) Catalog() *catalogcache.Catalog {
	return c.catalog
}

// Store returns the entity store singleton.
func (c *Container) Store() *storage.Store {
	return c.store
}

// Cache returns the cache store singleton.
func (c *Container) Cache() cache.Store {
	return c.cache
}

// Router returns the HTTP handler serving the REST API.
func (c *Container) Router() http.Handler {
	return c.router
}

// Close releases the database connection pool.
func (c *Container) Close() error {
	return c.db.Close()
}
