// Package httpapi exposes the menu catalog over REST. Handlers are thin: they
// parse identifiers and bodies, call the cached catalog and translate its
// errors onto the wire.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/restokit/go-menu-cache/catalogcache"
)

// NewRouter builds the full API surface under /api/v1.
func NewRouter(cat *catalogcache.Catalog, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	menus := &menuHandler{catalog: cat, logger: logger}
	submenus := &submenuHandler{catalog: cat, logger: logger}
	dishes := &dishHandler{catalog: cat, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stats", func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, http.StatusOK, cat.Stats())
		})

		r.Route("/menus", func(r chi.Router) {
			r.Get("/", menus.list)
			r.Post("/", menus.create)

			r.Route("/{menuID}", func(r chi.Router) {
				r.Get("/", menus.get)
				r.Patch("/", menus.update)
				r.Delete("/", menus.delete)

				r.Route("/submenus", func(r chi.Router) {
					r.Get("/", submenus.list)
					r.Post("/", submenus.create)

					r.Route("/{submenuID}", func(r chi.Router) {
						r.Get("/", submenus.get)
						r.Patch("/", submenus.update)
						r.Delete("/", submenus.delete)

						r.Route("/dishes", func(r chi.Router) {
							r.Get("/", dishes.list)
							r.Post("/", dishes.create)

							r.Route("/{dishID}", func(r chi.Router) {
								r.Get("/", dishes.get)
								r.Patch("/", dishes.update)
								r.Delete("/", dishes.delete)
							})
						})
					})
				})
			})
		})
	})

	return r
}
