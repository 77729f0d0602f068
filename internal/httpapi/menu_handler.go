package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/restokit/go-menu-cache/catalog"
	"github.com/restokit/go-menu-cache/catalogcache"
)

// pathUUID parses a path parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

type menuHandler struct {
	catalog *catalogcache.Catalog
	logger  *zap.Logger
}

func (h *menuHandler) list(w http.ResponseWriter, r *http.Request) {
	menus, err := h.catalog.ListMenus(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, menus)
}

func (h *menuHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "menuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "menu id must be a valid UUID")
		return
	}
	m, err := h.catalog.GetMenu(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (h *menuHandler) create(w http.ResponseWriter, r *http.Request) {
	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.catalog.CreateMenu(r.Context(), catalog.Menu{
		ID:          req.uuid(),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, catalog.MenuWithCounts{Menu: created})
}

func (h *menuHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "menuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "menu id must be a valid UUID")
		return
	}
	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.catalog.UpdateMenu(r.Context(), id, catalog.MenuPatch{
		Title:       req.Title,
		Description: req.Description,
	}); err != nil {
		respondError(w, h.logger, err)
		return
	}
	// Re-read through the cache so the response carries current counts.
	m, err := h.catalog.GetMenu(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (h *menuHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "menuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "menu id must be a valid UUID")
		return
	}
	if err := h.catalog.DeleteMenu(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondDeleted(w)
}
