package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/restokit/go-menu-cache/catalog"
	"github.com/restokit/go-menu-cache/catalogcache"
)

type submenuHandler struct {
	catalog *catalogcache.Catalog
	logger  *zap.Logger
}

func (h *submenuHandler) list(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(r, "menuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "menu id must be a valid UUID")
		return
	}
	submenus, err := h.catalog.ListSubmenus(r.Context(), menuID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, submenus)
}

func (h *submenuHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "submenuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "submenu id must be a valid UUID")
		return
	}
	s, err := h.catalog.GetSubmenu(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

func (h *submenuHandler) create(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(r, "menuID")
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

	created, err := h.catalog.CreateSubmenu(r.Context(), catalog.Submenu{
		ID:          req.uuid(),
		MenuID:      menuID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, catalog.SubmenuWithCounts{Submenu: created})
}

func (h *submenuHandler) update(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(r, "menuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "menu id must be a valid UUID")
		return
	}
	submenuID, ok := pathUUID(r, "submenuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "submenu id must be a valid UUID")
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

	if _, err := h.catalog.UpdateSubmenu(r.Context(), menuID, submenuID, catalog.MenuPatch{
		Title:       req.Title,
		Description: req.Description,
	}); err != nil {
		respondError(w, h.logger, err)
		return
	}
	s, err := h.catalog.GetSubmenu(r.Context(), submenuID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

func (h *submenuHandler) delete(w http.ResponseWriter, r *http.Request) {
	menuID, ok := pathUUID(r, "menuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "menu id must be a valid UUID")
		return
	}
	submenuID, ok := pathUUID(r, "submenuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "submenu id must be a valid UUID")
		return
	}
	if err := h.catalog.DeleteSubmenu(r.Context(), menuID, submenuID); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondDeleted(w)
}
