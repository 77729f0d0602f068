package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/restokit/go-menu-cache/catalog"
	"github.com/restokit/go-menu-cache/catalogcache"
)

type dishHandler struct {
	catalog *catalogcache.Catalog
	logger  *zap.Logger
}

func (h *dishHandler) list(w http.ResponseWriter, r *http.Request) {
	submenuID, ok := pathUUID(r, "submenuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "submenu id must be a valid UUID")
		return
	}
	dishes, err := h.catalog.ListDishes(r.Context(), submenuID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, dishes)
}

func (h *dishHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "dishID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "dish id must be a valid UUID")
		return
	}
	d, err := h.catalog.GetDish(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (h *dishHandler) create(w http.ResponseWriter, r *http.Request) {
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
	var req dishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.catalog.CreateDish(r.Context(), menuID, catalog.Dish{
		ID:          req.uuid(),
		SubmenuID:   submenuID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *dishHandler) update(w http.ResponseWriter, r *http.Request) {
	submenuID, ok := pathUUID(r, "submenuID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "submenu id must be a valid UUID")
		return
	}
	dishID, ok := pathUUID(r, "dishID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "dish id must be a valid UUID")
		return
	}
	var req dishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.catalog.UpdateDish(r.Context(), submenuID, dishID, catalog.DishPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *dishHandler) delete(w http.ResponseWriter, r *http.Request) {
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
	dishID, ok := pathUUID(r, "dishID")
	if !ok {
		respondDetail(w, http.StatusBadRequest, "dish id must be a valid UUID")
		return
	}
	if err := h.catalog.DeleteDish(r.Context(), menuID, submenuID, dishID); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondDeleted(w)
}
