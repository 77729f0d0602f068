package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/restokit/go-menu-cache/catalog"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, detailResponse{Detail: detail})
}

// respondDeleted is the fixed body every successful delete returns.
func respondDeleted(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, messageResponse{Message: "Success."})
}

// respondError maps catalog errors onto the wire: any not-found kind becomes
// a 404 with `{"detail": "<kind> not found"}`, everything else a 500.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if _, ok := catalog.NotFoundKind(err); ok {
		respondDetail(w, http.StatusNotFound, err.Error())
		return
	}
	logger.Error("request failed", zap.Error(err))
	respondDetail(w, http.StatusInternalServerError, "internal server error")
}
