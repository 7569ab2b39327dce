package handler

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	err := h.db.Ping()
	if err != nil {
		slog.Error("health check failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"status": "degraded"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
