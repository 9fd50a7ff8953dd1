// Package api provides HTTP API handlers.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/tshehlatshego/checkmate/internal/check"
	"github.com/tshehlatshego/checkmate/internal/database"
	"github.com/tshehlatshego/checkmate/internal/models"
)

// Handler contains all HTTP handlers.
type Handler struct {
	engine *check.Engine
	store  database.Store
}

// NewHandler creates a new handler.
func NewHandler(engine *check.Engine, store database.Store) *Handler {
	return &Handler{
		engine: engine,
		store:  store,
	}
}

// HealthCheck returns the service health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

// FactCheck handles a fact-check request for a single claim.
func (h *Handler) FactCheck(w http.ResponseWriter, r *http.Request) {
	claim := r.URL.Query().Get("claim")
	if claim == "" {
		writeError(w, http.StatusBadRequest, "Invalid input. 'claim' parameter is required.")
		return
	}

	result, err := h.engine.Check(r.Context(), claim)
	if err != nil {
		log.Error().Err(err).Msg("Fact check failed")
		writeError(w, http.StatusInternalServerError, "Fact check failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetCheck returns a persisted fact-check by id.
func (h *Handler) GetCheck(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	fc, err := h.store.GetFactCheck(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get fact check")
		writeError(w, http.StatusInternalServerError, "Failed to get fact check")
		return
	}
	if fc == nil {
		writeError(w, http.StatusNotFound, "Fact check not found")
		return
	}

	writeJSON(w, http.StatusOK, fc)
}

// ListChecks returns paginated fact-checks, optionally filtered by status.
func (h *Handler) ListChecks(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	status := models.CheckStatus(r.URL.Query().Get("status"))
	if status != "" && status != models.StatusPending && status != models.StatusCompleted {
		writeError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	checks, err := h.store.ListFactChecks(r.Context(), status, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list fact checks")
		writeError(w, http.StatusInternalServerError, "Failed to list fact checks")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": checks,
		"limit":   limit,
		"offset":  offset,
	})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
