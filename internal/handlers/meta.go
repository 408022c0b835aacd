package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

// ==========================
// MetaHandler
// ==========================
// MetaHandler serves the root, health, and readiness endpoints.
type MetaHandler struct {
	DB *sql.DB
}

// ==========================
// Root
// ==========================
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Welcome to Studdy API",
		"version": APIVersion,
	})
}

// ==========================
// Health
// ==========================
// Health is a liveness probe; it does not touch the database.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// ==========================
// Ready
// ==========================
// Ready pings the database so load balancers can hold traffic until the
// store is reachable.
func (h *MetaHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		JSONError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}
