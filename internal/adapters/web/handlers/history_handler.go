package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// HistoryHandler serves past lookups from the store.
type HistoryHandler struct {
	Store ports.LookupStore
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store ports.LookupStore) *HistoryHandler {
	return &HistoryHandler{Store: store}
}

// HandleHistory returns recent lookups, newest first. The limit query
// parameter is clamped to [1, 500].
func (h *HistoryHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = n
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.Store.RecentLookups(limit)
	if err != nil {
		slog.Error("failed to load lookup history", "error", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
