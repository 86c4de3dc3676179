package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

// LookupService is the slice of the pipeline the web layer needs.
type LookupService interface {
	Lookup(ctx context.Context, lat, lng float64) domain.LocationInfo
}

// LookupHandler runs the click pipeline for map clicks.
type LookupHandler struct {
	Service   LookupService
	Publisher ports.Publisher
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(service LookupService, publisher ports.Publisher) *LookupHandler {
	return &LookupHandler{
		Service:   service,
		Publisher: publisher,
	}
}

// HandleLookup accepts a clicked coordinate and returns the assembled record.
// Overlapping clicks are not queued or cancelled; each request runs the full
// pipeline and the publisher arbitrates the shared panel state.
func (h *LookupHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1024)

	var req struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := domain.NewCoordinate(req.Lat, req.Lng); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec := h.Service.Lookup(r.Context(), req.Lat, req.Lng)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// HandleCurrent returns the currently displayed record, 204 before the first
// click.
func (h *LookupHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rec, ok := h.Publisher.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
