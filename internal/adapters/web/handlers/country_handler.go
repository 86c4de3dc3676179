package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

// CountryHandler exposes the static country directory.
type CountryHandler struct {
	Directory ports.CountryDirectory
}

// NewCountryHandler creates a new CountryHandler.
func NewCountryHandler(directory ports.CountryDirectory) *CountryHandler {
	return &CountryHandler{Directory: directory}
}

// HandleCountry returns directory metadata for an alpha-2 or alpha-3 code.
func (h *CountryHandler) HandleCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := mux.Vars(r)["code"]

	rec, ok := h.Directory.ByAlpha2(code)
	if !ok {
		// Alpha-3 codes go through the same correction table the pipeline uses.
		if match := h.Directory.Find(code, ""); match.Matched() {
			rec, ok = match.Record, true
		}
	}
	if !ok {
		http.Error(w, "Country not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
