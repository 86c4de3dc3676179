package handlers

import (
	"encoding/json"
	"net/http"
)

// ClientConfig is the subset of configuration the map page needs.
type ClientConfig struct {
	TileURL         string `json:"tileUrl"`
	TileAttribution string `json:"tileAttribution"`
	Version         string `json:"version"`
}

// ConfigHandler serves the client-facing configuration.
type ConfigHandler struct {
	Config ClientConfig
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(cfg ClientConfig) *ConfigHandler {
	return &ConfigHandler{Config: cfg}
}

// HandleConfig returns the tile provider settings for the map page.
func (h *ConfigHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Config)
}
