package handlers

import (
	"net/http"

	"github.com/yourhome24/expose/internal/config"
)

// ConfigHandler serves the form presets the UI offers as suggestions.
type ConfigHandler struct {
	presets config.PresetsConfig
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(presets config.PresetsConfig) *ConfigHandler {
	return &ConfigHandler{presets: presets}
}

// Get returns the preset tables. Values are suggestions only; the describe
// endpoint accepts any string.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.presets)
}
