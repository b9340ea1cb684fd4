package handlers

import (
	"encoding/json"
	"net/http"

	"expatrack-backend/internal/models"
	"expatrack-backend/internal/store"
)

// SettingsHandler handles notification settings HTTP requests.
type SettingsHandler struct {
	store *store.InMemory
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s *store.InMemory) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// Get handles GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.store.Settings())
}

// Save handles PUT /api/settings
// Saves replace the whole structure — a partial body silently zeroes the
// omitted fields, so the frontend always sends the complete settings.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var settings models.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := settings.Validate(); len(errs) > 0 {
		JSONValidation(w, errs)
		return
	}

	saved := h.store.SaveSettings(settings)
	JSON(w, http.StatusOK, saved)
}
