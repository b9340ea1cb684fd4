package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"expatrack-backend/internal/models"
	"expatrack-backend/internal/store"
)

// ExpatHandler handles expat collection HTTP requests.
type ExpatHandler struct {
	store *store.InMemory
}

// NewExpatHandler creates a new ExpatHandler.
func NewExpatHandler(s *store.InMemory) *ExpatHandler {
	return &ExpatHandler{store: s}
}

// List handles GET /api/expats
func (h *ExpatHandler) List(w http.ResponseWriter, r *http.Request) {
	expats := h.store.Expats()
	JSON(w, http.StatusOK, map[string]interface{}{
		"data":  expats,
		"total": len(expats),
	})
}

// GetByID handles GET /api/expats/{id}
func (h *ExpatHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	expat, found := h.store.ExpatByID(id)
	if !found {
		JSONError(w, http.StatusNotFound, "Expat not found")
		return
	}
	JSON(w, http.StatusOK, expat)
}

// Create handles POST /api/expats
// Registering an expat auto-starts their onboarding process; the permit
// stays "N/A" / In Process until it is issued.
func (h *ExpatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSONValidation(w, errs)
		return
	}

	expat := h.store.AddExpat(req)
	JSON(w, http.StatusCreated, expat)
}
