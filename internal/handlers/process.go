package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"expatrack-backend/internal/models"
	"expatrack-backend/internal/store"
)

// ProcessHandler handles workflow HTTP requests: renewal initiation, step
// advancement, the physical checklist and renewal history.
type ProcessHandler struct {
	store *store.InMemory
}

// NewProcessHandler creates a new ProcessHandler.
func NewProcessHandler(s *store.InMemory) *ProcessHandler {
	return &ProcessHandler{store: s}
}

// processType resolves the {type} URL segment. ok is false for anything
// other than "onboarding" or "renewal".
func processType(r *http.Request) (models.ProcessType, bool) {
	switch t := chi.URLParam(r, "type"); t {
	case string(models.ProcessOnboarding):
		return models.ProcessOnboarding, true
	case string(models.ProcessRenewal):
		return models.ProcessRenewal, true
	default:
		return "", false
	}
}

// InitiateRenewal handles POST /api/expats/{id}/renewal
// The store applies the initiation guard (permit Expires Soon, no renewal
// process yet); a failed guard leaves the expat unchanged, which the
// response reflects.
func (h *ProcessHandler) InitiateRenewal(w http.ResponseWriter, r *http.Request) {
	expatID := chi.URLParam(r, "id")

	expat, found := h.store.InitiateRenewal(expatID)
	if !found {
		JSONError(w, http.StatusNotFound, "Expat not found")
		return
	}
	JSON(w, http.StatusOK, expat)
}

// AdvanceStep handles POST /api/expats/{id}/process/{type}/advance
// Advancing with no step in progress, or at the last step, is a no-op.
func (h *ProcessHandler) AdvanceStep(w http.ResponseWriter, r *http.Request) {
	expatID := chi.URLParam(r, "id")

	t, ok := processType(r)
	if !ok {
		JSONError(w, http.StatusBadRequest, "Process type must be onboarding or renewal")
		return
	}

	expat, found := h.store.AdvanceStep(expatID, t)
	if !found {
		JSONError(w, http.StatusNotFound, "Expat not found")
		return
	}
	JSON(w, http.StatusOK, expat)
}

// UpdateDocumentStatus handles PATCH /api/expats/{id}/process/{type}/documents
func (h *ProcessHandler) UpdateDocumentStatus(w http.ResponseWriter, r *http.Request) {
	expatID := chi.URLParam(r, "id")

	t, ok := processType(r)
	if !ok {
		JSONError(w, http.StatusBadRequest, "Process type must be onboarding or renewal")
		return
	}

	var req models.UpdateDocumentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSONValidation(w, errs)
		return
	}

	expat, found := h.store.UpdateDocumentStatus(expatID, t, req.Category, req.Status)
	if !found {
		JSONError(w, http.StatusNotFound, "Expat not found")
		return
	}
	JSON(w, http.StatusOK, expat)
}

// AddRenewalRecord handles POST /api/expats/{id}/renewal-history
func (h *ProcessHandler) AddRenewalRecord(w http.ResponseWriter, r *http.Request) {
	expatID := chi.URLParam(r, "id")

	var req models.AddRenewalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSONValidation(w, errs)
		return
	}

	expat, found := h.store.AddRenewalRecord(expatID, req)
	if !found {
		JSONError(w, http.StatusNotFound, "Expat not found")
		return
	}
	JSON(w, http.StatusCreated, expat)
}
