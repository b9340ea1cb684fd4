package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"expatrack-backend/internal/models"
	"expatrack-backend/internal/store"
)

// DocumentHandler handles digital document HTTP requests.
type DocumentHandler struct {
	store *store.InMemory
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(s *store.InMemory) *DocumentHandler {
	return &DocumentHandler{store: s}
}

// Add handles POST /api/expats/{id}/documents
// The document is metadata only — no file bytes pass through this service.
func (h *DocumentHandler) Add(w http.ResponseWriter, r *http.Request) {
	expatID := chi.URLParam(r, "id")

	var req models.AddDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSONValidation(w, errs)
		return
	}

	expat, found := h.store.AddDocument(expatID, req)
	if !found {
		JSONError(w, http.StatusNotFound, "Expat not found")
		return
	}
	JSON(w, http.StatusCreated, expat)
}

// Delete handles DELETE /api/expats/{id}/documents/{docId}
// Deleting an unknown document ID is a no-op: the expat is returned
// unchanged rather than erroring.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	expatID := chi.URLParam(r, "id")
	documentID := chi.URLParam(r, "docId")

	expat, found := h.store.DeleteDocument(expatID, documentID)
	if !found {
		JSONError(w, http.StatusNotFound, "Expat not found")
		return
	}
	JSON(w, http.StatusOK, expat)
}
