package handlers

import (
	"net/http"

	"expatrack-backend/internal/permits"
	"expatrack-backend/internal/store"
)

// NotificationHandler handles notification HTTP requests. Notifications
// are derived fresh on every request from the snapshot and the current
// settings — nothing is stored.
type NotificationHandler struct {
	store *store.InMemory
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(s *store.InMemory) *NotificationHandler {
	return &NotificationHandler{store: s}
}

// List handles GET /api/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications := permits.ComputeNotifications(h.store.Expats(), h.store.Settings(), h.store.Now())
	JSON(w, http.StatusOK, map[string]interface{}{
		"data":  notifications,
		"total": len(notifications),
	})
}
