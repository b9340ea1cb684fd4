package handlers

import (
	"net/http"

	"expatrack-backend/internal/reports"
	"expatrack-backend/internal/store"
)

// DashboardHandler handles dashboard and report HTTP requests. Everything
// here is a pure projection over the current snapshot.
type DashboardHandler struct {
	store *store.InMemory
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(s *store.InMemory) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := reports.DashboardStats(h.store.Expats(), h.store.Now())
	JSON(w, http.StatusOK, stats)
}

// GetReportMetrics handles GET /api/reports/metrics
func (h *DashboardHandler) GetReportMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := reports.ReportMetrics(h.store.Expats())
	JSON(w, http.StatusOK, metrics)
}
