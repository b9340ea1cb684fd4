package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expatrack-backend/internal/models"
	"expatrack-backend/internal/store"
)

var testNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

// newRouter wires the full route table against a fresh store, mirroring
// cmd/api. Rate limiting stays off so tests can hammer the surface.
func newRouter(t *testing.T) (http.Handler, *store.InMemory) {
	t.Helper()

	db := store.NewInMemoryWithClock(func() time.Time { return testNow })

	expatHandler := NewExpatHandler(db)
	documentHandler := NewDocumentHandler(db)
	processHandler := NewProcessHandler(db)
	dashboardHandler := NewDashboardHandler(db)
	notificationHandler := NewNotificationHandler(db)
	settingsHandler := NewSettingsHandler(db)

	r := chi.NewRouter()
	r.Get("/api/expats", expatHandler.List)
	r.Get("/api/expats/{id}", expatHandler.GetByID)
	r.Get("/api/notifications", notificationHandler.List)
	r.Get("/api/dashboard/stats", dashboardHandler.GetStats)
	r.Get("/api/reports/metrics", dashboardHandler.GetReportMetrics)
	r.Get("/api/settings", settingsHandler.Get)
	r.Post("/api/expats", expatHandler.Create)
	r.Post("/api/expats/{id}/documents", documentHandler.Add)
	r.Delete("/api/expats/{id}/documents/{docId}", documentHandler.Delete)
	r.Post("/api/expats/{id}/renewal", processHandler.InitiateRenewal)
	r.Post("/api/expats/{id}/renewal-history", processHandler.AddRenewalRecord)
	r.Post("/api/expats/{id}/process/{type}/advance", processHandler.AdvanceStep)
	r.Patch("/api/expats/{id}/process/{type}/documents", processHandler.UpdateDocumentStatus)
	r.Put("/api/settings", settingsHandler.Save)
	return r, db
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeExpat(t *testing.T, rec *httptest.ResponseRecorder) models.Expat {
	t.Helper()
	var e models.Expat
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	return e
}

func TestCreateExpatLifecycle(t *testing.T) {
	router, _ := newRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/expats", models.CreateExpatRequest{
		Name:        "Kenji Tanaka",
		Nationality: "Japan",
		JobTitle:    "Lead Software Engineer",
		Department:  "Technology",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeExpat(t, rec)
	assert.Equal(t, models.PermitInProcess, created.CurrentPermit.Status)
	require.NotNil(t, created.OnboardingProcess)
	assert.Equal(t, models.StageDocCollection, created.OnboardingProcess.CurrentStage)

	// Advance onboarding through the API
	rec = doJSON(t, router, http.MethodPost, "/api/expats/"+created.ID+"/process/onboarding/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	advanced := decodeExpat(t, rec)
	assert.Equal(t, models.StageVendorSubmission, advanced.OnboardingProcess.CurrentStage)

	// Mark a physical document submitted
	rec = doJSON(t, router, http.MethodPatch, "/api/expats/"+created.ID+"/process/onboarding/documents", models.UpdateDocumentStatusRequest{
		Category: models.CategoryPassport,
		Status:   models.DocSubmitted,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeExpat(t, rec)
	assert.Equal(t, models.DocSubmitted, patched.OnboardingProcess.PhysicalDocuments[0].Status)
}

func TestCreateExpatValidation(t *testing.T) {
	router, _ := newRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/expats", models.CreateExpatRequest{Name: "K"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Contains(t, resp.Details, "name")
	assert.Contains(t, resp.Details, "nationality")
}

func TestDocumentRoutes(t *testing.T) {
	router, db := newRouter(t)
	e := db.AddExpat(models.CreateExpatRequest{Name: "Maria Santos", Nationality: "Philippines", JobTitle: "Director", Department: "Marketing"})

	rec := doJSON(t, router, http.MethodPost, "/api/expats/"+e.ID+"/documents", models.AddDocumentRequest{
		Name:     "Santos_Passport.pdf",
		Category: models.CategoryPassport,
		URL:      "#",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	withDoc := decodeExpat(t, rec)
	require.Len(t, withDoc.Documents, 1)

	rec = doJSON(t, router, http.MethodDelete, "/api/expats/"+e.ID+"/documents/"+withDoc.Documents[0].ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeExpat(t, rec).Documents)

	t.Run("unknown expat is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/expats/ghost/documents", models.AddDocumentRequest{
			Name: "x.pdf", Category: models.CategoryOther,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid process type is 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/expats/"+e.ID+"/process/sideways/advance", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotificationsEndpoint(t *testing.T) {
	router, db := newRouter(t)
	db.Seed()

	rec := doJSON(t, router, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data  []models.Notification `json:"data"`
		Total int                   `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, len(resp.Data), resp.Total)

	// The seed contains at least one permit inside the 60-day window,
	// sorted soonest first
	require.NotEmpty(t, resp.Data)
	for i := 1; i < len(resp.Data); i++ {
		assert.NotEmpty(t, resp.Data[i].Message)
	}

	t.Run("disabling notifications empties the feed", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/settings", models.NotificationSettings{
			Enabled:  false,
			Channels: []models.NotificationChannel{models.ChannelInApp},
			LeadTime: 60,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/notifications", nil)
		var resp struct {
			Data  []models.Notification `json:"data"`
			Total int                   `json:"total"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Zero(t, resp.Total)
	})
}

func TestSettingsRoundTripOverHTTP(t *testing.T) {
	router, _ := newRouter(t)

	want := models.NotificationSettings{
		Enabled:  true,
		Channels: []models.NotificationChannel{models.ChannelInApp, models.ChannelEmail},
		LeadTime: 90,
		EmailSettings: &models.EmailSettings{
			SendCalendarInvites: true,
			ReminderIntervals:   []models.ReminderInterval{models.Remind14Days, models.Remind60Days},
		},
	}

	rec := doJSON(t, router, http.MethodPut, "/api/settings", want)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.NotificationSettings
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, want, got)

	t.Run("invalid lead time is rejected", func(t *testing.T) {
		bad := want
		bad.LeadTime = 45
		rec := doJSON(t, router, http.MethodPut, "/api/settings", bad)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestDashboardAndReports(t *testing.T) {
	router, db := newRouter(t)
	db.Seed()

	rec := doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.DashboardStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))

	sum := 0
	for _, c := range stats.StatusDistribution.Counts {
		sum += c
	}
	assert.Equal(t, stats.StatusDistribution.Total, sum)
	assert.NotEmpty(t, stats.NationalityDistribution)

	rec = doJSON(t, router, http.MethodGet, "/api/reports/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var metrics models.ReportMetrics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&metrics))
	assert.NotZero(t, metrics.InRenewal)
	assert.NotEmpty(t, metrics.OutstandingDocs)
}
