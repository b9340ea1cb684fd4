package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"expatrack-backend/internal/config"
	"expatrack-backend/internal/cron"
	"expatrack-backend/internal/handlers"
	"expatrack-backend/internal/middleware"
	"expatrack-backend/internal/store"
)

func main() {
	// 1. Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize the in-memory snapshot store. Persistence is an
	// external collaborator's job — this service is the source of truth
	// for one running instance only.
	db := store.NewInMemory()
	if cfg.SeedDemoData {
		db.Seed()
		log.Println("Demo fixture set loaded")
	}

	// 3. Set up router with global middleware
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 4. Initialize handlers with their dependencies
	expatHandler := handlers.NewExpatHandler(db)
	documentHandler := handlers.NewDocumentHandler(db)
	processHandler := handlers.NewProcessHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)

	// Start background cron jobs
	cron.StartNotifier(db)

	// 5. Routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Expat Work Permit Tracker API"))
	})
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		handlers.JSON(w, http.StatusOK, map[string]string{"status": "up"})
	})

	// Read endpoints — pure projections over the current snapshot
	r.Get("/api/expats", expatHandler.List)
	r.Get("/api/expats/{id}", expatHandler.GetByID)
	r.Get("/api/notifications", notificationHandler.List)
	r.Get("/api/dashboard/stats", dashboardHandler.GetStats)
	r.Get("/api/reports/metrics", dashboardHandler.GetReportMetrics)
	r.Get("/api/settings", settingsHandler.Get)

	// Write endpoints — rate limited; the store serializes writers so
	// commands apply one at a time against the snapshot
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rate.Limit(10), 20))

		r.Post("/api/expats", expatHandler.Create)
		r.Post("/api/expats/{id}/documents", documentHandler.Add)
		r.Delete("/api/expats/{id}/documents/{docId}", documentHandler.Delete)
		r.Post("/api/expats/{id}/renewal", processHandler.InitiateRenewal)
		r.Post("/api/expats/{id}/renewal-history", processHandler.AddRenewalRecord)
		r.Post("/api/expats/{id}/process/{type}/advance", processHandler.AdvanceStep)
		r.Patch("/api/expats/{id}/process/{type}/documents", processHandler.UpdateDocumentStatus)
		r.Put("/api/settings", settingsHandler.Save)
	})

	// 6. Start server with graceful shutdown
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server started on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-done
	log.Println("Server stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
