// Package store holds the process-wide expat collection and notification
// settings in memory and exposes the command surface the handlers call.
//
// Mutations follow read-derive-replace semantics: a command reads the
// current collection, derives a new one reflecting the change, and
// installs it under the lock as the sole source of truth. No caller ever
// observes a half-applied command. Reads hand out deep-copied snapshots
// with permit statuses refreshed against the wall clock, so the cached
// status field on a permit can never escape stale.
//
// Commands referencing an unknown expat or document are no-ops (fail
// soft): the collection is left unchanged and the command reports
// found=false instead of raising.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"expatrack-backend/internal/models"
	"expatrack-backend/internal/permits"
	"expatrack-backend/internal/process"
)

// InMemory is the single source of truth for the running service.
type InMemory struct {
	mu       sync.RWMutex
	expats   []models.Expat
	settings models.NotificationSettings
	clock    func() time.Time
}

// NewInMemory creates an empty store with default notification settings.
func NewInMemory() *InMemory {
	return NewInMemoryWithClock(time.Now)
}

// NewInMemoryWithClock creates a store with an injected clock. Tests use
// this to pin "now".
func NewInMemoryWithClock(clock func() time.Time) *InMemory {
	return &InMemory{
		settings: models.DefaultSettings(),
		clock:    clock,
	}
}

// ── Read Accessors ───────────────────────────────────────────────

// Expats returns a deep-copied snapshot of the collection with every
// permit's cached status recomputed for the current time and lead time.
func (s *InMemory) Expats() []models.Expat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock()
	out := make([]models.Expat, 0, len(s.expats))
	for _, e := range s.expats {
		c := e.Clone()
		c.CurrentPermit = permits.RefreshPermit(c.CurrentPermit, s.settings.LeadTime, now)
		out = append(out, c)
	}
	return out
}

// ExpatByID returns one refreshed expat. found is false for unknown IDs.
func (s *InMemory) ExpatByID(id string) (models.Expat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.expats {
		if e.ID == id {
			c := e.Clone()
			c.CurrentPermit = permits.RefreshPermit(c.CurrentPermit, s.settings.LeadTime, s.clock())
			return c, true
		}
	}
	return models.Expat{}, false
}

// Settings returns a copy of the current notification settings.
func (s *InMemory) Settings() models.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// Now exposes the store clock so handlers derive against the same time
// the snapshot was refreshed with.
func (s *InMemory) Now() time.Time {
	return s.clock()
}

// ── Write Commands ───────────────────────────────────────────────

// AddExpat registers a new expat with an "N/A" permit and immediately
// starts the onboarding process. Input is assumed validated by the
// caller.
func (s *InMemory) AddExpat(req models.CreateExpatRequest) models.Expat {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	onboarding := process.NewOnboarding(now)
	e := models.Expat{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Nationality: req.Nationality,
		AvatarURL:   req.AvatarURL,
		JobTitle:    req.JobTitle,
		Department:  req.Department,
		CurrentPermit: models.WorkPermit{
			ID:           uuid.NewString(),
			PermitNumber: models.DateNotApplicable,
			IssueDate:    models.DateNotApplicable,
			ExpiryDate:   models.DateNotApplicable,
			Status:       models.PermitInProcess,
		},
		Documents:         []models.Document{},
		RenewalHistory:    []models.RenewalRecord{},
		OnboardingProcess: &onboarding,
	}

	next := append([]models.Expat{e}, s.expats...)
	s.expats = next
	return e.Clone()
}

// AddDocument appends a digital document to the expat's list.
func (s *InMemory) AddDocument(expatID string, req models.AddDocumentRequest) (models.Expat, bool) {
	doc := models.Document{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Category:   req.Category,
		UploadDate: s.clock().Format(permits.DateLayout),
		URL:        req.URL,
	}
	return s.updateExpat(expatID, func(e models.Expat) models.Expat {
		e.Documents = append(e.Documents, doc)
		return e
	})
}

// DeleteDocument removes a digital document by ID. An unknown document ID
// leaves the expat unchanged.
func (s *InMemory) DeleteDocument(expatID, documentID string) (models.Expat, bool) {
	return s.updateExpat(expatID, func(e models.Expat) models.Expat {
		kept := e.Documents[:0]
		for _, d := range e.Documents {
			if d.ID != documentID {
				kept = append(kept, d)
			}
		}
		e.Documents = kept
		return e
	})
}

// InitiateRenewal starts a renewal process. The engine does not enforce
// the initiation precondition, so the guard lives here: the permit must
// currently derive to Expires Soon and no renewal process may already
// exist. A failed guard is a no-op on the collection.
func (s *InMemory) InitiateRenewal(expatID string) (models.Expat, bool) {
	now := s.clock()
	return s.updateExpat(expatID, func(e models.Expat) models.Expat {
		status := permits.DeriveStatus(e.CurrentPermit.ExpiryDate, s.settings.LeadTime, now)
		if status != models.PermitExpiresSoon || e.RenewalProcess != nil {
			return e
		}
		renewal := process.NewRenewal(now)
		e.RenewalProcess = &renewal
		return e
	})
}

// UpdateDocumentStatus replaces one physical checklist entry's status on
// the expat's process of the given type. Missing process or unknown
// category are no-ops.
func (s *InMemory) UpdateDocumentStatus(expatID string, t models.ProcessType, category models.DocumentCategory, status models.PhysicalDocumentStatus) (models.Expat, bool) {
	return s.updateExpat(expatID, func(e models.Expat) models.Expat {
		p := e.Process(t)
		if p == nil {
			return e
		}
		updated := process.SetDocumentStatus(*p, category, status)
		setProcess(&e, t, updated)
		return e
	})
}

// AdvanceStep moves the expat's process of the given type to its next
// step. The engine's own preconditions make this a no-op at the last
// step or with no step in progress.
func (s *InMemory) AdvanceStep(expatID string, t models.ProcessType) (models.Expat, bool) {
	now := s.clock()
	return s.updateExpat(expatID, func(e models.Expat) models.Expat {
		p := e.Process(t)
		if p == nil {
			return e
		}
		advanced := process.Advance(*p, now)
		setProcess(&e, t, advanced)
		return e
	})
}

// AddRenewalRecord appends a historical renewal outcome.
func (s *InMemory) AddRenewalRecord(expatID string, req models.AddRenewalRecordRequest) (models.Expat, bool) {
	record := models.RenewalRecord{
		ID:                     uuid.NewString(),
		RenewalApplicationDate: req.RenewalApplicationDate,
		Status:                 req.Status,
		DecisionDate:           req.DecisionDate,
	}
	return s.updateExpat(expatID, func(e models.Expat) models.Expat {
		e.RenewalHistory = append(e.RenewalHistory, record)
		return e
	})
}

// SaveSettings replaces the notification settings wholesale. There is no
// field-level merge: the caller sends the complete structure.
func (s *InMemory) SaveSettings(settings models.NotificationSettings) models.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings.Clone()
	return s.settings.Clone()
}

// ── Internals ────────────────────────────────────────────────────

// updateExpat applies fn to a clone of the matching expat and installs a
// new collection containing the result. Unknown IDs install nothing and
// report found=false.
func (s *InMemory) updateExpat(id string, fn func(models.Expat) models.Expat) (models.Expat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.expats {
		if e.ID != id {
			continue
		}
		updated := fn(e.Clone())

		next := make([]models.Expat, len(s.expats))
		copy(next, s.expats)
		next[i] = updated
		s.expats = next

		c := updated.Clone()
		c.CurrentPermit = permits.RefreshPermit(c.CurrentPermit, s.settings.LeadTime, s.clock())
		return c, true
	}
	return models.Expat{}, false
}

func setProcess(e *models.Expat, t models.ProcessType, p models.Process) {
	if t == models.ProcessRenewal {
		e.RenewalProcess = &p
	} else {
		e.OnboardingProcess = &p
	}
}
