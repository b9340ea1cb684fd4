// Package process implements the four-step application workflow shared by
// onboarding and renewal: step advancement, the physical-document
// checklist, and process templates. All operations are pure — they return
// a new Process and never touch their input, matching the store's
// read-derive-replace mutation style.
package process

import (
	"time"

	"expatrack-backend/internal/models"
)

// DateLayout mirrors the boundary date format.
const DateLayout = "2006-01-02"

// ── Templates ────────────────────────────────────────────────────

// StepOrder is the fixed sequence of workflow stages.
var StepOrder = []models.ProcessStage{
	models.StageDocCollection,
	models.StageVendorSubmission,
	models.StageGovtApproval,
	models.StagePermitIssued,
}

// onboardingChecklist lists the paper documents collected for a first
// permit application.
var onboardingChecklist = []models.DocumentCategory{
	models.CategoryPassport,
	models.CategoryContract,
	models.CategoryDegree,
	models.CategoryHealthCheck,
	models.CategoryPhoto,
}

// Renewal additionally needs proof of the prior permit.
var renewalChecklist = append(append([]models.DocumentCategory(nil), onboardingChecklist...), models.CategoryOldPermit)

func newProcess(checklist []models.DocumentCategory, now time.Time) models.Process {
	steps := make([]models.ProcessStep, 0, len(StepOrder))
	for _, stage := range StepOrder {
		steps = append(steps, models.ProcessStep{Name: stage, Status: models.StepPending})
	}
	// The first step starts immediately
	steps[0].Status = models.StepInProgress
	steps[0].Date = now.Format(DateLayout)

	docs := make([]models.PhysicalDocument, 0, len(checklist))
	for _, cat := range checklist {
		docs = append(docs, models.PhysicalDocument{Name: cat, Status: models.DocNotRequested})
	}

	return models.Process{
		CurrentStage:      steps[0].Name,
		Steps:             steps,
		PhysicalDocuments: docs,
	}
}

// NewOnboarding instantiates a fresh onboarding process with Document
// Collection already in progress.
func NewOnboarding(now time.Time) models.Process {
	return newProcess(onboardingChecklist, now)
}

// NewRenewal instantiates a fresh renewal process. Callers are
// responsible for the initiation guard: the expat's permit must be
// Expires Soon and no renewal process may already exist — the engine
// itself does not check either.
func NewRenewal(now time.Time) models.Process {
	return newProcess(renewalChecklist, now)
}

// ── Step Advancement ─────────────────────────────────────────────

// Advance completes the current In Progress step and starts the next one,
// dating both with now and updating CurrentStage.
//
// It is a no-op — the returned process is structurally identical to the
// input — when no step is In Progress or when the In Progress step is the
// last one. There is no transition out of the last step: completion is
// inferred with IsComplete, not modeled as an explicit state change.
func Advance(p models.Process, now time.Time) models.Process {
	idx := inProgressIndex(p)
	if idx == -1 || idx == len(p.Steps)-1 {
		return p.Clone()
	}

	out := p.Clone()
	date := now.Format(DateLayout)
	out.Steps[idx].Status = models.StepCompleted
	out.Steps[idx].Date = date
	out.Steps[idx+1].Status = models.StepInProgress
	out.Steps[idx+1].Date = date
	out.CurrentStage = out.Steps[idx+1].Name
	return out
}

// SetDocumentStatus replaces the status of the checklist entry matching
// the category. Any status in the enumeration is accepted — transitions
// are unconstrained so HR can manually correct entries. Unknown
// categories are a no-op.
func SetDocumentStatus(p models.Process, category models.DocumentCategory, status models.PhysicalDocumentStatus) models.Process {
	out := p.Clone()
	for i, doc := range out.PhysicalDocuments {
		if doc.Name == category {
			out.PhysicalDocuments[i].Status = status
			break
		}
	}
	return out
}

// IsComplete reports whether the process has finished: the last step is
// Completed.
func IsComplete(p models.Process) bool {
	if len(p.Steps) == 0 {
		return false
	}
	return p.Steps[len(p.Steps)-1].Status == models.StepCompleted
}

func inProgressIndex(p models.Process) int {
	for i, s := range p.Steps {
		if s.Status == models.StepInProgress {
			return i
		}
	}
	return -1
}

// ── Expat-Level Helpers ──────────────────────────────────────────

// ActiveProcess resolves the dual-process ambiguity with an explicit
// priority rule: onboarding if present, else renewal. ok is false when
// the expat carries neither.
func ActiveProcess(e models.Expat) (p models.Process, t models.ProcessType, ok bool) {
	if e.OnboardingProcess != nil {
		return *e.OnboardingProcess, models.ProcessOnboarding, true
	}
	if e.RenewalProcess != nil {
		return *e.RenewalProcess, models.ProcessRenewal, true
	}
	return models.Process{}, "", false
}

// HasDigitalCopy reports whether any of the expat's digital uploads
// matches the category. Existence check only — counts don't matter.
func HasDigitalCopy(e models.Expat, category models.DocumentCategory) bool {
	for _, d := range e.Documents {
		if d.Category == category {
			return true
		}
	}
	return false
}
