package models

// ── Enumerations ─────────────────────────────────────────────────
// All enums are closed sets of display strings shared with the frontend.
// Callers branching on them must handle every value.

// PermitStatus is derived from the permit expiry date and the configured
// lead time. It is cached on the permit but never authoritative — the store
// refreshes it on every snapshot read.
type PermitStatus string

const (
	PermitActive      PermitStatus = "Active"
	PermitExpiresSoon PermitStatus = "Expires Soon"
	PermitExpired     PermitStatus = "Expired"
	PermitInProcess   PermitStatus = "In Process"
)

// ApplicationStepStatus is the state of a single process step.
type ApplicationStepStatus string

const (
	StepCompleted  ApplicationStepStatus = "Completed"
	StepInProgress ApplicationStepStatus = "In Progress"
	StepPending    ApplicationStepStatus = "Pending"
)

// DocumentCategory classifies both digital uploads and physical
// checklist entries.
type DocumentCategory string

const (
	CategoryPassport    DocumentCategory = "Passport"
	CategoryContract    DocumentCategory = "Contract"
	CategoryDegree      DocumentCategory = "Degree"
	CategoryHealthCheck DocumentCategory = "Health Check"
	CategoryPhoto       DocumentCategory = "Photo"
	CategoryOldPermit   DocumentCategory = "Old Work Permit/TRC"
	CategoryOther       DocumentCategory = "Other"
)

// RenewalStatus is the outcome of a historical renewal application.
type RenewalStatus string

const (
	RenewalPending  RenewalStatus = "Pending"
	RenewalApproved RenewalStatus = "Approved"
	RenewalRejected RenewalStatus = "Rejected"
)

// ProcessStage names the steps of the fixed application workflow.
// NotStarted and Complete are bookend values: no step carries them, but
// status tables keyed by stage must still cover them.
type ProcessStage string

const (
	StageNotStarted       ProcessStage = "Not Started"
	StageDocCollection    ProcessStage = "Document Collection"
	StageVendorSubmission ProcessStage = "Vendor Submission"
	StageGovtApproval     ProcessStage = "Government Approval"
	StagePermitIssued     ProcessStage = "Permit/TRC Issued"
	StageComplete         ProcessStage = "Process Complete"
)

// PhysicalDocumentStatus tracks the paper-collection state of one
// checklist entry. Transitions are deliberately unconstrained so HR can
// correct mistakes; the engine accepts any value in the set.
type PhysicalDocumentStatus string

const (
	DocNotRequested PhysicalDocumentStatus = "Not Requested"
	DocRequested    PhysicalDocumentStatus = "Requested"
	DocSubmitted    PhysicalDocumentStatus = "Submitted"
	DocVerified     PhysicalDocumentStatus = "Verified"
)

// ProcessType distinguishes the two workflows an expat can carry.
type ProcessType string

const (
	ProcessOnboarding ProcessType = "onboarding"
	ProcessRenewal    ProcessType = "renewal"
)

// ── Core Entities ────────────────────────────────────────────────
// All dates are ISO-8601 calendar-date strings ("2006-01-02") or the
// sentinel "N/A". The core never passes time.Time across the API boundary.

// DateNotApplicable is the sentinel for permits still in process.
const DateNotApplicable = "N/A"

// WorkPermit is the expat's current government work authorization.
type WorkPermit struct {
	ID           string       `json:"id"`
	PermitNumber string       `json:"permitNumber"`
	IssueDate    string       `json:"issueDate"`
	ExpiryDate   string       `json:"expiryDate"` // date string or "N/A"
	Status       PermitStatus `json:"status"`     // cached — refreshed on read
}

// ProcessStep is one stage of an application process.
// Date is set when the step enters In Progress or Completed; empty while Pending.
type ProcessStep struct {
	Name   ProcessStage          `json:"name"`
	Status ApplicationStepStatus `json:"status"`
	Date   string                `json:"date"`
}

// PhysicalDocument is one entry of a process's paper checklist.
// Categories are unique within a checklist.
type PhysicalDocument struct {
	Name   DocumentCategory       `json:"name"`
	Status PhysicalDocumentStatus `json:"status"`
}

// Process is an onboarding or renewal workflow instance.
// Invariant: at most one step is In Progress; everything before it is
// Completed, everything after it Pending. CurrentStage mirrors the
// In Progress step's name.
type Process struct {
	CurrentStage      ProcessStage       `json:"currentStage"`
	Steps             []ProcessStep      `json:"steps"`
	PhysicalDocuments []PhysicalDocument `json:"physicalDocuments"`
}

// Clone returns a deep copy so callers can derive a new process without
// touching the snapshot they read from.
func (p Process) Clone() Process {
	out := p
	out.Steps = append([]ProcessStep(nil), p.Steps...)
	out.PhysicalDocuments = append([]PhysicalDocument(nil), p.PhysicalDocuments...)
	return out
}

// Document is a digital upload owned by an expat. Created on upload,
// removed on delete, never mutated in between.
type Document struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Category   DocumentCategory `json:"category"`
	UploadDate string           `json:"uploadDate"`
	URL        string           `json:"url"`
}

// RenewalRecord is an append-only history entry for a past renewal
// application.
type RenewalRecord struct {
	ID                     string        `json:"id"`
	RenewalApplicationDate string        `json:"renewalApplicationDate"`
	Status                 RenewalStatus `json:"status"`
	DecisionDate           string        `json:"decisionDate"`
}

// Expat is the aggregate root: one employee on a foreign work permit.
// OnboardingProcess and RenewalProcess may both be populated (one
// historical, one active); display logic prefers onboarding.
type Expat struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Nationality       string          `json:"nationality"`
	AvatarURL         string          `json:"avatarUrl"`
	JobTitle          string          `json:"jobTitle"`
	Department        string          `json:"department"`
	CurrentPermit     WorkPermit      `json:"currentPermit"`
	Documents         []Document      `json:"documents"`
	RenewalHistory    []RenewalRecord `json:"renewalHistory"`
	OnboardingProcess *Process        `json:"onboardingProcess,omitempty"`
	RenewalProcess    *Process        `json:"renewalProcess,omitempty"`
}

// Clone returns a deep copy of the expat, including both processes.
func (e Expat) Clone() Expat {
	out := e
	out.Documents = append([]Document(nil), e.Documents...)
	out.RenewalHistory = append([]RenewalRecord(nil), e.RenewalHistory...)
	if e.OnboardingProcess != nil {
		p := e.OnboardingProcess.Clone()
		out.OnboardingProcess = &p
	}
	if e.RenewalProcess != nil {
		p := e.RenewalProcess.Clone()
		out.RenewalProcess = &p
	}
	return out
}

// Process returns the expat's process of the given type, or nil.
func (e *Expat) Process(t ProcessType) *Process {
	if t == ProcessRenewal {
		return e.RenewalProcess
	}
	return e.OnboardingProcess
}
