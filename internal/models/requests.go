package models

// ── Create / Update Requests ─────────────────────────────────────

// CreateExpatRequest holds the fields needed to register a new expat.
// The permit and onboarding process are created by the store, not the caller.
type CreateExpatRequest struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	JobTitle    string `json:"jobTitle"`
	Department  string `json:"department"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// Validate checks if the create request contains valid data.
func (r *CreateExpatRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if len(r.Name) < 2 || len(r.Name) > 100 {
		errors["name"] = "Name must be between 2 and 100 characters"
	}
	if r.Nationality == "" {
		errors["nationality"] = "Nationality is required"
	}
	if r.JobTitle == "" {
		errors["jobTitle"] = "Job title is required"
	}
	if r.Department == "" {
		errors["department"] = "Department is required"
	}

	return errors
}

// AddDocumentRequest holds the metadata for a digital document upload.
type AddDocumentRequest struct {
	Name     string           `json:"name"`
	Category DocumentCategory `json:"category"`
	URL      string           `json:"url"`
}

// Validate checks if the document request contains valid data.
func (r *AddDocumentRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Document name is required"
	}
	if r.Category == "" {
		errors["category"] = "Document category is required"
	}

	return errors
}

// UpdateDocumentStatusRequest changes one physical checklist entry.
type UpdateDocumentStatusRequest struct {
	Category DocumentCategory       `json:"category"`
	Status   PhysicalDocumentStatus `json:"status"`
}

// Validate checks if the checklist update contains valid data.
func (r *UpdateDocumentStatusRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Category == "" {
		errors["category"] = "Document category is required"
	}
	switch r.Status {
	case DocNotRequested, DocRequested, DocSubmitted, DocVerified:
	default:
		errors["status"] = "Unknown physical document status"
	}

	return errors
}

// AddRenewalRecordRequest appends a historical renewal outcome.
type AddRenewalRecordRequest struct {
	RenewalApplicationDate string        `json:"renewalApplicationDate"`
	Status                 RenewalStatus `json:"status"`
	DecisionDate           string        `json:"decisionDate"`
}

// Validate checks if the renewal record contains valid data.
func (r *AddRenewalRecordRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.RenewalApplicationDate == "" {
		errors["renewalApplicationDate"] = "Application date is required"
	}
	switch r.Status {
	case RenewalPending, RenewalApproved, RenewalRejected:
	default:
		errors["status"] = "Status must be Pending, Approved or Rejected"
	}

	return errors
}
