package models

// ── Dashboard Stats ──────────────────────────────────────────────

// StatusDistribution counts expats per permit status.
// Invariant: the four counts sum to Total, which equals the collection size.
type StatusDistribution struct {
	Counts map[PermitStatus]int `json:"counts"`
	Total  int                  `json:"total"`
}

// NationalityCount is one bar of the nationality breakdown.
type NationalityCount struct {
	Nationality string `json:"nationality"`
	Count       int    `json:"count"`
}

// NationalityStatusRow is one row of the status-by-nationality matrix.
type NationalityStatusRow struct {
	Nationality string               `json:"nationality"`
	Total       int                  `json:"total"`
	Counts      map[PermitStatus]int `json:"counts"`
}

// UpcomingRenewal is an expat whose permit expires within the lead time,
// surfaced on the dashboard soonest-first.
type UpcomingRenewal struct {
	ExpatID     string `json:"expatId"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	AvatarURL   string `json:"avatarUrl"`
	ExpiryDate  string `json:"expiryDate"`
	DaysLeft    int    `json:"daysLeft"`
}

// DashboardStats is the main dashboard payload.
type DashboardStats struct {
	StatusDistribution      StatusDistribution     `json:"statusDistribution"`
	NationalityDistribution []NationalityCount     `json:"nationalityDistribution"`
	StatusByNationality     []NationalityStatusRow `json:"statusByNationality"`
	UpcomingRenewals        []UpcomingRenewal      `json:"upcomingRenewals"`
}

// ── Process Reports ──────────────────────────────────────────────

// PipelineCounts is the number of expats at each active stage of one
// process type. NotStarted and Complete are never keys.
type PipelineCounts map[ProcessStage]int

// OutstandingDocument is one unverified checklist entry.
type OutstandingDocument struct {
	Name   DocumentCategory       `json:"name"`
	Status PhysicalDocumentStatus `json:"status"`
}

// OutstandingReport lists an expat's unverified physical documents for
// their active process. Expats with a fully verified checklist are omitted.
type OutstandingReport struct {
	ExpatID     string                `json:"expatId"`
	Name        string                `json:"name"`
	AvatarURL   string                `json:"avatarUrl"`
	ProcessType ProcessType           `json:"processType"`
	Outstanding []OutstandingDocument `json:"outstanding"`
}

// StageDuration is the observed average day count for one adjacent step
// transition, pooled across all processes. Transitions with no
// observations are simply absent from the report.
type StageDuration struct {
	From        ProcessStage `json:"from"`
	To          ProcessStage `json:"to"`
	AverageDays int          `json:"averageDays"`
	Samples     int          `json:"samples"`
}

// ReportMetrics is the process-efficiency report payload.
type ReportMetrics struct {
	InOnboarding       int                 `json:"inOnboarding"`
	InRenewal          int                 `json:"inRenewal"`
	OnboardingPipeline PipelineCounts      `json:"onboardingPipeline"`
	RenewalPipeline    PipelineCounts      `json:"renewalPipeline"`
	OutstandingDocs    []OutstandingReport `json:"outstandingDocs"`
	StageDurations     []StageDuration     `json:"stageDurations"`
}
