package store

import (
	"expatrack-backend/internal/models"
	"expatrack-backend/internal/permits"
)

// Seed installs a demo fixture set so the API is explorable without any
// persistence behind it. Dates are relative to the store clock so the
// fixtures always cover every permit status. Dev mode only — guarded by
// config, never run in production deployments.
func (s *InMemory) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	day := func(d int) string { return now.AddDate(0, 0, d).Format(permits.DateLayout) }
	month := func(m int) string { return now.AddDate(0, m, 0).Format(permits.DateLayout) }

	s.expats = []models.Expat{
		{
			ID: "1", Name: "Kenji Tanaka", Nationality: "Japan",
			AvatarURL: "https://i.pravatar.cc/150?u=kenji_tanaka",
			JobTitle:  "Lead Software Engineer", Department: "Technology",
			CurrentPermit: models.WorkPermit{
				ID: "wp-101", PermitNumber: "VN-WP-84321",
				IssueDate: month(-22), ExpiryDate: day(45), // inside the warning window
			},
			Documents: []models.Document{
				{ID: "doc-101", Name: "Passport_Tanaka.pdf", Category: models.CategoryPassport, UploadDate: month(-1), URL: "#"},
				{ID: "doc-102", Name: "Contract_Tanaka.pdf", Category: models.CategoryContract, UploadDate: month(-1), URL: "#"},
			},
			RenewalHistory: []models.RenewalRecord{},
		},
		{
			ID: "2", Name: "Maria Santos", Nationality: "Philippines",
			AvatarURL: "https://i.pravatar.cc/150?u=maria_santos",
			JobTitle:  "Marketing Director", Department: "Marketing",
			CurrentPermit: models.WorkPermit{
				ID: "wp-102", PermitNumber: "VN-WP-84322",
				IssueDate: month(-12), ExpiryDate: month(12),
			},
			Documents: []models.Document{
				{ID: "doc-201", Name: "Santos_Passport.pdf", Category: models.CategoryPassport, UploadDate: month(-13), URL: "#"},
			},
			RenewalHistory: []models.RenewalRecord{
				{ID: "ren-hist-1", RenewalApplicationDate: month(-13), Status: models.RenewalApproved, DecisionDate: month(-12)},
			},
		},
		{
			ID: "3", Name: "Aarav Sharma", Nationality: "India",
			AvatarURL: "https://i.pravatar.cc/150?u=aarav_sharma",
			JobTitle:  "Data Scientist", Department: "Analytics",
			CurrentPermit: models.WorkPermit{
				ID: "wp-103", PermitNumber: "VN-WP-84323",
				IssueDate: month(-25), ExpiryDate: month(-1), // expired
			},
			RenewalProcess: &models.Process{
				CurrentStage: models.StageDocCollection,
				Steps: []models.ProcessStep{
					{Name: models.StageDocCollection, Status: models.StepInProgress, Date: day(-20)},
					{Name: models.StageVendorSubmission, Status: models.StepPending},
					{Name: models.StageGovtApproval, Status: models.StepPending},
					{Name: models.StagePermitIssued, Status: models.StepPending},
				},
				PhysicalDocuments: []models.PhysicalDocument{
					{Name: models.CategoryPassport, Status: models.DocVerified},
					{Name: models.CategoryContract, Status: models.DocSubmitted},
					{Name: models.CategoryDegree, Status: models.DocRequested},
					{Name: models.CategoryHealthCheck, Status: models.DocRequested},
					{Name: models.CategoryPhoto, Status: models.DocNotRequested},
					{Name: models.CategoryOldPermit, Status: models.DocNotRequested},
				},
			},
			Documents: []models.Document{
				{ID: "doc-301", Name: "Passport_Sharma_old.pdf", Category: models.CategoryPassport, UploadDate: month(-26), URL: "#"},
			},
			RenewalHistory: []models.RenewalRecord{
				{ID: "ren-hist-2", RenewalApplicationDate: month(-3), Status: models.RenewalRejected, DecisionDate: month(-2)},
			},
		},
		{
			ID: "4", Name: "David Miller", Nationality: "Canada",
			AvatarURL: "https://i.pravatar.cc/150?u=david_miller",
			JobTitle:  "Project Manager", Department: "Operations",
			CurrentPermit: models.WorkPermit{
				ID: "wp-105", PermitNumber: models.DateNotApplicable,
				IssueDate: models.DateNotApplicable, ExpiryDate: models.DateNotApplicable,
			},
			OnboardingProcess: &models.Process{
				CurrentStage: models.StageGovtApproval,
				Steps: []models.ProcessStep{
					{Name: models.StageDocCollection, Status: models.StepCompleted, Date: month(-2)},
					{Name: models.StageVendorSubmission, Status: models.StepCompleted, Date: month(-1)},
					{Name: models.StageGovtApproval, Status: models.StepInProgress, Date: day(0)},
					{Name: models.StagePermitIssued, Status: models.StepPending},
				},
				PhysicalDocuments: []models.PhysicalDocument{
					{Name: models.CategoryPassport, Status: models.DocVerified},
					{Name: models.CategoryContract, Status: models.DocVerified},
					{Name: models.CategoryDegree, Status: models.DocVerified},
					{Name: models.CategoryHealthCheck, Status: models.DocSubmitted},
					{Name: models.CategoryPhoto, Status: models.DocSubmitted},
				},
			},
			Documents: []models.Document{
				{ID: "doc-501", Name: "Miller_D_Passport.pdf", Category: models.CategoryPassport, UploadDate: month(-2), URL: "#"},
				{ID: "doc-502", Name: "Miller_Headshot.jpg", Category: models.CategoryPhoto, UploadDate: day(-50), URL: "#"},
			},
			RenewalHistory: []models.RenewalRecord{},
		},
		{
			ID: "5", Name: "Omar Al-Farsi", Nationality: "Oman",
			AvatarURL: "https://i.pravatar.cc/150?u=omar_alfarsi",
			JobTitle:  "Senior Accountant", Department: "Finance",
			CurrentPermit: models.WorkPermit{
				ID: "wp-109", PermitNumber: "VN-WP-84329",
				IssueDate: month(-24), ExpiryDate: day(-10), // expired
			},
			RenewalProcess: &models.Process{
				CurrentStage: models.StageVendorSubmission,
				Steps: []models.ProcessStep{
					{Name: models.StageDocCollection, Status: models.StepCompleted, Date: day(-40)},
					{Name: models.StageVendorSubmission, Status: models.StepInProgress, Date: day(-12)},
					{Name: models.StageGovtApproval, Status: models.StepPending},
					{Name: models.StagePermitIssued, Status: models.StepPending},
				},
				PhysicalDocuments: []models.PhysicalDocument{
					{Name: models.CategoryPassport, Status: models.DocVerified},
					{Name: models.CategoryContract, Status: models.DocVerified},
					{Name: models.CategoryDegree, Status: models.DocVerified},
					{Name: models.CategoryHealthCheck, Status: models.DocRequested}, // the bottleneck
					{Name: models.CategoryPhoto, Status: models.DocVerified},
					{Name: models.CategoryOldPermit, Status: models.DocVerified},
				},
			},
			Documents: []models.Document{
				{ID: "doc-901", Name: "AlFarsi_Passport.pdf", Category: models.CategoryPassport, UploadDate: month(-24), URL: "#"},
			},
			RenewalHistory: []models.RenewalRecord{
				{ID: "ren-hist-4", RenewalApplicationDate: month(-24), Status: models.RenewalApproved, DecisionDate: month(-23)},
			},
		},
		{
			ID: "6", Name: "Lucas Gomes", Nationality: "Brazil",
			AvatarURL: "https://i.pravatar.cc/150?u=lucas_gomes",
			JobTitle:  "Sales Executive", Department: "Sales",
			CurrentPermit: models.WorkPermit{
				ID: "wp-111", PermitNumber: "VN-WP-84331",
				IssueDate: month(-23), ExpiryDate: day(15), // expires very soon
			},
			Documents: []models.Document{
				{ID: "doc-1101", Name: "Passport_Gomes.pdf", Category: models.CategoryPassport, UploadDate: month(-23), URL: "#"},
			},
			RenewalHistory: []models.RenewalRecord{},
		},
	}

	// Cached statuses start correct; reads re-derive them anyway.
	for i := range s.expats {
		s.expats[i].CurrentPermit = permits.RefreshPermit(s.expats[i].CurrentPermit, s.settings.LeadTime, now)
	}
}
