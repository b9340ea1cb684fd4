package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expatrack-backend/internal/models"
)

var now = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func date(daysFromNow int) string {
	return now.AddDate(0, 0, daysFromNow).Format("2006-01-02")
}

func expat(id, name, nationality string, status models.PermitStatus) models.Expat {
	return models.Expat{
		ID:          id,
		Name:        name,
		Nationality: nationality,
		CurrentPermit: models.WorkPermit{
			Status: status,
		},
	}
}

func TestStatusDistribution(t *testing.T) {
	expats := []models.Expat{
		expat("1", "A", "Japan", models.PermitActive),
		expat("2", "B", "Japan", models.PermitActive),
		expat("3", "C", "India", models.PermitExpired),
		expat("4", "D", "Oman", models.PermitExpiresSoon),
		expat("5", "E", "Canada", models.PermitInProcess),
	}

	dist := StatusDistribution(expats)

	assert.Equal(t, 5, dist.Total)
	assert.Equal(t, 2, dist.Counts[models.PermitActive])
	assert.Equal(t, 1, dist.Counts[models.PermitExpiresSoon])
	assert.Equal(t, 1, dist.Counts[models.PermitExpired])
	assert.Equal(t, 1, dist.Counts[models.PermitInProcess])

	// Counts partition the collection: they sum to the total, which is
	// the collection size.
	sum := 0
	for _, c := range dist.Counts {
		sum += c
	}
	assert.Equal(t, dist.Total, sum)
	assert.Equal(t, len(expats), sum)
}

func TestStatusDistributionEmpty(t *testing.T) {
	dist := StatusDistribution(nil)

	assert.Zero(t, dist.Total)
	// Every status key present even with no expats
	assert.Len(t, dist.Counts, 4)
}

func TestNationalityDistribution(t *testing.T) {
	expats := []models.Expat{
		expat("1", "A", "Japan", models.PermitActive),
		expat("2", "B", "India", models.PermitActive),
		expat("3", "C", "India", models.PermitActive),
		expat("4", "D", "Brazil", models.PermitActive),
		expat("5", "E", "India", models.PermitActive),
		expat("6", "F", "Brazil", models.PermitActive),
	}

	got := NationalityDistribution(expats)

	require.Len(t, got, 3)
	assert.Equal(t, models.NationalityCount{Nationality: "India", Count: 3}, got[0])
	assert.Equal(t, models.NationalityCount{Nationality: "Brazil", Count: 2}, got[1])
	assert.Equal(t, models.NationalityCount{Nationality: "Japan", Count: 1}, got[2])
}

func TestStatusByNationality(t *testing.T) {
	expats := []models.Expat{
		expat("1", "A", "Japan", models.PermitActive),
		expat("2", "B", "India", models.PermitExpired),
		expat("3", "C", "India", models.PermitActive),
	}

	got := StatusByNationality(expats)

	require.Len(t, got, 2)
	assert.Equal(t, "India", got[0].Nationality)
	assert.Equal(t, 2, got[0].Total)
	assert.Equal(t, 1, got[0].Counts[models.PermitActive])
	assert.Equal(t, 1, got[0].Counts[models.PermitExpired])
	assert.Equal(t, "Japan", got[1].Nationality)
}

func TestUpcomingRenewals(t *testing.T) {
	soonest := expat("1", "Soonest", "Japan", models.PermitExpiresSoon)
	soonest.CurrentPermit.ExpiryDate = date(15)
	later := expat("2", "Later", "India", models.PermitExpiresSoon)
	later.CurrentPermit.ExpiryDate = date(45)
	active := expat("3", "Active", "Oman", models.PermitActive)
	active.CurrentPermit.ExpiryDate = date(300)

	got := UpcomingRenewals([]models.Expat{later, soonest, active}, now)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ExpatID)
	assert.Equal(t, 15, got[0].DaysLeft)
	assert.Equal(t, "2", got[1].ExpatID)
}

func processAt(stage models.ProcessStage, docs ...models.PhysicalDocument) *models.Process {
	return &models.Process{
		CurrentStage:      stage,
		PhysicalDocuments: docs,
	}
}

func TestPipelineCounts(t *testing.T) {
	a := expat("1", "A", "Japan", models.PermitInProcess)
	a.OnboardingProcess = processAt(models.StageDocCollection)
	b := expat("2", "B", "India", models.PermitInProcess)
	b.OnboardingProcess = processAt(models.StageGovtApproval)
	c := expat("3", "C", "Oman", models.PermitExpired)
	c.RenewalProcess = processAt(models.StageDocCollection)
	d := expat("4", "D", "Brazil", models.PermitActive) // no process

	expats := []models.Expat{a, b, c, d}

	onboarding := PipelineCounts(expats, models.ProcessOnboarding)
	assert.Equal(t, 1, onboarding[models.StageDocCollection])
	assert.Equal(t, 1, onboarding[models.StageGovtApproval])
	assert.Len(t, onboarding, 2)

	renewal := PipelineCounts(expats, models.ProcessRenewal)
	assert.Equal(t, models.PipelineCounts{models.StageDocCollection: 1}, renewal)
}

func TestPipelineCountsSkipsBookendStages(t *testing.T) {
	e := expat("1", "A", "Japan", models.PermitActive)
	e.OnboardingProcess = processAt(models.StageComplete)
	f := expat("2", "B", "India", models.PermitActive)
	f.OnboardingProcess = processAt(models.StageNotStarted)

	got := PipelineCounts([]models.Expat{e, f}, models.ProcessOnboarding)
	assert.Empty(t, got)
}

func TestOutstandingDocuments(t *testing.T) {
	blocked := expat("1", "Blocked", "Japan", models.PermitInProcess)
	blocked.OnboardingProcess = processAt(models.StageDocCollection,
		models.PhysicalDocument{Name: models.CategoryPassport, Status: models.DocVerified},
		models.PhysicalDocument{Name: models.CategoryContract, Status: models.DocSubmitted},
		models.PhysicalDocument{Name: models.CategoryPhoto, Status: models.DocNotRequested},
	)

	clean := expat("2", "Clean", "India", models.PermitExpired)
	clean.RenewalProcess = processAt(models.StageVendorSubmission,
		models.PhysicalDocument{Name: models.CategoryPassport, Status: models.DocVerified},
	)

	idle := expat("3", "Idle", "Oman", models.PermitActive)

	got := OutstandingDocuments([]models.Expat{blocked, clean, idle})

	// Fully verified checklists and process-less expats are excluded
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ExpatID)
	assert.Equal(t, models.ProcessOnboarding, got[0].ProcessType)
	require.Len(t, got[0].Outstanding, 2)
	assert.Equal(t, models.CategoryContract, got[0].Outstanding[0].Name)
	assert.Equal(t, models.CategoryPhoto, got[0].Outstanding[1].Name)
}

func TestStageDurations(t *testing.T) {
	// Two processes exhibiting the first transition (10 and 20 days), one
	// of them also exhibiting the second (5 days).
	p1 := &models.Process{
		CurrentStage: models.StageGovtApproval,
		Steps: []models.ProcessStep{
			{Name: models.StageDocCollection, Status: models.StepCompleted, Date: date(-30)},
			{Name: models.StageVendorSubmission, Status: models.StepCompleted, Date: date(-20)},
			{Name: models.StageGovtApproval, Status: models.StepInProgress, Date: date(-15)},
			{Name: models.StagePermitIssued, Status: models.StepPending},
		},
	}
	p2 := &models.Process{
		CurrentStage: models.StageVendorSubmission,
		Steps: []models.ProcessStep{
			{Name: models.StageDocCollection, Status: models.StepCompleted, Date: date(-25)},
			{Name: models.StageVendorSubmission, Status: models.StepInProgress, Date: date(-5)},
			{Name: models.StageGovtApproval, Status: models.StepPending},
			{Name: models.StagePermitIssued, Status: models.StepPending},
		},
	}

	a := expat("1", "A", "Japan", models.PermitInProcess)
	a.OnboardingProcess = p1
	b := expat("2", "B", "India", models.PermitExpired)
	b.RenewalProcess = p2 // onboarding and renewal pool together

	got := StageDurations([]models.Expat{a, b})

	require.Len(t, got, 2)
	assert.Equal(t, models.StageDuration{
		From:        models.StageDocCollection,
		To:          models.StageVendorSubmission,
		AverageDays: 15, // (10 + 20) / 2
		Samples:     2,
	}, got[0])
	assert.Equal(t, models.StageDuration{
		From:        models.StageVendorSubmission,
		To:          models.StageGovtApproval,
		AverageDays: 5,
		Samples:     1,
	}, got[1])
}

func TestStageDurationsUnobservedPairsAbsent(t *testing.T) {
	// A fresh process has no completed transitions: the report must say
	// "unavailable" (no entry), never zero.
	p := &models.Process{
		CurrentStage: models.StageDocCollection,
		Steps: []models.ProcessStep{
			{Name: models.StageDocCollection, Status: models.StepInProgress, Date: date(0)},
			{Name: models.StageVendorSubmission, Status: models.StepPending},
			{Name: models.StageGovtApproval, Status: models.StepPending},
			{Name: models.StagePermitIssued, Status: models.StepPending},
		},
	}
	e := expat("1", "A", "Japan", models.PermitInProcess)
	e.OnboardingProcess = p

	assert.Empty(t, StageDurations([]models.Expat{e}))
}

func TestReportMetrics(t *testing.T) {
	a := expat("1", "A", "Japan", models.PermitInProcess)
	a.OnboardingProcess = processAt(models.StageDocCollection,
		models.PhysicalDocument{Name: models.CategoryPassport, Status: models.DocRequested},
	)
	b := expat("2", "B", "India", models.PermitExpired)
	b.RenewalProcess = processAt(models.StageVendorSubmission,
		models.PhysicalDocument{Name: models.CategoryPassport, Status: models.DocVerified},
	)

	got := ReportMetrics([]models.Expat{a, b})

	assert.Equal(t, 1, got.InOnboarding)
	assert.Equal(t, 1, got.InRenewal)
	assert.Equal(t, models.PipelineCounts{models.StageDocCollection: 1}, got.OnboardingPipeline)
	assert.Equal(t, models.PipelineCounts{models.StageVendorSubmission: 1}, got.RenewalPipeline)
	require.Len(t, got.OutstandingDocs, 1)
	assert.Equal(t, "1", got.OutstandingDocs[0].ExpatID)
	assert.Empty(t, got.StageDurations)
}
