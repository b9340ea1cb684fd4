// Package reports computes read-only projections over an expat snapshot:
// status and nationality distributions, process pipelines, outstanding
// paper documents and stage-transition timings. Nothing in here mutates
// state — every function is a pure fold over the slice it is handed.
package reports

import (
	"sort"
	"time"

	"expatrack-backend/internal/models"
	"expatrack-backend/internal/permits"
	"expatrack-backend/internal/process"
)

// AllStatuses is the closed set of permit statuses in display order.
var AllStatuses = []models.PermitStatus{
	models.PermitActive,
	models.PermitExpiresSoon,
	models.PermitExpired,
	models.PermitInProcess,
}

// ── Dashboard Projections ────────────────────────────────────────

// StatusDistribution counts expats per permit status. Every status key is
// present even at zero, and the counts always sum to Total.
func StatusDistribution(expats []models.Expat) models.StatusDistribution {
	dist := models.StatusDistribution{
		Counts: make(map[models.PermitStatus]int, len(AllStatuses)),
		Total:  len(expats),
	}
	for _, s := range AllStatuses {
		dist.Counts[s] = 0
	}
	for _, e := range expats {
		dist.Counts[e.CurrentPermit.Status]++
	}
	return dist
}

// NationalityDistribution counts expats per nationality, sorted
// descending by count (name ascending on ties, so the chart is stable).
func NationalityDistribution(expats []models.Expat) []models.NationalityCount {
	counts := make(map[string]int)
	for _, e := range expats {
		counts[e.Nationality]++
	}

	out := make([]models.NationalityCount, 0, len(counts))
	for nat, n := range counts {
		out = append(out, models.NationalityCount{Nationality: nat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Nationality < out[j].Nationality
	})
	return out
}

// StatusByNationality builds the nested status matrix, nationalities
// sorted descending by their total.
func StatusByNationality(expats []models.Expat) []models.NationalityStatusRow {
	rows := make(map[string]*models.NationalityStatusRow)
	for _, e := range expats {
		row, ok := rows[e.Nationality]
		if !ok {
			row = &models.NationalityStatusRow{
				Nationality: e.Nationality,
				Counts:      make(map[models.PermitStatus]int),
			}
			rows[e.Nationality] = row
		}
		row.Counts[e.CurrentPermit.Status]++
		row.Total++
	}

	out := make([]models.NationalityStatusRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Nationality < out[j].Nationality
	})
	return out
}

// UpcomingRenewals lists expats whose permit is Expires Soon, sorted
// soonest-expiring first.
func UpcomingRenewals(expats []models.Expat, now time.Time) []models.UpcomingRenewal {
	out := []models.UpcomingRenewal{}
	for _, e := range expats {
		if e.CurrentPermit.Status != models.PermitExpiresSoon {
			continue
		}
		days, ok := permits.DaysUntilExpiry(e.CurrentPermit.ExpiryDate, now)
		if !ok {
			continue
		}
		out = append(out, models.UpcomingRenewal{
			ExpatID:     e.ID,
			Name:        e.Name,
			Nationality: e.Nationality,
			AvatarURL:   e.AvatarURL,
			ExpiryDate:  e.CurrentPermit.ExpiryDate,
			DaysLeft:    days,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysLeft < out[j].DaysLeft })
	return out
}

// DashboardStats assembles the full dashboard payload from one snapshot.
func DashboardStats(expats []models.Expat, now time.Time) models.DashboardStats {
	return models.DashboardStats{
		StatusDistribution:      StatusDistribution(expats),
		NationalityDistribution: NationalityDistribution(expats),
		StatusByNationality:     StatusByNationality(expats),
		UpcomingRenewals:        UpcomingRenewals(expats, now),
	}
}

// ── Process Projections ──────────────────────────────────────────

// PipelineCounts counts expats at each stage of the given process type.
// Only the four workflow stages appear — NotStarted and Complete are
// bookends no running process reports.
func PipelineCounts(expats []models.Expat, t models.ProcessType) models.PipelineCounts {
	counts := models.PipelineCounts{}
	for _, e := range expats {
		p := e.Process(t)
		if p == nil {
			continue
		}
		switch p.CurrentStage {
		case models.StageNotStarted, models.StageComplete:
			continue
		}
		counts[p.CurrentStage]++
	}
	return counts
}

// OutstandingDocuments lists, per expat with an active process, the
// checklist entries not yet Verified. Expats whose checklist is fully
// verified are excluded entirely.
func OutstandingDocuments(expats []models.Expat) []models.OutstandingReport {
	out := []models.OutstandingReport{}
	for _, e := range expats {
		p, t, ok := process.ActiveProcess(e)
		if !ok {
			continue
		}
		var missing []models.OutstandingDocument
		for _, doc := range p.PhysicalDocuments {
			if doc.Status != models.DocVerified {
				missing = append(missing, models.OutstandingDocument{Name: doc.Name, Status: doc.Status})
			}
		}
		if len(missing) == 0 {
			continue
		}
		out = append(out, models.OutstandingReport{
			ExpatID:     e.ID,
			Name:        e.Name,
			AvatarURL:   e.AvatarURL,
			ProcessType: t,
			Outstanding: missing,
		})
	}
	return out
}

// StageDurations averages the day count of each adjacent step transition,
// pooled across every onboarding and renewal process in the snapshot. A
// transition contributes only when the earlier step is Completed and both
// steps carry dates; transitions with zero observations are reported as
// unavailable (absent), never as zero.
func StageDurations(expats []models.Expat) []models.StageDuration {
	type bucket struct {
		total   int
		samples int
	}
	buckets := make(map[[2]models.ProcessStage]*bucket)

	record := func(p *models.Process) {
		if p == nil {
			return
		}
		for i := 1; i < len(p.Steps); i++ {
			prev, cur := p.Steps[i-1], p.Steps[i]
			if prev.Status != models.StepCompleted || prev.Date == "" || cur.Date == "" {
				continue
			}
			from, err1 := time.Parse(permits.DateLayout, prev.Date)
			to, err2 := time.Parse(permits.DateLayout, cur.Date)
			if err1 != nil || err2 != nil {
				continue
			}
			key := [2]models.ProcessStage{prev.Name, cur.Name}
			b, ok := buckets[key]
			if !ok {
				b = &bucket{}
				buckets[key] = b
			}
			b.total += int(to.Sub(from).Hours() / 24)
			b.samples++
		}
	}

	for _, e := range expats {
		record(e.OnboardingProcess)
		record(e.RenewalProcess)
	}

	out := []models.StageDuration{}
	// Walk the canonical step order so the report rows are deterministic.
	for i := 1; i < len(process.StepOrder); i++ {
		key := [2]models.ProcessStage{process.StepOrder[i-1], process.StepOrder[i]}
		b, ok := buckets[key]
		if !ok {
			continue
		}
		avg := float64(b.total) / float64(b.samples)
		out = append(out, models.StageDuration{
			From:        key[0],
			To:          key[1],
			AverageDays: int(avg + 0.5),
			Samples:     b.samples,
		})
	}
	return out
}

// ReportMetrics assembles the process-efficiency report from one snapshot.
func ReportMetrics(expats []models.Expat) models.ReportMetrics {
	inOnboarding, inRenewal := 0, 0
	for _, e := range expats {
		if e.OnboardingProcess != nil {
			inOnboarding++
		}
		if e.RenewalProcess != nil {
			inRenewal++
		}
	}
	return models.ReportMetrics{
		InOnboarding:       inOnboarding,
		InRenewal:          inRenewal,
		OnboardingPipeline: PipelineCounts(expats, models.ProcessOnboarding),
		RenewalPipeline:    PipelineCounts(expats, models.ProcessRenewal),
		OutstandingDocs:    OutstandingDocuments(expats),
		StageDurations:     StageDurations(expats),
	}
}
