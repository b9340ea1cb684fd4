// Package permits provides pure functions for work-permit status
// derivation. These functions have ZERO dependencies on HTTP, storage, or
// any other infrastructure — making them trivially testable and reusable.
package permits

import (
	"fmt"
	"sort"
	"time"

	"expatrack-backend/internal/models"
)

// DateLayout is the calendar-date format used everywhere at the API
// boundary.
const DateLayout = "2006-01-02"

// ── Status Derivation ────────────────────────────────────────────
// Status is always computed from (expiryDate, leadTimeDays, now).
// The cached field on a permit is a snapshot the store refreshes on read.

// DaysUntilExpiry returns the signed whole-day difference between the
// expiry date and now (positive = days left, negative = days overdue).
// ok is false for the "N/A" sentinel, an empty string, or an unparseable
// date.
func DaysUntilExpiry(expiryDate string, now time.Time) (days int, ok bool) {
	if expiryDate == "" || expiryDate == models.DateNotApplicable {
		return 0, false
	}
	expiry, err := time.Parse(DateLayout, expiryDate)
	if err != nil {
		return 0, false
	}
	days = int(truncateToDay(expiry).Sub(truncateToDay(now)).Hours() / 24)
	return days, true
}

// DeriveStatus computes the permit status for an expiry date.
// Parameters:
//   - expiryDate:   ISO date string or the "N/A" sentinel
//   - leadTimeDays: the configured expiry warning window (30/60/90)
//   - now:          current time (injected for testability)
func DeriveStatus(expiryDate string, leadTimeDays int, now time.Time) models.PermitStatus {
	days, ok := DaysUntilExpiry(expiryDate, now)
	if !ok {
		// No real expiry date — permit application still running
		return models.PermitInProcess
	}

	switch {
	case days < 0:
		return models.PermitExpired
	case days <= leadTimeDays:
		return models.PermitExpiresSoon
	default:
		return models.PermitActive
	}
}

// RefreshPermit returns the permit with its cached status recomputed.
// The store calls this on every snapshot read so stale caches never
// escape (the status field goes stale whenever the wall clock advances).
func RefreshPermit(p models.WorkPermit, leadTimeDays int, now time.Time) models.WorkPermit {
	p.Status = DeriveStatus(p.ExpiryDate, leadTimeDays, now)
	return p
}

// ── Notifications ────────────────────────────────────────────────

// ComputeNotifications derives in-app expiry notifications for the given
// snapshot. Pure and recomputed on every call — results are never cached.
//
// An expat is included iff 0 < daysUntilExpiry <= settings.LeadTime.
// The lower bound is strict: an already-expired permit shows Expired
// status elsewhere but produces NO notification. Results are ordered
// soonest-expiring first; ties keep the snapshot order.
func ComputeNotifications(expats []models.Expat, settings models.NotificationSettings, now time.Time) []models.Notification {
	if !settings.Enabled || !settings.HasChannel(models.ChannelInApp) {
		return []models.Notification{}
	}

	type candidate struct {
		n    models.Notification
		days int
	}
	var candidates []candidate

	for _, e := range expats {
		days, ok := DaysUntilExpiry(e.CurrentPermit.ExpiryDate, now)
		if !ok || days <= 0 || days > settings.LeadTime {
			continue
		}
		candidates = append(candidates, candidate{
			days: days,
			n: models.Notification{
				ID:        "notif-" + e.ID,
				ExpatID:   e.ID,
				ExpatName: e.Name,
				Message:   fmt.Sprintf("Permit for %s expires in %d days.", e.Name, days),
				Date:      now.Format(DateLayout),
			},
		})
	}

	// Stable so that expats expiring on the same day keep snapshot order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].days < candidates[j].days
	})

	out := make([]models.Notification, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.n)
	}
	return out
}

// ── Internal Helpers ─────────────────────────────────────────────

// truncateToDay strips the time component, keeping only the date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
