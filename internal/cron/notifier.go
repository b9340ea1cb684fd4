package cron

import (
	"log"
	"time"

	"expatrack-backend/internal/permits"
	"expatrack-backend/internal/store"
)

// StartNotifier launches a background goroutine that runs once per day
// (and once immediately) to log which permits fall inside the notification
// window. The scan is read-only: it derives from a snapshot exactly like
// the in-app notification endpoint and touches nothing. Real calendar or
// email delivery would hang off this loop.
func StartNotifier(s *store.InMemory) {
	go func() {
		runCycle(s)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			runCycle(s)
		}
	}()

	log.Println("[cron] permit expiry notifier started – runs every 24 h")
}

func runCycle(s *store.InMemory) {
	settings := s.Settings()
	notifications := permits.ComputeNotifications(s.Expats(), settings, s.Now())

	if len(notifications) == 0 {
		log.Println("[cron] no permits inside the notification window")
		return
	}

	for _, n := range notifications {
		log.Printf("[cron] %s", n.Message)
	}
	log.Printf("[cron] expiry check complete – %d permits within %d days", len(notifications), settings.LeadTime)
}
