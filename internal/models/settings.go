package models

// ── Notification Settings ────────────────────────────────────────

// NotificationChannel is a delivery channel for expiry notifications.
type NotificationChannel string

const (
	ChannelInApp NotificationChannel = "inApp"
	ChannelEmail NotificationChannel = "email"
)

// ReminderInterval is an email reminder offset before expiry.
type ReminderInterval string

const (
	Remind7Days  ReminderInterval = "7days"
	Remind14Days ReminderInterval = "14days"
	Remind30Days ReminderInterval = "30days"
	Remind60Days ReminderInterval = "60days"
)

// ValidLeadTimes are the lead-time windows the settings form offers.
var ValidLeadTimes = []int{30, 60, 90}

// EmailSettings configures the email channel. Only meaningful when the
// email channel is selected.
type EmailSettings struct {
	SendCalendarInvites bool               `json:"sendCalendarInvites"`
	ReminderIntervals   []ReminderInterval `json:"reminderIntervals"`
}

// NotificationSettings is process-wide notification configuration.
// Saves replace the whole structure — there are no merge semantics.
type NotificationSettings struct {
	Enabled       bool                  `json:"enabled"`
	Channels      []NotificationChannel `json:"channels"`
	LeadTime      int                   `json:"leadTime"` // days: 30, 60 or 90
	EmailSettings *EmailSettings        `json:"emailSettings,omitempty"`
}

// DefaultSettings returns the startup configuration: in-app notifications
// on, 60-day lead time.
func DefaultSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:  true,
		Channels: []NotificationChannel{ChannelInApp},
		LeadTime: 60,
	}
}

// HasChannel reports whether the given channel is selected.
func (s NotificationSettings) HasChannel(c NotificationChannel) bool {
	for _, ch := range s.Channels {
		if ch == c {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so saved settings can't be mutated through
// the caller's slices.
func (s NotificationSettings) Clone() NotificationSettings {
	out := s
	out.Channels = append([]NotificationChannel(nil), s.Channels...)
	if s.EmailSettings != nil {
		es := *s.EmailSettings
		es.ReminderIntervals = append([]ReminderInterval(nil), s.EmailSettings.ReminderIntervals...)
		out.EmailSettings = &es
	}
	return out
}

// Validate checks a settings save request.
func (s *NotificationSettings) Validate() map[string]string {
	errors := make(map[string]string)

	valid := false
	for _, lt := range ValidLeadTimes {
		if s.LeadTime == lt {
			valid = true
			break
		}
	}
	if !valid {
		errors["leadTime"] = "Lead time must be 30, 60 or 90 days"
	}
	for _, ch := range s.Channels {
		if ch != ChannelInApp && ch != ChannelEmail {
			errors["channels"] = "Unknown notification channel: " + string(ch)
		}
	}

	return errors
}

// ── Notification ─────────────────────────────────────────────────

// Notification is a derived expiry alert. Never stored — recomputed from
// the expat list and settings on every read.
type Notification struct {
	ID        string `json:"id"`
	ExpatID   string `json:"expatId"`
	ExpatName string `json:"expatName"`
	Message   string `json:"message"`
	Date      string `json:"date"`
}
