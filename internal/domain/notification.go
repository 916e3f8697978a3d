package domain

import "time"

// NotificationKind distinguishes the two reveal notifications.
type NotificationKind string

const (
	// NotificationDailyReveal fires at the daily slot.
	NotificationDailyReveal NotificationKind = "daily_reveal"
	// NotificationReminder fires a while after a flower became pending.
	NotificationReminder NotificationKind = "reveal_reminder"
)

// Notification is a local notification waiting to fire.
type Notification struct {
	ID     string           `json:"id"`
	Kind   NotificationKind `json:"kind"`
	Title  string           `json:"title"`
	Body   string           `json:"body"`
	FireAt time.Time        `json:"fireAt"`
}
