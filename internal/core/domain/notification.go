package domain

import "time"

// Severity tags a notification as good or bad news.
type Severity string

const (
	// SeveritySuccess marks a positive outcome.
	SeveritySuccess Severity = "success"

	// SeverityError marks a failure the user may retry.
	SeverityError Severity = "error"
)

// NotificationDwell is how long a notification stays on screen before
// it expires on its own.
const NotificationDwell = 5 * time.Second

// Notification is one active user-facing banner. At most one is
// active at a time; a new notification replaces the old one.
type Notification struct {
	Severity Severity
	Text     string
}
