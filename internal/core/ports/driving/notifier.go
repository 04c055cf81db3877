package driving

import "github.com/custodia-labs/docchat-cli/internal/core/domain"

// Notifier is the single-slot, auto-expiring feedback channel.
type Notifier interface {
	// Notify replaces any active notification and restarts the expiry
	// timer. Last call wins; no queueing, no coalescing.
	Notify(severity domain.Severity, text string)

	// Dismiss clears the active notification and cancels the timer.
	Dismiss()

	// Active returns the current notification, or nil.
	Active() *domain.Notification
}
