package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driving"
)

// Ensure NotificationCenter implements the interface.
var _ driving.Notifier = (*NotificationCenter)(nil)

// NotificationCenter holds zero or one transient notification with a
// self-expiring timer. A new notification replaces the old one and
// restarts the dwell; the old timer is cancelled so it can never
// clear its replacement.
type NotificationCenter struct {
	mu       sync.Mutex
	active   *domain.Notification
	timer    *time.Timer
	seq      uint64
	dwell    time.Duration
	onChange func(*domain.Notification)
}

// NewNotificationCenter creates a centre with the standard dwell.
func NewNotificationCenter() *NotificationCenter {
	return &NotificationCenter{dwell: domain.NotificationDwell}
}

// WithDwell overrides the expiry dwell. Used by tests.
func (n *NotificationCenter) WithDwell(d time.Duration) *NotificationCenter {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dwell = d
	return n
}

// SetOnChange registers a callback fired after the slot changes:
// on notify, dismiss, and expiry (with nil). The TUI uses it to wake
// its render loop.
func (n *NotificationCenter) SetOnChange(fn func(*domain.Notification)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Notify replaces any active notification and restarts the timer.
func (n *NotificationCenter) Notify(severity domain.Severity, text string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.active = &domain.Notification{Severity: severity, Text: text}
	n.timer = time.AfterFunc(n.dwell, func() { n.expire(seq) })
	current := *n.active
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(&current)
	}
}

// Dismiss clears the active notification and cancels the timer.
func (n *NotificationCenter) Dismiss() {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.seq++
	cleared := n.active != nil
	n.active = nil
	fn := n.onChange
	n.mu.Unlock()

	if cleared && fn != nil {
		fn(nil)
	}
}

// Active returns a copy of the current notification, or nil.
func (n *NotificationCenter) Active() *domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.active == nil {
		return nil
	}
	current := *n.active
	return &current
}

// expire clears the slot when the timer fires. The sequence check
// makes a stale timer a no-op even if it races its own cancellation.
func (n *NotificationCenter) expire(seq uint64) {
	n.mu.Lock()
	if n.seq != seq {
		n.mu.Unlock()
		return
	}
	n.active = nil
	n.timer = nil
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(nil)
	}
}
