// Package notice renders the single-slot notification banner.
package notice

import (
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// Banner displays the active notification, if any. It holds a copy of
// the notification rather than polling the notifier, so the render is
// consistent with the event that produced it.
type Banner struct {
	styles       *styles.Styles
	notification *domain.Notification
	width        int
}

// NewBanner creates a notification banner component.
func NewBanner(s *styles.Styles) *Banner {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Banner{styles: s, width: 80}
}

// SetNotification replaces the displayed notification. Nil clears the
// banner.
func (b *Banner) SetNotification(n *domain.Notification) {
	if n == nil {
		b.notification = nil
		return
	}
	shown := *n
	b.notification = &shown
}

// Notification returns the currently displayed notification, or nil.
func (b *Banner) Notification() *domain.Notification {
	return b.notification
}

// Visible reports whether there is anything to render.
func (b *Banner) Visible() bool {
	return b.notification != nil
}

// View renders the banner, or an empty string when the slot is clear.
func (b *Banner) View() string {
	if b.notification == nil {
		return ""
	}

	style := b.styles.ErrorBanner
	if b.notification.Severity == domain.SeveritySuccess {
		style = b.styles.SuccessBanner
	}

	return style.MaxWidth(b.width).Render(b.notification.Text)
}

// SetWidth sets the banner width.
func (b *Banner) SetWidth(width int) {
	b.width = width
}
