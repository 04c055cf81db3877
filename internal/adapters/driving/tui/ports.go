// Package tui provides an interactive terminal user interface for docchat.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driving"
)

// Ports aggregates everything the TUI needs injected.
type Ports struct {
	// Session is the composed client session the views drive.
	Session driving.Session

	// Hooks lets the composition root plug push-style core events
	// into the running program. Optional; without them progress and
	// notification expiry only appear on the next repaint.
	Hooks *Hooks
}

// Hooks carries registration functions for core-side callbacks. The
// views only see driving interfaces, so the composition root, which
// holds the concrete services, registers the callbacks and the app
// converts each event into a Bubbletea message.
type Hooks struct {
	// RegisterProgress subscribes to upload progress advances.
	RegisterProgress func(fn func(percent int))

	// RegisterNotifications subscribes to notification slot changes,
	// including expiry and dismissal (nil notification).
	RegisterNotifications func(fn func(n *domain.Notification))
}

// NewPorts creates a Ports aggregate with the given session.
func NewPorts(session driving.Session) *Ports {
	return &Ports{Session: session}
}

// WithHooks attaches event hooks.
func (p *Ports) WithHooks(hooks *Hooks) *Ports {
	p.Hooks = hooks
	return p
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
