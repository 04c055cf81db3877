package tui

import "errors"

// Errors for TUI construction and validation.
var (
	// ErrMissingSession indicates no session was provided to the TUI.
	ErrMissingSession = errors.New("session is required")
)
