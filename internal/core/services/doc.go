// Package services implements the core session logic for DocChat:
// the upload session state machine, the conversation session, the
// single-slot notification centre, and the coordinator that composes
// them. Services depend only on domain types and ports.
//
// Everything here is safe for the single logical thread of a TUI or
// CLI driving it: mutation happens under a mutex so the asynchronous
// completion of a network call (which arrives on another goroutine)
// is reconciled consistently.
package services
