// Package driving defines inbound ports: the session capabilities the
// core exposes to external actors (CLI commands and the TUI).
package driving
