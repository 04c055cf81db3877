// Package domain defines the core business entities for DocChat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Message: One conversational turn in the chat log
//   - SourceRef: A citation attached to an assistant turn
//   - PendingFile: A file selected but not yet uploaded
//   - UploadedDocument: The currently ready document
//   - Notification: A transient user-facing banner
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
