// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewUpload is the document upload view.
	ViewUpload ViewType = iota
	// ViewChat is the conversation view.
	ViewChat
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewUpload:
		return "upload"
	case ViewChat:
		return "chat"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// FileStaged signals a file selection attempt finished. On success
// the pending file is staged in the upload session; on failure Err
// carries the validation or stat error.
type FileStaged struct {
	File domain.PendingFile
	Err  error
}

// UploadProgressed carries a progress update from the transport.
type UploadProgressed struct {
	Percent int
}

// UploadCompleted signals the upload request finished.
type UploadCompleted struct {
	Document *domain.UploadedDocument
	Err      error
}

// AskCompleted signals a question/answer exchange finished. Reply is
// the appended assistant turn; on failure it is the apology turn.
type AskCompleted struct {
	Reply domain.Message
	Err   error
}

// NotificationChanged carries the notification slot's new state;
// nil means the slot was cleared (dismissal or expiry).
type NotificationChanged struct {
	Notification *domain.Notification
}

// Quit signals the application should exit.
type Quit struct{}
