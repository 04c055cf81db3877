package driving

import (
	"context"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// Session is the composed client session: upload and conversation
// wired together, with failures routed into the notifier. This is the
// surface the CLI and TUI drive.
type Session interface {
	// SelectFile validates and stages a file; validation failures are
	// also surfaced as error notifications.
	SelectFile(candidate domain.PendingFile) error

	// BeginUpload runs the upload and notifies success or failure.
	BeginUpload(ctx context.Context) (*domain.UploadedDocument, error)

	// Ask is gated on DocumentReady; failures notify.
	Ask(ctx context.Context, question string) (domain.Message, error)

	// DocumentReady reports whether a processed document exists, which
	// gates whether the conversation input is interactive.
	DocumentReady() bool

	// Upload exposes the upload session for read-side state.
	Upload() UploadSession

	// Conversation exposes the conversation session for read-side state.
	Conversation() ConversationSession

	// Notifier exposes the notification slot.
	Notifier() Notifier
}
