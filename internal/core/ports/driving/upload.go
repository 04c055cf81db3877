package driving

import (
	"context"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// UploadSession turns a locally selected file into a confirmed,
// processed document, or a reported error.
type UploadSession interface {
	// SelectFile validates the candidate and, on success, replaces any
	// existing pending file. On failure the previous selection is left
	// untouched.
	SelectFile(candidate domain.PendingFile) error

	// BeginUpload uploads the pending file. Single-flight: a second
	// call while one is outstanding returns ErrUploadInProgress. On
	// failure the pending file is retained so the user can retry.
	BeginUpload(ctx context.Context) (*domain.UploadedDocument, error)

	// Pending returns the currently selected file, or nil.
	Pending() *domain.PendingFile

	// Document returns the ready document, or nil.
	Document() *domain.UploadedDocument

	// Progress returns the current upload percent in [0,100].
	Progress() int

	// State returns the session's lifecycle state.
	State() domain.UploadState
}
