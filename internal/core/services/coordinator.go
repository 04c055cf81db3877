package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driving"
)

// Ensure Coordinator implements the interface.
var _ driving.Session = (*Coordinator)(nil)

// User-facing messages. Validation texts mirror what the service-side
// limits mean to the user; fallbacks cover failures with no detail.
const (
	msgInvalidFileType = "Please select a PDF file only."
	msgFileTooLarge    = "File size must be less than 50MB."
	msgUploadFailed    = "Upload failed. Please try again."
	msgChatFailed      = "Failed to get response. Please try again."
)

// Coordinator composes the upload and conversation sessions. It has
// no state of its own: it gates questions behind upload completion
// and routes every session outcome into the notification centre.
type Coordinator struct {
	upload       driving.UploadSession
	conversation driving.ConversationSession
	notifier     driving.Notifier
}

// NewCoordinator wires the sessions to the notifier.
func NewCoordinator(
	upload driving.UploadSession,
	conversation driving.ConversationSession,
	notifier driving.Notifier,
) *Coordinator {
	return &Coordinator{
		upload:       upload,
		conversation: conversation,
		notifier:     notifier,
	}
}

// SelectFile stages a file for upload. Validation failures are
// surfaced once as error notifications; the previous selection is
// left untouched.
func (c *Coordinator) SelectFile(candidate domain.PendingFile) error {
	err := c.upload.SelectFile(candidate)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidFileType):
		c.notifier.Notify(domain.SeverityError, msgInvalidFileType)
	case errors.Is(err, domain.ErrFileTooLarge):
		c.notifier.Notify(domain.SeverityError, msgFileTooLarge)
	case errors.Is(err, domain.ErrUploadInProgress):
		// Selection is disabled while uploading; nothing to announce.
	default:
		c.notifier.Notify(domain.SeverityError, err.Error())
	}
	return err
}

// BeginUpload runs the upload and announces the outcome. A second
// call while one is outstanding is a no-op and stays silent.
func (c *Coordinator) BeginUpload(ctx context.Context) (*domain.UploadedDocument, error) {
	doc, err := c.upload.BeginUpload(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUploadInProgress) && !errors.Is(err, domain.ErrNoPendingFile) {
			c.notifier.Notify(domain.SeverityError, driven.ErrorDetail(err, msgUploadFailed))
		}
		return nil, err
	}

	c.notifier.Notify(domain.SeveritySuccess, fmt.Sprintf(
		"Successfully processed %s with %d chunks in %.2fs",
		doc.FileName, doc.ChunkCount, doc.ProcessingSeconds,
	))
	return doc, nil
}

// Ask forwards a question to the conversation session, gated on
// document readiness. Service failures notify once; the no-op cases
// (empty question, request already in flight) stay silent because the
// input surface is disabled while busy.
func (c *Coordinator) Ask(ctx context.Context, question string) (domain.Message, error) {
	if !c.DocumentReady() {
		return domain.Message{}, domain.ErrNoDocument
	}

	msg, err := c.conversation.Ask(ctx, question)
	if err != nil &&
		!errors.Is(err, domain.ErrEmptyQuestion) &&
		!errors.Is(err, domain.ErrRequestInProgress) {
		c.notifier.Notify(domain.SeverityError, driven.ErrorDetail(err, msgChatFailed))
	}
	return msg, err
}

// DocumentReady reports whether a processed document exists.
func (c *Coordinator) DocumentReady() bool {
	return c.upload.Document() != nil
}

// Upload exposes the upload session for read-side state.
func (c *Coordinator) Upload() driving.UploadSession {
	return c.upload
}

// Conversation exposes the conversation session for read-side state.
func (c *Coordinator) Conversation() driving.ConversationSession {
	return c.conversation
}

// Notifier exposes the notification slot.
func (c *Coordinator) Notifier() driving.Notifier {
	return c.notifier
}
