package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driving"
)

// Ensure UploadSession implements the interface.
var _ driving.UploadSession = (*UploadSession)(nil)

// UploadSession owns the currently selected file, validates it,
// drives the upload request, tracks progress, and reports terminal
// success or failure.
//
// Lifecycle: empty -> selected -> uploading -> {ready | selected}.
// Ready transitions back to selected only via a new SelectFile.
// Retry is always user-initiated; there is no automatic retry.
type UploadSession struct {
	mu      sync.Mutex
	service driven.DocumentService

	pending   *domain.PendingFile
	document  *domain.UploadedDocument
	progress  int
	uploading bool

	onProgress func(int)
}

// NewUploadSession creates an upload session backed by the given
// document service.
func NewUploadSession(service driven.DocumentService) *UploadSession {
	return &UploadSession{service: service}
}

// SetOnProgress registers a callback fired whenever the displayed
// progress value advances. The TUI uses it to wake its render loop.
func (s *UploadSession) SetOnProgress(fn func(percent int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onProgress = fn
}

// SelectFile validates the candidate and, on success, replaces any
// existing pending file. On failure no pending state changes and the
// previously selected file, if any, is left untouched.
func (s *UploadSession) SelectFile(candidate domain.PendingFile) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploading {
		return domain.ErrUploadInProgress
	}
	selected := candidate
	s.pending = &selected
	return nil
}

// BeginUpload uploads the pending file and blocks until the service
// has processed it. Single-flight: a second call while one is
// outstanding returns ErrUploadInProgress and changes nothing.
//
// On success the ready document is replaced wholesale, the pending
// file is cleared, and progress resets. On failure the pending file
// is retained so the user can retry without reselecting.
func (s *UploadSession) BeginUpload(ctx context.Context) (*domain.UploadedDocument, error) {
	s.mu.Lock()
	if s.uploading {
		s.mu.Unlock()
		return nil, domain.ErrUploadInProgress
	}
	if s.pending == nil {
		s.mu.Unlock()
		return nil, domain.ErrNoPendingFile
	}
	file := *s.pending
	s.uploading = true
	s.progress = 0
	s.mu.Unlock()

	result, err := s.service.Upload(ctx, file, s.observeProgress)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploading = false
	s.progress = 0

	if err != nil {
		return nil, err
	}

	doc := domain.UploadedDocument{
		FileName:          result.Filename,
		ChunkCount:        result.ChunkCount,
		ProcessingSeconds: result.ProcessingSeconds,
	}
	s.document = &doc
	s.pending = nil

	ready := doc
	return &ready, nil
}

// observeProgress records a transport progress report. The displayed
// value is clamped non-decreasing within an attempt: the server may
// report chunks out of order, but the bar never visibly regresses.
func (s *UploadSession) observeProgress(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	s.mu.Lock()
	if !s.uploading || percent <= s.progress {
		s.mu.Unlock()
		return
	}
	s.progress = percent
	fn := s.onProgress
	s.mu.Unlock()

	if fn != nil {
		fn(percent)
	}
}

// Pending returns a copy of the currently selected file, or nil.
func (s *UploadSession) Pending() *domain.PendingFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	pending := *s.pending
	return &pending
}

// Document returns a copy of the ready document, or nil.
func (s *UploadSession) Document() *domain.UploadedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.document == nil {
		return nil
	}
	doc := *s.document
	return &doc
}

// Progress returns the current upload percent in [0,100].
func (s *UploadSession) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// State derives the lifecycle state from the session's holdings.
func (s *UploadSession) State() domain.UploadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.uploading:
		return domain.UploadInProgress
	case s.pending != nil:
		return domain.UploadSelected
	case s.document != nil:
		return domain.UploadReady
	default:
		return domain.UploadEmpty
	}
}
