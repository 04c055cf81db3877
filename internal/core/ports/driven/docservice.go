package driven

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// UploadResult is the service's answer to a successful upload.
type UploadResult struct {
	// Filename is the name the service stored the document under.
	Filename string

	// ChunkCount is how many chunks the service indexed.
	ChunkCount int

	// ProcessingSeconds is the server-side ingestion time.
	ProcessingSeconds float64
}

// ChatTurn is one prior turn sent back to the service as context.
// Sources are never sent back.
type ChatTurn struct {
	Role    string
	Content string
}

// ChatResult is the service's answer to a question.
type ChatResult struct {
	// Answer is the generated answer text.
	Answer string

	// Sources are the citations, in the order the service ranked them.
	Sources []domain.SourceRef
}

// ProgressFunc receives upload progress as an integer percent in
// [0,100]. The transport may report out of order; callers clamp.
type ProgressFunc func(percent int)

// DocumentService is the outbound port to the remote document service.
type DocumentService interface {
	// Upload streams the pending file to the service and blocks until
	// it has been processed. onProgress may be nil.
	Upload(ctx context.Context, file domain.PendingFile, onProgress ProgressFunc) (*UploadResult, error)

	// Chat asks one question with prior turns as context.
	Chat(ctx context.Context, question string, history []ChatTurn) (*ChatResult, error)

	// Ping checks the service is reachable.
	Ping(ctx context.Context) error
}

// ServiceError is a failure response from the document service. When
// the response body carries a detail field, Detail holds it and is
// shown to the user verbatim.
type ServiceError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("document service returned status %d", e.StatusCode)
}

// ErrorDetail extracts the user-facing detail from a service failure,
// falling back to the given generic message. Transport errors (no
// response at all) always fall back.
func ErrorDetail(err error, fallback string) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Detail != "" {
		return svcErr.Detail
	}
	return fallback
}
