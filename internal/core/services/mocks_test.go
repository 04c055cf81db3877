package services

import (
	"context"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
)

// MockDocumentService implements driven.DocumentService for testing.
type MockDocumentService struct {
	UploadFunc func(ctx context.Context, file domain.PendingFile, onProgress driven.ProgressFunc) (*driven.UploadResult, error)
	ChatFunc   func(ctx context.Context, question string, history []driven.ChatTurn) (*driven.ChatResult, error)
	PingFunc   func(ctx context.Context) error
}

func (m *MockDocumentService) Upload(
	ctx context.Context,
	file domain.PendingFile,
	onProgress driven.ProgressFunc,
) (*driven.UploadResult, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, file, onProgress)
	}
	return &driven.UploadResult{Filename: file.Name}, nil
}

func (m *MockDocumentService) Chat(
	ctx context.Context,
	question string,
	history []driven.ChatTurn,
) (*driven.ChatResult, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, question, history)
	}
	return &driven.ChatResult{Answer: "ok"}, nil
}

func (m *MockDocumentService) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// validPDF returns a candidate that passes validation.
func validPDF() domain.PendingFile {
	return domain.PendingFile{
		Name:      "q1.pdf",
		Path:      "/tmp/q1.pdf",
		SizeBytes: 2 * 1024 * 1024,
		MimeType:  domain.PDFMimeType,
	}
}
