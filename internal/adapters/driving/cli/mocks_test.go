package cli

import (
	"context"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docchat-cli/internal/core/services"
)

// mockDocumentService implements driven.DocumentService with
// overridable behaviour per test.
type mockDocumentService struct {
	UploadFunc func(ctx context.Context, file domain.PendingFile, onProgress driven.ProgressFunc) (*driven.UploadResult, error)
	ChatFunc   func(ctx context.Context, question string, history []driven.ChatTurn) (*driven.ChatResult, error)
	PingFunc   func(ctx context.Context) error
}

func (m *mockDocumentService) Upload(
	ctx context.Context, file domain.PendingFile, onProgress driven.ProgressFunc,
) (*driven.UploadResult, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, file, onProgress)
	}
	return &driven.UploadResult{Filename: file.Name, ChunkCount: 5, ProcessingSeconds: 1.5}, nil
}

func (m *mockDocumentService) Chat(
	ctx context.Context, question string, history []driven.ChatTurn,
) (*driven.ChatResult, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, question, history)
	}
	return &driven.ChatResult{Answer: "stub answer"}, nil
}

func (m *mockDocumentService) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// setupTestServices wires the commands to a session backed by the
// given mock service and returns a cleanup restoring the previous
// wiring.
func setupTestServices(svc driven.DocumentService) func() {
	oldSession := session
	oldDocService := documentService
	oldUpload := uploadSession
	oldNotifier := notifier

	coordinator := services.NewCoordinator(
		services.NewUploadSession(svc),
		services.NewConversationSession(svc),
		services.NewNotificationCenter(),
	)
	SetSession(coordinator, svc)

	return func() {
		session = oldSession
		documentService = oldDocService
		uploadSession = oldUpload
		notifier = oldNotifier
	}
}
