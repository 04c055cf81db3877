package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices(&mockDocumentService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_PrintsAnswerAndSources(t *testing.T) {
	var gotHistory []driven.ChatTurn
	cleanup := setupTestServices(&mockDocumentService{
		ChatFunc: func(ctx context.Context, question string, history []driven.ChatTurn) (*driven.ChatResult, error) {
			gotHistory = history
			return &driven.ChatResult{
				Answer: "Revenue was $10M.",
				Sources: []domain.SourceRef{
					{ExcerptText: "Revenue was $10M", PageNumber: 3, RelevanceScore: 0.91},
				},
			}, nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "What is revenue?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	// One-off questions carry no history.
	assert.Empty(t, gotHistory)
	assert.Contains(t, buf.String(), "Revenue was $10M.")
	assert.Contains(t, buf.String(), "Sources (1):")
	assert.Contains(t, buf.String(), "[1] Page 3 / Score 0.91")
}

func TestAskCmd_SourcesFlagOff(t *testing.T) {
	cleanup := setupTestServices(&mockDocumentService{
		ChatFunc: func(ctx context.Context, question string, history []driven.ChatTurn) (*driven.ChatResult, error) {
			return &driven.ChatResult{
				Answer:  "answer",
				Sources: []domain.SourceRef{{ExcerptText: "x", PageNumber: 1}},
			}, nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "--sources=false", "anything?"})
	defer func() {
		rootCmd.SetArgs(nil)
		askShowSources = true // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "answer")
	assert.NotContains(t, buf.String(), "Sources")
}

func TestAskCmd_ServiceErrorShowsDetail(t *testing.T) {
	cleanup := setupTestServices(&mockDocumentService{
		ChatFunc: func(ctx context.Context, question string, history []driven.ChatTurn) (*driven.ChatResult, error) {
			return nil, &driven.ServiceError{
				StatusCode: 400,
				Detail:     "No documents have been uploaded yet. Please upload a PDF document first.",
			}
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "No documents have been uploaded yet")
}
