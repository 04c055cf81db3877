package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
)

func TestUploadSession_SelectFile(t *testing.T) {
	s := NewUploadSession(&MockDocumentService{})

	require.NoError(t, s.SelectFile(validPDF()))

	pending := s.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, "q1.pdf", pending.Name)
	assert.Equal(t, domain.UploadSelected, s.State())
}

func TestUploadSession_SelectFile_InvalidTypeKeepsPrevious(t *testing.T) {
	s := NewUploadSession(&MockDocumentService{})
	require.NoError(t, s.SelectFile(validPDF()))

	err := s.SelectFile(domain.PendingFile{Name: "notes.txt", SizeBytes: 10, MimeType: "text/plain"})
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)

	// The previously selected file is left untouched.
	pending := s.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, "q1.pdf", pending.Name)
}

func TestUploadSession_SelectFile_TooLarge(t *testing.T) {
	s := NewUploadSession(&MockDocumentService{})

	candidate := validPDF()
	candidate.SizeBytes = domain.MaxUploadBytes + 1
	err := s.SelectFile(candidate)

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Nil(t, s.Pending())
	assert.Equal(t, domain.UploadEmpty, s.State())
}

func TestUploadSession_SelectFile_ReplacesPrevious(t *testing.T) {
	s := NewUploadSession(&MockDocumentService{})
	require.NoError(t, s.SelectFile(validPDF()))

	second := validPDF()
	second.Name = "q2.pdf"
	require.NoError(t, s.SelectFile(second))

	pending := s.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, "q2.pdf", pending.Name)
}

func TestUploadSession_BeginUpload_NoPendingFile(t *testing.T) {
	s := NewUploadSession(&MockDocumentService{})

	_, err := s.BeginUpload(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoPendingFile)
}

func TestUploadSession_BeginUpload_Success(t *testing.T) {
	mock := &MockDocumentService{
		UploadFunc: func(_ context.Context, file domain.PendingFile, onProgress driven.ProgressFunc) (*driven.UploadResult, error) {
			onProgress(40)
			onProgress(100)
			return &driven.UploadResult{
				Filename:          file.Name,
				ChunkCount:        42,
				ProcessingSeconds: 1.23,
			}, nil
		},
	}
	s := NewUploadSession(mock)
	require.NoError(t, s.SelectFile(validPDF()))

	doc, err := s.BeginUpload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "q1.pdf", doc.FileName)
	assert.Equal(t, 42, doc.ChunkCount)
	assert.InDelta(t, 1.23, doc.ProcessingSeconds, 0.0001)

	// Pending cleared, progress reset, document ready.
	assert.Nil(t, s.Pending())
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, domain.UploadReady, s.State())
	require.NotNil(t, s.Document())
	assert.Equal(t, 42, s.Document().ChunkCount)
}

func TestUploadSession_BeginUpload_FailureRetainsPending(t *testing.T) {
	mock := &MockDocumentService{
		UploadFunc: func(context.Context, domain.PendingFile, driven.ProgressFunc) (*driven.UploadResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := NewUploadSession(mock)
	require.NoError(t, s.SelectFile(validPDF()))

	_, err := s.BeginUpload(context.Background())
	require.Error(t, err)

	// The user may retry without reselecting.
	require.NotNil(t, s.Pending())
	assert.Equal(t, "q1.pdf", s.Pending().Name)
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, domain.UploadSelected, s.State())
	assert.Nil(t, s.Document())
}

func TestUploadSession_BeginUpload_SingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	mock := &MockDocumentService{
		UploadFunc: func(context.Context, domain.PendingFile, driven.ProgressFunc) (*driven.UploadResult, error) {
			close(started)
			<-release
			return &driven.UploadResult{Filename: "q1.pdf"}, nil
		},
	}
	s := NewUploadSession(mock)
	require.NoError(t, s.SelectFile(validPDF()))

	done := make(chan error, 1)
	go func() {
		_, err := s.BeginUpload(context.Background())
		done <- err
	}()

	<-started
	assert.Equal(t, domain.UploadInProgress, s.State())

	// A second call while one is outstanding is a no-op, not a retry.
	_, err := s.BeginUpload(context.Background())
	assert.ErrorIs(t, err, domain.ErrUploadInProgress)

	// Selecting a new file mid-upload is rejected too.
	assert.ErrorIs(t, s.SelectFile(validPDF()), domain.ErrUploadInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, domain.UploadReady, s.State())
}

func TestUploadSession_ProgressClampedNonDecreasing(t *testing.T) {
	var observed []int
	progressDone := make(chan struct{})
	mock := &MockDocumentService{
		UploadFunc: func(_ context.Context, _ domain.PendingFile, onProgress driven.ProgressFunc) (*driven.UploadResult, error) {
			// Out-of-order and out-of-range reports.
			onProgress(50)
			onProgress(30)
			onProgress(80)
			onProgress(-5)
			onProgress(250)
			close(progressDone)
			return &driven.UploadResult{Filename: "q1.pdf"}, nil
		},
	}
	s := NewUploadSession(mock)
	s.SetOnProgress(func(percent int) {
		observed = append(observed, percent)
	})
	require.NoError(t, s.SelectFile(validPDF()))

	_, err := s.BeginUpload(context.Background())
	require.NoError(t, err)
	<-progressDone

	// Regressions are swallowed; values above 100 clamp to 100.
	assert.Equal(t, []int{50, 80, 100}, observed)
}

func TestUploadSession_ReuploadReplacesDocument(t *testing.T) {
	count := 0
	mock := &MockDocumentService{
		UploadFunc: func(_ context.Context, file domain.PendingFile, _ driven.ProgressFunc) (*driven.UploadResult, error) {
			count++
			return &driven.UploadResult{Filename: file.Name, ChunkCount: count * 10}, nil
		},
	}
	s := NewUploadSession(mock)

	require.NoError(t, s.SelectFile(validPDF()))
	_, err := s.BeginUpload(context.Background())
	require.NoError(t, err)

	second := validPDF()
	second.Name = "q2.pdf"
	require.NoError(t, s.SelectFile(second))
	doc, err := s.BeginUpload(context.Background())
	require.NoError(t, err)

	// Replaced wholesale, no merging.
	assert.Equal(t, "q2.pdf", doc.FileName)
	assert.Equal(t, 20, doc.ChunkCount)
	assert.Equal(t, "q2.pdf", s.Document().FileName)
}
