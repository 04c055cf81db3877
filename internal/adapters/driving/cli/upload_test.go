package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
)

func writeTempPDF(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0600))
	return path
}

func TestUploadCmd_Use(t *testing.T) {
	assert.Equal(t, "upload [file]", uploadCmd.Use)
}

func TestUploadCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices(&mockDocumentService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"upload"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestUploadCmd_Success(t *testing.T) {
	cleanup := setupTestServices(&mockDocumentService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"upload", writeTempPDF(t, 1024)})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Successfully processed report.pdf with 5 chunks in 1.50s")
}

func TestUploadCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices(&mockDocumentService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"upload", filepath.Join(t.TempDir(), "absent.pdf")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestUploadCmd_RejectsNonPDF(t *testing.T) {
	cleanup := setupTestServices(&mockDocumentService{})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"upload", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Please select a PDF file only.")
}

func TestUploadCmd_ServiceErrorShowsDetail(t *testing.T) {
	cleanup := setupTestServices(&mockDocumentService{
		UploadFunc: func(ctx context.Context, file domain.PendingFile, onProgress driven.ProgressFunc) (*driven.UploadResult, error) {
			return nil, &driven.ServiceError{
				StatusCode: 400,
				Detail:     "No text content could be extracted from the PDF",
			}
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"upload", writeTempPDF(t, 64)})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "No text content could be extracted from the PDF")
}

func TestUploadSelectError_Mapping(t *testing.T) {
	assert.EqualError(t, uploadSelectError(domain.ErrInvalidFileType), "Please select a PDF file only.")
	assert.EqualError(t, uploadSelectError(domain.ErrFileTooLarge), "File size must be less than 50MB.")
	assert.ErrorIs(t, uploadSelectError(domain.ErrUploadInProgress), domain.ErrUploadInProgress)
}
