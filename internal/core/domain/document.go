package domain

import (
	"os"
	"path/filepath"
	"strings"
)

// PDFMimeType is the only MIME type the document service accepts.
const PDFMimeType = "application/pdf"

// MaxUploadBytes is the upload size ceiling (50 MiB).
const MaxUploadBytes = 50 * 1024 * 1024

// PendingFile is a file chosen by the user but not yet uploaded.
// It is created on selection and destroyed on validation failure,
// on a successful upload, or when a different file is selected.
// A failed upload attempt retains it so the user can retry.
type PendingFile struct {
	// Name is the base file name sent to the service.
	Name string

	// Path is the local filesystem location to stream from.
	Path string

	// SizeBytes is the file size at selection time.
	SizeBytes int64

	// MimeType is derived from the file extension.
	MimeType string
}

// Validate applies the pre-flight upload policy. MIME type is checked
// before size, matching the order failures are reported to the user.
func (f PendingFile) Validate() error {
	if f.MimeType != PDFMimeType {
		return ErrInvalidFileType
	}
	if f.SizeBytes > MaxUploadBytes {
		return ErrFileTooLarge
	}
	return nil
}

// PendingFileFromPath builds a candidate from a local path.
// The MIME type is derived from the extension, as a browser would
// type the file. Stat failures surface as-is so the caller can show
// the underlying reason.
func PendingFileFromPath(path string) (PendingFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return PendingFile{}, err
	}

	mimeType := ""
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		mimeType = PDFMimeType
	}

	return PendingFile{
		Name:      filepath.Base(path),
		Path:      path,
		SizeBytes: info.Size(),
		MimeType:  mimeType,
	}, nil
}

// UploadedDocument is the currently ready document. It is created
// atomically on upload success and replaced wholesale if a new
// document is uploaded; it is never partially updated.
type UploadedDocument struct {
	// FileName is the name reported by the service.
	FileName string

	// ChunkCount is the number of chunks the service indexed.
	ChunkCount int

	// ProcessingSeconds is the server-side ingestion time.
	ProcessingSeconds float64
}

// UploadState tracks the upload session's lifecycle.
type UploadState int

const (
	// UploadEmpty means no file has been selected.
	UploadEmpty UploadState = iota
	// UploadSelected means a valid file awaits upload.
	UploadSelected
	// UploadInProgress means an upload request is in flight.
	UploadInProgress
	// UploadReady means a document is processed and chat is available.
	UploadReady
)

// String returns the string representation of the upload state.
func (s UploadState) String() string {
	switch s {
	case UploadEmpty:
		return "empty"
	case UploadSelected:
		return "selected"
	case UploadInProgress:
		return "uploading"
	case UploadReady:
		return "ready"
	default:
		return "unknown"
	}
}
