package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Every one of them is
// recovered locally and surfaced to the user once; none is fatal.
var (
	// ErrInvalidFileType indicates the selected file is not a PDF.
	// Caught pre-flight; never reaches the network.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrFileTooLarge indicates the selected file exceeds the upload
	// size ceiling. Caught pre-flight; never reaches the network.
	ErrFileTooLarge = errors.New("file too large")

	// ErrNoPendingFile indicates an upload was started with no file
	// selected.
	ErrNoPendingFile = errors.New("no file selected")

	// ErrUploadInProgress indicates an upload is already in flight.
	// Sessions are single-flight: the second call is a no-op, never a
	// queued retry.
	ErrUploadInProgress = errors.New("upload already in progress")

	// ErrRequestInProgress indicates a question is already in flight.
	ErrRequestInProgress = errors.New("request already in progress")

	// ErrEmptyQuestion indicates the question was empty after trimming.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrNoDocument indicates no processed document is available to
	// ask about.
	ErrNoDocument = errors.New("no document uploaded")
)
