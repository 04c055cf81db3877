package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a PDF document for question answering",
	Long: `Uploads a PDF to the document service and waits for processing.
Only PDF files up to 50MB are accepted. Once processed, the document
can be queried with the ask command or the interactive TUI.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if session == nil {
		return errors.New("session not configured")
	}

	candidate, err := domain.PendingFileFromPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := session.SelectFile(candidate); err != nil {
		return uploadSelectError(err)
	}

	// Progress on stderr so stdout stays clean for scripting.
	if uploadSession != nil {
		uploadSession.SetOnProgress(func(percent int) {
			fmt.Fprintf(cmd.ErrOrStderr(), "\rUploading... %d%%", percent)
			if percent >= 100 {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
		})
		defer uploadSession.SetOnProgress(nil)
	}

	doc, err := session.BeginUpload(cmd.Context())
	if err != nil {
		return fmt.Errorf("upload failed: %s", notifiedOr(err.Error()))
	}

	cmd.Printf("Successfully processed %s with %d chunks in %.2fs\n",
		doc.FileName, doc.ChunkCount, doc.ProcessingSeconds)
	return nil
}

// uploadSelectError maps validation failures to the texts the user
// would see as notifications in the TUI.
func uploadSelectError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidFileType):
		return errors.New("Please select a PDF file only.")
	case errors.Is(err, domain.ErrFileTooLarge):
		return errors.New("File size must be less than 50MB.")
	default:
		return err
	}
}

// notifiedOr prefers the notification text, which carries the service
// detail when there is one, over the raw error string.
func notifiedOr(fallback string) string {
	if active := session.Notifier().Active(); active != nil {
		return active.Text
	}
	return fallback
}
