package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the document service is reachable",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Ping(cmd.Context()); err != nil {
		cmd.PrintErrln("Document service is not reachable.")
		return err
	}

	cmd.Println("Document service is up.")
	return nil
}
