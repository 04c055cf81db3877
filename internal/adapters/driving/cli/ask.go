package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
)

var askShowSources bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-off question about the uploaded document",
	Long: `Sends a single question to the document service and prints the
answer with its citations. The service answers against the most
recently uploaded document; upload one first with the upload command.

One-off questions carry no chat history. For a multi-turn
conversation, use the interactive TUI.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowSources, "sources", true, "show citation sources")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	result, err := documentService.Chat(cmd.Context(), args[0], nil)
	if err != nil {
		return fmt.Errorf("failed to get answer: %s",
			driven.ErrorDetail(err, err.Error()))
	}

	cmd.Println(result.Answer)

	if askShowSources && len(result.Sources) > 0 {
		cmd.Println()
		cmd.Printf("Sources (%d):\n", len(result.Sources))
		for i, src := range result.Sources {
			cmd.Printf("  [%d] Page %d / Score %.2f\n", i+1, src.PageNumber, src.RelevanceScore)
			cmd.Printf("      %s\n", src.ExcerptText)
		}
	}
	return nil
}
