package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for DocChat.

The TUI walks you through uploading a PDF and then opens a chat where
you can ask questions about the document.

Controls:
  tab      - Switch between upload and chat
  Enter    - Select file / Upload / Send question
  ↑/↓      - Scroll the transcript
  ctrl+x   - Dismiss a notification
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(session).WithHooks(tuiHooks())

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// tuiHooks exposes the concrete services' callbacks to the TUI so
// progress and notification changes repaint without a keypress. When
// the session was injected without concrete services, the hooks are
// simply absent.
func tuiHooks() *tui.Hooks {
	hooks := &tui.Hooks{}

	if uploadSession != nil {
		hooks.RegisterProgress = func(fn func(percent int)) {
			uploadSession.SetOnProgress(fn)
		}
	}
	if notifier != nil {
		hooks.RegisterNotifications = func(fn func(n *domain.Notification)) {
			notifier.SetOnChange(fn)
		}
	}
	return hooks
}
