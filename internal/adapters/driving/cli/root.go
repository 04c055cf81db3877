// Package cli implements the docchat command-line interface.
// It is a driving adapter: commands translate flags and arguments
// into calls on the core session and render the results.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docchat-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driven/docservice/rest"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docchat-cli/internal/core/services"
	"github.com/custodia-labs/docchat-cli/internal/logger"
)

// version is the application version, set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	serverFlag  string
	timeoutFlag int
	verboseFlag bool
)

// Wired services. Either injected for tests via SetSession, or built
// from config and flags in initServices. The concrete service types
// are kept alongside the interfaces so the TUI command can register
// push-event hooks.
var (
	session         driving.Session
	documentService driven.DocumentService
	uploadSession   *services.UploadSession
	notifier        *services.NotificationCenter
)

var rootCmd = &cobra.Command{
	Use:   "docchat",
	Short: "Chat with your PDF documents from the terminal",
	Long: `DocChat is a client for a document question-answering service.

Upload a PDF, wait for it to be processed, then ask questions about
its contents. Answers come with page-level citations so you can check
the source yourself.

Run with no arguments to launch the interactive terminal UI.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	RunE:              runTUI,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "",
		"document service URL (overrides config)")
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", 0,
		"request timeout in seconds (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging")
}

// initServices builds the session from config and flags. Tests can
// bypass it by injecting a session with SetSession.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if session != nil {
		return nil
	}

	store, err := file.NewStore("")
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}

	cfg, err := store.Load()
	if err != nil {
		// Defaults are still usable; tell the user and carry on.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, using defaults\n", err)
	}

	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	if timeoutFlag > 0 {
		cfg.TimeoutSeconds = timeoutFlag
	}

	logger.Debug("using document service at %s (timeout %ds)", cfg.ServerURL, cfg.TimeoutSeconds)

	client := rest.NewClient(rest.Config{
		BaseURL: cfg.ServerURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})

	documentService = client
	uploadSession = services.NewUploadSession(client)
	notifier = services.NewNotificationCenter()
	session = services.NewCoordinator(
		uploadSession,
		services.NewConversationSession(client),
		notifier,
	)

	if verboseFlag {
		if err := client.Ping(cmd.Context()); err != nil {
			logger.Warn("document service not reachable: %v", err)
		} else {
			logger.Debug("document service is up")
		}
	}
	return nil
}

// SetSession injects a pre-built session, bypassing config and flag
// wiring. Used by tests.
func SetSession(s driving.Session, svc driven.DocumentService) {
	session = s
	documentService = svc
	uploadSession = nil
	notifier = nil
}
