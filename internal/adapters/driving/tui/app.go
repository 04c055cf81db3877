package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/components/notice"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/views/upload"
	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to the core session via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// uploadView is the document upload view component.
	uploadView *upload.View

	// chatView is the conversation view component.
	chatView *chat.View

	// banner displays the active notification above the current view.
	banner *notice.Banner

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		uploadView:  upload.NewView(s, km, ports.Session),
		chatView:    chat.NewView(s, km, ports.Session),
		banner:      notice.NewBanner(s),
		currentView: messages.ViewUpload, // Start with upload
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.uploadView.WithContext(ctx)
	a.chatView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("docchat - Document Q&A"),
		a.uploadView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.uploadView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.banner.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewChat {
			a.chatView.Refresh()
			return a, a.chatView.Init()
		}
		return a, nil

	case messages.NotificationChanged:
		a.banner.SetNotification(msg.Notification)
		return a, nil

	case messages.UploadCompleted:
		a.uploadView, cmd = a.uploadView.Update(msg)
		if msg.Err == nil {
			// Move straight to the conversation once the document is
			// processed.
			a.currentView = messages.ViewChat
			a.chatView.Refresh()
			return a, tea.Batch(cmd, a.chatView.Init())
		}
		return a, cmd

	case messages.FileStaged, messages.UploadProgressed:
		a.uploadView, cmd = a.uploadView.Update(msg)
		return a, cmd

	case messages.AskCompleted:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (spinner ticks and the like) to both
	// views; each ignores what it does not handle.
	var uploadCmd, chatCmd tea.Cmd
	a.uploadView, uploadCmd = a.uploadView.Update(msg)
	a.chatView, chatCmd = a.chatView.Update(msg)
	return a, tea.Batch(uploadCmd, chatCmd)
}

// handleKeyMsg processes global keys, then forwards to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	keyStr := msg.String()

	// Global quit with ctrl+c
	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	if keymap.Matches(keyStr, a.keymap.Dismiss) {
		a.ports.Session.Notifier().Dismiss()
		a.banner.SetNotification(nil)
		return a, nil
	}

	if keymap.Matches(keyStr, a.keymap.Help) {
		a.currentView = messages.ViewHelp
		return a, nil
	}

	if keymap.Matches(keyStr, a.keymap.SwitchView) {
		if a.currentView == messages.ViewUpload {
			a.currentView = messages.ViewChat
			a.chatView.Refresh()
			return a, a.chatView.Init()
		}
		a.currentView = messages.ViewUpload
		return a, a.uploadView.Init()
	}

	switch a.currentView {
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
		return a, cmd

	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		// Esc from help returns to the upload view
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewUpload
			return a, nil
		}
		return a, nil
	}
	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewUpload:
		body = a.uploadView.View()
	case messages.ViewChat:
		body = a.chatView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.uploadView.View()
	}

	if a.banner.Visible() {
		return lipgloss.JoinVertical(lipgloss.Left, a.banner.View(), "", body)
	}
	return body
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  tab         Switch between upload and chat
  esc         Back
  ctrl+c      Quit

Upload:
  (type)      Enter the path to a PDF file
  enter       Select the file, then confirm the upload

Chat:
  (type)      Enter a question
  enter       Send
  ↑/↓         Scroll the transcript

Notifications:
  ctrl+x      Dismiss the current notification

[esc] back`
}

// Run starts the TUI application and wires core events into the
// program's message loop.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())

	if a.ports.Hooks != nil {
		if a.ports.Hooks.RegisterProgress != nil {
			a.ports.Hooks.RegisterProgress(func(percent int) {
				p.Send(messages.UploadProgressed{Percent: percent})
			})
		}
		if a.ports.Hooks.RegisterNotifications != nil {
			a.ports.Hooks.RegisterNotifications(func(n *domain.Notification) {
				p.Send(messages.NotificationChanged{Notification: n})
			})
		}
	}

	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.uploadView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
	a.banner.SetWidth(width)
}
