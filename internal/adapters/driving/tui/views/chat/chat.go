// Package chat provides the conversation view for the TUI.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/components/chatlog"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driving"
)

// View is the conversation view: a transcript log above a question
// prompt. The prompt is gated until a document has been processed,
// and disabled while a question is in flight.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	input   *input.PromptInput
	log     *chatlog.Log
	spinner spinner.Model

	session driving.Session
	ctx     context.Context

	width    int
	height   int
	thinking bool
}

// NewView creates the chat view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.Session) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:  s,
		keymap:  km,
		input:   input.NewPromptInput(s, "Ask", "Ask a question about your document..."),
		log:     chatlog.NewLog(s),
		spinner: sp,
		session: session,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.log.SetMessages(v.session.Conversation().Messages())
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AskCompleted:
		v.thinking = false
		// Success and failure both append to the log; the fixed
		// apology turn is part of the transcript.
		v.log.SetMessages(v.session.Conversation().Messages())
		v.input.Reset()
		return v, v.input.Focus()

	case spinner.TickMsg:
		if !v.thinking {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.Up) {
		v.log.ScrollUp()
		return v, nil
	}
	if keymap.Matches(keyStr, v.keymap.Down) {
		v.log.ScrollDown()
		return v, nil
	}

	if v.thinking || !v.session.DocumentReady() {
		return v, nil
	}

	if msg.Type == tea.KeyEnter {
		question := strings.TrimSpace(v.input.Value())
		if question == "" {
			return v, nil
		}
		v.thinking = true
		v.input.Blur()
		return v, tea.Batch(v.spinner.Tick, v.ask(question))
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// ask sends the question through the session.
func (v *View) ask(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := v.session.Ask(v.ctx, question)
		return messages.AskCompleted{Reply: reply, Err: err}
	}
}

// View renders the chat view.
func (v *View) View() string {
	if !v.session.DocumentReady() {
		return lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Title.Render("Ready to Chat"),
			"",
			v.styles.Muted.Render("Upload a PDF to start asking questions."),
			"",
			v.styles.Help.Render("tab: upload view"),
		)
	}

	sections := make([]string, 0, 6)
	sections = append(sections, v.log.View(), "")

	if v.thinking {
		sections = append(sections, v.spinner.View()+v.styles.Muted.Render(" Thinking..."))
	} else {
		sections = append(sections, v.input.View())
	}

	sections = append(sections, "", v.styles.Help.Render("enter: send  ↑/↓: scroll  tab: upload view"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Refresh re-reads the transcript from the session.
func (v *View) Refresh() {
	v.log.SetMessages(v.session.Conversation().Messages())
}

// Thinking reports whether a question is in flight.
func (v *View) Thinking() bool {
	return v.thinking
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	logHeight := height - 8 // Reserve space for prompt, hints, banner
	if logHeight < 5 {
		logHeight = 5
	}
	v.log.SetDimensions(width, logHeight)
}
