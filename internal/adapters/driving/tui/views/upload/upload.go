// Package upload provides the document upload view for the TUI.
package upload

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/components/uploadbar"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docchat-cli/internal/logger"
)

// View is the upload view: a path prompt, a staged-file confirmation
// step, and a progress bar while the upload runs. Upload state itself
// lives in the session; the view holds only presentation state.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	input   *input.PromptInput
	bar     *uploadbar.Bar
	spinner spinner.Model

	session driving.Session
	ctx     context.Context

	width     int
	height    int
	ready     bool
	uploading bool
}

// NewView creates the upload view.
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
		input:   input.NewPromptInput(s, "PDF path", "Path to a PDF file..."),
		bar:     uploadbar.NewBar(s),
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
	return v.input.Init()
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FileStaged:
		if msg.Err == nil {
			// Staged; enter now confirms the upload.
			v.input.Blur()
		}
		return v, nil

	case messages.UploadProgressed:
		v.bar.SetPercent(msg.Percent)
		return v, nil

	case messages.UploadCompleted:
		v.uploading = false
		v.bar.Reset()
		if msg.Err != nil {
			// Pending file is retained; let the user retry or repick.
			return v, v.input.Focus()
		}
		v.input.Reset()
		return v, v.input.Focus()

	case spinner.TickMsg:
		if !v.uploading {
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
	if v.uploading {
		// Input is disabled for the duration of the upload.
		return v, nil
	}

	staged := v.session.Upload().State() == domain.UploadSelected && !v.input.Focused()

	if msg.Type == tea.KeyEnter {
		if staged {
			v.uploading = true
			v.bar.Reset()
			return v, tea.Batch(v.spinner.Tick, v.beginUpload())
		}
		path := v.input.Value()
		if path == "" {
			return v, nil
		}
		return v, v.stageFile(path)
	}

	// Esc from the confirmation step goes back to editing the path.
	if msg.Type == tea.KeyEsc && staged {
		return v, v.input.Focus()
	}

	if v.input.Focused() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// stageFile resolves the path and stages the file in the session.
func (v *View) stageFile(path string) tea.Cmd {
	return func() tea.Msg {
		candidate, err := domain.PendingFileFromPath(path)
		if err != nil {
			logger.Debug("stat %s: %v", path, err)
			return messages.FileStaged{Err: err}
		}
		if err := v.session.SelectFile(candidate); err != nil {
			return messages.FileStaged{File: candidate, Err: err}
		}
		return messages.FileStaged{File: candidate}
	}
}

// beginUpload runs the upload. Progress events arrive separately via
// the session's progress hook.
func (v *View) beginUpload() tea.Cmd {
	return func() tea.Msg {
		doc, err := v.session.BeginUpload(v.ctx)
		return messages.UploadCompleted{Document: doc, Err: err}
	}
}

// View renders the upload view.
func (v *View) View() string {
	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("Upload a Document"), "")

	if doc := v.session.Upload().Document(); doc != nil {
		sections = append(sections, v.styles.Success.Render(documentSummary(doc)), "")
	}

	if v.uploading {
		sections = append(sections,
			v.spinner.View()+v.styles.Normal.Render(" Uploading "+pendingName(v.session)),
			v.bar.View(),
		)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if pending := v.session.Upload().Pending(); pending != nil && !v.input.Focused() {
		sections = append(sections,
			v.styles.Normal.Render("Selected: "+pending.Name),
			v.styles.Help.Render("enter: upload  esc: change file"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		v.input.View(),
		"",
		v.styles.Help.Render("enter: select file  tab: chat view"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// documentSummary formats the ready-document status line.
func documentSummary(doc *domain.UploadedDocument) string {
	return fmt.Sprintf("%s • %d chunks • Ready", doc.FileName, doc.ChunkCount)
}

// pendingName returns the staged file's name for the progress line.
func pendingName(session driving.Session) string {
	if pending := session.Upload().Pending(); pending != nil {
		return pending.Name
	}
	return ""
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.bar.SetWidth(width / 2)
}

// Uploading reports whether an upload is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Reset returns the view to the path entry step.
func (v *View) Reset() {
	v.uploading = false
	v.bar.Reset()
	v.input.Reset()
	v.input.Focus()
}
