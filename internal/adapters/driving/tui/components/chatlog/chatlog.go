// Package chatlog renders the conversation transcript in a viewport.
package chatlog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// excerptLimit is the display length cap for a source excerpt. The
// full text stays on the message; only the rendering is shortened.
const excerptLimit = 100

// Log displays the ordered message transcript with per-answer
// citations. Scrollback is handled by the wrapped viewport.
type Log struct {
	viewport viewport.Model
	styles   *styles.Styles
	messages []domain.Message
	width    int
	height   int
}

// NewLog creates a conversation log component.
func NewLog(s *styles.Styles) *Log {
	if s == nil {
		s = styles.DefaultStyles()
	}

	vp := viewport.New(80, 20)

	return &Log{
		viewport: vp,
		styles:   s,
		width:    80,
		height:   20,
	}
}

// Update forwards scroll keys to the viewport.
func (l *Log) Update(msg tea.Msg) (*Log, tea.Cmd) {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// SetMessages replaces the transcript and scrolls to the newest turn.
func (l *Log) SetMessages(msgs []domain.Message) {
	l.messages = msgs
	l.viewport.SetContent(l.renderMessages())
	l.viewport.GotoBottom()
}

// Messages returns the displayed transcript.
func (l *Log) Messages() []domain.Message {
	return l.messages
}

// View renders the log viewport.
func (l *Log) View() string {
	if len(l.messages) == 0 {
		return l.styles.Muted.Render(`Try: "What is the revenue?" or "How is cash flow?"`)
	}
	return l.viewport.View()
}

// renderMessages formats the transcript top to bottom.
func (l *Log) renderMessages() string {
	blocks := make([]string, 0, len(l.messages))
	for _, msg := range l.messages {
		blocks = append(blocks, l.renderMessage(msg))
	}
	return strings.Join(blocks, "\n\n")
}

// renderMessage formats a single turn: speaker header with a HH:MM
// timestamp, the text, and citations for assistant turns.
func (l *Log) renderMessage(msg domain.Message) string {
	timestamp := l.styles.Muted.Render(msg.CreatedAt.Format("15:04"))

	var header, body string
	if msg.Role == domain.RoleUser {
		header = l.styles.UserBubble.Render("You") + " " + timestamp
		body = l.styles.Normal.Render(msg.Text)
	} else {
		header = l.styles.Subtitle.Render("Assistant") + " " + timestamp
		body = l.styles.AssistantBubble.Render(msg.Text)
	}

	lines := []string{header, body}
	if len(msg.Sources) > 0 {
		lines = append(lines, "", l.renderSources(msg.Sources))
	}
	return strings.Join(lines, "\n")
}

// renderSources formats the citation list in service order.
func (l *Log) renderSources(sources []domain.SourceRef) string {
	lines := make([]string, 0, len(sources)+1)
	lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("Sources (%d):", len(sources))))

	for _, src := range sources {
		ref := fmt.Sprintf("Page %d / Score %.2f", src.PageNumber, src.RelevanceScore)
		block := ref + "\n" + truncateExcerpt(src.ExcerptText)
		lines = append(lines, l.styles.SourceBlock.Render(block))
	}
	return strings.Join(lines, "\n")
}

// truncateExcerpt shortens an excerpt for display.
func truncateExcerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLimit {
		return text
	}
	return string(runes[:excerptLimit]) + "..."
}

// SetDimensions sets the log dimensions.
func (l *Log) SetDimensions(width, height int) {
	l.width = width
	l.height = height
	l.viewport.Width = width
	l.viewport.Height = height
	l.viewport.SetContent(l.renderMessages())
}

// ScrollUp scrolls the transcript up one line.
func (l *Log) ScrollUp() {
	l.viewport.LineUp(1)
}

// ScrollDown scrolls the transcript down one line.
func (l *Log) ScrollDown() {
	l.viewport.LineDown(1)
}
