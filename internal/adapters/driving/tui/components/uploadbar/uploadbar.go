// Package uploadbar renders upload progress as a percentage bar.
package uploadbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/tui/styles"
)

// Bar wraps a bubbles progress bar rendered statically from the
// session's clamped percent. Progress events arrive as messages, so
// there is no internal animation state to fall out of sync with the
// upload session.
type Bar struct {
	bar     progress.Model
	styles  *styles.Styles
	percent int
	width   int
}

// NewBar creates an upload progress bar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	p := progress.New(
		progress.WithGradient(string(s.Theme().Primary), string(s.Theme().Secondary)),
		progress.WithoutPercentage(),
	)
	p.Width = 40

	return &Bar{bar: p, styles: s, width: 40}
}

// SetPercent sets the displayed percent. Values outside [0,100] are
// clamped.
func (b *Bar) SetPercent(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	b.percent = percent
}

// Percent returns the displayed percent.
func (b *Bar) Percent() int {
	return b.percent
}

// Reset returns the bar to zero.
func (b *Bar) Reset() {
	b.percent = 0
}

// View renders the bar with a trailing percent label.
func (b *Bar) View() string {
	rendered := b.bar.ViewAs(float64(b.percent) / 100.0)
	label := b.styles.Muted.Render(fmt.Sprintf(" %d%%", b.percent))
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered, label)
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
	barWidth := width - 6 // Reserve space for the percent label
	if barWidth < 10 {
		barWidth = 10
	}
	b.bar.Width = barWidth
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}
