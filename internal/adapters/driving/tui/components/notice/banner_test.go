package notice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

func TestBanner_EmptyByDefault(t *testing.T) {
	banner := NewBanner(nil)
	assert.False(t, banner.Visible())
	assert.Empty(t, banner.View())
}

func TestBanner_ShowsNotificationText(t *testing.T) {
	banner := NewBanner(nil)
	banner.SetNotification(&domain.Notification{
		Severity: domain.SeverityError,
		Text:     "Upload failed. Please try again.",
	})

	assert.True(t, banner.Visible())
	assert.Contains(t, banner.View(), "Upload failed. Please try again.")
}

func TestBanner_NilClears(t *testing.T) {
	banner := NewBanner(nil)
	banner.SetNotification(&domain.Notification{Severity: domain.SeveritySuccess, Text: "done"})
	banner.SetNotification(nil)

	assert.False(t, banner.Visible())
	assert.Empty(t, banner.View())
}

func TestBanner_HoldsCopy(t *testing.T) {
	banner := NewBanner(nil)
	n := domain.Notification{Severity: domain.SeveritySuccess, Text: "original"}
	banner.SetNotification(&n)

	n.Text = "mutated"
	require.NotNil(t, banner.Notification())
	assert.Equal(t, "original", banner.Notification().Text)
}
