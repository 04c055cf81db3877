package chatlog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

func TestTruncateExcerpt(t *testing.T) {
	short := "fits as is"
	assert.Equal(t, short, truncateExcerpt(short))

	long := strings.Repeat("a", 150)
	got := truncateExcerpt(long)
	assert.Equal(t, strings.Repeat("a", 100)+"...", got)
}

func TestTruncateExcerpt_MultibyteRunes(t *testing.T) {
	long := strings.Repeat("é", 150)
	got := truncateExcerpt(long)
	assert.Equal(t, strings.Repeat("é", 100)+"...", got)
}

func TestLog_EmptyShowsHint(t *testing.T) {
	log := NewLog(nil)
	assert.Contains(t, log.View(), `Try: "What is the revenue?"`)
}

func TestLog_RendersTurnsWithTimestampsAndSources(t *testing.T) {
	log := NewLog(nil)
	log.SetDimensions(120, 40)

	created := time.Date(2026, 8, 28, 14, 5, 0, 0, time.UTC)
	log.SetMessages([]domain.Message{
		{
			Role:      domain.RoleUser,
			Text:      "What is the revenue?",
			CreatedAt: created,
		},
		{
			Role: domain.RoleAssistant,
			Text: "Revenue was $10M.",
			Sources: []domain.SourceRef{
				{ExcerptText: "Revenue was $10M", PageNumber: 3, RelevanceScore: 0.91},
				{ExcerptText: "Gross margin grew", PageNumber: 5, RelevanceScore: 0.8},
			},
			CreatedAt: created.Add(2 * time.Second),
		},
	})

	rendered := log.renderMessages()
	assert.Contains(t, rendered, "You")
	assert.Contains(t, rendered, "Assistant")
	assert.Contains(t, rendered, "14:05")
	assert.Contains(t, rendered, "What is the revenue?")
	assert.Contains(t, rendered, "Revenue was $10M.")
	assert.Contains(t, rendered, "Sources (2):")
	assert.Contains(t, rendered, "Page 3 / Score 0.91")
	assert.Contains(t, rendered, "Page 5 / Score 0.80")
}

func TestLog_SourceOrderPreserved(t *testing.T) {
	log := NewLog(nil)
	log.SetMessages([]domain.Message{{
		Role: domain.RoleAssistant,
		Text: "answer",
		Sources: []domain.SourceRef{
			{ExcerptText: "first", PageNumber: 1, RelevanceScore: 0.2},
			{ExcerptText: "second", PageNumber: 2, RelevanceScore: 0.9},
		},
	}})

	rendered := log.renderMessages()
	assert.Less(t, strings.Index(rendered, "first"), strings.Index(rendered, "second"))
}
