package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driving"
)

// Ensure ConversationSession implements the interface.
var _ driving.ConversationSession = (*ConversationSession)(nil)

// FallbackAnswer is the assistant turn appended when a question fails.
// It carries no sources.
const FallbackAnswer = "I apologize, but I encountered an error while processing your question. Please try again."

// ConversationSession owns the ordered message log and the
// request/response cycle for one question at a time.
//
// The session is agnostic to document state; the coordinator gates it
// behind upload completion. That keeps it testable in isolation.
type ConversationSession struct {
	mu      sync.Mutex
	service driven.DocumentService

	messages []domain.Message
	busy     bool
}

// NewConversationSession creates a conversation session backed by the
// given document service.
func NewConversationSession(service driven.DocumentService) *ConversationSession {
	return &ConversationSession{service: service}
}

// Ask runs one question/answer exchange:
//
//  1. The trimmed question is appended as a user turn immediately and
//     never rolled back, even if the request fails.
//  2. The history sent is every turn created before this call, as
//     {role, text} pairs; sources are not sent back.
//  3. On success the assistant turn carries the answer and the source
//     list in service order. On failure a fixed apology turn with no
//     sources is appended and the service error is returned so the
//     caller can surface it once.
//
// Single-flight: while a request is outstanding further calls return
// ErrRequestInProgress without touching the log. Because of that
// there is never a reordering hazard between two asks.
func (c *ConversationSession) Ask(ctx context.Context, question string) (domain.Message, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Message{}, domain.ErrEmptyQuestion
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return domain.Message{}, domain.ErrRequestInProgress
	}
	c.busy = true

	history := make([]driven.ChatTurn, len(c.messages))
	for i, msg := range c.messages {
		history[i] = driven.ChatTurn{Role: string(msg.Role), Content: msg.Text}
	}

	c.messages = append(c.messages, domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Text:      question,
		CreatedAt: time.Now(),
	})
	c.mu.Unlock()

	result, err := c.service.Chat(ctx, question, history)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	reply := domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleAssistant,
		CreatedAt: time.Now(),
	}
	if err != nil {
		reply.Text = FallbackAnswer
		c.messages = append(c.messages, reply)
		return reply, err
	}

	reply.Text = result.Answer
	reply.Sources = result.Sources
	c.messages = append(c.messages, reply)
	return reply, nil
}

// Messages returns a copy of the log in creation order.
func (c *ConversationSession) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Busy reports whether a question is in flight.
func (c *ConversationSession) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}
