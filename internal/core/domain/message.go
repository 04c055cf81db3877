package domain

import "time"

// Role identifies the author of a conversational turn.
type Role string

const (
	// RoleUser marks a turn written by the user.
	RoleUser Role = "user"

	// RoleAssistant marks a turn produced by the document service.
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// SourceRef is a citation returned by the document service.
// All sources attached to one assistant message originate from the
// single request/response pair that produced that message.
type SourceRef struct {
	// ExcerptText is the cited passage. Stored verbatim; display
	// truncation never mutates it.
	ExcerptText string

	// PageNumber is the page the excerpt was taken from.
	PageNumber int

	// RelevanceScore ranks the citation; higher is more relevant.
	// The service does not bound it to a fixed range.
	RelevanceScore float64

	// DocumentID identifies the source document on the service side.
	DocumentID string

	// ChunkID identifies the chunk within the document.
	ChunkID string
}

// Message is one turn in the conversation log. The log is an
// append-only ordered sequence; messages are never mutated or removed
// after creation.
type Message struct {
	// ID is unique and assigned in creation order.
	ID string

	// Role is user or assistant.
	Role Role

	// Text is the turn's content, immutable once created.
	Text string

	// Sources holds citations, present only on assistant turns that
	// carry a successful answer. Order is the service's order.
	Sources []SourceRef

	// CreatedAt is used only for display formatting.
	CreatedAt time.Time
}
