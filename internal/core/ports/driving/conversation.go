package driving

import (
	"context"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
)

// ConversationSession manages the ordered message log and the
// request/response cycle for one question at a time.
type ConversationSession interface {
	// Ask appends the user's turn, sends it with prior history, and
	// appends the assistant's turn (answer or fixed apology). It
	// returns the assistant turn. Empty questions return
	// ErrEmptyQuestion without touching the log; a second concurrent
	// call returns ErrRequestInProgress.
	Ask(ctx context.Context, question string) (domain.Message, error)

	// Messages returns a copy of the log in creation order.
	Messages() []domain.Message

	// Busy reports whether a question is in flight.
	Busy() bool
}
