package out

import (
	"context"

	"github.com/bnema/edgeselect/internal/domain"
)

// Embedder creates hidden documents for the second-stage challenge.
type Embedder interface {
	// Available reports whether a document context is connected.
	Available() bool

	// Embed loads url into a new hidden frame.
	Embed(ctx context.Context, url string) (Frame, error)
}

// Frame is a live embedded document and its message listener.
type Frame interface {
	// Messages delivers every message posted to the embedding context
	// while the frame is alive, from any origin.
	Messages() <-chan domain.EmbedMessage

	// Post sends a message to the frame, delivered only to targetOrigin.
	Post(ctx context.Context, message, targetOrigin string) error

	// Remove tears the frame and its listener down. Safe to call twice.
	Remove() error
}
