package interfaces

import (
	"context"
	"io"

	domaintypes "crinkbot/internal/domain/types"
)

// Replier sends responses back to the channel a message came from.
type Replier interface {
	SendText(ctx context.Context, text string) error
	SendEmbed(ctx context.Context, embed domaintypes.Embed) error
	SendFile(ctx context.Context, name string, r io.Reader) error
}

// Inbound pairs a received message with the reply channel for it.
type Inbound struct {
	Message domaintypes.Message
	Reply   Replier
}

// Transport delivers inbound chat messages. The channel returned by Inbound
// is closed once the transport stops.
type Transport interface {
	Open(ctx context.Context) error
	Inbound() <-chan Inbound
	Close() error
}

// MessageHandler handles one inbound message end to end.
type MessageHandler interface {
	Handle(ctx context.Context, msg domaintypes.Message, reply Replier)
}
