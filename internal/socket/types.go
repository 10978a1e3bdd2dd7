package socket

import (
	"context"
	"io"

	"github.com/warmsocket/rsocket/internal/transport"
	"github.com/warmsocket/rsocket/payload"
	"github.com/warmsocket/rsocket/rx"
)

// Closeable represents a closeable target.
type Closeable interface {
	io.Closer
	// OnClose bind a handler when closing.
	OnClose(closer func(error))
}

// Responder is a contract providing different interaction models for RSocket protocol.
type Responder interface {
	// FireAndForget is a single one-way message.
	FireAndForget(message payload.Payload)
	// MetadataPush sends asynchronous Metadata frame.
	MetadataPush(message payload.Payload)
	// RequestResponse request single response.
	RequestResponse(message payload.Payload) rx.Mono
	// RequestStream request a completable stream.
	RequestStream(message payload.Payload) rx.Flux
	// RequestChannel request a completable stream in both directions.
	RequestChannel(messages rx.Publisher) rx.Flux
}

// ClientSocket represents a client-side socket.
type ClientSocket interface {
	Closeable
	Responder
	// Setup setups current socket.
	Setup(ctx context.Context, setup *SetupInfo) error
}

// ServerSocket represents a server-side socket.
type ServerSocket interface {
	Closeable
	Responder
	// SetResponder sets a responder for current socket.
	SetResponder(responder Responder)
	// SetTransport sets a transport for current socket.
	SetTransport(tp *transport.Transport)
	// Pause pause current socket.
	Pause() bool
	// Start starts current socket.
	Start(ctx context.Context) error
	// Token returns token of socket.
	Token() (token []byte, ok bool)
}
