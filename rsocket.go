package rsocket

import (
	"io"

	"github.com/warmsocket/rsocket/internal/socket"
	"github.com/warmsocket/rsocket/payload"
	"github.com/warmsocket/rsocket/rx"
)

type (
	// RSocket is a contract providing the interaction models of the RSocket
	// protocol: fire-and-forget, metadata push, request-response,
	// request-stream and request-channel.
	RSocket interface {
		// FireAndForget sends a single one-way message.
		FireAndForget(message payload.Payload)
		// MetadataPush sends an asynchronous Metadata frame.
		MetadataPush(message payload.Payload)
		// RequestResponse requests a single response.
		RequestResponse(message payload.Payload) rx.Mono
		// RequestStream requests a completable stream of responses.
		RequestStream(message payload.Payload) rx.Flux
		// RequestChannel requests a completable stream in both directions.
		RequestChannel(messages rx.Publisher) rx.Flux
	}

	// CloseableRSocket is a RSocket bound to a transport that can be closed.
	CloseableRSocket interface {
		RSocket
		io.Closer
		// OnClose registers fn to run once the underlying connection closes.
		OnClose(fn func(error))
	}

	// ServerAcceptor handles an incoming client SETUP, returning the
	// RSocket that will respond to the client's requests.
	ServerAcceptor func(setup payload.SetupPayload, sendingSocket CloseableRSocket) (RSocket, error)

	// OptAbstractSocket configures a RSocket built with NewAbstractSocket.
	OptAbstractSocket func(*socket.AbstractRSocket)
)

// NewAbstractSocket composes a RSocket from the given options. Interactions
// left unconfigured respond with an unimplemented error.
func NewAbstractSocket(opts ...OptAbstractSocket) RSocket {
	sk := socket.AbstractRSocket{}
	for _, fn := range opts {
		fn(&sk)
	}
	return sk
}

// MetadataPush registers a handler for METADATA_PUSH.
func MetadataPush(fn func(payload.Payload)) OptAbstractSocket {
	return func(o *socket.AbstractRSocket) { o.MP = fn }
}

// FireAndForget registers a handler for FIRE_AND_FORGET.
func FireAndForget(fn func(payload.Payload)) OptAbstractSocket {
	return func(o *socket.AbstractRSocket) { o.FF = fn }
}

// RequestResponse registers a handler for REQUEST_RESPONSE.
func RequestResponse(fn func(payload.Payload) rx.Mono) OptAbstractSocket {
	return func(o *socket.AbstractRSocket) { o.RR = fn }
}

// RequestStream registers a handler for REQUEST_STREAM.
func RequestStream(fn func(payload.Payload) rx.Flux) OptAbstractSocket {
	return func(o *socket.AbstractRSocket) { o.RS = fn }
}

// RequestChannel registers a handler for REQUEST_CHANNEL.
func RequestChannel(fn func(rx.Publisher) rx.Flux) OptAbstractSocket {
	return func(o *socket.AbstractRSocket) { o.RC = fn }
}
