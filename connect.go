package rsocket

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/warmsocket/rsocket/internal/common"
	"github.com/warmsocket/rsocket/internal/fragmentation"
	"github.com/warmsocket/rsocket/internal/socket"
	"github.com/warmsocket/rsocket/internal/transport"
	"github.com/warmsocket/rsocket/payload"
	"github.com/warmsocket/rsocket/rx"
)

const (
	clientWorkerPoolSize    = 1000
	defaultKeepaliveTick    = 20 * time.Second
	defaultKeepaliveAck     = 90 * time.Second
	defaultDataMimeType     = "application/octet-stream"
	defaultMetadataMimeType = "application/octet-stream"
)

type (
	// ClientResumeOption configures resume behavior for a client connection.
	ClientResumeOption func(o *clientResumeOptions)

	// ClientTransportBuilder chooses the transport for a client connection.
	ClientTransportBuilder interface {
		// Transport sets the transport URI, e.g. "tcp://127.0.0.1:7878".
		Transport(uri string) ClientStarter
	}

	// ClientStarter starts a client connection.
	ClientStarter interface {
		// Start connects and runs the initial SETUP handshake.
		Start(ctx context.Context) (CloseableRSocket, error)
	}

	// ClientBuilder builds a RSocket client connection.
	ClientBuilder interface {
		ClientTransportBuilder
		// KeepAlive sets the keepalive tick period and the peer's ack timeout.
		KeepAlive(tickPeriod, ackTimeout time.Duration) ClientBuilder
		// Resume enables session resumption.
		Resume(opts ...ClientResumeOption) ClientBuilder
		// Lease declares that this client honors LEASE-based flow control.
		Lease() ClientBuilder
		// Fragment sets the fragmentation MTU.
		Fragment(mtu int) ClientBuilder
		// DataMimeType sets the setup data MIME type.
		DataMimeType(mime string) ClientBuilder
		// MetadataMimeType sets the setup metadata MIME type.
		MetadataMimeType(mime string) ClientBuilder
		// SetupPayload sets the initial setup payload.
		SetupPayload(setup payload.Payload) ClientBuilder
		// OnClose registers fn to run once the connection closes.
		OnClose(fn func(error)) ClientBuilder
		// Acceptor sets the responder for server-initiated requests.
		Acceptor(acceptor func(socket RSocket) RSocket) ClientBuilder
		// TLSConfig sets a TLS config for the connection. It is used only
		// together with Resume; a client built without Resume dials with no
		// TLS config of its own.
		TLSConfig(c *tls.Config) ClientBuilder
	}
)

type clientResumeOptions struct {
	token []byte
}

// WithClientResumeToken sets an explicit resume token instead of a random one.
func WithClientResumeToken(token string) ClientResumeOption {
	return func(o *clientResumeOptions) {
		o.token = []byte(token)
	}
}

type connectionBuilder struct {
	fragment          int
	keepaliveInterval time.Duration
	keepaliveLifetime time.Duration
	dataMimeType      string
	metadataMimeType  string
	setup             payload.Payload
	resume            *clientResumeOptions
	lease             bool
	acceptor          func(socket RSocket) RSocket
	tc                *tls.Config
	onCloses          []func(error)
	uri               string
}

// Connect creates a builder used to connect to a RSocket server.
func Connect() ClientBuilder {
	return &connectionBuilder{
		fragment:          fragmentation.MaxFragment,
		keepaliveInterval: defaultKeepaliveTick,
		keepaliveLifetime: defaultKeepaliveAck,
		dataMimeType:      defaultDataMimeType,
		metadataMimeType:  defaultMetadataMimeType,
	}
}

func (p *connectionBuilder) TLSConfig(c *tls.Config) ClientBuilder {
	p.tc = c
	return p
}

func (p *connectionBuilder) Acceptor(acceptor func(socket RSocket) RSocket) ClientBuilder {
	p.acceptor = acceptor
	return p
}

func (p *connectionBuilder) OnClose(fn func(error)) ClientBuilder {
	p.onCloses = append(p.onCloses, fn)
	return p
}

func (p *connectionBuilder) SetupPayload(setup payload.Payload) ClientBuilder {
	p.setup = setup
	return p
}

func (p *connectionBuilder) DataMimeType(mime string) ClientBuilder {
	p.dataMimeType = mime
	return p
}

func (p *connectionBuilder) MetadataMimeType(mime string) ClientBuilder {
	p.metadataMimeType = mime
	return p
}

func (p *connectionBuilder) Fragment(mtu int) ClientBuilder {
	p.fragment = mtu
	return p
}

func (p *connectionBuilder) Lease() ClientBuilder {
	p.lease = true
	return p
}

func (p *connectionBuilder) Resume(opts ...ClientResumeOption) ClientBuilder {
	o := &clientResumeOptions{}
	for _, it := range opts {
		it(o)
	}
	p.resume = o
	return p
}

func (p *connectionBuilder) KeepAlive(tickPeriod, ackTimeout time.Duration) ClientBuilder {
	p.keepaliveInterval = tickPeriod
	p.keepaliveLifetime = ackTimeout
	return p
}

func (p *connectionBuilder) Transport(uri string) ClientStarter {
	p.uri = uri
	return p
}

func (p *connectionBuilder) Start(ctx context.Context) (CloseableRSocket, error) {
	if err := fragmentation.IsValidFragment(p.fragment); err != nil {
		return nil, err
	}
	u, err := transport.ParseURI(p.uri)
	if err != nil {
		return nil, err
	}

	scheduler := rx.NewElasticScheduler(clientWorkerPoolSize)
	rawSocket := socket.NewClientDuplexRSocket(p.fragment, scheduler, p.keepaliveInterval)
	if p.acceptor != nil {
		rawSocket.SetResponder(p.acceptor(rawSocket))
	}

	var token []byte
	if p.resume != nil {
		token = p.resume.token
		if len(token) < 1 {
			token = []byte(common.RandAlphanumeric(16))
		}
	}

	var cs socket.ClientSocket
	if p.resume != nil {
		cs = socket.NewClientResume(u, rawSocket, p.tc)
	} else {
		cs = socket.NewClient(u, rawSocket)
	}
	for _, fn := range p.onCloses {
		cs.OnClose(fn)
	}

	var data, metadata []byte
	if p.setup != nil {
		data = p.setup.Data()
		metadata, _ = p.setup.Metadata()
	}

	setupInfo := &socket.SetupInfo{
		Version:           common.DefaultVersion,
		KeepaliveInterval: p.keepaliveInterval,
		KeepaliveLifetime: p.keepaliveLifetime,
		Token:             token,
		DataMimeType:      []byte(p.dataMimeType),
		Data:              data,
		MetadataMimeType:  []byte(p.metadataMimeType),
		Metadata:          metadata,
		Lease:             p.lease,
	}

	if err = cs.Setup(ctx, setupInfo); err != nil {
		_ = cs.Close()
		return nil, err
	}
	return cs, nil
}
