package socket

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/warmsocket/rsocket/internal/common"
	"github.com/warmsocket/rsocket/internal/framing"
	"github.com/warmsocket/rsocket/internal/map32"
	"github.com/warmsocket/rsocket/rx"
)

type mailboxMode int8

const (
	mailRequestResponse mailboxMode = iota
	mailRequestStream
	mailRequestChannel
)

var mailboxPool = sync.Pool{
	New: func() interface{} {
		return new(mailbox)
	},
}

// SetupInfo represents basic info of setup.
type SetupInfo struct {
	Version           common.Version
	KeepaliveInterval time.Duration
	KeepaliveLifetime time.Duration
	Token             []byte
	DataMimeType      []byte
	Data              []byte
	MetadataMimeType  []byte
	Metadata          []byte
	Lease             bool
}

// ToFrame converts current SetupInfo to a frame of Setup.
func (p *SetupInfo) ToFrame() *framing.FrameSetup {
	f := framing.NewFrameSetup(
		p.Version,
		p.KeepaliveInterval,
		p.KeepaliveLifetime,
		p.Token,
		p.MetadataMimeType,
		p.DataMimeType,
		p.Data,
		p.Metadata,
	)
	if p.Lease {
		f.SetHeader(framing.NewFrameHeader(0, framing.FrameTypeSetup, f.Header().Flag()|framing.FlagLease))
	}
	return f
}

func borrowPublishers(mode mailboxMode, sending, receiving rx.Publisher) (b *mailbox) {
	b = mailboxPool.Get().(*mailbox)
	b.mode = mode
	b.sending = sending
	b.receiving = receiving
	return
}

func returnPublishers(b *mailbox) {
	b.receiving = nil
	b.sending = nil
	mailboxPool.Put(b)
}

type mailbox struct {
	mode               mailboxMode
	sending, receiving rx.Publisher
}

// mailboxes indexes in-flight stream state by stream ID. It's backed by a
// sharded map32.Map32 rather than a single mutex-guarded map: a connection
// with many concurrent streams spreads Load/Store/Delete traffic across
// shards instead of serializing on one lock.
type mailboxes struct {
	m map32.Map32
}

func (p *mailboxes) each(fn func(id uint32, elem *mailbox)) {
	p.m.Range(func(id uint32, v interface{}) bool {
		fn(id, v.(*mailbox))
		return true
	})
}

func (p *mailboxes) put(id uint32, mode mailboxMode, sending, receiving rx.Publisher) {
	p.m.Store(id, borrowPublishers(mode, sending, receiving))
}

func (p *mailboxes) load(id uint32) (v *mailbox, ok bool) {
	found, ok := p.m.Load(id)
	if !ok {
		return nil, false
	}
	return found.(*mailbox), true
}

func (p *mailboxes) remove(id uint32) {
	found, ok := p.m.Load(id)
	if !ok {
		return
	}
	p.m.Delete(id)
	returnPublishers(found.(*mailbox))
}

func newMailboxes() *mailboxes {
	return &mailboxes{
		m: map32.New(map32.WithCap(32)),
	}
}

type streamIDs interface {
	next() uint32
}

type serverStreamIDs struct {
	cur uint32
}

func (p *serverStreamIDs) next() uint32 {
	// 2,4,6,8...
	v := 2 * atomic.AddUint32(&p.cur, 1)
	if v != 0 {
		return v
	}
	return p.next()
}

type clientStreamIDs struct {
	cur uint32
}

func (p *clientStreamIDs) next() uint32 {
	// 1,3,5,7
	v := 2*(atomic.AddUint32(&p.cur, 1)-1) + 1
	if v != 0 {
		return v
	}
	return p.next()
}

// toError try convert something to error
func toError(err interface{}) error {
	if err == nil {
		return nil
	}
	switch v := err.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("%s", v)
	}
}

// tryRecover converts a value captured from recover() into an error.
func tryRecover(v interface{}) error {
	return toError(v)
}

// ToUint32RequestN clamps a request count to the wire's uint32 RequestN
// field, capping at rx.RequestMax. It panics on a non-positive input.
func ToUint32RequestN(n int64) uint32 {
	if n <= 0 {
		panic(fmt.Errorf("invalid request n: %d", n))
	}
	if n > int64(rx.RequestMax) {
		return uint32(rx.RequestMax)
	}
	return uint32(n)
}

// ToIntRequestN converts a wire RequestN value back to an int, mapping
// the sentinel math.MaxUint32 to rx.RequestMax.
func ToIntRequestN(n uint32) int {
	if n == math.MaxUint32 {
		return rx.RequestMax
	}
	return int(n)
}
