package common

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/warmsocket/rsocket/internal/logger"
	"github.com/valyala/bytebufferpool"
)

var (
	borrowed int32
	bPool    bytebufferpool.Pool
)

// ByteBuff provides byte buffer, which can be used for minimizing.
type ByteBuff bytebufferpool.ByteBuffer

// Len returns size of ByteBuff.
func (p *ByteBuff) Len() (n int) {
	if p != nil {
		n = p.bb().Len()
	}
	return
}

// WriteTo write bytes to writer.
func (p *ByteBuff) WriteTo(w io.Writer) (n int64, err error) {
	return p.bb().WriteTo(w)
}

// Writer write bytes to current ByteBuff.
func (p *ByteBuff) Write(bs []byte) (n int, err error) {
	return p.bb().Write(bs)
}

// WriteUint24 encode and write Uint24 to current ByteBuff.
func (p *ByteBuff) WriteUint24(n int) (err error) {
	v, err := NewUint24(n)
	if err != nil {
		return
	}
	_, err = p.Write(v[:])
	return
}

// WriteByte write a byte to current ByteBuff.
func (p *ByteBuff) WriteByte(b byte) error {
	return p.bb().WriteByte(b)
}

// WriteString write a string to current ByteBuff.
func (p *ByteBuff) WriteString(s string) error {
	_, err := p.bb().WriteString(s)
	return err
}

// Reset clean all bytes.
func (p *ByteBuff) Reset() {
	p.bb().Reset()
}

// Bytes returns all bytes in ByteBuff.
func (p *ByteBuff) Bytes() []byte {
	if p.bb() == nil {
		return nil
	}
	return p.bb().B
}

func (p *ByteBuff) bb() *bytebufferpool.ByteBuffer {
	return (*bytebufferpool.ByteBuffer)(p)
}

// BorrowByteBuff borrows a ByteBuff from pool.
func BorrowByteBuff() (bb *ByteBuff) {
	bb = (*ByteBuff)(bPool.Get())
	atomic.AddInt32(&borrowed, 1)
	return
}

// ReturnByteBuff returns a ByteBuff to pool.
func ReturnByteBuff(b *ByteBuff) {
	bPool.Put((*bytebufferpool.ByteBuffer)(b))
	atomic.AddInt32(&borrowed, -1)
}

// BorrowByteBuffer is an alias of BorrowByteBuff kept for call sites that
// spell the pooled buffer out in full.
func BorrowByteBuffer() *ByteBuff {
	return BorrowByteBuff()
}

// ReturnByteBuffer is an alias of ReturnByteBuff kept for call sites that
// spell the pooled buffer out in full.
func ReturnByteBuffer(b *ByteBuff) {
	ReturnByteBuff(b)
}

// NewByteBuff allocates a fresh, unpooled ByteBuff. Frame constructors that
// build a frame meant to outlive the pool's reuse cycle (rather than being
// written and released within a single request) use this instead of
// BorrowByteBuff.
func NewByteBuff() *ByteBuff {
	return &ByteBuff{}
}

// New is a short alias of NewByteBuff.
func New() *ByteBuff {
	return NewByteBuff()
}

// CountByteBuffer returns amount of ByteBuff borrowed.
func CountByteBuffer() int {
	return int(atomic.LoadInt32(&borrowed))
}

func TraceByteBuffLeak(ctx context.Context, duration time.Duration) error {
	tk := time.NewTicker(duration)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			logger.Infof("=====> count bytebuffers: %d\n", CountByteBuffer())
		}
	}
}
