package framing

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/warmsocket/rsocket/internal/common"
)

const (
	ttlLen        = 4
	reqOff        = ttlLen
	reqLen        = 4
	minLeaseFrame = ttlLen + reqLen
)

// FrameLease is lease frame.
type FrameLease struct {
	*BaseFrame
}

// Validate returns error if frame is invalid.
func (p *FrameLease) Validate() (err error) {
	if p.body.Len() < minLeaseFrame {
		err = errIncompleteFrame
	}
	return
}

func (p *FrameLease) String() string {
	return fmt.Sprintf("FrameLease{%s,ttl=%s,n=%d}", p.header, p.TimeToLive(), p.NumberOfRequests())
}

// TimeToLive returns time to live duration.
func (p *FrameLease) TimeToLive() time.Duration {
	v := binary.BigEndian.Uint32(p.body.Bytes())
	return time.Millisecond * time.Duration(v)
}

// NumberOfRequests returns number of requests granted by the lease.
func (p *FrameLease) NumberOfRequests() uint32 {
	return binary.BigEndian.Uint32(p.body.Bytes()[reqOff:])
}

// Metadata returns metadata bytes.
func (p *FrameLease) Metadata() ([]byte, bool) {
	if !p.header.Flag().Check(FlagMetadata) {
		return nil, false
	}
	return p.body.Bytes()[minLeaseFrame:], true
}

// NewFrameLease returns a new lease frame.
func NewFrameLease(ttl time.Duration, n uint32, metadata []byte) *FrameLease {
	var fg FrameFlag
	if len(metadata) > 0 {
		fg |= FlagMetadata
	}
	bf := common.BorrowByteBuffer()
	var a, b [4]byte
	binary.BigEndian.PutUint32(a[:], uint32(ttl.Milliseconds()))
	binary.BigEndian.PutUint32(b[:], n)
	if _, err := bf.Write(a[:]); err != nil {
		common.ReturnByteBuffer(bf)
		panic(err)
	}
	if _, err := bf.Write(b[:]); err != nil {
		common.ReturnByteBuffer(bf)
		panic(err)
	}
	if len(metadata) > 0 {
		if _, err := bf.Write(metadata); err != nil {
			common.ReturnByteBuffer(bf)
			panic(err)
		}
	}
	return &FrameLease{
		NewBaseFrame(NewFrameHeader(0, FrameTypeLease, fg), bf),
	}
}
