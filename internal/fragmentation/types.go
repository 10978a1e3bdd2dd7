package fragmentation

import (
	"container/list"
	"fmt"

	"github.com/warmsocket/rsocket/internal/common"
	"github.com/warmsocket/rsocket/internal/framing"
	"github.com/warmsocket/rsocket/internal/u24"
	"github.com/warmsocket/rsocket/payload"
)

const (
	// MinFragment is minimum fragment size in bytes.
	MinFragment = framing.HeaderLen + 4
	// MaxFragment is maximum fragment size in bytes.
	MaxFragment = u24.MaxUint24 - 3
)

var errInvalidFragmentLen = fmt.Errorf("invalid fragment: [%d,%d]", MinFragment, MaxFragment)

// HeaderAndPayload is a Payload which also carries a frame header.
type HeaderAndPayload interface {
	payload.Payload
	// Header returns the header of the underlying frame.
	Header() framing.FrameHeader
}

// Joiner joins fragmented frames back into a single payload.
type Joiner interface {
	common.Releasable
	HeaderAndPayload
	// First returns the first frame received for this stream.
	First() HeaderAndPayload
	// Push appends a new fragment and returns true once the fragment
	// sequence is complete (the FOLLOWS flag is no longer set).
	Push(elem HeaderAndPayload) (end bool)
}

// NewJoiner returns a new joiner seeded with the first fragment.
func NewJoiner(first HeaderAndPayload) Joiner {
	root := list.New()
	root.PushBack(first)
	return &implJoiner{
		root: root,
	}
}

// IsValidFragment validates a fragment size.
func IsValidFragment(fragment int) (err error) {
	if fragment < MinFragment || fragment > MaxFragment {
		err = errInvalidFragmentLen
	}
	return
}
